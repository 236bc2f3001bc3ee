// File: services/assistant/classify.go
package assistant

import (
	"strings"

	"github.com/carlos-tribe/holly-assistant-hicv/models"
)

// Fallback classifiers for utterances outside any step-specific sub-parser.
// Note the confirmation cue list contains negatives too; polarity is decided
// separately by isPositiveConfirmation.

var confirmationCues = []string{
	"yes", "yeah", "yep", "sure", "ok", "okay", "confirm", "correct", "that's right",
	"sounds good", "perfect", "great", "excellent", "book it", "go ahead", "proceed",
	"no", "nope", "not", "cancel", "stop", "wait", "hold on", "actually",
}

var positiveConfirmationCues = []string{
	"yes", "yeah", "yep", "sure", "ok", "okay", "confirm", "correct", "that's right",
	"sounds good", "perfect", "great", "excellent", "book it", "go ahead", "proceed",
}

func isConfirmation(text string) bool {
	return containsAny(text, confirmationCues)
}

func isPositiveConfirmation(text string) bool {
	return containsAny(text, positiveConfirmationCues)
}

func isQuestion(text string) bool {
	return strings.Contains(text, "?") ||
		strings.Contains(text, "what") ||
		strings.Contains(text, "how") ||
		strings.Contains(text, "when") ||
		strings.Contains(text, "where") ||
		strings.Contains(text, "why") ||
		strings.Contains(text, "which") ||
		strings.Contains(text, "tell me") ||
		strings.Contains(text, "can you") ||
		strings.Contains(text, "is there")
}

func extractQuestionTopic(text string) string {
	switch {
	case strings.Contains(text, "price") || strings.Contains(text, "cost") || strings.Contains(text, "expensive"):
		return "price"
	case strings.Contains(text, "amenities") || strings.Contains(text, "features"):
		return "amenities"
	case strings.Contains(text, "location") || strings.Contains(text, "where"):
		return "location"
	case strings.Contains(text, "cancel") || strings.Contains(text, "refund"):
		return "cancellation"
	case strings.Contains(text, "pool") || strings.Contains(text, "spa") || strings.Contains(text, "gym"):
		return "facilities"
	}
	return "general"
}

var correctionCues = []string{
	"no not", "actually", "wait", "sorry", "i meant", "i mean", "instead",
	"change", "different", "other", "not that", "wrong",
}

func isCorrection(text string) bool {
	return containsAny(text, correctionCues)
}

func extractCorrectionType(text string) string {
	if strings.Contains(text, "not that") || strings.Contains(text, "other") {
		return models.CorrectionSwitchSelection
	}
	if strings.Contains(text, "change") || strings.Contains(text, "different") {
		return models.CorrectionChangeSelection
	}
	return models.CorrectionGeneral
}
