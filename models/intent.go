package models

import "time"

// IntentType tags the parser's classification of an utterance.
type IntentType string

const (
	IntentDestinationSelection  IntentType = "destination_selection"
	IntentDateSelection         IntentType = "date_selection"
	IntentDateNarrowing         IntentType = "date_narrowing"
	IntentDateRefinement        IntentType = "date_refinement"
	IntentFlexibleDateSelection IntentType = "flexible_date_selection"
	IntentPropertyMatching      IntentType = "property_matching"
	IntentTimeSelection         IntentType = "time_selection"
	IntentDetailsVerification   IntentType = "details_verification"
	IntentConfirmation          IntentType = "confirmation"
	IntentQuestion              IntentType = "question"
	IntentCorrection            IntentType = "correction"
	IntentUnknown               IntentType = "unknown"
)

// Destination selection methods.
const (
	MethodDirect      = "direct"
	MethodCategory    = "category"
	MethodAttribute   = "attribute"
	MethodComparison  = "comparison"
	MethodExploration = "exploration"
)

// Date refinement actions.
const (
	RefineShowMore    = "show_more"
	RefineEarlier     = "earlier"
	RefineLater       = "later"
	RefineChangeMonth = "change_month"
)

// Correction kinds.
const (
	CorrectionSwitchSelection = "switch_selection"
	CorrectionChangeSelection = "change_selection"
	CorrectionGeneral         = "general_correction"
)

// VoiceIntent is the parser's structured classification of a single
// utterance. Exactly the entity field matching Type is populated; the rest
// stay nil. Confidence is a heuristic in [0,1], only meaningful relative to
// other candidates within the same parse call.
type VoiceIntent struct {
	Type       IntentType `json:"type"`
	Confidence float64    `json:"confidence"`
	RawText    string     `json:"rawText"`

	Details      *DetailsEntities            `json:"details,omitempty"`
	Destination  *DestinationSelectionEntity `json:"destination,omitempty"`
	Dates        *DateSelectionEntity        `json:"dates,omitempty"`
	Narrowing    *DateNarrowingEntity        `json:"narrowing,omitempty"`
	Refinement   *DateRefinementEntity       `json:"refinement,omitempty"`
	Flexible     *FlexibleSelectionEntity    `json:"flexible,omitempty"`
	Property     *PropertyMatchEntity        `json:"property,omitempty"`
	Time         *TimeSelectionEntity        `json:"time,omitempty"`
	Confirmation *ConfirmationEntity         `json:"confirmation,omitempty"`
	Question     *QuestionEntity             `json:"question,omitempty"`
	Correction   *CorrectionEntity           `json:"correction,omitempty"`
}

// UnknownIntent is the terminal fallback for unparseable input.
func UnknownIntent(rawText string) VoiceIntent {
	return VoiceIntent{Type: IntentUnknown, Confidence: 0.3, RawText: rawText}
}

// DetailsEntities holds whatever the verify-details sub-parser extracted.
// A zero GuestCount means none was found.
type DetailsEntities struct {
	ZipCode      string `json:"zipCode,omitempty"`
	GuestCount   int    `json:"guestCount,omitempty"`
	Confirmation bool   `json:"confirmation,omitempty"`
}

// AttributeQuery names a destination attribute filter (weather/activities).
type AttributeQuery struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// DestinationSelectionEntity describes how a destination was chosen or asked
// about.
type DestinationSelectionEntity struct {
	Method         string          `json:"method"`
	DestinationID  string          `json:"destinationId,omitempty"`
	DestinationIDs []string        `json:"destinationIds,omitempty"`
	Category       string          `json:"category,omitempty"`
	Attribute      *AttributeQuery `json:"attribute,omitempty"`
	Query          string          `json:"query,omitempty"`
}

// DateSelectionEntity carries either resolved travel dates or an ordinal
// pick from the currently displayed range options. Ordinal picks never carry
// dates; the reducer only commits when both dates are present.
type DateSelectionEntity struct {
	CheckIn            *time.Time       `json:"checkIn,omitempty"`
	CheckOut           *time.Time       `json:"checkOut,omitempty"`
	Duration           int              `json:"duration,omitempty"`
	RelativeDate       string           `json:"relativeDate,omitempty"`
	SelectedRangeIndex *int             `json:"selectedRangeIndex,omitempty"`
	SelectedRange      *DateRangeOption `json:"selectedRange,omitempty"`
}

// DateNarrowingEntity is the first phase of date selection: month and
// weekday/weekend preferences, before concrete ranges are offered.
type DateNarrowingEntity struct {
	PreferredMonth string `json:"preferredMonth,omitempty"`
	DatePreference string `json:"datePreference,omitempty"`
	PreferWeekends bool   `json:"preferWeekends,omitempty"`
	PreferWeekdays bool   `json:"preferWeekdays,omitempty"`
	ExactDate      string `json:"exactDate,omitempty"`
}

// DateRefinementEntity asks for a different page of range options.
type DateRefinementEntity struct {
	Action      string `json:"action"`
	TimeOfMonth string `json:"timeOfMonth,omitempty"`
}

// FlexibleSelectionEntity holds the curated option the utterance resolved to.
type FlexibleSelectionEntity struct {
	Option *FlexibleDateOption `json:"flexibleOption,omitempty"`
}

// PropertyMatchEntity is a ternary answer: confirmed, rejected, or a
// free-text response to a matching question.
type PropertyMatchEntity struct {
	Confirmed *bool  `json:"confirmed,omitempty"`
	Response  string `json:"response,omitempty"`
}

// TimeSelectionEntity holds the tour time as spoken; no normalization to a
// 24-hour form is attempted.
type TimeSelectionEntity struct {
	Time   string `json:"time,omitempty"`
	Period string `json:"period,omitempty"`
}

// ConfirmationEntity records yes/no polarity.
type ConfirmationEntity struct {
	Confirmed bool `json:"confirmed"`
}

// QuestionEntity records the coarse topic of a question.
type QuestionEntity struct {
	Topic string `json:"topic"`
}

// CorrectionEntity records the coarse kind of correction requested.
type CorrectionEntity struct {
	Type string `json:"type"`
}
