// File: services/assistant/parser.go
package assistant

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/carlos-tribe/holly-assistant-hicv/models"
	"github.com/carlos-tribe/holly-assistant-hicv/services/catalog"
)

// Parser classifies guest utterances into structured intents. Classification
// is step-gated: the active wizard step selects which sub-parser runs, and
// only off-step utterances fall through to the generic classifiers.
type Parser struct {
	now func() time.Time
}

// NewParser returns a parser using the wall clock for relative dates.
func NewParser() *Parser {
	return &Parser{now: time.Now}
}

// NewParserAt returns a parser with a fixed clock, for deterministic parsing.
func NewParserAt(now func() time.Time) *Parser {
	return &Parser{now: now}
}

// Parse classifies one utterance against the current step and booking state.
func (p *Parser) Parse(text string, currentStep models.BookingStep, state models.BookingState) models.VoiceIntent {
	lowerText := strings.ToLower(strings.TrimSpace(text))

	switch currentStep {
	case models.StepVerifyDetails:
		return p.parseDetailsVerification(lowerText)
	case models.StepSelectDestination:
		return p.parseDestinationSelection(lowerText, state)
	case models.StepChooseDates:
		// Two-phase date selection.
		if !state.DateNarrowingComplete {
			return p.parseDateNarrowing(lowerText)
		}
		return p.parseDateRangeSelection(lowerText, state)
	case models.StepChooseFlexibleDates:
		destID := state.SelectedDestination
		if destID == "" {
			destID = "orlando"
		}
		return p.parseFlexibleDateSelection(lowerText, catalog.GetFlexibleDatesForDestination(destID))
	case models.StepPropertyMatching:
		return p.parsePropertyMatching(lowerText)
	case models.StepScheduleTour:
		return p.parseTimeSelection(lowerText)
	}

	if isConfirmation(lowerText) {
		return models.VoiceIntent{
			Type:         models.IntentConfirmation,
			Confidence:   0.9,
			RawText:      lowerText,
			Confirmation: &models.ConfirmationEntity{Confirmed: isPositiveConfirmation(lowerText)},
		}
	}
	if isQuestion(lowerText) {
		return models.VoiceIntent{
			Type:       models.IntentQuestion,
			Confidence: 0.8,
			RawText:    lowerText,
			Question:   &models.QuestionEntity{Topic: extractQuestionTopic(lowerText)},
		}
	}
	if isCorrection(lowerText) {
		return models.VoiceIntent{
			Type:       models.IntentCorrection,
			Confidence: 0.85,
			RawText:    lowerText,
			Correction: &models.CorrectionEntity{Type: extractCorrectionType(lowerText)},
		}
	}

	return models.UnknownIntent(lowerText)
}

var (
	zipPattern = regexp.MustCompile(`\b(\d{5})\b`)

	guestPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?i)\b(\d+)\s*(?:people|persons?|guests?|travelers?)\b`),
		regexp.MustCompile(`(?i)\b(?:party of|group of|family of)\s*(\d+)\b`),
		regexp.MustCompile(`(?i)\bjust\s*(\d+)\s*of us\b`),
		regexp.MustCompile(`(?i)\b(one|two|three|four|five|six|seven|eight|nine|ten)\s*(?:people|persons?|guests?)\b`),
	}

	numberWords = map[string]int{
		"one": 1, "two": 2, "three": 3, "four": 4, "five": 5,
		"six": 6, "seven": 7, "eight": 8, "nine": 9, "ten": 10,
	}
)

// parseDetailsVerification extracts zip code, guest count, and confirmation
// cues. Always returns a details_verification intent; missing fields just
// lower the confidence.
func (p *Parser) parseDetailsVerification(text string) models.VoiceIntent {
	entities := &models.DetailsEntities{}
	confidence := 0.0

	if zipMatch := zipPattern.FindStringSubmatch(text); zipMatch != nil {
		entities.ZipCode = zipMatch[1]
		confidence += 0.5
	}

	for _, pattern := range guestPatterns {
		match := pattern.FindStringSubmatch(text)
		if match == nil {
			continue
		}
		value := strings.ToLower(match[1])
		if n, ok := numberWords[value]; ok {
			entities.GuestCount = n
		} else if n, err := strconv.Atoi(value); err == nil {
			entities.GuestCount = n
		}
		confidence += 0.5
		break
	}

	if strings.Contains(text, "yes") || strings.Contains(text, "continue") ||
		strings.Contains(text, "correct") || strings.Contains(text, "that's right") {
		entities.Confirmation = true
		confidence = 0.9
	}

	if confidence > 1 {
		confidence = 1
	}
	return models.VoiceIntent{
		Type:       models.IntentDetailsVerification,
		Confidence: confidence,
		RawText:    text,
		Details:    entities,
	}
}

// categoryPattern pairs a destination category with its trigger keywords.
// Ordered; the first matching category wins.
type categoryPattern struct {
	Category string
	Keywords []string
}

var categoryPatterns = []categoryPattern{
	{"beaches", []string{"beach", "ocean", "coast", "surf", "seaside"}},
	{"mountains", []string{"mountain", "hiking", "ski", "alpine", "outdoors"}},
	{"cities", []string{"city", "urban", "downtown", "nightlife"}},
	{"themeparks", []string{"theme park", "amusement", "rides", "disney", "universal"}},
	{"historic", []string{"historic", "history", "colonial", "heritage"}},
	{"family", []string{"family", "kids", "children", "family-friendly"}},
	{"entertainment", []string{"shows", "entertainment", "theater", "performance"}},
	{"golf", []string{"golf", "golfing", "golf course"}},
	{"water", []string{"water activities", "kayaking", "boating", "lake"}},
	{"outdoor", []string{"outdoor", "nature", "adventure"}},
	{"relaxation", []string{"spa", "relax", "massage", "wellness"}},
}

type attributeCue struct {
	Keywords []string
	Type     string
	Value    string
	Conf     float64
}

var attributeCues = []attributeCue{
	{[]string{"warm", "hot", "sunny", "sun"}, "weather", "warm", 0.8},
	{[]string{"year round", "year-round", "always sunny"}, "weather", "yearRound", 0.8},
	{[]string{"seasonal", "four seasons"}, "weather", "seasonal", 0.8},
	{[]string{"skiing", "ski"}, "activities", "skiing", 0.85},
	{[]string{"golf"}, "activities", "golf", 0.85},
	{[]string{"surf"}, "activities", "surfing", 0.85},
}

// parseDestinationSelection runs the destination cascade: direct name match,
// category keywords, attribute cues, comparison, exploration, then acceptance
// of the current default.
func (p *Parser) parseDestinationSelection(text string, state models.BookingState) models.VoiceIntent {
	entity := &models.DestinationSelectionEntity{Method: models.MethodDirect}
	confidence := 0.0

	for _, dest := range catalog.Destinations {
		destName := strings.ToLower(dest.Name)
		destState := strings.ToLower(dest.State)

		if strings.Contains(text, destName) || strings.Contains(text, destName+" "+destState) {
			entity.Method = models.MethodDirect
			entity.DestinationID = dest.ID
			confidence = 0.95
			break
		}

		// Partial match on the first word of multi-word names ("vegas" won't
		// hit here, but "las" will).
		if strings.Contains(destName, " ") && strings.Contains(text, strings.Split(destName, " ")[0]) {
			entity.Method = models.MethodDirect
			entity.DestinationID = dest.ID
			confidence = 0.9
			break
		}
	}

	if entity.DestinationID == "" {
		for _, cp := range categoryPatterns {
			if containsAny(text, cp.Keywords) {
				entity.Method = models.MethodCategory
				entity.Category = cp.Category
				entity.DestinationIDs = destinationIDs(catalog.GetDestinationsByCategory(cp.Category))
				confidence = 0.85
				break
			}
		}
	}

	if entity.DestinationID == "" && entity.Category == "" {
		for _, cue := range attributeCues {
			if containsAny(text, cue.Keywords) {
				entity.Method = models.MethodAttribute
				entity.Attribute = &models.AttributeQuery{Type: cue.Type, Value: cue.Value}
				entity.DestinationIDs = destinationIDs(catalog.GetDestinationsByAttribute(cue.Type, cue.Value))
				confidence = cue.Conf
				break
			}
		}
	}

	if strings.Contains(text, "difference between") || strings.Contains(text, "compare") ||
		strings.Contains(text, "versus") || strings.Contains(text, "vs") {
		entity.Method = models.MethodComparison
		var mentioned []string
		for _, dest := range catalog.Destinations {
			if strings.Contains(text, strings.ToLower(dest.Name)) {
				mentioned = append(mentioned, dest.ID)
			}
		}
		if len(mentioned) >= 2 {
			entity.DestinationIDs = mentioned[:2]
			confidence = 0.9
		}
	}

	explorationCues := []string{"other", "more", "different", "explore", "what else", "alternatives"}
	if containsAny(text, explorationCues) && entity.DestinationID == "" {
		entity.Method = models.MethodExploration
		entity.Query = text
		confidence = 0.75
	}

	preferredDest := state.SelectedDestination
	if preferredDest == "" {
		preferredDest = "orlando"
	}
	acceptanceCues := []string{"sounds good", "perfect", "great", "yes", "continue", "let's go"}
	if containsAny(text, acceptanceCues) && entity.DestinationID == "" && entity.Category == "" {
		entity.Method = models.MethodDirect
		entity.DestinationID = preferredDest
		confidence = 0.95
	}

	if confidence > 0 {
		return models.VoiceIntent{
			Type:        models.IntentDestinationSelection,
			Confidence:  confidence,
			RawText:     text,
			Destination: entity,
		}
	}
	return models.UnknownIntent(text)
}

var monthNames = []string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

var monthAbbrs = []string{
	"jan", "feb", "mar", "apr", "may", "jun", "jul", "aug", "sep", "oct", "nov", "dec",
}

var exactDatePattern = regexp.MustCompile(`(\w+)\s+(\d{1,2})(?:st|nd|rd|th)?`)

// parseDateNarrowing handles the first phase of date selection: month and
// flexibility preferences, before concrete ranges exist.
func (p *Parser) parseDateNarrowing(text string) models.VoiceIntent {
	entities := &models.DateNarrowingEntity{}
	confidence := 0.0

	for i := range monthNames {
		if strings.Contains(text, monthNames[i]) || strings.Contains(text, monthAbbrs[i]) {
			entities.PreferredMonth = monthNames[i]
			entities.DatePreference = models.DatePreferenceMonth
			confidence = 0.9
			break
		}
	}

	if strings.Contains(text, "flexible") || strings.Contains(text, "open") || strings.Contains(text, "not sure") {
		entities.DatePreference = models.DatePreferenceFlexible
		confidence = 0.85
	}

	if strings.Contains(text, "weekend") && !strings.Contains(text, "next weekend") {
		entities.PreferWeekends = true
		if confidence < 0.85 {
			confidence = 0.85
		}
	}

	if strings.Contains(text, "weekday") || strings.Contains(text, "week day") {
		entities.PreferWeekdays = true
		if confidence < 0.85 {
			confidence = 0.85
		}
	}

	if dateMatch := exactDatePattern.FindStringSubmatch(text); dateMatch != nil {
		if containsString(monthNames, strings.ToLower(dateMatch[1])) {
			entities.DatePreference = models.DatePreferenceExact
			entities.ExactDate = dateMatch[1] + " " + dateMatch[2]
			confidence = 0.9
		}
	}

	if confidence > 0 {
		return models.VoiceIntent{
			Type:       models.IntentDateNarrowing,
			Confidence: confidence,
			RawText:    text,
			Narrowing:  entities,
		}
	}
	return models.UnknownIntent(text)
}

type ordinalCue struct {
	Word  string
	Index int
}

// Ordered; earlier cues shadow later ones ("first" before "1st").
var rangeOrdinals = []ordinalCue{
	{"first", 0}, {"1st", 0}, {"one", 0},
	{"second", 1}, {"2nd", 1}, {"two", 1},
	{"third", 2}, {"3rd", 2}, {"three", 2},
	{"fourth", 3}, {"4th", 3}, {"four", 3},
}

// parseDateRangeSelection handles the second phase of date selection: an
// ordinal pick from the displayed ranges, or a refinement request. Ordinal
// picks win over refinement cues.
func (p *Parser) parseDateRangeSelection(text string, state models.BookingState) models.VoiceIntent {
	entities := &models.DateSelectionEntity{}
	confidence := 0.0

	for _, oc := range rangeOrdinals {
		if strings.Contains(text, oc.Word) && oc.Index < len(state.DateRangeOptions) {
			idx := oc.Index
			selected := state.DateRangeOptions[idx]
			entities.SelectedRangeIndex = &idx
			entities.SelectedRange = &selected
			confidence = 0.95
			break
		}
	}

	if strings.Contains(text, "show more") || strings.Contains(text, "more options") || strings.Contains(text, "other dates") {
		return models.VoiceIntent{
			Type:       models.IntentDateRefinement,
			Confidence: 0.9,
			RawText:    text,
			Refinement: &models.DateRefinementEntity{Action: models.RefineShowMore},
		}
	}

	if strings.Contains(text, "earlier") || strings.Contains(text, "sooner") || strings.Contains(text, "beginning of month") {
		return models.VoiceIntent{
			Type:       models.IntentDateRefinement,
			Confidence: 0.9,
			RawText:    text,
			Refinement: &models.DateRefinementEntity{Action: models.RefineEarlier, TimeOfMonth: models.TimeOfMonthEarly},
		}
	}

	if strings.Contains(text, "later") || strings.Contains(text, "end of month") {
		return models.VoiceIntent{
			Type:       models.IntentDateRefinement,
			Confidence: 0.9,
			RawText:    text,
			Refinement: &models.DateRefinementEntity{Action: models.RefineLater, TimeOfMonth: models.TimeOfMonthLate},
		}
	}

	if strings.Contains(text, "change month") || strings.Contains(text, "different month") {
		return models.VoiceIntent{
			Type:       models.IntentDateRefinement,
			Confidence: 0.9,
			RawText:    text,
			Refinement: &models.DateRefinementEntity{Action: models.RefineChangeMonth},
		}
	}

	if confidence > 0 {
		return models.VoiceIntent{
			Type:       models.IntentDateSelection,
			Confidence: confidence,
			RawText:    text,
			Dates:      entities,
		}
	}
	return models.UnknownIntent(text)
}

// Ordered; includes the "number N"/"option N" spoken variants.
var flexibleOrdinals = []ordinalCue{
	{"first", 0}, {"1st", 0}, {"one", 0}, {"number 1", 0}, {"number one", 0}, {"option 1", 0},
	{"second", 1}, {"2nd", 1}, {"two", 1}, {"number 2", 1}, {"number two", 1}, {"option 2", 1},
	{"third", 2}, {"3rd", 2}, {"three", 2}, {"number 3", 2}, {"number three", 2}, {"option 3", 2},
	{"fourth", 3}, {"4th", 3}, {"four", 3}, {"number 4", 3}, {"number four", 3}, {"option 4", 3},
	{"fifth", 4}, {"5th", 4}, {"five", 4}, {"number 5", 4}, {"number five", 4}, {"option 5", 4},
	{"sixth", 5}, {"6th", 5}, {"six", 5}, {"number 6", 6}, {"number six", 6}, {"option 6", 6},
}

// parseFlexibleDateSelection matches an utterance against the curated options
// for the selected destination: ordinal, month in label, label keyword, then
// price indicator.
func (p *Parser) parseFlexibleDateSelection(text string, flexibleOptions []models.FlexibleDateOption) models.VoiceIntent {
	var selectedOption *models.FlexibleDateOption
	confidence := 0.0

	for _, oc := range flexibleOrdinals {
		if strings.Contains(text, oc.Word) && oc.Index < len(flexibleOptions) {
			selectedOption = &flexibleOptions[oc.Index]
			confidence = 0.95
			break
		}
	}

	if selectedOption == nil {
		for _, month := range monthNames {
			if !strings.Contains(text, month) {
				continue
			}
			for i := range flexibleOptions {
				if strings.Contains(strings.ToLower(flexibleOptions[i].Label), month) {
					selectedOption = &flexibleOptions[i]
					confidence = 0.9
					break
				}
			}
			if selectedOption != nil {
				break
			}
		}
	}

	if selectedOption == nil {
		for i := range flexibleOptions {
			labelWords := strings.Split(strings.ToLower(flexibleOptions[i].Label), " ")
			for _, word := range labelWords {
				if len(word) > 3 && strings.Contains(text, word) {
					selectedOption = &flexibleOptions[i]
					confidence = 0.85
					break
				}
			}
			if selectedOption != nil {
				break
			}
		}
	}

	if selectedOption == nil {
		if strings.Contains(text, "value") || strings.Contains(text, "cheapest") || strings.Contains(text, "budget") {
			if opt := firstWithIndicator(flexibleOptions, models.PriceValue); opt != nil {
				selectedOption = opt
				confidence = 0.8
			}
		} else if strings.Contains(text, "peak") || strings.Contains(text, "holiday") {
			if opt := firstWithIndicator(flexibleOptions, models.PricePeak); opt != nil {
				selectedOption = opt
				confidence = 0.8
			}
		}
	}

	if selectedOption != nil {
		return models.VoiceIntent{
			Type:       models.IntentFlexibleDateSelection,
			Confidence: confidence,
			RawText:    text,
			Flexible:   &models.FlexibleSelectionEntity{Option: selectedOption},
		}
	}
	return models.UnknownIntent(text)
}

// parsePropertyMatching reads a matching-flow answer: yes, no, or a free-text
// response. Never returns unknown.
func (p *Parser) parsePropertyMatching(text string) models.VoiceIntent {
	entities := &models.PropertyMatchEntity{}
	confidence := 0.0

	positives := []string{"yes", "confirm", "sounds good", "perfect", "great", "looks good"}
	negatives := []string{"no", "different", "other"}

	if containsAny(text, positives) {
		confirmed := true
		entities.Confirmed = &confirmed
		confidence = 0.9
	} else if containsAny(text, negatives) {
		confirmed := false
		entities.Confirmed = &confirmed
		confidence = 0.9
	} else {
		entities.Response = text
		confidence = 0.7
	}

	return models.VoiceIntent{
		Type:       models.IntentPropertyMatching,
		Confidence: confidence,
		RawText:    text,
		Property:   entities,
	}
}

var timePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*(am|pm)`),
	regexp.MustCompile(`(?i)(\d{1,2})(?::(\d{2}))?\s*o'?clock`),
	regexp.MustCompile(`(?i)half past (\d{1,2})`),
	regexp.MustCompile(`(?i)quarter (?:past|after) (\d{1,2})`),
	regexp.MustCompile(`(?i)quarter (?:to|before) (\d{1,2})`),
}

// parseTimeSelection reads a tour time: a clock expression, a day period, or
// an earliest/latest request. The spoken time is kept verbatim.
func (p *Parser) parseTimeSelection(text string) models.VoiceIntent {
	entity := &models.TimeSelectionEntity{}
	confidence := 0.0

	for _, pattern := range timePatterns {
		if match := pattern.FindString(text); match != "" {
			entity.Time = match
			confidence = 0.9
			break
		}
	}

	if strings.Contains(text, "morning") {
		entity.Period = "morning"
		if confidence < 0.85 {
			confidence = 0.85
		}
	} else if strings.Contains(text, "afternoon") {
		entity.Period = "afternoon"
		if confidence < 0.85 {
			confidence = 0.85
		}
	} else if strings.Contains(text, "evening") {
		entity.Period = "evening"
		if confidence < 0.85 {
			confidence = 0.85
		}
	}

	if strings.Contains(text, "earliest") || strings.Contains(text, "first available") {
		entity.Time = "earliest"
		confidence = 0.85
	} else if strings.Contains(text, "latest") || strings.Contains(text, "last available") {
		entity.Time = "latest"
		confidence = 0.85
	}

	if confidence > 0 {
		return models.VoiceIntent{
			Type:       models.IntentTimeSelection,
			Confidence: confidence,
			RawText:    text,
			Time:       entity,
		}
	}
	return models.UnknownIntent(text)
}

type relativeDatePattern struct {
	Pattern *regexp.Regexp
	Type    string
}

var relativeDatePatterns = []relativeDatePattern{
	{regexp.MustCompile(`(?i)next (monday|tuesday|wednesday|thursday|friday|saturday|sunday)`), "next_weekday"},
	{regexp.MustCompile(`(?i)this (monday|tuesday|wednesday|thursday|friday|saturday|sunday)`), "this_weekday"},
	{regexp.MustCompile(`(?i)next week(?:end)?`), "next_weekend"},
	{regexp.MustCompile(`(?i)this week(?:end)?`), "this_weekend"},
	{regexp.MustCompile(`(?i)day after tomorrow`), "day_after_tomorrow"},
	{regexp.MustCompile(`(?i)tomorrow`), "tomorrow"},
	{regexp.MustCompile(`(?i)in (\d+) days?`), "days_from_now"},
	{regexp.MustCompile(`(?i)in (\d+) weeks?`), "weeks_from_now"},
	{regexp.MustCompile(`(?i)next month`), "next_month"},
	{regexp.MustCompile(`(?i)(?:the )?(\d{1,2})(?:st|nd|rd|th)?`), "specific_day"},
}

var (
	durationPattern = regexp.MustCompile(`(?i)(\d+)\s*nights?`)
	dayOnlyPattern  = regexp.MustCompile(`(\d{1,2})(?:st|nd|rd|th)?`)
)

// ParseDateSelection resolves free-text travel dates: relative expressions,
// a night count, or a month-plus-day. Resolved stays default to five nights.
func (p *Parser) ParseDateSelection(text string) models.VoiceIntent {
	lowerText := strings.ToLower(strings.TrimSpace(text))
	entity := &models.DateSelectionEntity{}
	confidence := 0.0

	today := p.now()

	for _, rp := range relativeDatePatterns {
		if !rp.Pattern.MatchString(lowerText) {
			continue
		}
		entity.RelativeDate = rp.Type
		confidence = 0.85

		switch rp.Type {
		case "tomorrow":
			checkIn := startOfDay(today.AddDate(0, 0, 1))
			entity.CheckIn = &checkIn
		case "next_weekend":
			daysUntilFriday := (int(time.Friday) - int(today.Weekday()) + 7) % 7
			if daysUntilFriday == 0 {
				daysUntilFriday = 7
			}
			checkIn := startOfDay(today.AddDate(0, 0, daysUntilFriday))
			entity.CheckIn = &checkIn
		}
		if entity.CheckIn != nil {
			checkOut := entity.CheckIn.AddDate(0, 0, 5)
			entity.CheckOut = &checkOut
			entity.Duration = 5
		}
		break
	}

	if durationMatch := durationPattern.FindStringSubmatch(lowerText); durationMatch != nil {
		entity.Duration, _ = strconv.Atoi(durationMatch[1])
		if confidence < 0.8 {
			confidence = 0.8
		}
	}

	for i, month := range monthNames {
		if !strings.Contains(lowerText, month) {
			continue
		}
		if dayMatch := dayOnlyPattern.FindStringSubmatch(lowerText); dayMatch != nil {
			day, _ := strconv.Atoi(dayMatch[1])
			checkIn := time.Date(today.Year(), time.Month(i+1), day, 0, 0, 0, 0, today.Location())
			duration := entity.Duration
			if duration == 0 {
				duration = 5
			}
			checkOut := checkIn.AddDate(0, 0, duration)
			entity.CheckIn = &checkIn
			entity.CheckOut = &checkOut
			confidence = 0.9
		}
		break
	}

	if confidence > 0 {
		return models.VoiceIntent{
			Type:       models.IntentDateSelection,
			Confidence: confidence,
			RawText:    lowerText,
			Dates:      entity,
		}
	}
	return models.UnknownIntent(lowerText)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func containsAny(text string, cues []string) bool {
	for _, cue := range cues {
		if strings.Contains(text, cue) {
			return true
		}
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

func destinationIDs(dests []models.Destination) []string {
	ids := make([]string, 0, len(dests))
	for _, d := range dests {
		ids = append(ids, d.ID)
	}
	return ids
}

func firstWithIndicator(options []models.FlexibleDateOption, indicator string) *models.FlexibleDateOption {
	for i := range options {
		if options[i].PriceIndicator == indicator {
			return &options[i]
		}
	}
	return nil
}
