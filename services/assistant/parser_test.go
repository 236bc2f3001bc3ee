package assistant

import (
	"testing"

	"github.com/carlos-tribe/holly-assistant-hicv/models"
)

func TestParseDetailsVerification(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()

	tests := []struct {
		name       string
		text       string
		wantZip    string
		wantGuests int
		wantConf   float64
		confirmed  bool
	}{
		{"zip and guests", "32801 for 4 people", "32801", 4, 1.0, false},
		{"zip only", "my zip is 90210", "90210", 0, 0.5, false},
		{"guests only", "party of 6", "", 6, 0.5, false},
		{"number word guests", "two guests", "", 2, 0.5, false},
		{"just N of us", "just 3 of us", "", 3, 0.5, false},
		{"confirmation overrides", "yes that's right", "", 0, 0.9, true},
		{"nothing recognized", "hello there", "", 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := p.Parse(tt.text, models.StepVerifyDetails, state)
			if intent.Type != models.IntentDetailsVerification {
				t.Fatalf("type = %s, want details_verification", intent.Type)
			}
			if intent.Details.ZipCode != tt.wantZip {
				t.Errorf("zip = %q, want %q", intent.Details.ZipCode, tt.wantZip)
			}
			if intent.Details.GuestCount != tt.wantGuests {
				t.Errorf("guests = %d, want %d", intent.Details.GuestCount, tt.wantGuests)
			}
			if intent.Confidence != tt.wantConf {
				t.Errorf("confidence = %v, want %v", intent.Confidence, tt.wantConf)
			}
			if intent.Details.Confirmation != tt.confirmed {
				t.Errorf("confirmation = %v, want %v", intent.Details.Confirmation, tt.confirmed)
			}
		})
	}
}

func TestParseDestinationSelectionDirect(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()

	intent := p.Parse("I want to go to Las Vegas", models.StepSelectDestination, state)
	if intent.Type != models.IntentDestinationSelection {
		t.Fatalf("type = %s, want destination_selection", intent.Type)
	}
	if intent.Destination.Method != models.MethodDirect {
		t.Errorf("method = %s, want direct", intent.Destination.Method)
	}
	if intent.Destination.DestinationID != "las-vegas" {
		t.Errorf("destinationId = %s, want las-vegas", intent.Destination.DestinationID)
	}
	if intent.Confidence < 0.9 {
		t.Errorf("confidence = %v, want >= 0.9", intent.Confidence)
	}
}

func TestParseDestinationSelectionCascade(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()

	tests := []struct {
		name       string
		text       string
		wantMethod string
		wantConf   float64
	}{
		{"category beach", "show me some beach destinations", models.MethodCategory, 0.85},
		{"attribute warm", "somewhere warm please", models.MethodAttribute, 0.8},
		{"attribute seasonal", "we want four seasons weather", models.MethodAttribute, 0.8},
		{"comparison", "compare orlando and branson", models.MethodComparison, 0.9},
		{"exploration", "what else do you have", models.MethodExploration, 0.75},
		{"accept default", "sounds good to me", models.MethodDirect, 0.95},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := p.Parse(tt.text, models.StepSelectDestination, state)
			if intent.Type != models.IntentDestinationSelection {
				t.Fatalf("type = %s, want destination_selection", intent.Type)
			}
			if intent.Destination.Method != tt.wantMethod {
				t.Errorf("method = %s, want %s", intent.Destination.Method, tt.wantMethod)
			}
			if intent.Confidence != tt.wantConf {
				t.Errorf("confidence = %v, want %v", intent.Confidence, tt.wantConf)
			}
		})
	}
}

func TestParseDestinationAcceptanceUsesCurrentDefault(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()
	state.SelectedDestination = "gatlinburg"

	intent := p.Parse("perfect, continue", models.StepSelectDestination, state)
	if intent.Destination.DestinationID != "gatlinburg" {
		t.Errorf("destinationId = %s, want gatlinburg", intent.Destination.DestinationID)
	}
}

func TestParseDestinationComparisonTakesFirstTwo(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()

	intent := p.Parse("what's the difference between orlando and gatlinburg and branson",
		models.StepSelectDestination, state)
	if intent.Destination.Method != models.MethodComparison {
		t.Fatalf("method = %s, want comparison", intent.Destination.Method)
	}
	if len(intent.Destination.DestinationIDs) != 2 {
		t.Fatalf("got %d ids, want 2", len(intent.Destination.DestinationIDs))
	}
	if intent.Destination.DestinationIDs[0] != "orlando" || intent.Destination.DestinationIDs[1] != "branson" {
		t.Errorf("ids = %v, want table-order first two mentioned", intent.Destination.DestinationIDs)
	}
}

func TestParseDateNarrowing(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()
	state.CurrentStep = models.StepChooseDates

	tests := []struct {
		name      string
		text      string
		wantMonth string
		wantPref  string
		weekends  bool
		weekdays  bool
		wantConf  float64
	}{
		{"month name", "sometime in november", "november", models.DatePreferenceMonth, false, false, 0.9},
		{"month abbreviation", "how about dec", "december", models.DatePreferenceMonth, false, false, 0.9},
		{"flexible", "i'm flexible on dates", "", models.DatePreferenceFlexible, false, false, 0.85},
		{"weekend", "weekend trips work best", "", "", true, false, 0.85},
		{"weekday", "we prefer weekday stays", "", "", false, true, 0.85},
		{"exact date", "november 14th works", "november", models.DatePreferenceExact, false, false, 0.9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := p.Parse(tt.text, models.StepChooseDates, state)
			if intent.Type != models.IntentDateNarrowing {
				t.Fatalf("type = %s, want date_narrowing", intent.Type)
			}
			n := intent.Narrowing
			if n.PreferredMonth != tt.wantMonth {
				t.Errorf("month = %q, want %q", n.PreferredMonth, tt.wantMonth)
			}
			if n.DatePreference != tt.wantPref {
				t.Errorf("preference = %q, want %q", n.DatePreference, tt.wantPref)
			}
			if n.PreferWeekends != tt.weekends || n.PreferWeekdays != tt.weekdays {
				t.Errorf("weekends/weekdays = %v/%v, want %v/%v",
					n.PreferWeekends, n.PreferWeekdays, tt.weekends, tt.weekdays)
			}
			if intent.Confidence != tt.wantConf {
				t.Errorf("confidence = %v, want %v", intent.Confidence, tt.wantConf)
			}
		})
	}
}

func rangeFixture(n int) []models.DateRangeOption {
	options := make([]models.DateRangeOption, n)
	for i := range options {
		options[i] = models.DateRangeOption{ID: "range-" + string(rune('a'+i)), Nights: 3}
	}
	return options
}

func TestParseDateRangeSelectionOrdinals(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()
	state.DateNarrowingComplete = true
	state.DateRangeOptions = rangeFixture(4)

	tests := []struct {
		text      string
		wantIndex int
	}{
		{"the first one looks good", 0},
		{"second", 1},
		{"let's do the third option", 2},
		{"fourth", 3},
	}

	for _, tt := range tests {
		intent := p.Parse(tt.text, models.StepChooseDates, state)
		if intent.Type != models.IntentDateSelection {
			t.Fatalf("%q: type = %s, want date_selection", tt.text, intent.Type)
		}
		if intent.Dates.SelectedRangeIndex == nil || *intent.Dates.SelectedRangeIndex != tt.wantIndex {
			t.Errorf("%q: index = %v, want %d", tt.text, intent.Dates.SelectedRangeIndex, tt.wantIndex)
		}
		if intent.Dates.CheckIn != nil || intent.Dates.CheckOut != nil {
			t.Errorf("%q: ordinal pick must not carry resolved dates", tt.text)
		}
		if intent.Confidence != 0.95 {
			t.Errorf("%q: confidence = %v, want 0.95", tt.text, intent.Confidence)
		}
	}
}

func TestParseDateRangeSelectionOutOfRange(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()
	state.DateNarrowingComplete = true
	state.DateRangeOptions = rangeFixture(2)

	intent := p.Parse("fourth", models.StepChooseDates, state)
	if intent.Type != models.IntentUnknown {
		t.Errorf("type = %s, want unknown for out-of-range ordinal", intent.Type)
	}
	if intent.Confidence != 0.3 {
		t.Errorf("confidence = %v, want 0.3", intent.Confidence)
	}
}

func TestParseDateRangeRefinementBeatsOrdinal(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()
	state.DateNarrowingComplete = true
	state.DateRangeOptions = rangeFixture(4)

	intent := p.Parse("the first is fine but show more options", models.StepChooseDates, state)
	if intent.Type != models.IntentDateRefinement {
		t.Fatalf("type = %s, want date_refinement to win over ordinal", intent.Type)
	}
	if intent.Refinement.Action != models.RefineShowMore {
		t.Errorf("action = %s, want show_more", intent.Refinement.Action)
	}
}

func TestParseDateRangeRefinementActions(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()
	state.DateNarrowingComplete = true

	tests := []struct {
		text        string
		wantAction  string
		wantTimeOfM string
	}{
		{"show more", models.RefineShowMore, ""},
		{"anything earlier", models.RefineEarlier, models.TimeOfMonthEarly},
		{"something at the end of month", models.RefineLater, models.TimeOfMonthLate},
		{"let's try a different month", models.RefineChangeMonth, ""},
	}

	for _, tt := range tests {
		intent := p.Parse(tt.text, models.StepChooseDates, state)
		if intent.Type != models.IntentDateRefinement {
			t.Fatalf("%q: type = %s, want date_refinement", tt.text, intent.Type)
		}
		if intent.Refinement.Action != tt.wantAction {
			t.Errorf("%q: action = %s, want %s", tt.text, intent.Refinement.Action, tt.wantAction)
		}
		if intent.Refinement.TimeOfMonth != tt.wantTimeOfM {
			t.Errorf("%q: timeOfMonth = %s, want %s", tt.text, intent.Refinement.TimeOfMonth, tt.wantTimeOfM)
		}
	}
}

func TestParseWeekendQuestionAfterNarrowingIsUnknown(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()
	state.DateNarrowingComplete = true
	state.DateRangeOptions = rangeFixture(4)

	intent := p.Parse("do you have any weekend options", models.StepChooseDates, state)
	if intent.Type != models.IntentUnknown {
		t.Errorf("type = %s, want unknown", intent.Type)
	}
}

func TestParseFlexibleDateSelection(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()
	state.CurrentStep = models.StepChooseFlexibleDates

	tests := []struct {
		name     string
		text     string
		wantID   string
		wantConf float64
	}{
		{"ordinal", "the second option", "orl-2", 0.95},
		{"month in label", "sometime in november would be nice", "orl-1", 0.9},
		{"label keyword", "thanksgiving please", "orl-6", 0.85},
		{"value indicator", "whichever is cheapest", "orl-4", 0.8},
		{"peak indicator", "peak dates work for us", "orl-3", 0.8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := p.Parse(tt.text, models.StepChooseFlexibleDates, state)
			if intent.Type != models.IntentFlexibleDateSelection {
				t.Fatalf("type = %s, want flexible_date_selection", intent.Type)
			}
			if intent.Flexible.Option.ID != tt.wantID {
				t.Errorf("option = %s, want %s", intent.Flexible.Option.ID, tt.wantID)
			}
			if intent.Confidence != tt.wantConf {
				t.Errorf("confidence = %v, want %v", intent.Confidence, tt.wantConf)
			}
		})
	}
}

func TestParseFlexibleNoMatchIsUnknown(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()

	intent := p.Parse("hmm let me think", models.StepChooseFlexibleDates, state)
	if intent.Type != models.IntentUnknown {
		t.Errorf("type = %s, want unknown", intent.Type)
	}
}

func TestParsePropertyMatching(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()

	yes := p.Parse("yes that sounds good", models.StepPropertyMatching, state)
	if yes.Property.Confirmed == nil || !*yes.Property.Confirmed {
		t.Errorf("want confirmed true")
	}
	no := p.Parse("no, something different", models.StepPropertyMatching, state)
	if no.Property.Confirmed == nil || *no.Property.Confirmed {
		t.Errorf("want confirmed false")
	}
	free := p.Parse("we like quiet resorts with pools", models.StepPropertyMatching, state)
	if free.Property.Confirmed != nil {
		t.Errorf("free-text answer must not set confirmed")
	}
	if free.Property.Response == "" || free.Confidence != 0.7 {
		t.Errorf("free-text answer should carry the utterance at confidence 0.7")
	}
}

func TestParseTimeSelection(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()

	tests := []struct {
		name       string
		text       string
		wantTime   string
		wantPeriod string
		wantConf   float64
	}{
		{"clock time", "2:30 pm works", "2:30 pm", "", 0.9},
		{"o'clock", "10 o'clock", "10 o'clock", "", 0.9},
		{"period", "morning please", "", "morning", 0.85},
		{"earliest", "earliest you have", "earliest", "", 0.85},
		{"latest", "last available slot", "latest", "", 0.85},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			intent := p.Parse(tt.text, models.StepScheduleTour, state)
			if intent.Type != models.IntentTimeSelection {
				t.Fatalf("type = %s, want time_selection", intent.Type)
			}
			if intent.Time.Time != tt.wantTime {
				t.Errorf("time = %q, want %q", intent.Time.Time, tt.wantTime)
			}
			if intent.Time.Period != tt.wantPeriod {
				t.Errorf("period = %q, want %q", intent.Time.Period, tt.wantPeriod)
			}
			if intent.Confidence != tt.wantConf {
				t.Errorf("confidence = %v, want %v", intent.Confidence, tt.wantConf)
			}
		})
	}
}

func TestParseFallbackClassifiers(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()
	// active-package has no step parser, so utterances hit the fallbacks.

	confirm := p.Parse("yes please", models.StepActivePackage, state)
	if confirm.Type != models.IntentConfirmation || !confirm.Confirmation.Confirmed {
		t.Errorf("positive confirmation misclassified: %+v", confirm)
	}

	// Negative words are still confirmation-typed; polarity comes from the
	// positive-only list.
	negative := p.Parse("nope", models.StepActivePackage, state)
	if negative.Type != models.IntentConfirmation || negative.Confirmation.Confirmed {
		t.Errorf("negative confirmation misclassified: %+v", negative)
	}

	question := p.Parse("how much does it cost", models.StepActivePackage, state)
	if question.Type != models.IntentQuestion || question.Question.Topic != "price" {
		t.Errorf("question misclassified: %+v", question)
	}

	correction := p.Parse("i meant something else entirely", models.StepActivePackage, state)
	if correction.Type != models.IntentCorrection {
		t.Errorf("correction misclassified: %+v", correction)
	}

	unknown := p.Parse("blue penguin", models.StepActivePackage, state)
	if unknown.Type != models.IntentUnknown || unknown.Confidence != 0.3 {
		t.Errorf("unknown fallback misclassified: %+v", unknown)
	}
}

func TestZipExtractionAnywhereInUtterance(t *testing.T) {
	p := NewParser()
	state := models.NewBookingState()

	for _, text := range []string{"zip 10001", "it's 10001 here", "10001"} {
		intent := p.Parse(text, models.StepVerifyDetails, state)
		if intent.Details.ZipCode != "10001" {
			t.Errorf("%q: zip = %q, want 10001", text, intent.Details.ZipCode)
		}
	}
}
