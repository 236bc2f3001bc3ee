package assistant

import (
	"testing"
	"time"

	"github.com/carlos-tribe/holly-assistant-hicv/models"
)

var reduceNow = time.Date(2025, time.September, 15, 10, 30, 0, 0, time.Local)

func hasStep(steps []models.BookingStep, step models.BookingStep) bool {
	for _, s := range steps {
		if s == step {
			return true
		}
	}
	return false
}

func TestReduceDetailsConfirmationAdvances(t *testing.T) {
	state := models.NewBookingState()
	state.CurrentStep = models.StepVerifyDetails

	intent := models.VoiceIntent{
		Type:    models.IntentDetailsVerification,
		Details: &models.DetailsEntities{Confirmation: true},
	}
	next, _ := Reduce(intent, state, reduceNow)

	if next.CurrentStep != models.StepDestinationChoice {
		t.Errorf("step = %s, want destination-choice", next.CurrentStep)
	}
	if !hasStep(next.CompletedSteps, models.StepVerifyDetails) {
		t.Errorf("verify-details not recorded as completed")
	}
}

func TestReduceDetailsMergeWithoutConfirmation(t *testing.T) {
	state := models.NewBookingState()
	state.CurrentStep = models.StepVerifyDetails

	intent := models.VoiceIntent{
		Type:    models.IntentDetailsVerification,
		Details: &models.DetailsEntities{ZipCode: "90210", GuestCount: 2},
	}
	next, _ := Reduce(intent, state, reduceNow)

	if next.ZipCode != "90210" || next.GuestCount != 2 {
		t.Errorf("details not merged: zip=%s guests=%d", next.ZipCode, next.GuestCount)
	}
	if next.CurrentStep != models.StepVerifyDetails {
		t.Errorf("step advanced without confirmation: %s", next.CurrentStep)
	}
}

func TestReduceDetailsConfirmationNeedsCompleteDetails(t *testing.T) {
	state := models.NewBookingState()
	state.CurrentStep = models.StepVerifyDetails
	state.ZipCode = ""

	intent := models.VoiceIntent{
		Type:    models.IntentDetailsVerification,
		Details: &models.DetailsEntities{Confirmation: true},
	}
	next, _ := Reduce(intent, state, reduceNow)

	if next.CurrentStep != models.StepVerifyDetails {
		t.Errorf("step = %s, want verify-details to hold with missing zip", next.CurrentStep)
	}
}

func TestReduceDirectDestination(t *testing.T) {
	tests := []struct {
		name        string
		flexibility string
		wantStep    models.BookingStep
	}{
		{"fixed dates", models.DateFlexibilityFixed, models.StepChooseDates},
		{"flexible dates", models.DateFlexibilityFlexible, models.StepChooseFlexibleDates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state := models.NewBookingState()
			state.CurrentStep = models.StepSelectDestination
			state.DateFlexibility = tt.flexibility

			intent := models.VoiceIntent{
				Type: models.IntentDestinationSelection,
				Destination: &models.DestinationSelectionEntity{
					Method:        models.MethodDirect,
					DestinationID: "gatlinburg",
				},
			}
			next, effects := Reduce(intent, state, reduceNow)

			if next.SelectedDestination != "gatlinburg" || !next.DestinationConfirmed {
				t.Errorf("destination not committed: %+v", next)
			}
			if next.CurrentStep != tt.wantStep {
				t.Errorf("step = %s, want %s", next.CurrentStep, tt.wantStep)
			}
			if !containsString(next.ExploredDestinations, "gatlinburg") {
				t.Errorf("gatlinburg not recorded as explored")
			}
			if !effects.ClearDiscussed {
				t.Errorf("want ClearDiscussed effect")
			}
		})
	}
}

func TestReduceCategorySuggestsWithoutCommitting(t *testing.T) {
	state := models.NewBookingState()
	state.CurrentStep = models.StepSelectDestination

	intent := models.VoiceIntent{
		Type: models.IntentDestinationSelection,
		Destination: &models.DestinationSelectionEntity{
			Method:         models.MethodCategory,
			Category:       "beaches",
			DestinationIDs: []string{"cocoa-beach", "myrtle-beach", "galveston", "orlando"},
		},
	}
	next, effects := Reduce(intent, state, reduceNow)

	if next.CurrentStep != models.StepSelectDestination {
		t.Errorf("category suggestion must not advance the step: %s", next.CurrentStep)
	}
	if next.DestinationConfirmed {
		t.Errorf("category suggestion must not confirm a destination")
	}
	if len(effects.SuggestedDestinations) != 4 {
		t.Errorf("suggestions = %v, want all four", effects.SuggestedDestinations)
	}
	if len(effects.StagedReveal) != 3 {
		t.Errorf("staged reveal = %v, want cap at three", effects.StagedReveal)
	}
	for _, id := range intent.Destination.DestinationIDs {
		if !containsString(next.ExploredDestinations, id) {
			t.Errorf("%s not recorded as explored", id)
		}
	}
}

func TestReduceComparisonTakesPair(t *testing.T) {
	state := models.NewBookingState()

	intent := models.VoiceIntent{
		Type: models.IntentDestinationSelection,
		Destination: &models.DestinationSelectionEntity{
			Method:         models.MethodComparison,
			DestinationIDs: []string{"orlando", "branson"},
		},
	}
	next, effects := Reduce(intent, state, reduceNow)

	if len(effects.SuggestedDestinations) != 2 {
		t.Errorf("suggestions = %v, want the compared pair", effects.SuggestedDestinations)
	}
	if !containsString(next.ExploredDestinations, "orlando") || !containsString(next.ExploredDestinations, "branson") {
		t.Errorf("compared destinations not recorded as explored: %v", next.ExploredDestinations)
	}
}

func TestReduceExplorationFiltersExplored(t *testing.T) {
	state := models.NewBookingState()
	state.ExploredDestinations = []string{"las-vegas"}

	intent := models.VoiceIntent{
		Type:        models.IntentDestinationSelection,
		Destination: &models.DestinationSelectionEntity{Method: models.MethodExploration},
	}
	_, effects := Reduce(intent, state, reduceNow)

	want := []string{"myrtle-beach", "new-orleans"}
	if len(effects.SuggestedDestinations) != len(want) {
		t.Fatalf("suggestions = %v, want %v", effects.SuggestedDestinations, want)
	}
	for i := range want {
		if effects.SuggestedDestinations[i] != want[i] {
			t.Errorf("suggestions = %v, want %v", effects.SuggestedDestinations, want)
		}
	}
}

func TestReduceDateSelectionCommitsOnBothDates(t *testing.T) {
	state := models.NewBookingState()
	state.CurrentStep = models.StepChooseDates
	state.HighlightedDateRangeID = "range-1"

	checkIn := time.Date(2025, time.November, 7, 0, 0, 0, 0, time.Local)
	checkOut := checkIn.AddDate(0, 0, 3)
	intent := models.VoiceIntent{
		Type:  models.IntentDateSelection,
		Dates: &models.DateSelectionEntity{CheckIn: &checkIn, CheckOut: &checkOut},
	}
	next, _ := Reduce(intent, state, reduceNow)

	if next.CheckInDate == nil || !next.CheckInDate.Equal(checkIn) {
		t.Errorf("check-in not committed")
	}
	if next.CurrentStep != models.StepScheduleTour {
		t.Errorf("step = %s, want schedule-tour", next.CurrentStep)
	}
	if !hasStep(next.CompletedSteps, models.StepChooseDates) {
		t.Errorf("choose-dates not recorded as completed")
	}
	if next.HighlightedDateRangeID != "" {
		t.Errorf("highlight not cleared on commit")
	}
}

func TestReduceOrdinalPickHighlightsOnly(t *testing.T) {
	state := models.NewBookingState()
	state.CurrentStep = models.StepChooseDates

	idx := 1
	intent := models.VoiceIntent{
		Type: models.IntentDateSelection,
		Dates: &models.DateSelectionEntity{
			SelectedRangeIndex: &idx,
			SelectedRange:      &models.DateRangeOption{ID: "range-42"},
		},
	}
	next, _ := Reduce(intent, state, reduceNow)

	if next.HighlightedDateRangeID != "range-42" {
		t.Errorf("highlight = %q, want range-42", next.HighlightedDateRangeID)
	}
	if next.CurrentStep != models.StepChooseDates {
		t.Errorf("ordinal pick must not advance the step: %s", next.CurrentStep)
	}
	if next.CheckInDate != nil {
		t.Errorf("ordinal pick must not commit dates")
	}
}

func TestReduceSingleDateIsEffectOnly(t *testing.T) {
	state := models.NewBookingState()
	state.CurrentStep = models.StepChooseDates

	checkIn := time.Date(2025, time.November, 7, 0, 0, 0, 0, time.Local)
	intent := models.VoiceIntent{
		Type:  models.IntentDateSelection,
		Dates: &models.DateSelectionEntity{CheckIn: &checkIn},
	}
	next, effects := Reduce(intent, state, reduceNow)

	if next.CheckInDate != nil {
		t.Errorf("single date must not be committed")
	}
	if effects.HighlightCheckIn == nil || !effects.HighlightCheckIn.Equal(checkIn) {
		t.Errorf("want check-in highlight effect")
	}
}

func TestReduceNarrowingRequestsRegeneration(t *testing.T) {
	state := models.NewBookingState()
	state.CurrentStep = models.StepChooseDates

	intent := models.VoiceIntent{
		Type: models.IntentDateNarrowing,
		Narrowing: &models.DateNarrowingEntity{
			PreferredMonth: "november",
			DatePreference: models.DatePreferenceMonth,
			PreferWeekends: true,
		},
	}
	next, effects := Reduce(intent, state, reduceNow)

	if next.PreferredMonth != "november" || next.DatePreference != models.DatePreferenceMonth {
		t.Errorf("narrowing not merged: %+v", next)
	}
	if !effects.RegenerateRanges || effects.RangeFilters == nil {
		t.Fatalf("want range regeneration effect")
	}
	if effects.RangeFilters.Month != "november" || !effects.RangeFilters.PreferWeekends {
		t.Errorf("filters = %+v", effects.RangeFilters)
	}
}

func TestReduceRefinement(t *testing.T) {
	state := models.NewBookingState()
	state.PreferredMonth = "november"

	t.Run("show more advances the page", func(t *testing.T) {
		intent := models.VoiceIntent{
			Type:       models.IntentDateRefinement,
			Refinement: &models.DateRefinementEntity{Action: models.RefineShowMore},
		}
		_, effects := Reduce(intent, state, reduceNow)
		if !effects.AdvancePage || !effects.RegenerateRanges {
			t.Errorf("effects = %+v", effects)
		}
		if effects.RangeFilters.Month != "november" {
			t.Errorf("month filter dropped: %+v", effects.RangeFilters)
		}
	})

	t.Run("earlier narrows to early month", func(t *testing.T) {
		intent := models.VoiceIntent{
			Type: models.IntentDateRefinement,
			Refinement: &models.DateRefinementEntity{
				Action:      models.RefineEarlier,
				TimeOfMonth: models.TimeOfMonthEarly,
			},
		}
		_, effects := Reduce(intent, state, reduceNow)
		if effects.RangeFilters.TimeOfMonth != models.TimeOfMonthEarly {
			t.Errorf("filters = %+v", effects.RangeFilters)
		}
	})

	t.Run("change month drops the filter", func(t *testing.T) {
		intent := models.VoiceIntent{
			Type:       models.IntentDateRefinement,
			Refinement: &models.DateRefinementEntity{Action: models.RefineChangeMonth},
		}
		next, effects := Reduce(intent, state, reduceNow)
		if next.PreferredMonth != "" || effects.RangeFilters.Month != "" {
			t.Errorf("month filter kept: state=%q filters=%+v", next.PreferredMonth, effects.RangeFilters)
		}
	})
}

func TestReduceFlexibleSelectionCommits(t *testing.T) {
	state := models.NewBookingState()
	state.CurrentStep = models.StepChooseFlexibleDates

	intent := models.VoiceIntent{
		Type:     models.IntentFlexibleDateSelection,
		Flexible: &models.FlexibleSelectionEntity{Option: &models.FlexibleDateOption{ID: "orl-2"}},
	}
	next, _ := Reduce(intent, state, reduceNow)

	if next.SelectedFlexibleOption != "orl-2" {
		t.Errorf("option = %q, want orl-2", next.SelectedFlexibleOption)
	}
	want := time.Date(2025, time.November, 14, 0, 0, 0, 0, time.Local)
	if next.CheckInDate == nil || !next.CheckInDate.Equal(want) {
		t.Errorf("check-in = %v, want %v (re-resolved from the catalog)", next.CheckInDate, want)
	}
	if next.CurrentStep != models.StepScheduleTour {
		t.Errorf("step = %s, want schedule-tour", next.CurrentStep)
	}
}

func TestReduceFlexibleSelectionUnknownOptionIsNoOp(t *testing.T) {
	state := models.NewBookingState()
	state.CurrentStep = models.StepChooseFlexibleDates

	intent := models.VoiceIntent{
		Type:     models.IntentFlexibleDateSelection,
		Flexible: &models.FlexibleSelectionEntity{Option: &models.FlexibleDateOption{ID: "orl-99"}},
	}
	next, _ := Reduce(intent, state, reduceNow)

	if next.SelectedFlexibleOption != "" || next.CurrentStep != models.StepChooseFlexibleDates {
		t.Errorf("unknown option must not mutate state: %+v", next)
	}
}

func TestReduceTimeSelection(t *testing.T) {
	state := models.NewBookingState()
	state.CurrentStep = models.StepScheduleTour

	t.Run("verbatim time", func(t *testing.T) {
		intent := models.VoiceIntent{
			Type: models.IntentTimeSelection,
			Time: &models.TimeSelectionEntity{Time: "2:30 pm"},
		}
		next, _ := Reduce(intent, state, reduceNow)
		want := reduceNow.Format("Mon Jan 02 2006") + " at 2:30 pm EST"
		if next.TourTime != want {
			t.Errorf("tourTime = %q, want %q", next.TourTime, want)
		}
		if next.CurrentStep != models.StepFinalBooking {
			t.Errorf("step = %s, want final-booking", next.CurrentStep)
		}
		if !hasStep(next.CompletedSteps, models.StepScheduleTour) {
			t.Errorf("schedule-tour not recorded as completed")
		}
	})

	t.Run("period becomes a slot", func(t *testing.T) {
		intent := models.VoiceIntent{
			Type: models.IntentTimeSelection,
			Time: &models.TimeSelectionEntity{Period: "morning"},
		}
		next, _ := Reduce(intent, state, reduceNow)
		want := reduceNow.Format("Mon Jan 02 2006") + " at morning slot EST"
		if next.TourTime != want {
			t.Errorf("tourTime = %q, want %q", next.TourTime, want)
		}
	})
}

func TestReduceIsFailSilent(t *testing.T) {
	state := models.NewBookingState()
	state.CurrentStep = models.StepChooseDates

	intents := []models.VoiceIntent{
		{Type: models.IntentDetailsVerification},
		{Type: models.IntentDestinationSelection},
		{Type: models.IntentDateSelection},
		{Type: models.IntentDateNarrowing},
		{Type: models.IntentDateRefinement},
		{Type: models.IntentFlexibleDateSelection},
		{Type: models.IntentTimeSelection},
		{Type: models.IntentUnknown, Confidence: 0.3},
		{Type: models.IntentQuestion, Question: &models.QuestionEntity{Topic: "price"}},
	}
	for _, intent := range intents {
		next, _ := Reduce(intent, state, reduceNow)
		if next.CurrentStep != state.CurrentStep {
			t.Errorf("%s: step changed to %s", intent.Type, next.CurrentStep)
		}
	}
}

func TestReduceStepsStayDeclared(t *testing.T) {
	// Every step the reducer can land on must be a declared wizard step.
	landings := []models.BookingStep{
		models.StepDestinationChoice,
		models.StepChooseDates,
		models.StepChooseFlexibleDates,
		models.StepScheduleTour,
		models.StepFinalBooking,
	}
	for _, step := range landings {
		if !models.IsValidStep(step) {
			t.Errorf("%s is not a declared step", step)
		}
	}
}
