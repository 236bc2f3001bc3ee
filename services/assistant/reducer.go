// File: services/assistant/reducer.go
package assistant

import (
	"time"

	"github.com/carlos-tribe/holly-assistant-hicv/models"
	"github.com/carlos-tribe/holly-assistant-hicv/services/catalog"
)

// ExplorationSuggestions is the fixed suggestion list offered when a guest
// asks to explore beyond the default destination.
var ExplorationSuggestions = []string{"las-vegas", "myrtle-beach", "new-orleans"}

// Effects is the view-state side channel of a reduction: transient hints for
// the rendering layer that are never persisted into BookingState.
type Effects struct {
	// SuggestedDestinations highlights candidate destinations on screen.
	SuggestedDestinations []string `json:"suggestedDestinations,omitempty"`
	// StagedReveal requests a timed, one-by-one presentation of the listed
	// destinations.
	StagedReveal []string `json:"stagedReveal,omitempty"`
	// ClearDiscussed clears any currently highlighted destination.
	ClearDiscussed bool `json:"clearDiscussed,omitempty"`

	HighlightCheckIn  *time.Time `json:"highlightCheckIn,omitempty"`
	HighlightCheckOut *time.Time `json:"highlightCheckOut,omitempty"`

	HighlightedTimeSlot string `json:"highlightedTimeSlot,omitempty"`

	// RegenerateRanges asks the session layer to rebuild the date range page
	// with the given filters.
	RegenerateRanges bool                     `json:"regenerateRanges,omitempty"`
	RangeFilters     *models.DateRangeFilters `json:"rangeFilters,omitempty"`
	AdvancePage      bool                     `json:"advancePage,omitempty"`
}

// Reduce applies one classified intent to the booking state and returns the
// next state plus transient effects. It never fails: malformed or off-step
// intents leave the state untouched.
func Reduce(intent models.VoiceIntent, state models.BookingState, now time.Time) (models.BookingState, Effects) {
	var effects Effects

	switch intent.Type {
	case models.IntentDetailsVerification:
		if intent.Details == nil {
			break
		}
		if intent.Details.Confirmation && state.ZipCode != "" && state.GuestCount > 0 {
			state.CompletedSteps = append(state.CompletedSteps, models.StepVerifyDetails)
			state.CurrentStep = models.StepDestinationChoice
			break
		}
		if intent.Details.ZipCode != "" {
			state.ZipCode = intent.Details.ZipCode
		}
		if intent.Details.GuestCount > 0 {
			state.GuestCount = intent.Details.GuestCount
		}

	case models.IntentDestinationSelection:
		state, effects = reduceDestination(intent.Destination, state)

	case models.IntentDateSelection:
		if intent.Dates == nil {
			break
		}
		if intent.Dates.CheckIn != nil && intent.Dates.CheckOut != nil {
			state.CheckInDate = intent.Dates.CheckIn
			state.CheckOutDate = intent.Dates.CheckOut
			state.CompletedSteps = append(state.CompletedSteps, models.StepChooseDates)
			state.CurrentStep = models.StepScheduleTour
			state.HighlightedDateRangeID = ""
		} else if intent.Dates.SelectedRange != nil {
			// Ordinal pick: highlight only. Commitment happens through an
			// explicit range selection.
			state.HighlightedDateRangeID = intent.Dates.SelectedRange.ID
		} else if intent.Dates.CheckIn != nil || intent.Dates.CheckOut != nil {
			effects.HighlightCheckIn = intent.Dates.CheckIn
			effects.HighlightCheckOut = intent.Dates.CheckOut
		}

	case models.IntentDateNarrowing:
		if intent.Narrowing == nil {
			break
		}
		if intent.Narrowing.PreferredMonth != "" {
			state.PreferredMonth = intent.Narrowing.PreferredMonth
		}
		if intent.Narrowing.DatePreference != "" {
			state.DatePreference = intent.Narrowing.DatePreference
		}
		effects.RegenerateRanges = true
		effects.RangeFilters = &models.DateRangeFilters{
			Month:          state.PreferredMonth,
			PreferWeekends: intent.Narrowing.PreferWeekends,
			PreferWeekdays: intent.Narrowing.PreferWeekdays,
		}

	case models.IntentDateRefinement:
		if intent.Refinement == nil {
			break
		}
		effects.RegenerateRanges = true
		filters := &models.DateRangeFilters{Month: state.PreferredMonth}
		switch intent.Refinement.Action {
		case models.RefineShowMore:
			effects.AdvancePage = true
		case models.RefineEarlier, models.RefineLater:
			filters.TimeOfMonth = intent.Refinement.TimeOfMonth
		case models.RefineChangeMonth:
			// Drop the month filter so a fresh month can be chosen.
			filters.Month = ""
			state.PreferredMonth = ""
		}
		effects.RangeFilters = filters

	case models.IntentFlexibleDateSelection:
		if intent.Flexible == nil || intent.Flexible.Option == nil {
			break
		}
		option := catalog.GetFlexibleDateOptionByID(intent.Flexible.Option.ID)
		if option == nil {
			break
		}
		checkIn := option.CheckIn
		checkOut := option.CheckOut
		state.SelectedFlexibleOption = option.ID
		state.CheckInDate = &checkIn
		state.CheckOutDate = &checkOut
		state.CompletedSteps = append(state.CompletedSteps, models.StepChooseFlexibleDates)
		state.CurrentStep = models.StepScheduleTour

	case models.IntentTimeSelection:
		if intent.Time == nil {
			break
		}
		if intent.Time.Time != "" || intent.Time.Period != "" {
			tourTimeStr := intent.Time.Time
			if tourTimeStr == "" {
				tourTimeStr = intent.Time.Period + " slot"
			}
			// Wall-clock date, not the trip date. Kept as-is.
			state.TourTime = now.Format("Mon Jan 02 2006") + " at " + tourTimeStr + " EST"
			state.CompletedSteps = append(state.CompletedSteps, models.StepScheduleTour)
			state.CurrentStep = models.StepFinalBooking
		} else {
			effects.HighlightedTimeSlot = intent.Time.Time
		}
	}

	return state, effects
}

func reduceDestination(entity *models.DestinationSelectionEntity, state models.BookingState) (models.BookingState, Effects) {
	var effects Effects
	if entity == nil {
		return state, effects
	}

	switch entity.Method {
	case models.MethodDirect:
		if entity.DestinationID == "" {
			break
		}
		nextStep := models.StepChooseFlexibleDates
		if state.DateFlexibility == models.DateFlexibilityFixed {
			nextStep = models.StepChooseDates
		}
		state.SelectedDestination = entity.DestinationID
		state.DestinationConfirmed = true
		state.ExploredDestinations = appendUnique(state.ExploredDestinations, entity.DestinationID)
		state.CompletedSteps = append(state.CompletedSteps, models.StepSelectDestination)
		state.CurrentStep = nextStep
		effects.ClearDiscussed = true

	case models.MethodCategory, models.MethodAttribute:
		if len(entity.DestinationIDs) == 0 {
			break
		}
		effects.SuggestedDestinations = entity.DestinationIDs
		for _, id := range entity.DestinationIDs {
			state.ExploredDestinations = appendUnique(state.ExploredDestinations, id)
		}
		reveal := entity.DestinationIDs
		if len(reveal) > 3 {
			reveal = reveal[:3]
		}
		effects.StagedReveal = reveal

	case models.MethodComparison:
		if len(entity.DestinationIDs) < 2 {
			break
		}
		pair := entity.DestinationIDs[:2]
		effects.SuggestedDestinations = pair
		for _, id := range pair {
			state.ExploredDestinations = appendUnique(state.ExploredDestinations, id)
		}

	case models.MethodExploration:
		var suggestions []string
		for _, id := range ExplorationSuggestions {
			if !containsString(state.ExploredDestinations, id) {
				suggestions = append(suggestions, id)
			}
		}
		effects.SuggestedDestinations = suggestions
	}

	return state, effects
}

func appendUnique(values []string, value string) []string {
	if containsString(values, value) {
		return values
	}
	return append(values, value)
}
