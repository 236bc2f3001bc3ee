package models

import "time"

// BookingStep identifies one stage of the guided booking wizard.
type BookingStep string

const (
	StepActivePackage       BookingStep = "active-package"
	StepVerifyDetails       BookingStep = "verify-details"
	StepDestinationChoice   BookingStep = "destination-choice"
	StepSelectDestination   BookingStep = "select-destination"
	StepChooseDates         BookingStep = "choose-dates"
	StepChooseFlexibleDates BookingStep = "choose-flexible-dates"
	StepPropertyMatching    BookingStep = "property-matching"
	StepScheduleTour        BookingStep = "schedule-tour"
	StepFinalBooking        BookingStep = "final-booking"
)

// AllSteps lists every declared wizard step.
var AllSteps = []BookingStep{
	StepActivePackage,
	StepVerifyDetails,
	StepDestinationChoice,
	StepSelectDestination,
	StepChooseDates,
	StepChooseFlexibleDates,
	StepPropertyMatching,
	StepScheduleTour,
	StepFinalBooking,
}

// IsValidStep reports whether s is one of the declared wizard steps.
func IsValidStep(s BookingStep) bool {
	for _, step := range AllSteps {
		if step == s {
			return true
		}
	}
	return false
}

// Destination preference after the keep/explore choice.
const (
	PreferenceKeep    = "keep"
	PreferenceExplore = "explore"
)

// Date flexibility modes.
const (
	DateFlexibilityFixed    = "fixed"
	DateFlexibilityFlexible = "flexible"
)

// Date narrowing preferences.
const (
	DatePreferenceExact    = "exact"
	DatePreferenceMonth    = "month"
	DatePreferenceFlexible = "flexible"
)

// BookingState is the single mutable record of a booking session. It is
// mutated only through the assistant's reducer; readers treat each copy as
// an immutable snapshot.
type BookingState struct {
	CurrentStep BookingStep `json:"currentStep"`
	// CompletedSteps is a log of finished steps, not a set; duplicates are
	// possible and preserved.
	CompletedSteps   []BookingStep `json:"completedSteps"`
	PackageConfirmed bool          `json:"packageConfirmed"`

	ZipCode    string `json:"zipCode"`
	GuestCount int    `json:"guestCount"`

	SelectedDestination   string   `json:"selectedDestination,omitempty"`
	DestinationConfirmed  bool     `json:"destinationConfirmed"`
	ExploredDestinations  []string `json:"exploredDestinations"`
	DestinationPreference string   `json:"destinationPreference,omitempty"`

	DateFlexibility        string     `json:"dateFlexibility,omitempty"`
	SelectedFlexibleOption string     `json:"selectedFlexibleOption,omitempty"`
	CheckInDate            *time.Time `json:"checkInDate,omitempty"`
	CheckOutDate           *time.Time `json:"checkOutDate,omitempty"`
	TourTime               string     `json:"tourTime,omitempty"`

	// Two-phase date selection.
	DateNarrowingComplete  bool              `json:"dateNarrowingComplete"`
	DatePreference         string            `json:"datePreference,omitempty"`
	PreferredMonth         string            `json:"preferredMonth,omitempty"`
	DateRangeOptions       []DateRangeOption `json:"dateRangeOptions"`
	DateRangePageIndex     int               `json:"dateRangePageIndex"`
	HighlightedDateRangeID string            `json:"highlightedDateRangeId,omitempty"`

	// Property matching sub-flow. Step 3 is the automatic "thinking"
	// transition; 4 is terminal.
	PropertyMatchingStep     int    `json:"propertyMatchingStep"`
	PropertyMatchingComplete bool   `json:"propertyMatchingComplete"`
	MatchedPropertyName      string `json:"matchedPropertyName,omitempty"`
}

// NewBookingState returns the fixed session defaults: an Orlando package,
// pre-confirmed, zip 32801, four guests, fixed dates.
func NewBookingState() BookingState {
	return BookingState{
		CurrentStep:           StepActivePackage,
		CompletedSteps:        []BookingStep{},
		PackageConfirmed:      true,
		ZipCode:               "32801",
		GuestCount:            4,
		SelectedDestination:   "orlando",
		ExploredDestinations:  []string{},
		DestinationPreference: PreferenceExplore,
		DateFlexibility:       DateFlexibilityFixed,
		DateRangeOptions:      []DateRangeOption{},
	}
}

// Session is the redis-held envelope around one conversation: booking state
// plus transcript. Generation is bumped on every reset so that delayed tasks
// scheduled against an earlier lifetime of the session can detect they are
// stale and drop themselves.
type Session struct {
	ID           string       `json:"id"`
	Generation   int          `json:"generation"`
	State        BookingState `json:"state"`
	Conversation Conversation `json:"conversation"`
	// DiscussedDestination is the destination currently being presented by a
	// staged reveal, empty between reveals. View state, not booking state.
	DiscussedDestination string    `json:"discussedDestination,omitempty"`
	CreatedAt            time.Time `json:"createdAt"`
	UpdatedAt            time.Time `json:"updatedAt"`
}

// Reset reinitializes the session to its defaults and invalidates any
// pending scheduled tasks from the previous lifetime.
func (s *Session) Reset() {
	s.Generation++
	s.State = NewBookingState()
	s.Conversation = Conversation{}
	s.DiscussedDestination = ""
}
