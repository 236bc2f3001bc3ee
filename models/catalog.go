package models

import "time"

// Weather attribute values.
const (
	WeatherWarm      = "warm"
	WeatherYearRound = "year-round"
	WeatherSeasonal  = "seasonal"
)

// Attraction is a nearby point of interest with its distance from the resort.
type Attraction struct {
	Name     string `json:"name"`
	Distance string `json:"distance"`
}

// BudgetActivity is a low-cost activity suggestion for a destination.
type BudgetActivity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        string `json:"cost,omitempty"`
}

// DestinationAttributes captures the filterable traits of a destination.
type DestinationAttributes struct {
	Weather string   `json:"weather"`
	Vibe    []string `json:"vibe"`
}

// Destination is one bookable vacation destination.
type Destination struct {
	ID                string                `json:"id"`
	Name              string                `json:"name"`
	State             string                `json:"state"`
	Tagline           string                `json:"tagline"`
	Overview          string                `json:"overview"`
	KeyFacts          []string              `json:"keyFacts"`
	NearbyAttractions []Attraction          `json:"nearbyAttractions"`
	BudgetActivities  []BudgetActivity      `json:"budgetActivities"`
	Categories        []string              `json:"categories"`
	Attributes        DestinationAttributes `json:"attributes"`
}

// DisplayName renders "Name, State".
func (d Destination) DisplayName() string {
	return d.Name + ", " + d.State
}

// Availability levels per month.
const (
	AvailabilityGood    = "good"
	AvailabilityLimited = "limited"
	AvailabilityLow     = "low"
	AvailabilityNone    = "none"
)

// DestinationAvailability is the aggregate monthly availability for a
// destination (union of all properties).
type DestinationAvailability struct {
	Sep string `json:"sep"`
	Oct string `json:"oct"`
	Nov string `json:"nov"`
	Dec string `json:"dec"`
}

// Price indicators on curated flexible date options.
const (
	PriceStandard = "standard"
	PricePeak     = "peak"
	PriceValue    = "value"
)

// FlexibleDateOption is a curated, pre-priced check-in/out pair tied to a
// specific property.
type FlexibleDateOption struct {
	ID             string    `json:"id"`
	CheckIn        time.Time `json:"checkIn"`
	CheckOut       time.Time `json:"checkOut"`
	Nights         int       `json:"nights"`
	Label          string    `json:"label"`
	PropertyID     int       `json:"propertyId"`
	PropertyName   string    `json:"propertyName"`
	PriceIndicator string    `json:"priceIndicator"`
}

// DateRangeOption is an algorithmically generated 4-day/3-night candidate
// stay with precomputed display strings.
type DateRangeOption struct {
	ID                string    `json:"id"`
	CheckInDate       time.Time `json:"checkInDate"`
	CheckInDay        string    `json:"checkInDay"`
	CheckInFormatted  string    `json:"checkInFormatted"`
	CheckOutDate      time.Time `json:"checkOutDate"`
	CheckOutDay       string    `json:"checkOutDay"`
	CheckOutFormatted string    `json:"checkOutFormatted"`
	IsPeak            bool      `json:"isPeak"`
	Nights            int       `json:"nights"`
}

// Time-of-month windows for range generation.
const (
	TimeOfMonthEarly = "early"
	TimeOfMonthMid   = "mid"
	TimeOfMonthLate  = "late"
)

// ExactDates is a user-supplied check-in/check-out pair.
type ExactDates struct {
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`
}

// DateRangeFilters narrows date range generation.
type DateRangeFilters struct {
	Month          string      `json:"month,omitempty"`
	PreferWeekends bool        `json:"preferWeekends,omitempty"`
	PreferWeekdays bool        `json:"preferWeekdays,omitempty"`
	TimeOfMonth    string      `json:"timeOfMonth,omitempty"`
	ExactDates     *ExactDates `json:"exactDates,omitempty"`
}

// MonthOption is one entry of the narrowing-phase month picker.
type MonthOption struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Year int    `json:"year"`
}
