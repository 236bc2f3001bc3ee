// File: services/catalog/availability.go
package catalog

import (
	"time"

	"github.com/carlos-tribe/holly-assistant-hicv/models"
)

// DestinationAvailabilityTable holds aggregate monthly availability per
// destination (union of all properties).
var DestinationAvailabilityTable = map[string]models.DestinationAvailability{
	"orlando":      {Sep: models.AvailabilityGood, Oct: models.AvailabilityGood, Nov: models.AvailabilityGood, Dec: models.AvailabilityLimited},
	"cocoa-beach":  {Sep: models.AvailabilityGood, Oct: models.AvailabilityGood, Nov: models.AvailabilityGood, Dec: models.AvailabilityLimited},
	"las-vegas":    {Sep: models.AvailabilityGood, Oct: models.AvailabilityGood, Nov: models.AvailabilityLimited, Dec: models.AvailabilityLow},
	"myrtle-beach": {Sep: models.AvailabilityGood, Oct: models.AvailabilityGood, Nov: models.AvailabilityLimited, Dec: models.AvailabilityLow},
	"new-orleans":  {Sep: models.AvailabilityGood, Oct: models.AvailabilityGood, Nov: models.AvailabilityGood, Dec: models.AvailabilityLimited},
	"galveston":    {Sep: models.AvailabilityGood, Oct: models.AvailabilityGood, Nov: models.AvailabilityGood, Dec: models.AvailabilityLimited},
	"gatlinburg":   {Sep: models.AvailabilityGood, Oct: models.AvailabilityLimited, Nov: models.AvailabilityGood, Dec: models.AvailabilityGood},
	"lake-tahoe":   {Sep: models.AvailabilityGood, Oct: models.AvailabilityLimited, Nov: models.AvailabilityGood, Dec: models.AvailabilityGood},
	"branson":      {Sep: models.AvailabilityGood, Oct: models.AvailabilityGood, Nov: models.AvailabilityLimited, Dec: models.AvailabilityLimited},
	"scottsdale":   {Sep: models.AvailabilityLimited, Oct: models.AvailabilityGood, Nov: models.AvailabilityGood, Dec: models.AvailabilityGood},
	"williamsburg": {Sep: models.AvailabilityGood, Oct: models.AvailabilityGood, Nov: models.AvailabilityLimited, Dec: models.AvailabilityLow},
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

// FlexibleDateRanges holds curated date options per destination. Only the
// headline destinations are stocked; the rest fall through to the generated
// ranges flow.
var FlexibleDateRanges = map[string][]models.FlexibleDateOption{
	"orlando": {
		{ID: "orl-1", CheckIn: date(2025, time.November, 7), CheckOut: date(2025, time.November, 10), Nights: 3, Label: "First Weekend of November", PropertyID: 1, PropertyName: "Holiday Inn International Drive", PriceIndicator: models.PriceStandard},
		{ID: "orl-2", CheckIn: date(2025, time.November, 14), CheckOut: date(2025, time.November, 17), Nights: 3, Label: "Mid-November Weekend", PropertyID: 2, PropertyName: "Holiday Inn & Suites Celebration Area", PriceIndicator: models.PriceStandard},
		{ID: "orl-3", CheckIn: date(2025, time.December, 19), CheckOut: date(2025, time.December, 22), Nights: 3, Label: "Holiday Season Weekend", PropertyID: 3, PropertyName: "Crowne Plaza Lake Buena Vista", PriceIndicator: models.PricePeak},
		{ID: "orl-4", CheckIn: date(2025, time.October, 20), CheckOut: date(2025, time.October, 23), Nights: 3, Label: "Midweek October Escape", PropertyID: 1, PropertyName: "Holiday Inn International Drive", PriceIndicator: models.PriceValue},
		{ID: "orl-5", CheckIn: date(2025, time.September, 12), CheckOut: date(2025, time.September, 15), Nights: 3, Label: "Early September Weekend", PropertyID: 2, PropertyName: "Holiday Inn & Suites Celebration Area", PriceIndicator: models.PriceValue},
		{ID: "orl-6", CheckIn: date(2025, time.November, 26), CheckOut: date(2025, time.November, 29), Nights: 3, Label: "Thanksgiving Week", PropertyID: 3, PropertyName: "Crowne Plaza Lake Buena Vista", PriceIndicator: models.PricePeak},
	},
	"cocoa-beach": {
		{ID: "cb-1", CheckIn: date(2025, time.November, 7), CheckOut: date(2025, time.November, 10), Nights: 3, Label: "First Weekend of November", PropertyID: 1, PropertyName: "Holiday Inn Express® & Suites Cocoa Beach", PriceIndicator: models.PriceStandard},
		{ID: "cb-2", CheckIn: date(2025, time.December, 22), CheckOut: date(2025, time.December, 25), Nights: 3, Label: "Christmas Week", PropertyID: 2, PropertyName: "Crowne Plaza® Melbourne – Oceanfront", PriceIndicator: models.PricePeak},
		{ID: "cb-3", CheckIn: date(2025, time.October, 10), CheckOut: date(2025, time.October, 13), Nights: 3, Label: "October Beach Weekend", PropertyID: 1, PropertyName: "Holiday Inn Express® & Suites Cocoa Beach", PriceIndicator: models.PriceStandard},
		{ID: "cb-4", CheckIn: date(2025, time.September, 15), CheckOut: date(2025, time.September, 18), Nights: 3, Label: "Midweek September Special", PropertyID: 3, PropertyName: "Holiday Inn Express® & Suites Cocoa", PriceIndicator: models.PriceValue},
		{ID: "cb-5", CheckIn: date(2025, time.November, 21), CheckOut: date(2025, time.November, 24), Nights: 3, Label: "Pre-Thanksgiving Getaway", PropertyID: 2, PropertyName: "Crowne Plaza® Melbourne – Oceanfront", PriceIndicator: models.PriceStandard},
		{ID: "cb-6", CheckIn: date(2025, time.December, 5), CheckOut: date(2025, time.December, 8), Nights: 3, Label: "Early December Beach Escape", PropertyID: 1, PropertyName: "Holiday Inn Express® & Suites Cocoa Beach", PriceIndicator: models.PriceStandard},
	},
	"las-vegas": {
		{ID: "lv-1", CheckIn: date(2025, time.October, 17), CheckOut: date(2025, time.October, 20), Nights: 3, Label: "October Vegas Weekend", PropertyID: 1, PropertyName: "Desert Springs Resort", PriceIndicator: models.PriceStandard},
		{ID: "lv-2", CheckIn: date(2025, time.November, 7), CheckOut: date(2025, time.November, 10), Nights: 3, Label: "Vegas Entertainment Weekend", PropertyID: 1, PropertyName: "Desert Springs Resort", PriceIndicator: models.PriceStandard},
		{ID: "lv-3", CheckIn: date(2025, time.September, 22), CheckOut: date(2025, time.September, 25), Nights: 3, Label: "Midweek September Deal", PropertyID: 1, PropertyName: "Desert Springs Resort", PriceIndicator: models.PriceValue},
		{ID: "lv-4", CheckIn: date(2025, time.December, 31), CheckOut: date(2026, time.January, 3), Nights: 3, Label: "New Year's Eve Celebration", PropertyID: 1, PropertyName: "Desert Springs Resort", PriceIndicator: models.PricePeak},
	},
	"myrtle-beach": {
		{ID: "mb-1", CheckIn: date(2025, time.October, 3), CheckOut: date(2025, time.October, 6), Nights: 3, Label: "Fall Beach Weekend", PropertyID: 1, PropertyName: "Myrtle Beach Oceanfront Resort", PriceIndicator: models.PriceStandard},
		{ID: "mb-2", CheckIn: date(2025, time.September, 8), CheckOut: date(2025, time.September, 11), Nights: 3, Label: "Late Summer Escape", PropertyID: 1, PropertyName: "Myrtle Beach Oceanfront Resort", PriceIndicator: models.PriceValue},
		{ID: "mb-3", CheckIn: date(2025, time.November, 14), CheckOut: date(2025, time.November, 17), Nights: 3, Label: "Peaceful November Getaway", PropertyID: 1, PropertyName: "Myrtle Beach Oceanfront Resort", PriceIndicator: models.PriceValue},
	},
	"new-orleans":  {},
	"galveston":    {},
	"gatlinburg":   {},
	"lake-tahoe":   {},
	"branson":      {},
	"scottsdale":   {},
	"williamsburg": {},
}

// GetDestinationAvailability returns the monthly availability snapshot for a
// destination, and whether one exists.
func GetDestinationAvailability(destinationID string) (models.DestinationAvailability, bool) {
	avail, ok := DestinationAvailabilityTable[destinationID]
	return avail, ok
}

// AvailabilityDisplay renders a status code as a guest-facing label.
func AvailabilityDisplay(status string) string {
	switch status {
	case models.AvailabilityGood:
		return "Great"
	case models.AvailabilityLimited:
		return "Limited"
	case models.AvailabilityLow:
		return "Almost full"
	case models.AvailabilityNone:
		return "Sold out"
	}
	return ""
}

// GetFlexibleDatesForDestination returns the curated options for a
// destination, possibly empty.
func GetFlexibleDatesForDestination(destinationID string) []models.FlexibleDateOption {
	return FlexibleDateRanges[destinationID]
}

// GetFlexibleDateOptionByID finds a curated option across all destinations.
func GetFlexibleDateOptionByID(id string) *models.FlexibleDateOption {
	for _, options := range FlexibleDateRanges {
		for i := range options {
			if options[i].ID == id {
				return &options[i]
			}
		}
	}
	return nil
}
