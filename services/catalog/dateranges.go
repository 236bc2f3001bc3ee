// File: services/catalog/dateranges.go
package catalog

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/carlos-tribe/holly-assistant-hicv/models"
)

// DefaultRangeLimit is how many generated range options are offered per page.
const DefaultRangeLimit = 5

// isPeakDate reports weekend or major-holiday pricing for a date.
func isPeakDate(d time.Time) bool {
	weekday := d.Weekday()
	isWeekend := weekday == time.Sunday || weekday == time.Saturday

	month := d.Month()
	day := d.Day()

	isHoliday := (month == time.November && day >= 22 && day <= 28 && weekday == time.Thursday) ||
		(month == time.December && day >= 24 && day <= 26) ||
		(month == time.December && day == 31) ||
		(month == time.January && day == 1) ||
		(month == time.July && day == 4)

	return isWeekend || isHoliday
}

// includesWeekend reports whether [checkIn, checkOut] contains a Sat or Sun.
func includesWeekend(checkIn, checkOut time.Time) bool {
	for current := checkIn; !current.After(checkOut); current = current.AddDate(0, 0, 1) {
		if current.Weekday() == time.Sunday || current.Weekday() == time.Saturday {
			return true
		}
	}
	return false
}

// parseMonth resolves a month name, abbreviation or 1-12 number to a
// time.Month. Returns 0 when unrecognized.
func parseMonth(monthStr string) time.Month {
	monthLower := strings.ToLower(strings.TrimSpace(monthStr))

	if n, err := strconv.Atoi(monthLower); err == nil && n >= 1 && n <= 12 {
		return time.Month(n)
	}

	monthMap := map[string]time.Month{
		"january": time.January, "jan": time.January,
		"february": time.February, "feb": time.February,
		"march": time.March, "mar": time.March,
		"april": time.April, "apr": time.April,
		"may":  time.May,
		"june": time.June, "jun": time.June,
		"july": time.July, "jul": time.July,
		"august": time.August, "aug": time.August,
		"september": time.September, "sep": time.September, "sept": time.September,
		"october": time.October, "oct": time.October,
		"november": time.November, "nov": time.November,
		"december": time.December, "dec": time.December,
	}
	return monthMap[monthLower]
}

func newRangeOption(checkIn, checkOut time.Time) models.DateRangeOption {
	return models.DateRangeOption{
		ID:                fmt.Sprintf("range-%d", checkIn.UnixMilli()),
		CheckInDate:       checkIn,
		CheckInDay:        checkIn.Format("Mon"),
		CheckInFormatted:  checkIn.Format("Jan 2"),
		CheckOutDate:      checkOut,
		CheckOutDay:       checkOut.Format("Mon"),
		CheckOutFormatted: checkOut.Format("Jan 2"),
		IsPeak:            isPeakDate(checkIn) || isPeakDate(checkOut),
		Nights:            3,
	}
}

// GenerateDateRangeOptions produces up to limit 4-day/3-night candidate stays
// matching the filters. With no month filter the search window is one week to
// eight months from now.
func GenerateDateRangeOptions(filters models.DateRangeFilters, limit int, now time.Time) []models.DateRangeOption {
	if limit <= 0 {
		limit = DefaultRangeLimit
	}
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	if filters.ExactDates != nil {
		return generateNearExactDates(filters.ExactDates.CheckIn, filters.ExactDates.CheckOut, limit)
	}

	searchStart := today.AddDate(0, 0, 7)
	searchEnd := today.AddDate(0, 8, 0)

	if filters.Month != "" {
		if monthNum := parseMonth(filters.Month); monthNum != 0 {
			targetYear := today.Year()
			if monthNum < today.Month() {
				targetYear++
			}

			searchStart = time.Date(targetYear, monthNum, 1, 0, 0, 0, 0, today.Location())
			searchEnd = time.Date(targetYear, monthNum+1, 0, 0, 0, 0, 0, today.Location())

			switch filters.TimeOfMonth {
			case models.TimeOfMonthEarly:
				searchEnd = time.Date(targetYear, monthNum, 10, 0, 0, 0, 0, today.Location())
			case models.TimeOfMonthMid:
				searchStart = time.Date(targetYear, monthNum, 11, 0, 0, 0, 0, today.Location())
				searchEnd = time.Date(targetYear, monthNum, 20, 0, 0, 0, 0, today.Location())
			case models.TimeOfMonthLate:
				searchStart = time.Date(targetYear, monthNum, 21, 0, 0, 0, 0, today.Location())
			}
		}
	}

	var options []models.DateRangeOption
	seenRanges := map[string]bool{}

	for current := searchStart; !current.After(searchEnd) && len(options) < limit*2; {
		checkIn := current
		checkOut := current.AddDate(0, 0, 4)

		hasWeekend := includesWeekend(checkIn, checkOut)

		if (filters.PreferWeekends && !hasWeekend) || (filters.PreferWeekdays && hasWeekend) {
			current = current.AddDate(0, 0, 1)
			continue
		}

		rangeKey := checkIn.Format(time.RFC3339) + "-" + checkOut.Format(time.RFC3339)
		if !seenRanges[rangeKey] {
			seenRanges[rangeKey] = true
			options = append(options, newRangeOption(checkIn, checkOut))
		}

		if filters.PreferWeekends {
			// Jump to the next Friday.
			daysUntilFriday := (int(time.Friday) - int(current.Weekday()) + 7) % 7
			if daysUntilFriday == 0 {
				daysUntilFriday = 7
			}
			current = current.AddDate(0, 0, daysUntilFriday)
		} else {
			current = current.AddDate(0, 0, 3)
		}
	}

	sort.Slice(options, func(i, j int) bool {
		return options[i].CheckInDate.Before(options[j].CheckInDate)
	})

	if len(options) > limit {
		options = options[:limit]
	}
	return options
}

// generateNearExactDates offers the guest's own dates (when they fit the
// 4-day package) plus nearby alternatives, closest first.
func generateNearExactDates(targetCheckIn, targetCheckOut time.Time, limit int) []models.DateRangeOption {
	var options []models.DateRangeOption

	exactDays := int(math.Ceil(targetCheckOut.Sub(targetCheckIn).Hours() / 24))
	if exactDays == 4 {
		options = append(options, newRangeOption(targetCheckIn, targetCheckOut))
	}

	offsets := []int{-7, -3, 0, 3, 7, 10, 14}
	for _, offset := range offsets {
		if len(options) >= limit {
			break
		}

		checkIn := targetCheckIn.AddDate(0, 0, offset)
		checkOut := checkIn.AddDate(0, 0, 4)

		id := fmt.Sprintf("range-%d", checkIn.UnixMilli())
		duplicate := false
		for _, opt := range options {
			if opt.ID == id {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}

		options = append(options, newRangeOption(checkIn, checkOut))
	}

	sort.Slice(options, func(i, j int) bool {
		distI := absDuration(options[i].CheckInDate.Sub(targetCheckIn))
		distJ := absDuration(options[j].CheckInDate.Sub(targetCheckIn))
		return distI < distJ
	})

	if len(options) > limit {
		options = options[:limit]
	}
	return options
}

func absDuration(d time.Duration) time.Duration {
	if d < 0 {
		return -d
	}
	return d
}

// AvailableMonths lists the next six months for the narrowing phase picker.
func AvailableMonths(now time.Time) []models.MonthOption {
	months := make([]models.MonthOption, 0, 6)
	for i := 0; i < 6; i++ {
		d := time.Date(now.Year(), now.Month()+time.Month(i), 1, 0, 0, 0, 0, now.Location())
		months = append(months, models.MonthOption{
			ID:   strings.ToLower(d.Format("Jan")),
			Name: d.Format("January"),
			Year: d.Year(),
		})
	}
	return months
}
