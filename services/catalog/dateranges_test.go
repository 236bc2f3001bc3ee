package catalog

import (
	"testing"
	"time"

	"github.com/carlos-tribe/holly-assistant-hicv/models"
)

var genNow = time.Date(2025, time.September, 15, 12, 0, 0, 0, time.Local)

func TestParseMonth(t *testing.T) {
	tests := []struct {
		in   string
		want time.Month
	}{
		{"november", time.November},
		{"NOVEMBER", time.November},
		{"nov", time.November},
		{"sept", time.September},
		{"sep", time.September},
		{"3", time.March},
		{"12", time.December},
		{"0", 0},
		{"13", 0},
		{"mumble", 0},
	}
	for _, tt := range tests {
		if got := parseMonth(tt.in); got != tt.want {
			t.Errorf("parseMonth(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestIsPeakDate(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{"saturday", time.Date(2025, time.September, 20, 0, 0, 0, 0, time.Local), true},
		{"sunday", time.Date(2025, time.September, 21, 0, 0, 0, 0, time.Local), true},
		{"plain tuesday", time.Date(2025, time.September, 16, 0, 0, 0, 0, time.Local), false},
		{"thanksgiving", time.Date(2025, time.November, 27, 0, 0, 0, 0, time.Local), true},
		{"thursday before thanksgiving week", time.Date(2025, time.November, 20, 0, 0, 0, 0, time.Local), false},
		{"christmas", time.Date(2025, time.December, 25, 0, 0, 0, 0, time.Local), true},
		{"new years eve", time.Date(2025, time.December, 31, 0, 0, 0, 0, time.Local), true},
		{"new years day", time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local), true},
		{"fourth of july", time.Date(2025, time.July, 4, 0, 0, 0, 0, time.Local), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isPeakDate(tt.date); got != tt.want {
				t.Errorf("isPeakDate(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}

func TestGenerateDateRangeOptionsMonthFilter(t *testing.T) {
	options := GenerateDateRangeOptions(models.DateRangeFilters{Month: "november"}, 5, genNow)

	if len(options) != 5 {
		t.Fatalf("got %d options, want 5", len(options))
	}
	seen := map[string]bool{}
	for i, opt := range options {
		if opt.CheckInDate.Month() != time.November || opt.CheckInDate.Year() != 2025 {
			t.Errorf("option %d check-in %v outside November 2025", i, opt.CheckInDate)
		}
		if opt.Nights != 3 {
			t.Errorf("option %d nights = %d, want 3", i, opt.Nights)
		}
		if !opt.CheckOutDate.Equal(opt.CheckInDate.AddDate(0, 0, 4)) {
			t.Errorf("option %d is not a 4-day stay", i)
		}
		if i > 0 && options[i].CheckInDate.Before(options[i-1].CheckInDate) {
			t.Errorf("options not sorted by check-in")
		}
		if seen[opt.ID] {
			t.Errorf("duplicate option id %s", opt.ID)
		}
		seen[opt.ID] = true
	}
}

func TestGenerateDateRangeOptionsPastMonthRollsForward(t *testing.T) {
	options := GenerateDateRangeOptions(models.DateRangeFilters{Month: "march"}, 5, genNow)
	if len(options) == 0 {
		t.Fatalf("no options generated")
	}
	for _, opt := range options {
		if opt.CheckInDate.Year() != 2026 || opt.CheckInDate.Month() != time.March {
			t.Errorf("check-in %v, want March 2026", opt.CheckInDate)
		}
	}
}

func TestGenerateDateRangeOptionsWeekendPreference(t *testing.T) {
	options := GenerateDateRangeOptions(models.DateRangeFilters{Month: "november", PreferWeekends: true}, 5, genNow)
	if len(options) == 0 {
		t.Fatalf("no options generated")
	}
	for _, opt := range options {
		if !includesWeekend(opt.CheckInDate, opt.CheckOutDate) {
			t.Errorf("option %s (%v) excludes the weekend", opt.ID, opt.CheckInDate)
		}
	}
}

func TestGenerateDateRangeOptionsWeekdayPreference(t *testing.T) {
	options := GenerateDateRangeOptions(models.DateRangeFilters{Month: "november", PreferWeekdays: true}, 5, genNow)
	if len(options) == 0 {
		t.Fatalf("no options generated")
	}
	for _, opt := range options {
		if includesWeekend(opt.CheckInDate, opt.CheckOutDate) {
			t.Errorf("option %s (%v) includes a weekend", opt.ID, opt.CheckInDate)
		}
	}
}

func TestGenerateDateRangeOptionsTimeOfMonth(t *testing.T) {
	early := GenerateDateRangeOptions(models.DateRangeFilters{Month: "november", TimeOfMonth: models.TimeOfMonthEarly}, 5, genNow)
	for _, opt := range early {
		if opt.CheckInDate.Day() > 10 {
			t.Errorf("early option check-in on day %d", opt.CheckInDate.Day())
		}
	}

	late := GenerateDateRangeOptions(models.DateRangeFilters{Month: "november", TimeOfMonth: models.TimeOfMonthLate}, 5, genNow)
	for _, opt := range late {
		if opt.CheckInDate.Day() < 21 {
			t.Errorf("late option check-in on day %d", opt.CheckInDate.Day())
		}
	}
}

func TestGenerateNearExactDates(t *testing.T) {
	checkIn := time.Date(2025, time.November, 10, 0, 0, 0, 0, time.Local)
	checkOut := checkIn.AddDate(0, 0, 4)

	options := GenerateDateRangeOptions(models.DateRangeFilters{
		ExactDates: &models.ExactDates{CheckIn: checkIn, CheckOut: checkOut},
	}, 5, genNow)

	if len(options) != 5 {
		t.Fatalf("got %d options, want 5", len(options))
	}
	// The guest's own dates fit the 4-day package, so they lead the list.
	if !options[0].CheckInDate.Equal(checkIn) {
		t.Errorf("first option check-in %v, want the requested %v", options[0].CheckInDate, checkIn)
	}
	// Remaining options are ordered by proximity to the request.
	for i := 1; i < len(options); i++ {
		distPrev := absDuration(options[i-1].CheckInDate.Sub(checkIn))
		dist := absDuration(options[i].CheckInDate.Sub(checkIn))
		if dist < distPrev {
			t.Errorf("option %d closer than option %d", i, i-1)
		}
	}
}

func TestGenerateNearExactDatesLongerStayExcluded(t *testing.T) {
	checkIn := time.Date(2025, time.November, 10, 0, 0, 0, 0, time.Local)
	checkOut := checkIn.AddDate(0, 0, 7)

	options := GenerateDateRangeOptions(models.DateRangeFilters{
		ExactDates: &models.ExactDates{CheckIn: checkIn, CheckOut: checkOut},
	}, 5, genNow)

	// The week-long request does not fit the package; every offer is 4 days.
	for _, opt := range options {
		if !opt.CheckOutDate.Equal(opt.CheckInDate.AddDate(0, 0, 4)) {
			t.Errorf("option %s is not a 4-day stay", opt.ID)
		}
	}
}

func TestAvailableMonths(t *testing.T) {
	months := AvailableMonths(genNow)
	if len(months) != 6 {
		t.Fatalf("got %d months, want 6", len(months))
	}

	wantIDs := []string{"sep", "oct", "nov", "dec", "jan", "feb"}
	for i, m := range months {
		if m.ID != wantIDs[i] {
			t.Errorf("month %d id = %q, want %q", i, m.ID, wantIDs[i])
		}
	}
	if months[0].Year != 2025 || months[4].Year != 2026 || months[5].Year != 2026 {
		t.Errorf("year boundary wrong: %+v", months)
	}
	if months[0].Name != "September" || months[4].Name != "January" {
		t.Errorf("month names wrong: %+v", months)
	}
}
