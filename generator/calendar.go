package generator

import (
	"fmt"
	"time"

	"retail-datagen/models"
)

// BuildCalendar expands the closed interval [start, end] into one DateInfo
// per day, ascending. Deterministic; no randomness involved.
func BuildCalendar(start, end time.Time) ([]*models.DateInfo, error) {
	start = truncateToDay(start)
	end = truncateToDay(end)
	if end.Before(start) {
		return nil, fmt.Errorf("generator: end date %s precedes start date %s",
			end.Format("2006-01-02"), start.Format("2006-01-02"))
	}

	var days []*models.DateInfo
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		days = append(days, dateInfo(d))
	}
	return days, nil
}

func dateInfo(d time.Time) *models.DateInfo {
	month := int(d.Month())
	weekday := mondayIndexed(d.Weekday())
	_, week := d.ISOWeek()

	return &models.DateInfo{
		Date:               d,
		Year:               d.Year(),
		Month:              month,
		Day:                d.Day(),
		Weekday:            weekday,
		WeekdayName:        d.Weekday().String(),
		MonthName:          d.Month().String(),
		Quarter:            (month-1)/3 + 1,
		IsWeekend:          weekday >= 5,
		WeekOfYear:         week,
		SeasonalMultiplier: seasonalMultiplier(month),
		WeekdayMultiplier:  weekdayMultiplier(weekday),
	}
}

// mondayIndexed converts Go's Sunday-first weekday to Monday=0 ... Sunday=6.
func mondayIndexed(wd time.Weekday) int {
	return (int(wd) + 6) % 7
}

func seasonalMultiplier(month int) float64 {
	switch {
	case month == 11 || month == 12: // holiday season
		return 1.5
	case month >= 6 && month <= 8: // summer
		return 1.2
	case month >= 1 && month <= 3: // post-holiday slump
		return 0.8
	default:
		return 1.0
	}
}

// weekdayMultiplier boosts the Friday-through-Sunday stretch.
func weekdayMultiplier(weekday int) float64 {
	if weekday >= 4 {
		return 1.3
	}
	return 1.0
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
