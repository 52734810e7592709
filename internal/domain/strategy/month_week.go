package strategy

import (
	"fmt"
	"time"

	"github.com/phrazzld/timeslot/internal/domain"
)

// monthWeekStrategy handles weeks split at month boundaries (YYYY-MM-WN-sfx).
//
// Numbering restarts at 1 on the first day of every month. Week 1 runs from the
// 1st to the day before the first start weekday, so it is between 1 and 7 days
// long; the last week of the month is clipped to the month's last day.
type monthWeekStrategy struct {
	periodicity domain.Periodicity
	start       time.Weekday
	suffix      string
}

// NewMonthWeek returns the strategy for the month-split week periodicity p,
// which must be one of domain.MonthWeekSat, domain.MonthWeekSun or
// domain.MonthWeekMon.
func NewMonthWeek(p domain.Periodicity) (Strategy, error) {
	start, ok := p.WeekStart()
	if !ok || !p.IsMonthWeek() {
		return nil, fmt.Errorf("%w: %s is not a month week periodicity", domain.ErrInvalidPeriodicity, p)
	}
	return monthWeekStrategy{periodicity: p, start: start, suffix: p.Suffix()}, nil
}

func (s monthWeekStrategy) Periodicity() domain.Periodicity { return s.periodicity }

// firstWeekLength returns the number of days of week 1 in the given month.
// It is 7 when the month starts on the start weekday.
func (s monthWeekStrategy) firstWeekLength(year int, month time.Month) int {
	firstWeekday := date(year, month, 1).Weekday()
	return 7 - (int(firstWeekday)-int(s.start)+7)%7
}

// weeksIn returns the number of (possibly partial) weeks in the given month.
func (s monthWeekStrategy) weeksIn(year int, month time.Month) int {
	remaining := lastDayOfMonth(year, month).Day() - s.firstWeekLength(year, month)
	return (remaining+6)/7 + 1
}

func (s monthWeekStrategy) parse(value string) (int, time.Month, int, error) {
	year, err := digits(value, 0, 4)
	if err != nil {
		return 0, 0, 0, err
	}
	month, err := digits(value, 5, 7)
	if err != nil {
		return 0, 0, 0, err
	}
	week, err := digits(value, 9, 10)
	if err != nil {
		return 0, 0, 0, err
	}
	return year, time.Month(month), week, nil
}

func (s monthWeekStrategy) FirstInstant(value string) (time.Time, error) {
	year, month, week, err := s.parse(value)
	if err != nil {
		return time.Time{}, err
	}
	if week <= 1 {
		return date(year, month, 1), nil
	}
	return date(year, month, 1+s.firstWeekLength(year, month)+(week-2)*7), nil
}

func (s monthWeekStrategy) LastInstant(value string) (time.Time, error) {
	year, month, week, err := s.parse(value)
	if err != nil {
		return time.Time{}, err
	}

	fwl := s.firstWeekLength(year, month)
	if week <= 1 {
		return date(year, month, fwl), nil
	}

	last := date(year, month, 1+6+fwl+(week-2)*7)
	if monthEnd := lastDayOfMonth(year, month); last.After(monthEnd) {
		return monthEnd, nil
	}
	return last, nil
}

func (s monthWeekStrategy) Previous(value string) (string, error) {
	year, month, week, err := s.parse(value)
	if err != nil {
		return "", err
	}
	if week > 1 {
		return s.format(year, month, week-1), nil
	}

	prevYear, prevMonth := year, month-1
	if month == time.January {
		prevYear, prevMonth = year-1, time.December
	}
	return s.format(prevYear, prevMonth, s.weeksIn(prevYear, prevMonth)), nil
}

func (s monthWeekStrategy) Next(value string) (string, error) {
	year, month, week, err := s.parse(value)
	if err != nil {
		return "", err
	}
	if week < s.weeksIn(year, month) {
		return s.format(year, month, week+1), nil
	}

	if month == time.December {
		return s.format(year+1, time.January, 1), nil
	}
	return s.format(year, month+1, 1), nil
}

func (s monthWeekStrategy) FromInstant(t time.Time) string {
	t = t.UTC()
	year, month, dayOfMonth := t.Date()

	fwl := s.firstWeekLength(year, month)
	week := 1
	if dayOfMonth > fwl {
		week = (dayOfMonth-1-fwl)/7 + 2
	}
	return s.format(year, month, week)
}

func (s monthWeekStrategy) format(year int, month time.Month, week int) string {
	return fmt.Sprintf("%04d-%02d-W%d-%s", year, int(month), week, s.suffix)
}
