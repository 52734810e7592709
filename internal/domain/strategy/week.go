package strategy

import (
	"fmt"
	"time"

	"github.com/phrazzld/timeslot/internal/domain"
)

// weekStrategy handles epidemiological weeks (YYYY-WNN-sfx).
//
// Week 1 of a year is the week containing January 4th, which generalizes the
// ISO 8601 rule to weeks starting on any weekday. Late December days may belong
// to week 1 of the following year, and early January days to the last week of
// the previous one.
type weekStrategy struct {
	periodicity domain.Periodicity
	start       time.Weekday
	suffix      string
}

// NewWeek returns the strategy for the epidemiological week periodicity p,
// which must be one of domain.WeekSat, domain.WeekSun or domain.WeekMon.
func NewWeek(p domain.Periodicity) (Strategy, error) {
	start, ok := p.WeekStart()
	if !ok || !p.IsWeek() {
		return nil, fmt.Errorf("%w: %s is not a week periodicity", domain.ErrInvalidPeriodicity, p)
	}
	return weekStrategy{periodicity: p, start: start, suffix: p.Suffix()}, nil
}

func (s weekStrategy) Periodicity() domain.Periodicity { return s.periodicity }

// epoch returns the first day of week 1 of year: the last start weekday on or
// before January 4th.
func (s weekStrategy) epoch(year int) time.Time {
	jan4 := date(year, time.January, 4)
	diff := (int(jan4.Weekday()) - int(s.start) + 7) % 7
	return date(year, time.January, 4-diff)
}

// weeksIn returns the number of weeks (52 or 53) in the week-numbering year.
func (s weekStrategy) weeksIn(year int) int {
	return daysBetween(s.epoch(year), s.epoch(year+1)) / 7
}

func (s weekStrategy) parse(value string) (int, int, error) {
	year, err := digits(value, 0, 4)
	if err != nil {
		return 0, 0, err
	}
	week, err := digits(value, 6, 8)
	if err != nil {
		return 0, 0, err
	}
	return year, week, nil
}

func (s weekStrategy) FirstInstant(value string) (time.Time, error) {
	year, week, err := s.parse(value)
	if err != nil {
		return time.Time{}, err
	}
	return s.epoch(year).AddDate(0, 0, (week-1)*7), nil
}

func (s weekStrategy) LastInstant(value string) (time.Time, error) {
	first, err := s.FirstInstant(value)
	if err != nil {
		return time.Time{}, err
	}
	return first.AddDate(0, 0, 6), nil
}

func (s weekStrategy) Previous(value string) (string, error) {
	year, week, err := s.parse(value)
	if err != nil {
		return "", err
	}
	if week <= 1 {
		return s.format(year-1, s.weeksIn(year-1)), nil
	}
	return s.format(year, week-1), nil
}

func (s weekStrategy) Next(value string) (string, error) {
	year, week, err := s.parse(value)
	if err != nil {
		return "", err
	}
	if week >= s.weeksIn(year) {
		return s.format(year+1, 1), nil
	}
	return s.format(year, week+1), nil
}

// FromInstant searches the week-numbering year starting from the year after
// t, stepping back until the epoch is not after t.
func (s weekStrategy) FromInstant(t time.Time) string {
	d := truncate(t)

	year := d.Year() + 1
	epoch := s.epoch(year)
	for d.Before(epoch) {
		year--
		epoch = s.epoch(year)
	}

	return s.format(year, daysBetween(epoch, d)/7+1)
}

func (s weekStrategy) format(year, week int) string {
	return fmt.Sprintf("%04d-W%02d-%s", year, week, s.suffix)
}
