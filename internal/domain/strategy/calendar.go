package strategy

import (
	"fmt"
	"time"

	"github.com/phrazzld/timeslot/internal/domain"
)

// Bounds of the "all" time slot. The upper bound is the last day whose year
// still formats with four digits.
var (
	allFirstInstant = date(1, time.January, 1)
	allLastInstant  = date(9999, time.December, 31)
)

// dayStrategy handles YYYY-MM-DD values.
type dayStrategy struct{}

// NewDay returns the strategy for days.
func NewDay() Strategy { return dayStrategy{} }

func (dayStrategy) Periodicity() domain.Periodicity { return domain.Day }

func (dayStrategy) FirstInstant(value string) (time.Time, error) {
	year, err := digits(value, 0, 4)
	if err != nil {
		return time.Time{}, err
	}
	month, err := digits(value, 5, 7)
	if err != nil {
		return time.Time{}, err
	}
	d, err := digits(value, 8, 10)
	if err != nil {
		return time.Time{}, err
	}
	return date(year, time.Month(month), d), nil
}

func (s dayStrategy) LastInstant(value string) (time.Time, error) {
	return s.FirstInstant(value)
}

func (s dayStrategy) Previous(value string) (string, error) {
	first, err := s.FirstInstant(value)
	if err != nil {
		return "", err
	}
	return s.FromInstant(first.AddDate(0, 0, -1)), nil
}

func (s dayStrategy) Next(value string) (string, error) {
	first, err := s.FirstInstant(value)
	if err != nil {
		return "", err
	}
	return s.FromInstant(first.AddDate(0, 0, 1)), nil
}

func (dayStrategy) FromInstant(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}

// monthStrategy handles YYYY-MM values.
type monthStrategy struct{}

// NewMonth returns the strategy for calendar months.
func NewMonth() Strategy { return monthStrategy{} }

func (monthStrategy) Periodicity() domain.Periodicity { return domain.Month }

func (monthStrategy) parse(value string) (int, int, error) {
	year, err := digits(value, 0, 4)
	if err != nil {
		return 0, 0, err
	}
	month, err := digits(value, 5, 7)
	if err != nil {
		return 0, 0, err
	}
	return year, month, nil
}

func (s monthStrategy) FirstInstant(value string) (time.Time, error) {
	year, month, err := s.parse(value)
	if err != nil {
		return time.Time{}, err
	}
	return date(year, time.Month(month), 1), nil
}

func (s monthStrategy) LastInstant(value string) (time.Time, error) {
	year, month, err := s.parse(value)
	if err != nil {
		return time.Time{}, err
	}
	return lastDayOfMonth(year, time.Month(month)), nil
}

func (s monthStrategy) Previous(value string) (string, error) {
	year, month, err := s.parse(value)
	if err != nil {
		return "", err
	}
	if month == 1 {
		return formatMonth(year-1, 12), nil
	}
	return formatMonth(year, month-1), nil
}

func (s monthStrategy) Next(value string) (string, error) {
	year, month, err := s.parse(value)
	if err != nil {
		return "", err
	}
	if month == 12 {
		return formatMonth(year+1, 1), nil
	}
	return formatMonth(year, month+1), nil
}

func (monthStrategy) FromInstant(t time.Time) string {
	t = t.UTC()
	return formatMonth(t.Year(), int(t.Month()))
}

func formatMonth(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// blockStrategy handles quarters (YYYY-QN) and semesters (YYYY-SN), which are
// fixed-size blocks of months numbered from 1 within the year.
type blockStrategy struct {
	periodicity domain.Periodicity
	marker      byte
	months      int
}

// NewQuarter returns the strategy for quarters.
func NewQuarter() Strategy {
	return blockStrategy{periodicity: domain.Quarter, marker: 'Q', months: 3}
}

// NewSemester returns the strategy for semesters.
func NewSemester() Strategy {
	return blockStrategy{periodicity: domain.Semester, marker: 'S', months: 6}
}

func (s blockStrategy) Periodicity() domain.Periodicity { return s.periodicity }

func (s blockStrategy) blocks() int { return 12 / s.months }

func (s blockStrategy) parse(value string) (int, int, error) {
	year, err := digits(value, 0, 4)
	if err != nil {
		return 0, 0, err
	}
	n, err := digits(value, 6, 7)
	if err != nil {
		return 0, 0, err
	}
	return year, n, nil
}

func (s blockStrategy) FirstInstant(value string) (time.Time, error) {
	year, n, err := s.parse(value)
	if err != nil {
		return time.Time{}, err
	}
	return date(year, time.Month((n-1)*s.months+1), 1), nil
}

func (s blockStrategy) LastInstant(value string) (time.Time, error) {
	year, n, err := s.parse(value)
	if err != nil {
		return time.Time{}, err
	}
	return lastDayOfMonth(year, time.Month(n*s.months)), nil
}

func (s blockStrategy) Previous(value string) (string, error) {
	year, n, err := s.parse(value)
	if err != nil {
		return "", err
	}
	if n <= 1 {
		return s.format(year-1, s.blocks()), nil
	}
	return s.format(year, n-1), nil
}

func (s blockStrategy) Next(value string) (string, error) {
	year, n, err := s.parse(value)
	if err != nil {
		return "", err
	}
	if n >= s.blocks() {
		return s.format(year+1, 1), nil
	}
	return s.format(year, n+1), nil
}

func (s blockStrategy) FromInstant(t time.Time) string {
	t = t.UTC()
	return s.format(t.Year(), (int(t.Month())-1)/s.months+1)
}

func (s blockStrategy) format(year, n int) string {
	return fmt.Sprintf("%04d-%c%d", year, s.marker, n)
}

// yearStrategy handles YYYY values.
type yearStrategy struct{}

// NewYear returns the strategy for calendar years.
func NewYear() Strategy { return yearStrategy{} }

func (yearStrategy) Periodicity() domain.Periodicity { return domain.Year }

func (yearStrategy) FirstInstant(value string) (time.Time, error) {
	year, err := digits(value, 0, 4)
	if err != nil {
		return time.Time{}, err
	}
	return date(year, time.January, 1), nil
}

func (yearStrategy) LastInstant(value string) (time.Time, error) {
	year, err := digits(value, 0, 4)
	if err != nil {
		return time.Time{}, err
	}
	return date(year, time.December, 31), nil
}

func (yearStrategy) Previous(value string) (string, error) {
	year, err := digits(value, 0, 4)
	if err != nil {
		return "", err
	}
	return formatYear(year - 1), nil
}

func (yearStrategy) Next(value string) (string, error) {
	year, err := digits(value, 0, 4)
	if err != nil {
		return "", err
	}
	return formatYear(year + 1), nil
}

func (yearStrategy) FromInstant(t time.Time) string {
	return formatYear(t.UTC().Year())
}

func formatYear(year int) string {
	return fmt.Sprintf("%04d", year)
}

// allStrategy handles the single unbounded "all" value. It has no neighbors:
// previous and next are fixed points so that navigation never fails.
type allStrategy struct{}

// AllValue is the only value of the "all" periodicity.
const AllValue = "all"

// NewAll returns the strategy for the unbounded periodicity.
func NewAll() Strategy { return allStrategy{} }

func (allStrategy) Periodicity() domain.Periodicity { return domain.All }

func (allStrategy) FirstInstant(string) (time.Time, error) { return allFirstInstant, nil }

func (allStrategy) LastInstant(string) (time.Time, error) { return allLastInstant, nil }

func (allStrategy) Previous(string) (string, error) { return AllValue, nil }

func (allStrategy) Next(string) (string, error) { return AllValue, nil }

func (allStrategy) FromInstant(time.Time) string { return AllValue }
