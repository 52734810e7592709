package domain

import (
	"fmt"
	"time"
)

// Periodicity identifies one of the closed set of ways to cut time into periods.
type Periodicity int

// Supported periodicities, from the finest to the coarsest.
const (
	Day Periodicity = iota
	MonthWeekSat
	MonthWeekSun
	MonthWeekMon
	WeekSat
	WeekSun
	WeekMon
	Month
	Quarter
	Semester
	Year
	All
)

// periodicityCount is the number of declared periodicities.
const periodicityCount = int(All) + 1

var periodicityNames = [periodicityCount]string{
	Day:          "day",
	MonthWeekSat: "month_week_sat",
	MonthWeekSun: "month_week_sun",
	MonthWeekMon: "month_week_mon",
	WeekSat:      "week_sat",
	WeekSun:      "week_sun",
	WeekMon:      "week_mon",
	Month:        "month",
	Quarter:      "quarter",
	Semester:     "semester",
	Year:         "year",
	All:          "all",
}

// Periodicities returns every periodicity in declaration order.
func Periodicities() []Periodicity {
	out := make([]Periodicity, 0, periodicityCount)
	for p := Day; p <= All; p++ {
		out = append(out, p)
	}
	return out
}

// ParsePeriodicity returns the periodicity whose identifier is s.
func ParsePeriodicity(s string) (Periodicity, error) {
	for i, name := range periodicityNames {
		if name == s {
			return Periodicity(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPeriodicity, s)
}

// IsValid reports whether p is one of the declared periodicities.
func (p Periodicity) IsValid() bool {
	return p >= Day && p <= All
}

// String returns the stable identifier of the periodicity, e.g. "week_mon".
func (p Periodicity) String() string {
	if !p.IsValid() {
		return fmt.Sprintf("Periodicity(%d)", int(p))
	}
	return periodicityNames[p]
}

// MarshalText implements encoding.TextMarshaler.
func (p Periodicity) MarshalText() ([]byte, error) {
	if !p.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidPeriodicity, int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (p *Periodicity) UnmarshalText(text []byte) error {
	parsed, err := ParsePeriodicity(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// WeekStart returns the first weekday of week-like periodicities.
// The boolean is false for periodicities that are not weeks.
func (p Periodicity) WeekStart() (time.Weekday, bool) {
	switch p {
	case MonthWeekSat, WeekSat:
		return time.Saturday, true
	case MonthWeekSun, WeekSun:
		return time.Sunday, true
	case MonthWeekMon, WeekMon:
		return time.Monday, true
	default:
		return 0, false
	}
}

// Suffix returns the trailing marker used in values of week-like periodicities
// ("sat", "sun" or "mon"), or an empty string for the others.
func (p Periodicity) Suffix() string {
	start, ok := p.WeekStart()
	if !ok {
		return ""
	}
	return weekdaySuffix(start)
}

// IsWeek reports whether p is one of the year-numbered epidemiological weeks.
func (p Periodicity) IsWeek() bool {
	return p == WeekSat || p == WeekSun || p == WeekMon
}

// IsMonthWeek reports whether p is one of the month-split weeks.
func (p Periodicity) IsMonthWeek() bool {
	return p == MonthWeekSat || p == MonthWeekSun || p == MonthWeekMon
}

func weekdaySuffix(d time.Weekday) string {
	switch d {
	case time.Saturday:
		return "sat"
	case time.Sunday:
		return "sun"
	case time.Monday:
		return "mon"
	default:
		return ""
	}
}

// Value lengths for every shape. Detection never looks further than the length,
// the character at index 5 and the trailing week suffix.
const (
	allValueLength       = 3
	yearValueLength      = 4
	monthValueLength     = 7 // also quarter and semester
	dayValueLength       = 10
	weekValueLength      = 12
	monthWeekValueLength = 14
)

// PeriodicityOf determines the periodicity of a value from its shape alone.
//
//	all             all
//	YYYY            year
//	YYYY-QN         quarter
//	YYYY-SN         semester
//	YYYY-MM         month
//	YYYY-MM-DD      day
//	YYYY-WNN-sfx    week_sfx
//	YYYY-MM-WN-sfx  month_week_sfx
//
// It does not check that the digits describe a real date.
func PeriodicityOf(value string) (Periodicity, error) {
	switch len(value) {
	case allValueLength:
		if value == "all" {
			return All, nil
		}
	case yearValueLength:
		return Year, nil
	case monthValueLength:
		switch value[5] {
		case 'Q':
			return Quarter, nil
		case 'S':
			return Semester, nil
		default:
			return Month, nil
		}
	case dayValueLength:
		return Day, nil
	case weekValueLength:
		switch value[9:] {
		case "sat":
			return WeekSat, nil
		case "sun":
			return WeekSun, nil
		case "mon":
			return WeekMon, nil
		}
	case monthWeekValueLength:
		switch value[11:] {
		case "sat":
			return MonthWeekSat, nil
		case "sun":
			return MonthWeekSun, nil
		case "mon":
			return MonthWeekMon, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidValue, value)
}
