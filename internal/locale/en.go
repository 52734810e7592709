package locale

import "github.com/phrazzld/timeslot/internal/domain"

var english Locale = englishLocale{}

var englishMonths = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var englishPeriodicities = map[domain.Periodicity]string{
	domain.Day:          "Day",
	domain.MonthWeekSat: "Week (saturday to friday / split by month)",
	domain.MonthWeekSun: "Week (sunday to saturday / split by month)",
	domain.MonthWeekMon: "Week (monday to sunday / split by month)",
	domain.WeekSat:      "Week (saturday to friday)",
	domain.WeekSun:      "Week (sunday to saturday)",
	domain.WeekMon:      "Week (monday to sunday)",
	domain.Month:        "Month",
	domain.Quarter:      "Quarter",
	domain.Semester:     "Semester",
	domain.Year:         "Year",
	domain.All:          "All",
}

type englishLocale struct{}

func (englishLocale) Language() string { return "en" }

func (englishLocale) HumanizePeriodicity(p domain.Periodicity) string {
	return periodicityLabel(englishPeriodicities, p)
}

// HumanizeValue keeps ISO-like spellings for quarters, semesters and weeks
// ("2017-Q2", "2017-W18", "2017-05-W1") and spells out months and days
// ("May 2017", "May 03, 2017").
func (englishLocale) HumanizeValue(p domain.Periodicity, value string) string {
	switch {
	case p == domain.All:
		return "All"

	case p == domain.Year, p == domain.Semester, p == domain.Quarter:
		return value

	case p == domain.Month:
		if month, ok := monthName(&englishMonths, value); ok {
			return month + " " + value[:4]
		}

	case p.IsMonthWeek():
		if len(value) >= 10 {
			return value[:10]
		}

	case p.IsWeek():
		if len(value) >= 8 {
			return value[:8]
		}

	case p == domain.Day:
		if month, ok := monthName(&englishMonths, value); ok && len(value) >= 10 {
			return month + " " + value[8:] + ", " + value[:4]
		}
	}
	return value
}
