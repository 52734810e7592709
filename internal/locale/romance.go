package locale

import "github.com/phrazzld/timeslot/internal/domain"

// romanceLocale formats values the way French and Spanish readers expect:
// day before month, ordinal quarters and semesters, "Sem." for weeks.
type romanceLocale struct {
	language      string
	all           string
	months        [12]string
	quarters      [4]string
	semesters     [2]string
	periodicities map[domain.Periodicity]string
}

func (l *romanceLocale) Language() string { return l.language }

func (l *romanceLocale) HumanizePeriodicity(p domain.Periodicity) string {
	return periodicityLabel(l.periodicities, p)
}

func (l *romanceLocale) HumanizeValue(p domain.Periodicity, value string) string {
	switch {
	case p == domain.All:
		return l.all

	case p == domain.Year:
		if len(value) >= 4 {
			return value[:4]
		}

	case p == domain.Semester:
		if i, ok := number(value, 6, 7, len(l.semesters)); ok {
			return l.semesters[i] + " " + value[:4]
		}

	case p == domain.Quarter:
		if i, ok := number(value, 6, 7, len(l.quarters)); ok {
			return l.quarters[i] + " " + value[:4]
		}

	case p == domain.Month:
		if month, ok := monthName(&l.months, value); ok {
			return month + " " + value[:4]
		}

	case p.IsMonthWeek():
		if month, ok := monthName(&l.months, value); ok && len(value) >= 10 {
			return "Sem. " + value[9:10] + " " + month + " " + value[:4]
		}

	case p.IsWeek():
		if len(value) >= 8 {
			return "Sem. " + value[6:8] + " " + value[:4]
		}

	case p == domain.Day:
		if month, ok := monthName(&l.months, value); ok && len(value) >= 10 {
			return value[8:] + " " + month + " " + value[:4]
		}
	}
	return value
}
