package locale

import "github.com/phrazzld/timeslot/internal/domain"

var french Locale = &romanceLocale{
	language: "fr",
	all:      "Tout",
	months: [12]string{
		"Janvier", "Février", "Mars", "Avril", "Mai", "Juin",
		"Juillet", "Août", "Septembre", "Octobre", "Novembre", "Décembre",
	},
	quarters:  [4]string{"1er trim.", "2ème trim.", "3ème trim.", "4ème trim."},
	semesters: [2]string{"1er sem.", "2ème sem."},
	periodicities: map[domain.Periodicity]string{
		domain.Day:          "Jour",
		domain.MonthWeekSat: "Semaines (samedi à vendredi / coupées par mois)",
		domain.MonthWeekSun: "Semaines (dimanche à samedi / coupées par mois)",
		domain.MonthWeekMon: "Semaines (lundi à dimanche / coupées par mois)",
		domain.WeekSat:      "Semaines (samedi à vendredi)",
		domain.WeekSun:      "Semaines (dimanche à samedi)",
		domain.WeekMon:      "Semaines (lundi à dimanche)",
		domain.Month:        "Mois",
		domain.Quarter:      "Trimestre",
		domain.Semester:     "Semestre",
		domain.Year:         "Année",
		domain.All:          "Tout",
	},
}
