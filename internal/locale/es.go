package locale

import "github.com/phrazzld/timeslot/internal/domain"

var spanish Locale = &romanceLocale{
	language: "es",
	all:      "Todo",
	months: [12]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	},
	quarters:  [4]string{"Primer trim.", "Segundo trim.", "Tercero trim.", "Cuarto trim."},
	semesters: [2]string{"Primer sem.", "Segundo sem."},
	periodicities: map[domain.Periodicity]string{
		domain.Day:          "Día",
		domain.MonthWeekSat: "Semana (sábado a viernes / cortado por mes)",
		domain.MonthWeekSun: "Semana (domingo a sábado / cortado por mes)",
		domain.MonthWeekMon: "Semana (lunes a domingo / cortado por mes)",
		domain.WeekSat:      "Semana (sábado a viernes)",
		domain.WeekSun:      "Semana (domingo a sábado)",
		domain.WeekMon:      "Semana (lunes a domingo)",
		domain.Month:        "Mes",
		domain.Quarter:      "Trimestre",
		domain.Semester:     "Semestre",
		domain.Year:         "Año",
		domain.All:          "Todo",
	},
}
