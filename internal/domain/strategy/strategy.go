package strategy

import (
	"fmt"
	"time"

	"github.com/phrazzld/timeslot/internal/domain"
)

// Strategy defines the date arithmetic of one periodicity.
//
// All instants are UTC midnights. The range covered by a value is
// [FirstInstant, LastInstant] inclusive, LastInstant being the midnight that
// starts the last covered day.
//
// The value passed to the primitives is expected to have the shape of the
// strategy's periodicity (see domain.PeriodicityOf); only its digits are parsed.
type Strategy interface {
	// Periodicity returns the periodicity implemented by the strategy.
	Periodicity() domain.Periodicity

	// FirstInstant returns the first day covered by value.
	FirstInstant(value string) (time.Time, error)

	// LastInstant returns the last day covered by value.
	LastInstant(value string) (time.Time, error)

	// Previous returns the value immediately before value.
	Previous(value string) (string, error)

	// Next returns the value immediately after value.
	Next(value string) (string, error)

	// FromInstant returns the value containing t. Only the UTC date of t is used.
	FromInstant(t time.Time) string
}

const day = 24 * time.Hour

// date builds a UTC midnight, normalizing out-of-range months and days the way
// time.Date does.
func date(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

// truncate returns the UTC midnight of the day containing t.
func truncate(t time.Time) time.Time {
	t = t.UTC()
	return date(t.Year(), t.Month(), t.Day())
}

// daysBetween counts whole days from a to b. Both must be UTC midnights.
func daysBetween(a, b time.Time) int {
	return int(b.Sub(a) / day)
}

// lastDayOfMonth returns the last day of the given month.
func lastDayOfMonth(year int, month time.Month) time.Time {
	return date(year, month+1, 0)
}

// digits parses value[from:to] as an unsigned decimal number.
func digits(value string, from, to int) (int, error) {
	if from < 0 || to > len(value) || from >= to {
		return 0, invalidValue(value)
	}

	n := 0
	for i := from; i < to; i++ {
		c := value[i]
		if c < '0' || c > '9' {
			return 0, invalidValue(value)
		}
		n = n*10 + int(c-'0')
	}
	return n, nil
}

func invalidValue(value string) error {
	return fmt.Errorf("%w: %q", domain.ErrInvalidValue, value)
}
