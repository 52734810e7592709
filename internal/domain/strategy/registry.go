package strategy

import (
	"fmt"
	"sync"
	"time"

	"github.com/phrazzld/timeslot/internal/domain"
)

// Registry maps every periodicity to its strategy and implements the
// cross-periodicity operations on top of the strategy primitives.
//
// A Registry is populated before it is shared; Register must not be called
// concurrently with any other method. Once populated it is read-only and safe
// for concurrent use.
type Registry struct {
	strategies map[domain.Periodicity]Strategy
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		strategies: make(map[domain.Periodicity]Strategy),
	}
}

// NewDefaultRegistry creates a registry holding the strategies of all
// supported periodicities.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(NewDay())
	r.Register(NewMonth())
	r.Register(NewQuarter())
	r.Register(NewSemester())
	r.Register(NewYear())
	r.Register(NewAll())

	for _, p := range []domain.Periodicity{domain.WeekSat, domain.WeekSun, domain.WeekMon} {
		s, err := NewWeek(p)
		if err != nil {
			// ALLOW-PANIC: the list above only holds week periodicities
			panic(err)
		}
		r.Register(s)
	}

	for _, p := range []domain.Periodicity{domain.MonthWeekSat, domain.MonthWeekSun, domain.MonthWeekMon} {
		s, err := NewMonthWeek(p)
		if err != nil {
			// ALLOW-PANIC: the list above only holds month week periodicities
			panic(err)
		}
		r.Register(s)
	}

	return r
}

var defaultRegistry = sync.OnceValue(NewDefaultRegistry)

// Default returns the process-wide registry, populated on first use.
func Default() *Registry {
	return defaultRegistry()
}

// Register installs s for its periodicity. Registering the same periodicity
// again replaces the previous strategy.
func (r *Registry) Register(s Strategy) {
	r.strategies[s.Periodicity()] = s
}

// Get returns the strategy of periodicity p.
func (r *Registry) Get(p domain.Periodicity) (Strategy, error) {
	s, ok := r.strategies[p]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrUnknownStrategy, p)
	}
	return s, nil
}

// ForValue returns the strategy of the periodicity value is shaped for.
func (r *Registry) ForValue(value string) (Strategy, error) {
	p, err := domain.PeriodicityOf(value)
	if err != nil {
		return nil, err
	}
	return r.Get(p)
}

// Validate checks that value is the canonical value of the period it
// describes, i.e. that it survives a round trip through its first instant.
// This catches values whose shape is right but whose digits are not, such as
// "2017-13" or "2021-W53-mon".
func (r *Registry) Validate(value string) error {
	s, err := r.ForValue(value)
	if err != nil {
		return err
	}

	first, err := s.FirstInstant(value)
	if err != nil {
		return err
	}

	if canonical := s.FromInstant(first); canonical != value {
		return fmt.Errorf("%w: %q (canonical form is %q)", domain.ErrInvalidValue, value, canonical)
	}
	return nil
}

// ToAncestor returns the value of periodicity target containing value.
//
// When value straddles a boundary of target (a week spanning two months), the
// period containing the midpoint of value is chosen.
func (r *Registry) ToAncestor(value string, target domain.Periodicity) (string, error) {
	source, err := r.ForValue(value)
	if err != nil {
		return "", err
	}

	if !target.IsAncestorOf(source.Periodicity()) {
		return "", fmt.Errorf("%w: cannot convert %s to %s",
			domain.ErrInvalidConversion, source.Periodicity(), target)
	}

	first, last, err := bounds(source, value)
	if err != nil {
		return "", err
	}

	ancestor, err := r.Get(target)
	if err != nil {
		return "", err
	}

	result := ancestor.FromInstant(midpoint(first, last))
	if err := checkCalendar(result); err != nil {
		return "", err
	}
	return result, nil
}

// ToDescendants returns, in ascending order, every value of periodicity target
// that starts within value. The result is contiguous; its first element starts
// at or before value's first instant.
func (r *Registry) ToDescendants(value string, target domain.Periodicity) ([]string, error) {
	source, err := r.ForValue(value)
	if err != nil {
		return nil, err
	}

	if source.Periodicity() == domain.All {
		return nil, fmt.Errorf("%w: cannot enumerate %s of %s",
			domain.ErrUnboundedEnumeration, target, domain.All)
	}

	if !target.IsDescendantOf(source.Periodicity()) {
		return nil, fmt.Errorf("%w: cannot convert %s to %s",
			domain.ErrInvalidConversion, source.Periodicity(), target)
	}

	first, last, err := bounds(source, value)
	if err != nil {
		return nil, err
	}

	child, err := r.Get(target)
	if err != nil {
		return nil, err
	}

	current := child.FromInstant(first)
	if err := checkCalendar(current); err != nil {
		return nil, err
	}

	var result []string
	for {
		result = append(result, current)

		// Stop on the child reaching the end of value, before Next can step
		// past 9999-12-31.
		end, err := child.LastInstant(current)
		if err != nil {
			return nil, err
		}
		if !end.Before(last) {
			break
		}

		current, err = child.Next(current)
		if err != nil {
			return nil, err
		}
	}

	return result, nil
}

// checkCalendar rejects values whose year is not four digits, which only
// FromInstant and Next can produce near the ends of the calendar.
func checkCalendar(value string) error {
	if value == AllValue {
		return nil
	}
	if len(value) < 4 || (len(value) > 4 && value[4] != '-') {
		return fmt.Errorf("%w: %q", domain.ErrOutsideCalendar, value)
	}
	for i := 0; i < 4; i++ {
		if value[i] < '0' || value[i] > '9' {
			return fmt.Errorf("%w: %q", domain.ErrOutsideCalendar, value)
		}
	}
	return nil
}

func bounds(s Strategy, value string) (time.Time, time.Time, error) {
	first, err := s.FirstInstant(value)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	last, err := s.LastInstant(value)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return first, last, nil
}

// midpoint returns the instant halfway between first and last.
func midpoint(first, last time.Time) time.Time {
	return first.Add(last.Sub(first) / 2)
}
