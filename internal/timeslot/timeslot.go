package timeslot

import (
	"slices"
	"sync"
	"time"

	"github.com/phrazzld/timeslot/internal/domain"
	"github.com/phrazzld/timeslot/internal/domain/strategy"
)

const day = 24 * time.Hour

// TimeSlot is one canonical period value. TimeSlots are obtained from a Cache
// and compared by pointer: two slots of the same cache with equal values are
// the same *TimeSlot.
type TimeSlot struct {
	cache       *Cache
	strategy    strategy.Strategy
	value       string
	periodicity domain.Periodicity

	// first is computed at construction; it is what rejects malformed digits.
	first time.Time

	lastOnce sync.Once
	last     time.Time

	previousOnce sync.Once
	previous     *TimeSlot

	nextOnce sync.Once
	next     *TimeSlot

	mu          sync.Mutex
	ancestors   map[domain.Periodicity]*TimeSlot
	descendants map[domain.Periodicity][]*TimeSlot
}

func newTimeSlot(c *Cache, s strategy.Strategy, value string) (*TimeSlot, error) {
	first, err := s.FirstInstant(value)
	if err != nil {
		return nil, err
	}
	return &TimeSlot{
		cache:       c,
		strategy:    s,
		value:       value,
		periodicity: s.Periodicity(),
		first:       first,
	}, nil
}

// Value returns the canonical string of the slot.
func (ts *TimeSlot) Value() string { return ts.value }

// Periodicity returns the kind of the slot.
func (ts *TimeSlot) Periodicity() domain.Periodicity { return ts.periodicity }

// FirstInstant returns the midnight UTC starting the first day of the slot.
func (ts *TimeSlot) FirstInstant() time.Time { return ts.first }

// LastInstant returns the midnight UTC starting the last day of the slot.
func (ts *TimeSlot) LastInstant() time.Time {
	ts.lastOnce.Do(func() {
		ts.last = mustInstant(ts.strategy.LastInstant(ts.value))
	})
	return ts.last
}

// Previous returns the slot immediately before this one. For "all" it is the
// slot itself; before the first representable slot of year 0000 it is nil.
func (ts *TimeSlot) Previous() *TimeSlot {
	ts.previousOnce.Do(func() {
		ts.previous = ts.neighbor(ts.strategy.Previous)
	})
	return ts.previous
}

// Next returns the slot immediately after this one. For "all" it is the slot
// itself; after the last slot of year 9999 it is nil.
func (ts *TimeSlot) Next() *TimeSlot {
	ts.nextOnce.Do(func() {
		ts.next = ts.neighbor(ts.strategy.Next)
	})
	return ts.next
}

func (ts *TimeSlot) neighbor(step func(string) (string, error)) *TimeSlot {
	value, err := step(ts.value)
	if err != nil {
		// ALLOW-PANIC: the digits of ts.value were parsed at construction
		panic(err)
	}
	if value == ts.value {
		return ts
	}

	// Stepping past year 0000 or 9999 yields a value with no four digit year.
	slot, err := ts.cache.FromValue(value)
	if err != nil {
		return nil
	}
	return slot
}

// ToAncestor returns the slot of periodicity p containing this one. Asking for
// the slot's own periodicity returns the slot itself.
func (ts *TimeSlot) ToAncestor(p domain.Periodicity) (*TimeSlot, error) {
	if p == ts.periodicity {
		return ts, nil
	}

	ts.mu.Lock()
	cached, ok := ts.ancestors[p]
	ts.mu.Unlock()
	if ok {
		return cached, nil
	}

	value, err := ts.cache.registry.ToAncestor(ts.value, p)
	if err != nil {
		return nil, err
	}
	slot, err := ts.cache.FromValue(value)
	if err != nil {
		return nil, err
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()
	if ts.ancestors == nil {
		ts.ancestors = make(map[domain.Periodicity]*TimeSlot)
	}
	ts.ancestors[p] = slot
	return slot, nil
}

// ToDescendants returns the slots of periodicity p starting within this one,
// in ascending order. Asking for the slot's own periodicity returns a
// one-element list holding the slot itself.
//
// The returned slice belongs to the caller.
func (ts *TimeSlot) ToDescendants(p domain.Periodicity) ([]*TimeSlot, error) {
	if p == ts.periodicity {
		return []*TimeSlot{ts}, nil
	}

	ts.mu.Lock()
	cached, ok := ts.descendants[p]
	ts.mu.Unlock()
	if ok {
		return slices.Clone(cached), nil
	}

	values, err := ts.cache.registry.ToDescendants(ts.value, p)
	if err != nil {
		return nil, err
	}

	slots := make([]*TimeSlot, 0, len(values))
	for _, value := range values {
		slot, err := ts.cache.FromValue(value)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	ts.mu.Lock()
	defer ts.mu.Unlock()
	if existing, ok := ts.descendants[p]; ok {
		return slices.Clone(existing), nil
	}
	if ts.descendants == nil {
		ts.descendants = make(map[domain.Periodicity][]*TimeSlot)
	}
	ts.descendants[p] = slots
	return slices.Clone(slots), nil
}

// AncestorPeriodicities lists the periodicities this slot can be projected to.
func (ts *TimeSlot) AncestorPeriodicities() []domain.Periodicity {
	return ts.periodicity.Ancestors()
}

// DescendantPeriodicities lists the periodicities this slot can be split into.
func (ts *TimeSlot) DescendantPeriodicities() []domain.Periodicity {
	return ts.periodicity.Descendants()
}

// Contains reports whether t falls on one of the days of the slot.
func (ts *TimeSlot) Contains(t time.Time) bool {
	return !t.Before(ts.first) && t.Before(ts.LastInstant().Add(day))
}

func (ts *TimeSlot) String() string { return ts.value }

// MarshalText implements encoding.TextMarshaler.
func (ts *TimeSlot) MarshalText() ([]byte, error) {
	return []byte(ts.value), nil
}

func mustInstant(t time.Time, err error) time.Time {
	if err != nil {
		// ALLOW-PANIC: the digits were parsed at construction
		panic(err)
	}
	return t
}
