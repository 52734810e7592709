package timeslot

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/phrazzld/timeslot/internal/domain"
	"github.com/phrazzld/timeslot/internal/domain/strategy"
	"golang.org/x/sync/singleflight"
)

// Cache interns TimeSlots by value. Entries are never evicted, so a slot
// obtained from a cache stays the unique slot for its value.
type Cache struct {
	registry *strategy.Registry

	slots sync.Map // value -> *TimeSlot
	size  atomic.Int64
	group singleflight.Group
}

// NewCache creates an empty cache resolving strategies from registry.
func NewCache(registry *strategy.Registry) *Cache {
	if registry == nil {
		// ALLOW-PANIC: constructor enforcing required dependency
		panic("registry cannot be nil")
	}
	return &Cache{registry: registry}
}

// FromValue returns the slot for value. The shape of value selects the
// periodicity and its digits must parse, but the value is not checked for
// being canonical: "2017-13" is accepted as a month. Use FromValueChecked for
// untrusted input.
func (c *Cache) FromValue(value string) (*TimeSlot, error) {
	if slot, ok := c.slots.Load(value); ok {
		return slot.(*TimeSlot), nil
	}

	v, err, _ := c.group.Do(value, func() (any, error) {
		if slot, ok := c.slots.Load(value); ok {
			return slot, nil
		}

		s, err := c.registry.ForValue(value)
		if err != nil {
			return nil, err
		}
		slot, err := newTimeSlot(c, s, value)
		if err != nil {
			return nil, err
		}

		actual, loaded := c.slots.LoadOrStore(value, slot)
		if !loaded {
			c.size.Add(1)
		}
		return actual, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*TimeSlot), nil
}

// FromValueChecked is FromValue for values that must also be canonical, i.e.
// name an existing period in its normalized spelling.
func (c *Cache) FromValueChecked(value string) (*TimeSlot, error) {
	if err := c.registry.Validate(value); err != nil {
		return nil, err
	}
	return c.FromValue(value)
}

// FromInstant returns the slot of periodicity p containing t. Only the UTC
// date of t is used.
func (c *Cache) FromInstant(t time.Time, p domain.Periodicity) (*TimeSlot, error) {
	s, err := c.registry.Get(p)
	if err != nil {
		return nil, err
	}
	return c.FromValue(s.FromInstant(t))
}

// Len returns the number of interned slots.
func (c *Cache) Len() int {
	return int(c.size.Load())
}
