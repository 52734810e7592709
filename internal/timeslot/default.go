package timeslot

import (
	"sync"
	"time"

	"github.com/phrazzld/timeslot/internal/domain"
	"github.com/phrazzld/timeslot/internal/domain/strategy"
)

var defaultCache = sync.OnceValue(func() *Cache {
	return NewCache(strategy.Default())
})

// Default returns the process-wide cache backing the package-level functions.
func Default() *Cache {
	return defaultCache()
}

// FromValue returns the slot for value from the default cache.
func FromValue(value string) (*TimeSlot, error) {
	return Default().FromValue(value)
}

// FromValueChecked returns the slot for the canonical value from the default
// cache.
func FromValueChecked(value string) (*TimeSlot, error) {
	return Default().FromValueChecked(value)
}

// FromInstant returns the slot of periodicity p containing t from the default
// cache.
func FromInstant(t time.Time, p domain.Periodicity) (*TimeSlot, error) {
	return Default().FromInstant(t, p)
}
