// Package timeslot provides TimeSlot, an immutable handle on a period value
// such as "2017-05", "2017-W18-mon" or "all", together with the interning Cache
// that guarantees one TimeSlot per distinct value.
//
// Derived data (bounds, neighbors, conversions) is computed on first use and
// then kept for the lifetime of the slot. All types are safe for concurrent use.
package timeslot
