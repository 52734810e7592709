// Package domain contains the periodicity catalog of the time slot engine: the
// closed set of ways to cut time into periods, the shape rules that map a value
// string to its periodicity, and the containment hierarchy used to validate
// conversions between periodicities.
//
// Everything in this package is immutable after package initialization and safe
// for concurrent use.
package domain
