// Package strategy implements the date arithmetic of every periodicity.
//
// Each periodicity has a stateless Strategy converting between value strings
// and UTC instants and stepping to neighboring values. A Registry maps
// periodicities to strategies and builds the cross-periodicity conversions
// (projection to a coarser periodicity, enumeration of a finer one) from those
// primitives and the containment hierarchy of package domain.
package strategy
