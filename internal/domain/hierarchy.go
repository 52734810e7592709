package domain

import (
	"slices"

	"github.com/hashicorp/go-set/v2"
)

// parents lists the direct "is contained in" edges of the containment hierarchy.
// The three week-start variants run in parallel and merge at Month.
var parents = [periodicityCount][]Periodicity{
	Day:          {MonthWeekSat, MonthWeekSun, MonthWeekMon},
	MonthWeekSat: {WeekSat},
	MonthWeekSun: {WeekSun},
	MonthWeekMon: {WeekMon},
	WeekSat:      {Month},
	WeekSun:      {Month},
	WeekMon:      {Month},
	Month:        {Quarter},
	Quarter:      {Semester},
	Semester:     {Year},
	Year:         {All},
	All:          nil,
}

// Transitive closures, computed once at init and ordered by declaration.
var (
	ancestorSets   [periodicityCount]*set.Set[Periodicity]
	descendantSets [periodicityCount]*set.Set[Periodicity]
	ancestors      [periodicityCount][]Periodicity
	descendants    [periodicityCount][]Periodicity
)

func init() {
	for p := Day; p <= All; p++ {
		ancestorSets[p] = closure(p, set.New[Periodicity](periodicityCount))
		descendantSets[p] = set.New[Periodicity](periodicityCount)
	}

	for p := Day; p <= All; p++ {
		for _, a := range ancestorSets[p].Slice() {
			descendantSets[a].Insert(p)
		}
	}

	for p := Day; p <= All; p++ {
		ancestors[p] = ordered(ancestorSets[p])
		descendants[p] = ordered(descendantSets[p])
	}
}

// closure walks the direct edges from p and collects every reachable periodicity.
func closure(p Periodicity, seen *set.Set[Periodicity]) *set.Set[Periodicity] {
	for _, parent := range parents[p] {
		if seen.Insert(parent) {
			closure(parent, seen)
		}
	}
	return seen
}

func ordered(s *set.Set[Periodicity]) []Periodicity {
	out := make([]Periodicity, 0, s.Size())
	for p := Day; p <= All; p++ {
		if s.Contains(p) {
			out = append(out, p)
		}
	}
	return out
}

// Parents returns the periodicities directly containing p.
func (p Periodicity) Parents() []Periodicity {
	if !p.IsValid() {
		return nil
	}
	return slices.Clone(parents[p])
}

// Ancestors returns every periodicity that always contains a period of kind p,
// in declaration order. It never includes p itself.
func (p Periodicity) Ancestors() []Periodicity {
	if !p.IsValid() {
		return nil
	}
	return slices.Clone(ancestors[p])
}

// Descendants returns every periodicity whose periods are always contained in a
// period of kind p, in declaration order. It never includes p itself.
func (p Periodicity) Descendants() []Periodicity {
	if !p.IsValid() {
		return nil
	}
	return slices.Clone(descendants[p])
}

// IsAncestorOf reports whether p strictly contains other in the hierarchy.
func (p Periodicity) IsAncestorOf(other Periodicity) bool {
	if !p.IsValid() || !other.IsValid() {
		return false
	}
	return ancestorSets[other].Contains(p)
}

// IsDescendantOf reports whether p is strictly contained in other.
func (p Periodicity) IsDescendantOf(other Periodicity) bool {
	return other.IsAncestorOf(p)
}
