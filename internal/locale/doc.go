// Package locale renders periodicities and time slot values as human-readable
// labels. English, French and Spanish tables are built in; a language is
// selected by its BCP 47 tag, of which only the base language is used.
package locale
