package api

import (
	"time"

	"github.com/phrazzld/timeslot/internal/domain"
	"github.com/phrazzld/timeslot/internal/locale"
	"github.com/phrazzld/timeslot/internal/timeslot"
)

// TimeSlotResponse describes one time slot.
type TimeSlotResponse struct {
	Value                   string   `json:"value"`
	Periodicity             string   `json:"periodicity"`
	FirstDate               string   `json:"first_date"`
	LastDate                string   `json:"last_date"`
	Previous                string   `json:"previous,omitempty"`
	Next                    string   `json:"next,omitempty"`
	AncestorPeriodicities   []string `json:"ancestor_periodicities"`
	DescendantPeriodicities []string `json:"descendant_periodicities"`
	Label                   string   `json:"label"`
}

// TimeSlotSummary is the short form used in lists.
type TimeSlotSummary struct {
	Value     string `json:"value"`
	FirstDate string `json:"first_date"`
	LastDate  string `json:"last_date"`
	Label     string `json:"label"`
}

// DescendantsResponse lists the children of a time slot.
type DescendantsResponse struct {
	Items []TimeSlotSummary `json:"items"`
	Count int               `json:"count"`
}

// PeriodicityResponse describes one periodicity.
type PeriodicityResponse struct {
	ID      string   `json:"id"`
	Label   string   `json:"label"`
	Parents []string `json:"parents"`
}

// FromDateRequest holds the query parameters of the from-date endpoint.
type FromDateRequest struct {
	Date        string `validate:"required,max=35"`
	Periodicity string `validate:"required,max=14,periodicity"`
}

func timeSlotToResponse(slot *timeslot.TimeSlot, l locale.Locale) TimeSlotResponse {
	return TimeSlotResponse{
		Value:                   slot.Value(),
		Periodicity:             slot.Periodicity().String(),
		FirstDate:               formatDate(slot.FirstInstant()),
		LastDate:                formatDate(slot.LastInstant()),
		Previous:                valueOf(slot.Previous()),
		Next:                    valueOf(slot.Next()),
		AncestorPeriodicities:   periodicityIDs(slot.AncestorPeriodicities()),
		DescendantPeriodicities: periodicityIDs(slot.DescendantPeriodicities()),
		Label:                   l.HumanizeValue(slot.Periodicity(), slot.Value()),
	}
}

func timeSlotToSummary(slot *timeslot.TimeSlot, l locale.Locale) TimeSlotSummary {
	return TimeSlotSummary{
		Value:     slot.Value(),
		FirstDate: formatDate(slot.FirstInstant()),
		LastDate:  formatDate(slot.LastInstant()),
		Label:     l.HumanizeValue(slot.Periodicity(), slot.Value()),
	}
}

func periodicityToResponse(p domain.Periodicity, l locale.Locale) PeriodicityResponse {
	return PeriodicityResponse{
		ID:      p.String(),
		Label:   l.HumanizePeriodicity(p),
		Parents: periodicityIDs(p.Parents()),
	}
}

// valueOf tolerates the nil neighbors of slots at the edge of the calendar.
func valueOf(slot *timeslot.TimeSlot) string {
	if slot == nil {
		return ""
	}
	return slot.Value()
}

func periodicityIDs(ps []domain.Periodicity) []string {
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.String()
	}
	return ids
}

func formatDate(t time.Time) string {
	return t.Format(time.DateOnly)
}
