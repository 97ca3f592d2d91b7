package postform

import (
	"strings"

	"github.com/ukuku360/RK-explore-sub000/internal/feed"
)

// PostFormState holds the raw, unparsed values of the new-trip form.
type PostFormState struct {
	Location      string `json:"location"`
	ProposedDate  string `json:"proposed_date"`
	Category      string `json:"category"`
	Capacity      string `json:"capacity"`
	MeetupPlace   string `json:"meetup_place"`
	MeetupTime    string `json:"meetup_time"`
	EstimatedCost string `json:"estimated_cost"`
	PrepNotes     string `json:"prep_notes"`
	RsvpDeadline  string `json:"rsvp_deadline"`
}

func InitialFormState() PostFormState {
	return PostFormState{
		Category: string(feed.CategoryOutdoor),
		Capacity: "10",
	}
}

func (f PostFormState) fields() [9]string {
	return [9]string{
		f.Location, f.ProposedDate, f.Category, f.Capacity, f.MeetupPlace,
		f.MeetupTime, f.EstimatedCost, f.PrepNotes, f.RsvpDeadline,
	}
}

// HasDraftContent reports whether any field differs from the pristine form.
// Surrounding whitespace is ignored.
func HasDraftContent(form PostFormState) bool {
	initial := InitialFormState().fields()
	for i, v := range form.fields() {
		if strings.TrimSpace(v) != initial[i] {
			return true
		}
	}
	return false
}
