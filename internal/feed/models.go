package feed

import "time"

type Category string

const (
	CategoryOutdoor Category = "outdoor"
	CategoryFood    Category = "food"
	CategoryCulture Category = "culture"
	CategorySports  Category = "sports"
	CategoryGames   Category = "games"
	CategoryOther   Category = "other"
)

var Categories = []Category{
	CategoryOutdoor, CategoryFood, CategoryCulture, CategorySports, CategoryGames, CategoryOther,
}

func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusProposed  Status = "proposed"
	StatusConfirmed Status = "confirmed"
)

// Post is a proposed or confirmed group outing.
type Post struct {
	ID           string     `json:"id"`
	Location     string     `json:"location"`
	Author       string     `json:"author"`
	UserID       string     `json:"user_id"`
	ProposedDate *time.Time `json:"proposed_date,omitempty"`
	Category     Category   `json:"category"`
	Status       Status     `json:"status"`
	Capacity     int        `json:"capacity"`

	MeetupPlace   string     `json:"meetup_place,omitempty"`
	MeetupTime    string     `json:"meetup_time,omitempty"`
	EstimatedCost *int       `json:"estimated_cost,omitempty"`
	PrepNotes     string     `json:"prep_notes,omitempty"`
	RsvpDeadline  *time.Time `json:"rsvp_deadline,omitempty"`

	IsHidden     bool       `json:"is_hidden"`
	HiddenReason string     `json:"hidden_reason,omitempty"`
	HiddenBy     string     `json:"hidden_by,omitempty"`
	HiddenAt     *time.Time `json:"hidden_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`

	Votes    []Vote    `json:"votes"`
	Comments []Comment `json:"comments"`
	Rsvps    []Rsvp    `json:"rsvps"`
}

type Vote struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Rsvp struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type Comment struct {
	ID              string    `json:"id"`
	PostID          string    `json:"post_id"`
	ParentCommentID *string   `json:"parent_comment_id,omitempty"`
	UserID          *string   `json:"user_id,omitempty"`
	Author          string    `json:"author"`
	Text            string    `json:"text"`
	CreatedAt       time.Time `json:"created_at"`
}

// AuthoredBy is false for comments without a recorded user id.
func (c Comment) AuthoredBy(userID string) bool {
	return c.UserID != nil && userID != "" && *c.UserID == userID
}

func (p Post) HasVoteFrom(userID string) bool {
	if userID == "" {
		return false
	}
	for _, v := range p.Votes {
		if v.UserID == userID {
			return true
		}
	}
	return false
}

func (p Post) HasRsvpFrom(userID string) bool {
	if userID == "" {
		return false
	}
	for _, r := range p.Rsvps {
		if r.UserID == userID {
			return true
		}
	}
	return false
}
