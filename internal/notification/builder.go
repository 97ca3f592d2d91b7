package notification

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/ukuku360/RK-explore-sub000/internal/feed"
)

const DefaultRetentionDays = 14

type Input struct {
	Posts         []feed.Post
	Reports       []Report
	UserID        string
	Nickname      string
	RetentionDays int
	Now           time.Time
}

// Build derives the viewer's notification feed, newest first. Each event is
// checked against the retention window on its own.
//
// Two timestamps are used as-is from the rows: meetup updates are aged by the
// post's created_at, and report results are sorted by the report's
// created_at even when the review time decided retention.
func Build(in Input) []Item {
	days := in.RetentionDays
	if days <= 0 {
		days = DefaultRetentionDays
	}
	window := time.Duration(days) * 24 * time.Hour
	expired := func(t time.Time) bool { return in.Now.Sub(t) > window }

	mention := ""
	if nick := strings.TrimSpace(in.Nickname); nick != "" {
		mention = "@" + strings.ToLower(nick)
	}

	items := []Item{}
	for _, p := range in.Posts {
		path := "/posts/" + p.ID
		for _, c := range p.Comments {
			if expired(c.CreatedAt) || c.AuthoredBy(in.UserID) {
				continue
			}
			author := displayName(c.Author)

			if in.UserID != "" && p.UserID == in.UserID {
				items = append(items, Item{
					ID:         "comment-" + c.ID,
					Type:       TypeComment,
					Title:      "New comment on your trip",
					Message:    fmt.Sprintf("%s commented on %s: %s", author, p.Location, excerpt(c.Text)),
					CreatedAt:  c.CreatedAt,
					TargetPath: path,
				})
			}
			if mention != "" && strings.Contains(strings.ToLower(c.Text), mention) {
				items = append(items, Item{
					ID:         "mention-" + c.ID,
					Type:       TypeMention,
					Title:      "You were mentioned",
					Message:    fmt.Sprintf("%s mentioned you on %s: %s", author, p.Location, excerpt(c.Text)),
					CreatedAt:  c.CreatedAt,
					TargetPath: path,
				})
			}
		}

		if p.Status == feed.StatusConfirmed && p.HasRsvpFrom(in.UserID) && !expired(p.CreatedAt) {
			items = append(items, Item{
				ID:         "meetup-" + p.ID,
				Type:       TypeMeetupUpdate,
				Title:      "Trip confirmed",
				Message:    meetupMessage(p),
				CreatedAt:  p.CreatedAt,
				TargetPath: path,
			})
		}
	}

	for _, r := range in.Reports {
		checked := r.CreatedAt
		if r.ReviewedAt != nil {
			checked = *r.ReviewedAt
		}
		if expired(checked) {
			continue
		}

		var msg string
		switch r.Status {
		case ReportActioned:
			msg = "Thanks for your report. A moderator reviewed it and took action on the content."
		case ReportDismissed:
			msg = "Thanks for your report. A moderator reviewed it and found no rule violation."
		default:
			continue
		}

		target := "/"
		if r.TargetType == TargetCommunity {
			target = "/community"
		}
		items = append(items, Item{
			ID:         "report-" + r.ID,
			Type:       TypeReportResult,
			Title:      "Report reviewed",
			Message:    msg,
			CreatedAt:  r.CreatedAt,
			TargetPath: target,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if !items[i].CreatedAt.Equal(items[j].CreatedAt) {
			return items[i].CreatedAt.After(items[j].CreatedAt)
		}
		return items[i].ID < items[j].ID
	})
	return items
}

// UnreadCount counts items strictly newer than lastSeenAt. A zero lastSeenAt
// counts everything.
func UnreadCount(items []Item, lastSeenAt time.Time) int {
	n := 0
	for _, it := range items {
		if it.CreatedAt.After(lastSeenAt) {
			n++
		}
	}
	return n
}

func meetupMessage(p feed.Post) string {
	msg := fmt.Sprintf("%s is confirmed.", p.Location)
	if p.MeetupPlace != "" && p.MeetupTime != "" {
		msg += fmt.Sprintf(" Meet at %s, %s.", p.MeetupPlace, p.MeetupTime)
	} else if p.MeetupPlace != "" {
		msg += fmt.Sprintf(" Meet at %s.", p.MeetupPlace)
	}
	return msg
}

func displayName(author string) string {
	if a := strings.TrimSpace(author); a != "" {
		return a
	}
	return "Someone"
}

const excerptRunes = 80

func excerpt(text string) string {
	r := []rune(strings.TrimSpace(text))
	if len(r) <= excerptRunes {
		return string(r)
	}
	return string(r[:excerptRunes]) + "…"
}
