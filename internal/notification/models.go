package notification

import "time"

type Type string

const (
	TypeComment      Type = "comment"
	TypeMention      Type = "mention"
	TypeMeetupUpdate Type = "meetup_update"
	TypeReportResult Type = "report_result"
)

type Item struct {
	ID         string    `json:"id"`
	Type       Type      `json:"type"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
	TargetPath string    `json:"target_path"`
}

type ReportTarget string

const (
	TargetFeed      ReportTarget = "feed"
	TargetCommunity ReportTarget = "community"
)

type ReportStatus string

const (
	ReportOpen      ReportStatus = "open"
	ReportDismissed ReportStatus = "dismissed"
	ReportActioned  ReportStatus = "actioned"
)

// Report is a moderation report. Exactly one of PostID and CommunityPostID
// is set, matching TargetType.
type Report struct {
	ID              string       `json:"id"`
	TargetType      ReportTarget `json:"target_type"`
	PostID          *string      `json:"post_id,omitempty"`
	CommunityPostID *string      `json:"community_post_id,omitempty"`
	ReporterID      string       `json:"reporter_id"`
	Reason          string       `json:"reason"`
	Status          ReportStatus `json:"status"`
	CreatedAt       time.Time    `json:"created_at"`
	ReviewedBy      *string      `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time   `json:"reviewed_at,omitempty"`
}
