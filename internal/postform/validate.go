package postform

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/ukuku360/RK-explore-sub000/internal/feed"
)

const (
	FieldLocation      = "location"
	FieldProposedDate  = "proposed_date"
	FieldCategory      = "category"
	FieldCapacity      = "capacity"
	FieldEstimatedCost = "estimated_cost"
	FieldRsvpDeadline  = "rsvp_deadline"
)

const (
	minLocationLen = 2
	maxLocationLen = 60
	minCapacity    = 1
	maxCapacity    = 200

	dateLayout          = "2006-01-02"
	localDateTimeLayout = "2006-01-02T15:04"
)

// FieldErrors maps a form field to a human-readable message. A missing key
// means the field is valid.
type FieldErrors map[string]string

var (
	errNotANumber = errors.New("not a whole number")
	errNegative   = errors.New("negative")
)

func ValidateStep1(form PostFormState, now time.Time) FieldErrors {
	errs := FieldErrors{}

	if n := utf8.RuneCountInString(strings.TrimSpace(form.Location)); n < minLocationLen || n > maxLocationLen {
		errs[FieldLocation] = "Location must be between 2 and 60 characters."
	}

	if strings.TrimSpace(form.ProposedDate) == "" {
		errs[FieldProposedDate] = "Pick a date for the trip."
	} else if date, err := parseDate(form.ProposedDate, now.Location()); err != nil {
		errs[FieldProposedDate] = "Trip date is not a valid date."
	} else if date.Before(startOfDay(now)) {
		errs[FieldProposedDate] = "Trip date cannot be in the past."
	}

	if !feed.Category(strings.TrimSpace(form.Category)).Valid() {
		errs[FieldCategory] = "Pick one of the listed categories."
	}

	if c, err := strconv.Atoi(strings.TrimSpace(form.Capacity)); err != nil || c < minCapacity || c > maxCapacity {
		errs[FieldCapacity] = "Capacity must be a whole number between 1 and 200."
	}

	return errs
}

func IsStep1Valid(form PostFormState, now time.Time) bool {
	return len(ValidateStep1(form, now)) == 0
}

// OptionalResult carries the parsed optional values next to their errors.
// Parsed values are set only for fields that validated.
type OptionalResult struct {
	Errors          FieldErrors
	EstimatedCost   *int
	RsvpDeadline    *time.Time
	RsvpDeadlineISO string
}

func ValidateOptionalFields(form PostFormState, now time.Time) OptionalResult {
	res := OptionalResult{Errors: FieldErrors{}}

	cost, err := parseCost(form.EstimatedCost)
	if err != nil {
		res.Errors[FieldEstimatedCost] = "Estimated cost must be a whole number of 0 or more."
	} else {
		res.EstimatedCost = cost
	}

	if strings.TrimSpace(form.RsvpDeadline) == "" {
		return res
	}
	deadline, err := parseDeadline(form.RsvpDeadline, now.Location())
	switch {
	case err != nil:
		res.Errors[FieldRsvpDeadline] = "RSVP deadline is not a valid date and time."
		return res
	case !deadline.After(now):
		res.Errors[FieldRsvpDeadline] = "RSVP deadline must be in the future."
		return res
	}
	if tripDate, err := parseDate(form.ProposedDate, now.Location()); err == nil {
		y, m, d := tripDate.Date()
		lastMoment := time.Date(y, m, d, 23, 59, 59, 0, tripDate.Location())
		if deadline.After(lastMoment) {
			res.Errors[FieldRsvpDeadline] = "RSVP deadline must be on or before the trip date."
			return res
		}
	}

	res.RsvpDeadline = &deadline
	res.RsvpDeadlineISO = deadline.UTC().Format(time.RFC3339)
	return res
}

// Validate runs every check used on final submit.
func Validate(form PostFormState, now time.Time) FieldErrors {
	errs := ValidateStep1(form, now)
	for field, msg := range ValidateOptionalFields(form, now).Errors {
		errs[field] = msg
	}
	return errs
}

// parseCost returns nil for an empty value.
func parseCost(raw string) (*int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil, errNotANumber
	}
	if n < 0 {
		return nil, errNegative
	}
	return &n, nil
}

func parseDate(raw string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(dateLayout, strings.TrimSpace(raw), loc)
}

// parseDeadline accepts RFC 3339 or a zone-less datetime-local value.
func parseDeadline(raw string, loc *time.Location) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.ParseInLocation(localDateTimeLayout, raw, loc)
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
