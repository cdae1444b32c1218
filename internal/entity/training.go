package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

type RequestStatus string

const (
	RequestPending  RequestStatus = "PENDING"
	RequestApproved RequestStatus = "APPROVED"
	RequestRejected RequestStatus = "REJECTED"
)

func (s RequestStatus) String() string {
	return string(s)
}

func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestApproved, RequestRejected:
		return true
	default:
		return false
	}
}

type RequestAction string

const (
	RequestActionApprove RequestAction = "approve"
	RequestActionReject  RequestAction = "reject"
)

type requestTransition struct {
	from   RequestStatus
	action RequestAction
}

// APPROVED and REJECTED have no outgoing transitions.
var requestTransitions = map[requestTransition]RequestStatus{
	{RequestPending, RequestActionApprove}: RequestApproved,
	{RequestPending, RequestActionReject}:  RequestRejected,
}

func (s RequestStatus) Next(action RequestAction) (RequestStatus, error) {
	next, ok := requestTransitions[requestTransition{from: s, action: action}]
	if !ok {
		return "", fmt.Errorf("%w: training request cannot %s from %s", ErrInvalidState, action, s)
	}

	return next, nil
}

type TrainingRequest struct {
	ID                   uuid.UUID
	PersonnelID          uuid.UUID
	CourseID             uuid.UUID
	CompanyID            uuid.UUID
	CourseName           string
	CourseValidityMonths int
	Status               RequestStatus
	CreatedAt            time.Time
}

type TrainingRecord struct {
	ID             uuid.UUID
	PersonnelID    uuid.UUID
	CompanyID      uuid.UUID
	CourseID       uuid.UUID
	CourseName     string
	CompletionDate time.Time
	ExpiryDate     *time.Time
	RecorderID     uuid.UUID
	CreatedAt      time.Time
}

// Badge returns the certification badge of the record on the calendar day of now.
func (r TrainingRecord) Badge(now time.Time) Badge {
	return CertificateBadge(r.ExpiryDate, now)
}

type Course struct {
	ID             uuid.UUID
	Name           string
	ValidityMonths int
	CreatedAt      time.Time
}

func (c Course) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("%w: course name is required", ErrValidation)
	}

	if c.ValidityMonths < 0 {
		return fmt.Errorf("%w: validity months must not be negative", ErrValidation)
	}

	return nil
}

// ExpiryDate returns completion + ValidityMonths, or nil for a course that does not expire.
func (c Course) ExpiryDate(completion time.Time) *time.Time {
	if c.ValidityMonths <= 0 {
		return nil
	}

	expiry := AddMonths(Date(completion), c.ValidityMonths)

	return &expiry
}

// Date truncates t to midnight UTC of its own calendar day.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// AddMonths keeps the day of month, clamped to the last day of the target month:
// 2024-01-31 + 1 month is 2024-02-29.
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()

	firstOfTarget := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, time.UTC)

	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()
	if d > lastDay {
		d = lastDay
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), d, 0, 0, 0, 0, time.UTC)
}

type Badge string

const (
	BadgeNone    Badge = ""
	BadgeValid   Badge = "VALID"
	BadgeExpired Badge = "EXPIRED"
)

// CertificateBadge compares calendar dates only; a certificate expiring today is still valid.
func CertificateBadge(expiry *time.Time, now time.Time) Badge {
	if expiry == nil {
		return BadgeNone
	}

	if Date(*expiry).Before(Date(now)) {
		return BadgeExpired
	}

	return BadgeValid
}

// ApproveCommand is a reviewer approval of a person, optionally resolving one training request.
type ApproveCommand struct {
	PersonnelID    uuid.UUID
	CourseID       uuid.UUID
	RequestID      uuid.UUID
	CompletionDate time.Time
}

func (c ApproveCommand) Validate() error {
	if c.PersonnelID.IsNil() {
		return fmt.Errorf("%w: personnel id is required", ErrValidation)
	}

	if c.CourseID.IsNil() && c.RequestID.IsNil() {
		return fmt.Errorf("%w: course id is required", ErrValidation)
	}

	if c.CompletionDate.IsZero() {
		return fmt.Errorf("%w: completion date is required", ErrValidation)
	}

	return nil
}
