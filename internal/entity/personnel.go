package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
)

type PersonnelStatus string

const (
	PersonnelPendingAdmin   PersonnelStatus = "PENDING_ADMIN"
	PersonnelVerifiedActive PersonnelStatus = "VERIFIED_ACTIVE"
	PersonnelRejected       PersonnelStatus = "REJECTED"
)

func (s PersonnelStatus) String() string {
	return string(s)
}

func (s PersonnelStatus) IsValid() bool {
	switch s {
	case PersonnelPendingAdmin, PersonnelVerifiedActive, PersonnelRejected:
		return true
	default:
		return false
	}
}

// PersonnelAction is a reviewer decision applied to a personnel record.
type PersonnelAction string

const (
	// ActionApprove is a first-time approval without a training request.
	ActionApprove PersonnelAction = "approve"
	ActionReject  PersonnelAction = "reject"
	// ActionResolveRequest is an approval of one of the person's pending training requests.
	ActionResolveRequest PersonnelAction = "resolve_request"
	// ActionRecordTraining adds completion evidence to an already active person.
	ActionRecordTraining PersonnelAction = "record_training"
)

type personnelTransition struct {
	from   PersonnelStatus
	action PersonnelAction
}

// REJECTED -> VERIFIED_ACTIVE through a training request keeps the permissive re-review path open.
var personnelTransitions = map[personnelTransition]PersonnelStatus{
	{PersonnelPendingAdmin, ActionApprove}:          PersonnelVerifiedActive,
	{PersonnelPendingAdmin, ActionReject}:           PersonnelRejected,
	{PersonnelPendingAdmin, ActionResolveRequest}:   PersonnelVerifiedActive,
	{PersonnelVerifiedActive, ActionResolveRequest}: PersonnelVerifiedActive,
	{PersonnelRejected, ActionResolveRequest}:       PersonnelVerifiedActive,
	{PersonnelVerifiedActive, ActionRecordTraining}: PersonnelVerifiedActive,
}

// Next returns the status reached by applying action to s.
func (s PersonnelStatus) Next(action PersonnelAction) (PersonnelStatus, error) {
	next, ok := personnelTransitions[personnelTransition{from: s, action: action}]
	if !ok {
		return "", fmt.Errorf("%w: personnel cannot %s from %s", ErrInvalidState, action, s)
	}

	return next, nil
}

// AllowedFrom lists the statuses action may be applied to, used as the guard of the write.
func (a PersonnelAction) AllowedFrom() []PersonnelStatus {
	var from []PersonnelStatus

	for _, s := range []PersonnelStatus{PersonnelPendingAdmin, PersonnelVerifiedActive, PersonnelRejected} {
		if _, ok := personnelTransitions[personnelTransition{from: s, action: a}]; ok {
			from = append(from, s)
		}
	}

	return from
}

type Personnel struct {
	ID                   uuid.UUID
	CompanyID            uuid.UUID
	CompanyName          string
	FirstName            string
	LastName             string
	NationalIDOrPassport string
	Position             string
	PhotoURL             *string
	Status               PersonnelStatus
	Remark               *string
	CreatedAt            time.Time

	Records  []TrainingRecord
	Requests []TrainingRequest
}

func (p Personnel) FullName() string {
	return strings.TrimSpace(p.FirstName + " " + p.LastName)
}

// PendingRequests returns the requests still awaiting a reviewer.
func (p Personnel) PendingRequests() []TrainingRequest {
	var pending []TrainingRequest

	for _, r := range p.Requests {
		if r.Status == RequestPending {
			pending = append(pending, r)
		}
	}

	return pending
}

// NeedsReview reports whether p belongs in the reviewer work queue.
func (p Personnel) NeedsReview() bool {
	if p.Status == PersonnelPendingAdmin {
		return true
	}

	for _, r := range p.Requests {
		if r.Status == RequestPending {
			return true
		}
	}

	return false
}

// ReviewQueue selects the personnel needing reviewer attention, keeping snapshot order.
func ReviewQueue(snapshot []Personnel) []Personnel {
	queue := make([]Personnel, 0, len(snapshot))

	for _, p := range snapshot {
		if p.NeedsReview() {
			queue = append(queue, p)
		}
	}

	return queue
}

// PersonnelFilter narrows a personnel snapshot. A nil CompanyID spans all companies.
type PersonnelFilter struct {
	CompanyID uuid.UUID
}

// HistoryFilter is the reviewer search over every personnel record.
type HistoryFilter struct {
	Name    string
	Company string
	Course  string
}

func (f HistoryFilter) Match(p Personnel) bool {
	courses := make([]string, 0, len(p.Records))
	for _, r := range p.Records {
		courses = append(courses, r.CourseName)
	}

	return containsFold(p.FullName(), f.Name) &&
		containsFold(p.CompanyName, f.Company) &&
		containsFold(strings.Join(courses, " "), f.Course)
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(strings.TrimSpace(substr)))
}

type PersonnelDetails struct {
	FirstName            string
	LastName             string
	NationalIDOrPassport string
	Position             string
}

func (d PersonnelDetails) Validate() error {
	if strings.TrimSpace(d.FirstName) == "" ||
		strings.TrimSpace(d.LastName) == "" ||
		strings.TrimSpace(d.NationalIDOrPassport) == "" ||
		strings.TrimSpace(d.Position) == "" {
		return ErrPersonnelFields
	}

	return nil
}

func (d PersonnelDetails) Trimmed() PersonnelDetails {
	return PersonnelDetails{
		FirstName:            strings.TrimSpace(d.FirstName),
		LastName:             strings.TrimSpace(d.LastName),
		NationalIDOrPassport: strings.TrimSpace(d.NationalIDOrPassport),
		Position:             strings.TrimSpace(d.Position),
	}
}

const MaxPhotoSize = 2 << 20

type Photo struct {
	Name        string
	ContentType string
	Data        []byte
}
