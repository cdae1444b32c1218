package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type EventType string

const (
	EventPersonnelRegistered EventType = "personnel.registered"
	EventPersonnelVerified   EventType = "personnel.verified"
	EventPersonnelRejected   EventType = "personnel.rejected"
	EventPersonnelDeleted    EventType = "personnel.deleted"
	EventRequestSubmitted    EventType = "training_request.submitted"
	EventRequestApproved     EventType = "training_request.approved"
	EventRequestRejected     EventType = "training_request.rejected"
	EventCertificateExpiring EventType = "certificate.expiring"
)

type Event struct {
	Type        EventType  `json:"type"`
	PersonnelID uuid.UUID  `json:"personnelId"`
	CompanyID   uuid.UUID  `json:"companyId"`
	RequestID   *uuid.UUID `json:"requestId,omitempty"`
	CourseID    *uuid.UUID `json:"courseId,omitempty"`
	Status      string     `json:"status,omitempty"`
	ExpiryDate  *time.Time `json:"expiryDate,omitempty"`
	OccurredAt  time.Time  `json:"occurredAt"`
}
