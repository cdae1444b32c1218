package api

import (
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/certification/internal/entity"
)

type PersonnelResponse struct {
	ID                   uuid.UUID                 `json:"id"`
	CompanyID            uuid.UUID                 `json:"companyId"`
	CompanyName          string                    `json:"companyName"`
	FirstName            string                    `json:"firstName"`
	LastName             string                    `json:"lastName"`
	NationalIDOrPassport string                    `json:"nationalId"`
	Position             string                    `json:"position"`
	PhotoURL             *string                   `json:"photoUrl"`
	Status               entity.PersonnelStatus    `json:"status" enums:"PENDING_ADMIN,VERIFIED_ACTIVE,REJECTED"`
	Remark               *string                   `json:"remark"`
	CreatedAt            time.Time                 `json:"createdAt"`
	Records              []TrainingRecordResponse  `json:"records"`
	Requests             []TrainingRequestResponse `json:"requests"`
}

type TrainingRecordResponse struct {
	ID             uuid.UUID    `json:"id"`
	PersonnelID    uuid.UUID    `json:"personnelId"`
	CourseID       uuid.UUID    `json:"courseId"`
	CourseName     string       `json:"courseName"`
	CompletionDate string       `json:"completionDate" example:"2024-03-15"`
	ExpiryDate     *string      `json:"expiryDate" example:"2025-03-15"`
	Badge          entity.Badge `json:"badge,omitempty" enums:"VALID,EXPIRED"`
	RecorderID     uuid.UUID    `json:"recorderId"`
}

type TrainingRequestResponse struct {
	ID          uuid.UUID            `json:"id"`
	PersonnelID uuid.UUID            `json:"personnelId"`
	CourseID    uuid.UUID            `json:"courseId"`
	CourseName  string               `json:"courseName"`
	Status      entity.RequestStatus `json:"status" enums:"PENDING,APPROVED,REJECTED"`
	CreatedAt   time.Time            `json:"createdAt"`
}

type CourseResponse struct {
	ID             uuid.UUID `json:"id"`
	Name           string    `json:"name"`
	ValidityMonths int       `json:"validityMonths"`
}

func (h *Handler) personnelToAPI(personnel []entity.Personnel) []PersonnelResponse {
	resp := make([]PersonnelResponse, 0, len(personnel))
	for _, p := range personnel {
		resp = append(resp, h.toPersonnelResponse(p))
	}

	return resp
}

func (h *Handler) toPersonnelResponse(p entity.Personnel) PersonnelResponse {
	resp := PersonnelResponse{
		ID:                   p.ID,
		CompanyID:            p.CompanyID,
		CompanyName:          p.CompanyName,
		FirstName:            p.FirstName,
		LastName:             p.LastName,
		NationalIDOrPassport: p.NationalIDOrPassport,
		Position:             p.Position,
		PhotoURL:             p.PhotoURL,
		Status:               p.Status,
		Remark:               p.Remark,
		CreatedAt:            p.CreatedAt,
		Records:              make([]TrainingRecordResponse, 0, len(p.Records)),
		Requests:             make([]TrainingRequestResponse, 0, len(p.Requests)),
	}

	for _, r := range p.Records {
		resp.Records = append(resp.Records, h.toTrainingRecordResponse(r))
	}

	for _, r := range p.Requests {
		resp.Requests = append(resp.Requests, toTrainingRequestResponse(r))
	}

	return resp
}

func (h *Handler) toTrainingRecordResponse(r entity.TrainingRecord) TrainingRecordResponse {
	resp := TrainingRecordResponse{
		ID:             r.ID,
		PersonnelID:    r.PersonnelID,
		CourseID:       r.CourseID,
		CourseName:     r.CourseName,
		CompletionDate: r.CompletionDate.Format(time.DateOnly),
		Badge:          r.Badge(h.now()),
		RecorderID:     r.RecorderID,
	}

	if r.ExpiryDate != nil {
		expiry := r.ExpiryDate.Format(time.DateOnly)
		resp.ExpiryDate = &expiry
	}

	return resp
}

func toTrainingRequestResponse(r entity.TrainingRequest) TrainingRequestResponse {
	return TrainingRequestResponse{
		ID:          r.ID,
		PersonnelID: r.PersonnelID,
		CourseID:    r.CourseID,
		CourseName:  r.CourseName,
		Status:      r.Status,
		CreatedAt:   r.CreatedAt,
	}
}

func toCourseResponse(c entity.Course) CourseResponse {
	return CourseResponse{
		ID:             c.ID,
		Name:           c.Name,
		ValidityMonths: c.ValidityMonths,
	}
}
