package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/certification/internal/entity"
	"github.com/samandr77/microservices/certification/pkg/metrics"
)

// RegisterPersonnel creates a contractor personnel record awaiting first review.
// The photo is uploaded before the insert; an upload failure leaves nothing behind.
func (s *Service) RegisterPersonnel(
	ctx context.Context,
	details entity.PersonnelDetails,
	photo *entity.Photo,
) (entity.Personnel, error) {
	details = details.Trimmed()

	err := details.Validate()
	if err != nil {
		return entity.Personnel{}, err
	}

	company, err := s.companyScope(ctx)
	if err != nil {
		return entity.Personnel{}, err
	}

	photoURL, err := s.uploadPhoto(ctx, company.ID, photo, "")
	if err != nil {
		return entity.Personnel{}, err
	}

	p := entity.Personnel{
		ID:                   uuid.Must(uuid.NewV4()),
		CompanyID:            company.ID,
		CompanyName:          company.Name,
		FirstName:            details.FirstName,
		LastName:             details.LastName,
		NationalIDOrPassport: details.NationalIDOrPassport,
		Position:             details.Position,
		PhotoURL:             photoURL,
		Status:               entity.PersonnelPendingAdmin,
		CreatedAt:            s.now(),
	}

	err = s.repo.CreatePersonnel(ctx, p)
	if err != nil {
		return entity.Personnel{}, fmt.Errorf("create personnel: %w", err)
	}

	transitioned(metrics.EntityPersonnel, p.Status)
	s.publish(ctx, entity.Event{
		Type:        entity.EventPersonnelRegistered,
		PersonnelID: p.ID,
		CompanyID:   p.CompanyID,
		Status:      p.Status.String(),
	})

	slog.InfoContext(ctx, "personnel registered", "personnel", p.ID, "company", p.CompanyID)

	return p, nil
}

// UpdatePersonnel edits identity details of a company's own personnel; status and remark are untouched.
func (s *Service) UpdatePersonnel(
	ctx context.Context,
	id uuid.UUID,
	details entity.PersonnelDetails,
	photo *entity.Photo,
) (entity.Personnel, error) {
	details = details.Trimmed()

	err := details.Validate()
	if err != nil {
		return entity.Personnel{}, err
	}

	p, err := s.ownPersonnel(ctx, id)
	if err != nil {
		return entity.Personnel{}, err
	}

	photoURL, err := s.uploadPhoto(ctx, p.CompanyID, photo, "_edit")
	if err != nil {
		return entity.Personnel{}, err
	}

	err = s.repo.UpdatePersonnelDetails(ctx, id, details, photoURL)
	if err != nil {
		return entity.Personnel{}, fmt.Errorf("update personnel details: %w", err)
	}

	p.FirstName = details.FirstName
	p.LastName = details.LastName
	p.NationalIDOrPassport = details.NationalIDOrPassport
	p.Position = details.Position

	if photoURL != nil {
		p.PhotoURL = photoURL
	}

	return p, nil
}

// DeletePersonnel removes a company's personnel; requests and records go with it.
func (s *Service) DeletePersonnel(ctx context.Context, id uuid.UUID) error {
	p, err := s.ownPersonnel(ctx, id)
	if err != nil {
		return err
	}

	affected, err := s.repo.DeletePersonnel(ctx, id)
	if err != nil {
		return fmt.Errorf("delete personnel: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: personnel %s", entity.ErrNotFound, id)
	}

	s.publish(ctx, entity.Event{
		Type:        entity.EventPersonnelDeleted,
		PersonnelID: p.ID,
		CompanyID:   p.CompanyID,
	})

	slog.InfoContext(ctx, "personnel deleted", "personnel", id)

	return nil
}

// ListCompanyPersonnel returns the contractor's personnel with their records and requests, oldest first.
func (s *Service) ListCompanyPersonnel(ctx context.Context) ([]entity.Personnel, error) {
	company, err := s.companyScope(ctx)
	if err != nil {
		return nil, err
	}

	personnel, err := s.repo.FindPersonnel(ctx, entity.PersonnelFilter{CompanyID: company.ID})
	if err != nil {
		return nil, fmt.Errorf("find personnel: %w", err)
	}

	return personnel, nil
}

// ownPersonnel loads a personnel record of the signed-in contractor's company.
// Records of other companies are reported as missing.
func (s *Service) ownPersonnel(ctx context.Context, id uuid.UUID) (entity.Personnel, error) {
	company, err := s.companyScope(ctx)
	if err != nil {
		return entity.Personnel{}, err
	}

	p, err := s.repo.PersonnelByID(ctx, id)
	if err != nil {
		return entity.Personnel{}, fmt.Errorf("personnel by id: %w", err)
	}

	if p.CompanyID != company.ID {
		return entity.Personnel{}, fmt.Errorf("%w: personnel %s", entity.ErrNotFound, id)
	}

	return p, nil
}

func (s *Service) uploadPhoto(ctx context.Context, companyID uuid.UUID, photo *entity.Photo, suffix string) (*string, error) {
	if photo == nil {
		return nil, nil //nolint:nilnil
	}

	contentType, ext, err := validatePhoto(*photo)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%s/%d%s.%s", companyID, s.now().UnixMilli(), suffix, ext)

	url, err := s.storage.Upload(ctx, key, contentType, photo.Data)
	if err != nil {
		return nil, fmt.Errorf("%w: upload photo: %w", entity.ErrUpstream, err)
	}

	return &url, nil
}
