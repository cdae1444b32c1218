package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/certification/internal/entity"
	"github.com/samandr77/microservices/certification/pkg/metrics"
)

// ApprovePersonnel verifies a person with completion evidence for a course.
// With a request id the approval resolves that request instead of the first-time review.
func (s *Service) ApprovePersonnel(ctx context.Context, cmd entity.ApproveCommand) (entity.TrainingRecord, error) {
	err := cmd.Validate()
	if err != nil {
		return entity.TrainingRecord{}, err
	}

	reviewer, err := s.currentUser(ctx)
	if err != nil {
		return entity.TrainingRecord{}, err
	}

	if !cmd.RequestID.IsNil() {
		req, err := s.repo.TrainingRequestByID(ctx, cmd.RequestID)
		if err != nil {
			return entity.TrainingRecord{}, fmt.Errorf("training request by id: %w", err)
		}

		if req.PersonnelID != cmd.PersonnelID {
			return entity.TrainingRecord{}, fmt.Errorf("%w: request %s belongs to another personnel", entity.ErrValidation, req.ID)
		}

		if !cmd.CourseID.IsNil() && cmd.CourseID != req.CourseID {
			return entity.TrainingRecord{}, entity.ErrCourseMismatch
		}

		return s.completeTraining(ctx, req.ID, cmd.CompletionDate, reviewer.ID)
	}

	var (
		record entity.TrainingRecord
		person entity.Personnel
	)

	err = s.repo.InTx(ctx, func(ctx context.Context) error {
		var err error

		person, err = s.repo.PersonnelByID(ctx, cmd.PersonnelID)
		if err != nil {
			return fmt.Errorf("personnel by id: %w", err)
		}

		next, err := person.Status.Next(entity.ActionApprove)
		if err != nil {
			return err
		}

		course, err := s.repo.CourseByID(ctx, cmd.CourseID)
		if err != nil {
			return fmt.Errorf("course by id: %w", err)
		}

		affected, err := s.repo.UpdatePersonnelStatus(ctx, person.ID, entity.ActionApprove.AllowedFrom(), next, nil)
		if err != nil {
			return fmt.Errorf("update personnel status: %w", err)
		}

		if affected == 0 {
			return conflict(metrics.EntityPersonnel, person.ID)
		}

		person.Status = next
		record = s.newRecord(person, course, cmd.CompletionDate, reviewer.ID)

		err = s.repo.CreateTrainingRecord(ctx, record)
		if err != nil {
			return fmt.Errorf("create training record: %w", err)
		}

		return nil
	})
	if err != nil {
		return entity.TrainingRecord{}, err
	}

	s.personnelVerified(ctx, person, record)

	return record, nil
}

// RejectPersonnel rejects a person awaiting first review and every training request still pending for them.
func (s *Service) RejectPersonnel(ctx context.Context, id uuid.UUID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return entity.ErrReasonRequired
	}

	var (
		person   entity.Personnel
		rejected int64
	)

	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		var err error

		person, err = s.repo.PersonnelByID(ctx, id)
		if err != nil {
			return fmt.Errorf("personnel by id: %w", err)
		}

		next, err := person.Status.Next(entity.ActionReject)
		if err != nil {
			return err
		}

		affected, err := s.repo.UpdatePersonnelStatus(ctx, id, entity.ActionReject.AllowedFrom(), next, &reason)
		if err != nil {
			return fmt.Errorf("update personnel status: %w", err)
		}

		if affected == 0 {
			return conflict(metrics.EntityPersonnel, id)
		}

		person.Status = next

		rejected, err = s.repo.RejectPendingTrainingRequests(ctx, id)
		if err != nil {
			return fmt.Errorf("reject pending training requests: %w", err)
		}

		return nil
	})
	if err != nil {
		return err
	}

	transitioned(metrics.EntityPersonnel, person.Status)
	metrics.Transitions.WithLabelValues(metrics.EntityRequest, entity.RequestRejected.String()).Add(float64(rejected))

	s.publish(ctx, entity.Event{
		Type:        entity.EventPersonnelRejected,
		PersonnelID: person.ID,
		CompanyID:   person.CompanyID,
		Status:      person.Status.String(),
	})

	slog.InfoContext(ctx, "personnel rejected", "personnel", id, "requests_rejected", rejected)

	return nil
}

// RecordTraining adds completion evidence for an already verified person without a request.
func (s *Service) RecordTraining(
	ctx context.Context,
	personnelID, courseID uuid.UUID,
	completionDate time.Time,
) (entity.TrainingRecord, error) {
	err := validateID(courseID, "course id")
	if err != nil {
		return entity.TrainingRecord{}, err
	}

	if completionDate.IsZero() {
		return entity.TrainingRecord{}, fmt.Errorf("%w: completion date is required", entity.ErrValidation)
	}

	reviewer, err := s.currentUser(ctx)
	if err != nil {
		return entity.TrainingRecord{}, err
	}

	var record entity.TrainingRecord

	err = s.repo.InTx(ctx, func(ctx context.Context) error {
		person, err := s.repo.PersonnelByID(ctx, personnelID)
		if err != nil {
			return fmt.Errorf("personnel by id: %w", err)
		}

		next, err := person.Status.Next(entity.ActionRecordTraining)
		if err != nil {
			return err
		}

		course, err := s.repo.CourseByID(ctx, courseID)
		if err != nil {
			return fmt.Errorf("course by id: %w", err)
		}

		affected, err := s.repo.UpdatePersonnelStatus(ctx, personnelID, entity.ActionRecordTraining.AllowedFrom(), next, nil)
		if err != nil {
			return fmt.Errorf("update personnel status: %w", err)
		}

		if affected == 0 {
			return conflict(metrics.EntityPersonnel, personnelID)
		}

		record = s.newRecord(person, course, completionDate, reviewer.ID)

		err = s.repo.CreateTrainingRecord(ctx, record)
		if err != nil {
			return fmt.Errorf("create training record: %w", err)
		}

		return nil
	})
	if err != nil {
		return entity.TrainingRecord{}, err
	}

	slog.InfoContext(ctx, "training recorded", "personnel", personnelID, "course", courseID)

	return record, nil
}

// SubmitTrainingRequest asks the reviewers to certify a company's personnel for a course.
func (s *Service) SubmitTrainingRequest(ctx context.Context, personnelID, courseID uuid.UUID) (entity.TrainingRequest, error) {
	err := validateID(courseID, "course id")
	if err != nil {
		return entity.TrainingRequest{}, err
	}

	person, err := s.ownPersonnel(ctx, personnelID)
	if err != nil {
		return entity.TrainingRequest{}, err
	}

	course, err := s.repo.CourseByID(ctx, courseID)
	if err != nil {
		return entity.TrainingRequest{}, fmt.Errorf("course by id: %w", err)
	}

	req := entity.TrainingRequest{
		ID:                   uuid.Must(uuid.NewV4()),
		PersonnelID:          person.ID,
		CourseID:             course.ID,
		CompanyID:            person.CompanyID,
		CourseName:           course.Name,
		CourseValidityMonths: course.ValidityMonths,
		Status:               entity.RequestPending,
		CreatedAt:            s.now(),
	}

	err = s.repo.CreateTrainingRequest(ctx, req)
	if err != nil {
		return entity.TrainingRequest{}, fmt.Errorf("create training request: %w", err)
	}

	transitioned(metrics.EntityRequest, req.Status)
	s.publish(ctx, entity.Event{
		Type:        entity.EventRequestSubmitted,
		PersonnelID: req.PersonnelID,
		CompanyID:   req.CompanyID,
		RequestID:   &req.ID,
		CourseID:    &req.CourseID,
		Status:      req.Status.String(),
	})

	return req, nil
}

// ApproveTrainingRequest resolves a pending request on behalf of the signed-in reviewer.
func (s *Service) ApproveTrainingRequest(
	ctx context.Context,
	id uuid.UUID,
	completionDate time.Time,
) (entity.TrainingRecord, error) {
	reviewer, err := s.currentUser(ctx)
	if err != nil {
		return entity.TrainingRecord{}, err
	}

	return s.completeTraining(ctx, id, completionDate, reviewer.ID)
}

// CompleteTraining approves a pending request on behalf of a recorder that is not the signed-in user,
// such as a training provider reporting a passed course. The recorder must be a safety officer.
func (s *Service) CompleteTraining(
	ctx context.Context,
	requestID uuid.UUID,
	completionDate time.Time,
	recorderID uuid.UUID,
) (entity.TrainingRecord, error) {
	recorder, err := s.repo.UserByID(ctx, recorderID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.TrainingRecord{}, fmt.Errorf("%w: unknown recorder %s", entity.ErrValidation, recorderID)
		}

		return entity.TrainingRecord{}, fmt.Errorf("user by id: %w", err)
	}

	if !recorder.HasRole(entity.RoleSafety) {
		return entity.TrainingRecord{}, fmt.Errorf("%w: recorder %s is not a safety officer", entity.ErrForbidden, recorderID)
	}

	return s.completeTraining(ctx, requestID, completionDate, recorder.ID)
}

// completeTraining approves a pending request, stores the completion record and activates the person,
// all in one transaction. The personnel row is locked before the request row, in the same order as
// RejectPersonnel, so the two never wait on each other.
func (s *Service) completeTraining(
	ctx context.Context,
	requestID uuid.UUID,
	completionDate time.Time,
	recorderID uuid.UUID,
) (entity.TrainingRecord, error) {
	if completionDate.IsZero() {
		return entity.TrainingRecord{}, fmt.Errorf("%w: completion date is required", entity.ErrValidation)
	}

	var (
		record entity.TrainingRecord
		person entity.Personnel
		req    entity.TrainingRequest
	)

	err := s.repo.InTx(ctx, func(ctx context.Context) error {
		var err error

		req, err = s.repo.TrainingRequestByID(ctx, requestID)
		if err != nil {
			return fmt.Errorf("training request by id: %w", err)
		}

		next, err := req.Status.Next(entity.RequestActionApprove)
		if err != nil {
			return err
		}

		person, err = s.repo.PersonnelByID(ctx, req.PersonnelID)
		if err != nil {
			return fmt.Errorf("personnel by id: %w", err)
		}

		personNext, err := person.Status.Next(entity.ActionResolveRequest)
		if err != nil {
			return err
		}

		course, err := s.repo.CourseByID(ctx, req.CourseID)
		if err != nil {
			return fmt.Errorf("course by id: %w", err)
		}

		affected, err := s.repo.UpdatePersonnelStatus(ctx, person.ID, entity.ActionResolveRequest.AllowedFrom(), personNext, nil)
		if err != nil {
			return fmt.Errorf("update personnel status: %w", err)
		}

		if affected == 0 {
			return conflict(metrics.EntityPersonnel, person.ID)
		}

		person.Status = personNext

		affected, err = s.repo.UpdateTrainingRequestStatus(ctx, req.ID, entity.RequestPending, next)
		if err != nil {
			return fmt.Errorf("update training request status: %w", err)
		}

		if affected == 0 {
			return conflict(metrics.EntityRequest, req.ID)
		}

		req.Status = next
		record = s.newRecord(person, course, completionDate, recorderID)

		err = s.repo.CreateTrainingRecord(ctx, record)
		if err != nil {
			return fmt.Errorf("create training record: %w", err)
		}

		return nil
	})
	if err != nil {
		return entity.TrainingRecord{}, err
	}

	transitioned(metrics.EntityRequest, req.Status)
	s.publish(ctx, entity.Event{
		Type:        entity.EventRequestApproved,
		PersonnelID: req.PersonnelID,
		CompanyID:   req.CompanyID,
		RequestID:   &req.ID,
		CourseID:    &req.CourseID,
		Status:      req.Status.String(),
	})

	s.personnelVerified(ctx, person, record)

	return record, nil
}

// RejectTrainingRequest rejects a pending request; the person's status is unchanged.
func (s *Service) RejectTrainingRequest(ctx context.Context, id uuid.UUID) error {
	req, err := s.repo.TrainingRequestByID(ctx, id)
	if err != nil {
		return fmt.Errorf("training request by id: %w", err)
	}

	next, err := req.Status.Next(entity.RequestActionReject)
	if err != nil {
		return err
	}

	affected, err := s.repo.UpdateTrainingRequestStatus(ctx, id, entity.RequestPending, next)
	if err != nil {
		return fmt.Errorf("update training request status: %w", err)
	}

	if affected == 0 {
		return conflict(metrics.EntityRequest, id)
	}

	transitioned(metrics.EntityRequest, next)
	s.publish(ctx, entity.Event{
		Type:        entity.EventRequestRejected,
		PersonnelID: req.PersonnelID,
		CompanyID:   req.CompanyID,
		RequestID:   &req.ID,
		CourseID:    &req.CourseID,
		Status:      next.String(),
	})

	return nil
}

// ReviewQueue returns every person needing reviewer attention.
func (s *Service) ReviewQueue(ctx context.Context) ([]entity.Personnel, error) {
	personnel, err := s.repo.FindPersonnel(ctx, entity.PersonnelFilter{})
	if err != nil {
		return nil, fmt.Errorf("find personnel: %w", err)
	}

	return entity.ReviewQueue(personnel), nil
}

// History searches personnel of every company.
func (s *Service) History(ctx context.Context, filter entity.HistoryFilter) ([]entity.Personnel, error) {
	personnel, err := s.repo.FindPersonnel(ctx, entity.PersonnelFilter{})
	if err != nil {
		return nil, fmt.Errorf("find personnel: %w", err)
	}

	found := make([]entity.Personnel, 0, len(personnel))

	for _, p := range personnel {
		if filter.Match(p) {
			found = append(found, p)
		}
	}

	return found, nil
}

// NotifyExpiringCertificates publishes a notice for every certificate expiring within the notice window.
func (s *Service) NotifyExpiringCertificates(ctx context.Context) error {
	today := entity.Date(s.now())

	records, err := s.repo.TrainingRecordsExpiringBetween(ctx, today, today.Add(s.noticeWindow))
	if err != nil {
		return fmt.Errorf("training records expiring: %w", err)
	}

	for _, r := range records {
		s.publish(ctx, entity.Event{
			Type:        entity.EventCertificateExpiring,
			PersonnelID: r.PersonnelID,
			CompanyID:   r.CompanyID,
			CourseID:    &r.CourseID,
			ExpiryDate:  r.ExpiryDate,
		})
	}

	slog.InfoContext(ctx, "expiry notices sent", "count", len(records))

	return nil
}

func (s *Service) newRecord(
	person entity.Personnel,
	course entity.Course,
	completionDate time.Time,
	recorderID uuid.UUID,
) entity.TrainingRecord {
	return entity.TrainingRecord{
		ID:             uuid.Must(uuid.NewV4()),
		PersonnelID:    person.ID,
		CompanyID:      person.CompanyID,
		CourseID:       course.ID,
		CourseName:     course.Name,
		CompletionDate: entity.Date(completionDate),
		ExpiryDate:     course.ExpiryDate(completionDate),
		RecorderID:     recorderID,
		CreatedAt:      s.now(),
	}
}

func (s *Service) personnelVerified(ctx context.Context, person entity.Personnel, record entity.TrainingRecord) {
	transitioned(metrics.EntityPersonnel, person.Status)
	s.publish(ctx, entity.Event{
		Type:        entity.EventPersonnelVerified,
		PersonnelID: person.ID,
		CompanyID:   person.CompanyID,
		CourseID:    &record.CourseID,
		Status:      person.Status.String(),
		ExpiryDate:  record.ExpiryDate,
	})

	slog.InfoContext(ctx, "personnel verified", "personnel", person.ID, "course", record.CourseID)
}
