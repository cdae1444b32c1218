package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/segmentio/kafka-go"

	"github.com/samandr77/microservices/certification/internal/entity"
)

type Service interface {
	CompleteTraining(
		ctx context.Context,
		requestID uuid.UUID,
		completionDate time.Time,
		recorderID uuid.UUID,
	) (entity.TrainingRecord, error)
}

type EventHandler struct {
	s Service
}

func NewEventHandler(s Service) *EventHandler {
	return &EventHandler{s: s}
}

// OnTrainingCompletedEvent is sent by the external training provider when a requested course is passed.
type OnTrainingCompletedEvent struct {
	RequestID      uuid.UUID `json:"requestId"`
	CompletionDate string    `json:"completionDate"`
	RecordedBy     uuid.UUID `json:"recordedBy"`
}

// OnTrainingCompleted approves the reported request. A recorder that is not a known safety officer is
// refused by the service; the error is returned to the consumer, which logs it and moves on.
func (h *EventHandler) OnTrainingCompleted(ctx context.Context, msg kafka.Message) error {
	var event OnTrainingCompletedEvent

	err := json.Unmarshal(msg.Value, &event)
	if err != nil {
		return fmt.Errorf("unmarshal event: %w", err)
	}

	if event.RequestID.IsNil() || event.RecordedBy.IsNil() {
		return fmt.Errorf("%w: request id and recorder are required", entity.ErrValidation)
	}

	completion, err := time.Parse(time.DateOnly, event.CompletionDate)
	if err != nil {
		return fmt.Errorf("parse completion date: %w", err)
	}

	_, err = h.s.CompleteTraining(ctx, event.RequestID, completion, event.RecordedBy)
	if err != nil {
		// Redelivered or already resolved by a reviewer.
		if errors.Is(err, entity.ErrConflict) || errors.Is(err, entity.ErrInvalidState) {
			slog.InfoContext(ctx, "training request already resolved", "request", event.RequestID, "reason", err)
			return nil
		}

		return fmt.Errorf("complete training: %w", err)
	}

	return nil
}
