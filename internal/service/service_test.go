package service_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/certification/internal/entity"
	"github.com/samandr77/microservices/certification/internal/mocks"
	"github.com/samandr77/microservices/certification/internal/service"
)

const testJWTSecret = "test-secret"

var testNow = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

type TestService struct {
	repo     *mocks.MockRepository
	storage  *mocks.MockStorage
	producer *mocks.MockProducer
	s        *service.Service

	mu     sync.Mutex
	events []entity.Event
}

func NewTestService(t *testing.T) *TestService {
	t.Helper()

	ctrl := gomock.NewController(t)

	ts := &TestService{
		repo:     mocks.NewMockRepository(ctrl),
		storage:  mocks.NewMockStorage(ctrl),
		producer: mocks.NewMockProducer(ctrl),
	}

	ts.repo.EXPECT().InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	ts.producer.EXPECT().Publish(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, e entity.Event) {
			ts.mu.Lock()
			defer ts.mu.Unlock()
			ts.events = append(ts.events, e)
		}).AnyTimes()

	ts.s = service.New(ts.repo, ts.storage, ts.producer, testJWTSecret, 30*24*time.Hour,
		service.WithClock(func() time.Time { return testNow }))

	return ts
}

func (ts *TestService) eventTypes() []entity.EventType {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	types := make([]entity.EventType, 0, len(ts.events))
	for _, e := range ts.events {
		types = append(types, e.Type)
	}

	return types
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

func userCtx(role string) (context.Context, entity.User) {
	user := entity.User{ID: newID(), AuthID: newID(), Role: &entity.Role{ID: newID(), Name: role}}
	return entity.SetUserToContext(context.Background(), user), user
}

func ptr[T any](v T) *T {
	return &v
}
