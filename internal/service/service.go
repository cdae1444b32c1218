package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"

	"github.com/samandr77/microservices/certification/internal/entity"
	"github.com/samandr77/microservices/certification/pkg/metrics"
)

//go:generate go run go.uber.org/mock/mockgen@latest -source=service.go -destination=../mocks/service.go -package=mocks

type Repository interface {
	InTx(ctx context.Context, fn func(ctx context.Context) error) error

	FindPersonnel(ctx context.Context, filter entity.PersonnelFilter) ([]entity.Personnel, error)
	PersonnelByID(ctx context.Context, id uuid.UUID) (entity.Personnel, error)
	CreatePersonnel(ctx context.Context, p entity.Personnel) error
	UpdatePersonnelDetails(ctx context.Context, id uuid.UUID, details entity.PersonnelDetails, photoURL *string) error
	UpdatePersonnelStatus(
		ctx context.Context, id uuid.UUID, from []entity.PersonnelStatus, to entity.PersonnelStatus, remark *string,
	) (int64, error)
	DeletePersonnel(ctx context.Context, id uuid.UUID) (int64, error)

	CreateTrainingRequest(ctx context.Context, r entity.TrainingRequest) error
	TrainingRequestByID(ctx context.Context, id uuid.UUID) (entity.TrainingRequest, error)
	UpdateTrainingRequestStatus(ctx context.Context, id uuid.UUID, expected, to entity.RequestStatus) (int64, error)
	RejectPendingTrainingRequests(ctx context.Context, personnelID uuid.UUID) (int64, error)

	CreateTrainingRecord(ctx context.Context, r entity.TrainingRecord) error
	TrainingRecordsExpiringBetween(ctx context.Context, from, to time.Time) ([]entity.TrainingRecord, error)

	Courses(ctx context.Context) ([]entity.Course, error)
	CourseByID(ctx context.Context, id uuid.UUID) (entity.Course, error)
	CreateCourse(ctx context.Context, c entity.Course) error

	CompanyByUserID(ctx context.Context, userID uuid.UUID) (entity.Company, error)
	UserByAuthID(ctx context.Context, authID uuid.UUID) (entity.User, error)
	UserByID(ctx context.Context, id uuid.UUID) (entity.User, error)
	CreateUser(ctx context.Context, u entity.User) error
	UsersWithoutRole(ctx context.Context) ([]entity.User, error)
	RoleByName(ctx context.Context, name string) (entity.Role, error)
	AssignRole(ctx context.Context, userID, roleID uuid.UUID) (int64, error)
}

type Storage interface {
	Upload(ctx context.Context, key, contentType string, data []byte) (string, error)
}

type Producer interface {
	Publish(ctx context.Context, e entity.Event)
}

type Service struct {
	repo         Repository
	storage      Storage
	producer     Producer
	jwtSecret    []byte
	noticeWindow time.Duration
	now          func() time.Time
}

type Option func(*Service)

// WithClock replaces time.Now, used for record timestamps, photo keys and expiry notices.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func New(
	repo Repository,
	storage Storage,
	producer Producer,
	jwtSecret string,
	noticeWindow time.Duration,
	opts ...Option,
) *Service {
	s := &Service{
		repo:         repo,
		storage:      storage,
		producer:     producer,
		jwtSecret:    []byte(jwtSecret),
		noticeWindow: noticeWindow,
		now:          time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

type accessClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Authenticate validates an identity provider access token and returns the local user,
// creating one without a role on first sign-in.
func (s *Service) Authenticate(ctx context.Context, accessToken string) (entity.User, error) {
	var claims accessClaims

	token, err := jwt.ParseWithClaims(accessToken, &claims, func(token *jwt.Token) (any, error) {
		_, ok := token.Method.(*jwt.SigningMethodHMAC)
		if !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}

		return s.jwtSecret, nil
	})
	if err != nil {
		return entity.User{}, fmt.Errorf("%w: parse access token: %w", entity.ErrUnauthorized, err)
	}

	if !token.Valid {
		return entity.User{}, fmt.Errorf("%w: invalid access token", entity.ErrUnauthorized)
	}

	authID, err := uuid.FromString(claims.Subject)
	if err != nil {
		return entity.User{}, fmt.Errorf("%w: subject is not a uuid: %w", entity.ErrUnauthorized, err)
	}

	user, err := s.repo.UserByAuthID(ctx, authID)
	if err == nil {
		return user, nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return entity.User{}, fmt.Errorf("user by auth id: %w", err)
	}

	user = entity.User{
		ID:     uuid.Must(uuid.NewV4()),
		AuthID: authID,
		Email:  claims.Email,
	}

	err = s.repo.CreateUser(ctx, user)
	if err != nil {
		return entity.User{}, fmt.Errorf("create user: %w", err)
	}

	slog.InfoContext(ctx, "user registered, waiting for role", "user", user.ID)

	return user, nil
}

func (s *Service) currentUser(ctx context.Context) (entity.User, error) {
	user, err := entity.UserFromContext(ctx)
	if err != nil {
		return entity.User{}, fmt.Errorf("%w: get user from context: %w", entity.ErrUnauthorized, err)
	}

	return user, nil
}

// companyScope resolves the company owned by the signed-in contractor.
func (s *Service) companyScope(ctx context.Context) (entity.Company, error) {
	user, err := s.currentUser(ctx)
	if err != nil {
		return entity.Company{}, err
	}

	company, err := s.repo.CompanyByUserID(ctx, user.ID)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Company{}, fmt.Errorf("%w: user %s has no company", entity.ErrForbidden, user.ID)
		}

		return entity.Company{}, fmt.Errorf("company by user id: %w", err)
	}

	return company, nil
}

func (s *Service) publish(ctx context.Context, e entity.Event) {
	e.OccurredAt = s.now().UTC()
	s.producer.Publish(ctx, e)
}

func transitioned(entityName string, status fmt.Stringer) {
	metrics.Transitions.WithLabelValues(entityName, status.String()).Inc()
}

func conflict(entityName string, id uuid.UUID) error {
	metrics.Conflicts.WithLabelValues(entityName).Inc()
	return fmt.Errorf("%w: %s %s was changed concurrently", entity.ErrConflict, entityName, id)
}
