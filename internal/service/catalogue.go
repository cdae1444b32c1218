package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/certification/internal/entity"
)

func (s *Service) ListCourses(ctx context.Context) ([]entity.Course, error) {
	courses, err := s.repo.Courses(ctx)
	if err != nil {
		return nil, fmt.Errorf("courses: %w", err)
	}

	return courses, nil
}

func (s *Service) CreateCourse(ctx context.Context, name string, validityMonths int) (entity.Course, error) {
	course := entity.Course{
		ID:             uuid.Must(uuid.NewV4()),
		Name:           strings.TrimSpace(name),
		ValidityMonths: validityMonths,
		CreatedAt:      s.now(),
	}

	err := course.Validate()
	if err != nil {
		return entity.Course{}, err
	}

	err = s.repo.CreateCourse(ctx, course)
	if err != nil {
		return entity.Course{}, fmt.Errorf("create course: %w", err)
	}

	slog.InfoContext(ctx, "course created", "course", course.ID, "validity_months", course.ValidityMonths)

	return course, nil
}

// ListPendingUsers returns signed-up users still waiting for an administrator to assign a role.
func (s *Service) ListPendingUsers(ctx context.Context) ([]entity.User, error) {
	users, err := s.repo.UsersWithoutRole(ctx)
	if err != nil {
		return nil, fmt.Errorf("users without role: %w", err)
	}

	return users, nil
}

func (s *Service) AssignRole(ctx context.Context, userID uuid.UUID, roleName string) error {
	if !entity.IsKnownRole(roleName) {
		return fmt.Errorf("%w: unknown role %q", entity.ErrValidation, roleName)
	}

	role, err := s.repo.RoleByName(ctx, roleName)
	if err != nil {
		return fmt.Errorf("role by name: %w", err)
	}

	affected, err := s.repo.AssignRole(ctx, userID, role.ID)
	if err != nil {
		return fmt.Errorf("assign role: %w", err)
	}

	if affected == 0 {
		return fmt.Errorf("%w: user %s", entity.ErrNotFound, userID)
	}

	slog.InfoContext(ctx, "role assigned", "user", userID, "role", roleName)

	return nil
}
