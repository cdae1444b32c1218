package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/certification/internal/entity"
)

func TestService_CreateCourse(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		title    string
		validity int
		wantErr  error
	}{
		{name: "expiring course", title: " Working at Height ", validity: 12},
		{name: "non expiring course", title: "Site Induction", validity: 0},
		{name: "blank name", title: "  ", validity: 12, wantErr: entity.ErrValidation},
		{name: "negative validity", title: "Hot Work", validity: -3, wantErr: entity.ErrValidation},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)
			ts := NewTestService(t)

			if tt.wantErr == nil {
				ts.repo.EXPECT().CreateCourse(gomock.Any(), gomock.Any()).Return(nil)
			}

			got, err := ts.s.CreateCourse(context.Background(), tt.title, tt.validity)
			if tt.wantErr != nil {
				r.ErrorIs(err, tt.wantErr)
				return
			}

			r.NoError(err)
			r.Equal(tt.validity, got.ValidityMonths)
			r.Equal(strings.TrimSpace(tt.title), got.Name)
		})
	}
}

func TestService_AssignRole(t *testing.T) {
	t.Parallel()

	userID := newID()
	role := entity.Role{ID: newID(), Name: entity.RoleSafety}

	tests := []struct {
		name         string
		role         string
		mockBehavior func(ts *TestService)
		wantErr      error
	}{
		{
			name: "assigned",
			role: entity.RoleSafety,
			mockBehavior: func(ts *TestService) {
				ts.repo.EXPECT().RoleByName(gomock.Any(), entity.RoleSafety).Return(role, nil)
				ts.repo.EXPECT().AssignRole(gomock.Any(), userID, role.ID).Return(int64(1), nil)
			},
		},
		{
			name:         "unknown role",
			role:         "superuser",
			mockBehavior: func(*TestService) {},
			wantErr:      entity.ErrValidation,
		},
		{
			name: "unknown user",
			role: entity.RoleSafety,
			mockBehavior: func(ts *TestService) {
				ts.repo.EXPECT().RoleByName(gomock.Any(), entity.RoleSafety).Return(role, nil)
				ts.repo.EXPECT().AssignRole(gomock.Any(), userID, role.ID).Return(int64(0), nil)
			},
			wantErr: entity.ErrNotFound,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			ts := NewTestService(t)

			tt.mockBehavior(ts)

			err := ts.s.AssignRole(context.Background(), userID, tt.role)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
		})
	}
}

func signToken(t *testing.T, method jwt.SigningMethod, key any, claims jwt.MapClaims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)

	return token
}

func TestService_Authenticate(t *testing.T) { //nolint:funlen
	t.Parallel()

	authID := newID()
	existing := entity.User{ID: newID(), AuthID: authID, Role: &entity.Role{Name: entity.RoleAdmin}}

	validClaims := jwt.MapClaims{
		"sub":   authID.String(),
		"email": "officer@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}

	tests := []struct {
		name         string
		token        func(t *testing.T) string
		mockBehavior func(ts *TestService)
		wantErr      error
		wantRole     bool
	}{
		{
			name: "known user",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), validClaims)
			},
			mockBehavior: func(ts *TestService) {
				ts.repo.EXPECT().UserByAuthID(gomock.Any(), authID).Return(existing, nil)
			},
			wantRole: true,
		},
		{
			name: "first sign-in creates user without role",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), validClaims)
			},
			mockBehavior: func(ts *TestService) {
				ts.repo.EXPECT().UserByAuthID(gomock.Any(), authID).Return(entity.User{}, entity.ErrNotFound)
				ts.repo.EXPECT().CreateUser(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, u entity.User) error {
						require.Equal(t, authID, u.AuthID)
						require.Equal(t, "officer@example.com", u.Email)
						require.Nil(t, u.Role)
						return nil
					})
			},
		},
		{
			name: "wrong secret",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims)
			},
			mockBehavior: func(*TestService) {},
			wantErr:      entity.ErrUnauthorized,
		},
		{
			name: "expired",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), jwt.MapClaims{
					"sub": authID.String(),
					"exp": time.Now().Add(-time.Minute).Unix(),
				})
			},
			mockBehavior: func(*TestService) {},
			wantErr:      entity.ErrUnauthorized,
		},
		{
			name: "subject is not a uuid",
			token: func(t *testing.T) string {
				return signToken(t, jwt.SigningMethodHS256, []byte(testJWTSecret), jwt.MapClaims{"sub": "anonymous"})
			},
			mockBehavior: func(*TestService) {},
			wantErr:      entity.ErrUnauthorized,
		},
		{
			name:         "garbage",
			token:        func(*testing.T) string { return "not.a.token" },
			mockBehavior: func(*TestService) {},
			wantErr:      entity.ErrUnauthorized,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)
			ts := NewTestService(t)

			tt.mockBehavior(ts)

			user, err := ts.s.Authenticate(context.Background(), tt.token(t))
			if tt.wantErr != nil {
				r.ErrorIs(err, tt.wantErr)
				return
			}

			r.NoError(err)
			r.Equal(authID, user.AuthID)
			r.Equal(tt.wantRole, user.Role != nil)
		})
	}
}
