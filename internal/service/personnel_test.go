package service_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/certification/internal/entity"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func validDetails() entity.PersonnelDetails {
	return entity.PersonnelDetails{
		FirstName:            "Somchai",
		LastName:             "Jaidee",
		NationalIDOrPassport: "1100501234567",
		Position:             "Scaffolder",
	}
}

func TestService_RegisterPersonnel(t *testing.T) { //nolint:funlen
	t.Parallel()

	ctx, user := userCtx(entity.RoleSupplier)
	company := entity.Company{ID: newID(), UserID: user.ID, Name: "Siam Scaffolding"}

	tests := []struct {
		name         string
		details      entity.PersonnelDetails
		photo        *entity.Photo
		mockBehavior func(ts *TestService)
		wantErr      error
		wantPhotoURL *string
	}{
		{
			name:    "without photo",
			details: validDetails(),
			mockBehavior: func(ts *TestService) {
				ts.repo.EXPECT().CompanyByUserID(gomock.Any(), user.ID).Return(company, nil)
				ts.repo.EXPECT().CreatePersonnel(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "with photo",
			details: validDetails(),
			photo:   &entity.Photo{Name: "face.PNG", Data: pngHeader},
			mockBehavior: func(ts *TestService) {
				ts.repo.EXPECT().CompanyByUserID(gomock.Any(), user.ID).Return(company, nil)
				ts.storage.EXPECT().
					Upload(gomock.Any(), company.ID.String()+"/1710496800000.png", "image/png", pngHeader).
					Return("https://cdn/photo.png", nil)
				ts.repo.EXPECT().CreatePersonnel(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, p entity.Personnel) error {
						require.Equal(t, "https://cdn/photo.png", *p.PhotoURL)
						return nil
					})
			},
			wantPhotoURL: ptr("https://cdn/photo.png"),
		},
		{
			name:    "photo too large",
			details: validDetails(),
			photo:   &entity.Photo{Name: "face.png", Data: append(bytes.Clone(pngHeader), make([]byte, entity.MaxPhotoSize)...)},
			mockBehavior: func(ts *TestService) {
				ts.repo.EXPECT().CompanyByUserID(gomock.Any(), user.ID).Return(company, nil)
			},
			wantErr: entity.ErrPhotoTooLarge,
		},
		{
			name:    "photo is not an image",
			details: validDetails(),
			photo:   &entity.Photo{Name: "face.png", Data: []byte("%PDF-1.7 not an image")},
			mockBehavior: func(ts *TestService) {
				ts.repo.EXPECT().CompanyByUserID(gomock.Any(), user.ID).Return(company, nil)
			},
			wantErr: entity.ErrPhotoNotImage,
		},
		{
			name:    "upload failure leaves no record",
			details: validDetails(),
			photo:   &entity.Photo{Name: "face.png", Data: pngHeader},
			mockBehavior: func(ts *TestService) {
				ts.repo.EXPECT().CompanyByUserID(gomock.Any(), user.ID).Return(company, nil)
				ts.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("connection reset"))
			},
			wantErr: entity.ErrUpstream,
		},
		{
			name:         "missing position",
			details:      entity.PersonnelDetails{FirstName: "A", LastName: "B", NationalIDOrPassport: "C"},
			mockBehavior: func(*TestService) {},
			wantErr:      entity.ErrValidation,
		},
		{
			name:    "user without company",
			details: validDetails(),
			mockBehavior: func(ts *TestService) {
				ts.repo.EXPECT().CompanyByUserID(gomock.Any(), user.ID).Return(entity.Company{}, entity.ErrNotFound)
			},
			wantErr: entity.ErrForbidden,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)
			ts := NewTestService(t)

			tt.mockBehavior(ts)

			got, err := ts.s.RegisterPersonnel(ctx, tt.details, tt.photo)
			if tt.wantErr != nil {
				r.ErrorIs(err, tt.wantErr)
				r.Empty(ts.eventTypes())
				return
			}

			r.NoError(err)
			r.False(got.ID.IsNil())
			r.Equal(company.ID, got.CompanyID)
			r.Equal(entity.PersonnelPendingAdmin, got.Status)
			r.Nil(got.Remark)
			r.Equal(tt.wantPhotoURL, got.PhotoURL)
			r.Equal(testNow, got.CreatedAt)
			r.Equal([]entity.EventType{entity.EventPersonnelRegistered}, ts.eventTypes())
		})
	}
}

func TestService_UpdatePersonnel(t *testing.T) {
	t.Parallel()

	ctx, user := userCtx(entity.RoleSupplier)
	company := entity.Company{ID: newID(), UserID: user.ID}

	t.Run("edits details and keeps status", func(t *testing.T) {
		t.Parallel()
		r := require.New(t)
		ts := NewTestService(t)

		existing := entity.Personnel{
			ID:        newID(),
			CompanyID: company.ID,
			FirstName: "Old",
			Status:    entity.PersonnelRejected,
			Remark:    ptr("missing ID"),
		}

		details := validDetails()
		details.FirstName = "  Somsak "

		ts.repo.EXPECT().CompanyByUserID(gomock.Any(), user.ID).Return(company, nil)
		ts.repo.EXPECT().PersonnelByID(gomock.Any(), existing.ID).Return(existing, nil)
		ts.storage.EXPECT().
			Upload(gomock.Any(), company.ID.String()+"/1710496800000_edit.png", "image/png", pngHeader).
			Return("https://cdn/edit.png", nil)

		stored := validDetails()
		stored.FirstName = "Somsak"

		ts.repo.EXPECT().UpdatePersonnelDetails(gomock.Any(), existing.ID, stored, ptr("https://cdn/edit.png")).Return(nil)

		got, err := ts.s.UpdatePersonnel(ctx, existing.ID, details, &entity.Photo{Data: pngHeader})
		r.NoError(err)
		r.Equal("Somsak", got.FirstName)
		r.Equal(entity.PersonnelRejected, got.Status)
		r.Equal(ptr("missing ID"), got.Remark)
		r.Equal(ptr("https://cdn/edit.png"), got.PhotoURL)
	})

	t.Run("personnel of another company", func(t *testing.T) {
		t.Parallel()
		ts := NewTestService(t)

		id := newID()

		ts.repo.EXPECT().CompanyByUserID(gomock.Any(), user.ID).Return(company, nil)
		ts.repo.EXPECT().PersonnelByID(gomock.Any(), id).Return(entity.Personnel{ID: id, CompanyID: newID()}, nil)

		_, err := ts.s.UpdatePersonnel(ctx, id, validDetails(), nil)
		require.ErrorIs(t, err, entity.ErrNotFound)
	})
}

func TestService_DeletePersonnel(t *testing.T) {
	t.Parallel()

	ctx, user := userCtx(entity.RoleSupplier)
	company := entity.Company{ID: newID(), UserID: user.ID}

	tests := []struct {
		name     string
		affected int64
		wantErr  error
		events   []entity.EventType
	}{
		{name: "deleted", affected: 1, events: []entity.EventType{entity.EventPersonnelDeleted}},
		{name: "already gone", affected: 0, wantErr: entity.ErrNotFound, events: []entity.EventType{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			r := require.New(t)
			ts := NewTestService(t)

			p := entity.Personnel{ID: newID(), CompanyID: company.ID}

			ts.repo.EXPECT().CompanyByUserID(gomock.Any(), user.ID).Return(company, nil)
			ts.repo.EXPECT().PersonnelByID(gomock.Any(), p.ID).Return(p, nil)
			ts.repo.EXPECT().DeletePersonnel(gomock.Any(), p.ID).Return(tt.affected, nil)

			err := ts.s.DeletePersonnel(ctx, p.ID)
			if tt.wantErr != nil {
				r.ErrorIs(err, tt.wantErr)
			} else {
				r.NoError(err)
			}

			r.Equal(tt.events, ts.eventTypes())
		})
	}
}

func TestService_ListCompanyPersonnel(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx, user := userCtx(entity.RoleSupplier)
	company := entity.Company{ID: newID(), UserID: user.ID}
	want := []entity.Personnel{{ID: newID(), CompanyID: company.ID}}

	ts.repo.EXPECT().CompanyByUserID(gomock.Any(), user.ID).Return(company, nil)
	ts.repo.EXPECT().FindPersonnel(gomock.Any(), entity.PersonnelFilter{CompanyID: company.ID}).Return(want, nil)

	got, err := ts.s.ListCompanyPersonnel(ctx)
	r.NoError(err)
	r.Equal(want, got)
}

func TestService_RegisterPersonnelWithoutUser(t *testing.T) {
	t.Parallel()
	ts := NewTestService(t)

	_, err := ts.s.RegisterPersonnel(context.Background(), validDetails(), nil)
	require.ErrorIs(t, err, entity.ErrUnauthorized)
}

func TestService_RegisterPersonnelTrimsDetails(t *testing.T) {
	t.Parallel()
	r := require.New(t)
	ts := NewTestService(t)

	ctx, user := userCtx(entity.RoleSupplier)
	company := entity.Company{ID: newID(), UserID: user.ID}

	details := validDetails()
	details.Position = " " + details.Position + "\t"

	ts.repo.EXPECT().CompanyByUserID(gomock.Any(), user.ID).Return(company, nil)
	ts.repo.EXPECT().CreatePersonnel(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p entity.Personnel) error {
			r.Equal(strings.TrimSpace(details.Position), p.Position)
			r.NotEqual(uuid.Nil, p.ID)
			return nil
		})

	_, err := ts.s.RegisterPersonnel(ctx, details, nil)
	r.NoError(err)
}
