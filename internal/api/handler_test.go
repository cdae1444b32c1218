package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/samandr77/microservices/certification/internal/api"
	"github.com/samandr77/microservices/certification/internal/entity"
	"github.com/samandr77/microservices/certification/internal/mocks"
	"github.com/samandr77/microservices/certification/internal/service"
)

const testJWTSecret = "test-secret"

var pngHeader = []byte("\x89PNG\r\n\x1a\n")

type TestAPI struct {
	repo    *mocks.MockRepository
	storage *mocks.MockStorage
	router  http.Handler
}

func NewTestAPI(t *testing.T) *TestAPI {
	t.Helper()

	ctrl := gomock.NewController(t)

	c := &TestAPI{
		repo:    mocks.NewMockRepository(ctrl),
		storage: mocks.NewMockStorage(ctrl),
	}

	producer := mocks.NewMockProducer(ctrl)
	producer.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()

	c.repo.EXPECT().InTx(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	s := service.New(c.repo, c.storage, producer, testJWTSecret, 30*24*time.Hour)

	c.router = api.NewRouter(api.NewHandler(s), api.NewMiddleware(s, nil))

	return c
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV4())
}

// signIn returns a bearer token for a user holding role and expects the user lookup it triggers.
func (c *TestAPI) signIn(t *testing.T, role string) (string, entity.User) {
	t.Helper()

	user := entity.User{ID: newID(), AuthID: newID(), Email: "user@example.com"}
	if role != "" {
		user.Role = &entity.Role{ID: newID(), Name: role}
	}

	c.repo.EXPECT().UserByAuthID(gomock.Any(), user.AuthID).Return(user, nil)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   user.AuthID.String(),
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte(testJWTSecret))
	require.NoError(t, err)

	return token, user
}

func (c *TestAPI) do(t *testing.T, method, target, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())

	return v
}

func TestHandler_Health(t *testing.T) {
	t.Parallel()

	c := NewTestAPI(t)

	rec := c.do(t, http.MethodGet, "/api/health", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestHandler_Auth(t *testing.T) {
	t.Parallel()

	c := NewTestAPI(t)

	rec := c.do(t, http.MethodGet, "/api/me", "", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = c.do(t, http.MethodGet, "/api/me", "not-a-jwt", nil)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	token, user := c.signIn(t, "")

	rec = c.do(t, http.MethodGet, "/api/me", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, user, decode[entity.User](t, rec))
}

func TestHandler_RoleGate(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		role   string
		method string
		target string
	}{
		{entity.RoleSupplier, http.MethodGet, "/api/review/queue"},
		{entity.RoleSupplier, http.MethodPost, "/api/courses"},
		{entity.RoleSafety, http.MethodGet, "/api/personnel"},
		{entity.RoleSafety, http.MethodGet, "/api/users/pending"},
		{"", http.MethodGet, "/api/personnel"},
		{entity.RoleAdmin, http.MethodPost, "/api/training-requests/" + newID().String() + "/approve"},
	} {
		tt := tt
		t.Run(tt.role+" "+tt.target, func(t *testing.T) {
			t.Parallel()

			c := NewTestAPI(t)
			token, _ := c.signIn(t, tt.role)

			rec := c.do(t, tt.method, tt.target, token, nil)
			require.Equal(t, http.StatusForbidden, rec.Code)
		})
	}
}

func TestHandler_ApproveTrainingRequest(t *testing.T) {
	t.Parallel()

	c := NewTestAPI(t)
	token, reviewer := c.signIn(t, entity.RoleSafety)

	course := entity.Course{ID: newID(), Name: "Working at Height", ValidityMonths: 12}
	person := entity.Personnel{ID: newID(), CompanyID: newID(), Status: entity.PersonnelPendingAdmin}
	req := entity.TrainingRequest{
		ID:          newID(),
		PersonnelID: person.ID,
		CourseID:    course.ID,
		CompanyID:   person.CompanyID,
		Status:      entity.RequestPending,
	}

	c.repo.EXPECT().TrainingRequestByID(gomock.Any(), req.ID).Return(req, nil)
	c.repo.EXPECT().PersonnelByID(gomock.Any(), person.ID).Return(person, nil)
	c.repo.EXPECT().CourseByID(gomock.Any(), course.ID).Return(course, nil)
	c.repo.EXPECT().UpdateTrainingRequestStatus(gomock.Any(), req.ID, entity.RequestPending, entity.RequestApproved).
		Return(int64(1), nil)
	c.repo.EXPECT().CreateTrainingRecord(gomock.Any(), gomock.Any()).Return(nil)
	c.repo.EXPECT().UpdatePersonnelStatus(gomock.Any(), person.ID, gomock.Any(), entity.PersonnelVerifiedActive, nil).
		Return(int64(1), nil)

	rec := c.do(t, http.MethodPost, "/api/training-requests/"+req.ID.String()+"/approve", token,
		api.ApproveTrainingRequestRequest{CompletionDate: "2024-03-15"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	got := decode[api.TrainingRecordResponse](t, rec)

	expiry := time.Date(2025, 3, 15, 0, 0, 0, 0, time.UTC)

	require.Equal(t, "2024-03-15", got.CompletionDate)
	require.NotNil(t, got.ExpiryDate)
	require.Equal(t, "2025-03-15", *got.ExpiryDate)
	require.Equal(t, entity.CertificateBadge(&expiry, time.Now()), got.Badge)
	require.Equal(t, reviewer.ID, got.RecorderID)
	require.Equal(t, course.Name, got.CourseName)
}

func TestHandler_ApproveTrainingRequestErrors(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name     string
		affected int64
		status   entity.RequestStatus
		wantCode int
		wantMsg  string
	}{
		{
			name:     "lost race",
			affected: 0,
			status:   entity.RequestPending,
			wantCode: http.StatusConflict,
			wantMsg:  "Запись уже изменена другим пользователем, обновите данные",
		},
		{
			name:     "already resolved",
			status:   entity.RequestRejected,
			wantCode: http.StatusConflict,
			wantMsg:  "Действие недоступно в текущем статусе",
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := NewTestAPI(t)
			token, _ := c.signIn(t, entity.RoleSafety)

			person := entity.Personnel{ID: newID(), Status: entity.PersonnelPendingAdmin}
			req := entity.TrainingRequest{ID: newID(), PersonnelID: person.ID, CourseID: newID(), Status: tt.status}

			c.repo.EXPECT().TrainingRequestByID(gomock.Any(), req.ID).Return(req, nil)

			if tt.status == entity.RequestPending {
				c.repo.EXPECT().PersonnelByID(gomock.Any(), person.ID).Return(person, nil)
				c.repo.EXPECT().CourseByID(gomock.Any(), req.CourseID).Return(entity.Course{ID: req.CourseID}, nil)
				c.repo.EXPECT().UpdatePersonnelStatus(gomock.Any(), person.ID, gomock.Any(), entity.PersonnelVerifiedActive, nil).
					Return(int64(1), nil)
				c.repo.EXPECT().UpdateTrainingRequestStatus(gomock.Any(), req.ID, entity.RequestPending, entity.RequestApproved).
					Return(tt.affected, nil)
			}

			rec := c.do(t, http.MethodPost, "/api/training-requests/"+req.ID.String()+"/approve", token,
				api.ApproveTrainingRequestRequest{CompletionDate: "2024-03-15"})
			require.Equal(t, tt.wantCode, rec.Code)
			require.Equal(t, tt.wantMsg, decode[api.ResponseError](t, rec).Message)
		})
	}
}

func TestHandler_BadInput(t *testing.T) {
	t.Parallel()

	c := NewTestAPI(t)

	token, _ := c.signIn(t, entity.RoleSafety)
	rec := c.do(t, http.MethodPost, "/api/training-requests/"+newID().String()+"/approve", token,
		api.ApproveTrainingRequestRequest{CompletionDate: "15.03.2024"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	token, _ = c.signIn(t, entity.RoleSafety)
	rec = c.do(t, http.MethodPost, "/api/personnel/not-a-uuid/reject", token, api.RejectPersonnelRequest{Reason: "x"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	token, _ = c.signIn(t, entity.RoleSafety)
	rec = c.do(t, http.MethodPost, "/api/personnel/"+newID().String()+"/reject", token, api.RejectPersonnelRequest{Reason: "  "})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_RejectPersonnel(t *testing.T) {
	t.Parallel()

	c := NewTestAPI(t)
	token, _ := c.signIn(t, entity.RoleSafety)

	person := entity.Personnel{ID: newID(), CompanyID: newID(), Status: entity.PersonnelPendingAdmin}
	reason := "missing ID"

	c.repo.EXPECT().PersonnelByID(gomock.Any(), person.ID).Return(person, nil)
	c.repo.EXPECT().UpdatePersonnelStatus(gomock.Any(), person.ID,
		entity.ActionReject.AllowedFrom(), entity.PersonnelRejected, &reason).Return(int64(1), nil)
	c.repo.EXPECT().RejectPendingTrainingRequests(gomock.Any(), person.ID).Return(int64(1), nil)

	rec := c.do(t, http.MethodPost, "/api/personnel/"+person.ID.String()+"/reject", token,
		api.RejectPersonnelRequest{Reason: reason})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())
}

func personnelForm(t *testing.T, photo []byte) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer

	w := multipart.NewWriter(&buf)

	for k, v := range map[string]string{
		"firstName":  "Somchai",
		"lastName":   "Jaidee",
		"nationalId": "1100700123456",
		"position":   "Scaffolder",
	} {
		require.NoError(t, w.WriteField(k, v))
	}

	if photo != nil {
		fw, err := w.CreateFormFile("photo", "face.png")
		require.NoError(t, err)

		_, err = fw.Write(photo)
		require.NoError(t, err)
	}

	require.NoError(t, w.Close())

	return &buf, w.FormDataContentType()
}

func (c *TestAPI) postForm(t *testing.T, token string, photo []byte) *httptest.ResponseRecorder {
	t.Helper()

	body, contentType := personnelForm(t, photo)

	req := httptest.NewRequest(http.MethodPost, "/api/personnel", body)
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Authorization", "Bearer "+token)

	rec := httptest.NewRecorder()
	c.router.ServeHTTP(rec, req)

	return rec
}

func TestHandler_CreatePersonnel(t *testing.T) {
	t.Parallel()

	c := NewTestAPI(t)
	token, user := c.signIn(t, entity.RoleSupplier)

	company := entity.Company{ID: newID(), UserID: user.ID, Name: "Siam Scaffolding"}
	photo := append(append([]byte{}, pngHeader...), make([]byte, 1024)...)
	url := "https://storage.example.com/object/public/personnel-photos/face.png"

	c.repo.EXPECT().CompanyByUserID(gomock.Any(), user.ID).Return(company, nil)
	c.storage.EXPECT().Upload(gomock.Any(), gomock.Any(), "image/png", photo).
		DoAndReturn(func(_ context.Context, key, _ string, _ []byte) (string, error) {
			require.True(t, strings.HasPrefix(key, company.ID.String()+"/"))
			require.True(t, strings.HasSuffix(key, ".png"))

			return url, nil
		})
	c.repo.EXPECT().CreatePersonnel(gomock.Any(), gomock.Any()).Return(nil)

	rec := c.postForm(t, token, photo)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	got := decode[api.PersonnelResponse](t, rec)
	require.Equal(t, entity.PersonnelPendingAdmin, got.Status)
	require.Equal(t, "Somchai", got.FirstName)
	require.Equal(t, company.Name, got.CompanyName)
	require.Equal(t, &url, got.PhotoURL)
	require.Nil(t, got.Remark)
	require.Empty(t, got.Records)
}

func TestHandler_CreatePersonnelPhotoTooLarge(t *testing.T) {
	t.Parallel()

	c := NewTestAPI(t)
	token, user := c.signIn(t, entity.RoleSupplier)

	c.repo.EXPECT().CompanyByUserID(gomock.Any(), user.ID).Return(entity.Company{ID: newID(), UserID: user.ID}, nil)

	photo := append(append([]byte{}, pngHeader...), make([]byte, entity.MaxPhotoSize)...)

	rec := c.postForm(t, token, photo)
	require.Equal(t, http.StatusRequestEntityTooLarge, rec.Code, rec.Body.String())
}

func TestHandler_ListPersonnelWithoutCompany(t *testing.T) {
	t.Parallel()

	c := NewTestAPI(t)
	token, user := c.signIn(t, entity.RoleSupplier)

	c.repo.EXPECT().CompanyByUserID(gomock.Any(), user.ID).Return(entity.Company{}, entity.ErrNotFound)

	rec := c.do(t, http.MethodGet, "/api/personnel", token, nil)
	require.Equal(t, http.StatusForbidden, rec.Code)
}

func TestHandler_ReviewQueue(t *testing.T) {
	t.Parallel()

	c := NewTestAPI(t)
	token, _ := c.signIn(t, entity.RoleSafety)

	expired := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

	newcomer := entity.Personnel{ID: newID(), Status: entity.PersonnelPendingAdmin}
	waiting := entity.Personnel{
		ID:       newID(),
		Status:   entity.PersonnelVerifiedActive,
		Requests: []entity.TrainingRequest{{ID: newID(), Status: entity.RequestPending}},
		Records: []entity.TrainingRecord{{
			ID:             newID(),
			CompletionDate: time.Date(2019, 1, 1, 0, 0, 0, 0, time.UTC),
			ExpiryDate:     &expired,
		}},
	}
	done := entity.Personnel{ID: newID(), Status: entity.PersonnelVerifiedActive}

	c.repo.EXPECT().FindPersonnel(gomock.Any(), entity.PersonnelFilter{}).
		Return([]entity.Personnel{newcomer, done, waiting}, nil)

	rec := c.do(t, http.MethodGet, "/api/review/queue", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	got := decode[[]api.PersonnelResponse](t, rec)
	require.Len(t, got, 2)
	require.Equal(t, newcomer.ID, got[0].ID)
	require.Equal(t, waiting.ID, got[1].ID)
	require.Equal(t, entity.BadgeExpired, got[1].Records[0].Badge)
	require.Equal(t, entity.RequestPending, got[1].Requests[0].Status)
}

func TestHandler_AssignRole(t *testing.T) {
	t.Parallel()

	c := NewTestAPI(t)
	token, _ := c.signIn(t, entity.RoleAdmin)

	userID := newID()
	role := entity.Role{ID: newID(), Name: entity.RoleSafety}

	c.repo.EXPECT().RoleByName(gomock.Any(), entity.RoleSafety).Return(role, nil)
	c.repo.EXPECT().AssignRole(gomock.Any(), userID, role.ID).Return(int64(1), nil)

	rec := c.do(t, http.MethodPut, "/api/users/"+userID.String()+"/role", token, api.AssignRoleRequest{Role: entity.RoleSafety})
	require.Equal(t, http.StatusNoContent, rec.Code, rec.Body.String())

	token, _ = c.signIn(t, entity.RoleAdmin)

	rec = c.do(t, http.MethodPut, "/api/users/"+userID.String()+"/role", token, api.AssignRoleRequest{Role: "owner"})
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
