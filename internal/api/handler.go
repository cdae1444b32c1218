package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/certification/internal/entity"
)

type Service interface {
	RegisterPersonnel(ctx context.Context, details entity.PersonnelDetails, photo *entity.Photo) (entity.Personnel, error)
	UpdatePersonnel(ctx context.Context, id uuid.UUID, details entity.PersonnelDetails, photo *entity.Photo) (entity.Personnel, error)
	DeletePersonnel(ctx context.Context, id uuid.UUID) error
	ListCompanyPersonnel(ctx context.Context) ([]entity.Personnel, error)
	SubmitTrainingRequest(ctx context.Context, personnelID, courseID uuid.UUID) (entity.TrainingRequest, error)

	ListCourses(ctx context.Context) ([]entity.Course, error)
	CreateCourse(ctx context.Context, name string, validityMonths int) (entity.Course, error)

	ReviewQueue(ctx context.Context) ([]entity.Personnel, error)
	History(ctx context.Context, filter entity.HistoryFilter) ([]entity.Personnel, error)
	ApprovePersonnel(ctx context.Context, cmd entity.ApproveCommand) (entity.TrainingRecord, error)
	RejectPersonnel(ctx context.Context, id uuid.UUID, reason string) error
	RecordTraining(ctx context.Context, personnelID, courseID uuid.UUID, completionDate time.Time) (entity.TrainingRecord, error)
	ApproveTrainingRequest(ctx context.Context, id uuid.UUID, completionDate time.Time) (entity.TrainingRecord, error)
	RejectTrainingRequest(ctx context.Context, id uuid.UUID) error

	ListPendingUsers(ctx context.Context) ([]entity.User, error)
	AssignRole(ctx context.Context, userID uuid.UUID, roleName string) error
}

// @title Certification API
// @version 1.0
// @description Contractor personnel registration, safety review and training certification.
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

type Handler struct {
	s   Service
	now func() time.Time
}

func NewHandler(s Service) *Handler {
	return &Handler{
		s:   s,
		now: time.Now,
	}
}

const (
	photoField         = "photo"
	maxMultipartMemory = 4 << 20
	maxMultipartBody   = entity.MaxPhotoSize + 1<<20
)

// Health godoc
// @Summary      Проверка состояния сервиса
// @Tags         health
// @Success      200 {string} string "Сервис работает!"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, err := w.Write([]byte("Сервис работает!\n"))
	if err != nil {
		SendErr(ctx, w, http.StatusInternalServerError, err, "Сервис не работает!")
	}
}

// Me godoc
// @Summary      Текущий пользователь
// @Description  Пользователь без роли ожидает подтверждения администратором
// @Tags         users
// @Produce      json
// @Success      200 {object} entity.User
// @Failure      401 {object} ResponseError
// @Security     BearerAuth
// @Router       /me [get]
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, err := entity.UserFromContext(ctx)
	if err != nil {
		SendErr(ctx, w, http.StatusUnauthorized, err, "Пользователь не авторизован")
		return
	}

	SendJSON(ctx, w, http.StatusOK, user)
}

// ListPersonnel godoc
// @Summary      Персонал компании подрядчика
// @Tags         personnel
// @Produce      json
// @Success      200 {array} PersonnelResponse
// @Failure      403 {object} ResponseError "У пользователя нет компании"
// @Security     BearerAuth
// @Router       /personnel [get]
func (h *Handler) ListPersonnel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	personnel, err := h.s.ListCompanyPersonnel(ctx)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, h.personnelToAPI(personnel))
}

// CreatePersonnel godoc
// @Summary      Регистрация сотрудника
// @Description  Новый сотрудник ожидает проверки службой безопасности
// @Tags         personnel
// @Accept       multipart/form-data
// @Produce      json
// @Param        firstName formData string true "Имя"
// @Param        lastName formData string true "Фамилия"
// @Param        nationalId formData string true "Номер удостоверения или паспорта"
// @Param        position formData string true "Должность"
// @Param        photo formData file false "Фото, не более 2 МиБ"
// @Success      201 {object} PersonnelResponse
// @Failure      400 {object} ResponseError
// @Failure      413 {object} ResponseError "Фото больше 2 МиБ"
// @Failure      429 {object} ResponseError
// @Failure      502 {object} ResponseError "Хранилище недоступно"
// @Security     BearerAuth
// @Router       /personnel [post]
func (h *Handler) CreatePersonnel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	details, photo, err := parsePersonnelForm(w, r)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	p, err := h.s.RegisterPersonnel(ctx, details, photo)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, h.toPersonnelResponse(p))
}

// UpdatePersonnel godoc
// @Summary      Редактирование данных сотрудника
// @Description  Статус и замечание проверки не меняются
// @Tags         personnel
// @Accept       multipart/form-data
// @Produce      json
// @Param        id path string true "ID сотрудника"
// @Param        firstName formData string true "Имя"
// @Param        lastName formData string true "Фамилия"
// @Param        nationalId formData string true "Номер удостоверения или паспорта"
// @Param        position formData string true "Должность"
// @Param        photo formData file false "Новое фото, не более 2 МиБ"
// @Success      200 {object} PersonnelResponse
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      413 {object} ResponseError
// @Security     BearerAuth
// @Router       /personnel/{id} [put]
func (h *Handler) UpdatePersonnel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	details, photo, err := parsePersonnelForm(w, r)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	p, err := h.s.UpdatePersonnel(ctx, id, details, photo)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, h.toPersonnelResponse(p))
}

// DeletePersonnel godoc
// @Summary      Удаление сотрудника
// @Description  Заявки и записи об обучении удаляются вместе с сотрудником
// @Tags         personnel
// @Param        id path string true "ID сотрудника"
// @Success      204
// @Failure      404 {object} ResponseError
// @Security     BearerAuth
// @Router       /personnel/{id} [delete]
func (h *Handler) DeletePersonnel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	err = h.s.DeletePersonnel(ctx, id)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type SubmitTrainingRequestRequest struct {
	PersonnelID uuid.UUID `json:"personnelId"`
	CourseID    uuid.UUID `json:"courseId"`
}

// SubmitTrainingRequest godoc
// @Summary      Заявка на обучение
// @Tags         training-requests
// @Accept       json
// @Produce      json
// @Param        request body SubmitTrainingRequestRequest true "Сотрудник и курс"
// @Success      201 {object} TrainingRequestResponse
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      409 {object} ResponseError "Заявка уже ожидает проверки"
// @Security     BearerAuth
// @Router       /training-requests [post]
func (h *Handler) SubmitTrainingRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req SubmitTrainingRequestRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyRuText)
		return
	}

	tr, err := h.s.SubmitTrainingRequest(ctx, req.PersonnelID, req.CourseID)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toTrainingRequestResponse(tr))
}

// ListCourses godoc
// @Summary      Каталог курсов
// @Tags         courses
// @Produce      json
// @Success      200 {array} CourseResponse
// @Security     BearerAuth
// @Router       /courses [get]
func (h *Handler) ListCourses(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	courses, err := h.s.ListCourses(ctx)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	resp := make([]CourseResponse, 0, len(courses))
	for _, c := range courses {
		resp = append(resp, toCourseResponse(c))
	}

	SendJSON(ctx, w, http.StatusOK, resp)
}

type CreateCourseRequest struct {
	Name           string `json:"name"`
	ValidityMonths int    `json:"validityMonths"`
}

// CreateCourse godoc
// @Summary      Новый курс
// @Description  validityMonths = 0 означает бессрочный сертификат
// @Tags         courses
// @Accept       json
// @Produce      json
// @Param        request body CreateCourseRequest true "Курс"
// @Success      201 {object} CourseResponse
// @Failure      400 {object} ResponseError
// @Security     BearerAuth
// @Router       /courses [post]
func (h *Handler) CreateCourse(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateCourseRequest

	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyRuText)
		return
	}

	course, err := h.s.CreateCourse(ctx, req.Name, req.ValidityMonths)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, toCourseResponse(course))
}

// ReviewQueue godoc
// @Summary      Очередь проверки
// @Description  Новые сотрудники и сотрудники с ожидающими заявками на обучение
// @Tags         review
// @Produce      json
// @Success      200 {array} PersonnelResponse
// @Security     BearerAuth
// @Router       /review/queue [get]
func (h *Handler) ReviewQueue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	queue, err := h.s.ReviewQueue(ctx)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, h.personnelToAPI(queue))
}

// ReviewHistory godoc
// @Summary      Поиск по всем сотрудникам
// @Tags         review
// @Produce      json
// @Param        name query string false "Имя или фамилия"
// @Param        company query string false "Компания"
// @Param        course query string false "Пройденный курс"
// @Success      200 {array} PersonnelResponse
// @Security     BearerAuth
// @Router       /review/history [get]
func (h *Handler) ReviewHistory(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	q := r.URL.Query()

	found, err := h.s.History(ctx, entity.HistoryFilter{
		Name:    q.Get("name"),
		Company: q.Get("company"),
		Course:  q.Get("course"),
	})
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, h.personnelToAPI(found))
}

type ApprovePersonnelRequest struct {
	CourseID       uuid.UUID  `json:"courseId"`
	RequestID      *uuid.UUID `json:"requestId,omitempty"`
	CompletionDate string     `json:"completionDate" example:"2024-03-15"`
}

// ApprovePersonnel godoc
// @Summary      Допуск сотрудника
// @Description  Сохраняет запись об обучении и переводит сотрудника в VERIFIED_ACTIVE.
// @Description  С requestId одобряет эту заявку на обучение.
// @Tags         review
// @Accept       json
// @Produce      json
// @Param        id path string true "ID сотрудника"
// @Param        request body ApprovePersonnelRequest true "Курс и дата прохождения"
// @Success      200 {object} TrainingRecordResponse
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      409 {object} ResponseError "Недопустимый переход или параллельное изменение"
// @Security     BearerAuth
// @Router       /personnel/{id}/approve [post]
func (h *Handler) ApprovePersonnel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	var req ApprovePersonnelRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyRuText)
		return
	}

	completion, err := parseDate(req.CompletionDate)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	cmd := entity.ApproveCommand{
		PersonnelID:    id,
		CourseID:       req.CourseID,
		CompletionDate: completion,
	}

	if req.RequestID != nil {
		cmd.RequestID = *req.RequestID
	}

	record, err := h.s.ApprovePersonnel(ctx, cmd)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, h.toTrainingRecordResponse(record))
}

type RejectPersonnelRequest struct {
	Reason string `json:"reason"`
}

// RejectPersonnel godoc
// @Summary      Отклонение сотрудника
// @Description  Ожидающие заявки на обучение сотрудника отклоняются вместе с ним
// @Tags         review
// @Accept       json
// @Param        id path string true "ID сотрудника"
// @Param        request body RejectPersonnelRequest true "Причина"
// @Success      204
// @Failure      400 {object} ResponseError "Причина не указана"
// @Failure      404 {object} ResponseError
// @Failure      409 {object} ResponseError
// @Security     BearerAuth
// @Router       /personnel/{id}/reject [post]
func (h *Handler) RejectPersonnel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	var req RejectPersonnelRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyRuText)
		return
	}

	err = h.s.RejectPersonnel(ctx, id, req.Reason)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type RecordTrainingRequest struct {
	CourseID       uuid.UUID `json:"courseId"`
	CompletionDate string    `json:"completionDate" example:"2024-03-15"`
}

// RecordTraining godoc
// @Summary      Запись о пройденном обучении
// @Description  Только для сотрудников в статусе VERIFIED_ACTIVE
// @Tags         review
// @Accept       json
// @Produce      json
// @Param        id path string true "ID сотрудника"
// @Param        request body RecordTrainingRequest true "Курс и дата прохождения"
// @Success      201 {object} TrainingRecordResponse
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      409 {object} ResponseError
// @Security     BearerAuth
// @Router       /personnel/{id}/training-records [post]
func (h *Handler) RecordTraining(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	var req RecordTrainingRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyRuText)
		return
	}

	completion, err := parseDate(req.CompletionDate)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	record, err := h.s.RecordTraining(ctx, id, req.CourseID, completion)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusCreated, h.toTrainingRecordResponse(record))
}

type ApproveTrainingRequestRequest struct {
	CompletionDate string `json:"completionDate" example:"2024-03-15"`
}

// ApproveTrainingRequest godoc
// @Summary      Одобрение заявки на обучение
// @Tags         training-requests
// @Accept       json
// @Produce      json
// @Param        id path string true "ID заявки"
// @Param        request body ApproveTrainingRequestRequest true "Дата прохождения"
// @Success      200 {object} TrainingRecordResponse
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Failure      409 {object} ResponseError "Заявка уже рассмотрена"
// @Security     BearerAuth
// @Router       /training-requests/{id}/approve [post]
func (h *Handler) ApproveTrainingRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	var req ApproveTrainingRequestRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyRuText)
		return
	}

	completion, err := parseDate(req.CompletionDate)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	record, err := h.s.ApproveTrainingRequest(ctx, id, completion)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, h.toTrainingRecordResponse(record))
}

// RejectTrainingRequest godoc
// @Summary      Отклонение заявки на обучение
// @Description  Статус сотрудника не меняется
// @Tags         training-requests
// @Param        id path string true "ID заявки"
// @Success      204
// @Failure      404 {object} ResponseError
// @Failure      409 {object} ResponseError "Заявка уже рассмотрена"
// @Security     BearerAuth
// @Router       /training-requests/{id}/reject [post]
func (h *Handler) RejectTrainingRequest(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	err = h.s.RejectTrainingRequest(ctx, id)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PendingUsers godoc
// @Summary      Пользователи без роли
// @Tags         users
// @Produce      json
// @Success      200 {array} entity.User
// @Security     BearerAuth
// @Router       /users/pending [get]
func (h *Handler) PendingUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	users, err := h.s.ListPendingUsers(ctx)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	SendJSON(ctx, w, http.StatusOK, users)
}

type AssignRoleRequest struct {
	Role string `json:"role" enums:"admin,safety,supplier"`
}

// AssignRole godoc
// @Summary      Назначение роли
// @Tags         users
// @Accept       json
// @Param        id path string true "ID пользователя"
// @Param        request body AssignRoleRequest true "Роль"
// @Success      204
// @Failure      400 {object} ResponseError
// @Failure      404 {object} ResponseError
// @Security     BearerAuth
// @Router       /users/{id}/role [put]
func (h *Handler) AssignRole(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := pathID(r)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	var req AssignRoleRequest

	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		SendErr(ctx, w, http.StatusBadRequest, err, errBadBodyRuText)
		return
	}

	err = h.s.AssignRole(ctx, id, req.Role)
	if err != nil {
		handleErr(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func pathID(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.FromString(chi.URLParam(r, "id"))
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: id: %w", entity.ErrValidation, err)
	}

	return id, nil
}

func parseDate(s string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD: %w", entity.ErrValidation, err)
	}

	return t, nil
}

// parsePersonnelForm reads the multipart personnel form. The photo is read one byte past the
// ceiling so the size check sees oversized files without buffering them whole.
func parsePersonnelForm(w http.ResponseWriter, r *http.Request) (entity.PersonnelDetails, *entity.Photo, error) {
	r.Body = http.MaxBytesReader(w, r.Body, maxMultipartBody)

	err := r.ParseMultipartForm(maxMultipartMemory)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			return entity.PersonnelDetails{}, nil, fmt.Errorf("%w: %w", entity.ErrPhotoTooLarge, err)
		}

		return entity.PersonnelDetails{}, nil, fmt.Errorf("%w: parse form: %w", entity.ErrValidation, err)
	}

	details := entity.PersonnelDetails{
		FirstName:            r.FormValue("firstName"),
		LastName:             r.FormValue("lastName"),
		NationalIDOrPassport: r.FormValue("nationalId"),
		Position:             r.FormValue("position"),
	}

	file, header, err := r.FormFile(photoField)
	if errors.Is(err, http.ErrMissingFile) {
		return details, nil, nil
	}

	if err != nil {
		return entity.PersonnelDetails{}, nil, fmt.Errorf("%w: photo: %w", entity.ErrValidation, err)
	}

	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, entity.MaxPhotoSize+1))
	if err != nil {
		return entity.PersonnelDetails{}, nil, fmt.Errorf("%w: read photo: %w", entity.ErrValidation, err)
	}

	return details, &entity.Photo{
		Name:        header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

func handleErr(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrPhotoTooLarge):
		SendErr(ctx, w, http.StatusRequestEntityTooLarge, err, "Фото больше 2 МиБ")
	case errors.Is(err, entity.ErrValidation):
		SendErr(ctx, w, http.StatusBadRequest, err, "Некорректные данные")
	case errors.Is(err, entity.ErrUnauthorized):
		SendErr(ctx, w, http.StatusUnauthorized, err, "Пользователь не авторизован")
	case errors.Is(err, entity.ErrForbidden):
		SendErr(ctx, w, http.StatusForbidden, err, "Недостаточно прав")
	case errors.Is(err, entity.ErrNotFound):
		SendErr(ctx, w, http.StatusNotFound, err, "Запись не найдена")
	case errors.Is(err, entity.ErrConflict):
		SendErr(ctx, w, http.StatusConflict, err, "Запись уже изменена другим пользователем, обновите данные")
	case errors.Is(err, entity.ErrInvalidState):
		SendErr(ctx, w, http.StatusConflict, err, "Действие недоступно в текущем статусе")
	case errors.Is(err, entity.ErrAlreadyExists):
		SendErr(ctx, w, http.StatusConflict, err, "Запись уже существует")
	case errors.Is(err, entity.ErrUpstream):
		SendErr(ctx, w, http.StatusBadGateway, err, "Внешний сервис недоступен")
	default:
		SendErr(ctx, w, http.StatusInternalServerError, err, errInternalRuText)
	}
}
