package repository

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/certification/internal/entity"
)

var requestColumns = []string{
	"tr.id",
	"tr.personnel_id",
	"tr.course_id",
	"tr.company_id",
	"tc.name",
	"tc.validity_months",
	"tr.status",
	"tr.created_at",
}

var recordColumns = []string{
	"r.id",
	"r.personnel_id",
	"p.company_id",
	"r.course_id",
	"tc.name",
	"r.completion_date",
	"r.expiry_date",
	"r.recorder_id",
	"r.created_at",
}

func scanRequest(row pgx.Row) (entity.TrainingRequest, error) {
	var req entity.TrainingRequest

	err := row.Scan(
		&req.ID,
		&req.PersonnelID,
		&req.CourseID,
		&req.CompanyID,
		&req.CourseName,
		&req.CourseValidityMonths,
		&req.Status,
		&req.CreatedAt,
	)

	return req, err
}

func scanRecord(row pgx.Row) (entity.TrainingRecord, error) {
	var rec entity.TrainingRecord

	err := row.Scan(
		&rec.ID,
		&rec.PersonnelID,
		&rec.CompanyID,
		&rec.CourseID,
		&rec.CourseName,
		&rec.CompletionDate,
		&rec.ExpiryDate,
		&rec.RecorderID,
		&rec.CreatedAt,
	)

	return rec, err
}

func requestsSelect() sq.SelectBuilder {
	return sq.Select(requestColumns...).
		From("training_requests tr").
		Join("training_courses tc ON tc.id = tr.course_id").
		PlaceholderFormat(sq.Dollar)
}

func recordsSelect() sq.SelectBuilder {
	return sq.Select(recordColumns...).
		From("personnel_training_records r").
		Join("training_courses tc ON tc.id = r.course_id").
		Join("personnel p ON p.id = r.personnel_id").
		PlaceholderFormat(sq.Dollar)
}

func (r *Repository) CreateTrainingRequest(ctx context.Context, req entity.TrainingRequest) error {
	sqlQuery :=
		`INSERT INTO training_requests (id, personnel_id, course_id, company_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err := r.conn(ctx).Exec(ctx, sqlQuery,
		req.ID,
		req.PersonnelID,
		req.CourseID,
		req.CompanyID,
		string(req.Status),
		req.CreatedAt,
	)
	if err != nil {
		return dbErr("insert training request", err)
	}

	return nil
}

func (r *Repository) TrainingRequestByID(ctx context.Context, id uuid.UUID) (entity.TrainingRequest, error) {
	sqlQuery, args, err := requestsSelect().Where(sq.Eq{"tr.id": id}).ToSql()
	if err != nil {
		return entity.TrainingRequest{}, err
	}

	req, err := scanRequest(r.conn(ctx).QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		return entity.TrainingRequest{}, dbErr("select training request by id", err)
	}

	return req, nil
}

func (r *Repository) UpdateTrainingRequestStatus(
	ctx context.Context,
	id uuid.UUID,
	expected, to entity.RequestStatus,
) (int64, error) {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE training_requests SET status = $3 WHERE id = $1 AND status = $2`,
		id, string(expected), string(to),
	)
	if err != nil {
		return 0, dbErr("update training request status", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) RejectPendingTrainingRequests(ctx context.Context, personnelID uuid.UUID) (int64, error) {
	tag, err := r.conn(ctx).Exec(ctx,
		`UPDATE training_requests SET status = $2 WHERE personnel_id = $1 AND status = $3`,
		personnelID, string(entity.RequestRejected), string(entity.RequestPending),
	)
	if err != nil {
		return 0, dbErr("reject pending training requests", err)
	}

	return tag.RowsAffected(), nil
}

func (r *Repository) trainingRequestsByPersonnel(
	ctx context.Context,
	personnelIDs []uuid.UUID,
) (map[uuid.UUID][]entity.TrainingRequest, error) {
	sqlQuery, args, err := requestsSelect().
		Where(sq.Eq{"tr.personnel_id": personnelIDs}).
		OrderBy("tr.created_at", "tr.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, dbErr("select training requests", err)
	}

	defer rows.Close()

	requests := make(map[uuid.UUID][]entity.TrainingRequest, len(personnelIDs))

	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, dbErr("scan training request", err)
		}

		requests[req.PersonnelID] = append(requests[req.PersonnelID], req)
	}

	if err = rows.Err(); err != nil {
		return nil, dbErr("iterate training requests", err)
	}

	return requests, nil
}

func (r *Repository) CreateTrainingRecord(ctx context.Context, rec entity.TrainingRecord) error {
	sqlQuery :=
		`INSERT INTO personnel_training_records (id, personnel_id, course_id, completion_date, expiry_date, recorder_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := r.conn(ctx).Exec(ctx, sqlQuery,
		rec.ID,
		rec.PersonnelID,
		rec.CourseID,
		rec.CompletionDate,
		rec.ExpiryDate,
		rec.RecorderID,
		rec.CreatedAt,
	)
	if err != nil {
		return dbErr("insert training record", err)
	}

	return nil
}

// TrainingRecordsExpiringBetween returns records whose expiry date falls in [from, to].
func (r *Repository) TrainingRecordsExpiringBetween(ctx context.Context, from, to time.Time) ([]entity.TrainingRecord, error) {
	sqlQuery, args, err := recordsSelect().
		Where(sq.GtOrEq{"r.expiry_date": from}).
		Where(sq.LtOrEq{"r.expiry_date": to}).
		OrderBy("r.expiry_date", "r.id").
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryRecords(ctx, sqlQuery, args)
}

func (r *Repository) trainingRecordsByPersonnel(
	ctx context.Context,
	personnelIDs []uuid.UUID,
) (map[uuid.UUID][]entity.TrainingRecord, error) {
	sqlQuery, args, err := recordsSelect().
		Where(sq.Eq{"r.personnel_id": personnelIDs}).
		OrderBy("r.completion_date", "r.created_at").
		ToSql()
	if err != nil {
		return nil, err
	}

	list, err := r.queryRecords(ctx, sqlQuery, args)
	if err != nil {
		return nil, err
	}

	records := make(map[uuid.UUID][]entity.TrainingRecord, len(personnelIDs))
	for _, rec := range list {
		records[rec.PersonnelID] = append(records[rec.PersonnelID], rec)
	}

	return records, nil
}

func (r *Repository) queryRecords(ctx context.Context, sqlQuery string, args []any) ([]entity.TrainingRecord, error) {
	rows, err := r.conn(ctx).Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, dbErr("select training records", err)
	}

	defer rows.Close()

	var records []entity.TrainingRecord

	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, dbErr("scan training record", err)
		}

		records = append(records, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, dbErr("iterate training records", err)
	}

	return records, nil
}
