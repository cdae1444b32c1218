package repository

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/gofrs/uuid/v5"
	"github.com/jackc/pgx/v5"

	"github.com/samandr77/microservices/certification/internal/entity"
)

var personnelColumns = []string{
	"p.id",
	"p.company_id",
	"c.name",
	"p.first_name",
	"p.last_name",
	"p.national_id_or_passport",
	"p.position",
	"p.photo_url",
	"p.status",
	"p.remark",
	"p.created_at",
}

func scanPersonnel(row pgx.Row) (entity.Personnel, error) {
	var p entity.Personnel

	err := row.Scan(
		&p.ID,
		&p.CompanyID,
		&p.CompanyName,
		&p.FirstName,
		&p.LastName,
		&p.NationalIDOrPassport,
		&p.Position,
		&p.PhotoURL,
		&p.Status,
		&p.Remark,
		&p.CreatedAt,
	)

	return p, err
}

// FindPersonnel returns a snapshot of personnel, oldest first, with their training records and requests.
func (r *Repository) FindPersonnel(ctx context.Context, filter entity.PersonnelFilter) ([]entity.Personnel, error) {
	stmt := sq.Select(personnelColumns...).
		From("personnel p").
		Join("companies c ON c.id = p.company_id").
		OrderBy("p.created_at", "p.id").
		PlaceholderFormat(sq.Dollar)

	if !filter.CompanyID.IsNil() {
		stmt = stmt.Where(sq.Eq{"p.company_id": filter.CompanyID})
	}

	sqlQuery, args, err := stmt.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn(ctx).Query(ctx, sqlQuery, args...)
	if err != nil {
		return nil, dbErr("select personnel", err)
	}

	defer rows.Close()

	var (
		personnel []entity.Personnel
		ids       []uuid.UUID
	)

	for rows.Next() {
		p, err := scanPersonnel(rows)
		if err != nil {
			return nil, dbErr("scan personnel", err)
		}

		personnel = append(personnel, p)
		ids = append(ids, p.ID)
	}

	if err = rows.Err(); err != nil {
		return nil, dbErr("iterate personnel", err)
	}

	if len(ids) == 0 {
		return []entity.Personnel{}, nil
	}

	records, err := r.trainingRecordsByPersonnel(ctx, ids)
	if err != nil {
		return nil, err
	}

	requests, err := r.trainingRequestsByPersonnel(ctx, ids)
	if err != nil {
		return nil, err
	}

	for i := range personnel {
		personnel[i].Records = records[personnel[i].ID]
		personnel[i].Requests = requests[personnel[i].ID]
	}

	return personnel, nil
}

func (r *Repository) PersonnelByID(ctx context.Context, id uuid.UUID) (entity.Personnel, error) {
	sqlQuery, args, err := sq.Select(personnelColumns...).
		From("personnel p").
		Join("companies c ON c.id = p.company_id").
		Where(sq.Eq{"p.id": id}).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return entity.Personnel{}, err
	}

	p, err := scanPersonnel(r.conn(ctx).QueryRow(ctx, sqlQuery, args...))
	if err != nil {
		return entity.Personnel{}, dbErr("select personnel by id", err)
	}

	return p, nil
}

func (r *Repository) CreatePersonnel(ctx context.Context, p entity.Personnel) error {
	sqlQuery :=
		`INSERT INTO personnel (id, company_id, first_name, last_name, national_id_or_passport, position, photo_url, status, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.conn(ctx).Exec(ctx, sqlQuery,
		p.ID,
		p.CompanyID,
		p.FirstName,
		p.LastName,
		p.NationalIDOrPassport,
		p.Position,
		p.PhotoURL,
		string(p.Status),
		p.CreatedAt,
	)
	if err != nil {
		return dbErr("insert personnel", err)
	}

	return nil
}

// UpdatePersonnelDetails keeps the stored photo when photoURL is nil.
func (r *Repository) UpdatePersonnelDetails(
	ctx context.Context,
	id uuid.UUID,
	details entity.PersonnelDetails,
	photoURL *string,
) error {
	sqlQuery :=
		`UPDATE personnel
		SET first_name = $2, last_name = $3, national_id_or_passport = $4, position = $5,
			photo_url = COALESCE($6, photo_url)
		WHERE id = $1`

	tag, err := r.conn(ctx).Exec(ctx, sqlQuery,
		id,
		details.FirstName,
		details.LastName,
		details.NationalIDOrPassport,
		details.Position,
		photoURL,
	)
	if err != nil {
		return dbErr("update personnel details", err)
	}

	if tag.RowsAffected() == 0 {
		return dbErr("update personnel details", pgx.ErrNoRows)
	}

	return nil
}

// UpdatePersonnelStatus moves a person to status `to` only while the stored status is one of from.
// The remark is overwritten, so leaving REJECTED clears it.
func (r *Repository) UpdatePersonnelStatus(
	ctx context.Context,
	id uuid.UUID,
	from []entity.PersonnelStatus,
	to entity.PersonnelStatus,
	remark *string,
) (int64, error) {
	sqlQuery :=
		`UPDATE personnel
		SET status = $3, remark = $4
		WHERE id = $1 AND status = ANY($2)`

	expected := make([]string, 0, len(from))
	for _, s := range from {
		expected = append(expected, string(s))
	}

	tag, err := r.conn(ctx).Exec(ctx, sqlQuery, id, expected, string(to), remark)
	if err != nil {
		return 0, dbErr("update personnel status", err)
	}

	return tag.RowsAffected(), nil
}

// DeletePersonnel removes the person; training requests and records are removed by the foreign key cascade.
func (r *Repository) DeletePersonnel(ctx context.Context, id uuid.UUID) (int64, error) {
	tag, err := r.conn(ctx).Exec(ctx, `DELETE FROM personnel WHERE id = $1`, id)
	if err != nil {
		return 0, dbErr("delete personnel", err)
	}

	return tag.RowsAffected(), nil
}
