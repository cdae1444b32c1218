package repository

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/microservices/certification/internal/entity"
)

func (r *Repository) Courses(ctx context.Context) ([]entity.Course, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT id, name, validity_months, created_at FROM training_courses ORDER BY name, id`)
	if err != nil {
		return nil, dbErr("select courses", err)
	}

	defer rows.Close()

	courses := make([]entity.Course, 0)

	for rows.Next() {
		var c entity.Course

		err = rows.Scan(&c.ID, &c.Name, &c.ValidityMonths, &c.CreatedAt)
		if err != nil {
			return nil, dbErr("scan course", err)
		}

		courses = append(courses, c)
	}

	if err = rows.Err(); err != nil {
		return nil, dbErr("iterate courses", err)
	}

	return courses, nil
}

func (r *Repository) CourseByID(ctx context.Context, id uuid.UUID) (entity.Course, error) {
	var c entity.Course

	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, name, validity_months, created_at FROM training_courses WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.ValidityMonths, &c.CreatedAt)
	if err != nil {
		return entity.Course{}, dbErr("select course by id", err)
	}

	return c, nil
}

func (r *Repository) CreateCourse(ctx context.Context, c entity.Course) error {
	_, err := r.conn(ctx).Exec(ctx,
		`INSERT INTO training_courses (id, name, validity_months, created_at) VALUES ($1, $2, $3, $4)`,
		c.ID, c.Name, c.ValidityMonths, c.CreatedAt,
	)
	if err != nil {
		return dbErr("insert course", err)
	}

	return nil
}

func (r *Repository) CompanyByUserID(ctx context.Context, userID uuid.UUID) (entity.Company, error) {
	var c entity.Company

	err := r.conn(ctx).QueryRow(ctx,
		`SELECT id, user_id, name FROM companies WHERE user_id = $1`, userID,
	).Scan(&c.ID, &c.UserID, &c.Name)
	if err != nil {
		return entity.Company{}, dbErr("select company by user id", err)
	}

	return c, nil
}

const userColumns = `u.id, u.auth_id, u.username, u.email, r.id, r.name`

type userRow struct {
	user     entity.User
	roleID   *uuid.UUID
	roleName *string
}

func (u *userRow) dest() []any {
	return []any{&u.user.ID, &u.user.AuthID, &u.user.Username, &u.user.Email, &u.roleID, &u.roleName}
}

func (u *userRow) entity() entity.User {
	if u.roleID != nil && u.roleName != nil {
		u.user.Role = &entity.Role{ID: *u.roleID, Name: *u.roleName}
	}

	return u.user
}

func (r *Repository) UserByAuthID(ctx context.Context, authID uuid.UUID) (entity.User, error) {
	var row userRow

	err := r.conn(ctx).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users u LEFT JOIN roles r ON r.id = u.role_id WHERE u.auth_id = $1`, authID,
	).Scan(row.dest()...)
	if err != nil {
		return entity.User{}, dbErr("select user by auth id", err)
	}

	return row.entity(), nil
}

func (r *Repository) UserByID(ctx context.Context, id uuid.UUID) (entity.User, error) {
	var row userRow

	err := r.conn(ctx).QueryRow(ctx,
		`SELECT `+userColumns+` FROM users u LEFT JOIN roles r ON r.id = u.role_id WHERE u.id = $1`, id,
	).Scan(row.dest()...)
	if err != nil {
		return entity.User{}, dbErr("select user by id", err)
	}

	return row.entity(), nil
}

func (r *Repository) CreateUser(ctx context.Context, u entity.User) error {
	_, err := r.conn(ctx).Exec(ctx,
		`INSERT INTO users (id, auth_id, username, email) VALUES ($1, $2, $3, $4)`,
		u.ID, u.AuthID, u.Username, u.Email,
	)
	if err != nil {
		return dbErr("insert user", err)
	}

	return nil
}

func (r *Repository) UsersWithoutRole(ctx context.Context) ([]entity.User, error) {
	rows, err := r.conn(ctx).Query(ctx,
		`SELECT `+userColumns+` FROM users u LEFT JOIN roles r ON r.id = u.role_id
		WHERE u.role_id IS NULL ORDER BY u.created_at, u.id`)
	if err != nil {
		return nil, dbErr("select users without role", err)
	}

	defer rows.Close()

	users := make([]entity.User, 0)

	for rows.Next() {
		var row userRow

		err = rows.Scan(row.dest()...)
		if err != nil {
			return nil, dbErr("scan user", err)
		}

		users = append(users, row.entity())
	}

	if err = rows.Err(); err != nil {
		return nil, dbErr("iterate users", err)
	}

	return users, nil
}

func (r *Repository) RoleByName(ctx context.Context, name string) (entity.Role, error) {
	var role entity.Role

	err := r.conn(ctx).QueryRow(ctx, `SELECT id, name FROM roles WHERE name = $1`, name).Scan(&role.ID, &role.Name)
	if err != nil {
		return entity.Role{}, dbErr("select role by name", err)
	}

	return role, nil
}

func (r *Repository) AssignRole(ctx context.Context, userID, roleID uuid.UUID) (int64, error) {
	tag, err := r.conn(ctx).Exec(ctx, `UPDATE users SET role_id = $2 WHERE id = $1`, userID, roleID)
	if err != nil {
		return 0, dbErr("assign role", err)
	}

	return tag.RowsAffected(), nil
}
