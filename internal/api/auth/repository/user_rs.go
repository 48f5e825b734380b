package authRepository

import (
	"Blognest/internal/api/auth"
	"Blognest/internal/entity"
	contextPkg "Blognest/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type UserDB struct {
	ID        sql.NullString `db:"id"`
	Email     sql.NullString `db:"email"`
	Password  sql.NullString `db:"password"`
	Company   sql.NullString `db:"company"`
	Role      sql.NullString `db:"role"`
	CreatedAt time.Time      `db:"created_at"`
	UpdatedAt time.Time      `db:"updated_at"`
}

func (u UserDB) toEntity() entity.User {
	return entity.User{
		ID:        u.ID.String,
		Email:     u.Email.String,
		Password:  u.Password.String,
		Company:   u.Company.String,
		Role:      u.Role.String,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r *usersRepository) GetUserByEmail(ctx context.Context, email string) (entity.User, error) {
	return r.getUser(ctx, queryGetUserByEmail, map[string]interface{}{"email": email})
}

func (r *usersRepository) GetUserByID(ctx context.Context, id string) (entity.User, error) {
	return r.getUser(ctx, queryGetUserByID, map[string]interface{}{"id": id})
}

func (r *usersRepository) getUser(ctx context.Context, namedQuery string, argsKV map[string]interface{}) (entity.User, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var user UserDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("getUser named query preparation err")
		return entity.User{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&user); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
			}).Warn("getUser no rows found")
			return entity.User{}, auth.ErrUserNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when getting user")
		return entity.User{}, err
	}

	return user.toEntity(), nil
}

func (r *usersRepository) UpdateUserPassword(ctx context.Context, id string, hashedPassword string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         id,
		"password":   hashedPassword,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryUpdateUserPassword, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateUserPassword")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating user password")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return auth.ErrUserNotFound
	}

	return nil
}
