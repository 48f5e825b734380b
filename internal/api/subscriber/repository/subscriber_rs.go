package subscriberRepository

import (
	"Blognest/internal/api/subscriber"
	"Blognest/internal/entity"
	contextPkg "Blognest/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"time"
)

const uniqueViolationCode = "23505"

type SubscriberDB struct {
	ID        sql.NullString `db:"id"`
	Email     sql.NullString `db:"email"`
	Company   sql.NullString `db:"company"`
	CreatedAt time.Time      `db:"created_at"`
}

func (s SubscriberDB) toEntity() entity.Subscriber {
	return entity.Subscriber{
		ID:        s.ID.String,
		Email:     s.Email.String,
		Company:   s.Company.String,
		CreatedAt: s.CreatedAt,
	}
}

func (r *subscribersRepository) CreateSubscriber(ctx context.Context, subscriber entity.Subscriber) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         subscriber.ID,
		"email":      subscriber.Email,
		"company":    subscriber.Company,
		"created_at": subscriber.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateSubscriber, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateSubscriber")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == uniqueViolationCode {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"company":    subscriber.Company,
			}).Warn("Duplicate subscription attempt")
			return subscribers.ErrAlreadySubscribed
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating subscriber")
		return err
	}

	return nil
}

func (r *subscribersRepository) GetSubscriberByID(ctx context.Context, id string) (entity.Subscriber, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var subscriber SubscriberDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetSubscriberByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSubscriberByID named query preparation err")
		return entity.Subscriber{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&subscriber); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetSubscriberByID no rows found")
			return entity.Subscriber{}, subscribers.ErrSubscriberNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when getting subscriber by ID")
		return entity.Subscriber{}, err
	}

	return subscriber.toEntity(), nil
}

func (r *subscribersRepository) GetSubscribersByCompany(ctx context.Context, company string) ([]entity.Subscriber, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []SubscriberDB

	argsKV := map[string]interface{}{
		"company": company,
	}

	query, args, err := sqlx.Named(queryGetSubscribersByCompany, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetSubscribersByCompany named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"company":    company,
			"error":      err.Error(),
		}).Error("Database error when selecting subscribers")
		return nil, err
	}

	result := make([]entity.Subscriber, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}

	return result, nil
}

func (r *subscribersRepository) DeleteSubscriber(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteSubscriber, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteSubscriber")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting subscriber")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return subscribers.ErrSubscriberNotFound
	}

	return nil
}
