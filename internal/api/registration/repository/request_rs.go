package registrationRepository

import (
	"Blognest/internal/api/registration"
	"Blognest/internal/entity"
	contextPkg "Blognest/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type RequestDB struct {
	ID              sql.NullString `db:"id"`
	Fullname        sql.NullString `db:"fullname"`
	Company         sql.NullString `db:"company"`
	Email           sql.NullString `db:"email"`
	BusinessType    sql.NullString `db:"business_type"`
	Status          sql.NullString `db:"status"`
	RejectionReason sql.NullString `db:"rejection_reason"`
	ReviewedBy      sql.NullString `db:"reviewed_by"`
	ReviewedAt      *time.Time     `db:"reviewed_at"`
	CreatedAt       time.Time      `db:"created_at"`
}

func (r RequestDB) toEntity() entity.CompanyRequest {
	return entity.CompanyRequest{
		ID:              r.ID.String,
		Fullname:        r.Fullname.String,
		Company:         r.Company.String,
		Email:           r.Email.String,
		BusinessType:    r.BusinessType.String,
		Status:          r.Status.String,
		RejectionReason: r.RejectionReason.String,
		ReviewedBy:      r.ReviewedBy.String,
		ReviewedAt:      r.ReviewedAt,
		CreatedAt:       r.CreatedAt,
	}
}

func (r *requestsRepository) CreateRequest(ctx context.Context, request entity.CompanyRequest) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":            request.ID,
		"fullname":      request.Fullname,
		"company":       request.Company,
		"email":         request.Email,
		"business_type": request.BusinessType,
		"status":        request.Status,
		"created_at":    request.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateRequest, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateRequest")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating registration request")
		return err
	}

	return nil
}

func (r *requestsRepository) GetRequestByID(ctx context.Context, id string) (entity.CompanyRequest, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var request RequestDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetRequestByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetRequestByID named query preparation err")
		return entity.CompanyRequest{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&request); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetRequestByID no rows found")
			return entity.CompanyRequest{}, registrations.ErrRequestNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when getting registration request by ID")
		return entity.CompanyRequest{}, err
	}

	return request.toEntity(), nil
}

func (r *requestsRepository) GetRequests(ctx context.Context) ([]entity.CompanyRequest, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []RequestDB

	if err := r.q.SelectContext(ctx, &rows, queryGetRequests); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when selecting registration requests")
		return nil, err
	}

	result := make([]entity.CompanyRequest, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}

	return result, nil
}

func (r *requestsRepository) CountCompanyUsage(ctx context.Context, company string) (int, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var count int

	argsKV := map[string]interface{}{
		"company": company,
	}

	query, args, err := sqlx.Named(queryCountCompanyUsage, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("CountCompanyUsage named query preparation err")
		return 0, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).Scan(&count); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"company":    company,
			"error":      err.Error(),
		}).Error("Database error when counting company usage")
		return 0, err
	}

	return count, nil
}

func (r *requestsRepository) ReviewRequest(ctx context.Context, request entity.CompanyRequest) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":               request.ID,
		"status":           request.Status,
		"rejection_reason": request.RejectionReason,
		"reviewed_by":      request.ReviewedBy,
		"reviewed_at":      request.ReviewedAt,
	}

	query, args, err := sqlx.Named(queryReviewRequest, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for ReviewRequest")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when reviewing registration request")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	// The guard on status means a lost row is a request that was already
	// moved out of pending by someone else.
	if rowsAffected == 0 {
		return registrations.ErrAlreadyReviewed
	}

	return nil
}
