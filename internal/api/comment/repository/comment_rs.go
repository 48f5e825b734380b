package commentRepository

import (
	"Blognest/internal/api/comment"
	"Blognest/internal/entity"
	contextPkg "Blognest/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type CommentDB struct {
	ID          sql.NullString `db:"id"`
	BlogID      sql.NullString `db:"blog_id"`
	Name        sql.NullString `db:"name"`
	Content     sql.NullString `db:"content"`
	IsApproved  sql.NullBool   `db:"is_approved"`
	CreatedAt   time.Time      `db:"created_at"`
	BlogTitle   sql.NullString `db:"blog_title"`
	BlogCompany sql.NullString `db:"blog_company"`
}

func (c CommentDB) toEntity() entity.Comment {
	return entity.Comment{
		ID:          c.ID.String,
		BlogID:      c.BlogID.String,
		Name:        c.Name.String,
		Content:     c.Content.String,
		IsApproved:  c.IsApproved.Bool,
		CreatedAt:   c.CreatedAt,
		BlogTitle:   c.BlogTitle.String,
		BlogCompany: c.BlogCompany.String,
	}
}

func (r *commentsRepository) CreateComment(ctx context.Context, comment entity.Comment) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          comment.ID,
		"blog_id":     comment.BlogID,
		"name":        comment.Name,
		"content":     comment.Content,
		"is_approved": comment.IsApproved,
		"created_at":  comment.CreatedAt,
	}

	query, args, err := sqlx.Named(queryCreateComment, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateComment")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating comment")
		return err
	}

	return nil
}

func (r *commentsRepository) GetCommentByID(ctx context.Context, id string) (entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var comment CommentDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetCommentByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCommentByID named query preparation err")
		return entity.Comment{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&comment); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetCommentByID no rows found")
			return entity.Comment{}, comments.ErrCommentNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when getting comment by ID")
		return entity.Comment{}, err
	}

	return comment.toEntity(), nil
}

func (r *commentsRepository) GetApprovedByBlog(ctx context.Context, blogID string) ([]entity.Comment, error) {
	return r.selectComments(ctx, queryGetApprovedByBlog, map[string]interface{}{
		"blog_id": blogID,
	})
}

func (r *commentsRepository) GetByCompany(ctx context.Context, company string) ([]entity.Comment, error) {
	return r.selectComments(ctx, queryGetByCompany, map[string]interface{}{
		"company": company,
	})
}

func (r *commentsRepository) selectComments(ctx context.Context, namedQuery string, argsKV map[string]interface{}) ([]entity.Comment, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []CommentDB

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("selectComments named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when selecting comments")
		return nil, err
	}

	result := make([]entity.Comment, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}

	return result, nil
}

func (r *commentsRepository) GetBlogMeta(ctx context.Context, blogID string) (BlogMeta, error) {
	requestID := contextPkg.GetRequestID(ctx)

	var row struct {
		Company     sql.NullString `db:"company"`
		Title       sql.NullString `db:"title"`
		IsPublished sql.NullBool   `db:"is_published"`
	}

	argsKV := map[string]interface{}{
		"id": blogID,
	}

	query, args, err := sqlx.Named(queryGetBlogMeta, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogMeta named query preparation err")
		return BlogMeta{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&row); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return BlogMeta{}, comments.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when getting blog meta")
		return BlogMeta{}, err
	}

	return BlogMeta{
		Company:     row.Company.String,
		Title:       row.Title.String,
		IsPublished: row.IsPublished.Bool,
	}, nil
}

func (r *commentsRepository) ApproveComment(ctx context.Context, id string) error {
	return r.execByID(ctx, queryApproveComment, id, "ApproveComment")
}

func (r *commentsRepository) DeleteComment(ctx context.Context, id string) error {
	return r.execByID(ctx, queryDeleteComment, id, "DeleteComment")
}

func (r *commentsRepository) execByID(ctx context.Context, namedQuery string, id string, operation string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Failed to build SQL query")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"operation":  operation,
			"error":      err.Error(),
		}).Error("Database error when executing comment mutation")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return comments.ErrCommentNotFound
	}

	return nil
}
