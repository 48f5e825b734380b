package blogRepository

import (
	"Blognest/internal/api/blog"
	"Blognest/internal/entity"
	contextPkg "Blognest/pkg/context"
	"context"
	"database/sql"
	"errors"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"time"
)

type BlogDB struct {
	ID          sql.NullString `db:"id"`
	Title       sql.NullString `db:"title"`
	Description sql.NullString `db:"description"`
	Category    sql.NullString `db:"category"`
	Author      sql.NullString `db:"author"`
	ImageURL    sql.NullString `db:"image_url"`
	Company     sql.NullString `db:"company"`
	IsPublished sql.NullBool   `db:"is_published"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func (b BlogDB) toEntity() entity.Blog {
	return entity.Blog{
		ID:          b.ID.String,
		Title:       b.Title.String,
		Description: b.Description.String,
		Category:    b.Category.String,
		Author:      b.Author.String,
		ImageURL:    b.ImageURL.String,
		Company:     b.Company.String,
		IsPublished: b.IsPublished.Bool,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func (r *blogsRepository) CreateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":           blog.ID,
		"title":        blog.Title,
		"description":  blog.Description,
		"category":     blog.Category,
		"author":       blog.Author,
		"image_url":    blog.ImageURL,
		"company":      blog.Company,
		"is_published": blog.IsPublished,
		"created_at":   blog.CreatedAt,
		"updated_at":   blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryCreateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for CreateBlog")
		return err
	}
	query = r.q.Rebind(query)

	_, err = r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when creating blog")
		return err
	}

	return nil
}

func (r *blogsRepository) GetBlogByID(ctx context.Context, id string) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var blog BlogDB

	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryGetBlogByID, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetBlogByID named query preparation err")
		return entity.Blog{}, err
	}

	query = r.q.Rebind(query)

	if err := r.q.QueryRowxContext(ctx, query, args...).StructScan(&blog); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("GetBlogByID no rows found")
			return entity.Blog{}, blogs.ErrBlogNotFound
		}
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when getting blog by ID")
		return entity.Blog{}, err
	}

	return blog.toEntity(), nil
}

func (r *blogsRepository) GetBlogsByCompany(ctx context.Context, company string) ([]entity.Blog, error) {
	return r.selectBlogs(ctx, queryGetBlogsByCompany, company)
}

func (r *blogsRepository) GetPublishedBlogsByCompany(ctx context.Context, company string) ([]entity.Blog, error) {
	return r.selectBlogs(ctx, queryGetPublishedBlogsByCompany, company)
}

func (r *blogsRepository) selectBlogs(ctx context.Context, namedQuery string, company string) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var rows []BlogDB

	argsKV := map[string]interface{}{
		"company": company,
	}

	query, args, err := sqlx.Named(namedQuery, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("selectBlogs named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &rows, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"company":    company,
			"error":      err.Error(),
		}).Error("Database error when selecting blogs")
		return nil, err
	}

	result := make([]entity.Blog, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toEntity())
	}

	return result, nil
}

func (r *blogsRepository) GetCategoriesByCompany(ctx context.Context, company string) ([]string, error) {
	requestID := contextPkg.GetRequestID(ctx)
	var categories []string

	argsKV := map[string]interface{}{
		"company": company,
	}

	query, args, err := sqlx.Named(queryGetCategoriesByCompany, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("GetCategoriesByCompany named query preparation err")
		return nil, err
	}

	query = r.q.Rebind(query)

	if err := r.q.SelectContext(ctx, &categories, query, args...); err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"company":    company,
			"error":      err.Error(),
		}).Error("Database error when selecting categories")
		return nil, err
	}

	return categories, nil
}

func (r *blogsRepository) UpdateBlog(ctx context.Context, blog entity.Blog) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":          blog.ID,
		"title":       blog.Title,
		"description": blog.Description,
		"category":    blog.Category,
		"image_url":   blog.ImageURL,
		"updated_at":  blog.UpdatedAt,
	}

	query, args, err := sqlx.Named(queryUpdateBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for UpdateBlog")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when updating blog")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) TogglePublish(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id":         id,
		"updated_at": time.Now(),
	}

	query, args, err := sqlx.Named(queryTogglePublish, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for TogglePublish")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when toggling publish")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return blogs.ErrBlogNotFound
	}

	return nil
}

func (r *blogsRepository) DeleteBlog(ctx context.Context, id string) error {
	requestID := contextPkg.GetRequestID(ctx)
	argsKV := map[string]interface{}{
		"id": id,
	}

	query, args, err := sqlx.Named(queryDeleteBlog, argsKV)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to build SQL query for DeleteBlog")
		return err
	}
	query = r.q.Rebind(query)

	result, err := r.q.ExecContext(ctx, query, args...)
	if err != nil {
		r.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Database error when deleting blog")
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return blogs.ErrBlogNotFound
	}

	return nil
}
