package blogService

import (
	"Blognest/internal/api/blog"
	"Blognest/internal/entity"
	contextPkg "Blognest/pkg/context"
	"Blognest/pkg/redis"
	"errors"
	"mime/multipart"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

func (s *blogsService) CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, user entity.UserLoginData, imageFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(true)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}
	defer repo.Rollback()

	var imageURL string
	if imageFile != nil {
		if err := s.utils.ValidateImageFile(imageFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid image file")
			return blogs.ErrInvalidFileType
		}

		uploadedURL, err := s.s3Client.UploadFile(imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload image")
			return blogs.ErrFailedToUpload
		}

		imageURL = uploadedURL
	}

	blogID, err := s.utils.NewULIDFromTimestamp(time.Now())
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to generate ULID")
		return err
	}

	now := time.Now()

	blog := entity.Blog{
		ID:          blogID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Author:      user.Email,
		ImageURL:    imageURL,
		Company:     user.Company,
		IsPublished: false,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := repo.Blogs.CreateBlog(ctx, blog); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create blog")
		return blogs.ErrCreateBlog
	}

	if err := repo.Commit(); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to commit transaction")
		return blogs.ErrCreateBlog
	}

	s.invalidateBlogList(user.Company)

	return nil
}

func (s *blogsService) GetBlogByID(ctx context.Context, id string) (blogs.BlogResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return blogs.BlogResponse{}, err
	}

	blog, err := repo.Blogs.GetBlogByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		} else {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
				"error":      err.Error(),
			}).Error("Failed to get blog")
		}
		return blogs.BlogResponse{}, err
	}

	return s.toResponse(ctx, blog), nil
}

func (s *blogsService) ListPublicBlogs(ctx context.Context, query blogs.ListBlogsQuery) (*blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if query.Company == "" {
		return nil, blogs.ErrCompanyRequired
	}

	list, err := s.fetchPublishedBlogs(ctx, query.Company)
	if err != nil {
		return nil, err
	}

	filtered := FilterBlogs(list, query.Search, query.Category)

	s.log.WithFields(logrus.Fields{
		"request_id": requestID,
		"company":    query.Company,
		"fetched":    len(list),
		"filtered":   len(filtered),
	}).Debug("Filtered public blog list")

	return s.toListResponse(ctx, filtered), nil
}

func (s *blogsService) ListCompanyBlogs(ctx context.Context, company string) (*blogs.BlogListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	list, err := repo.Blogs.GetBlogsByCompany(ctx, company)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"company":    company,
			"error":      err.Error(),
		}).Error("Failed to get company blogs")
		return nil, err
	}

	return s.toListResponse(ctx, list), nil
}

func (s *blogsService) GetCategories(ctx context.Context, company string) (*blogs.CategoryListResponse, error) {
	requestID := contextPkg.GetRequestID(ctx)

	if company == "" {
		return nil, blogs.ErrCompanyRequired
	}

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	categories, err := repo.Blogs.GetCategoriesByCompany(ctx, company)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"company":    company,
			"error":      err.Error(),
		}).Error("Failed to get categories")
		return nil, err
	}

	return &blogs.CategoryListResponse{Categories: categories}, nil
}

func (s *blogsService) UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest, user entity.UserLoginData, imageFile *multipart.FileHeader) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	existing, err := s.ownedBlog(ctx, repo.Blogs.GetBlogByID, id, user)
	if err != nil {
		return err
	}

	imageURL := req.ImageURL
	if imageFile != nil {
		if err := s.utils.ValidateImageFile(imageFile); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Warn("Invalid image file")
			return blogs.ErrInvalidFileType
		}

		uploadedURL, err := s.s3Client.UploadFile(imageFile)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"error":      err.Error(),
			}).Error("Failed to upload image")
			return blogs.ErrFailedToUpload
		}

		imageURL = uploadedURL
	}

	updated := entity.Blog{
		ID:          existing.ID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		ImageURL:    imageURL,
		UpdatedAt:   time.Now(),
	}

	if err := repo.Blogs.UpdateBlog(ctx, updated); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to update blog")
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return err
		}
		return blogs.ErrUpdateBlog
	}

	s.invalidateBlogList(user.Company)

	return nil
}

func (s *blogsService) TogglePublish(ctx context.Context, id string, user entity.UserLoginData) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := s.ownedBlog(ctx, repo.Blogs.GetBlogByID, id, user); err != nil {
		return err
	}

	if err := repo.Blogs.TogglePublish(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to toggle publish state")
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return err
		}
		return blogs.ErrUpdateBlog
	}

	s.invalidateBlogList(user.Company)

	return nil
}

func (s *blogsService) DeleteBlog(ctx context.Context, id string, user entity.UserLoginData) error {
	requestID := contextPkg.GetRequestID(ctx)

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return err
	}

	if _, err := s.ownedBlog(ctx, repo.Blogs.GetBlogByID, id, user); err != nil {
		return err
	}

	if err := repo.Blogs.DeleteBlog(ctx, id); err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"error":      err.Error(),
		}).Error("Failed to delete blog")
		if errors.Is(err, blogs.ErrBlogNotFound) {
			return err
		}
		return blogs.ErrDeleteBlog
	}

	s.invalidateBlogList(user.Company)

	return nil
}

func (s *blogsService) ownedBlog(ctx context.Context, getByID func(context.Context, string) (entity.Blog, error), id string, user entity.UserLoginData) (entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	blog, err := getByID(ctx, id)
	if err != nil {
		if errors.Is(err, blogs.ErrBlogNotFound) {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         id,
			}).Warn("Blog not found")
		}
		return entity.Blog{}, err
	}

	if blog.Company != user.Company {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"id":         id,
			"company":    user.Company,
		}).Warn("Blog does not belong to company")
		return entity.Blog{}, blogs.ErrBlogNotOwned
	}

	return blog, nil
}

func (s *blogsService) fetchPublishedBlogs(ctx context.Context, company string) ([]entity.Blog, error) {
	requestID := contextPkg.GetRequestID(ctx)

	cached, err := s.redisServer.GetBlogList(ctx, company)
	if err == nil {
		var list []entity.Blog
		if err := jsoniter.Unmarshal(cached, &list); err == nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"company":    company,
				"count":      len(list),
			}).Debug("Blog list cache hit")
			return list, nil
		}
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"company":    company,
		}).Warn("Failed to decode cached blog list, falling back to database")
	} else if !errors.Is(err, redis.ErrCacheMiss) {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"company":    company,
			"error":      err.Error(),
		}).Warn("Blog list cache unavailable")
	}

	repo, err := s.blogsRepo.NewClient(false)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Error("Failed to create repository client")
		return nil, err
	}

	list, err := repo.Blogs.GetPublishedBlogsByCompany(ctx, company)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": requestID,
			"company":    company,
			"error":      err.Error(),
		}).Error("Failed to get published blogs")
		return nil, err
	}

	if payload, err := jsoniter.Marshal(list); err == nil {
		if err := s.redisServer.SetBlogList(ctx, company, payload, blogCacheTTL); err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"company":    company,
				"error":      err.Error(),
			}).Warn("Failed to cache blog list")
		}
	}

	return list, nil
}

func (s *blogsService) toListResponse(ctx context.Context, list []entity.Blog) *blogs.BlogListResponse {
	response := &blogs.BlogListResponse{
		Blogs: make([]blogs.BlogResponse, 0, len(list)),
		Total: len(list),
	}

	for _, blog := range list {
		response.Blogs = append(response.Blogs, s.toResponse(ctx, blog))
	}

	return response
}

func (s *blogsService) toResponse(ctx context.Context, blog entity.Blog) blogs.BlogResponse {
	requestID := contextPkg.GetRequestID(ctx)

	imageURL := blog.ImageURL
	if imageURL != "" {
		presignedURL, err := s.s3Client.PresignUrl(imageURL)
		if err != nil {
			s.log.WithFields(logrus.Fields{
				"request_id": requestID,
				"id":         blog.ID,
				"image_url":  imageURL,
				"error":      err.Error(),
			}).Warn("Failed to create presigned URL for image")
		} else {
			imageURL = presignedURL
		}
	}

	return blogs.BlogResponse{
		ID:          blog.ID,
		Title:       blog.Title,
		Description: blog.Description,
		Category:    blog.Category,
		Author:      blog.Author,
		ImageURL:    imageURL,
		Company:     blog.Company,
		IsPublished: blog.IsPublished,
		CreatedAt:   blog.CreatedAt,
		UpdatedAt:   blog.UpdatedAt,
	}
}
