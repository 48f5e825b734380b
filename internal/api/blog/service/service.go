package blogService

import (
	"Blognest/internal/api/blog"
	blogRepository "Blognest/internal/api/blog/repository"
	"Blognest/internal/entity"
	"Blognest/pkg/debounce"
	"Blognest/pkg/redis"
	"Blognest/pkg/s3"
	"Blognest/pkg/utils"
	"context"
	"mime/multipart"
	"time"

	"github.com/sirupsen/logrus"
)

const (
	blogCacheTTL       = 5 * time.Minute
	invalidationSettle = 300 * time.Millisecond
)

type IBlogsService interface {
	CreateBlog(ctx context.Context, req blogs.CreateBlogRequest, user entity.UserLoginData, imageFile *multipart.FileHeader) error
	GetBlogByID(ctx context.Context, id string) (blogs.BlogResponse, error)
	ListPublicBlogs(ctx context.Context, query blogs.ListBlogsQuery) (*blogs.BlogListResponse, error)
	ListCompanyBlogs(ctx context.Context, company string) (*blogs.BlogListResponse, error)
	GetCategories(ctx context.Context, company string) (*blogs.CategoryListResponse, error)
	UpdateBlog(ctx context.Context, id string, req blogs.UpdateBlogRequest, user entity.UserLoginData, imageFile *multipart.FileHeader) error
	TogglePublish(ctx context.Context, id string, user entity.UserLoginData) error
	DeleteBlog(ctx context.Context, id string, user entity.UserLoginData) error
}

type blogsService struct {
	log         *logrus.Logger
	blogsRepo   blogRepository.Repository
	s3Client    s3.ItfS3
	redisServer redis.IRedis
	utils       utils.IUtils
	invalidator *debounce.Group
}

func NewBlogsService(
	log *logrus.Logger,
	blogsRepo blogRepository.Repository,
	s3Client s3.ItfS3,
	redisServer redis.IRedis,
	utilsInstance utils.IUtils,
) IBlogsService {
	s := &blogsService{
		log:         log,
		blogsRepo:   blogsRepo,
		s3Client:    s3Client,
		redisServer: redisServer,
		utils:       utilsInstance,
	}

	// Rapid mutation bursts on the same tenant collapse their trailing
	// drops into one.
	s.invalidator = debounce.NewGroup(invalidationSettle, s.dropBlogListCache)

	return s
}

func (s *blogsService) dropBlogListCache(company string) {
	if err := s.redisServer.InvalidateBlogList(context.Background(), company); err != nil {
		s.log.WithFields(logrus.Fields{
			"company": company,
			"error":   err.Error(),
		}).Warn("Failed to invalidate blog list cache")
	}
}

// invalidateBlogList drops the tenant's cached list before the mutation
// returns, so the next fetch misses the cache. The debounced trailing
// drop clears a racing read that refilled the cache mid-burst.
func (s *blogsService) invalidateBlogList(company string) {
	s.dropBlogListCache(company)
	s.invalidator.Trigger(company)
}
