package blogService

import (
	"Blognest/internal/api/blog"
	blogRepository "Blognest/internal/api/blog/repository"
	"Blognest/internal/entity"
	"Blognest/pkg/redis"
	"Blognest/pkg/utils"
	"context"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeBlogStore struct {
	blogs          []entity.Blog
	publishedCalls int
}

func (f *fakeBlogStore) CreateBlog(_ context.Context, blog entity.Blog) error {
	f.blogs = append(f.blogs, blog)
	return nil
}

func (f *fakeBlogStore) GetBlogByID(_ context.Context, id string) (entity.Blog, error) {
	for _, blog := range f.blogs {
		if blog.ID == id {
			return blog, nil
		}
	}
	return entity.Blog{}, blogs.ErrBlogNotFound
}

func (f *fakeBlogStore) GetBlogsByCompany(_ context.Context, company string) ([]entity.Blog, error) {
	result := make([]entity.Blog, 0)
	for _, blog := range f.blogs {
		if blog.Company == company {
			result = append(result, blog)
		}
	}
	return result, nil
}

func (f *fakeBlogStore) GetPublishedBlogsByCompany(_ context.Context, company string) ([]entity.Blog, error) {
	f.publishedCalls++
	result := make([]entity.Blog, 0)
	for _, blog := range f.blogs {
		if blog.Company == company && blog.IsPublished {
			result = append(result, blog)
		}
	}
	return result, nil
}

func (f *fakeBlogStore) GetCategoriesByCompany(_ context.Context, company string) ([]string, error) {
	seen := map[string]bool{}
	var result []string
	for _, blog := range f.blogs {
		if blog.Company == company && blog.IsPublished && !seen[blog.Category] {
			seen[blog.Category] = true
			result = append(result, blog.Category)
		}
	}
	return result, nil
}

func (f *fakeBlogStore) UpdateBlog(_ context.Context, updated entity.Blog) error {
	for i, blog := range f.blogs {
		if blog.ID == updated.ID {
			f.blogs[i] = updated
			return nil
		}
	}
	return blogs.ErrBlogNotFound
}

func (f *fakeBlogStore) TogglePublish(_ context.Context, id string) error {
	for i, blog := range f.blogs {
		if blog.ID == id {
			f.blogs[i].IsPublished = !blog.IsPublished
			return nil
		}
	}
	return blogs.ErrBlogNotFound
}

func (f *fakeBlogStore) DeleteBlog(_ context.Context, id string) error {
	for i, blog := range f.blogs {
		if blog.ID == id {
			f.blogs = append(f.blogs[:i], f.blogs[i+1:]...)
			return nil
		}
	}
	return blogs.ErrBlogNotFound
}

type fakeBlogRepo struct {
	store *fakeBlogStore
}

func (f *fakeBlogRepo) NewClient(_ bool) (blogRepository.Client, error) {
	return blogRepository.Client{
		Blogs:    f.store,
		Commit:   func() error { return nil },
		Rollback: func() error { return nil },
	}, nil
}

type fakeCache struct {
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (f *fakeCache) SetBlogList(_ context.Context, company string, payload []byte, _ time.Duration) error {
	f.entries[company] = payload
	return nil
}

func (f *fakeCache) GetBlogList(_ context.Context, company string) ([]byte, error) {
	payload, ok := f.entries[company]
	if !ok {
		return nil, redis.ErrCacheMiss
	}
	return payload, nil
}

func (f *fakeCache) InvalidateBlogList(_ context.Context, company string) error {
	delete(f.entries, company)
	return nil
}

type fakeStorage struct{}

func (fakeStorage) UploadFile(_ *multipart.FileHeader) (string, error) { return "object-key", nil }
func (fakeStorage) PresignUrl(fileName string) (string, error) {
	return "https://cdn.example.com/" + fileName, nil
}
func (fakeStorage) DeleteFile(_ string) error { return nil }

func newTestBlogService(store *fakeBlogStore, cache *fakeCache) IBlogsService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewBlogsService(logger, &fakeBlogRepo{store: store}, fakeStorage{}, cache, utils.New())
}

func seedStore() *fakeBlogStore {
	return &fakeBlogStore{blogs: []entity.Blog{
		{ID: "1", Title: "Launch Notes", Category: "Product", Company: "acme", IsPublished: true},
		{ID: "2", Title: "Roadmap", Category: "Product", Company: "acme", IsPublished: true},
		{ID: "3", Title: "Retro", Category: "Culture", Company: "acme", IsPublished: true},
		{ID: "4", Title: "Draft Post", Category: "Product", Company: "acme", IsPublished: false},
		{ID: "5", Title: "Other Tenant", Category: "Product", Company: "globex", IsPublished: true},
		{ID: "6", Title: "Other Draft", Category: "Product", Company: "globex", IsPublished: false},
	}}
}

func TestListPublicBlogsReturnsOnlyPublishedForCompany(t *testing.T) {
	svc := newTestBlogService(seedStore(), newFakeCache())

	result, err := svc.ListPublicBlogs(context.Background(), blogs.ListBlogsQuery{Company: "acme"})
	require.NoError(t, err)

	assert.Equal(t, 3, result.Total)
	for _, blog := range result.Blogs {
		assert.Equal(t, "acme", blog.Company)
		assert.True(t, blog.IsPublished)
	}
}

func TestListPublicBlogsRequiresCompany(t *testing.T) {
	svc := newTestBlogService(seedStore(), newFakeCache())

	_, err := svc.ListPublicBlogs(context.Background(), blogs.ListBlogsQuery{})
	assert.ErrorIs(t, err, blogs.ErrCompanyRequired)
}

func TestListPublicBlogsAppliesSearchAndCategory(t *testing.T) {
	svc := newTestBlogService(seedStore(), newFakeCache())

	result, err := svc.ListPublicBlogs(context.Background(), blogs.ListBlogsQuery{
		Company:  "acme",
		Category: "Product",
		Search:   "roadmap",
	})
	require.NoError(t, err)

	require.Equal(t, 1, result.Total)
	assert.Equal(t, "2", result.Blogs[0].ID)
}

func TestListPublicBlogsServesSecondCallFromCache(t *testing.T) {
	store := seedStore()
	svc := newTestBlogService(store, newFakeCache())

	_, err := svc.ListPublicBlogs(context.Background(), blogs.ListBlogsQuery{Company: "acme"})
	require.NoError(t, err)

	_, err = svc.ListPublicBlogs(context.Background(), blogs.ListBlogsQuery{Company: "acme"})
	require.NoError(t, err)

	assert.Equal(t, 1, store.publishedCalls)
}

func TestTogglePublishIsVisibleToNextList(t *testing.T) {
	store := seedStore()
	svc := newTestBlogService(store, newFakeCache())

	result, err := svc.ListPublicBlogs(context.Background(), blogs.ListBlogsQuery{Company: "acme"})
	require.NoError(t, err)
	require.Equal(t, 3, result.Total)

	err = svc.TogglePublish(context.Background(), "1", entity.UserLoginData{Company: "acme"})
	require.NoError(t, err)

	result, err = svc.ListPublicBlogs(context.Background(), blogs.ListBlogsQuery{Company: "acme"})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
}

func TestTogglePublishRejectsForeignTenant(t *testing.T) {
	svc := newTestBlogService(seedStore(), newFakeCache())

	err := svc.TogglePublish(context.Background(), "1", entity.UserLoginData{Company: "globex"})
	assert.ErrorIs(t, err, blogs.ErrBlogNotOwned)
}

func TestDeleteBlogRemovesOwnedPost(t *testing.T) {
	store := seedStore()
	svc := newTestBlogService(store, newFakeCache())

	err := svc.DeleteBlog(context.Background(), "1", entity.UserLoginData{Company: "acme"})
	require.NoError(t, err)

	_, err = store.GetBlogByID(context.Background(), "1")
	assert.ErrorIs(t, err, blogs.ErrBlogNotFound)
}

func TestGetCategoriesRequiresCompany(t *testing.T) {
	svc := newTestBlogService(seedStore(), newFakeCache())

	_, err := svc.GetCategories(context.Background(), "")
	assert.ErrorIs(t, err, blogs.ErrCompanyRequired)
}
