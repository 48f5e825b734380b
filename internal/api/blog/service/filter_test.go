package blogService

import (
	"Blognest/internal/entity"
	"testing"

	"github.com/stretchr/testify/assert"
)

func sampleBlogs() []entity.Blog {
	return []entity.Blog{
		{ID: "1", Title: "Scaling Postgres", Category: "Engineering", Description: "Lessons from our primary database"},
		{ID: "2", Title: "Hiring in 2026", Category: "Culture", Description: "How we grew the team"},
		{ID: "3", Title: "Engineering Onboarding", Category: "Culture", Description: "First weeks at the company"},
		{ID: "4", Title: "Observability Basics", Category: "Engineering", Description: "Metrics, logs and traces"},
	}
}

func TestFilterBlogsNoFilters(t *testing.T) {
	result := FilterBlogs(sampleBlogs(), "", "")
	assert.Len(t, result, 4)
}

func TestFilterBlogsCategoryAll(t *testing.T) {
	result := FilterBlogs(sampleBlogs(), "", CategoryAll)
	assert.Len(t, result, 4)
}

func TestFilterBlogsByCategory(t *testing.T) {
	result := FilterBlogs(sampleBlogs(), "", "Culture")

	assert.Len(t, result, 2)
	for _, blog := range result {
		assert.Equal(t, "Culture", blog.Category)
	}
}

func TestFilterBlogsSearchIsCaseInsensitive(t *testing.T) {
	result := FilterBlogs(sampleBlogs(), "pOsTgReS", "")

	assert.Len(t, result, 1)
	assert.Equal(t, "1", result[0].ID)
}

func TestFilterBlogsSearchMatchesDescription(t *testing.T) {
	result := FilterBlogs(sampleBlogs(), "first weeks", "")

	assert.Len(t, result, 1)
	assert.Equal(t, "3", result[0].ID)
}

func TestFilterBlogsSearchMatchesCategory(t *testing.T) {
	result := FilterBlogs(sampleBlogs(), "engineering", "")

	// "Engineering" appears as a category twice and in one title.
	assert.Len(t, result, 3)
}

func TestFilterBlogsSearchAndCategoryCombine(t *testing.T) {
	result := FilterBlogs(sampleBlogs(), "engineering", "Culture")

	assert.Len(t, result, 1)
	assert.Equal(t, "3", result[0].ID)
}

func TestFilterBlogsNoMatches(t *testing.T) {
	result := FilterBlogs(sampleBlogs(), "kubernetes", "")

	assert.NotNil(t, result)
	assert.Empty(t, result)
}
