package blogService

import (
	"Blognest/internal/entity"
	"strings"
)

// CategoryAll disables category filtering when passed as the category value.
const CategoryAll = "All"

// FilterBlogs narrows an already-fetched list: a post survives when its
// category matches (or the filter is "All"/empty) and the search term is a
// case-insensitive substring of its title, category, or description.
func FilterBlogs(list []entity.Blog, search string, category string) []entity.Blog {
	result := make([]entity.Blog, 0, len(list))
	for _, blog := range list {
		if !matchesCategory(blog, category) {
			continue
		}
		if !matchesSearch(blog, search) {
			continue
		}
		result = append(result, blog)
	}
	return result
}

func matchesCategory(blog entity.Blog, category string) bool {
	if category == "" || category == CategoryAll {
		return true
	}
	return blog.Category == category
}

func matchesSearch(blog entity.Blog, search string) bool {
	if search == "" {
		return true
	}

	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(blog.Title), q) ||
		strings.Contains(strings.ToLower(blog.Category), q) ||
		strings.Contains(strings.ToLower(blog.Description), q)
}
