package blogs

import "time"

type CreateBlogRequest struct {
	Title       string `json:"title" validate:"required,min=3,max=256"`
	Description string `json:"description" validate:"required"`
	Category    string `json:"category" validate:"required,max=64"`
}

type UpdateBlogRequest struct {
	Title       string `json:"title" validate:"omitempty,min=3,max=256"`
	Description string `json:"description" validate:"omitempty"`
	Category    string `json:"category" validate:"omitempty,max=64"`
	ImageURL    string `json:"image_url" validate:"omitempty"`
}

type ListBlogsQuery struct {
	Company  string
	Search   string
	Category string
}

type BlogResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	ImageURL    string    `json:"image_url"`
	Company     string    `json:"company"`
	IsPublished bool      `json:"is_published"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type BlogListResponse struct {
	Blogs []BlogResponse `json:"blogs"`
	Total int            `json:"total"`
}

type CategoryListResponse struct {
	Categories []string `json:"categories"`
}
