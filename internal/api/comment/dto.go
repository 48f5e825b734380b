package comments

import "time"

type CreateCommentRequest struct {
	BlogID  string `json:"blog_id" validate:"required"`
	Name    string `json:"name" validate:"required,min=2,max=128"`
	Content string `json:"content" validate:"required,max=2000"`
}

type ModerationQuery struct {
	Status string
	Search string
}

type CommentResponse struct {
	ID         string    `json:"id"`
	BlogID     string    `json:"blog_id"`
	BlogTitle  string    `json:"blog_title,omitempty"`
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	IsApproved bool      `json:"is_approved"`
	CreatedAt  time.Time `json:"created_at"`
}

type CommentListResponse struct {
	Comments []CommentResponse `json:"comments"`
	Total    int               `json:"total"`
}
