package entity

import "time"

type Comment struct {
	ID         string    `db:"id"`
	BlogID     string    `db:"blog_id"`
	Name       string    `db:"name"`
	Content    string    `db:"content"`
	IsApproved bool      `db:"is_approved"`
	CreatedAt  time.Time `db:"created_at"`

	// Joined from the blogs table for moderation listings and scope checks.
	BlogTitle   string `db:"blog_title"`
	BlogCompany string `db:"blog_company"`
}
