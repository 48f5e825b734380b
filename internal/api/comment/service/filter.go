package commentService

import (
	"Blognest/internal/api/comment"
	"Blognest/internal/entity"
	"strings"
)

const (
	StatusApproved = "approved"
	StatusPending  = "pending"
)

// FilterComments narrows a tenant's comment set. Status partitions the set
// strictly: every comment is either approved or pending, never both. An empty
// status keeps both partitions. Search matches the blog title, commenter name,
// or content as a case-insensitive substring.
func FilterComments(list []entity.Comment, status string, search string) ([]entity.Comment, error) {
	var wantApproved bool
	switch status {
	case "":
	case StatusApproved:
		wantApproved = true
	case StatusPending:
		wantApproved = false
	default:
		return nil, comments.ErrInvalidStatus
	}

	result := make([]entity.Comment, 0, len(list))
	for _, comment := range list {
		if status != "" && comment.IsApproved != wantApproved {
			continue
		}
		if !matchesSearch(comment, search) {
			continue
		}
		result = append(result, comment)
	}

	return result, nil
}

func matchesSearch(comment entity.Comment, search string) bool {
	if search == "" {
		return true
	}

	q := strings.ToLower(search)
	return strings.Contains(strings.ToLower(comment.BlogTitle), q) ||
		strings.Contains(strings.ToLower(comment.Name), q) ||
		strings.Contains(strings.ToLower(comment.Content), q)
}
