package comments

import (
	"Blognest/pkg/response"
	"net/http"
)

var (
	ErrCommentNotFound = response.NewError(http.StatusNotFound, "comment not found")
	ErrBlogNotFound    = response.NewError(http.StatusNotFound, "blog not found")
	ErrCommentNotOwned = response.NewError(http.StatusForbidden, "comment does not belong to company")
	ErrInvalidStatus   = response.NewError(http.StatusBadRequest, "status must be approved or pending")
	ErrCreateComment   = response.NewError(http.StatusInternalServerError, "failed to create comment")
	ErrApproveComment  = response.NewError(http.StatusInternalServerError, "failed to approve comment")
	ErrDeleteComment   = response.NewError(http.StatusInternalServerError, "failed to delete comment")
)
