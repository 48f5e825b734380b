package blogs

import (
	"Blognest/pkg/response"
	"net/http"
)

var (
	ErrBlogNotFound    = response.NewError(http.StatusNotFound, "blog not found")
	ErrCompanyRequired = response.NewError(http.StatusBadRequest, "company is required")
	ErrCreateBlog      = response.NewError(http.StatusInternalServerError, "failed to create blog")
	ErrUpdateBlog      = response.NewError(http.StatusInternalServerError, "failed to update blog")
	ErrDeleteBlog      = response.NewError(http.StatusInternalServerError, "failed to delete blog")
	ErrInvalidFileType = response.NewError(http.StatusBadRequest, "invalid file type")
	ErrFailedToUpload  = response.NewError(http.StatusInternalServerError, "failed to upload file")
	ErrBlogNotOwned    = response.NewError(http.StatusForbidden, "blog does not belong to company")
)
