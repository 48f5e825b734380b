package registrations

import (
	"Blognest/pkg/response"
	"net/http"
)

var (
	ErrRequestNotFound = response.NewError(http.StatusNotFound, "registration request not found")
	ErrAlreadyReviewed = response.NewError(http.StatusConflict, "registration request already reviewed")
	ErrReasonRequired  = response.NewError(http.StatusBadRequest, "rejection reason is required")
	ErrInvalidStatus   = response.NewError(http.StatusBadRequest, "status must be approved or rejected")
	ErrCompanyTaken    = response.NewError(http.StatusConflict, "company name already registered")
	ErrCreateRequest   = response.NewError(http.StatusInternalServerError, "failed to create registration request")
	ErrReviewRequest   = response.NewError(http.StatusInternalServerError, "failed to review registration request")
)
