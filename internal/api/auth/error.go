package auth

import (
	"Blognest/pkg/response"
	"net/http"
)

var (
	ErrInvalidEmailOrPassword = response.NewError(http.StatusBadRequest, "email or password is wrong")
	ErrUserNotFound           = response.NewError(http.StatusNotFound, "user not found")
	ErrWrongOldPassword       = response.NewError(http.StatusBadRequest, "old password is wrong")
	ErrPasswordSame           = response.NewError(http.StatusBadRequest, "password same as before")
)
