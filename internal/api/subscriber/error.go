package subscribers

import (
	"Blognest/pkg/response"
	"net/http"
)

var (
	ErrSubscriberNotFound = response.NewError(http.StatusNotFound, "subscriber not found")
	ErrAlreadySubscribed  = response.NewError(http.StatusConflict, "email already subscribed")
	ErrSubscriberNotOwned = response.NewError(http.StatusForbidden, "subscriber does not belong to company")
	ErrCreateSubscriber   = response.NewError(http.StatusInternalServerError, "failed to create subscriber")
	ErrDeleteSubscriber   = response.NewError(http.StatusInternalServerError, "failed to delete subscriber")
)
