package subscribers

import "time"

type SubscribeRequest struct {
	Email   string `json:"email" validate:"required,email"`
	Company string `json:"company" validate:"required,max=128"`
}

type SubscriberResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Company   string    `json:"company"`
	CreatedAt time.Time `json:"created_at"`
}

type SubscriberListResponse struct {
	Subscribers []SubscriberResponse `json:"subscribers"`
	Total       int                  `json:"total"`
}
