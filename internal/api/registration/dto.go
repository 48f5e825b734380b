package registrations

import "time"

type CreateRequestRequest struct {
	Fullname     string `json:"fullname" validate:"required,min=3,max=128"`
	Company      string `json:"company" validate:"required,min=2,max=128"`
	Email        string `json:"email" validate:"required,email"`
	BusinessType string `json:"business_type" validate:"required,max=64"`
}

type ReviewRequestRequest struct {
	Status          string `json:"status" validate:"required,oneof=approved rejected"`
	RejectionReason string `json:"rejection_reason" validate:"omitempty,max=512"`
}

type RequestResponse struct {
	ID              string     `json:"id"`
	Fullname        string     `json:"fullname"`
	Company         string     `json:"company"`
	Email           string     `json:"email"`
	BusinessType    string     `json:"business_type"`
	Status          string     `json:"status"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	ReviewedBy      string     `json:"reviewed_by,omitempty"`
	ReviewedAt      *time.Time `json:"reviewed_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type RequestListResponse struct {
	Requests []RequestResponse `json:"requests"`
	Total    int               `json:"total"`
}
