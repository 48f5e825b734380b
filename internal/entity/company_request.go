package entity

import "time"

const (
	RequestStatusPending  = "pending"
	RequestStatusApproved = "approved"
	RequestStatusRejected = "rejected"
)

type CompanyRequest struct {
	ID              string     `db:"id"`
	Fullname        string     `db:"fullname"`
	Company         string     `db:"company"`
	Email           string     `db:"email"`
	BusinessType    string     `db:"business_type"`
	Status          string     `db:"status"`
	RejectionReason string     `db:"rejection_reason"`
	ReviewedBy      string     `db:"reviewed_by"`
	ReviewedAt      *time.Time `db:"reviewed_at"`
	CreatedAt       time.Time  `db:"created_at"`
}
