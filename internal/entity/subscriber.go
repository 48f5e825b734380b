package entity

import "time"

type Subscriber struct {
	ID        string    `db:"id"`
	Email     string    `db:"email"`
	Company   string    `db:"company"`
	CreatedAt time.Time `db:"created_at"`
}
