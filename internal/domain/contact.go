package domain

import "time"

// ContactMessage is write-only: the service inserts it and never reads it back.
type ContactMessage struct {
	ID        int64     `json:"-"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactInput struct {
	Name    string
	Email   string
	Subject string
	Message string
}
