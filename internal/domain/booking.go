package domain

import "time"

type Booking struct {
	ID             int64     `json:"-"`
	UserID         string    `json:"user_id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Datetime       time.Time `json:"datetime"`
	NoOfPeople     int       `json:"no_of_people"`
	SpecialRequest *string   `json:"special_request"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateBookingInput struct {
	UserID         string
	Name           string
	Email          string
	Datetime       time.Time
	NoOfPeople     int
	SpecialRequest *string
}
