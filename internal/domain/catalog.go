package domain

import "time"

// The three admin catalogs share the same lifecycle: create with an uploaded
// image, list all, delete by id. Field names follow the public API
// (pic_path for events, image_path for the rest).

type Event struct {
	ID          int64     `json:"id"`
	PicPath     string    `json:"pic_path"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	CreatedAt   time.Time `json:"created_at"`
}

type Service struct {
	ID          int64     `json:"id"`
	ImagePath   string    `json:"image_path"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type TeamMember struct {
	ID          int64     `json:"id"`
	ImagePath   string    `json:"image_path"`
	Name        string    `json:"name"`
	Designation string    `json:"designation"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type CreateEventInput struct {
	Name        string
	Description string
	Price       float64
}

type CreateServiceInput struct {
	Name        string
	Description string
}

type CreateTeamMemberInput struct {
	Name        string
	Designation string
	Description string
}
