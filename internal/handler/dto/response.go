package dto

import (
	"time"

	"github.com/tahir826/restweb/internal/domain"
)

// bookingTimeLayout keeps the explicit +00:00 offset on stored-in-UTC
// booking times instead of RFC3339's Z suffix.
const bookingTimeLayout = "2006-01-02T15:04:05-07:00"

type MessageResponse struct {
	Message string `json:"message"`
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	User    UserPayload `json:"user"`
}

type UserPayload struct {
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Username string `json:"username"`
}

type BookingsResponse struct {
	UserID   string           `json:"user_id"`
	Bookings []BookingPayload `json:"bookings"`
}

type BookingPayload struct {
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Datetime       string  `json:"datetime"`
	NoOfPeople     int     `json:"no_of_people"`
	SpecialRequest *string `json:"special_request"`
}

type EventsResponse struct {
	Events []EventPayload `json:"events"`
}

type EventPayload struct {
	ID          int64   `json:"id"`
	PicPath     string  `json:"pic_path"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	CreatedAt   string  `json:"created_at"`
}

type ServicesResponse struct {
	Services []ServicePayload `json:"services"`
}

type ServicePayload struct {
	ID          int64  `json:"id"`
	ImagePath   string `json:"image_path"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type TeamMembersResponse struct {
	TeamMembers []TeamMemberPayload `json:"team_members"`
}

type TeamMemberPayload struct {
	ID          int64  `json:"id"`
	ImagePath   string `json:"image_path"`
	Name        string `json:"name"`
	Designation string `json:"designation"`
	Description string `json:"description"`
	CreatedAt   string `json:"created_at"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func ToUserPayload(u *domain.User) UserPayload {
	return UserPayload{
		UserID:   u.UserID,
		Email:    u.Email,
		Username: u.Username,
	}
}

func ToBookingPayload(b *domain.Booking) BookingPayload {
	return BookingPayload{
		Name:           b.Name,
		Email:          b.Email,
		Datetime:       b.Datetime.UTC().Format(bookingTimeLayout),
		NoOfPeople:     b.NoOfPeople,
		SpecialRequest: b.SpecialRequest,
	}
}

func ToEventPayload(e *domain.Event) EventPayload {
	return EventPayload{
		ID:          e.ID,
		PicPath:     e.PicPath,
		Name:        e.Name,
		Description: e.Description,
		Price:       e.Price,
		CreatedAt:   e.CreatedAt.Format(time.RFC3339),
	}
}

func ToServicePayload(s *domain.Service) ServicePayload {
	return ServicePayload{
		ID:          s.ID,
		ImagePath:   s.ImagePath,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt.Format(time.RFC3339),
	}
}

func ToTeamMemberPayload(m *domain.TeamMember) TeamMemberPayload {
	return TeamMemberPayload{
		ID:          m.ID,
		ImagePath:   m.ImagePath,
		Name:        m.Name,
		Designation: m.Designation,
		Description: m.Description,
		CreatedAt:   m.CreatedAt.Format(time.RFC3339),
	}
}
