package dto

type SignupRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type BookTableRequest struct {
	UserID         string  `json:"user_id" binding:"required,uuid"`
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Datetime       string  `json:"datetime" binding:"required"`
	NoOfPeople     int     `json:"no_of_people" binding:"required,gt=0"`
	SpecialRequest *string `json:"special_request"`
}

type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// The admin add endpoints accept multipart forms; the image part itself is
// read separately from the form fields.

type AddEventForm struct {
	Name        string  `form:"name" binding:"required"`
	Description string  `form:"description" binding:"required"`
	Price       float64 `form:"price" binding:"required"`
}

type AddServiceForm struct {
	Name        string `form:"name" binding:"required"`
	Description string `form:"description" binding:"required"`
}

type AddTeamMemberForm struct {
	Name        string `form:"name" binding:"required"`
	Designation string `form:"designation" binding:"required"`
	Description string `form:"description" binding:"required"`
}
