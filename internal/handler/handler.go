package handler

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/tahir826/restweb/internal/domain"
	"github.com/tahir826/restweb/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

type UserSvc interface {
	Signup(ctx context.Context, input domain.SignupInput) (*domain.User, error)
	Login(ctx context.Context, input domain.LoginInput) (*domain.User, error)
}

type BookingSvc interface {
	Create(ctx context.Context, input domain.CreateBookingInput) error
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
}

type ContactSvc interface {
	Submit(ctx context.Context, input domain.ContactInput) error
}

type CatalogSvc interface {
	AddEvent(ctx context.Context, input domain.CreateEventInput, filename string, pic io.Reader) error
	ListEvents(ctx context.Context) ([]*domain.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
	AddService(ctx context.Context, input domain.CreateServiceInput, filename string, image io.Reader) error
	ListServices(ctx context.Context) ([]*domain.Service, error)
	DeleteService(ctx context.Context, id int64) error
	AddTeamMember(ctx context.Context, input domain.CreateTeamMemberInput, filename string, image io.Reader) error
	ListTeamMembers(ctx context.Context) ([]*domain.TeamMember, error)
	DeleteTeamMember(ctx context.Context, id int64) error
}

type Handler struct {
	userService    UserSvc
	bookingService BookingSvc
	contactService ContactSvc
	catalogService CatalogSvc
}

func NewHandler(userService UserSvc, bookingService BookingSvc, contactService ContactSvc, catalogService CatalogSvc) *Handler {
	return &Handler{
		userService:    userService,
		bookingService: bookingService,
		contactService: contactService,
		catalogService: catalogService,
	}
}

// Users

func (h *Handler) Signup(c *ginext.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Signup(c.Request.Context(), domain.SignupInput{
		Email:    req.Email,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.SignupResponse{
		Message: "User registered successfully.",
		UserID:  user.UserID,
	})
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.userService.Login(c.Request.Context(), domain.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		User:    dto.ToUserPayload(user),
	})
}

// Bookings

func (h *Handler) BookTable(c *ginext.Context) {
	var req dto.BookTableRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	when, err := parseBookingTime(req.Datetime)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "invalid datetime format, expected ISO-8601")
		return
	}

	input := domain.CreateBookingInput{
		UserID:         req.UserID,
		Name:           req.Name,
		Email:          req.Email,
		Datetime:       when,
		NoOfPeople:     req.NoOfPeople,
		SpecialRequest: req.SpecialRequest,
	}

	if err := h.bookingService.Create(c.Request.Context(), input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Table booked successfully."})
}

func (h *Handler) GetBookings(c *ginext.Context) {
	userID := c.Param("user_id")
	if _, err := uuid.Parse(userID); err != nil {
		h.respondError(c, http.StatusBadRequest, "invalid user id")
		return
	}

	bookings, err := h.bookingService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.BookingsResponse{
		UserID:   userID,
		Bookings: make([]dto.BookingPayload, 0, len(bookings)),
	}
	for _, b := range bookings {
		resp.Bookings = append(resp.Bookings, dto.ToBookingPayload(b))
	}

	c.JSON(http.StatusOK, resp)
}

// Contact

func (h *Handler) ContactUs(c *ginext.Context) {
	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	input := domain.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.contactService.Submit(c.Request.Context(), input); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{
		Message: "Thank you for reaching out to us. We will get back to you soon!",
	})
}

// Admin: events

func (h *Handler) AddEvent(c *ginext.Context) {
	var form dto.AddEventForm
	if err := c.ShouldBind(&form); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	fileHeader, err := c.FormFile("pic")
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "picture file is required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, fmt.Sprintf("open uploaded file: %v", err))
		return
	}
	defer src.Close()

	input := domain.CreateEventInput{
		Name:        form.Name,
		Description: form.Description,
		Price:       form.Price,
	}

	if err := h.catalogService.AddEvent(c.Request.Context(), input, fileHeader.Filename, src); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Event added successfully!"})
}

func (h *Handler) GetAllEvents(c *ginext.Context) {
	events, err := h.catalogService.ListEvents(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.EventsResponse{Events: make([]dto.EventPayload, 0, len(events))}
	for _, e := range events {
		resp.Events = append(resp.Events, dto.ToEventPayload(e))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteEvent(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Event deleted successfully."})
}

// Admin: services

func (h *Handler) AddService(c *ginext.Context) {
	var form dto.AddServiceForm
	if err := c.ShouldBind(&form); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "image file is required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, fmt.Sprintf("open uploaded file: %v", err))
		return
	}
	defer src.Close()

	input := domain.CreateServiceInput{
		Name:        form.Name,
		Description: form.Description,
	}

	if err := h.catalogService.AddService(c.Request.Context(), input, fileHeader.Filename, src); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Service added successfully!"})
}

func (h *Handler) GetAllServices(c *ginext.Context) {
	services, err := h.catalogService.ListServices(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.ServicesResponse{Services: make([]dto.ServicePayload, 0, len(services))}
	for _, s := range services {
		resp.Services = append(resp.Services, dto.ToServicePayload(s))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteService(c *ginext.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Service deleted successfully."})
}

// Admin: team members

func (h *Handler) AddTeamMember(c *ginext.Context) {
	var form dto.AddTeamMemberForm
	if err := c.ShouldBind(&form); err != nil {
		h.respondError(c, http.StatusBadRequest, err.Error())
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "image file is required")
		return
	}

	src, err := fileHeader.Open()
	if err != nil {
		h.respondError(c, http.StatusInternalServerError, fmt.Sprintf("open uploaded file: %v", err))
		return
	}
	defer src.Close()

	input := domain.CreateTeamMemberInput{
		Name:        form.Name,
		Designation: form.Designation,
		Description: form.Description,
	}

	if err := h.catalogService.AddTeamMember(c.Request.Context(), input, fileHeader.Filename, src); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Team member added successfully!"})
}

func (h *Handler) GetAllTeamMembers(c *ginext.Context) {
	members, err := h.catalogService.ListTeamMembers(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := dto.TeamMembersResponse{TeamMembers: make([]dto.TeamMemberPayload, 0, len(members))}
	for _, m := range members {
		resp.TeamMembers = append(resp.TeamMembers, dto.ToTeamMemberPayload(m))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) DeleteTeamMember(c *ginext.Context) {
	id, ok := h.pathID(c)
	if !ok {
		return
	}

	if err := h.catalogService.DeleteTeamMember(c.Request.Context(), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Team member deleted successfully."})
}

func (h *Handler) pathID(c *ginext.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.respondError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) respondError(c *ginext.Context, code int, message string) {
	c.JSON(code, dto.ErrorResponse{
		Error:   http.StatusText(code),
		Message: message,
	})
}

func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrNoBookings),
		errors.Is(err, domain.ErrNoEvents),
		errors.Is(err, domain.ErrNoServices),
		errors.Is(err, domain.ErrNoTeamMembers),
		errors.Is(err, domain.ErrEventNotFound),
		errors.Is(err, domain.ErrServiceNotFound),
		errors.Is(err, domain.ErrTeamMemberNotFound),
		errors.Is(err, domain.ErrUserNotFound):
		h.respondError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, domain.ErrEmailTaken),
		errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrValidation):
		h.respondError(c, http.StatusBadRequest, err.Error())

	default:
		h.respondError(c, http.StatusInternalServerError, fmt.Sprintf("an error occurred: %v", err))
	}
}

// parseBookingTime accepts ISO-8601 timestamps. Values with an offset are
// converted to UTC; timezone-naive values are taken as already being UTC.
func parseBookingTime(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339Nano, value); err == nil {
		return t.UTC(), nil
	}

	naive := []string{
		"2006-01-02T15:04:05.999999999",
		"2006-01-02 15:04:05.999999999",
	}
	for _, layout := range naive {
		if t, err := time.ParseInLocation(layout, value, time.UTC); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("parse %q as ISO-8601 timestamp", value)
}
