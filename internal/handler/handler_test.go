package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/tahir826/restweb/internal/domain"
	"github.com/tahir826/restweb/internal/handler/dto"
	hmocks "github.com/tahir826/restweb/internal/handler/mocks"
	"github.com/wb-go/wbf/ginext"
)

func setupRouter(t *testing.T) (*hmocks.MockUserSvc, *hmocks.MockBookingSvc, *hmocks.MockContactSvc, *hmocks.MockCatalogSvc, http.Handler) {
	t.Helper()
	userSvc := hmocks.NewMockUserSvc(t)
	bookingSvc := hmocks.NewMockBookingSvc(t)
	contactSvc := hmocks.NewMockContactSvc(t)
	catalogSvc := hmocks.NewMockCatalogSvc(t)

	h := NewHandler(userSvc, bookingSvc, contactSvc, catalogSvc)

	r := ginext.New("test")
	r.POST("/signup", h.Signup)
	r.POST("/login", h.Login)
	r.POST("/book-table", h.BookTable)
	r.GET("/get-bookings/:user_id", h.GetBookings)
	r.POST("/contact-us", h.ContactUs)
	admin := r.Group("/admin")
	{
		admin.POST("/add-event", h.AddEvent)
		admin.GET("/get-all-events", h.GetAllEvents)
		admin.DELETE("/delete-event/:id", h.DeleteEvent)
		admin.POST("/add-service", h.AddService)
		admin.GET("/get-all-services", h.GetAllServices)
		admin.DELETE("/delete-service/:id", h.DeleteService)
		admin.POST("/add-team-member", h.AddTeamMember)
		admin.GET("/get-all-team-members", h.GetAllTeamMembers)
		admin.DELETE("/delete-team-member/:id", h.DeleteTeamMember)
	}

	return userSvc, bookingSvc, contactSvc, catalogSvc, r
}

func postJSON(t *testing.T, r http.Handler, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	fw, err := mw.CreateFormFile(fileField, filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte("image-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return buf, mw.FormDataContentType()
}

// --- Users ---

func TestHandler_Signup_Success(t *testing.T) {
	userSvc, _, _, _, r := setupRouter(t)

	user := &domain.User{UserID: uuid.New().String(), Email: "guest@example.com", Username: "guest"}
	userSvc.EXPECT().Signup(mock.Anything, mock.Anything).Return(user, nil)

	w := postJSON(t, r, "/signup", dto.SignupRequest{
		Email:    "guest@example.com",
		Username: "guest",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SignupResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, user.UserID, resp.UserID)
	assert.Equal(t, "User registered successfully.", resp.Message)
	assert.NotContains(t, w.Body.String(), "password")
}

func TestHandler_Signup_EmailTaken(t *testing.T) {
	userSvc, _, _, _, r := setupRouter(t)

	userSvc.EXPECT().Signup(mock.Anything, mock.Anything).Return(nil, domain.ErrEmailTaken)

	w := postJSON(t, r, "/signup", dto.SignupRequest{
		Email:    "guest@example.com",
		Username: "guest",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Signup_InvalidEmail(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := postJSON(t, r, "/signup", dto.SignupRequest{
		Email:    "not-an-email",
		Username: "guest",
		Password: "s3cret",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Login_Success(t *testing.T) {
	userSvc, _, _, _, r := setupRouter(t)

	user := &domain.User{
		UserID:       "u1",
		Email:        "guest@example.com",
		Username:     "guest",
		PasswordHash: "$2a$10$secret-digest",
	}
	userSvc.EXPECT().Login(mock.Anything, mock.Anything).Return(user, nil)

	w := postJSON(t, r, "/login", dto.LoginRequest{Email: "guest@example.com", Password: "s3cret"})

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "u1", resp.User.UserID)
	assert.Equal(t, "guest", resp.User.Username)
	// The digest must never leak through the login payload.
	assert.NotContains(t, w.Body.String(), "secret-digest")
}

func TestHandler_Login_InvalidCredentials(t *testing.T) {
	userSvc, _, _, _, r := setupRouter(t)

	userSvc.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidCredentials)

	w := postJSON(t, r, "/login", dto.LoginRequest{Email: "guest@example.com", Password: "wrong"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Bookings ---

func TestHandler_BookTable_NaiveDatetimeAssumedUTC(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	var got domain.CreateBookingInput
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, input domain.CreateBookingInput) {
		got = input
	}).Return(nil)

	w := postJSON(t, r, "/book-table", map[string]any{
		"user_id":      uuid.New().String(),
		"name":         "Alice",
		"email":        "alice@example.com",
		"datetime":     "2025-03-01T10:00:00",
		"no_of_people": 4,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC), got.Datetime)
}

func TestHandler_BookTable_OffsetConvertedToUTC(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	var got domain.CreateBookingInput
	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Run(func(ctx context.Context, input domain.CreateBookingInput) {
		got = input
	}).Return(nil)

	w := postJSON(t, r, "/book-table", map[string]any{
		"user_id":      uuid.New().String(),
		"name":         "Alice",
		"email":        "alice@example.com",
		"datetime":     "2025-03-01T10:00:00+05:00",
		"no_of_people": 2,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, time.Date(2025, 3, 1, 5, 0, 0, 0, time.UTC), got.Datetime)
}

func TestHandler_BookTable_InvalidDatetime(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := postJSON(t, r, "/book-table", map[string]any{
		"user_id":      uuid.New().String(),
		"name":         "Alice",
		"email":        "alice@example.com",
		"datetime":     "next tuesday",
		"no_of_people": 2,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookTable_StoreError(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	bookingSvc.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db down"))

	w := postJSON(t, r, "/book-table", map[string]any{
		"user_id":      uuid.New().String(),
		"name":         "Alice",
		"email":        "alice@example.com",
		"datetime":     "2025-03-01T10:00:00",
		"no_of_people": 2,
	})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_GetBookings_Success(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	bookings := []*domain.Booking{{
		UserID:     userID,
		Name:       "Alice",
		Email:      "alice@example.com",
		Datetime:   time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		NoOfPeople: 4,
	}}
	bookingSvc.EXPECT().ListByUser(mock.Anything, userID).Return(bookings, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get-bookings/"+userID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.BookingsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, userID, resp.UserID)
	// Stored-in-UTC times keep an explicit offset on the wire.
	assert.Equal(t, "2025-03-01T10:00:00+00:00", resp.Bookings[0].Datetime)
}

func TestHandler_GetBookings_Empty(t *testing.T) {
	_, bookingSvc, _, _, r := setupRouter(t)

	userID := uuid.New().String()
	bookingSvc.EXPECT().ListByUser(mock.Anything, userID).Return(nil, domain.ErrNoBookings)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get-bookings/"+userID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_GetBookings_InvalidUserID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/get-bookings/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Contact ---

func TestHandler_ContactUs_Success(t *testing.T) {
	_, _, contactSvc, _, r := setupRouter(t)

	contactSvc.EXPECT().Submit(mock.Anything, mock.Anything).Return(nil)

	w := postJSON(t, r, "/contact-us", dto.ContactRequest{
		Name:    "Alice",
		Email:   "alice@example.com",
		Subject: "Opening hours",
		Message: "Are you open on Sundays?",
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ContactUs_MissingFields(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := postJSON(t, r, "/contact-us", map[string]any{"name": "Alice"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Admin: events ---

func TestHandler_AddEvent_Success(t *testing.T) {
	_, _, _, catalogSvc, r := setupRouter(t)

	var gotInput domain.CreateEventInput
	var gotFilename string
	catalogSvc.EXPECT().AddEvent(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Run(func(ctx context.Context, input domain.CreateEventInput, filename string, pic io.Reader) {
			gotInput = input
			gotFilename = filename
			_, _ = io.ReadAll(pic)
		}).Return(nil)

	body, contentType := multipartBody(t, map[string]string{
		"name":        "Gala Night",
		"description": "Dinner and music",
		"price":       "49.99",
	}, "pic", "gala.png")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/add-event", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Gala Night", gotInput.Name)
	assert.Equal(t, 49.99, gotInput.Price)
	assert.Equal(t, "gala.png", gotFilename)
}

func TestHandler_AddEvent_MissingFile(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	require.NoError(t, mw.WriteField("name", "Gala"))
	require.NoError(t, mw.WriteField("description", "Dinner"))
	require.NoError(t, mw.WriteField("price", "10"))
	require.NoError(t, mw.Close())

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/add-event", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_AddEvent_StoreError(t *testing.T) {
	_, _, _, catalogSvc, r := setupRouter(t)

	catalogSvc.EXPECT().AddEvent(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(errors.New("db down"))

	body, contentType := multipartBody(t, map[string]string{
		"name":        "Gala Night",
		"description": "Dinner and music",
		"price":       "49.99",
	}, "pic", "gala.png")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/add-event", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestHandler_GetAllEvents_Success(t *testing.T) {
	_, _, _, catalogSvc, r := setupRouter(t)

	events := []*domain.Event{{ID: 1, PicPath: "uploaded_images/gala.png", Name: "Gala", Price: 49.99, CreatedAt: time.Now()}}
	catalogSvc.EXPECT().ListEvents(mock.Anything).Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/get-all-events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Events, 1)
	assert.Equal(t, int64(1), resp.Events[0].ID)
	assert.Equal(t, "uploaded_images/gala.png", resp.Events[0].PicPath)
}

func TestHandler_GetAllEvents_Empty(t *testing.T) {
	_, _, _, catalogSvc, r := setupRouter(t)

	catalogSvc.EXPECT().ListEvents(mock.Anything).Return(nil, domain.ErrNoEvents)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/get-all-events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteEvent_Success(t *testing.T) {
	_, _, _, catalogSvc, r := setupRouter(t)

	catalogSvc.EXPECT().DeleteEvent(mock.Anything, int64(42)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/delete-event/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_DeleteEvent_NotFound(t *testing.T) {
	_, _, _, catalogSvc, r := setupRouter(t)

	catalogSvc.EXPECT().DeleteEvent(mock.Anything, int64(42)).Return(domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/delete-event/42", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteEvent_InvalidID(t *testing.T) {
	_, _, _, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/delete-event/forty-two", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Admin: services ---

func TestHandler_AddService_Success(t *testing.T) {
	_, _, _, catalogSvc, r := setupRouter(t)

	catalogSvc.EXPECT().AddService(mock.Anything, mock.Anything, "spa.png", mock.Anything).Return(nil)

	body, contentType := multipartBody(t, map[string]string{
		"name":        "Spa",
		"description": "Full day access",
	}, "image", "spa.png")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/add-service", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_GetAllServices_Empty(t *testing.T) {
	_, _, _, catalogSvc, r := setupRouter(t)

	catalogSvc.EXPECT().ListServices(mock.Anything).Return(nil, domain.ErrNoServices)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/get-all-services", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_DeleteService_NotFound(t *testing.T) {
	_, _, _, catalogSvc, r := setupRouter(t)

	catalogSvc.EXPECT().DeleteService(mock.Anything, int64(7)).Return(domain.ErrServiceNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/delete-service/7", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Admin: team members ---

func TestHandler_AddTeamMember_Success(t *testing.T) {
	_, _, _, catalogSvc, r := setupRouter(t)

	var gotInput domain.CreateTeamMemberInput
	catalogSvc.EXPECT().AddTeamMember(mock.Anything, mock.Anything, "chef.png", mock.Anything).
		Run(func(ctx context.Context, input domain.CreateTeamMemberInput, filename string, image io.Reader) {
			gotInput = input
		}).Return(nil)

	body, contentType := multipartBody(t, map[string]string{
		"name":        "Marco",
		"designation": "Head Chef",
		"description": "20 years of experience",
	}, "image", "chef.png")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/admin/add-team-member", body)
	req.Header.Set("Content-Type", contentType)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Head Chef", gotInput.Designation)
}

func TestHandler_GetAllTeamMembers_Success(t *testing.T) {
	_, _, _, catalogSvc, r := setupRouter(t)

	members := []*domain.TeamMember{{ID: 3, Name: "Marco", Designation: "Head Chef", CreatedAt: time.Now()}}
	catalogSvc.EXPECT().ListTeamMembers(mock.Anything).Return(members, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin/get-all-team-members", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.TeamMembersResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.TeamMembers, 1)
	assert.Equal(t, "Head Chef", resp.TeamMembers[0].Designation)
}

func TestHandler_DeleteTeamMember_Success(t *testing.T) {
	_, _, _, catalogSvc, r := setupRouter(t)

	catalogSvc.EXPECT().DeleteTeamMember(mock.Anything, int64(3)).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/admin/delete-team-member/3", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
