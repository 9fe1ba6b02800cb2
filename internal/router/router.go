package router

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	Signup(c *ginext.Context)
	Login(c *ginext.Context)
	BookTable(c *ginext.Context)
	GetBookings(c *ginext.Context)
	ContactUs(c *ginext.Context)
	AddEvent(c *ginext.Context)
	GetAllEvents(c *ginext.Context)
	DeleteEvent(c *ginext.Context)
	AddService(c *ginext.Context)
	GetAllServices(c *ginext.Context)
	DeleteService(c *ginext.Context)
	AddTeamMember(c *ginext.Context)
	GetAllTeamMembers(c *ginext.Context)
	DeleteTeamMember(c *ginext.Context)
}

func InitRouter(mode string, h Handler, uploadsDir string, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	// Users
	router.POST("/signup", h.Signup)
	router.POST("/login", h.Login)

	// Bookings
	router.POST("/book-table", h.BookTable)
	router.GET("/get-bookings/:user_id", h.GetBookings)

	// Contact
	router.POST("/contact-us", h.ContactUs)

	admin := router.Group("/admin")
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

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	router.GET("/metrics", func(c *ginext.Context) {
		promhttp.Handler().ServeHTTP(c.Writer, c.Request)
	})

	// Uploaded images are publicly readable by their stored path.
	router.Static("/uploads", uploadsDir)

	return router
}
