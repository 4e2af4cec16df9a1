package router

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

type Handler interface {
	CheckAvailability(c *ginext.Context)
	FindAvailable(c *ginext.Context)
	CreateBooking(c *ginext.Context)
	GetBooking(c *ginext.Context)
	CancelBooking(c *ginext.Context)
	CheckoutBooking(c *ginext.Context)
	CheckinBooking(c *ginext.Context)
	ConfirmEventBookings(c *ginext.Context)
	ListEventBookings(c *ginext.Context)
	RegisterUnit(c *ginext.Context)
	ListUnits(c *ginext.Context)
	GetUnit(c *ginext.Context)
	SetUnitStatus(c *ginext.Context)
	Reconcile(c *ginext.Context)
}

func InitRouter(mode string, h Handler, mw ...ginext.HandlerFunc) *ginext.Engine {
	router := ginext.New(mode)
	router.Use(mw...)

	api := router.Group("/api")
	{
		// Availability
		api.POST("/availability/check", h.CheckAvailability)
		api.POST("/availability/find", h.FindAvailable)

		// Bookings
		api.POST("/bookings", h.CreateBooking)
		api.GET("/bookings/:id", h.GetBooking)
		api.DELETE("/bookings/:id", h.CancelBooking)
		api.POST("/bookings/:id/checkout", h.CheckoutBooking)
		api.POST("/bookings/:id/checkin", h.CheckinBooking)
		api.POST("/events/:id/confirm-bookings", h.ConfirmEventBookings)
		api.GET("/events/:id/bookings", h.ListEventBookings)

		// Units
		api.POST("/units", h.RegisterUnit)
		api.GET("/units", h.ListUnits)
		api.GET("/units/:id", h.GetUnit)
		api.POST("/units/:id/status", h.SetUnitStatus)

		// Reconciliation (manual trigger)
		api.POST("/reconcile", h.Reconcile)
	}

	router.GET("/health", func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{"status": "ok"})
	})

	return router
}
