package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-booking-backend/models"
	"hotel-booking-backend/services"
	"hotel-booking-backend/utils"
)

type updateStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

type AdminController struct {
	Admin    *services.AdminService
	Bookings *services.BookingService
}

func NewAdminController(admin *services.AdminService, bookings *services.BookingService) *AdminController {
	return &AdminController{Admin: admin, Bookings: bookings}
}

// GetStats (GET /api/admin/stats)
func (ac *AdminController) GetStats(c *gin.Context) {
	stats, err := ac.Admin.Stats()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, stats)
}

// GetUsers (GET /api/admin/users)
func (ac *AdminController) GetUsers(c *gin.Context) {
	users, err := ac.Admin.ListUsers()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, users)
}

// GetBookings (GET /api/admin/bookings) — every booking, user and room resolved.
func (ac *AdminController) GetBookings(c *gin.Context) {
	bookings, err := ac.Bookings.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, bookings)
}

// UpdateBookingStatus (PUT /api/admin/bookings/:id/status)
func (ac *AdminController) UpdateBookingStatus(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}

	var payload updateStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid payload")
		return
	}

	booking, err := ac.Bookings.UpdateStatus(id, models.BookingStatus(payload.Status))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, booking)
}
