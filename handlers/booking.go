package handlers

import (
	"net/http"
	"strings"

	"homeserve/models"
	"homeserve/services/booking"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking session flow and booking records.
type BookingHandler struct {
	Service booking.BookingService
	Logger  *zap.Logger
}

func NewBookingHandler(svc booking.BookingService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// GetSlots returns candidate slot labels for a set of services on a date,
// each flagged with joint availability.
func (h *BookingHandler) GetSlots(c *gin.Context) {
	servicesParam := c.Query("services")
	date := c.Query("date")
	if servicesParam == "" || date == "" {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", "query parameters 'services' and 'date' are required")
		return
	}

	statuses, err := h.Service.SlotStatuses(c.Request.Context(), strings.Split(servicesParam, ","), date)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"date": date, "slots": statuses})
}

// QuoteCart prices a draft without opening a session.
func (h *BookingHandler) QuoteCart(c *gin.Context) {
	var draft booking.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	quote, err := h.Service.Quote(c.Request.Context(), draft)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, quote)
}

// InitiateSession creates a new booking session from a draft.
func (h *BookingHandler) InitiateSession(c *gin.Context) {
	var draft booking.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.InitiateSession(c.Request.Context(), draft)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// UpdateSession replaces the draft of an existing session and returns the
// recomputed verdict and quote.
func (h *BookingHandler) UpdateSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var draft booking.Draft
	if err := c.ShouldBindJSON(&draft); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session, err := h.Service.UpdateSession(c.Request.Context(), sessionID, draft)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// ConfirmSession finalizes a session into a booking record. The contact
// phone is taken from the authenticated token, the address from the body.
func (h *BookingHandler) ConfirmSession(c *gin.Context) {
	sessionID := c.Param("sessionID")
	var input struct {
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	contact := models.ContactInfo{
		Phone:   c.GetString("phone"),
		Address: input.Address,
	}
	record, err := h.Service.ConfirmSession(c.Request.Context(), sessionID, contact)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	h.Logger.Info("booking confirmed",
		zap.String("bookingID", record.ID),
		zap.String("date", record.Date),
		zap.String("slot", record.Slot))
	c.JSON(http.StatusCreated, record)
}

// GetBooking returns one booking record belonging to the caller.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	record, err := h.Service.GetBooking(c.Request.Context(), c.Param("bookingID"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	if record.Contact.Phone != c.GetString("phone") {
		utils.JSONError(c, http.StatusNotFound, "not found", "booking not found")
		return
	}
	c.JSON(http.StatusOK, record)
}

// ListBookings returns the caller's booking history.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	records, err := h.Service.ListBookings(c.Request.Context(), c.GetString("phone"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"bookings": records})
}

// CancelBooking moves the caller's booking to cancelled.
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	record, err := h.Service.CancelBooking(c.Request.Context(), c.Param("bookingID"), c.GetString("phone"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

// CompleteBooking moves the caller's booking to completed once the visit is
// done.
func (h *BookingHandler) CompleteBooking(c *gin.Context) {
	record, err := h.Service.CompleteBooking(c.Request.Context(), c.Param("bookingID"), c.GetString("phone"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
