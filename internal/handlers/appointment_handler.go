package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	book         *ucAppointment.BookAppointment
	accept       *ucAppointment.AcceptSuggestion
	reject       *ucAppointment.RejectSuggestions
	check        *ucAppointment.CheckSlot
	list         *ucAppointment.ListAppointments
	availability *ucAppointment.GetAvailability
	log          *zap.Logger
}

func NewAppointmentHandler(
	book *ucAppointment.BookAppointment,
	accept *ucAppointment.AcceptSuggestion,
	reject *ucAppointment.RejectSuggestions,
	check *ucAppointment.CheckSlot,
	list *ucAppointment.ListAppointments,
	availability *ucAppointment.GetAvailability,
	log *zap.Logger,
) *AppointmentHandler {
	return &AppointmentHandler{
		book:         book,
		accept:       accept,
		reject:       reject,
		check:        check,
		list:         list,
		availability: availability,
		log:          log,
	}
}

// ======================================================
// REQUESTS / RESPONSES
// ======================================================

// Field presence is checked by the booking workflow so that missing values
// get their own error code.
type CreateAppointmentRequest struct {
	Date        string `json:"date"`       // YYYY-MM-DD
	StartTime   string `json:"start_time"` // HH:mm
	EndTime     string `json:"end_time"`   // HH:mm
	Description string `json:"description"`
}

type CheckSlotRequest struct {
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type AcceptSuggestionRequest struct {
	SuggestionID string `json:"suggestion_id" binding:"required"`
}

type ConflictResponse struct {
	Code        string                   `json:"error_code"`
	Message     string                   `json:"message"`
	BookingID   string                   `json:"booking_id"`
	Suggestions []dto.AppointmentListDTO `json:"suggestions"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	out, err := h.book.Execute(c.Request.Context(), ucAppointment.BookAppointmentInput{
		Date:        req.Date,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		Description: req.Description,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	if out.State == domain.StateConflicted {
		c.JSON(http.StatusConflict, ConflictResponse{
			Code:        "time_conflict",
			Message:     httperr.Message("time_conflict"),
			BookingID:   out.BookingID,
			Suggestions: dto.FromAppointments(out.Suggestions),
		})
		return
	}

	c.JSON(http.StatusCreated, dto.FromAppointment(*out.Appointment))
}

// ======================================================
// CHECK
// ======================================================

func (h *AppointmentHandler) Check(c *gin.Context) {
	var req CheckSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	available, err := h.check.Execute(ucAppointment.SlotInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"available": available})
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	if date := c.Query("date"); date != "" {
		aps, err := h.list.ByDate(date)
		if err != nil {
			h.writeError(c, err)
			return
		}
		httpresp.List(c, aps)
		return
	}

	httpresp.List(c, h.list.All())
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	year, month, err := parseYearMonth(c.Query("year"), c.Query("month"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	aps, err := h.list.ByMonth(year, month)
	if err != nil {
		h.writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"year":         year,
		"month":        month,
		"appointments": aps,
	})
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	date, slots, err := h.availability.Execute(c.Query("date"))
	if err != nil {
		h.writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"date":  date,
		"slots": slots,
	})
}

// ======================================================
// SUGGESTIONS
// ======================================================

func (h *AppointmentHandler) AcceptSuggestion(c *gin.Context) {
	var req AcceptSuggestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "suggestion_id is required.")
		return
	}

	ap, err := h.accept.Execute(c.Request.Context(), c.Param("id"), req.SuggestionID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromAppointment(*ap))
}

func (h *AppointmentHandler) RejectSuggestions(c *gin.Context) {
	if err := h.reject.Execute(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
