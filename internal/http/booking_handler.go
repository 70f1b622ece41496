package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/example/hotel-booking/internal/application"
	"github.com/example/hotel-booking/internal/calendar"
)

type bookingService interface {
	CreateBooking(ctx context.Context, input application.BookingInput) (application.Booking, []application.CollisionWarning, error)
	DeleteBooking(ctx context.Context, id string) error
	ListBookings(ctx context.Context) ([]application.Booking, error)
	BookingsOverlappingRange(ctx context.Context, start, end calendar.Date) ([]application.Booking, error)
	BookingsOverlappingDate(ctx context.Context, day calendar.Date) ([]application.Booking, error)
}

// BookingHandler serves the /api/bookings endpoints.
type BookingHandler struct {
	service   bookingService
	responder responder
	logger    *slog.Logger
}

// NewBookingHandler constructs a booking handler.
func NewBookingHandler(service bookingService, logger *slog.Logger) *BookingHandler {
	logger = defaultLogger(logger)
	return &BookingHandler{service: service, responder: newResponder(logger), logger: logger}
}

// List handles GET /api/bookings.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	bookings, err := h.service.ListBookings(r.Context())
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusInternalServerError, msgBookingsFetchFailed, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toBookingDTOs(bookings))
}

// ListRange handles GET /api/bookings/range?startDate=...&endDate=...
func (h *BookingHandler) ListRange(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	query := r.URL.Query()
	startParam := query.Get("startDate")
	endParam := query.Get("endDate")
	if startParam == "" || endParam == "" {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, msgDatesRequired, nil)
		return
	}

	start, err := calendar.ParseDate(startParam)
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, msgInvalidDateRange, err)
		return
	}
	end, err := calendar.ParseDate(endParam)
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, msgInvalidDateRange, err)
		return
	}

	bookings, err := h.service.BookingsOverlappingRange(r.Context(), start, end)
	if err != nil {
		if errors.Is(err, application.ErrInvalidRange) {
			h.responder.writeError(r.Context(), w, http.StatusBadRequest, msgInvalidDateRange, err)
			return
		}
		h.responder.writeError(r.Context(), w, http.StatusInternalServerError, msgBookingsFetchFailed, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toBookingDTOs(bookings))
}

// ListDate handles GET /api/bookings/date/{date}.
func (h *BookingHandler) ListDate(w http.ResponseWriter, r *http.Request, dateParam string) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	day, err := calendar.ParseDate(dateParam)
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, msgInvalidDateRange, err)
		return
	}

	bookings, err := h.service.BookingsOverlappingDate(r.Context(), day)
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusInternalServerError, msgDateBookingsFetchFailed, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, toBookingDTOs(bookings))
}

// Create handles POST /api/bookings.
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, msgBookingCreateFailed, err)
		return
	}

	input, err := req.toInput()
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, msgBookingCreateFailed, err)
		return
	}

	// The date-ordering rule has a dedicated client message.
	if !input.CheckinDate.IsZero() && !input.CheckoutDate.IsZero() && !input.CheckoutDate.After(input.CheckinDate) {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, msgCheckoutAfterCheckin, nil)
		return
	}

	booking, warnings, err := h.service.CreateBooking(r.Context(), input)
	if err != nil {
		h.responder.writeError(r.Context(), w, http.StatusBadRequest, msgBookingCreateFailed, err)
		return
	}

	if len(warnings) > 0 {
		logger := handlerLogger(r.Context(), h.logger, "BookingHandler", "Create", "booking_id", booking.ID)
		for _, warning := range warnings {
			logger.WarnContext(r.Context(), "double booking detected",
				"conflicting_booking_id", warning.BookingID,
				"room_number", warning.RoomNumber,
			)
		}
	}

	h.responder.writeJSON(r.Context(), w, http.StatusCreated, toBookingDTO(booking))
}

// Delete handles DELETE /api/bookings/{id}.
func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if h == nil || h.service == nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	bookingID, ok := BookingIDFromContext(r.Context())
	if !ok || strings.TrimSpace(bookingID) == "" {
		h.responder.writeError(r.Context(), w, http.StatusNotFound, msgBookingNotFound, nil)
		return
	}

	if err := h.service.DeleteBooking(r.Context(), bookingID); err != nil {
		if errors.Is(err, application.ErrNotFound) {
			h.responder.writeError(r.Context(), w, http.StatusNotFound, msgBookingNotFound, err)
			return
		}
		h.responder.writeError(r.Context(), w, http.StatusInternalServerError, msgBookingDeleteFailed, err)
		return
	}

	h.responder.writeJSON(r.Context(), w, http.StatusOK, messageResponse{Message: msgBookingDeleted})
}

// bookingDTO mirrors the reference API's booking JSON shape.
type bookingDTO struct {
	ID              string `json:"id"`
	CustomerName    string `json:"customerName"`
	CustomerSurname string `json:"customerSurname"`
	GuestCount      int    `json:"guestCount"`
	RoomNumber      int    `json:"roomNumber"`
	CheckinDate     string `json:"checkinDate"`
	CheckoutDate    string `json:"checkoutDate"`
	CheckinTime     string `json:"checkinTime"`
	CheckoutTime    string `json:"checkoutTime"`
	CreatedAt       string `json:"createdAt"`
}

type bookingRequest struct {
	CustomerName    string `json:"customerName"`
	CustomerSurname string `json:"customerSurname"`
	GuestCount      int    `json:"guestCount"`
	RoomNumber      int    `json:"roomNumber"`
	CheckinDate     string `json:"checkinDate"`
	CheckoutDate    string `json:"checkoutDate"`
	CheckinTime     string `json:"checkinTime"`
	CheckoutTime    string `json:"checkoutTime"`
}

func (req bookingRequest) toInput() (application.BookingInput, error) {
	checkin, err := calendar.ParseDate(req.CheckinDate)
	if err != nil {
		return application.BookingInput{}, err
	}
	checkout, err := calendar.ParseDate(req.CheckoutDate)
	if err != nil {
		return application.BookingInput{}, err
	}

	return application.BookingInput{
		CustomerName:    req.CustomerName,
		CustomerSurname: req.CustomerSurname,
		GuestCount:      req.GuestCount,
		RoomNumber:      req.RoomNumber,
		CheckinDate:     checkin,
		CheckoutDate:    checkout,
		CheckinTime:     req.CheckinTime,
		CheckoutTime:    req.CheckoutTime,
	}, nil
}

func toBookingDTO(booking application.Booking) bookingDTO {
	return bookingDTO{
		ID:              booking.ID,
		CustomerName:    booking.CustomerName,
		CustomerSurname: booking.CustomerSurname,
		GuestCount:      booking.GuestCount,
		RoomNumber:      booking.RoomNumber,
		CheckinDate:     booking.CheckinDate.String(),
		CheckoutDate:    booking.CheckoutDate.String(),
		CheckinTime:     booking.CheckinTime,
		CheckoutTime:    booking.CheckoutTime,
		CreatedAt:       booking.CreatedAt.UTC().Format(time.RFC3339),
	}
}

// toBookingDTOs always returns a non-nil slice so the response body is
// a bare JSON array even when empty.
func toBookingDTOs(bookings []application.Booking) []bookingDTO {
	dtos := make([]bookingDTO, 0, len(bookings))
	for _, booking := range bookings {
		dtos = append(dtos, toBookingDTO(booking))
	}
	return dtos
}
