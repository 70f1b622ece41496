// Package http provides HTTP handlers and middleware for the booking API.
//
// The router exposes the following endpoints:
//   - GET /api/bookings: lists every booking as a bare JSON array.
//   - GET /api/bookings/range?startDate=YYYY-MM-DD&endDate=YYYY-MM-DD:
//     lists bookings whose stay intersects the inclusive date interval.
//   - GET /api/bookings/date/{date}: lists bookings occupying the given day.
//   - POST /api/bookings: creates a booking from the `bookingRequest`
//     payload defined in booking_handler.go and responds 201 with the
//     created booking. Overlapping same-room bookings are accepted and
//     logged as warnings.
//   - DELETE /api/bookings/{id}: permanently removes a booking.
//
// Error bodies are {"message": ...} with Turkish text matching the
// reference deployment. Request/response DTOs live alongside their
// handlers so tests and documentation share the same ground truth.
package http
