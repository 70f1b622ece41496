package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
)

// Client-facing messages, kept byte-identical with the reference
// deployment's Turkish responses.
const (
	msgBookingsFetchFailed     = "Rezervasyonlar alınırken hata oluştu"
	msgDatesRequired           = "Başlangıç ve bitiş tarihleri gerekli"
	msgInvalidDateRange        = "Geçersiz tarih aralığı"
	msgDateBookingsFetchFailed = "Tarih rezervasyonları alınırken hata oluştu"
	msgCheckoutAfterCheckin    = "Çıkış tarihi giriş tarihinden sonra olmalıdır"
	msgBookingCreateFailed     = "Rezervasyon oluşturulurken hata oluştu"
	msgBookingDeleted          = "Rezervasyon başarıyla silindi"
	msgBookingNotFound         = "Rezervasyon bulunamadı"
	msgBookingDeleteFailed     = "Rezervasyon silinirken hata oluştu"
)

type messageResponse struct {
	Message string `json:"message"`
}

type responder struct {
	logger *slog.Logger
}

func newResponder(logger *slog.Logger) responder {
	if logger == nil {
		logger = slog.Default()
	}
	return responder{logger: logger}
}

func (r responder) writeJSON(ctx context.Context, w http.ResponseWriter, status int, payload any) {
	if w == nil {
		return
	}

	if status == http.StatusNoContent || payload == nil {
		w.WriteHeader(status)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "failed to encode response", "error", err)
	}
}

// writeError renders the localized message and logs the underlying
// cause, which never reaches the client.
func (r responder) writeError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		r.loggerFor(ctx).ErrorContext(ctx, "request failed", "status", status, "error", err)
	}
	r.writeJSON(ctx, w, status, messageResponse{Message: message})
}

func (r responder) loggerFor(ctx context.Context) *slog.Logger {
	if logger := LoggerFromContext(ctx); logger != nil {
		return logger
	}
	return r.logger
}
