package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"

	"github.com/example/hotel-booking/internal/application"
	"github.com/example/hotel-booking/internal/calendar"
	"github.com/example/hotel-booking/internal/config"
	httptransport "github.com/example/hotel-booking/internal/http"
	"github.com/example/hotel-booking/internal/persistence"
	"github.com/example/hotel-booking/internal/persistence/memory"
	"github.com/example/hotel-booking/internal/persistence/sqlite"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A missing .env file is fine; the environment wins either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	bookingRepo, userRepo, closeStorage, err := openStorage(cfg)
	if err != nil {
		logger.Error("failed to open storage", "error", err, "driver", cfg.StorageDriver)
		os.Exit(1)
	}
	defer func() {
		if cerr := closeStorage(); cerr != nil {
			logger.Error("failed to close storage", "error", cerr)
		}
	}()

	idGenerator := uuid.NewString
	now := time.Now

	bookingService := application.NewBookingServiceWithLogger(
		newBookingRepositoryAdapter(bookingRepo),
		application.BookingServiceConfig{
			Rooms:             cfg.Rooms,
			RejectPastCheckin: cfg.RejectPastCheckin,
		},
		idGenerator, now, logger,
	)
	userService := application.NewUserServiceWithLogger(newUserDirectoryAdapter(userRepo), idGenerator, now, logger)
	if err := seedAdminAccount(ctx, userService, cfg, logger); err != nil {
		logger.Error("failed to seed admin account", "error", err)
		os.Exit(1)
	}

	bookingHandler := httptransport.NewBookingHandler(bookingService, logger)
	router := httptransport.NewRouter(httptransport.RouterConfig{
		Bookings:   bookingHandler,
		Middleware: []func(http.Handler) http.Handler{httptransport.RequestLogger(logger)},
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	logger.Info("booking API listening", "addr", server.Addr, "driver", cfg.StorageDriver)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Error("server encountered error", "error", err)
		os.Exit(1)
	}
}

// seedAdminAccount registers the configured staff account once. An account
// that already exists is left untouched.
func seedAdminAccount(ctx context.Context, users *application.UserService, cfg config.Config, logger *slog.Logger) error {
	if cfg.AdminUsername == "" {
		return nil
	}

	user, err := users.Register(ctx, cfg.AdminUsername, cfg.AdminPassword)
	if errors.Is(err, application.ErrAlreadyExists) {
		logger.Info("admin account already present", "username", cfg.AdminUsername)
		return nil
	}
	if err != nil {
		return err
	}

	logger.Info("admin account created", "username", user.Username, "user_id", user.ID)
	return nil
}

func openStorage(cfg config.Config) (persistence.BookingRepository, persistence.UserRepository, func() error, error) {
	switch cfg.StorageDriver {
	case config.DriverMemory:
		storage := memory.Open()
		return storage, storage, storage.Close, nil
	default:
		pool, err := sqlite.NewConnectionPool(cfg.SQLiteDSN)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := sqlite.Migrate(context.Background(), pool); err != nil {
			_ = pool.Close()
			return nil, nil, nil, err
		}
		return sqlite.NewBookingRepository(pool), sqlite.NewUserRepository(pool), pool.Close, nil
	}
}

type bookingRepositoryAdapter struct {
	repo persistence.BookingRepository
}

func newBookingRepositoryAdapter(repo persistence.BookingRepository) *bookingRepositoryAdapter {
	return &bookingRepositoryAdapter{repo: repo}
}

func (a *bookingRepositoryAdapter) CreateBooking(ctx context.Context, booking application.Booking) error {
	return a.repo.CreateBooking(ctx, toPersistenceBooking(booking))
}

func (a *bookingRepositoryAdapter) GetBooking(ctx context.Context, id string) (application.Booking, error) {
	stored, err := a.repo.GetBooking(ctx, id)
	if err != nil {
		return application.Booking{}, err
	}
	return toApplicationBooking(stored)
}

func (a *bookingRepositoryAdapter) ListBookings(ctx context.Context, start, end *calendar.Date) ([]application.Booking, error) {
	filter := persistence.BookingFilter{}
	if start != nil {
		value := start.String()
		filter.StartDate = &value
	}
	if end != nil {
		value := end.String()
		filter.EndDate = &value
	}

	models, err := a.repo.ListBookings(ctx, filter)
	if err != nil {
		return nil, err
	}
	if len(models) == 0 {
		return nil, nil
	}

	bookings := make([]application.Booking, 0, len(models))
	for _, model := range models {
		booking, err := toApplicationBooking(model)
		if err != nil {
			return nil, err
		}
		bookings = append(bookings, booking)
	}
	return bookings, nil
}

func (a *bookingRepositoryAdapter) DeleteBooking(ctx context.Context, id string) error {
	return a.repo.DeleteBooking(ctx, id)
}

type userDirectoryAdapter struct {
	repo persistence.UserRepository
}

func newUserDirectoryAdapter(repo persistence.UserRepository) *userDirectoryAdapter {
	return &userDirectoryAdapter{repo: repo}
}

func (a *userDirectoryAdapter) CreateUser(ctx context.Context, user application.User, passwordHash string) error {
	return a.repo.CreateUser(ctx, persistence.User{
		ID:           user.ID,
		Username:     user.Username,
		PasswordHash: passwordHash,
		CreatedAt:    user.CreatedAt,
	})
}

func (a *userDirectoryAdapter) GetUserByUsername(ctx context.Context, username string) (application.User, string, error) {
	stored, err := a.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return application.User{}, "", err
	}
	return application.User{
		ID:        stored.ID,
		Username:  stored.Username,
		CreatedAt: stored.CreatedAt,
	}, stored.PasswordHash, nil
}

func toPersistenceBooking(booking application.Booking) persistence.Booking {
	return persistence.Booking{
		ID:              booking.ID,
		CustomerName:    booking.CustomerName,
		CustomerSurname: booking.CustomerSurname,
		GuestCount:      booking.GuestCount,
		RoomNumber:      booking.RoomNumber,
		CheckinDate:     booking.CheckinDate.String(),
		CheckoutDate:    booking.CheckoutDate.String(),
		CheckinTime:     booking.CheckinTime,
		CheckoutTime:    booking.CheckoutTime,
		CreatedAt:       booking.CreatedAt,
	}
}

func toApplicationBooking(model persistence.Booking) (application.Booking, error) {
	checkin, err := calendar.ParseDate(model.CheckinDate)
	if err != nil {
		return application.Booking{}, fmt.Errorf("booking %s: %w", model.ID, err)
	}
	checkout, err := calendar.ParseDate(model.CheckoutDate)
	if err != nil {
		return application.Booking{}, fmt.Errorf("booking %s: %w", model.ID, err)
	}

	return application.Booking{
		ID:              model.ID,
		CustomerName:    model.CustomerName,
		CustomerSurname: model.CustomerSurname,
		GuestCount:      model.GuestCount,
		RoomNumber:      model.RoomNumber,
		CheckinDate:     checkin,
		CheckoutDate:    checkout,
		CheckinTime:     model.CheckinTime,
		CheckoutTime:    model.CheckoutTime,
		CreatedAt:       model.CreatedAt,
	}, nil
}
