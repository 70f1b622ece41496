package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Storage driver names accepted by HOTEL_STORAGE_DRIVER.
const (
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Config captures environment driven configuration values for the booking service.
type Config struct {
	HTTPPort          int
	StorageDriver     string
	SQLiteDSN         string
	Rooms             []int
	RejectPastCheckin bool

	// AdminUsername/AdminPassword, when both set, seed a staff account
	// at startup.
	AdminUsername string
	AdminPassword string
}

// Load parses configuration values from the current process environment.
//
// The loader applies sensible defaults for optional fields while validating
// supplied values and reporting localized error messages for invalid entries.
func Load() (Config, error) {
	cfg := Config{
		HTTPPort:      8080,
		StorageDriver: DriverSQLite,
		SQLiteDSN:     "file:hotel.db",
		Rooms:         []int{1, 2},
	}

	invalid := make([]string, 0, 2)

	if portValue := strings.TrimSpace(os.Getenv("HOTEL_HTTP_PORT")); portValue != "" {
		port, err := strconv.Atoi(portValue)
		if err != nil || port <= 0 {
			invalid = append(invalid, "HOTEL_HTTP_PORT")
		} else {
			cfg.HTTPPort = port
		}
	}

	if driver := strings.TrimSpace(os.Getenv("HOTEL_STORAGE_DRIVER")); driver != "" {
		switch driver {
		case DriverSQLite, DriverMemory:
			cfg.StorageDriver = driver
		default:
			invalid = append(invalid, "HOTEL_STORAGE_DRIVER")
		}
	}

	if dsn := strings.TrimSpace(os.Getenv("HOTEL_SQLITE_DSN")); dsn != "" {
		cfg.SQLiteDSN = dsn
	}

	if roomsValue := strings.TrimSpace(os.Getenv("HOTEL_ROOMS")); roomsValue != "" {
		rooms, err := parseRooms(roomsValue)
		if err != nil {
			invalid = append(invalid, "HOTEL_ROOMS")
		} else {
			cfg.Rooms = rooms
		}
	}

	if rejectValue := strings.TrimSpace(os.Getenv("HOTEL_REJECT_PAST_CHECKIN")); rejectValue != "" {
		reject, err := strconv.ParseBool(rejectValue)
		if err != nil {
			invalid = append(invalid, "HOTEL_REJECT_PAST_CHECKIN")
		} else {
			cfg.RejectPastCheckin = reject
		}
	}

	cfg.AdminUsername = strings.TrimSpace(os.Getenv("HOTEL_ADMIN_USERNAME"))
	cfg.AdminPassword = os.Getenv("HOTEL_ADMIN_PASSWORD")
	switch {
	case cfg.AdminUsername != "" && cfg.AdminPassword == "":
		invalid = append(invalid, "HOTEL_ADMIN_PASSWORD")
	case cfg.AdminUsername == "" && cfg.AdminPassword != "":
		invalid = append(invalid, "HOTEL_ADMIN_USERNAME")
	}

	if len(invalid) > 0 {
		return Config{}, fmt.Errorf("ortam değişkeni değerleri geçersiz: %s", strings.Join(invalid, ", "))
	}

	return cfg, nil
}

// parseRooms parses a comma-separated room list such as "1,2".
func parseRooms(value string) ([]int, error) {
	parts := strings.Split(value, ",")
	rooms := make([]int, 0, len(parts))
	seen := make(map[int]bool, len(parts))
	for _, part := range parts {
		room, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || room <= 0 {
			return nil, fmt.Errorf("invalid room number %q", part)
		}
		if seen[room] {
			continue
		}
		seen[room] = true
		rooms = append(rooms, room)
	}
	if len(rooms) == 0 {
		return nil, fmt.Errorf("empty room list")
	}
	return rooms, nil
}
