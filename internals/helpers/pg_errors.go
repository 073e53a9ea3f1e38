package helper

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
)

// --- PG error mapping (pgx/libpq) ---
func MapPGError(err error) (int, string, bool) {
	var code string

	var pgxErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgxErr):
		code = pgxErr.Code
	case errors.As(err, &pqErr):
		code = string(pqErr.Code)
	default:
		return 0, "", false
	}

	switch code {
	case "23505":
		return fiber.StatusConflict, "Duplicate data (unique violation)", true
	case "23503":
		return fiber.StatusBadRequest, "Referenced record not found (foreign key violation)", true
	case "23514":
		return fiber.StatusBadRequest, "Data violates a check constraint", true
	case "22P02":
		return fiber.StatusBadRequest, "Invalid input syntax", true
	default:
		return 0, "", false
	}
}
