// file: internals/features/school/timetable/controller/pg_error.go
package controller

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"

	svc "sekolahku_backend/internals/features/school/timetable/service"
	helper "sekolahku_backend/internals/helpers"
)

/* =======================================================
   Error → HTTP mapping
   ======================================================= */

// writeServiceError: sentinel service dulu, baru kode error Postgres.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, svc.ErrValidation):
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	case errors.Is(err, svc.ErrConflict):
		return helper.JsonError(c, fiber.StatusConflict, err.Error())
	case errors.Is(err, svc.ErrNotFound):
		return helper.JsonError(c, fiber.StatusNotFound, err.Error())
	}

	if status, msg, ok := mapPGError(err); ok {
		return helper.JsonError(c, status, msg)
	}

	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusInternalServerError, "internal error")
}

// mapPGError: baca SQLSTATE dari driver (pgx dan lib/pq dua-duanya
// bisa muncul tergantung jalur koneksi).
func mapPGError(err error) (int, string, bool) {
	var code, constraint string

	var pgErr *pgconn.PgError
	var pqErr *pq.Error
	switch {
	case errors.As(err, &pgErr):
		code, constraint = pgErr.Code, pgErr.ConstraintName
	case errors.As(err, &pqErr):
		code, constraint = string(pqErr.Code), pqErr.Constraint
	default:
		return 0, "", false
	}

	switch code {
	case "23505": // unique_violation
		if strings.Contains(constraint, "uq_timetable_slot_day_seq") {
			return fiber.StatusConflict, "nomor urut slot bentrok di hari yang sama", true
		}
		if strings.Contains(constraint, "uq_taught_progress_slot") {
			return fiber.StatusConflict, "slot ini sudah ditandai diajar", true
		}
		return fiber.StatusConflict, "data duplikat", true
	case "23503": // foreign_key_violation
		return fiber.StatusBadRequest, "referensi tidak valid", true
	case "23P01": // exclusion_violation
		return fiber.StatusConflict, "rentang waktu bentrok", true
	}
	return 0, "", false
}
