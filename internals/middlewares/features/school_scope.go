// file: internals/middlewares/features/school_scope.go
package middleware

import (
	"github.com/gofiber/fiber/v2"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

// UseSchoolScope memastikan token membawa scope sekolah;
// handler di bawahnya boleh asumsikan GetSchoolIDFromToken sukses.
func UseSchoolScope() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if _, err := helperAuth.GetSchoolIDFromToken(c); err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Token tidak membawa scope sekolah")
		}
		return c.Next()
	}
}

// IsSchoolAdminOrTeacher: guard role untuk grup admin
func IsSchoolAdminOrTeacher() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if !(helperAuth.IsAdmin(c) || helperAuth.IsTeacher(c)) {
			return fiber.NewError(fiber.StatusForbidden, "Akses ditolak (hanya Admin/Guru yang diizinkan)")
		}
		return c.Next()
	}
}
