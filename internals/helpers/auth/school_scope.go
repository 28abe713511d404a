// file: internals/helpers/auth/school_scope.go
package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

/* ============================================
   Locals Keys (diisi middleware AuthJWT)
   ============================================ */

const (
	LocRole           = "role"             // string, role efektif
	LocUserID         = "user_id"          // string UUID
	LocTeacherID      = "teacher_id"       // string UUID
	LocActiveSchoolID = "active_school_id" // string UUID
	LocSchoolID       = "school_id"        // string UUID (alias)
	LocRolesGlobal    = "roles_global"     // []string
	LocSchoolRoles    = "school_roles"     // []SchoolRolesEntry | []map[string]any
)

type SchoolRolesEntry struct {
	SchoolID uuid.UUID `json:"school_id"`
	Roles    []string  `json:"roles"`
}

/* ============================================
   Getters
   ============================================ */

func localUUID(c *fiber.Ctx, key string) (uuid.UUID, error) {
	v := c.Locals(key)
	if v == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak ada di token")
	}
	s, ok := v.(string)
	if !ok || strings.TrimSpace(s) == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" tidak valid")
	}
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, key+" bukan UUID")
	}
	return id, nil
}

// GetSchoolIDFromToken: scope sekolah aktif. Prioritas active_school_id,
// fallback school_id (single-session token).
func GetSchoolIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if id, err := localUUID(c, LocActiveSchoolID); err == nil {
		return id, nil
	}
	return localUUID(c, LocSchoolID)
}

func GetUserIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	return localUUID(c, LocUserID)
}

// GetTeacherIDFromToken: opsional - uuid.Nil kalau bukan guru
func GetTeacherIDFromToken(c *fiber.Ctx) uuid.UUID {
	id, err := localUUID(c, LocTeacherID)
	if err != nil {
		return uuid.Nil
	}
	return id
}

/* ============================================
   Role guards
   ============================================ */

func roleIs(c *fiber.Ctx, wanted ...string) bool {
	v := c.Locals(LocRole)
	s, ok := v.(string)
	if !ok {
		return false
	}
	s = strings.ToLower(strings.TrimSpace(s))
	for _, w := range wanted {
		if s == w {
			return true
		}
	}
	return false
}

func IsAdmin(c *fiber.Ctx) bool   { return roleIs(c, "admin", "owner") }
func IsTeacher(c *fiber.Ctx) bool { return roleIs(c, "teacher") }

// EnsureAdminOrTeacherSchool: pastikan user admin/guru di school ini
// (cek school_roles terstruktur; fallback role efektif + scope token).
func EnsureAdminOrTeacherSchool(c *fiber.Ctx, schoolID uuid.UUID) error {
	if v := c.Locals(LocSchoolRoles); v != nil {
		if entries, ok := v.([]SchoolRolesEntry); ok {
			for _, e := range entries {
				if e.SchoolID != schoolID {
					continue
				}
				for _, r := range e.Roles {
					switch strings.ToLower(strings.TrimSpace(r)) {
					case "admin", "owner", "teacher":
						return nil
					}
				}
			}
			return fiber.NewError(fiber.StatusForbidden, "Bukan admin/guru di sekolah ini")
		}
	}
	if !(IsAdmin(c) || IsTeacher(c)) {
		return fiber.NewError(fiber.StatusForbidden, "Akses ditolak (hanya Admin/Guru)")
	}
	act, err := GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	if act != schoolID {
		return fiber.NewError(fiber.StatusForbidden, "school scope mismatch")
	}
	return nil
}
