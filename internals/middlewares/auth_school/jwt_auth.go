// file: internals/middlewares/auth_school/jwt_auth.go
package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type AuthJWTOpts struct {
	Secret              string
	AllowCookieFallback bool // pakai cookie access_token jika tidak ada Bearer
}

func AuthJWT(o AuthJWTOpts) fiber.Handler {
	secret := strings.TrimSpace(o.Secret)
	if secret == "" {
		panic("AuthJWT: Secret wajib diisi")
	}

	return func(c *fiber.Ctx) error {
		// 1) Ambil token: Authorization: Bearer xxx (atau cookie jika diizinkan)
		raw := ""
		if authz := strings.TrimSpace(c.Get(fiber.HeaderAuthorization)); strings.HasPrefix(strings.ToLower(authz), "bearer ") {
			raw = strings.TrimSpace(authz[7:])
		} else if o.AllowCookieFallback {
			raw = strings.TrimSpace(c.Cookies("access_token"))
		}
		if raw == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		// 2) Parse + verifikasi algoritma
		tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !tok.Valid {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token")
		}

		claims, ok := tok.Claims.(jwt.MapClaims)
		if !ok {
			return fiber.NewError(fiber.StatusUnauthorized, "Invalid token claims")
		}
		c.Locals("jwt_claims", claims)

		// 3) Hydrate Locals yang diharapkan helper auth

		if v, ok := claims["roles_global"]; ok {
			c.Locals(helperAuth.LocRolesGlobal, readStringSlice(v))
		}

		if sid := strClaim(claims, "school_id"); sid != "" {
			c.Locals(helperAuth.LocActiveSchoolID, sid)
			c.Locals(helperAuth.LocSchoolID, sid)
		}
		if sid := strClaim(claims, "active_school_id"); sid != "" {
			c.Locals(helperAuth.LocActiveSchoolID, sid)
		}
		if tid := strClaim(claims, "teacher_id"); tid != "" {
			c.Locals(helperAuth.LocTeacherID, tid)
		}

		// user_id: ambil id/sub/user_id dalam urutan preferensi
		switch {
		case strClaim(claims, "id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "id"))
		case strClaim(claims, "sub") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "sub"))
		case strClaim(claims, "user_id") != "":
			c.Locals(helperAuth.LocUserID, strClaim(claims, "user_id"))
		}

		// school_roles terstruktur → []SchoolRolesEntry
		entries := readSchoolRoles(claims["school_roles"])
		if len(entries) > 0 {
			c.Locals(helperAuth.LocSchoolRoles, entries)
		}

		// role efektif: school_roles dulu, lalu roles_global, fallback "user"
		c.Locals(helperAuth.LocRole, effectiveRole(entries, readStringSlice(claims["roles_global"])))

		return c.Next()
	}
}

// util kecil untuk ambil string claim
func strClaim(m jwt.MapClaims, key string) string {
	if v, ok := m[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

// util: ubah nilai interface{} → []string (robust untuk []string atau []any)
func readStringSlice(v any) []string {
	out := make([]string, 0)
	switch t := v.(type) {
	case []string:
		for _, s := range t {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, it := range t {
			if s, ok := it.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
	}
	return out
}

func readSchoolRoles(v any) []helperAuth.SchoolRolesEntry {
	arr, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]helperAuth.SchoolRolesEntry, 0, len(arr))
	for _, it := range arr {
		m, ok := it.(map[string]any)
		if !ok {
			continue
		}
		var sid uuid.UUID
		if s, ok := m["school_id"].(string); ok {
			if id, err := uuid.Parse(strings.TrimSpace(s)); err == nil {
				sid = id
			}
		}
		out = append(out, helperAuth.SchoolRolesEntry{
			SchoolID: sid,
			Roles:    readStringSlice(m["roles"]),
		})
	}
	return out
}

// effectiveRole memilih role tunggal untuk guard lama.
// Prioritas: admin > teacher > student > user.
func effectiveRole(entries []helperAuth.SchoolRolesEntry, global []string) string {
	pick := func(list []string) string {
		has := map[string]struct{}{}
		for _, r := range list {
			has[strings.ToLower(strings.TrimSpace(r))] = struct{}{}
		}
		for _, w := range []string{"owner", "admin", "teacher", "student", "user"} {
			if _, ok := has[w]; ok {
				return w
			}
		}
		return ""
	}
	for _, e := range entries {
		if r := pick(e.Roles); r != "" {
			return r
		}
	}
	if r := pick(global); r != "" {
		return r
	}
	return "user"
}
