// file: internals/route/index.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/configs"
	authMw "sekolahku_backend/internals/middlewares/auth_school"
	featureMw "sekolahku_backend/internals/middlewares/features"
	"sekolahku_backend/internals/route/details"
)

// SetupRoutes: dua permukaan API.
//   /api/a → admin/guru (JWT + school scope + role guard)
//   /api/u → user login biasa (JWT + school scope, read-only)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	jwt := authMw.AuthJWT(authMw.AuthJWTOpts{
		Secret:              configs.JWTSecret,
		AllowCookieFallback: true,
	})

	admin := app.Group("/api/a",
		jwt,
		featureMw.UseSchoolScope(),
		featureMw.IsSchoolAdminOrTeacher(),
	)
	details.SchoolAdminRoutes(admin, db)

	user := app.Group("/api/u",
		jwt,
		featureMw.UseSchoolScope(),
	)
	details.SchoolUserRoutes(user, db)
}
