// file: internals/features/school/academics/holidays/route/holiday_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/academics/holidays/controller"
)

func HolidayAdminRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSchoolHolidayController(db, validator.New())

	g := r.Group("/school-holidays")
	g.Get("/", ctl.List)
	g.Post("/", ctl.Create)
	g.Delete("/:id", ctl.Delete)
}

func HolidayUserRoutes(r fiber.Router, db *gorm.DB) {
	ctl := controller.NewSchoolHolidayController(db, validator.New())

	g := r.Group("/school-holidays")
	g.Get("/", ctl.List)
}
