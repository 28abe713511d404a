// file: internals/features/school/timetable/route/timetable_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/timetable/controller"
	"sekolahku_backend/internals/middlewares"
)

/* =======================================================
   Admin/Guru routes - CRUD + generate + taught toggle
   Base: /api/a
   ======================================================= */

func TimetableAdminRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	slotCtl := controller.NewTimetableSlotController(db, v)
	taughtCtl := controller.NewTaughtProgressController(db, v)

	g := r.Group("/timetable-slots")

	g.Get("/", slotCtl.GetDayView)
	g.Post("/generate", middlewares.GenerateRateLimiter(), slotCtl.Generate)
	g.Patch("/:id", slotCtl.PatchSlot)
	g.Delete("/:id", slotCtl.DeleteSlot)

	// Taught-progress per slot
	g.Post("/:id/taught", taughtCtl.MarkTaught)
	g.Delete("/:id/taught", taughtCtl.UnmarkTaught)
	g.Post("/:id/taught/toggle", taughtCtl.ToggleTaught)
}

/* =======================================================
   User routes - read only
   Base: /api/u
   ======================================================= */

func TimetableUserRoutes(r fiber.Router, db *gorm.DB) {
	v := validator.New()
	slotCtl := controller.NewTimetableSlotController(db, v)

	g := r.Group("/timetable-slots")
	g.Get("/", slotCtl.GetDayView)
}
