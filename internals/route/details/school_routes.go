// file: internals/route/details/school_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	holidayRoute "sekolahku_backend/internals/features/school/academics/holidays/route"
	timetableRoute "sekolahku_backend/internals/features/school/timetable/route"
)

// SchoolAdminRoutes: fitur yang butuh role admin/guru pada school aktif
func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB) {
	timetableRoute.TimetableAdminRoutes(admin, db)
	holidayRoute.HolidayAdminRoutes(admin, db)
}

// SchoolUserRoutes: read-only untuk murid/wali
func SchoolUserRoutes(user fiber.Router, db *gorm.DB) {
	timetableRoute.TimetableUserRoutes(user, db)
	holidayRoute.HolidayUserRoutes(user, db)
}
