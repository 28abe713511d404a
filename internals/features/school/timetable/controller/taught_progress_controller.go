// file: internals/features/school/timetable/controller/taught_progress_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/timetable/dto"
	svc "sekolahku_backend/internals/features/school/timetable/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type TaughtProgressController struct {
	Validate *validator.Validate
	Ledger   *svc.ProgressLedger
	Schedule *svc.ScheduleService
}

func NewTaughtProgressController(db *gorm.DB, validate *validator.Validate) *TaughtProgressController {
	schedule := svc.NewScheduleService(
		svc.NewGormSlotStore(db),
		svc.NewGormProgressStore(db),
		nil, nil, // mark/unmark tidak butuh oracle & directory
	)
	return &TaughtProgressController{
		Validate: validate,
		Ledger:   schedule.Ledger,
		Schedule: schedule,
	}
}

func (ctl *TaughtProgressController) guard(c *fiber.Ctx) (schoolID, slotID uuid.UUID, err error) {
	schoolID, err = helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if er := helperAuth.EnsureAdminOrTeacherSchool(c, schoolID); er != nil {
		return uuid.Nil, uuid.Nil, er
	}
	slotID, err = uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return uuid.Nil, uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "id slot harus UUID")
	}
	return schoolID, slotID, nil
}

// markerID: yang dicatat sebagai penanda. Guru pakai teacher id-nya,
// admin/owner pakai user id.
func markerID(c *fiber.Ctx) *uuid.UUID {
	if id := helperAuth.GetTeacherIDFromToken(c); id != uuid.Nil {
		return &id
	}
	if uid, err := helperAuth.GetUserIDFromToken(c); err == nil {
		return &uid
	}
	return nil
}

/* =======================================================
   Handlers
   ======================================================= */

// POST /timetable-slots/:id/taught
// ✅ Idempoten: mark kedua kali balikin record lama, bukan error.
func (ctl *TaughtProgressController) MarkTaught(c *fiber.Ctx) error {
	schoolID, slotID, err := ctl.guard(c)
	if err != nil {
		return writeServiceError(c, err)
	}

	var req dto.MarkTaughtRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "payload tidak valid")
		}
		if err := ctl.Validate.Struct(&req); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
	}
	chapterID, topicID, err := req.SyllabusRefs()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	rec, created, err := ctl.Ledger.MarkTaught(c.Context(), schoolID, slotID, chapterID, topicID, markerID(c))
	if err != nil {
		return writeServiceError(c, err)
	}
	if !created {
		return helper.JsonOK(c, "slot sudah ditandai diajar sebelumnya", dto.NewTaughtProgressResponse(rec))
	}
	return helper.JsonCreated(c, "slot ditandai diajar", dto.NewTaughtProgressResponse(rec))
}

// DELETE /timetable-slots/:id/taught
// ✅ Idempoten: tidak ada record → no-op sukses.
func (ctl *TaughtProgressController) UnmarkTaught(c *fiber.Ctx) error {
	schoolID, slotID, err := ctl.guard(c)
	if err != nil {
		return writeServiceError(c, err)
	}

	removed, err := ctl.Ledger.UnmarkTaught(c.Context(), schoolID, slotID)
	if err != nil {
		return writeServiceError(c, err)
	}
	msg := "tanda diajar dihapus"
	if !removed {
		msg = "slot memang belum ditandai diajar"
	}
	return helper.JsonDeleted(c, msg, fiber.Map{
		"timetable_slot_id": slotID,
		"removed":           removed,
	})
}

// POST /timetable-slots/:id/taught/toggle
func (ctl *TaughtProgressController) ToggleTaught(c *fiber.Ctx) error {
	schoolID, slotID, err := ctl.guard(c)
	if err != nil {
		return writeServiceError(c, err)
	}

	taught, rec, err := ctl.Schedule.ToggleTaught(c.Context(), schoolID, slotID, markerID(c))
	if err != nil {
		return writeServiceError(c, err)
	}

	data := fiber.Map{
		"timetable_slot_id": slotID,
		"taught":            taught,
	}
	if rec != nil {
		data["record"] = dto.NewTaughtProgressResponse(rec)
	}
	return helper.JsonOK(c, "toggle berhasil", data)
}
