// file: internals/features/school/timetable/controller/timetable_slot_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	dirSvc "sekolahku_backend/internals/features/school/academics/directory/service"
	holSvc "sekolahku_backend/internals/features/school/academics/holidays/service"
	"sekolahku_backend/internals/features/school/timetable/dto"
	svc "sekolahku_backend/internals/features/school/timetable/service"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type TimetableSlotController struct {
	DB       *gorm.DB
	Validate *validator.Validate
	Schedule *svc.ScheduleService
}

func NewTimetableSlotController(db *gorm.DB, validate *validator.Validate) *TimetableSlotController {
	return &TimetableSlotController{
		DB:       db,
		Validate: validate,
		Schedule: svc.NewScheduleService(
			svc.NewGormSlotStore(db),
			svc.NewGormProgressStore(db),
			holSvc.NewGormHolidayOracle(db),
			dirSvc.NewGormDirectory(db),
		),
	}
}

/* =======================================================
   Handlers
   ======================================================= */

// GET /timetable-slots?class_id=...&date=YYYY-MM-DD
// ✅ View satu hari: slot terurut waktu + nomor period tampilan +
// status taught + nama subject/teacher + info libur.
func (ctl *TimetableSlotController) GetDayView(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return writeServiceError(c, err)
	}

	classID, err := uuid.Parse(strings.TrimSpace(c.Query("class_id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "class_id wajib dan harus UUID")
	}
	date, err := dto.ParseDate(c.Query("date"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	view, err := ctl.Schedule.Load(c.Context(), schoolID, classID, date)
	if err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonOK(c, "ok", dto.NewDayViewResponse(view))
}

// POST /timetable-slots/generate
// ✅ Generate jadwal satu hari (period + break) sekali jalan.
func (ctl *TimetableSlotController) Generate(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	if er := helperAuth.EnsureAdminOrTeacherSchool(c, schoolID); er != nil {
		return writeServiceError(c, er)
	}

	var req dto.GenerateTimetableRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	classID, date, genReq, err := req.ToGenerationRequest()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var createdBy *uuid.UUID
	if uid, er := helperAuth.GetUserIDFromToken(c); er == nil {
		createdBy = &uid
	}

	slots, err := ctl.Schedule.Generate(c.Context(), schoolID, classID, date, genReq, createdBy)
	if err != nil {
		return writeServiceError(c, err)
	}

	out := make([]dto.TimetableSlotResponse, 0, len(slots))
	for i := range slots {
		out = append(out, dto.NewTimetableSlotResponse(&slots[i]))
	}
	return helper.JsonCreated(c, "jadwal berhasil digenerate", fiber.Map{
		"count": len(out),
		"slots": out,
	})
}

// PATCH /timetable-slots/:id
// ✅ Edit satu slot; perubahan waktu merembet ke tetangga langsung.
// Propagasi tetangga best-effort: yang gagal dilaporkan di warnings.
func (ctl *TimetableSlotController) PatchSlot(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	if er := helperAuth.EnsureAdminOrTeacherSchool(c, schoolID); er != nil {
		return writeServiceError(c, er)
	}

	slotID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id slot harus UUID")
	}

	var req dto.PatchTimetableSlotRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	classID, date, patch, err := req.ToPatch()
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	outcome, err := ctl.Schedule.EditSlot(c.Context(), schoolID, classID, date, slotID, patch)
	if err != nil {
		return writeServiceError(c, err)
	}

	msg := "slot berhasil diupdate"
	if len(outcome.Warnings) > 0 {
		msg = "slot diupdate, sebagian propagasi tetangga gagal"
	}
	return helper.JsonUpdated(c, msg, fiber.Map{
		"slot":     dto.NewTimetableSlotResponse(outcome.Slot),
		"warnings": outcome.Warnings,
	})
}

// DELETE /timetable-slots/:id
// ⚠️ Gap waktu yang tertinggal tidak ditutup otomatis.
func (ctl *TimetableSlotController) DeleteSlot(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return writeServiceError(c, err)
	}
	if er := helperAuth.EnsureAdminOrTeacherSchool(c, schoolID); er != nil {
		return writeServiceError(c, er)
	}

	slotID, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id slot harus UUID")
	}

	if err := ctl.Schedule.DeleteSlot(c.Context(), schoolID, slotID); err != nil {
		return writeServiceError(c, err)
	}
	return helper.JsonDeleted(c, "slot berhasil dihapus", fiber.Map{
		"timetable_slot_id": slotID,
	})
}
