// file: internals/features/school/academics/holidays/controller/school_holiday_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sekolahku_backend/internals/features/school/academics/holidays/dto"
	hm "sekolahku_backend/internals/features/school/academics/holidays/model"
	helper "sekolahku_backend/internals/helpers"
	helperAuth "sekolahku_backend/internals/helpers/auth"
)

type SchoolHolidayController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewSchoolHolidayController(db *gorm.DB, validate *validator.Validate) *SchoolHolidayController {
	return &SchoolHolidayController{DB: db, Validate: validate}
}

func writeGuardError(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return helper.JsonError(c, fe.Code, fe.Message)
	}
	return helper.JsonError(c, fiber.StatusForbidden, err.Error())
}

/* =======================================================
   Handlers
   ======================================================= */

// GET /school-holidays?class_id=... (class_id opsional; default semua)
func (ctl *SchoolHolidayController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctl.DB.WithContext(c.Context()).
		Model(&hm.SchoolHolidayModel{}).
		Where("school_holiday_school_id = ?", schoolID)

	if raw := strings.TrimSpace(c.Query("class_id")); raw != "" {
		classID, er := uuid.Parse(raw)
		if er != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "class_id harus UUID")
		}
		q = q.Where("school_holiday_class_id IS NULL OR school_holiday_class_id = ?", classID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghitung data")
	}

	var rows []hm.SchoolHolidayModel
	if err := q.Order("school_holiday_start_date ASC").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal mengambil data")
	}

	out := make([]dto.SchoolHolidayResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.NewSchoolHolidayResponse(&rows[i]))
	}
	pg := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	pg.Count = len(out)
	return helper.JsonList(c, "ok", out, &pg)
}

// POST /school-holidays
func (ctl *SchoolHolidayController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if er := helperAuth.EnsureAdminOrTeacherSchool(c, schoolID); er != nil {
		return writeGuardError(c, er)
	}

	var req dto.CreateSchoolHolidayRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payload tidak valid")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	row, err := req.ToModel(schoolID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if err := ctl.DB.WithContext(c.Context()).Create(row).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menyimpan hari libur")
	}
	return helper.JsonCreated(c, "hari libur dibuat", dto.NewSchoolHolidayResponse(row))
}

// DELETE /school-holidays/:id (soft delete)
func (ctl *SchoolHolidayController) Delete(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
	}
	if er := helperAuth.EnsureAdminOrTeacherSchool(c, schoolID); er != nil {
		return writeGuardError(c, er)
	}

	id, err := uuid.Parse(strings.TrimSpace(c.Params("id")))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "id harus UUID")
	}

	tx := ctl.DB.WithContext(c.Context()).
		Where("school_holiday_school_id = ? AND school_holiday_id = ?", schoolID, id).
		Delete(&hm.SchoolHolidayModel{})
	if tx.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "gagal menghapus hari libur")
	}
	if tx.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "hari libur tidak ditemukan")
	}
	return helper.JsonDeleted(c, "hari libur dihapus", fiber.Map{"school_holiday_id": id})
}
