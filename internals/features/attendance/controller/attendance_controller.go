// file: internals/features/attendance/controller/attendance_controller.go
package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"academyos_backend/internals/constants"
	classModel "academyos_backend/internals/features/academics/class/model"
	d "academyos_backend/internals/features/attendance/dto"
	"academyos_backend/internals/features/attendance/model"
	enrollModel "academyos_backend/internals/features/enrollments/model"
	userModel "academyos_backend/internals/features/users/user/model"
	helper "academyos_backend/internals/helpers"
)

type AttendanceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewAttendanceController(db *gorm.DB, v *validator.Validate) *AttendanceController {
	return &AttendanceController{DB: db, Validate: v}
}

func parseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	idStr := strings.TrimSpace(c.Params(name))
	if idStr == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, name+" is required")
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Invalid UUID format")
	}
	return id, nil
}

// loadClassForMarking resolves the class and checks the caller may mark it
// (class instructor or admin).
func (ctl *AttendanceController) loadClassForMarking(c *fiber.Ctx, classID, userID uuid.UUID) (*classModel.ClassModel, error) {
	var class classModel.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(classModel.ScopeActive).
		First(&class, "class_id = ?", classID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Class not found")
	}
	if helper.GetUserRole(c) != constants.RoleAdmin && class.ClassInstructorID != userID {
		return nil, fiber.NewError(fiber.StatusForbidden, "Not authorized to mark attendance for this class")
	}
	return &class, nil
}

// isEnrolled reports whether the student has an active enrollment in the
// class's course.
func (ctl *AttendanceController) isEnrolled(c *fiber.Ctx, studentID, courseID uuid.UUID) (bool, error) {
	var n int64
	err := ctl.DB.WithContext(c.Context()).
		Model(&enrollModel.EnrollmentModel{}).
		Scopes(enrollModel.ScopeActive).
		Where("enrollment_student_id = ? AND enrollment_course_id = ?", studentID, courseID).
		Count(&n).Error
	return n > 0, err
}

// markPrecondition gates a mark attempt: the student account must exist and
// be active, and the student must hold an active enrollment in the class's
// course so records never attach to outsiders.
func markPrecondition(student *userModel.UserModel, enrolled bool) error {
	if student == nil || !student.IsActive {
		return fiber.NewError(fiber.StatusNotFound, "Student not found")
	}
	if !enrolled {
		return fiber.NewError(fiber.StatusNotFound, "Student not found among active enrollments of this course")
	}
	return nil
}

// markOne writes a single attendance record. The day-window pre-check gives
// a clean 409; under a race the composite unique index still wins and the
// duplicate surfaces through WritePGError.
func (ctl *AttendanceController) markOne(c *fiber.Ctx, class *classModel.ClassModel, studentID uuid.UUID, status string, at time.Time, timeIn, timeOut *time.Time, notes, excuseReason *string) (*model.AttendanceModel, error) {
	var student *userModel.UserModel
	var found userModel.UserModel
	err := ctl.DB.WithContext(c.Context()).
		First(&found, "id = ?", studentID).Error
	if err == nil {
		student = &found
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	enrolled, err := ctl.isEnrolled(c, studentID, class.ClassCourseID)
	if err != nil {
		return nil, err
	}
	if err := markPrecondition(student, enrolled); err != nil {
		return nil, err
	}

	dayStart, dayEnd := helper.DayWindow(at)
	var existing model.AttendanceModel
	err = ctl.DB.WithContext(c.Context()).
		Where("attendance_class_id = ? AND attendance_student_id = ?", class.ClassID, studentID).
		Where("attendance_day >= ? AND attendance_day < ?", dayStart, dayEnd).
		First(&existing).Error
	if err == nil {
		return nil, fiber.NewError(fiber.StatusConflict, "Attendance already marked for this student today")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	record := model.AttendanceModel{
		AttendanceClassID:      class.ClassID,
		AttendanceStudentID:    studentID,
		AttendanceDate:         at,
		AttendanceDay:          helper.DayOf(at),
		AttendanceStatus:       status,
		AttendanceTimeIn:       timeIn,
		AttendanceTimeOut:      timeOut,
		AttendanceNotes:        notes,
		AttendanceExcuseReason: excuseReason,
	}
	if err := ctl.DB.WithContext(c.Context()).Create(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

/* =========================
   POST /api/attendance
   ========================= */

func (ctl *AttendanceController) MarkAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.MarkAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}
	studentID, err := uuid.Parse(req.StudentID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}

	class, err := ctl.loadClassForMarking(c, classID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	at := time.Now()
	if req.Date != nil {
		at = *req.Date
	}

	record, err := ctl.markOne(c, class, studentID, req.Status, at, req.TimeIn, req.TimeOut, req.Notes, req.ExcuseReason)
	if err != nil {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}
		return helper.WritePGError(c, err)
	}

	return helper.JsonCreated(c, "Attendance marked successfully", fiber.Map{"attendance": record})
}

// bulkFailureReason turns a per-record mark error into a client-safe reason.
// Gate errors and mapped storage violations keep their message; anything
// else stays opaque and is reported for logging.
func bulkFailureReason(err error) (reason string, opaque bool) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Message, false
	}
	if status, msg := helper.MapPGError(err); status != fiber.StatusInternalServerError {
		return msg, false
	}
	return "Failed to mark attendance", true
}

/* =========================
   POST /api/attendance/bulk
   ========================= */

// Each record succeeds or fails on its own; a bad student never aborts the
// batch. Always 200 with success and failed lists.
func (ctl *AttendanceController) BulkMarkAttendance(c *fiber.Ctx) error {
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.BulkMarkRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	classID, err := uuid.Parse(req.ClassID)
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
	}
	class, err := ctl.loadClassForMarking(c, classID, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	at := time.Now()
	if req.Date != nil {
		at = *req.Date
	}

	success := []model.AttendanceModel{}
	failed := []d.BulkMarkFailure{}
	for _, rec := range req.Records {
		studentID, perr := uuid.Parse(rec.StudentID)
		if perr != nil {
			failed = append(failed, d.BulkMarkFailure{StudentID: rec.StudentID, Reason: "Invalid UUID format"})
			continue
		}
		record, merr := ctl.markOne(c, class, studentID, rec.Status, at, nil, nil, rec.Notes, nil)
		if merr != nil {
			reason, opaque := bulkFailureReason(merr)
			if opaque {
				log.Println("[ERROR] bulk mark:", merr)
			}
			failed = append(failed, d.BulkMarkFailure{StudentID: rec.StudentID, Reason: reason})
			continue
		}
		success = append(success, *record)
	}

	return helper.JsonOK(c, "Bulk attendance processed", fiber.Map{
		"success":      success,
		"failed":       failed,
		"total":        len(req.Records),
		"marked_count": len(success),
		"failed_count": len(failed),
	})
}

/* =========================
   GET /api/attendance/class/:classId/roster?date=YYYY-MM-DD
   ========================= */

// Roster = active enrollees of the class's course, in enrollment order,
// left-joined with that day's attendance.
func (ctl *AttendanceController) GetClassRoster(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "classId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var class classModel.ClassModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(classModel.ScopeActive).
		First(&class, "class_id = ?", classID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	day := helper.DayOf(time.Now())
	if ds := c.Query("date"); ds != "" {
		t, ok := helper.ParseDateYYYYMMDD(ds)
		if !ok {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
		}
		day = t
	}
	dayStart, dayEnd := helper.DayWindow(day)

	var enrollments []enrollModel.EnrollmentModel
	if err := ctl.DB.WithContext(c.Context()).
		Scopes(enrollModel.ScopeActive).
		Where("enrollment_course_id = ?", class.ClassCourseID).
		Order("enrollment_enrolled_at ASC").
		Preload("Student").
		Find(&enrollments).Error; err != nil {
		log.Println("[ERROR] roster enrollments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build roster")
	}

	var marked []model.AttendanceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("attendance_class_id = ?", classID).
		Where("attendance_day >= ? AND attendance_day < ?", dayStart, dayEnd).
		Find(&marked).Error; err != nil {
		log.Println("[ERROR] roster attendance:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build roster")
	}

	students := make([]d.RosterStudent, 0, len(enrollments))
	for _, e := range enrollments {
		if e.Student == nil {
			continue
		}
		students = append(students, d.RosterStudent{Student: *e.Student})
	}

	roster := d.BuildRoster(students, marked)
	return helper.JsonOK(c, "Roster fetched successfully", fiber.Map{
		"class_id": classID,
		"date":     day.Format("2006-01-02"),
		"roster":   roster,
		"count":    len(roster),
	})
}

/* =========================
   GET /api/attendance — staff list, filterable
   ========================= */

func (ctl *AttendanceController) GetAttendanceRecords(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c, 20, 200)

	q := ctl.DB.WithContext(c.Context()).Model(&model.AttendanceModel{})
	if cid := c.Query("class_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
		}
		q = q.Where("attendance_class_id = ?", id)
	}
	if sid := c.Query("student_id"); sid != "" {
		id, err := uuid.Parse(sid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
		}
		q = q.Where("attendance_student_id = ?", id)
	}
	if st := c.Query("status"); st != "" {
		if !model.IsValidStatus(st) {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid status filter")
		}
		q = q.Where("attendance_status = ?", st)
	}
	if from := c.Query("from"); from != "" {
		if t, ok := helper.ParseDateYYYYMMDD(from); ok {
			q = q.Where("attendance_day >= ?", t)
		}
	}
	if to := c.Query("to"); to != "" {
		if t, ok := helper.ParseDateYYYYMMDD(to); ok {
			q = q.Where("attendance_day < ?", t.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] count attendance:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	var records []model.AttendanceModel
	if err := q.Order("attendance_date DESC").
		Limit(paging.Limit).Offset(paging.Offset).
		Preload("Student").
		Preload("Class").
		Find(&records).Error; err != nil {
		log.Println("[ERROR] fetch attendance:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	p := helper.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	p.Count = len(records)
	return helper.JsonList(c, "Attendance fetched successfully", records, &p)
}

/* =========================
   GET /api/attendance/my — student self view
   ========================= */

func (ctl *AttendanceController) GetMyAttendance(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	q := ctl.DB.WithContext(c.Context()).
		Where("attendance_student_id = ?", studentID)
	if cid := c.Query("class_id"); cid != "" {
		id, perr := uuid.Parse(cid)
		if perr != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
		}
		q = q.Where("attendance_class_id = ?", id)
	}

	var records []model.AttendanceModel
	if err := q.Order("attendance_date DESC").
		Preload("Class").
		Find(&records).Error; err != nil {
		log.Println("[ERROR] my attendance:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	// summary per status
	summary := map[string]int{}
	for _, r := range records {
		summary[r.AttendanceStatus]++
	}

	return helper.JsonOK(c, "Attendance fetched successfully", fiber.Map{
		"records": records,
		"summary": summary,
		"count":   len(records),
	})
}

/* =========================
   GET /api/attendance/class/:classId/:date
   ========================= */

func (ctl *AttendanceController) GetClassAttendanceByDate(c *fiber.Ctx) error {
	classID, err := parseUUIDParam(c, "classId")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	day, ok := helper.ParseDateYYYYMMDD(c.Params("date"))
	if !ok {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid date format, expected YYYY-MM-DD")
	}
	dayStart, dayEnd := helper.DayWindow(day)

	var records []model.AttendanceModel
	if err := ctl.DB.WithContext(c.Context()).
		Where("attendance_class_id = ?", classID).
		Where("attendance_day >= ? AND attendance_day < ?", dayStart, dayEnd).
		Preload("Student").
		Find(&records).Error; err != nil {
		log.Println("[ERROR] class attendance by date:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to retrieve attendance")
	}

	return helper.JsonOK(c, "Attendance fetched successfully", fiber.Map{
		"class_id": classID,
		"date":     day.Format("2006-01-02"),
		"records":  records,
		"count":    len(records),
	})
}

/* =========================
   PATCH /api/attendance/:id
   ========================= */

func (ctl *AttendanceController) UpdateAttendance(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var record model.AttendanceModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Class").
		First(&record, "attendance_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
	}

	if helper.GetUserRole(c) != constants.RoleAdmin &&
		(record.Class == nil || record.Class.ClassInstructorID != userID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to update this record")
	}

	var req d.UpdateAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	req.Apply(&record)
	if err := ctl.DB.WithContext(c.Context()).Save(&record).Error; err != nil {
		log.Println("[ERROR] update attendance:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update attendance")
	}

	return helper.JsonUpdated(c, "Attendance updated successfully", fiber.Map{"attendance": record})
}

/* =========================
   PATCH /api/attendance/:id/excuse
   ========================= */

func (ctl *AttendanceController) ApproveExcuse(c *fiber.Ctx) error {
	id, err := parseUUIDParam(c, "id")
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	userID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req d.ApproveExcuseRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	var record model.AttendanceModel
	if err := ctl.DB.WithContext(c.Context()).
		Preload("Class").
		First(&record, "attendance_id = ?", id).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Attendance record not found")
	}

	if helper.GetUserRole(c) != constants.RoleAdmin &&
		(record.Class == nil || record.Class.ClassInstructorID != userID) {
		return helper.JsonError(c, fiber.StatusForbidden, "Not authorized to review this excuse")
	}

	if record.AttendanceExcuseReason == nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "No excuse reason on this record")
	}

	d.ApplyExcuseDecision(&record, req.Approved)
	if err := ctl.DB.WithContext(c.Context()).Save(&record).Error; err != nil {
		log.Println("[ERROR] excuse decision:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update excuse")
	}

	msg := "Excuse rejected"
	if req.Approved {
		msg = "Excuse approved"
	}
	return helper.JsonUpdated(c, msg, fiber.Map{"attendance": record})
}
