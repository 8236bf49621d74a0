// file: internals/features/dashboard/controller/dashboard_controller.go
package controller

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	assignModel "academyos_backend/internals/features/academics/assignment/model"
	classModel "academyos_backend/internals/features/academics/class/model"
	courseModel "academyos_backend/internals/features/academics/course/model"
	attModel "academyos_backend/internals/features/attendance/model"
	enrollModel "academyos_backend/internals/features/enrollments/model"
	userModel "academyos_backend/internals/features/users/user/model"
	helper "academyos_backend/internals/helpers"
)

type DashboardController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDashboardController(db *gorm.DB, v *validator.Validate) *DashboardController {
	return &DashboardController{DB: db, Validate: v}
}

// AttendanceRate: share of records counted as attended (present or late).
// No records at all reads as 100 so a fresh student doesn't start at zero.
func AttendanceRate(present, late, total int64) float64 {
	if total == 0 {
		return 100
	}
	return float64(present+late) / float64(total) * 100
}

/* =========================
   GET /api/dashboard/student
   ========================= */

func (ctl *DashboardController) StudentDashboard(c *fiber.Ctx) error {
	studentID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	db := ctl.DB.WithContext(c.Context())

	var enrollments []enrollModel.EnrollmentModel
	if err := db.Where("enrollment_student_id = ?", studentID).
		Preload("Course").
		Find(&enrollments).Error; err != nil {
		log.Println("[ERROR] student dashboard enrollments:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	var active, completed int
	var credits int
	var gradeSum float64
	var gradeN int
	activeCourseIDs := []uuid.UUID{}
	for _, e := range enrollments {
		switch e.EnrollmentStatus {
		case enrollModel.EnrollmentStatusActive:
			active++
			activeCourseIDs = append(activeCourseIDs, e.EnrollmentCourseID)
			if e.Course != nil {
				credits += e.Course.CourseCredits
			}
		case enrollModel.EnrollmentStatusCompleted:
			completed++
		}
		if e.EnrollmentGrade != nil {
			gradeSum += *e.EnrollmentGrade
			gradeN++
		}
	}
	var avgGrade *float64
	if gradeN > 0 {
		g := gradeSum / float64(gradeN)
		avgGrade = &g
	}

	now := time.Now()
	var upcoming []classModel.ClassModel
	if len(activeCourseIDs) > 0 {
		if err := db.Scopes(classModel.ScopeActive).
			Where("class_course_id IN ?", activeCourseIDs).
			Where("class_start_time > ? AND class_status = ?", now, classModel.ClassStatusScheduled).
			Order("class_start_time ASC").
			Limit(5).
			Find(&upcoming).Error; err != nil {
			log.Println("[ERROR] student dashboard classes:", err)
		}
	}

	var pendingAssignments int64
	if len(activeCourseIDs) > 0 {
		db.Model(&assignModel.AssignmentModel{}).
			Scopes(assignModel.ScopeActive).
			Where("assignment_course_id IN ?", activeCourseIDs).
			Where("assignment_status = ? AND assignment_due_date > ?", assignModel.AssignmentStatusPublished, now).
			Count(&pendingAssignments)
	}

	var total, present, late int64
	db.Model(&attModel.AttendanceModel{}).
		Where("attendance_student_id = ?", studentID).Count(&total)
	db.Model(&attModel.AttendanceModel{}).
		Where("attendance_student_id = ? AND attendance_status = ?", studentID, attModel.AttendanceStatusPresent).Count(&present)
	db.Model(&attModel.AttendanceModel{}).
		Where("attendance_student_id = ? AND attendance_status = ?", studentID, attModel.AttendanceStatusLate).Count(&late)

	return helper.JsonOK(c, "Dashboard fetched successfully", fiber.Map{
		"enrollments": fiber.Map{
			"total":     len(enrollments),
			"active":    active,
			"completed": completed,
		},
		"credits":             credits,
		"average_grade":       avgGrade,
		"upcoming_classes":    upcoming,
		"pending_assignments": pendingAssignments,
		"attendance_rate":     AttendanceRate(present, late, total),
	})
}

/* =========================
   GET /api/dashboard/teacher
   ========================= */

func (ctl *DashboardController) TeacherDashboard(c *fiber.Ctx) error {
	teacherID, err := helper.GetUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	db := ctl.DB.WithContext(c.Context())

	var courses []courseModel.CourseModel
	if err := db.Scopes(courseModel.ScopeActive).
		Joins("JOIN course_instructors ci ON ci.course_id = courses.course_id AND ci.user_id = ?", teacherID).
		Find(&courses).Error; err != nil {
		log.Println("[ERROR] teacher dashboard courses:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load dashboard")
	}

	courseIDs := make([]uuid.UUID, 0, len(courses))
	for _, co := range courses {
		courseIDs = append(courseIDs, co.CourseID)
	}

	var distinctStudents int64
	if len(courseIDs) > 0 {
		db.Model(&enrollModel.EnrollmentModel{}).
			Scopes(enrollModel.ScopeActive).
			Where("enrollment_course_id IN ?", courseIDs).
			Distinct("enrollment_student_id").
			Count(&distinctStudents)
	}

	now := time.Now()
	var upcomingClasses int64
	db.Model(&classModel.ClassModel{}).
		Scopes(classModel.ScopeActive).
		Where("class_instructor_id = ?", teacherID).
		Where("class_start_time > ? AND class_status = ?", now, classModel.ClassStatusScheduled).
		Count(&upcomingClasses)

	var recentEnrollments []enrollModel.EnrollmentModel
	if len(courseIDs) > 0 {
		db.Scopes(enrollModel.ScopeActive).
			Where("enrollment_course_id IN ?", courseIDs).
			Order("enrollment_enrolled_at DESC").
			Limit(5).
			Preload("Student").
			Preload("Course").
			Find(&recentEnrollments)
	}

	var pendingExcuses int64
	db.Model(&attModel.AttendanceModel{}).
		Joins("JOIN classes ON classes.class_id = attendances.attendance_class_id").
		Where("classes.class_instructor_id = ?", teacherID).
		Where("attendances.attendance_excuse_reason IS NOT NULL AND attendances.attendance_excuse_approved IS NULL").
		Count(&pendingExcuses)

	return helper.JsonOK(c, "Dashboard fetched successfully", fiber.Map{
		"courses":            len(courses),
		"students":           distinctStudents,
		"upcoming_classes":   upcomingClasses,
		"recent_enrollments": recentEnrollments,
		"pending_excuses":    pendingExcuses,
	})
}

/* =========================
   GET /api/dashboard/admin
   ========================= */

func (ctl *DashboardController) AdminDashboard(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.Context())

	var totalUsers, totalCourses, totalClasses, totalEnrollments int64
	db.Model(&userModel.UserModel{}).Count(&totalUsers)
	db.Model(&courseModel.CourseModel{}).Scopes(courseModel.ScopeActive).Count(&totalCourses)
	db.Model(&classModel.ClassModel{}).Scopes(classModel.ScopeActive).Count(&totalClasses)
	db.Model(&enrollModel.EnrollmentModel{}).Count(&totalEnrollments)

	type kv struct {
		Key   string `json:"key"`
		Total int64  `json:"total"`
	}
	var byRole []kv
	db.Model(&userModel.UserModel{}).
		Select("role AS key, COUNT(*) AS total").
		Group("role").Scan(&byRole)

	var byEnrollmentStatus []kv
	db.Model(&enrollModel.EnrollmentModel{}).
		Select("enrollment_status AS key, COUNT(*) AS total").
		Group("enrollment_status").Scan(&byEnrollmentStatus)

	var avgEnrollPerCourse float64
	db.Model(&courseModel.CourseModel{}).
		Scopes(courseModel.ScopeActive).
		Select("COALESCE(AVG(course_total_enrollments), 0)").
		Scan(&avgEnrollPerCourse)

	return helper.JsonOK(c, "Dashboard fetched successfully", fiber.Map{
		"totals": fiber.Map{
			"users":       totalUsers,
			"courses":     totalCourses,
			"classes":     totalClasses,
			"enrollments": totalEnrollments,
		},
		"users_by_role":          byRole,
		"enrollments_by_status":  byEnrollmentStatus,
		"avg_enrollments_course": avgEnrollPerCourse,
		"enrollment_trend":       ctl.enrollmentTrend(c),
	})
}

// enrollmentTrend: per-month enrollment counts for the last six months,
// oldest first.
func (ctl *DashboardController) enrollmentTrend(c *fiber.Ctx) []fiber.Map {
	db := ctl.DB.WithContext(c.Context())

	type monthRow struct {
		Month time.Time `json:"month"`
		Total int64     `json:"total"`
	}
	since := time.Now().UTC().AddDate(0, -6, 0)
	var rows []monthRow
	if err := db.Model(&enrollModel.EnrollmentModel{}).
		Select("date_trunc('month', enrollment_enrolled_at) AS month, COUNT(*) AS total").
		Where("enrollment_enrolled_at >= ?", since).
		Group("month").
		Order("month ASC").
		Scan(&rows).Error; err != nil {
		log.Println("[ERROR] enrollment trend:", err)
		return []fiber.Map{}
	}

	out := make([]fiber.Map, 0, len(rows))
	for _, r := range rows {
		out = append(out, fiber.Map{
			"month": r.Month.Format("2006-01"),
			"total": r.Total,
		})
	}
	return out
}

/* =========================
   GET /api/reports/enrollments
   ========================= */

func (ctl *DashboardController) EnrollmentReport(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.Context())

	var totalActive int64
	db.Model(&enrollModel.EnrollmentModel{}).
		Scopes(enrollModel.ScopeActive).
		Count(&totalActive)

	type topCourse struct {
		CourseID    uuid.UUID `json:"course_id"`
		CourseTitle string    `json:"course_title"`
		Total       int64     `json:"total"`
	}
	var top []topCourse
	if err := db.Model(&courseModel.CourseModel{}).
		Scopes(courseModel.ScopeActive).
		Select("course_id, course_title, course_total_enrollments AS total").
		Order("course_total_enrollments DESC").
		Limit(5).
		Scan(&top).Error; err != nil {
		log.Println("[ERROR] enrollment report:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}

	return helper.JsonOK(c, "Report generated successfully", fiber.Map{
		"total_active": totalActive,
		"top_courses":  top,
		"trend":        ctl.enrollmentTrend(c),
	})
}

/* =========================
   GET /api/reports/attendance?from=&to=&class_id=
   ========================= */

func (ctl *DashboardController) AttendanceReport(c *fiber.Ctx) error {
	db := ctl.DB.WithContext(c.Context())

	q := db.Model(&attModel.AttendanceModel{})
	if cid := c.Query("class_id"); cid != "" {
		id, err := uuid.Parse(cid)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Invalid UUID format")
		}
		q = q.Where("attendance_class_id = ?", id)
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

	type kv struct {
		Key   string `json:"key"`
		Total int64  `json:"total"`
	}
	var byStatus []kv
	if err := q.Select("attendance_status AS key, COUNT(*) AS total").
		Group("attendance_status").
		Scan(&byStatus).Error; err != nil {
		log.Println("[ERROR] attendance report:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build report")
	}

	var total, present, late int64
	for _, row := range byStatus {
		total += row.Total
		switch row.Key {
		case attModel.AttendanceStatusPresent:
			present = row.Total
		case attModel.AttendanceStatusLate:
			late = row.Total
		}
	}

	return helper.JsonOK(c, "Report generated successfully", fiber.Map{
		"total":           total,
		"by_status":       byStatus,
		"attendance_rate": AttendanceRate(present, late, total),
	})
}
