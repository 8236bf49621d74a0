// file: internals/features/attendance/dto/attendance_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"

	"academyos_backend/internals/features/attendance/model"
	userModel "academyos_backend/internals/features/users/user/model"
)

func student(name string) RosterStudent {
	return RosterStudent{Student: userModel.UserModel{
		ID:        uuid.New(),
		FirstName: name,
		LastName:  "Mensah",
		Email:     name + "@example.com",
	}}
}

func TestBuildRosterLeftJoin(t *testing.T) {
	a, b, c := student("ama"), student("kofi"), student("esi")
	marked := []model.AttendanceModel{
		{AttendanceStudentID: b.Student.ID, AttendanceStatus: model.AttendanceStatusPresent},
	}

	roster := BuildRoster([]RosterStudent{a, b, c}, marked)
	if len(roster) != 3 {
		t.Fatalf("roster size = %d, want 3", len(roster))
	}

	// enrollment order preserved
	if roster[0].Student.ID != a.Student.ID || roster[2].Student.ID != c.Student.ID {
		t.Fatal("roster order does not follow enrollment order")
	}

	if roster[0].Attendance != nil {
		t.Fatal("unmarked student should have nil attendance")
	}
	if roster[1].Attendance == nil || roster[1].Attendance.AttendanceStatus != model.AttendanceStatusPresent {
		t.Fatal("marked student lost their record")
	}
	if roster[2].Attendance != nil {
		t.Fatal("unmarked student should have nil attendance")
	}
}

func TestBuildRosterEmpty(t *testing.T) {
	roster := BuildRoster(nil, nil)
	if len(roster) != 0 {
		t.Fatalf("expected empty roster, got %d entries", len(roster))
	}
}

func TestBuildRosterIgnoresForeignRecords(t *testing.T) {
	a := student("ama")
	// record for a student not on the roster must not create an entry
	marked := []model.AttendanceModel{
		{AttendanceStudentID: uuid.New(), AttendanceStatus: model.AttendanceStatusLate},
	}
	roster := BuildRoster([]RosterStudent{a}, marked)
	if len(roster) != 1 {
		t.Fatalf("roster size = %d, want 1", len(roster))
	}
	if roster[0].Attendance != nil {
		t.Fatal("foreign attendance record leaked into roster")
	}
}

func TestApplyExcuseDecisionApprove(t *testing.T) {
	rec := model.AttendanceModel{AttendanceStatus: model.AttendanceStatusAbsent}
	ApplyExcuseDecision(&rec, true)

	if rec.AttendanceExcuseApproved == nil || !*rec.AttendanceExcuseApproved {
		t.Fatal("approval flag not set")
	}
	if rec.AttendanceStatus != model.AttendanceStatusExcused {
		t.Fatalf("status = %q, want excused", rec.AttendanceStatus)
	}
}

func TestApplyExcuseDecisionRejectKeepsStatus(t *testing.T) {
	rec := model.AttendanceModel{AttendanceStatus: model.AttendanceStatusAbsent}
	ApplyExcuseDecision(&rec, false)

	if rec.AttendanceExcuseApproved == nil || *rec.AttendanceExcuseApproved {
		t.Fatal("rejection flag not set")
	}
	if rec.AttendanceStatus != model.AttendanceStatusAbsent {
		t.Fatalf("rejection must not change status, got %q", rec.AttendanceStatus)
	}
}

func TestUpdateAttendanceRequestApplyPartial(t *testing.T) {
	rec := model.AttendanceModel{
		AttendanceStatus: model.AttendanceStatusPresent,
	}
	notes := "left early"
	status := model.AttendanceStatusLate
	req := UpdateAttendanceRequest{Status: &status, Notes: &notes}
	req.Apply(&rec)

	if rec.AttendanceStatus != model.AttendanceStatusLate {
		t.Fatalf("status = %q", rec.AttendanceStatus)
	}
	if rec.AttendanceNotes == nil || *rec.AttendanceNotes != "left early" {
		t.Fatal("notes not applied")
	}
	if rec.AttendanceExcuseReason != nil {
		t.Fatal("untouched field changed")
	}
}
