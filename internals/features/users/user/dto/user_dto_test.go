// file: internals/features/users/user/dto/user_dto_test.go
package dto

import (
	"testing"

	model "academyos_backend/internals/features/users/user/model"
)

func strPtr(s string) *string { return &s }

func TestUpdateUserRequestNormalize(t *testing.T) {
	req := UpdateUserRequest{
		FirstName: strPtr("  Ama "),
		LastName:  strPtr("   "),
		Phone:     strPtr("+233 20 000 0000"),
	}
	req.Normalize()

	if req.FirstName == nil || *req.FirstName != "Ama" {
		t.Fatalf("FirstName = %v", req.FirstName)
	}
	if req.LastName != nil {
		t.Fatal("blank field should normalize to nil")
	}
	if req.Phone == nil || *req.Phone != "+233 20 000 0000" {
		t.Fatalf("Phone = %v", req.Phone)
	}
}

func TestUpdateUserRequestApplyPartial(t *testing.T) {
	u := model.UserModel{FirstName: "Ama", LastName: "Mensah"}
	req := UpdateUserRequest{FirstName: strPtr("Akosua")}
	req.Apply(&u)

	if u.FirstName != "Akosua" {
		t.Fatalf("FirstName = %q", u.FirstName)
	}
	if u.LastName != "Mensah" {
		t.Fatal("absent field must not change")
	}
}

func TestUpdateUserRequestApplyDateOfBirth(t *testing.T) {
	u := model.UserModel{}
	req := UpdateUserRequest{DateOfBirth: strPtr("2008-09-15")}
	req.Apply(&u)

	if u.DateOfBirth == nil {
		t.Fatal("date of birth not applied")
	}
	if got := u.DateOfBirth.Format("2006-01-02"); got != "2008-09-15" {
		t.Fatalf("DateOfBirth = %s", got)
	}

	// malformed date is ignored, not zeroed
	before := *u.DateOfBirth
	bad := UpdateUserRequest{DateOfBirth: strPtr("15/09/2008")}
	bad.Apply(&u)
	if u.DateOfBirth == nil || !u.DateOfBirth.Equal(before) {
		t.Fatal("malformed date should leave the field alone")
	}
}

func TestLinkChildRequestNormalize(t *testing.T) {
	req := LinkChildRequest{StudentEmail: "  Kofi@Example.COM "}
	req.Normalize()
	if req.StudentEmail != "kofi@example.com" {
		t.Fatalf("StudentEmail = %q", req.StudentEmail)
	}
}
