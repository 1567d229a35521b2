package request

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSignupRequest_Validate(t *testing.T) {
	tests := []struct {
		name    string
		req     SignupRequest
		wantErr bool
	}{
		{"valid", SignupRequest{Username: "organizer1", Password: "passw0rd123"}, false},
		{"missing username", SignupRequest{Password: "passw0rd123"}, true},
		{"missing password", SignupRequest{Username: "organizer1"}, true},
		{"short password", SignupRequest{Username: "organizer1", Password: "a1"}, true},
		{"password without digits", SignupRequest{Username: "organizer1", Password: "passwords"}, true},
		{"password without letters", SignupRequest{Username: "organizer1", Password: "123456789"}, true},
		{"username too short", SignupRequest{Username: "ab", Password: "passw0rd123"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLoginRequest_Validate(t *testing.T) {
	assert.NoError(t, (&LoginRequest{Username: "organizer1", Password: "x"}).Validate())
	assert.Error(t, (&LoginRequest{Username: "organizer1"}).Validate())
	assert.Error(t, (&LoginRequest{Password: "x"}).Validate())
}

func TestUpdateCollegeRequest_Validate(t *testing.T) {
	points := func(v int) *int { return &v }

	assert.NoError(t, (&UpdateCollegeRequest{Points: points(42)}).Validate())
	assert.NoError(t, (&UpdateCollegeRequest{Points: points(0)}).Validate(), "explicit zero is a valid value")
	assert.Error(t, (&UpdateCollegeRequest{}).Validate(), "absent field is rejected")
	assert.Error(t, (&UpdateCollegeRequest{Points: points(-1)}).Validate())
}

func TestCreateDepartmentsRequest_Validate(t *testing.T) {
	valid := CreateDepartmentsRequest{
		{Name: "CSE", ImagePath: "/img/cse.png"},
		{Name: "ECE", ImagePath: "/img/ece.png"},
	}
	assert.NoError(t, valid.Validate())

	assert.Error(t, CreateDepartmentsRequest{}.Validate())
	assert.Error(t, CreateDepartmentsRequest{{Name: "CSE"}}.Validate())
	assert.Error(t, CreateDepartmentsRequest{{ImagePath: "/img/cse.png"}}.Validate())
}

func TestCreateWinnerRequest_Validate(t *testing.T) {
	valid := CreateWinnerRequest{
		Username:   "organizer1",
		Name:       "Asha",
		Department: "CSE",
		Semester:   "5",
		Event:      "Debate",
		Place:      "First",
	}
	assert.NoError(t, valid.Validate())

	missingPlace := valid
	missingPlace.Place = ""
	assert.Error(t, missingPlace.Validate())

	missingDepartment := valid
	missingDepartment.Department = ""
	assert.Error(t, missingDepartment.Validate())
}
