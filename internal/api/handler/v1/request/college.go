package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateCollegeRequest struct {
	Name string `json:"name"`
}

func (req *CreateCollegeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
	)
}

// UpdateCollegeRequest updates a college's points. Points is a pointer
// so an absent field can be told apart from an explicit zero.
type UpdateCollegeRequest struct {
	Points *int `json:"points"`
}

func (req *UpdateCollegeRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Points, validation.NotNil, validation.Min(0)),
	)
}
