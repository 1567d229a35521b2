package request

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation"
)

var errEmptyDepartmentBatch = errors.New("expected a non-empty array of department objects")

type CreateDepartmentRequest struct {
	Name      string `json:"name"`
	ImagePath string `json:"imgpath"`
}

func (req *CreateDepartmentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 100)),
		validation.Field(&req.ImagePath, validation.Required),
	)
}

// CreateDepartmentsRequest is the bulk insert body: a bare JSON array
// of department objects, as posted by the admin form.
type CreateDepartmentsRequest []CreateDepartmentRequest

func (req CreateDepartmentsRequest) Validate() error {
	if len(req) == 0 {
		return errEmptyDepartmentBatch
	}

	for i := range req {
		if err := req[i].Validate(); err != nil {
			return err
		}
	}

	return nil
}

type UpdateDepartmentRequest struct {
	Points *int `json:"points"`
}

func (req *UpdateDepartmentRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Points, validation.NotNil, validation.Min(0)),
	)
}
