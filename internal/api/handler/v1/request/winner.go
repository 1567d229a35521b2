package request

import (
	validation "github.com/go-ozzo/ozzo-validation"
)

type CreateWinnerRequest struct {
	Username   string `json:"username"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Semester   string `json:"semester"`
	Event      string `json:"event"`
	Place      string `json:"place"`
}

func (req *CreateWinnerRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Username, validation.Required),
		validation.Field(&req.Name, validation.Required),
		validation.Field(&req.Department, validation.Required),
		validation.Field(&req.Semester, validation.Required),
		validation.Field(&req.Event, validation.Required),
		validation.Field(&req.Place, validation.Required),
	)
}
