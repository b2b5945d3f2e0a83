package model

import (
	"errors"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Request is the inbound body for creating or replacing a warehouse.
// Capacity and Stock are pointers so that "absent" and "zero" stay
// distinguishable during validation.
type Request struct {
	BusinessUnitCode string `json:"businessUnitCode"`
	Location         string `json:"location"`
	Capacity         *int   `json:"capacity"`
	Stock            *int   `json:"stock"`
}

func (r Request) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.BusinessUnitCode,
			validation.Required.Error("businessUnitCode is required"),
			validation.By(notBlank),
		),
		validation.Field(&r.Location,
			validation.Required.Error("location is required"),
			validation.By(notBlank),
		),
		validation.Field(&r.Capacity,
			validation.NotNil.Error("capacity is required"),
			validation.Min(1).Error("capacity must be greater than zero"),
		),
		validation.Field(&r.Stock,
			validation.NotNil.Error("stock is required"),
			validation.Min(0).Error("stock must not be negative"),
		),
	)
}

// Normalized returns a copy with surrounding whitespace stripped from the
// identifying fields. Call only after Validate has passed.
func (r Request) Normalized() Request {
	r.BusinessUnitCode = strings.TrimSpace(r.BusinessUnitCode)
	r.Location = strings.TrimSpace(r.Location)
	return r
}

func notBlank(value interface{}) error {
	s, _ := value.(string)
	if strings.TrimSpace(s) == "" {
		return errors.New("must not be blank")
	}
	return nil
}
