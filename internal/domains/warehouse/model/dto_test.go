package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func validRequest() Request {
	return Request{
		BusinessUnitCode: "MWH.100",
		Location:         "ZWOLLE-001",
		Capacity:         intPtr(10),
		Stock:            intPtr(5),
	}
}

func TestRequestValidate(t *testing.T) {
	assert.NoError(t, validRequest().Validate())

	tests := []struct {
		name   string
		mutate func(*Request)
	}{
		{"missing business unit code", func(r *Request) { r.BusinessUnitCode = "" }},
		{"blank business unit code", func(r *Request) { r.BusinessUnitCode = "   " }},
		{"missing location", func(r *Request) { r.Location = "" }},
		{"blank location", func(r *Request) { r.Location = "  " }},
		{"missing capacity", func(r *Request) { r.Capacity = nil }},
		{"zero capacity", func(r *Request) { r.Capacity = intPtr(0) }},
		{"negative capacity", func(r *Request) { r.Capacity = intPtr(-1) }},
		{"missing stock", func(r *Request) { r.Stock = nil }},
		{"negative stock", func(r *Request) { r.Stock = intPtr(-1) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest()
			tt.mutate(&req)
			assert.Error(t, req.Validate())
		})
	}
}

func TestRequestZeroStockIsValid(t *testing.T) {
	req := validRequest()
	req.Stock = intPtr(0)
	assert.NoError(t, req.Validate())
}

func TestRequestNormalized(t *testing.T) {
	req := Request{
		BusinessUnitCode: "  MWH.100  ",
		Location:         " ZWOLLE-001 ",
		Capacity:         intPtr(10),
		Stock:            intPtr(5),
	}

	normalized := req.Normalized()

	assert.Equal(t, "MWH.100", normalized.BusinessUnitCode)
	assert.Equal(t, "ZWOLLE-001", normalized.Location)
}
