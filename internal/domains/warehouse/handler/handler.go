package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"fulfilment-backend/internal/domains/warehouse/model"
	"fulfilment-backend/internal/domains/warehouse/service"
	"fulfilment-backend/internal/shared/apperror"
	"fulfilment-backend/internal/shared/response"
)

type WarehouseHandler struct {
	service service.WarehouseService
}

func NewWarehouseHandler(service service.WarehouseService) *WarehouseHandler {
	return &WarehouseHandler{service: service}
}

// List godoc
// GET /warehouse
func (h *WarehouseHandler) List(c *gin.Context) {
	warehouses, err := h.service.ListActive(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Warehouses retrieved successfully", warehouses)
}

// Get godoc
// GET /warehouse/:businessUnitCode
func (h *WarehouseHandler) Get(c *gin.Context) {
	w, err := h.service.GetActive(c.Request.Context(), c.Param("businessUnitCode"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Warehouse retrieved successfully", w)
}

// Create godoc
// POST /warehouse
func (h *WarehouseHandler) Create(c *gin.Context) {
	var req model.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, string(apperror.CodeValidation), "Invalid request body", err.Error())
		return
	}

	w, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Warehouse created successfully", w)
}

// Replace godoc
// POST /warehouse/:businessUnitCode/replacement
func (h *WarehouseHandler) Replace(c *gin.Context) {
	var req model.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, string(apperror.CodeValidation), "Invalid request body", err.Error())
		return
	}
	// The path owns the identity; a diverging code in the body is ignored.
	req.BusinessUnitCode = c.Param("businessUnitCode")

	w, err := h.service.Replace(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Warehouse replaced successfully", w)
}

// Archive godoc
// DELETE /warehouse/:businessUnitCode
func (h *WarehouseHandler) Archive(c *gin.Context) {
	w, err := h.service.Archive(c.Request.Context(), c.Param("businessUnitCode"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Warehouse archived successfully", w)
}
