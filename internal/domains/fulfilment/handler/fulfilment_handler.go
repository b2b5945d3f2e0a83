package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fulfilment-backend/internal/domains/fulfilment"
	"fulfilment-backend/internal/shared/apperror"
	"fulfilment-backend/internal/shared/response"
)

type FulfilmentHandler struct {
	service fulfilment.FulfilmentService
}

func NewFulfilmentHandler(service fulfilment.FulfilmentService) *FulfilmentHandler {
	return &FulfilmentHandler{service: service}
}

// POST /fulfilment/stores/:storeId/products/:productId/warehouses/:businessUnitCode
func (h *FulfilmentHandler) Assign(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}
	productID, ok := pathID(c, "productId")
	if !ok {
		return
	}

	assignment, err := h.service.Assign(c.Request.Context(), storeID, productID, c.Param("businessUnitCode"))
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Warehouse assigned successfully", assignment)
}

// GET /fulfilment/stores/:storeId
func (h *FulfilmentHandler) ListByStore(c *gin.Context) {
	storeID, ok := pathID(c, "storeId")
	if !ok {
		return
	}

	assignments, err := h.service.ListByStore(c.Request.Context(), storeID)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Fulfilments retrieved successfully", assignments)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, string(apperror.CodeValidation), name+" must be an integer", nil)
		return 0, false
	}
	return id, true
}
