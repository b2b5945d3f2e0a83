package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"fulfilment-backend/internal/domains/store"
	"fulfilment-backend/internal/shared/apperror"
	"fulfilment-backend/internal/shared/response"
)

type StoreHandler struct {
	service store.StoreService
}

func NewStoreHandler(service store.StoreService) *StoreHandler {
	return &StoreHandler{service: service}
}

// GET /store
func (h *StoreHandler) List(c *gin.Context) {
	stores, err := h.service.List(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Stores retrieved successfully", stores)
}

// GET /store/:id
func (h *StoreHandler) Get(c *gin.Context) {
	id, ok := storeID(c)
	if !ok {
		return
	}

	s, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Store retrieved successfully", s)
}

// POST /store
func (h *StoreHandler) Create(c *gin.Context) {
	var req store.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, string(apperror.CodeValidation), "Invalid request body", err.Error())
		return
	}

	s, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, "Store created successfully", s)
}

// PUT /store/:id
func (h *StoreHandler) Update(c *gin.Context) {
	id, ok := storeID(c)
	if !ok {
		return
	}

	var req store.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, string(apperror.CodeValidation), "Invalid request body", err.Error())
		return
	}

	s, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Store updated successfully", s)
}

// PATCH /store/:id
func (h *StoreHandler) Patch(c *gin.Context) {
	id, ok := storeID(c)
	if !ok {
		return
	}

	var req store.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, string(apperror.CodeValidation), "Invalid request body", err.Error())
		return
	}

	s, err := h.service.Patch(c.Request.Context(), id, req)
	if err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Store updated successfully", s)
}

// DELETE /store/:id
func (h *StoreHandler) Delete(c *gin.Context) {
	id, ok := storeID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.FromError(c, err)
		return
	}
	response.Success(c, http.StatusOK, "Store deleted successfully", nil)
}

func storeID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Fail(c, http.StatusUnprocessableEntity, string(apperror.CodeValidation), "id must be an integer", nil)
		return 0, false
	}
	return id, true
}
