package handlers

import (
	"Food-Traceability-Backend/domain"
	"Food-Traceability-Backend/internal/api/presenters"
	"Food-Traceability-Backend/pkg/traceability"
	"errors"
	"fmt"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	TraceabilityHandler interface {
		CreateFoodRecord(c *fiber.Ctx) error
		GetFoodRecords(c *fiber.Ctx) error
		GetFoodRecordDetail(c *fiber.Ctx) error
	}

	traceabilityHandler struct {
		traceabilityService traceability.TraceabilityService
		validator           *validator.Validate
	}
)

func NewTraceabilityHandler(traceabilityService traceability.TraceabilityService, validator *validator.Validate) TraceabilityHandler {
	return &traceabilityHandler{
		traceabilityService: traceabilityService,
		validator:           validator,
	}
}

func (h *traceabilityHandler) CreateFoodRecord(c *fiber.Ctx) error {
	req := new(domain.CreateFoodRecordRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecord, err)
	}

	if err := h.traceabilityService.CreateRecord(c.Context(), *req); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), createErrorMessage(err, req.ProductID), err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, fmt.Sprintf(domain.MessageSuccessCreateRecord, req.ProductID))
}

func (h *traceabilityHandler) GetFoodRecords(c *fiber.Ctx) error {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil {
		page = 1
	}

	pageSize, err := strconv.Atoi(c.Query("page_size", "10"))
	if err != nil {
		pageSize = 10
	}

	res, err := h.traceabilityService.ListRecords(c.Context(), page, pageSize)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedListRecords, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, "")
}

func (h *traceabilityHandler) GetFoodRecordDetail(c *fiber.Ctx) error {
	productID := c.Params("product_id")

	res, err := h.traceabilityService.GetRecordDetail(c.Context(), productID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, fmt.Sprintf(domain.MessageRecordNotFound, productID), err)
		}
		return presenters.ErrorResponse(c, presenters.StatusCode(err), domain.MessageFailedRecordDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, "")
}

func createErrorMessage(err error, productID string) string {
	switch {
	case errors.Is(err, domain.ErrProductIDExists):
		return fmt.Sprintf(domain.MessageProductIDExists, productID)
	case errors.Is(err, domain.ErrInvalidMetadata):
		return domain.MessageInvalidMetadata
	default:
		return domain.MessageFailedCreateRecord
	}
}
