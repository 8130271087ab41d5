package handlers

import (
	"errors"

	"FoodShare-Server/domain"
	"FoodShare-Server/internal/api/presenters"
	"FoodShare-Server/internal/utils"
	"FoodShare-Server/pkg/request"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RequestHandler interface {
		AddRequest(c *fiber.Ctx) error
		GetRequestsByFood(c *fiber.Ctx) error
		GetAllRequestsByFood(c *fiber.Ctx) error
		GetMyRequests(c *fiber.Ctx) error
		AcceptRequest(c *fiber.Ctx) error
		RejectRequest(c *fiber.Ctx) error
		DeleteRequest(c *fiber.Ctx) error
	}

	requestHandler struct {
		requestService request.RequestService
		validator      *validator.Validate
	}
)

func NewRequestHandler(requestService request.RequestService, validator *validator.Validate) RequestHandler {
	return &requestHandler{
		requestService: requestService,
		validator:      validator,
	}
}

func (h *requestHandler) AddRequest(c *fiber.Ctx) error {
	req := new(domain.AddFoodRequestRequest)

	if err := utils.DecodeStrict(c.Body(), req); err != nil {
		var disallowed *domain.DisallowedFieldError
		if errors.As(err, &disallowed) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, disallowed.Error())
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddRequest)
	}

	res, err := h.requestService.AddRequest(c.Context(), c.Params("id"), *req)
	if err != nil {
		return err
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *requestHandler) GetRequestsByFood(c *fiber.Ctx) error {
	requests, err := h.requestService.GetRequestsByFood(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return presenters.SuccessResponse(c, requests, fiber.StatusOK)
}

func (h *requestHandler) GetAllRequestsByFood(c *fiber.Ctx) error {
	requests, err := h.requestService.GetAllRequestsByFood(c.Context(), c.Params("foodId"))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidObjectID) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidFoodID)
		}
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError)
	}
	return presenters.SuccessResponse(c, requests, fiber.StatusOK)
}

func (h *requestHandler) GetMyRequests(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingEmailQuery)
	}

	requests, err := h.requestService.GetMyRequests(c.Context(), email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError)
	}
	return presenters.SuccessResponse(c, requests, fiber.StatusOK)
}

func (h *requestHandler) AcceptRequest(c *fiber.Ctx) error {
	req := new(domain.AcceptFoodRequestRequest)
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
		}
	}

	res, err := h.requestService.AcceptRequest(c.Context(), c.Params("id"), req.UserEmail)
	if err != nil {
		return err
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *requestHandler) RejectRequest(c *fiber.Ctx) error {
	res, err := h.requestService.RejectRequest(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *requestHandler) DeleteRequest(c *fiber.Ctx) error {
	res, err := h.requestService.DeleteRequest(c.Context(), c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
