package handlers

import (
	"errors"

	"FoodShare-Server/domain"
	"FoodShare-Server/internal/api/presenters"
	"FoodShare-Server/internal/utils"
	"FoodShare-Server/pkg/food"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	FoodHandler interface {
		GetFoods(c *fiber.Ctx) error
		GetAllFoods(c *fiber.Ctx) error
		GetFoodByID(c *fiber.Ctx) error
		GetMyFoods(c *fiber.Ctx) error
		AddFood(c *fiber.Ctx) error
		UpdateFood(c *fiber.Ctx) error
		DeleteFood(c *fiber.Ctx) error
	}

	foodHandler struct {
		foodService food.FoodService
		validator   *validator.Validate
	}
)

func NewFoodHandler(foodService food.FoodService, validator *validator.Validate) FoodHandler {
	return &foodHandler{
		foodService: foodService,
		validator:   validator,
	}
}

func (h *foodHandler) GetFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetAvailableFoods(c.Context())
	if err != nil {
		return err
	}
	return presenters.SuccessResponse(c, foods, fiber.StatusOK)
}

func (h *foodHandler) GetAllFoods(c *fiber.Ctx) error {
	foods, err := h.foodService.GetAllFoods(c.Context())
	if err != nil {
		return err
	}
	return presenters.SuccessResponse(c, foods, fiber.StatusOK)
}

func (h *foodHandler) GetFoodByID(c *fiber.Ctx) error {
	foodItem, err := h.foodService.GetFoodByID(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return presenters.SuccessResponse(c, foodItem, fiber.StatusOK)
}

func (h *foodHandler) GetMyFoods(c *fiber.Ctx) error {
	email := c.Query("email")
	if email == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageMissingEmailQuery)
	}

	foods, err := h.foodService.GetMyFoods(c.Context(), email)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageInternalServerError)
	}
	return presenters.SuccessResponse(c, foods, fiber.StatusOK)
}

func (h *foodHandler) AddFood(c *fiber.Ctx) error {
	req := new(domain.AddFoodRequest)

	if err := utils.DecodeStrict(c.Body(), req); err != nil {
		var disallowed *domain.DisallowedFieldError
		if errors.As(err, &disallowed) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, disallowed.Error())
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddFood)
	}

	res, err := h.foodService.AddFood(c.Context(), *req)
	if err != nil {
		return err
	}
	return presenters.SuccessResponse(c, res, fiber.StatusCreated)
}

func (h *foodHandler) UpdateFood(c *fiber.Ctx) error {
	fields, err := utils.DecodeStrictMap(c.Body(), &domain.UpdateFoodRequest{})
	if err != nil {
		var disallowed *domain.DisallowedFieldError
		if errors.As(err, &disallowed) {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, disallowed.Error())
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest)
	}

	res, err := h.foodService.UpdateFood(c.Context(), c.Params("id"), fields)
	if err != nil {
		return err
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}

func (h *foodHandler) DeleteFood(c *fiber.Ctx) error {
	res, err := h.foodService.DeleteFood(c.Context(), c.Params("id"))
	if err != nil {
		return err
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK)
}
