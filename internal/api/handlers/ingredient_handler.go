package handlers

import (
	"pantry-tracker/domain"
	"pantry-tracker/internal/api/presenters"
	"pantry-tracker/pkg/ingredient"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	IngredientHandler interface {
		CreateIngredient(c *fiber.Ctx) error
		GetIngredients(c *fiber.Ctx) error
		GetIngredient(c *fiber.Ctx) error
		UpdateIngredient(c *fiber.Ctx) error
		DeleteIngredient(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
		validator         *validator.Validate
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService, validator *validator.Validate) IngredientHandler {
	return &ingredientHandler{
		ingredientService: ingredientService,
		validator:         validator,
	}
}

func (h *ingredientHandler) CreateIngredient(c *fiber.Ctx) error {
	req := new(domain.CreateIngredientRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequest(c, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.ingredientService.CreateIngredient(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"ingredient": res})
}

func (h *ingredientHandler) GetIngredients(c *fiber.Ctx) error {
	filter := domain.IngredientFilter{
		NameLike:        c.Query("nameLike"),
		DescriptionLike: c.Query("descriptionLike"),
		TypeLike:        c.Query("typeLike"),
	}

	res, err := h.ingredientService.GetIngredients(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"ingredients": res})
}

func (h *ingredientHandler) GetIngredient(c *fiber.Ctx) error {
	res, err := h.ingredientService.GetIngredient(c.Context(), c.Params("name"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"ingredient": res})
}

func (h *ingredientHandler) UpdateIngredient(c *fiber.Ctx) error {
	fields := map[string]any{}
	if err := c.BodyParser(&fields); err != nil {
		return presenters.BadRequest(c, domain.MessageFailedBodyRequest)
	}

	res, err := h.ingredientService.UpdateIngredient(c.Context(), c.Params("name"), fields)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"ingredient": res})
}

func (h *ingredientHandler) DeleteIngredient(c *fiber.Ctx) error {
	name := c.Params("name")
	if err := h.ingredientService.DeleteIngredient(c.Context(), name); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": name})
}
