package handlers

import (
	"strconv"

	"pantry-tracker/domain"
	"pantry-tracker/internal/api/presenters"
	"pantry-tracker/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		CreateRecipe(c *fiber.Ctx) error
		GetRecipes(c *fiber.Ctx) error
		GetRecipe(c *fiber.Ctx) error
		UpdateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
		AddIngredient(c *fiber.Ctx) error
		RemoveIngredient(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func recipeID(c *fiber.Ctx) (int, error) {
	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return 0, domain.ErrInvalidRecipeID
	}
	return id, nil
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequest(c, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, fiber.Map{"recipe": res})
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	filter := domain.RecipeFilter{
		NameLike:         c.Query("nameLike"),
		InstructionsLike: c.Query("instructionsLike"),
		CategoryLike:     c.Query("categoryLike"),
		AreaLike:         c.Query("areaLike"),
	}

	res, err := h.recipeService.GetRecipes(c.Context(), filter)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"recipes": res})
}

func (h *recipeHandler) GetRecipe(c *fiber.Ctx) error {
	id, err := recipeID(c)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.recipeService.GetRecipe(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"recipe": res})
}

func (h *recipeHandler) UpdateRecipe(c *fiber.Ctx) error {
	id, err := recipeID(c)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	fields := map[string]any{}
	if err := c.BodyParser(&fields); err != nil {
		return presenters.BadRequest(c, domain.MessageFailedBodyRequest)
	}

	res, err := h.recipeService.UpdateRecipe(c.Context(), id, fields)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"recipe": res})
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := recipeID(c)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": id})
}

func (h *recipeHandler) AddIngredient(c *fiber.Ctx) error {
	id, err := recipeID(c)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	req := new(domain.AddRecipeIngredientRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequest(c, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.recipeService.AddIngredient(c.Context(), id, c.Params("name"), req.Amount)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"added": res})
}

func (h *recipeHandler) RemoveIngredient(c *fiber.Ctx) error {
	id, err := recipeID(c)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	name := c.Params("name")
	if err := h.recipeService.RemoveIngredient(c.Context(), id, name); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"deletedIngredient": fiber.Map{"id": id, "name": name},
	})
}
