package handlers

import (
	"fmt"
	"strconv"

	"pantry-tracker/domain"
	"pantry-tracker/internal/api/presenters"
	"pantry-tracker/pkg/jwt"
	"pantry-tracker/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		CreateUser(c *fiber.Ctx) error
		GetUsers(c *fiber.Ctx) error
		GetUser(c *fiber.Ctx) error
		UpdateUser(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error
		AddIngredient(c *fiber.Ctx) error
		RemoveIngredient(c *fiber.Ctx) error
		AddRecipe(c *fiber.Ctx) error
		RemoveRecipe(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
		jwtService  jwt.JWTService
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate, jwtService jwt.JWTService) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
		jwtService:  jwtService,
	}
}

// CreateUser is the admin path for adding users; unlike self-registration it
// may create other admins. The new user's token is returned alongside the
// user so an admin can hand off credentials immediately.
func (h *userHandler) CreateUser(c *fiber.Ctx) error {
	req := new(domain.CreateUserRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequest(c, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.userService.Register(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	token, err := h.jwtService.GenerateToken(res.Username, res.IsAdmin)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, fiber.Map{
		"user":  res,
		"token": token,
	})
}

func (h *userHandler) GetUsers(c *fiber.Ctx) error {
	res, err := h.userService.GetUsers(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"users": res})
}

func (h *userHandler) GetUser(c *fiber.Ctx) error {
	res, err := h.userService.GetUser(c.Context(), c.Params("username"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"user": res})
}

func (h *userHandler) UpdateUser(c *fiber.Ctx) error {
	fields := map[string]any{}
	if err := c.BodyParser(&fields); err != nil {
		return presenters.BadRequest(c, domain.MessageFailedBodyRequest)
	}

	res, err := h.userService.UpdateUser(c.Context(), c.Params("username"), fields)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"user": res})
}

func (h *userHandler) DeleteUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := h.userService.DeleteUser(c.Context(), username); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": username})
}

func (h *userHandler) AddIngredient(c *fiber.Ctx) error {
	res, err := h.userService.AddIngredient(c.Context(), c.Params("username"), c.Params("name"))
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"added": res.IngredientName})
}

func (h *userHandler) RemoveIngredient(c *fiber.Ctx) error {
	username := c.Params("username")
	name := c.Params("name")

	if err := h.userService.RemoveIngredient(c.Context(), username, name); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("Removed ingredient %s from user %s", name, username),
	})
}

func (h *userHandler) AddRecipe(c *fiber.Ctx) error {
	recipeID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, domain.ErrInvalidRecipeID)
	}

	res, err := h.userService.AddRecipe(c.Context(), c.Params("username"), recipeID)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{"added": res.RecipeID})
}

func (h *userHandler) RemoveRecipe(c *fiber.Ctx) error {
	recipeID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return presenters.ErrorResponse(c, domain.ErrInvalidRecipeID)
	}

	username := c.Params("username")
	if err := h.userService.RemoveRecipe(c.Context(), username, recipeID); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message": fmt.Sprintf("Removed recipe %d from user %s's favorites", recipeID, username),
	})
}
