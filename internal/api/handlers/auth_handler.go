package handlers

import (
	"pantry-tracker/domain"
	"pantry-tracker/internal/api/presenters"
	"pantry-tracker/pkg/jwt"
	"pantry-tracker/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	AuthHandler interface {
		Login(c *fiber.Ctx) error
		Register(c *fiber.Ctx) error
	}

	authHandler struct {
		userService user.UserService
		validator   *validator.Validate
		jwtService  jwt.JWTService
	}
)

func NewAuthHandler(userService user.UserService, validator *validator.Validate, jwtService jwt.JWTService) AuthHandler {
	return &authHandler{
		userService: userService,
		validator:   validator,
		jwtService:  jwtService,
	}
}

func (h *authHandler) Login(c *fiber.Ctx) error {
	req := new(domain.LoginRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequest(c, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.userService.Authenticate(c.Context(), *req)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	token, err := h.jwtService.GenerateToken(res.Username, res.IsAdmin)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusOK, domain.TokenResponse{Token: token})
}

// Register is open self-registration; it never grants admin rights.
func (h *authHandler) Register(c *fiber.Ctx) error {
	req := new(domain.RegisterRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.BadRequest(c, domain.MessageFailedBodyRequest)
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, err)
	}

	res, err := h.userService.Register(c.Context(), domain.CreateUserRequest{
		Username:  req.Username,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   false,
	})
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	token, err := h.jwtService.GenerateToken(res.Username, res.IsAdmin)
	if err != nil {
		return presenters.ErrorResponse(c, err)
	}

	return presenters.SuccessResponse(c, fiber.StatusCreated, domain.TokenResponse{Token: token})
}
