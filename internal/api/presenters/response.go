package presenters

import (
	"errors"

	"pantry-tracker/domain"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// statusOf maps domain sentinels to HTTP statuses. Anything unrecognized is
// treated as an infrastructure fault and reported as a 500 without detail.
var statusOf = map[error]int{
	domain.ErrNoUpdateData:       fiber.StatusBadRequest,
	domain.ErrUnknownUpdateField: fiber.StatusBadRequest,
	domain.ErrInvalidPassword:    fiber.StatusBadRequest,
	domain.ErrInvalidRecipeID:    fiber.StatusBadRequest,

	domain.ErrDuplicateIngredient:       fiber.StatusBadRequest,
	domain.ErrDuplicateUsername:         fiber.StatusBadRequest,
	domain.ErrDuplicateRecipeIngredient: fiber.StatusBadRequest,
	domain.ErrDuplicateUserIngredient:   fiber.StatusBadRequest,
	domain.ErrDuplicateUserRecipe:       fiber.StatusBadRequest,

	domain.ErrInvalidCredentials: fiber.StatusUnauthorized,
	domain.ErrLoginRequired:      fiber.StatusUnauthorized,
	domain.ErrTokenExpired:       fiber.StatusUnauthorized,
	domain.ErrTokenInvalid:       fiber.StatusUnauthorized,

	domain.ErrUserNotAllowed: fiber.StatusForbidden,

	domain.ErrIngredientNotFound:       fiber.StatusNotFound,
	domain.ErrRecipeNotFound:           fiber.StatusNotFound,
	domain.ErrUserNotFound:             fiber.StatusNotFound,
	domain.ErrRecipeIngredientNotFound: fiber.StatusNotFound,
	domain.ErrUserIngredientNotFound:   fiber.StatusNotFound,
	domain.ErrUserRecipeNotFound:       fiber.StatusNotFound,
}

func SuccessResponse(c *fiber.Ctx, status int, payload any) error {
	return c.Status(status).JSON(payload)
}

// ErrorResponse renders {error: {message, status}}. Validation failures from
// the request validator surface as 400s with their own message; unknown
// errors collapse to a generic 500 so internals never leak.
func ErrorResponse(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	message := domain.MessageFailedProcessRequest

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		status = fiber.StatusBadRequest
		message = validationErrs.Error()
	} else {
		for sentinel, code := range statusOf {
			if errors.Is(err, sentinel) {
				status = code
				message = err.Error()
				break
			}
		}
	}

	return c.Status(status).JSON(fiber.Map{
		"error": fiber.Map{
			"message": message,
			"status":  status,
		},
	})
}

// BadRequest is for malformed bodies and parameters detected before any
// domain call is made.
func BadRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": fiber.Map{
			"message": message,
			"status":  fiber.StatusBadRequest,
		},
	})
}
