package domain

import "errors"

var (
	ErrUserNotFound            = errors.New("user not found")
	ErrInvalidPassword         = errors.New("password must be a non-empty string")
	ErrDuplicateUsername       = errors.New("duplicate username")
	ErrUserIngredientNotFound  = errors.New("user does not possess ingredient")
	ErrDuplicateUserIngredient = errors.New("user already possesses ingredient")
	ErrUserRecipeNotFound      = errors.New("user has not favorited recipe")
	ErrDuplicateUserRecipe     = errors.New("user has already favorited recipe")
)

type (
	RegisterRequest struct {
		Username  string `json:"username" validate:"required"`
		Password  string `json:"password" validate:"required,min=5"`
		FirstName string `json:"firstName" validate:"required"`
		LastName  string `json:"lastName" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
	}

	// CreateUserRequest is the admin variant of registration; unlike
	// self-registration it may grant admin rights.
	CreateUserRequest struct {
		Username  string `json:"username" validate:"required"`
		Password  string `json:"password" validate:"required,min=5"`
		FirstName string `json:"firstName" validate:"required"`
		LastName  string `json:"lastName" validate:"required"`
		Email     string `json:"email" validate:"required,email"`
		IsAdmin   bool   `json:"isAdmin"`
	}

	LoginRequest struct {
		Username string `json:"username" validate:"required"`
		Password string `json:"password" validate:"required"`
	}

	TokenResponse struct {
		Token string `json:"token"`
	}

	UserResponse struct {
		Username  string `json:"username"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		Email     string `json:"email"`
		IsAdmin   bool   `json:"isAdmin"`
	}

	// UserDetailResponse carries the pantry and favorites alongside the
	// user's public fields.
	UserDetailResponse struct {
		UserResponse
		Ingredients []string `json:"ingredients"`
		Recipes     []int    `json:"recipes"`
	}

	UserIngredientResponse struct {
		Username       string `json:"username"`
		IngredientName string `json:"ingredientName"`
	}

	UserRecipeResponse struct {
		Username string `json:"username"`
		RecipeID int    `json:"recipeId"`
	}
)
