package domain

import "errors"

var (
	ErrRecipeNotFound            = errors.New("recipe not found")
	ErrInvalidRecipeID           = errors.New("recipe id must be an integer")
	ErrRecipeIngredientNotFound  = errors.New("recipe does not contain ingredient")
	ErrDuplicateRecipeIngredient = errors.New("recipe already contains ingredient")
)

type (
	CreateRecipeRequest struct {
		Name         string `json:"name" validate:"required"`
		Instructions string `json:"instructions" validate:"required"`
		Category     string `json:"category" validate:"omitempty"`
		Area         string `json:"area" validate:"omitempty"`
	}

	RecipeResponse struct {
		ID           int    `json:"id"`
		Name         string `json:"name"`
		Instructions string `json:"instructions"`
		Category     string `json:"category"`
		Area         string `json:"area"`
	}

	RecipeIngredientItem struct {
		IngredientName string `json:"ingredientName"`
		Amount         string `json:"amount"`
	}

	RecipeDetailResponse struct {
		RecipeResponse
		Ingredients []RecipeIngredientItem `json:"ingredients"`
	}

	RecipeFilter struct {
		NameLike         string `json:"nameLike"`
		InstructionsLike string `json:"instructionsLike"`
		CategoryLike     string `json:"categoryLike"`
		AreaLike         string `json:"areaLike"`
	}

	AddRecipeIngredientRequest struct {
		Amount string `json:"amount" validate:"required"`
	}

	RecipeIngredientResponse struct {
		RecipeID         int    `json:"recipeId"`
		IngredientName   string `json:"ingredientName"`
		IngredientAmount string `json:"ingredientAmount"`
	}
)
