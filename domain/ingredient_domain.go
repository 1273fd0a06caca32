package domain

import "errors"

var (
	ErrIngredientNotFound  = errors.New("ingredient not found")
	ErrDuplicateIngredient = errors.New("duplicate ingredient")
)

type (
	CreateIngredientRequest struct {
		Name        string `json:"name" validate:"required"`
		Description string `json:"description" validate:"omitempty"`
		Type        string `json:"type" validate:"omitempty"`
	}

	IngredientResponse struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Type        string `json:"type"`
	}

	IngredientFilter struct {
		NameLike        string `json:"nameLike"`
		DescriptionLike string `json:"descriptionLike"`
		TypeLike        string `json:"typeLike"`
	}
)
