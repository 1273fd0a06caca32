package ingredient

import (
	"context"
	"errors"

	"pantry-tracker/domain"
	"pantry-tracker/entities"
	"pantry-tracker/internal/utils"

	"gorm.io/gorm"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error)
		GetIngredients(ctx context.Context, filter domain.IngredientFilter) ([]domain.IngredientResponse, error)
		GetIngredient(ctx context.Context, name string) (domain.IngredientResponse, error)
		UpdateIngredient(ctx context.Context, name string, fields map[string]any) (domain.IngredientResponse, error)
		DeleteIngredient(ctx context.Context, name string) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func toIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		Name:        ingredient.Name,
		Description: ingredient.Description,
		Type:        ingredient.Type,
	}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error) {
	if _, err := s.ingredientRepository.GetIngredientByName(ctx, req.Name); err == nil {
		return domain.IngredientResponse{}, domain.ErrDuplicateIngredient
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.IngredientResponse{}, err
	}

	ingredient := &entities.Ingredient{
		Name:        req.Name,
		Description: req.Description,
		Type:        req.Type,
	}
	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.IngredientResponse{}, domain.ErrDuplicateIngredient
		}
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) GetIngredients(ctx context.Context, filter domain.IngredientFilter) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredients(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]domain.IngredientResponse, 0, len(ingredients))
	for i := range ingredients {
		result = append(result, toIngredientResponse(&ingredients[i]))
	}
	return result, nil
}

func (s *ingredientService) GetIngredient(ctx context.Context, name string) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByName(ctx, name)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) UpdateIngredient(ctx context.Context, name string, fields map[string]any) (domain.IngredientResponse, error) {
	if err := utils.ValidateUpdateFields(fields, IngredientColumns); err != nil {
		return domain.IngredientResponse{}, err
	}

	rows, err := s.ingredientRepository.UpdateIngredient(ctx, name, fields)
	if err != nil {
		return domain.IngredientResponse{}, err
	}
	if rows == 0 {
		return domain.IngredientResponse{}, domain.ErrIngredientNotFound
	}

	return s.GetIngredient(ctx, name)
}

func (s *ingredientService) DeleteIngredient(ctx context.Context, name string) error {
	rows, err := s.ingredientRepository.DeleteIngredient(ctx, name)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrIngredientNotFound
	}
	return nil
}
