package recipe

import (
	"context"
	"errors"

	"pantry-tracker/domain"
	"pantry-tracker/entities"
	"pantry-tracker/internal/utils"
	"pantry-tracker/pkg/ingredient"

	"gorm.io/gorm"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeResponse, error)
		GetRecipe(ctx context.Context, id int) (domain.RecipeDetailResponse, error)
		UpdateRecipe(ctx context.Context, id int, fields map[string]any) (domain.RecipeResponse, error)
		DeleteRecipe(ctx context.Context, id int) error

		AddIngredient(ctx context.Context, recipeID int, ingredientName, amount string) (domain.RecipeIngredientResponse, error)
		RemoveIngredient(ctx context.Context, recipeID int, ingredientName string) error
	}

	recipeService struct {
		recipeRepository     RecipeRepository
		ingredientRepository ingredient.IngredientRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, ingredientRepository ingredient.IngredientRepository) RecipeService {
	return &recipeService{
		recipeRepository:     recipeRepository,
		ingredientRepository: ingredientRepository,
	}
}

func toRecipeResponse(recipe *entities.Recipe) domain.RecipeResponse {
	return domain.RecipeResponse{
		ID:           recipe.ID,
		Name:         recipe.Name,
		Instructions: recipe.Instructions,
		Category:     recipe.Category,
		Area:         recipe.Area,
	}
}

func (s *recipeService) CreateRecipe(ctx context.Context, req domain.CreateRecipeRequest) (domain.RecipeResponse, error) {
	// Duplicate names are allowed; the generated id differentiates recipes.
	recipe := &entities.Recipe{
		Name:         req.Name,
		Instructions: req.Instructions,
		Category:     req.Category,
		Area:         req.Area,
	}
	if err := s.recipeRepository.CreateRecipe(ctx, recipe); err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]domain.RecipeResponse, error) {
	recipes, err := s.recipeRepository.GetRecipes(ctx, filter)
	if err != nil {
		return nil, err
	}

	result := make([]domain.RecipeResponse, 0, len(recipes))
	for i := range recipes {
		result = append(result, toRecipeResponse(&recipes[i]))
	}
	return result, nil
}

func (s *recipeService) GetRecipe(ctx context.Context, id int) (domain.RecipeDetailResponse, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeDetailResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeDetailResponse{}, err
	}

	links, err := s.recipeRepository.GetRecipeIngredients(ctx, id)
	if err != nil {
		return domain.RecipeDetailResponse{}, err
	}

	ingredients := make([]domain.RecipeIngredientItem, 0, len(links))
	for _, link := range links {
		ingredients = append(ingredients, domain.RecipeIngredientItem{
			IngredientName: link.IngredientName,
			Amount:         link.IngredientAmount,
		})
	}

	return domain.RecipeDetailResponse{
		RecipeResponse: toRecipeResponse(recipe),
		Ingredients:    ingredients,
	}, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, id int, fields map[string]any) (domain.RecipeResponse, error) {
	if err := utils.ValidateUpdateFields(fields, RecipeColumns); err != nil {
		return domain.RecipeResponse{}, err
	}

	rows, err := s.recipeRepository.UpdateRecipe(ctx, id, fields)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	if rows == 0 {
		return domain.RecipeResponse{}, domain.ErrRecipeNotFound
	}

	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return domain.RecipeResponse{}, err
	}
	return toRecipeResponse(recipe), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id int) error {
	rows, err := s.recipeRepository.DeleteRecipe(ctx, id)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

func (s *recipeService) AddIngredient(ctx context.Context, recipeID int, ingredientName, amount string) (domain.RecipeIngredientResponse, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeIngredientResponse{}, domain.ErrRecipeNotFound
		}
		return domain.RecipeIngredientResponse{}, err
	}

	if _, err := s.ingredientRepository.GetIngredientByName(ctx, ingredientName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.RecipeIngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.RecipeIngredientResponse{}, err
	}

	if _, err := s.recipeRepository.GetRecipeIngredient(ctx, recipeID, ingredientName); err == nil {
		return domain.RecipeIngredientResponse{}, domain.ErrDuplicateRecipeIngredient
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.RecipeIngredientResponse{}, err
	}

	link := &entities.RecipeIngredient{
		RecipeID:         recipeID,
		IngredientName:   ingredientName,
		IngredientAmount: amount,
	}
	if err := s.recipeRepository.AddRecipeIngredient(ctx, link); err != nil {
		// A concurrent add can slip past the check above; the composite
		// primary key settles it.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.RecipeIngredientResponse{}, domain.ErrDuplicateRecipeIngredient
		}
		return domain.RecipeIngredientResponse{}, err
	}

	return domain.RecipeIngredientResponse{
		RecipeID:         link.RecipeID,
		IngredientName:   link.IngredientName,
		IngredientAmount: link.IngredientAmount,
	}, nil
}

func (s *recipeService) RemoveIngredient(ctx context.Context, recipeID int, ingredientName string) error {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	rows, err := s.recipeRepository.DeleteRecipeIngredient(ctx, recipeID, ingredientName)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrRecipeIngredientNotFound
	}
	return nil
}
