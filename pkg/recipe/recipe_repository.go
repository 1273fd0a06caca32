package recipe

import (
	"context"

	"pantry-tracker/domain"
	"pantry-tracker/entities"
	"pantry-tracker/internal/utils"

	"gorm.io/gorm"
)

// RecipeColumns is the static field table for partial updates; the generated
// id is the identifier and cannot be reassigned.
var RecipeColumns = map[string]string{
	"name":         "name",
	"instructions": "instructions",
	"category":     "category",
	"area":         "area",
}

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id int) (*entities.Recipe, error)
		GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]entities.Recipe, error)
		UpdateRecipe(ctx context.Context, id int, fields map[string]any) (int64, error)
		DeleteRecipe(ctx context.Context, id int) (int64, error)

		GetRecipeIngredients(ctx context.Context, recipeID int) ([]entities.RecipeIngredient, error)
		GetRecipeIngredient(ctx context.Context, recipeID int, ingredientName string) (*entities.RecipeIngredient, error)
		AddRecipeIngredient(ctx context.Context, link *entities.RecipeIngredient) error
		DeleteRecipeIngredient(ctx context.Context, recipeID int, ingredientName string) (int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id int) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetRecipes(ctx context.Context, filter domain.RecipeFilter) ([]entities.Recipe, error) {
	var recipes []entities.Recipe

	query := r.db.WithContext(ctx).Model(&entities.Recipe{})
	if filter.NameLike != "" {
		query = query.Where("name ILIKE ?", "%"+filter.NameLike+"%")
	}
	if filter.InstructionsLike != "" {
		query = query.Where("instructions ILIKE ?", "%"+filter.InstructionsLike+"%")
	}
	if filter.CategoryLike != "" {
		query = query.Where("category ILIKE ?", "%"+filter.CategoryLike+"%")
	}
	if filter.AreaLike != "" {
		query = query.Where("area ILIKE ?", "%"+filter.AreaLike+"%")
	}

	if err := query.Order("name asc").Find(&recipes).Error; err != nil {
		return nil, err
	}
	return recipes, nil
}

func (r *recipeRepository) UpdateRecipe(ctx context.Context, id int, fields map[string]any) (int64, error) {
	setClause, values, err := utils.PartialUpdateSet(fields, RecipeColumns)
	if err != nil {
		return 0, err
	}

	tx := r.db.WithContext(ctx).Exec(
		"UPDATE recipes SET "+setClause+" WHERE id = ?",
		append(values, id)...,
	)
	return tx.RowsAffected, tx.Error
}

func (r *recipeRepository) DeleteRecipe(ctx context.Context, id int) (int64, error) {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&entities.Recipe{})
	return tx.RowsAffected, tx.Error
}

func (r *recipeRepository) GetRecipeIngredients(ctx context.Context, recipeID int) ([]entities.RecipeIngredient, error) {
	var links []entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ?", recipeID).
		Order("ingredient_name asc").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *recipeRepository) GetRecipeIngredient(ctx context.Context, recipeID int, ingredientName string) (*entities.RecipeIngredient, error) {
	var link entities.RecipeIngredient
	if err := r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_name = ?", recipeID, ingredientName).
		First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *recipeRepository) AddRecipeIngredient(ctx context.Context, link *entities.RecipeIngredient) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *recipeRepository) DeleteRecipeIngredient(ctx context.Context, recipeID int, ingredientName string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("recipe_id = ? AND ingredient_name = ?", recipeID, ingredientName).
		Delete(&entities.RecipeIngredient{})
	return tx.RowsAffected, tx.Error
}
