package ingredient

import (
	"context"

	"pantry-tracker/domain"
	"pantry-tracker/entities"
	"pantry-tracker/internal/utils"

	"gorm.io/gorm"
)

// IngredientColumns is the static field table for partial updates. The name
// column is the identifier and is deliberately absent.
var IngredientColumns = map[string]string{
	"description": "description",
	"type":        "type",
}

type (
	IngredientRepository interface {
		CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error
		GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error)
		GetIngredients(ctx context.Context, filter domain.IngredientFilter) ([]entities.Ingredient, error)
		UpdateIngredient(ctx context.Context, name string, fields map[string]any) (int64, error)
		DeleteIngredient(ctx context.Context, name string) (int64, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) CreateIngredient(ctx context.Context, ingredient *entities.Ingredient) error {
	return r.db.WithContext(ctx).Create(ingredient).Error
}

func (r *ingredientRepository) GetIngredientByName(ctx context.Context, name string) (*entities.Ingredient, error) {
	var ingredient entities.Ingredient
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&ingredient).Error; err != nil {
		return nil, err
	}
	return &ingredient, nil
}

func (r *ingredientRepository) GetIngredients(ctx context.Context, filter domain.IngredientFilter) ([]entities.Ingredient, error) {
	var ingredients []entities.Ingredient

	query := r.db.WithContext(ctx).Model(&entities.Ingredient{})
	if filter.NameLike != "" {
		query = query.Where("name ILIKE ?", "%"+filter.NameLike+"%")
	}
	if filter.DescriptionLike != "" {
		query = query.Where("description ILIKE ?", "%"+filter.DescriptionLike+"%")
	}
	if filter.TypeLike != "" {
		query = query.Where("type ILIKE ?", "%"+filter.TypeLike+"%")
	}

	if err := query.Order("name asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}

func (r *ingredientRepository) UpdateIngredient(ctx context.Context, name string, fields map[string]any) (int64, error) {
	setClause, values, err := utils.PartialUpdateSet(fields, IngredientColumns)
	if err != nil {
		return 0, err
	}

	tx := r.db.WithContext(ctx).Exec(
		"UPDATE ingredients SET "+setClause+" WHERE name = ?",
		append(values, name)...,
	)
	return tx.RowsAffected, tx.Error
}

func (r *ingredientRepository) DeleteIngredient(ctx context.Context, name string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("name = ?", name).Delete(&entities.Ingredient{})
	return tx.RowsAffected, tx.Error
}
