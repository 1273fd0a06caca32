package user

import (
	"context"

	"pantry-tracker/entities"
	"pantry-tracker/internal/utils"

	"gorm.io/gorm"
)

// UserColumns is the static field table for partial updates. The username
// identifies the row and is absent; password values are hashed by the
// service before they get here. The admin flag is deliberately missing:
// it is only ever set through the admin-guarded create path, so a user
// cannot patch it onto their own account.
var UserColumns = map[string]string{
	"firstName": "first_name",
	"lastName":  "last_name",
	"password":  "password",
	"email":     "email",
}

type (
	UserRepository interface {
		CreateUser(ctx context.Context, user *entities.User) error
		GetUserByUsername(ctx context.Context, username string) (*entities.User, error)
		GetUsers(ctx context.Context) ([]entities.User, error)
		UpdateUser(ctx context.Context, username string, fields map[string]any) (int64, error)
		DeleteUser(ctx context.Context, username string) (int64, error)

		GetUserIngredients(ctx context.Context, username string) ([]entities.UserIngredient, error)
		GetUserIngredient(ctx context.Context, username, ingredientName string) (*entities.UserIngredient, error)
		AddUserIngredient(ctx context.Context, link *entities.UserIngredient) error
		DeleteUserIngredient(ctx context.Context, username, ingredientName string) (int64, error)

		GetUserRecipes(ctx context.Context, username string) ([]entities.UserRecipe, error)
		GetUserRecipe(ctx context.Context, username string, recipeID int) (*entities.UserRecipe, error)
		AddUserRecipe(ctx context.Context, link *entities.UserRecipe) error
		DeleteUserRecipe(ctx context.Context, username string, recipeID int) (int64, error)
	}

	userRepository struct {
		db *gorm.DB
	}
)

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(ctx context.Context, user *entities.User) error {
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*entities.User, error) {
	var user entities.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetUsers(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	if err := r.db.WithContext(ctx).Order("username asc").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) UpdateUser(ctx context.Context, username string, fields map[string]any) (int64, error) {
	setClause, values, err := utils.PartialUpdateSet(fields, UserColumns)
	if err != nil {
		return 0, err
	}

	tx := r.db.WithContext(ctx).Exec(
		"UPDATE users SET "+setClause+" WHERE username = ?",
		append(values, username)...,
	)
	return tx.RowsAffected, tx.Error
}

func (r *userRepository) DeleteUser(ctx context.Context, username string) (int64, error) {
	tx := r.db.WithContext(ctx).Where("username = ?", username).Delete(&entities.User{})
	return tx.RowsAffected, tx.Error
}

func (r *userRepository) GetUserIngredients(ctx context.Context, username string) ([]entities.UserIngredient, error) {
	var links []entities.UserIngredient
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("ingredient_name asc").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *userRepository) GetUserIngredient(ctx context.Context, username, ingredientName string) (*entities.UserIngredient, error) {
	var link entities.UserIngredient
	if err := r.db.WithContext(ctx).
		Where("username = ? AND ingredient_name = ?", username, ingredientName).
		First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *userRepository) AddUserIngredient(ctx context.Context, link *entities.UserIngredient) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *userRepository) DeleteUserIngredient(ctx context.Context, username, ingredientName string) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("username = ? AND ingredient_name = ?", username, ingredientName).
		Delete(&entities.UserIngredient{})
	return tx.RowsAffected, tx.Error
}

func (r *userRepository) GetUserRecipes(ctx context.Context, username string) ([]entities.UserRecipe, error) {
	var links []entities.UserRecipe
	if err := r.db.WithContext(ctx).
		Where("username = ?", username).
		Order("recipe_id asc").
		Find(&links).Error; err != nil {
		return nil, err
	}
	return links, nil
}

func (r *userRepository) GetUserRecipe(ctx context.Context, username string, recipeID int) (*entities.UserRecipe, error) {
	var link entities.UserRecipe
	if err := r.db.WithContext(ctx).
		Where("username = ? AND recipe_id = ?", username, recipeID).
		First(&link).Error; err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *userRepository) AddUserRecipe(ctx context.Context, link *entities.UserRecipe) error {
	return r.db.WithContext(ctx).Create(link).Error
}

func (r *userRepository) DeleteUserRecipe(ctx context.Context, username string, recipeID int) (int64, error) {
	tx := r.db.WithContext(ctx).
		Where("username = ? AND recipe_id = ?", username, recipeID).
		Delete(&entities.UserRecipe{})
	return tx.RowsAffected, tx.Error
}
