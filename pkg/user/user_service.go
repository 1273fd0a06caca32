package user

import (
	"context"
	"errors"

	"pantry-tracker/domain"
	"pantry-tracker/entities"
	"pantry-tracker/internal/utils"
	"pantry-tracker/pkg/ingredient"
	"pantry-tracker/pkg/recipe"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type (
	UserService interface {
		Register(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error)
		Authenticate(ctx context.Context, req domain.LoginRequest) (domain.UserResponse, error)
		GetUsers(ctx context.Context) ([]domain.UserResponse, error)
		GetUser(ctx context.Context, username string) (domain.UserDetailResponse, error)
		UpdateUser(ctx context.Context, username string, fields map[string]any) (domain.UserResponse, error)
		DeleteUser(ctx context.Context, username string) error

		AddIngredient(ctx context.Context, username, ingredientName string) (domain.UserIngredientResponse, error)
		RemoveIngredient(ctx context.Context, username, ingredientName string) error
		AddRecipe(ctx context.Context, username string, recipeID int) (domain.UserRecipeResponse, error)
		RemoveRecipe(ctx context.Context, username string, recipeID int) error
	}

	userService struct {
		userRepository       UserRepository
		ingredientRepository ingredient.IngredientRepository
		recipeRepository     recipe.RecipeRepository
		bcryptCost           int
	}
)

func NewUserService(
	userRepository UserRepository,
	ingredientRepository ingredient.IngredientRepository,
	recipeRepository recipe.RecipeRepository,
	bcryptCost int,
) UserService {
	return &userService{
		userRepository:       userRepository,
		ingredientRepository: ingredientRepository,
		recipeRepository:     recipeRepository,
		bcryptCost:           bcryptCost,
	}
}

func toUserResponse(user *entities.User) domain.UserResponse {
	return domain.UserResponse{
		Username:  user.Username,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
	}
}

func (s *userService) Register(ctx context.Context, req domain.CreateUserRequest) (domain.UserResponse, error) {
	if _, err := s.userRepository.GetUserByUsername(ctx, req.Username); err == nil {
		return domain.UserResponse{}, domain.ErrDuplicateUsername
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserResponse{}, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.bcryptCost)
	if err != nil {
		return domain.UserResponse{}, err
	}

	user := &entities.User{
		Username:  req.Username,
		Password:  string(hashed),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		IsAdmin:   req.IsAdmin,
	}
	if err := s.userRepository.CreateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserResponse{}, domain.ErrDuplicateUsername
		}
		return domain.UserResponse{}, err
	}

	return toUserResponse(user), nil
}

// Authenticate returns the same error for an unknown username and a wrong
// password so callers cannot probe which usernames are registered.
func (s *userService) Authenticate(ctx context.Context, req domain.LoginRequest) (domain.UserResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserResponse{}, domain.ErrInvalidCredentials
		}
		return domain.UserResponse{}, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return domain.UserResponse{}, domain.ErrInvalidCredentials
	}

	return toUserResponse(user), nil
}

func (s *userService) GetUsers(ctx context.Context) ([]domain.UserResponse, error) {
	users, err := s.userRepository.GetUsers(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]domain.UserResponse, 0, len(users))
	for i := range users {
		result = append(result, toUserResponse(&users[i]))
	}
	return result, nil
}

func (s *userService) GetUser(ctx context.Context, username string) (domain.UserDetailResponse, error) {
	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserDetailResponse{}, domain.ErrUserNotFound
		}
		return domain.UserDetailResponse{}, err
	}

	ingredientLinks, err := s.userRepository.GetUserIngredients(ctx, username)
	if err != nil {
		return domain.UserDetailResponse{}, err
	}
	ingredients := make([]string, 0, len(ingredientLinks))
	for _, link := range ingredientLinks {
		ingredients = append(ingredients, link.IngredientName)
	}

	recipeLinks, err := s.userRepository.GetUserRecipes(ctx, username)
	if err != nil {
		return domain.UserDetailResponse{}, err
	}
	recipes := make([]int, 0, len(recipeLinks))
	for _, link := range recipeLinks {
		recipes = append(recipes, link.RecipeID)
	}

	return domain.UserDetailResponse{
		UserResponse: toUserResponse(user),
		Ingredients:  ingredients,
		Recipes:      recipes,
	}, nil
}

func (s *userService) UpdateUser(ctx context.Context, username string, fields map[string]any) (domain.UserResponse, error) {
	if err := utils.ValidateUpdateFields(fields, UserColumns); err != nil {
		return domain.UserResponse{}, err
	}

	if password, ok := fields["password"]; ok && password != nil {
		raw, ok := password.(string)
		if !ok || raw == "" {
			return domain.UserResponse{}, domain.ErrInvalidPassword
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(raw), s.bcryptCost)
		if err != nil {
			return domain.UserResponse{}, err
		}
		fields["password"] = string(hashed)
	}

	rows, err := s.userRepository.UpdateUser(ctx, username, fields)
	if err != nil {
		return domain.UserResponse{}, err
	}
	if rows == 0 {
		return domain.UserResponse{}, domain.ErrUserNotFound
	}

	user, err := s.userRepository.GetUserByUsername(ctx, username)
	if err != nil {
		return domain.UserResponse{}, err
	}
	return toUserResponse(user), nil
}

func (s *userService) DeleteUser(ctx context.Context, username string) error {
	rows, err := s.userRepository.DeleteUser(ctx, username)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

func (s *userService) AddIngredient(ctx context.Context, username, ingredientName string) (domain.UserIngredientResponse, error) {
	if _, err := s.ingredientRepository.GetIngredientByName(ctx, ingredientName); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserIngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.UserIngredientResponse{}, err
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserIngredientResponse{}, domain.ErrUserNotFound
		}
		return domain.UserIngredientResponse{}, err
	}

	if _, err := s.userRepository.GetUserIngredient(ctx, username, ingredientName); err == nil {
		return domain.UserIngredientResponse{}, domain.ErrDuplicateUserIngredient
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserIngredientResponse{}, err
	}

	link := &entities.UserIngredient{
		Username:       username,
		IngredientName: ingredientName,
	}
	if err := s.userRepository.AddUserIngredient(ctx, link); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserIngredientResponse{}, domain.ErrDuplicateUserIngredient
		}
		return domain.UserIngredientResponse{}, err
	}

	return domain.UserIngredientResponse{
		Username:       link.Username,
		IngredientName: link.IngredientName,
	}, nil
}

func (s *userService) RemoveIngredient(ctx context.Context, username, ingredientName string) error {
	rows, err := s.userRepository.DeleteUserIngredient(ctx, username, ingredientName)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserIngredientNotFound
	}
	return nil
}

func (s *userService) AddRecipe(ctx context.Context, username string, recipeID int) (domain.UserRecipeResponse, error) {
	if _, err := s.recipeRepository.GetRecipeByID(ctx, recipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserRecipeResponse{}, domain.ErrRecipeNotFound
		}
		return domain.UserRecipeResponse{}, err
	}

	if _, err := s.userRepository.GetUserByUsername(ctx, username); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.UserRecipeResponse{}, domain.ErrUserNotFound
		}
		return domain.UserRecipeResponse{}, err
	}

	if _, err := s.userRepository.GetUserRecipe(ctx, username, recipeID); err == nil {
		return domain.UserRecipeResponse{}, domain.ErrDuplicateUserRecipe
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.UserRecipeResponse{}, err
	}

	link := &entities.UserRecipe{
		Username: username,
		RecipeID: recipeID,
	}
	if err := s.userRepository.AddUserRecipe(ctx, link); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.UserRecipeResponse{}, domain.ErrDuplicateUserRecipe
		}
		return domain.UserRecipeResponse{}, err
	}

	return domain.UserRecipeResponse{
		Username: link.Username,
		RecipeID: link.RecipeID,
	}, nil
}

func (s *userService) RemoveRecipe(ctx context.Context, username string, recipeID int) error {
	rows, err := s.userRepository.DeleteUserRecipe(ctx, username, recipeID)
	if err != nil {
		return err
	}
	if rows == 0 {
		return domain.ErrUserRecipeNotFound
	}
	return nil
}
