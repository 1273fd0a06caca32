package recipe

import (
	"context"
	"sort"
	"testing"

	"pantry-tracker/domain"
	"pantry-tracker/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type linkKey struct {
	recipeID       int
	ingredientName string
}

// stubRecipeRepository mirrors the gorm-backed repository over maps,
// including serial id assignment and sentinel errors.
type stubRecipeRepository struct {
	nextID  int
	recipes map[int]entities.Recipe
	links   map[linkKey]entities.RecipeIngredient
}

func newStubRecipeRepository() *stubRecipeRepository {
	return &stubRecipeRepository{
		nextID:  1,
		recipes: map[int]entities.Recipe{},
		links:   map[linkKey]entities.RecipeIngredient{},
	}
}

func (s *stubRecipeRepository) CreateRecipe(_ context.Context, recipe *entities.Recipe) error {
	recipe.ID = s.nextID
	s.nextID++
	s.recipes[recipe.ID] = *recipe
	return nil
}

func (s *stubRecipeRepository) GetRecipeByID(_ context.Context, id int) (*entities.Recipe, error) {
	recipe, ok := s.recipes[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &recipe, nil
}

func (s *stubRecipeRepository) GetRecipes(_ context.Context, _ domain.RecipeFilter) ([]entities.Recipe, error) {
	var result []entities.Recipe
	for _, recipe := range s.recipes {
		result = append(result, recipe)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Name < result[j].Name })
	return result, nil
}

func (s *stubRecipeRepository) UpdateRecipe(_ context.Context, id int, fields map[string]any) (int64, error) {
	recipe, ok := s.recipes[id]
	if !ok {
		return 0, nil
	}
	if v, ok := fields["name"]; ok {
		recipe.Name, _ = v.(string)
	}
	if v, ok := fields["instructions"]; ok {
		recipe.Instructions, _ = v.(string)
	}
	if v, ok := fields["category"]; ok {
		recipe.Category, _ = v.(string)
	}
	if v, ok := fields["area"]; ok {
		recipe.Area, _ = v.(string)
	}
	s.recipes[id] = recipe
	return 1, nil
}

func (s *stubRecipeRepository) DeleteRecipe(_ context.Context, id int) (int64, error) {
	if _, ok := s.recipes[id]; !ok {
		return 0, nil
	}
	delete(s.recipes, id)
	for key := range s.links {
		if key.recipeID == id {
			delete(s.links, key)
		}
	}
	return 1, nil
}

func (s *stubRecipeRepository) GetRecipeIngredients(_ context.Context, recipeID int) ([]entities.RecipeIngredient, error) {
	var result []entities.RecipeIngredient
	for key, link := range s.links {
		if key.recipeID == recipeID {
			result = append(result, link)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].IngredientName < result[j].IngredientName })
	return result, nil
}

func (s *stubRecipeRepository) GetRecipeIngredient(_ context.Context, recipeID int, ingredientName string) (*entities.RecipeIngredient, error) {
	link, ok := s.links[linkKey{recipeID, ingredientName}]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return &link, nil
}

func (s *stubRecipeRepository) AddRecipeIngredient(_ context.Context, link *entities.RecipeIngredient) error {
	key := linkKey{link.RecipeID, link.IngredientName}
	if _, ok := s.links[key]; ok {
		return gorm.ErrDuplicatedKey
	}
	s.links[key] = *link
	return nil
}

func (s *stubRecipeRepository) DeleteRecipeIngredient(_ context.Context, recipeID int, ingredientName string) (int64, error) {
	key := linkKey{recipeID, ingredientName}
	if _, ok := s.links[key]; !ok {
		return 0, nil
	}
	delete(s.links, key)
	return 1, nil
}

// stubIngredientRepository covers only the lookup the recipe service needs.
type stubIngredientRepository struct {
	names map[string]bool
}

func (s *stubIngredientRepository) CreateIngredient(_ context.Context, ingredient *entities.Ingredient) error {
	s.names[ingredient.Name] = true
	return nil
}

func (s *stubIngredientRepository) GetIngredientByName(_ context.Context, name string) (*entities.Ingredient, error) {
	if !s.names[name] {
		return nil, gorm.ErrRecordNotFound
	}
	return &entities.Ingredient{Name: name}, nil
}

func (s *stubIngredientRepository) GetIngredients(_ context.Context, _ domain.IngredientFilter) ([]entities.Ingredient, error) {
	return nil, nil
}

func (s *stubIngredientRepository) UpdateIngredient(_ context.Context, _ string, _ map[string]any) (int64, error) {
	return 0, nil
}

func (s *stubIngredientRepository) DeleteIngredient(_ context.Context, _ string) (int64, error) {
	return 0, nil
}

func newRecipeService(ingredientNames ...string) RecipeService {
	names := map[string]bool{}
	for _, name := range ingredientNames {
		names[name] = true
	}
	return NewRecipeService(newStubRecipeRepository(), &stubIngredientRepository{names: names})
}

func TestCreateRecipeAssignsIDs(t *testing.T) {
	service := newRecipeService()
	ctx := context.Background()

	first, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{Name: "R1", Instructions: "Inst1"})
	require.NoError(t, err)
	assert.Positive(t, first.ID)

	// duplicate names are fine; ids differentiate
	second, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{Name: "R1", Instructions: "Inst1"})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestGetRecipeAttachesIngredients(t *testing.T) {
	service := newRecipeService("I1")
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{Name: "R1", Instructions: "Inst1"})
	require.NoError(t, err)

	added, err := service.AddIngredient(ctx, created.ID, "I1", "1 cup")
	require.NoError(t, err)
	assert.Equal(t, domain.RecipeIngredientResponse{
		RecipeID:         created.ID,
		IngredientName:   "I1",
		IngredientAmount: "1 cup",
	}, added)

	detail, err := service.GetRecipe(ctx, created.ID)
	require.NoError(t, err)
	require.Len(t, detail.Ingredients, 1)
	assert.Equal(t, domain.RecipeIngredientItem{IngredientName: "I1", Amount: "1 cup"}, detail.Ingredients[0])
}

func TestGetRecipeNotFound(t *testing.T) {
	service := newRecipeService()

	_, err := service.GetRecipe(context.Background(), 99)
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestAddIngredientChecks(t *testing.T) {
	service := newRecipeService("I1")
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{Name: "R1", Instructions: "Inst1"})
	require.NoError(t, err)

	t.Run("missing recipe", func(t *testing.T) {
		_, err := service.AddIngredient(ctx, 99, "I1", "1 cup")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("missing ingredient", func(t *testing.T) {
		_, err := service.AddIngredient(ctx, created.ID, "ghost", "1 cup")
		assert.ErrorIs(t, err, domain.ErrIngredientNotFound)
	})

	t.Run("duplicate pair conflicts and leaves one row", func(t *testing.T) {
		_, err := service.AddIngredient(ctx, created.ID, "I1", "1 cup")
		require.NoError(t, err)

		_, err = service.AddIngredient(ctx, created.ID, "I1", "2 cups")
		assert.ErrorIs(t, err, domain.ErrDuplicateRecipeIngredient)

		detail, err := service.GetRecipe(ctx, created.ID)
		require.NoError(t, err)
		require.Len(t, detail.Ingredients, 1)
		assert.Equal(t, "1 cup", detail.Ingredients[0].Amount)
	})
}

func TestRemoveIngredient(t *testing.T) {
	service := newRecipeService("I1")
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{Name: "R1", Instructions: "Inst1"})
	require.NoError(t, err)

	t.Run("non-member pair signals not found", func(t *testing.T) {
		err := service.RemoveIngredient(ctx, created.ID, "I1")
		assert.ErrorIs(t, err, domain.ErrRecipeIngredientNotFound)
	})

	t.Run("missing recipe signals not found", func(t *testing.T) {
		err := service.RemoveIngredient(ctx, 99, "I1")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
	})

	t.Run("member pair is removed", func(t *testing.T) {
		_, err := service.AddIngredient(ctx, created.ID, "I1", "1 cup")
		require.NoError(t, err)

		require.NoError(t, service.RemoveIngredient(ctx, created.ID, "I1"))

		detail, err := service.GetRecipe(ctx, created.ID)
		require.NoError(t, err)
		assert.Empty(t, detail.Ingredients)
	})
}

func TestUpdateRecipe(t *testing.T) {
	service := newRecipeService()
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{Name: "R1", Instructions: "Inst1"})
	require.NoError(t, err)

	updated, err := service.UpdateRecipe(ctx, created.ID, map[string]any{"category": "Dessert"})
	require.NoError(t, err)
	assert.Equal(t, "Dessert", updated.Category)
	assert.Equal(t, "R1", updated.Name)

	_, err = service.UpdateRecipe(ctx, created.ID, map[string]any{})
	assert.ErrorIs(t, err, domain.ErrNoUpdateData)

	_, err = service.UpdateRecipe(ctx, 99, map[string]any{"category": "Dessert"})
	assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
}

func TestDeleteRecipe(t *testing.T) {
	service := newRecipeService()
	ctx := context.Background()

	created, err := service.CreateRecipe(ctx, domain.CreateRecipeRequest{Name: "R1", Instructions: "Inst1"})
	require.NoError(t, err)

	require.NoError(t, service.DeleteRecipe(ctx, created.ID))
	assert.ErrorIs(t, service.DeleteRecipe(ctx, created.ID), domain.ErrRecipeNotFound)
}
