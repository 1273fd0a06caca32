package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pantry-tracker/domain"
	"pantry-tracker/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubIngredientService returns canned results so the handler's parsing,
// status codes, and payload shapes can be checked without a database.
type stubIngredientService struct {
	ingredients map[string]domain.IngredientResponse
}

func (s *stubIngredientService) CreateIngredient(_ context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error) {
	if _, ok := s.ingredients[req.Name]; ok {
		return domain.IngredientResponse{}, domain.ErrDuplicateIngredient
	}
	res := domain.IngredientResponse{Name: req.Name, Description: req.Description, Type: req.Type}
	s.ingredients[req.Name] = res
	return res, nil
}

func (s *stubIngredientService) GetIngredients(_ context.Context, _ domain.IngredientFilter) ([]domain.IngredientResponse, error) {
	result := make([]domain.IngredientResponse, 0, len(s.ingredients))
	for _, ingredient := range s.ingredients {
		result = append(result, ingredient)
	}
	return result, nil
}

func (s *stubIngredientService) GetIngredient(_ context.Context, name string) (domain.IngredientResponse, error) {
	ingredient, ok := s.ingredients[name]
	if !ok {
		return domain.IngredientResponse{}, domain.ErrIngredientNotFound
	}
	return ingredient, nil
}

func (s *stubIngredientService) UpdateIngredient(_ context.Context, name string, fields map[string]any) (domain.IngredientResponse, error) {
	if len(fields) == 0 {
		return domain.IngredientResponse{}, domain.ErrNoUpdateData
	}
	ingredient, ok := s.ingredients[name]
	if !ok {
		return domain.IngredientResponse{}, domain.ErrIngredientNotFound
	}
	return ingredient, nil
}

func (s *stubIngredientService) DeleteIngredient(_ context.Context, name string) error {
	if _, ok := s.ingredients[name]; !ok {
		return domain.ErrIngredientNotFound
	}
	delete(s.ingredients, name)
	return nil
}

func newIngredientTestApp() (*fiber.App, *stubIngredientService) {
	utils.InitValidator()
	service := &stubIngredientService{ingredients: map[string]domain.IngredientResponse{}}
	handler := NewIngredientHandler(service, utils.Validate)

	app := fiber.New(fiber.Config{UnescapePath: true})
	app.Get("/ingredients", handler.GetIngredients)
	app.Get("/ingredients/:name", handler.GetIngredient)
	app.Post("/ingredients", handler.CreateIngredient)
	app.Patch("/ingredients/:name", handler.UpdateIngredient)
	app.Delete("/ingredients/:name", handler.DeleteIngredient)
	return app, service
}

func doJSON(t *testing.T, app *fiber.App, method, path, body string) (*http.Response, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req)
	require.NoError(t, err)

	payload := map[string]any{}
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &payload))
	}
	return resp, payload
}

func TestCreateIngredientHandler(t *testing.T) {
	app, _ := newIngredientTestApp()

	resp, payload := doJSON(t, app, http.MethodPost, "/ingredients", `{"name":"Salt"}`)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	ingredient := payload["ingredient"].(map[string]any)
	assert.Equal(t, "Salt", ingredient["name"])

	t.Run("missing name is a validation error", func(t *testing.T) {
		resp, payload := doJSON(t, app, http.MethodPost, "/ingredients", `{"description":"x"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		errBody := payload["error"].(map[string]any)
		assert.Equal(t, float64(fiber.StatusBadRequest), errBody["status"])
	})

	t.Run("duplicate maps to 400", func(t *testing.T) {
		resp, _ := doJSON(t, app, http.MethodPost, "/ingredients", `{"name":"Salt"}`)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestGetIngredientsHandler(t *testing.T) {
	app, service := newIngredientTestApp()
	service.ingredients["Salt"] = domain.IngredientResponse{Name: "Salt"}

	resp, payload := doJSON(t, app, http.MethodGet, "/ingredients", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Len(t, payload["ingredients"], 1)
}

func TestGetIngredientHandlerNotFound(t *testing.T) {
	app, _ := newIngredientTestApp()

	resp, payload := doJSON(t, app, http.MethodGet, "/ingredients/ghost", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	errBody := payload["error"].(map[string]any)
	assert.Equal(t, float64(fiber.StatusNotFound), errBody["status"])
	assert.Equal(t, domain.ErrIngredientNotFound.Error(), errBody["message"])
}

func TestUpdateIngredientHandlerEmptyBody(t *testing.T) {
	app, service := newIngredientTestApp()
	service.ingredients["Salt"] = domain.IngredientResponse{Name: "Salt"}

	resp, _ := doJSON(t, app, http.MethodPatch, "/ingredients/Salt", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestDeleteIngredientHandler(t *testing.T) {
	app, service := newIngredientTestApp()
	service.ingredients["Salt"] = domain.IngredientResponse{Name: "Salt"}

	resp, payload := doJSON(t, app, http.MethodDelete, "/ingredients/Salt", "")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "Salt", payload["deleted"])

	resp, _ = doJSON(t, app, http.MethodDelete, "/ingredients/Salt", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
