package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"FoodShare-Server/domain"
	"FoodShare-Server/entities"
	"FoodShare-Server/internal/api/handlers"
	"FoodShare-Server/internal/api/routes"
	"FoodShare-Server/internal/middleware"
	"FoodShare-Server/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type stubFoodService struct {
	foods      []entities.FoodItem
	foodByID   *entities.FoodItem
	myFoodsErr error
	lastAdd    domain.AddFoodRequest
	lastFields map[string]interface{}
}

func (s *stubFoodService) AddFood(_ context.Context, req domain.AddFoodRequest) (domain.InsertResult, error) {
	s.lastAdd = req
	return domain.InsertResult{Acknowledged: true, InsertedID: "65a000000000000000000001"}, nil
}

func (s *stubFoodService) GetAvailableFoods(_ context.Context) ([]entities.FoodItem, error) {
	return s.foods, nil
}

func (s *stubFoodService) GetAllFoods(_ context.Context) ([]entities.FoodItem, error) {
	return s.foods, nil
}

func (s *stubFoodService) GetFoodByID(_ context.Context, _ string) (*entities.FoodItem, error) {
	return s.foodByID, nil
}

func (s *stubFoodService) GetMyFoods(_ context.Context, _ string) ([]entities.FoodItem, error) {
	if s.myFoodsErr != nil {
		return nil, s.myFoodsErr
	}
	return s.foods, nil
}

func (s *stubFoodService) UpdateFood(_ context.Context, _ string, fields map[string]interface{}) (domain.UpdateResult, error) {
	s.lastFields = fields
	return domain.UpdateResult{Acknowledged: true, MatchedCount: 1, ModifiedCount: 1}, nil
}

func (s *stubFoodService) DeleteFood(_ context.Context, _ string) (domain.DeleteResult, error) {
	return domain.DeleteResult{Acknowledged: true}, nil
}

func buildFoodApp(svc *stubFoodService) *fiber.App {
	utils.InitValidator()
	app := fiber.New()
	cfg := routes.Config{
		App:            app,
		FoodHandler:    handlers.NewFoodHandler(svc, utils.Validate),
		RequestHandler: handlers.NewRequestHandler(&stubRequestService{}, utils.Validate),
		Middleware:     middleware.NewMiddleware(),
	}
	cfg.Setup()
	return app
}

func decodeErrorBody(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal error body %q: %v", raw, err)
	}
	return body.Error
}

func TestAddFoodCreated(t *testing.T) {
	svc := &stubFoodService{}
	app := buildFoodApp(svc)

	body := `{"food_name":"Bread","email":"a@x.com","available_status":true,"food_quantity":2,"pickup_location":"Main St","expire_date":"2025-01-01"}`
	req := httptest.NewRequest(http.MethodPost, "/foods", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusCreated)
	}
	if svc.lastAdd.FoodName != "Bread" || svc.lastAdd.FoodQuantity != 2 {
		t.Errorf("service received %+v", svc.lastAdd)
	}
}

func TestAddFoodDisallowedField(t *testing.T) {
	svc := &stubFoodService{}
	app := buildFoodApp(svc)

	body := `{"food_name":"Bread","email":"a@x.com","foo":"bar"}`
	req := httptest.NewRequest(http.MethodPost, "/foods", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	if got, want := decodeErrorBody(t, resp), `Field "foo" not allowed`; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
	if svc.lastAdd.FoodName != "" {
		t.Error("service must not be called for a rejected body")
	}
}

func TestUpdateFoodRejectsImmutableField(t *testing.T) {
	svc := &stubFoodService{}
	app := buildFoodApp(svc)

	body := `{"email":"new@x.com","food_quantity":1}`
	req := httptest.NewRequest(http.MethodPatch, "/foods/65a000000000000000000001", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	if got, want := decodeErrorBody(t, resp), `Field "email" not allowed`; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
	if svc.lastFields != nil {
		t.Error("no fields may be applied when any field is disallowed")
	}
}

func TestMyFoodsRequiresEmail(t *testing.T) {
	app := buildFoodApp(&stubFoodService{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/my-foods", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusBadRequest)
	}
	if got, want := decodeErrorBody(t, resp), "Email query parameter is required"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestMyFoodsStoreErrorIsGuarded(t *testing.T) {
	app := buildFoodApp(&stubFoodService{myFoodsErr: errors.New("connection reset")})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/my-foods?email=a@x.com", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusInternalServerError)
	}
	if got, want := decodeErrorBody(t, resp), "Internal server error"; got != want {
		t.Errorf("error = %q, want %q", got, want)
	}
}

func TestGetFoodsReturnsBareArray(t *testing.T) {
	app := buildFoodApp(&stubFoodService{foods: []entities.FoodItem{
		{FoodName: "Bread", AvailableStatus: true},
	}})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/foods", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	var foods []entities.FoodItem
	raw, _ := io.ReadAll(resp.Body)
	if err := json.Unmarshal(raw, &foods); err != nil {
		t.Fatalf("expected a bare array, got %q: %v", raw, err)
	}
	if len(foods) != 1 || foods[0].FoodName != "Bread" {
		t.Fatalf("unexpected listing: %+v", foods)
	}
}

func TestGetFoodByIDNullWhenUnmatched(t *testing.T) {
	app := buildFoodApp(&stubFoodService{foodByID: nil})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/foods/not-a-real-id", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusOK)
	}
	raw, _ := io.ReadAll(resp.Body)
	if strings.TrimSpace(string(raw)) != "null" {
		t.Errorf("body = %q, want null", raw)
	}
}
