package response

import (
	"errors"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"

	"github.com/volodymyr-curly/university-sub001/services"
)

func perform(t *testing.T, handler fiber.Handler) (int, string) {
	t.Helper()
	app := fiber.New()
	app.Get("/", handler)

	resp, err := app.Test(httptest.NewRequest("GET", "/", nil))
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("Failed to read body: %v", err)
	}
	return resp.StatusCode, string(body)
}

func TestServiceErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{"not found", &services.NotFoundError{Entity: "group"}, fiber.StatusNotFound, "NOT_FOUND"},
		{"already exists", &services.AlreadyExistsError{Entity: "group"}, fiber.StatusConflict, "CONFLICT"},
		{"unknown", errors.New("boom"), fiber.StatusInternalServerError, "INTERNAL_ERROR"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := perform(t, func(c *fiber.Ctx) error {
				return ServiceError(c, tt.err)
			})
			if status != tt.wantStatus {
				t.Fatalf("Status = %d, want %d", status, tt.wantStatus)
			}
			if !strings.Contains(body, tt.wantCode) {
				t.Fatalf("Body should carry code %q, got %s", tt.wantCode, body)
			}
		})
	}
}

func TestValidationErrorCarriesFields(t *testing.T) {
	status, body := perform(t, func(c *fiber.Ctx) error {
		return ValidationError(c, map[string]string{"name": "Name is required"})
	})
	if status != fiber.StatusUnprocessableEntity {
		t.Fatalf("Status = %d, want %d", status, fiber.StatusUnprocessableEntity)
	}
	if !strings.Contains(body, "Name is required") {
		t.Fatalf("Body should carry the field message, got %s", body)
	}
}
