package tests

import (
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"
)

func accommodationPayload(email string) map[string]any {
	return map[string]any{
		"fullName":          "Amara Okafor",
		"email":             email,
		"contact":           "+44 7700 900123",
		"universityCity":    "Manchester",
		"moveInMonth":       "September",
		"moveInYear":        "2026",
		"budget":            "£500–£700",
		"accommodationType": []string{"Ensuite", "Studio"},
		"dependents":        "No",
	}
}

func TestAccommodationSubmitAndLookup(t *testing.T) {

	// Arrange
	payload := accommodationPayload(uniqueEmail("accommodation"))

	// Act
	status, body := doJSON(t, http.MethodPost, "/api/v1/accommodation/requests", payload, nil)

	// Assert
	if status != http.StatusCreated {
		errEnv := decodeError(t, body)
		t.Fatalf("submit failed: status=%d message=%q errors=%v", status, errEnv.Message, errEnv.Errors)
	}

	var created submitData
	decodeSuccess(t, body, &created)
	if !strings.HasPrefix(created.Reference, "ACC-") {
		t.Fatalf("unexpected reference %q", created.Reference)
	}
	if created.ID == "" || created.CreatedAt.IsZero() {
		t.Fatalf("incomplete submit data: %+v", created)
	}

	status, body = doJSON(t, http.MethodGet, "/api/v1/accommodation/requests/"+strings.ToLower(created.Reference), nil, nil)
	if status != http.StatusOK {
		t.Fatalf("lookup failed: status=%d body=%s", status, body)
	}

	var found submissionData
	decodeSuccess(t, body, &found)
	if found.Reference != created.Reference || found.Status != "received" {
		t.Fatalf("unexpected lookup data: %+v", found)
	}
}

func TestAccommodationSubmitIdempotencyKey(t *testing.T) {

	// Arrange
	headers := map[string]string{"Idempotency-Key": fmt.Sprintf("accommodation-%d", time.Now().UnixNano())}
	payload := accommodationPayload(uniqueEmail("accommodation-idem"))

	// Act
	first, body := doJSON(t, http.MethodPost, "/api/v1/accommodation/requests", payload, headers)
	if first != http.StatusCreated {
		t.Fatalf("first submit failed: status=%d body=%s", first, body)
	}
	second, _ := doJSON(t, http.MethodPost, "/api/v1/accommodation/requests", payload, headers)

	// Assert
	if second != http.StatusConflict {
		t.Fatalf("repeated key: status=%d, want %d", second, http.StatusConflict)
	}
}

func TestAccommodationValidationErrors(t *testing.T) {
	// Arrange
	payload := accommodationPayload("not-an-email")
	payload["accommodationType"] = []string{"Ensuite", "Studio", "Penthouse"}

	// Act
	status, body := doJSON(t, http.MethodPost, "/api/v1/accommodation/requests/validate", payload, nil)

	// Assert
	if status != http.StatusUnprocessableEntity {
		t.Fatalf("status=%d, want %d body=%s", status, http.StatusUnprocessableEntity, body)
	}

	errEnv := decodeError(t, body)
	if !hasFieldError(errEnv, "accommodationType", `"Penthouse" is not a valid accommodation type`) {
		t.Fatalf("missing invalid type error: %v", errEnv.Errors)
	}
	if !hasFieldError(errEnv, "accommodationType", "A maximum of two accommodation types can be selected") {
		t.Fatalf("missing size error: %v", errEnv.Errors)
	}
	if !hasFieldError(errEnv, "email", "Invalid email format") {
		t.Fatalf("missing email error: %v", errEnv.Errors)
	}
}

func TestAccommodationMalformedBody(t *testing.T) {
	status, _ := doJSON(t, http.MethodPost, "/api/v1/accommodation/requests", `{"fullName":`, nil)
	if status != http.StatusBadRequest {
		t.Fatalf("status=%d, want %d", status, http.StatusBadRequest)
	}
}

func TestAccommodationLookupNotFound(t *testing.T) {
	status, _ := doJSON(t, http.MethodGet, "/api/v1/accommodation/requests/ACC-DOESNOTEXIST", nil, nil)
	if status != http.StatusNotFound {
		t.Fatalf("status=%d, want %d", status, http.StatusNotFound)
	}
}

func TestAccommodationOptions(t *testing.T) {
	status, body := doJSON(t, http.MethodGet, "/api/v1/accommodation/options", nil, nil)
	if status != http.StatusOK {
		t.Fatalf("options failed: status=%d body=%s", status, body)
	}

	var data struct {
		Budgets               []string `json:"budgets"`
		AccommodationTypes    []string `json:"accommodationTypes"`
		MaxAccommodationTypes int      `json:"maxAccommodationTypes"`
	}
	decodeSuccess(t, body, &data)
	if len(data.Budgets) != 4 || len(data.AccommodationTypes) != 4 || data.MaxAccommodationTypes != 2 {
		t.Fatalf("unexpected options: %+v", data)
	}
}
