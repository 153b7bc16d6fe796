package recordhttp

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fjod/go_techstore/internal/recordstore"
)

func newTestRouter() http.Handler {
	return NewRouter(NewHandler(recordstore.NewMemoryStore()))
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("POST", path, bytes.NewBufferString(body))
	request.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestCreateOrder_Success(t *testing.T) {
	router := newTestRouter()

	recorder := postJSON(t, router, "/api/orders", `{"id":"ord-abc1234","total":1348.8}`)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response CreateResponse
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if !response.OK {
		t.Error("Expected ok=true")
	}
	if response.ID != "ord-abc1234" {
		t.Errorf("Expected id 'ord-abc1234', got '%s'", response.ID)
	}
}

func TestCreateOrder_InvalidJSON(t *testing.T) {
	router := newTestRouter()

	recorder := postJSON(t, router, "/api/orders", `{not json`)

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "invalid_json" {
		t.Errorf("Expected error code 'invalid_json', got '%s'", response.Code)
	}
}

func TestListOrders_MostRecentFirst(t *testing.T) {
	router := newTestRouter()

	postJSON(t, router, "/api/orders", `{"id":"ord-first"}`)
	postJSON(t, router, "/api/orders", `{"id":"ord-second"}`)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/orders", nil))

	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var records []struct {
		ID string `json:"id"`
	}
	if err := json.NewDecoder(recorder.Body).Decode(&records); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Expected 2 records, got %d", len(records))
	}
	if records[0].ID != "ord-second" || records[1].ID != "ord-first" {
		t.Errorf("Expected most-recent-first order, got %+v", records)
	}
}

func TestListOrders_EmptyIsJSONArray(t *testing.T) {
	router := newTestRouter()

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest("GET", "/api/orders", nil))

	if got := recorder.Body.String(); got != "[]\n" {
		t.Errorf("Expected '[]', got %q", got)
	}
}

func TestCreateAppointment_Success(t *testing.T) {
	router := newTestRouter()

	recorder := postJSON(t, router, "/api/appointments", `{"id":"apt-xyz9876","type":"notebook"}`)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response CreateResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if !response.OK || response.ID != "apt-xyz9876" {
		t.Errorf("Unexpected response: %+v", response)
	}
}

func TestCreateOrder_MissingIDStillAppends(t *testing.T) {
	router := newTestRouter()

	// no validation: a record without an id is appended with an empty id
	recorder := postJSON(t, router, "/api/orders", `{"total":10}`)

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	listRecorder := httptest.NewRecorder()
	router.ServeHTTP(listRecorder, httptest.NewRequest("GET", "/api/orders", nil))

	var records []json.RawMessage
	json.NewDecoder(listRecorder.Body).Decode(&records)
	if len(records) != 1 {
		t.Errorf("Expected 1 record, got %d", len(records))
	}
}

func TestCORSHeaders(t *testing.T) {
	router := newTestRouter()

	recorder := httptest.NewRecorder()
	request := httptest.NewRequest("GET", "/api/orders", nil)
	request.Header.Set("Origin", "http://example.com")
	router.ServeHTTP(recorder, request)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Expected Access-Control-Allow-Origin '*', got %q", got)
	}
}
