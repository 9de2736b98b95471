package echo_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	app "github.com/courtdata/judicial-sync/internal/application/judicial"
)

func TestPersonHandlerSuccess(t *testing.T) {
	t.Parallel()

	e := newServer(&fakeSyncUseCase{}, &fakeGetPersonUseCase{output: app.GetPersonByCodeOutput{
		PersonalCode: "1234",
		FullName:     "Jo Bloggs",
		ActiveFlag:   true,
	}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/people/1234", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var got map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("unexpected json: %v", err)
	}
	data, ok := got["data"].(map[string]any)
	if !ok {
		t.Fatalf("unexpected data payload: %#v", got["data"])
	}
	if data["personal_code"] != "1234" {
		t.Fatalf("unexpected personal_code: %#v", data["personal_code"])
	}
}

func TestPersonHandlerInvalidCode(t *testing.T) {
	t.Parallel()

	e := newServer(&fakeSyncUseCase{}, &fakeGetPersonUseCase{err: app.ErrInvalidPersonalCode})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/people/bad%3Bcode", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPersonHandlerNotFound(t *testing.T) {
	t.Parallel()

	e := newServer(&fakeSyncUseCase{}, &fakeGetPersonUseCase{err: app.ErrPersonNotFound})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/people/9999", nil)
	rec := httptest.NewRecorder()

	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}
