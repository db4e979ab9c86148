// SPDX-License-Identifier: GPL-3.0-only

package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"
)

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.HTTPErrorHandler = HTTPErrorHandler
	e.GET("/", RootHandler)
	e.GET("/healthz", HealthHandler)
	e.GET("/phone-info", PhoneInfoHandler)
	e.GET("/phone-types", PhoneTypesHandler)
	return e
}

func lookupURL(number, region string) string {
	query := url.Values{"phone_number": {number}}
	if region != "" {
		query.Set("default_region", region)
	}
	return "/phone-info?" + query.Encode()
}

func TestPhoneInfoHandler(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, lookupURL("+14155552671", ""), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response PhoneInfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if response.CountryCode != 1 {
		t.Errorf("Expected country code 1, got %d", response.CountryCode)
	}

	if response.NationalNumber != 4155552671 {
		t.Errorf("Expected national number 4155552671, got %d", response.NationalNumber)
	}

	if !response.IsValid {
		t.Error("Number should be valid")
	}

	if response.Country != "United States" {
		t.Errorf("Expected country United States, got %q", response.Country)
	}

	var fields map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &fields); err != nil {
		t.Fatalf("Failed to unmarshal response fields: %v", err)
	}

	keys := []string{"country_code", "national_number", "country", "region", "carrier", "type", "is_valid", "formatted_number"}
	for _, key := range keys {
		if _, ok := fields[key]; !ok {
			t.Errorf("Response should contain key %s even when its value is empty", key)
		}
	}
}

func TestPhoneInfoHandlerDefaultRegion(t *testing.T) {
	e := newTestEcho()

	req := httptest.NewRequest(http.MethodGet, lookupURL("2079460958", "GB"), nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var gb PhoneInfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &gb); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if gb.CountryCode != 44 {
		t.Errorf("Expected country code 44 with default_region=GB, got %d", gb.CountryCode)
	}

	req = httptest.NewRequest(http.MethodGet, lookupURL("4155552671", ""), nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var us PhoneInfoResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &us); err != nil {
		t.Fatalf("Failed to unmarshal response: %v", err)
	}

	if us.CountryCode != 1 {
		t.Errorf("Expected country code 1 without default_region, got %d", us.CountryCode)
	}
}

func TestPhoneInfoHandlerInvalidNumber(t *testing.T) {
	e := newTestEcho()

	for _, number := range []string{"abc", "123", "+"} {
		req := httptest.NewRequest(http.MethodGet, lookupURL(number, ""), nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("Expected status 400 for %q, got %d", number, rec.Code)
			continue
		}

		var response ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Errorf("Failed to unmarshal error response for %q: %v", number, err)
			continue
		}

		if response.Detail.Error != "Invalid phone number format" {
			t.Errorf("Unexpected error message for %q: %q", number, response.Detail.Error)
		}

		if response.Detail.Detail == "" {
			t.Errorf("Error detail should not be empty for %q", number)
		}
	}
}

func TestPhoneInfoHandlerMissingParameter(t *testing.T) {
	e := newTestEcho()

	targets := []string{"/phone-info", "/phone-info?phone_number=", "/phone-info?phone_number=%20%20"}
	for _, target := range targets {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnprocessableEntity {
			t.Errorf("Expected status 422 for %s, got %d", target, rec.Code)
			continue
		}

		var response ErrorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
			t.Errorf("Failed to unmarshal error response for %s: %v", target, err)
			continue
		}

		if response.Detail.Error != "phone_number query parameter is required" {
			t.Errorf("Unexpected error message for %s: %q", target, response.Detail.Error)
		}
	}
}

func TestPhoneTypesHandler(t *testing.T) {
	e := newTestEcho()

	first := httptest.NewRecorder()
	e.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/phone-types", nil))

	if first.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", first.Code)
	}

	var table map[string]string
	if err := json.Unmarshal(first.Body.Bytes(), &table); err != nil {
		t.Fatalf("Failed to unmarshal type table: %v", err)
	}

	if table["0"] != "FIXED_LINE" {
		t.Errorf("Expected FIXED_LINE for code 0, got %q", table["0"])
	}

	if table["3"] != "TOLL_FREE" {
		t.Errorf("Expected TOLL_FREE for code 3, got %q", table["3"])
	}

	second := httptest.NewRecorder()
	e.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/phone-types", nil))

	if first.Body.String() != second.Body.String() {
		t.Error("Repeated calls should return identical bodies")
	}
}

func TestRootHandler(t *testing.T) {
	e := newTestEcho()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response WelcomeResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal welcome response: %v", err)
	}

	if response.Message != "Welcome to the Phone Number Information API" {
		t.Errorf("Unexpected welcome message: %q", response.Message)
	}

	if response.Documentation == "" || response.Example == "" {
		t.Error("Welcome response should link the documentation and an example request")
	}
}

func TestHealthHandler(t *testing.T) {
	e := newTestEcho()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal health response: %v", err)
	}

	if response.Status != "ok" {
		t.Errorf("Expected status ok, got %q", response.Status)
	}

	if response.Service != "phoneinfo-server" {
		t.Errorf("Expected service phoneinfo-server, got %q", response.Service)
	}
}

func TestHTTPErrorHandlerUnknownRoute(t *testing.T) {
	e := newTestEcho()

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}

	var response ErrorResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to unmarshal error response: %v", err)
	}

	if response.Detail.Error != "Not Found" {
		t.Errorf("Expected Not Found, got %q", response.Detail.Error)
	}
}
