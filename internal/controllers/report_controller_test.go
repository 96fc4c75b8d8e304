package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Sanyaraj24/CrimeReporting/internal/models"
	"github.com/Sanyaraj24/CrimeReporting/internal/services"
)

// newTestServer wires the controllers against an in-memory SQLite
// database, mirroring the production wiring in cmd/server.
func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "could not open test DB")
	require.NoError(t, db.AutoMigrate(&models.CrimeReport{}, &models.UserProfile{}))

	e := echo.New()
	api := e.Group("")
	NewReportController(services.NewReportService(db)).Register(api)
	NewUserController(services.NewUserService(db)).Register(api)
	return e
}

func doRequest(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

const validReportBody = `{
	"title": "Bike theft",
	"description": "Bike stolen from the rack outside the station",
	"incident_date": "2024-03-01",
	"address": "12 Elm St",
	"district": "Downtown",
	"landmark": "Park",
	"pincode": "12345",
	"crime_type": "Theft",
	"severity_level": "minor",
	"image_urls": ["img-cover", "img-2"]
}`

func TestWelcome(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Welcome to Crime Reporting API", decodeBody(t, rec)["message"])
}

func TestSubmitReport_ThenFetchById(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/submit-report", validReportBody)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Crime report successfully submitted", body["message"])

	result, ok := body["result"].(map[string]any)
	require.True(t, ok, "result must be an object")
	reportID := int64(result["reportId"].(float64))
	assert.Positive(t, reportID)
	assert.NotEmpty(t, result["timestamp"])

	rec = doRequest(e, http.MethodGet, fmt.Sprintf("/get-crime/%d", reportID), "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].(map[string]any)
	assert.Equal(t, "Bike theft", data["title"])
	assert.Equal(t, "2024-03-01", data["incident_date"])
	assert.Equal(t, "Downtown", data["district"])
	assert.EqualValues(t, 1, data["num_victims"], "num_victims defaults to 1")

	// image_urls stays serialized on the wire and parses back to the
	// same ordered list
	var urls []string
	require.NoError(t, json.Unmarshal([]byte(data["image_urls"].(string)), &urls))
	assert.Equal(t, []string{"img-cover", "img-2"}, urls)
}

func TestSubmitReport_ExplicitZeroVictimsKept(t *testing.T) {
	e := newTestServer(t)

	payload := strings.Replace(validReportBody, `"severity_level": "minor",`,
		`"severity_level": "minor", "num_victims": 0,`, 1)
	rec := doRequest(e, http.MethodPost, "/submit-report", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodGet, "/crime-feed", "")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeBody(t, rec)["data"].([]any)
	require.Len(t, data, 1)
	assert.EqualValues(t, 0, data[0].(map[string]any)["num_victims"],
		"a submitted zero must not be rewritten to the default")
}

func TestSubmitReport_MissingFields(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/submit-report",
		`{"title": "Bike theft", "incident_date": "2024-03-01"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t,
		"Missing required fields: description, address, district, landmark, pincode, crime_type, severity_level",
		body["error"])
}

func TestSubmitReport_BadDate(t *testing.T) {
	e := newTestServer(t)

	payload := strings.Replace(validReportBody, "2024-03-01", "01/03/2024", 1)
	rec := doRequest(e, http.MethodPost, "/submit-report", payload)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Invalid date format. Use YYYY-MM-DD or ISO format", body["error"])
}

func TestCrimeFeed_SortedDescending(t *testing.T) {
	e := newTestServer(t)

	for _, date := range []string{"2024-01-15", "2024-03-01", "2023-11-20"} {
		payload := strings.Replace(validReportBody, "2024-03-01", date, 1)
		rec := doRequest(e, http.MethodPost, "/submit-report", payload)
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := doRequest(e, http.MethodGet, "/crime-feed", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])
	assert.EqualValues(t, 3, body["count"])

	data := body["data"].([]any)
	require.Len(t, data, 3)
	var dates []string
	for _, item := range data {
		dates = append(dates, item.(map[string]any)["incident_date"].(string))
	}
	assert.Equal(t, []string{"2024-03-01", "2024-01-15", "2023-11-20"}, dates)
}

func TestCrimeFeed_DistrictParam(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodPost, "/submit-report", validReportBody)
	require.Equal(t, http.StatusCreated, rec.Code)
	payload := strings.Replace(validReportBody, "Downtown", "Uptown", 1)
	rec = doRequest(e, http.MethodPost, "/submit-report", payload)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doRequest(e, http.MethodGet, "/crime-feed?district=Uptown", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.EqualValues(t, 1, body["count"])
	data := body["data"].([]any)
	require.Len(t, data, 1)
	assert.Equal(t, "Uptown", data[0].(map[string]any)["district"])
}

func TestGetCrime_InvalidID(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/get-crime/abc", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid crime report ID", decodeBody(t, rec)["error"])
}

func TestGetCrime_NotFound(t *testing.T) {
	e := newTestServer(t)

	rec := doRequest(e, http.MethodGet, "/get-crime/9999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Crime report not found", decodeBody(t, rec)["error"])
}
