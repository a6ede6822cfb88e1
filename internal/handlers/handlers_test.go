package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"

	"listingparser/internal/database"
	"listingparser/internal/listings"
	"listingparser/internal/models"
	"listingparser/internal/scraper"
)

func TestMain(m *testing.M) {
	cwd, err := os.Getwd()
	if err != nil {
		panic(err)
	}
	root := filepath.Join(cwd, "..", "..")
	if err := os.Chdir(root); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func init() {
	gin.SetMode(gin.TestMode)
}

type stubSource struct {
	title string
	err   error
}

func (s stubSource) FetchListing(ctx context.Context, url string) (*models.Listing, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.Listing{Title: s.title, URL: url}, nil
}

func setupRouter(t *testing.T, source listings.TitleSource) (*gin.Engine, *database.Database) {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "listings.db")
	db, err := database.NewDatabase(dbPath)
	if err != nil {
		t.Fatalf("failed to create database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	svc := listings.NewService(db, source)
	parse := NewParseHandler()
	lh := NewListingHandler(svc)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/health", Health(db.Ping))
	api.POST("/parse", parse.Parse)
	api.POST("/enhance", parse.Enhance)
	api.GET("/makes", parse.ListMakes)
	api.GET("/makes/:make/models", parse.ListModels)
	api.POST("/listings", lh.Create)
	api.GET("/listings", lh.List)
	api.GET("/listings/count", lh.Count)
	api.GET("/listings/:id", lh.Get)
	api.DELETE("/listings/:id", lh.Delete)
	api.DELETE("/listings", lh.Clear)
	api.POST("/listings/reparse", lh.Reparse)
	api.POST("/listings/fetch", lh.Fetch)
	return r, db
}

func performJSONRequest(router *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode %q: %v", rec.Body.String(), err)
	}
}

func TestParseEndpoint(t *testing.T) {
	r, _ := setupRouter(t, nil)

	rec := performJSONRequest(r, http.MethodPost, "/api/parse", ParseRequest{Title: "2018 Mazda CX-5 Clean Title"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Year       string            `json:"year"`
		Make       string            `json:"make"`
		Model      string            `json:"model"`
		Confidence models.Confidence `json:"confidence"`
	}
	decode(t, rec, &body)
	if body.Year != "2018" || body.Make != "MAZDA" || body.Model != "CX-5" {
		t.Fatalf("unexpected parse result: %+v", body)
	}
	if body.Confidence.Overall != 100 {
		t.Fatalf("unexpected confidence: %+v", body.Confidence)
	}

	missing := performJSONRequest(r, http.MethodPost, "/api/parse", map[string]string{}, nil)
	if missing.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing title, got %d", missing.Code)
	}
}

func TestParseEndpointNotAvailable(t *testing.T) {
	r, _ := setupRouter(t, nil)

	rec := performJSONRequest(r, http.MethodPost, "/api/parse", ParseRequest{Title: "mystery"}, nil)
	var body map[string]interface{}
	decode(t, rec, &body)
	if body["make"] != "N/A" || body["model"] != "N/A" || body["year"] != "N/A" {
		t.Fatalf("expected N/A fields, got %v", body)
	}
}

func TestTitleKeptAsSent(t *testing.T) {
	r, _ := setupRouter(t, nil)
	title := `2007 Chrysler Town & Country "Loaded"`

	rec := performJSONRequest(r, http.MethodPost, "/api/parse", ParseRequest{Title: title}, nil)
	var parsed map[string]interface{}
	decode(t, rec, &parsed)
	if parsed["originalTitle"] != title {
		t.Fatalf("originalTitle = %q, want %q", parsed["originalTitle"], title)
	}
	if parsed["make"] != "CHRYSLER" || parsed["model"] != "TOWN & COUNTRY" {
		t.Fatalf("unexpected parse result: %v", parsed)
	}

	create := performJSONRequest(r, http.MethodPost, "/api/listings", CreateListingRequest{Title: "  " + title + " "}, nil)
	if create.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", create.Code, create.Body.String())
	}
	var created listingEnvelope
	decode(t, create, &created)

	get := performJSONRequest(r, http.MethodGet, "/api/listings/"+created.Listing.ID, nil, nil)
	var stored listingEnvelope
	decode(t, get, &stored)
	if stored.Listing.Title != title {
		t.Fatalf("stored title = %q, want %q", stored.Listing.Title, title)
	}
	if stored.Listing.Model != "TOWN & COUNTRY" {
		t.Fatalf("unexpected stored model %q", stored.Listing.Model)
	}
}

func TestEnhanceEndpoint(t *testing.T) {
	r, db := setupRouter(t, nil)

	rec := performJSONRequest(r, http.MethodPost, "/api/enhance", models.Listing{Title: "2020 Honda Civic", Make: "Wrong"}, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var listing models.Listing
	decode(t, rec, &listing)
	if listing.Make != "HONDA" || listing.ParsingConfidence == nil {
		t.Fatalf("unexpected enhanced listing: %+v", listing)
	}

	if count, _ := db.CountListings(); count != 0 {
		t.Fatalf("enhance must not store, found %d listings", count)
	}
}

func TestMakesEndpoints(t *testing.T) {
	r, _ := setupRouter(t, nil)

	rec := performJSONRequest(r, http.MethodGet, "/api/makes", nil, nil)
	var makes struct {
		Makes []string `json:"makes"`
		Count int      `json:"count"`
	}
	decode(t, rec, &makes)
	if makes.Count == 0 || makes.Count != len(makes.Makes) {
		t.Fatalf("unexpected makes response: %+v", makes)
	}

	rec = performJSONRequest(r, http.MethodGet, "/api/makes/chevy/models", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected alias to resolve, got %d", rec.Code)
	}
	var modelList struct {
		Make   string   `json:"make"`
		Models []string `json:"models"`
	}
	decode(t, rec, &modelList)
	if modelList.Make != "CHEVROLET" || len(modelList.Models) == 0 {
		t.Fatalf("unexpected models response: %+v", modelList)
	}

	rec = performJSONRequest(r, http.MethodGet, "/api/makes/zzz/models", nil, nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown make, got %d", rec.Code)
	}
}

type listingEnvelope struct {
	Success bool             `json:"success"`
	Listing models.Listing   `json:"listing"`
	Count   int              `json:"count"`
	List    []models.Listing `json:"listings"`
}

func TestListingLifecycle(t *testing.T) {
	r, _ := setupRouter(t, nil)

	create := performJSONRequest(r, http.MethodPost, "/api/listings", CreateListingRequest{
		Title:   "2015 BMW 3 Series 328i Clean Title Leather Sunroof",
		Price:   "$15,900",
		Mileage: "98,000 km",
		URL:     "https://example.com/item/42",
	}, nil)
	if create.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", create.Code, create.Body.String())
	}
	var created listingEnvelope
	decode(t, create, &created)
	if created.Listing.ID == "" || created.Listing.Model != "3 SERIES" || created.Listing.Year != "2015" {
		t.Fatalf("unexpected created listing: %+v", created.Listing)
	}

	_ = performJSONRequest(r, http.MethodPost, "/api/listings", CreateListingRequest{Title: "2012 Chevy Silverado 1500"}, nil)

	get := performJSONRequest(r, http.MethodGet, "/api/listings/"+created.Listing.ID, nil, nil)
	if get.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", get.Code)
	}

	list := performJSONRequest(r, http.MethodGet, "/api/listings?make=chevy", nil, nil)
	var filtered listingEnvelope
	decode(t, list, &filtered)
	if filtered.Count != 1 || filtered.List[0].Make != "CHEVROLET" {
		t.Fatalf("unexpected filtered list: %+v", filtered)
	}

	count := performJSONRequest(r, http.MethodGet, "/api/listings/count", nil, nil)
	var counted listingEnvelope
	decode(t, count, &counted)
	if counted.Count != 2 {
		t.Fatalf("expected 2 listings, got %d", counted.Count)
	}

	del := performJSONRequest(r, http.MethodDelete, "/api/listings/"+created.Listing.ID, nil, nil)
	if del.Code != http.StatusOK {
		t.Fatalf("expected 200 on delete, got %d", del.Code)
	}
	again := performJSONRequest(r, http.MethodGet, "/api/listings/"+created.Listing.ID, nil, nil)
	if again.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d", again.Code)
	}

	clr := performJSONRequest(r, http.MethodDelete, "/api/listings", nil, nil)
	var cleared map[string]interface{}
	decode(t, clr, &cleared)
	if cleared["deleted"] != float64(1) {
		t.Fatalf("expected 1 deleted, got %v", cleared)
	}
}

func TestListingValidation(t *testing.T) {
	r, _ := setupRouter(t, nil)

	cases := []struct {
		name   string
		method string
		path   string
		body   interface{}
		want   int
	}{
		{"blank title", http.MethodPost, "/api/listings", CreateListingRequest{Title: "   "}, http.StatusBadRequest},
		{"bad url", http.MethodPost, "/api/listings", CreateListingRequest{Title: "Honda", URL: "javascript:alert(1)"}, http.StatusBadRequest},
		{"bad id", http.MethodGet, "/api/listings/not-a-uuid", nil, http.StatusBadRequest},
		{"unknown id", http.MethodDelete, "/api/listings/6f1c2d3e-4b5a-4c6d-8e7f-9a0b1c2d3e4f", nil, http.StatusNotFound},
		{"bad make filter", http.MethodGet, "/api/listings?make=" + "TOYOTA%3BDROP", nil, http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := performJSONRequest(r, tc.method, tc.path, tc.body, nil)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
		})
	}
}

func TestReparseEndpoint(t *testing.T) {
	r, db := setupRouter(t, nil)

	stale := &models.Listing{Title: "2020 Honda Civic", Make: "Wrong"}
	if err := db.SaveListing(stale); err != nil {
		t.Fatalf("SaveListing failed: %v", err)
	}

	rec := performJSONRequest(r, http.MethodPost, "/api/listings/reparse", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var summary listings.ReparseSummary
	decode(t, rec, &summary)
	if summary.Total != 1 || summary.Updated != 1 {
		t.Fatalf("unexpected summary: %+v", summary)
	}

	fixed, err := db.GetListing(stale.ID)
	if err != nil || fixed.Make != "HONDA" {
		t.Fatalf("listing not reparsed: %+v (%v)", fixed, err)
	}
}

func TestFetchEndpoint(t *testing.T) {
	cases := []struct {
		name   string
		source listings.TitleSource
		url    string
		want   int
	}{
		{"success", stubSource{title: "2019 Subaru Crosstrek Sport"}, "https://example.com/item/7", http.StatusCreated},
		{"no source", nil, "https://example.com/item/7", http.StatusServiceUnavailable},
		{"no title", stubSource{err: fmt.Errorf("read page: %w", scraper.ErrNoTitle)}, "https://example.com/item/7", http.StatusUnprocessableEntity},
		{"load failure", stubSource{err: errors.New("navigation timeout")}, "https://example.com/item/7", http.StatusBadGateway},
		{"bad url", stubSource{title: "x"}, "file:///etc/passwd", http.StatusBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, _ := setupRouter(t, tc.source)
			rec := performJSONRequest(r, http.MethodPost, "/api/listings/fetch", FetchRequest{URL: tc.url}, nil)
			if rec.Code != tc.want {
				t.Fatalf("expected %d, got %d: %s", tc.want, rec.Code, rec.Body.String())
			}
			if tc.want == http.StatusCreated {
				var created listingEnvelope
				decode(t, rec, &created)
				if created.Listing.Make != "SUBARU" || created.Listing.Model != "CROSSTREK" {
					t.Fatalf("unexpected fetched listing: %+v", created.Listing)
				}
			}
		})
	}
}

func TestHealth(t *testing.T) {
	r := gin.New()
	r.GET("/ok", Health(func() error { return nil }))
	r.GET("/down", Health(func() error { return errors.New("database is locked") }))

	if rec := performJSONRequest(r, http.MethodGet, "/ok", nil, nil); rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec := performJSONRequest(r, http.MethodGet, "/down", nil, nil); rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}
