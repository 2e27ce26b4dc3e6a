package api

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"attentionops/backend/internal/catalog"
)

func TestListTemplates(t *testing.T) {
	ts := newTestServer(t, nil, Deps{})

	recorder := ts.do(t, http.MethodGet, "/api/templates", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var templates []catalog.MissionTemplate
	if err := json.Unmarshal(recorder.Body.Bytes(), &templates); err != nil {
		t.Fatalf("decode templates: %v", err)
	}
	if len(templates) != 12 {
		t.Fatalf("expected 12 templates, got %d", len(templates))
	}
	if !strings.Contains(recorder.Body.String(), `"timeMinutes":30`) {
		t.Fatalf("templates must use camelCase keys: %s", recorder.Body.String())
	}
}

func TestListTemplatesByCategory(t *testing.T) {
	ts := newTestServer(t, nil, Deps{})

	recorder := ts.do(t, http.MethodGet, "/api/templates/category/networking", "")
	var templates []catalog.MissionTemplate
	if err := json.Unmarshal(recorder.Body.Bytes(), &templates); err != nil {
		t.Fatalf("decode templates: %v", err)
	}
	if len(templates) != 3 {
		t.Fatalf("expected 3 networking templates, got %d", len(templates))
	}
	for _, item := range templates {
		if item.Category != "networking" {
			t.Fatalf("unexpected category %q", item.Category)
		}
	}

	recorder = ts.do(t, http.MethodGet, "/api/templates/category/knitting", "")
	if recorder.Code != http.StatusOK || strings.TrimSpace(recorder.Body.String()) != "[]" {
		t.Fatalf("unknown category must return an empty list, got %d %q", recorder.Code, recorder.Body.String())
	}
}

func TestListPhotos(t *testing.T) {
	ts := newTestServer(t, nil, Deps{})

	recorder := ts.do(t, http.MethodGet, "/api/photos", "")
	var photos []catalog.Photo
	if err := json.Unmarshal(recorder.Body.Bytes(), &photos); err != nil {
		t.Fatalf("decode photos: %v", err)
	}
	if len(photos) != 6 {
		t.Fatalf("expected 6 photos, got %d", len(photos))
	}
	if !strings.Contains(recorder.Body.String(), `"veteranName":"Marcus Johnson"`) {
		t.Fatalf("unexpected photos payload: %s", recorder.Body.String())
	}
}

func TestGetOptions(t *testing.T) {
	ts := newTestServer(t, nil, Deps{})

	recorder := ts.do(t, http.MethodGet, "/api/options", "")
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	var payload optionsResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &payload); err != nil {
		t.Fatalf("decode options: %v", err)
	}
	if len(payload.Platforms) != 7 || len(payload.Styles) != 4 || len(payload.Goals) != 5 {
		t.Fatalf("unexpected option counts: %d platforms, %d styles, %d goals", len(payload.Platforms), len(payload.Styles), len(payload.Goals))
	}
	if len(payload.Times) != 6 || len(payload.Categories) != 4 {
		t.Fatalf("unexpected times/categories: %#v %#v", payload.Times, payload.Categories)
	}
	if payload.Platforms[0].Value != "linkedin" || payload.Platforms[0].Label != "LinkedIn" {
		t.Fatalf("unexpected first platform: %#v", payload.Platforms[0])
	}
	if payload.BankVersion == "" {
		t.Fatalf("expected bank version")
	}
}
