package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/heartmarshall/biblestories-backend/internal/corpus"
	"github.com/heartmarshall/biblestories-backend/internal/domain"
)

func testStory(id, title, volume, category string) domain.Story {
	return domain.Story{
		ID:        id,
		Title:     title,
		Reference: "Book 1:1",
		Volume:    volume,
		Category:  category,
		Summary:   "summary of " + title,
		Dimensions: domain.Dimensions{
			Literal:        "l",
			Typological:    "t",
			Personal:       "p",
			Communal:       "c",
			Eschatological: "e",
			Cosmic:         "co",
		},
	}
}

func testCorpus(t *testing.T) *corpus.Corpus {
	t.Helper()

	c, err := corpus.Build(
		corpus.Partition{Book: "Genesis", Stories: []domain.Story{
			testStory("creation", "The Creation", "Old Testament", "Origins"),
			testStory("noah-flood", "Noah and the Flood", "Old Testament", "Judgment"),
		}},
		corpus.Partition{Book: "John", Stories: []domain.Story{
			testStory("lazarus-raised", "Lazarus Raised", "New Testament", "Miracles"),
		}},
	)
	if err != nil {
		t.Fatalf("failed to build test corpus: %v", err)
	}
	return c
}

func TestStoriesList_All(t *testing.T) {
	t.Parallel()

	h := NewStoriesHandler(testCorpus(t))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/stories", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp storyListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 3 {
		t.Errorf("expected total 3, got %d", resp.Total)
	}
	if resp.Stories[0].ID != "creation" {
		t.Errorf("expected corpus order, first story %q", resp.Stories[0].ID)
	}
}

func TestStoriesList_FilterByVolume(t *testing.T) {
	t.Parallel()

	h := NewStoriesHandler(testCorpus(t))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/stories?volume=New+Testament", nil))

	var resp storyListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 || resp.Stories[0].ID != "lazarus-raised" {
		t.Errorf("unexpected filter result: %+v", resp)
	}
}

func TestStoriesList_FilterIsCaseSensitive(t *testing.T) {
	t.Parallel()

	h := NewStoriesHandler(testCorpus(t))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/stories?category=origins", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp storyListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 0 {
		t.Errorf("lowercase filter value should match nothing, got %d results", resp.Total)
	}
}

func TestStoriesList_Search(t *testing.T) {
	t.Parallel()

	h := NewStoriesHandler(testCorpus(t))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/stories?q=LAZARUS", nil))

	var resp storyListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 1 || resp.Stories[0].ID != "lazarus-raised" {
		t.Errorf("unexpected search result: %+v", resp)
	}
}

func TestStoriesList_SearchNoMatchIs200(t *testing.T) {
	t.Parallel()

	h := NewStoriesHandler(testCorpus(t))

	rec := httptest.NewRecorder()
	h.List(rec, httptest.NewRequest(http.MethodGet, "/api/stories?q=nonexistent", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 for empty result, got %d", rec.Code)
	}

	var resp storyListResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Total != 0 {
		t.Errorf("expected 0 results, got %d", resp.Total)
	}
	if resp.Stories == nil {
		t.Error("expected empty array, not null")
	}
}

func TestStoriesGetByID(t *testing.T) {
	t.Parallel()

	h := NewStoriesHandler(testCorpus(t))

	req := httptest.NewRequest(http.MethodGet, "/api/stories/noah-flood", nil)
	req.SetPathValue("id", "noah-flood")
	rec := httptest.NewRecorder()
	h.GetByID(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}

	var resp storyResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Title != "Noah and the Flood" {
		t.Errorf("expected title 'Noah and the Flood', got %q", resp.Title)
	}
}

func TestStoriesGetByID_NotFound(t *testing.T) {
	t.Parallel()

	h := NewStoriesHandler(testCorpus(t))

	req := httptest.NewRequest(http.MethodGet, "/api/stories/missing", nil)
	req.SetPathValue("id", "missing")
	rec := httptest.NewRecorder()
	h.GetByID(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestStoriesDaily_StableWithinDay(t *testing.T) {
	t.Parallel()

	h := NewStoriesHandler(testCorpus(t))
	h.now = func() time.Time {
		return time.Date(2026, time.March, 5, 14, 30, 0, 0, time.UTC)
	}

	var ids []string
	for range 3 {
		rec := httptest.NewRecorder()
		h.Daily(rec, httptest.NewRequest(http.MethodGet, "/api/stories/daily", nil))

		var resp storyResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		ids = append(ids, resp.ID)
	}

	if ids[0] != ids[1] || ids[1] != ids[2] {
		t.Errorf("daily story changed within the same day: %v", ids)
	}
}

func TestStoriesDaily_RotatesAcrossDays(t *testing.T) {
	t.Parallel()

	c := testCorpus(t)
	seen := make(map[string]bool)
	for day := 1; day <= c.Len(); day++ {
		h := NewStoriesHandler(c)
		h.now = func() time.Time {
			return time.Date(2026, time.January, day, 0, 0, 0, 0, time.UTC)
		}

		rec := httptest.NewRecorder()
		h.Daily(rec, httptest.NewRequest(http.MethodGet, "/api/stories/daily", nil))

		var resp storyResponse
		if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		seen[resp.ID] = true
	}

	if len(seen) != c.Len() {
		t.Errorf("expected all %d stories over %d days, saw %d", c.Len(), c.Len(), len(seen))
	}
}

func TestStoriesVolumes(t *testing.T) {
	t.Parallel()

	h := NewStoriesHandler(testCorpus(t))

	rec := httptest.NewRecorder()
	h.Volumes(rec, httptest.NewRequest(http.MethodGet, "/api/volumes", nil))

	var resp map[string][]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := []string{"Old Testament", "New Testament"}
	if fmt.Sprint(resp["volumes"]) != fmt.Sprint(want) {
		t.Errorf("volumes = %v, want %v", resp["volumes"], want)
	}
}

func TestStoriesBooks_DeclaredOrder(t *testing.T) {
	t.Parallel()

	h := NewStoriesHandler(testCorpus(t))

	rec := httptest.NewRecorder()
	h.Books(rec, httptest.NewRequest(http.MethodGet, "/api/books", nil))

	var resp map[string][]string
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	want := []string{"Genesis", "John"}
	if fmt.Sprint(resp["books"]) != fmt.Sprint(want) {
		t.Errorf("books = %v, want %v", resp["books"], want)
	}
}
