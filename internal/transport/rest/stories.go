package rest

import (
	"net/http"
	"time"

	"github.com/heartmarshall/biblestories-backend/internal/corpus"
	"github.com/heartmarshall/biblestories-backend/internal/domain"
)

// StoriesHandler serves read-only story endpoints backed by the in-memory
// corpus. All queries are total: an empty result is a valid 200 response,
// never an error.
type StoriesHandler struct {
	corpus *corpus.Corpus
	now    func() time.Time
}

// NewStoriesHandler creates a StoriesHandler.
func NewStoriesHandler(c *corpus.Corpus) *StoriesHandler {
	return &StoriesHandler{corpus: c, now: time.Now}
}

type storyResponse struct {
	ID             string             `json:"id"`
	Title          string             `json:"title"`
	Reference      string             `json:"reference"`
	Volume         string             `json:"volume"`
	Category       string             `json:"category"`
	Summary        string             `json:"summary"`
	KeyElements    []string           `json:"keyElements"`
	CrossPattern   []crossRefResponse `json:"crossPattern"`
	Dimensions     dimensionsResponse `json:"dimensions"`
	RelatedStories []string           `json:"relatedStories"`
	KeyFigures     []string           `json:"keyFigures,omitempty"`
	Setting        *string            `json:"setting,omitempty"`
}

type crossRefResponse struct {
	Element     string `json:"element"`
	Application string `json:"application"`
}

type dimensionsResponse struct {
	Literal        string `json:"literal"`
	Typological    string `json:"typological"`
	Personal       string `json:"personal"`
	Communal       string `json:"communal"`
	Eschatological string `json:"eschatological"`
	Cosmic         string `json:"cosmic"`
}

type storyListResponse struct {
	Stories []storyResponse `json:"stories"`
	Total   int             `json:"total"`
}

// List handles GET /api/stories. Optional query parameters narrow the
// result: ?volume= and ?category= filter by exact, case-sensitive match;
// ?q= runs a case-insensitive substring search. Filters do not combine;
// search wins over grouping filters when both are present.
func (h *StoriesHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var stories []domain.Story
	switch {
	case q.Has("q"):
		stories = h.corpus.Search(q.Get("q"))
	case q.Has("volume"):
		stories = h.corpus.ByGrouping(corpus.GroupingVolume, q.Get("volume"))
	case q.Has("category"):
		stories = h.corpus.ByGrouping(corpus.GroupingCategory, q.Get("category"))
	default:
		stories = h.corpus.Stories()
	}

	writeJSON(w, http.StatusOK, toStoryListResponse(stories))
}

// GetByID handles GET /api/stories/{id}.
func (h *StoriesHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	story, ok := h.corpus.ByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "story not found")
		return
	}
	writeJSON(w, http.StatusOK, toStoryResponse(story))
}

// Daily handles GET /api/stories/daily. The pick is a pure function of the
// current UTC date and the corpus, so every request on the same day sees
// the same story.
func (h *StoriesHandler) Daily(w http.ResponseWriter, r *http.Request) {
	story := h.corpus.StoryOfTheDay(h.now().UTC())
	writeJSON(w, http.StatusOK, toStoryResponse(story))
}

// Volumes handles GET /api/volumes.
func (h *StoriesHandler) Volumes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"volumes": h.corpus.DistinctValues(corpus.GroupingVolume),
	})
}

// Categories handles GET /api/categories.
func (h *StoriesHandler) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"categories": h.corpus.DistinctValues(corpus.GroupingCategory),
	})
}

// Books handles GET /api/books. Order follows the declared partition order,
// not first appearance in query results.
func (h *StoriesHandler) Books(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]string{
		"books": h.corpus.Books(),
	})
}

func toStoryListResponse(stories []domain.Story) storyListResponse {
	out := storyListResponse{
		Stories: make([]storyResponse, 0, len(stories)),
		Total:   len(stories),
	}
	for _, s := range stories {
		out.Stories = append(out.Stories, toStoryResponse(s))
	}
	return out
}

func toStoryResponse(s domain.Story) storyResponse {
	crossPattern := make([]crossRefResponse, 0, len(s.CrossPattern))
	for _, cr := range s.CrossPattern {
		crossPattern = append(crossPattern, crossRefResponse{
			Element:     cr.Element,
			Application: cr.Application,
		})
	}

	return storyResponse{
		ID:           s.ID,
		Title:        s.Title,
		Reference:    s.Reference,
		Volume:       s.Volume,
		Category:     s.Category,
		Summary:      s.Summary,
		KeyElements:  s.KeyElements,
		CrossPattern: crossPattern,
		Dimensions: dimensionsResponse{
			Literal:        s.Dimensions.Literal,
			Typological:    s.Dimensions.Typological,
			Personal:       s.Dimensions.Personal,
			Communal:       s.Dimensions.Communal,
			Eschatological: s.Dimensions.Eschatological,
			Cosmic:         s.Dimensions.Cosmic,
		},
		RelatedStories: s.RelatedStories,
		KeyFigures:     s.KeyFigures,
		Setting:        s.Setting,
	}
}
