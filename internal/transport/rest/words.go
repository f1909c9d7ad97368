package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/heartmarshall/wikiparse/internal/domain"
	"github.com/heartmarshall/wikiparse/pkg/ctxutil"
)

type lookupService interface {
	Lookup(ctx context.Context, word, language string) ([]domain.LexicalEntry, error)
	Translations(ctx context.Context, word string, codes []string) (map[string][]string, error)
	ResolveLanguage(language string) string
}

// WordsHandler serves word lookup endpoints.
type WordsHandler struct {
	svc lookupService
	log *slog.Logger
}

// NewWordsHandler creates a WordsHandler.
func NewWordsHandler(svc lookupService, logger *slog.Logger) *WordsHandler {
	return &WordsHandler{svc: svc, log: logger.With("handler", "words")}
}

// Register mounts the handler's routes on mux.
func (h *WordsHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/v1/words/{word}", h.Lookup)
	mux.HandleFunc("GET /api/v1/words/{word}/translations", h.Translations)
}

type lookupResponse struct {
	Word     string                `json:"word"`
	Language string                `json:"language"`
	Entries  []domain.LexicalEntry `json:"entries"`
}

type translationsResponse struct {
	Word         string              `json:"word"`
	Translations map[string][]string `json:"translations"`
}

// Lookup returns the lexical entries of a word.
// GET /api/v1/words/{word}?lang=english
func (h *WordsHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")
	language := r.URL.Query().Get("lang")

	entries, err := h.svc.Lookup(r.Context(), word, language)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, lookupResponse{
		Word:     domain.NormalizeWord(word),
		Language: h.svc.ResolveLanguage(language),
		Entries:  entries,
	})
}

// Translations returns the translations of a word into the given language codes.
// GET /api/v1/words/{word}/translations?langs=de,fr
func (h *WordsHandler) Translations(w http.ResponseWriter, r *http.Request) {
	word := r.PathValue("word")

	var codes []string
	for _, v := range r.URL.Query()["langs"] {
		codes = append(codes, strings.Split(v, ",")...)
	}

	translations, err := h.svc.Translations(r.Context(), word, codes)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, translationsResponse{
		Word:         domain.NormalizeWord(word),
		Translations: translations,
	})
}

func (h *WordsHandler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	log := ctxutil.Logger(r.Context(), h.log)

	var upErr *domain.UpstreamError
	switch {
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &upErr):
		log.WarnContext(r.Context(), "upstream failure",
			slog.Int("status", upErr.Status),
			slog.Int("attempts", upErr.Attempts),
		)
		writeError(w, http.StatusBadGateway, "document source unavailable")
	case errors.Is(err, domain.ErrUpstream):
		log.WarnContext(r.Context(), "upstream failure", slog.String("error", err.Error()))
		writeError(w, http.StatusBadGateway, "document source unavailable")
	case errors.Is(err, context.DeadlineExceeded):
		log.WarnContext(r.Context(), "lookup timed out", slog.String("error", err.Error()))
		writeError(w, http.StatusGatewayTimeout, "lookup timed out")
	case errors.Is(err, context.Canceled):
		// client went away; nothing useful to write
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
