package devstore

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/koenjo741/smartcards/internal/config"
	"github.com/koenjo741/smartcards/internal/logger"
	"github.com/koenjo741/smartcards/internal/utils"
	"github.com/koenjo741/smartcards/models"
)

type Handler struct {
	store *DocStore
	cfg   config.DevStoreServer

	logger *logger.Logger
}

func NewHandler(store *DocStore, cfg config.DevStoreServer, logger *logger.Logger) *Handler {
	logger.Info().Msg("devstore handler created")
	return &Handler{
		store:  store,
		cfg:    cfg,
		logger: logger,
	}
}

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/session", h.openSession)
	})

	// document routes require a bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/doc/head", h.head)
		r.Get("/api/doc", h.download)
		r.Put("/api/doc", h.upload)
	})

	return router
}

// openSession issues a bearer token for the given user ID. There is no user
// database: any ID is accepted, which is all a development store needs.
func (h *Handler) openSession(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var req models.SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Str("func", "*Handler.openSession").Msg("invalid JSON was passed")
		http.Error(w, "invalid JSON was passed", http.StatusBadRequest)
		return
	}
	if req.UserID == 0 {
		http.Error(w, "user_id is required", http.StatusBadRequest)
		return
	}

	token, err := utils.GenerateJWTToken(h.cfg.TokenIssuer, req.UserID, h.cfg.TokenDuration, h.cfg.TokenSignKey)
	if err != nil {
		log.Err(err).Str("func", "*Handler.openSession").Msg("error generating token")
		http.Error(w, "error generating token", http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.SessionResponse{Token: token.SignedString}, http.StatusOK)
}

func (h *Handler) head(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		log.Error().Str("func", "*Handler.head").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	rev, err := h.store.Head(userID)
	if err != nil {
		http.Error(w, ErrNoDocument.Error(), http.StatusNotFound)
		return
	}

	utils.WriteJSON(w, models.HeadResponse{Revision: rev}, http.StatusOK)
}

func (h *Handler) download(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		log.Error().Str("func", "*Handler.download").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	rev := models.Revision(r.URL.Query().Get("rev"))

	body, rev, err := h.store.Download(userID, rev)
	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(models.HeaderDocRevision, rev.String())
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (h *Handler) upload(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	userID, found := utils.GetUserIDFromContext(r.Context())
	if !found {
		log.Error().Str("func", "*Handler.upload").Msg("no user ID was given")
		http.Error(w, "no user ID was given", http.StatusBadRequest)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		log.Err(err).Str("func", "*Handler.upload").Msg("error reading request body")
		http.Error(w, "error reading request body", http.StatusBadRequest)
		return
	}

	parent := models.Revision(r.Header.Get(models.HeaderIfMatch))

	rev, err := h.store.Upload(userID, body, parent)
	if err != nil {
		log.Err(err).
			Str("func", "*Handler.upload").
			Str("parent", parent.String()).
			Msg("conditional upload rejected")
		http.Error(w, ErrRevisionMismatch.Error(), http.StatusConflict)
		return
	}

	utils.WriteJSON(w, models.UploadResponse{Revision: rev}, http.StatusOK)
}
