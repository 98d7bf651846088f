// Package server exposes the tabletop toolkit as a JSON HTTP API.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/louisbranch/tabletop/internal/blades"
	"github.com/louisbranch/tabletop/internal/dice"
	"github.com/louisbranch/tabletop/internal/namegen"
	platformerrors "github.com/louisbranch/tabletop/internal/platform/errors"
	"github.com/louisbranch/tabletop/internal/session"
	"github.com/louisbranch/tabletop/internal/storage"
)

// Config holds the server configuration loaded from the environment.
type Config struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	SheetDBPath string `env:"SHEET_DB_PATH" envDefault:"tabletop.db"`
	NamesDBPath string `env:"NAMES_DB_PATH" envDefault:"names.db"`
	Debug       bool   `env:"DEBUG" envDefault:"false"`
}

// Server wires the rule engines, stores, and session into HTTP handlers.
type Server struct {
	log     *zap.SugaredLogger
	store   storage.Store
	names   *namegen.Store
	session *session.Session
}

// New returns a server over the provided dependencies. The names store
// may be nil, in which case the name endpoints respond 404.
func New(log *zap.SugaredLogger, store storage.Store, names *namegen.Store, sess *session.Session) *Server {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Server{log: log, store: store, names: names, session: sess}
}

// Close flushes pending autosaves. Call on shutdown so the debounce never
// swallows the final edit.
func (s *Server) Close(ctx context.Context) error {
	if s.session == nil || s.session.Autosaver == nil {
		return nil
	}
	return s.session.Autosaver.Close(ctx)
}

// Routes returns the API handler.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/blades/roll", s.handleBladesRoll)
	mux.HandleFunc("POST /api/blades/bonus", s.handleBladesBonus)
	mux.HandleFunc("POST /api/fate/roll", s.handleFateRoll)

	mux.HandleFunc("GET /api/sheets/{system}", s.handleSheetList)
	mux.HandleFunc("GET /api/sheets/{system}/{id}", s.handleSheetGet)
	mux.HandleFunc("PUT /api/sheets/{system}/{id}", s.handleSheetPut)
	mux.HandleFunc("POST /api/sheets/{system}/{id}/autosave", s.handleSheetAutosave)
	mux.HandleFunc("DELETE /api/sheets/{system}/{id}", s.handleSheetDelete)

	mux.HandleFunc("POST /api/convert", s.handleConvert)
	mux.HandleFunc("GET /api/names", s.handleNames)

	mux.HandleFunc("PUT /api/transfer/{slot}", s.handleTransferPut)
	mux.HandleFunc("GET /api/transfer/{slot}", s.handleTransferTake)

	return mux
}

// rollSeed resolves the roll seed: an explicit non-zero seed keeps the
// roll reproducible, otherwise the clock seeds it.
func rollSeed(seed int64) int64 {
	if seed != 0 {
		return seed
	}
	return time.Now().UnixNano()
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		s.log.Errorw("write response", "error", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	code := platformerrors.CodeUnknown
	status := http.StatusBadRequest

	var domainErr *platformerrors.Error
	switch {
	case errors.As(err, &domainErr):
		code = domainErr.Code
		status = code.HTTPStatus()
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, namegen.ErrNoMatches):
		code = platformerrors.CodeNotFound
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrQuotaExceeded):
		code = platformerrors.CodeStorageQuotaExceeded
		status = code.HTTPStatus()
	case errors.Is(err, dice.ErrInvalidFaces), errors.Is(err, dice.ErrInvalidCount),
		errors.Is(err, blades.ErrEmptyPool), errors.Is(err, blades.ErrInvalidDie),
		errors.Is(err, blades.ErrInvalidPosition), errors.Is(err, blades.ErrNegativePool),
		errors.Is(err, blades.ErrBonusUsed), errors.Is(err, blades.ErrUnknownBonus),
		errors.Is(err, namegen.ErrInvalidCount):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
		code = platformerrors.CodeStorageFailure
	}

	s.writeJSON(w, status, errorResponse{Error: err.Error(), Code: string(code)})
}
