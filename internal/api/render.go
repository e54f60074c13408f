package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/matzehuels/scenesvg/pkg/errors"
	"github.com/matzehuels/scenesvg/pkg/pipeline"
)

// handleRender renders the scene document in the request body.
//
// Query parameters:
//   - width, height: requested output dimensions (optional)
//   - pretty: emit indented SVG when "true"
//   - prefix: XML ID prefix; "auto" generates a fresh unique prefix
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, fmt.Errorf("read body: %w", err))
		return
	}
	if len(body) == 0 {
		writeError(w, http.StatusBadRequest, errors.New(errors.ErrCodeInvalidScene, "empty request body"))
		return
	}

	opts, err := renderOptions(r, body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	result, err := s.runner.Execute(r.Context(), opts)
	if err != nil {
		writeError(w, statusForError(err), err)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.Header().Set("X-Scene-Hash", result.SceneHash)
	if result.CacheInfo.ArtifactHit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.SVG)
}

// renderOptions builds pipeline options from the query string and body.
func renderOptions(r *http.Request, body []byte) (pipeline.Options, error) {
	opts := pipeline.Options{Data: body}
	q := r.URL.Query()

	var err error
	if opts.Width, err = floatParam(q.Get("width")); err != nil {
		return opts, errors.New(errors.ErrCodeInvalidSize, "invalid width: %v", err)
	}
	if opts.Height, err = floatParam(q.Get("height")); err != nil {
		return opts, errors.New(errors.ErrCodeInvalidSize, "invalid height: %v", err)
	}
	opts.Pretty = q.Get("pretty") == "true"
	opts.Refresh = q.Get("refresh") == "true"

	opts.IDPrefix = q.Get("prefix")
	if opts.IDPrefix == "auto" {
		opts.IDPrefix = "r" + uuid.NewString()[:8] + "-"
	}

	return opts, nil
}

func floatParam(s string) (float64, error) {
	if s == "" {
		return 0, nil
	}
	return strconv.ParseFloat(s, 64)
}

// statusForError maps structured error codes to HTTP status codes.
func statusForError(err error) int {
	switch errors.GetCode(err) {
	case errors.ErrCodeInvalidScene, errors.ErrCodeInvalidSize, errors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case errors.ErrCodeUnsupportedMIME, errors.ErrCodeUnsupportedImage:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeNotFound, errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := errorResponse{Error: errors.UserMessage(err)}
	if code := errors.GetCode(err); code != "" {
		resp.Code = string(code)
	}
	_ = json.NewEncoder(w).Encode(resp)
}
