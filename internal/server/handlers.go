package server

import (
	"encoding/json"
	"net/http"
	"path/filepath"

	"github.com/go-chi/chi/v5"

	"github.com/matzehuels/streemap/pkg/buildinfo"
	"github.com/matzehuels/streemap/pkg/dataset"
	"github.com/matzehuels/streemap/pkg/errors"
	"github.com/matzehuels/streemap/pkg/pipeline"
	"github.com/matzehuels/streemap/pkg/treemap"
)

// layoutRequest is the body of POST /v1/layouts and POST /v1/render.
type layoutRequest struct {
	Dataset *dataset.Dataset `json:"dataset,omitempty"`
	Path    string           `json:"path,omitempty"`
	Options pipeline.Options `json:"options"`
}

type algorithmInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

var contentTypes = map[string]string{
	pipeline.FormatSVG:  "image/svg+xml",
	pipeline.FormatPNG:  "image/png",
	pipeline.FormatJSON: "application/json",
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"build":  buildinfo.Get(),
	})
}

func (s *Server) handleAlgorithms(w http.ResponseWriter, r *http.Request) {
	algs := treemap.Algorithms()
	out := make([]algorithmInfo, len(algs))
	for i, a := range algs {
		out[i] = algorithmInfo{Name: a.String(), Description: a.Description()}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) handleCreateLayout(w http.ResponseWriter, r *http.Request) {
	ds, opts, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	l, err := s.runner.ComputeLayout(r.Context(), ds, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	saved, err := s.runner.SaveLayout(r.Context(), l)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	w.Header().Set("Location", "/v1/layouts/"+saved.ID)
	writeJSON(w, http.StatusCreated, saved)
}

func (s *Server) handleGetLayout(w http.ResponseWriter, r *http.Request) {
	l, err := s.runner.LoadLayout(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, l)
}

func (s *Server) handleRenderLayout(w http.ResponseWriter, r *http.Request) {
	l, err := s.runner.LoadLayout(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	var opts pipeline.Options
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &opts); err != nil {
			s.writeError(w, r, err)
			return
		}
	}
	opts.Inherit(s.defaults)
	s.render(w, r, l, opts)
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	ds, opts, err := s.decodeRequest(w, r)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	l, err := s.runner.ComputeLayout(r.Context(), ds, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	s.render(w, r, l, opts)
}

// render writes a single artifact. The format comes from the query string,
// then from the options, then defaults to svg.
func (s *Server) render(w http.ResponseWriter, r *http.Request, l dataset.Layout, opts pipeline.Options) {
	format := r.URL.Query().Get("format")
	if format == "" && len(opts.Formats) > 0 {
		format = opts.Formats[0]
	}
	if format == "" {
		format = pipeline.FormatSVG
	}
	if err := pipeline.ValidateFormat(format); err != nil {
		s.writeError(w, r, err)
		return
	}
	opts.Formats = []string{format}

	artifacts, err := s.runner.Render(r.Context(), l, opts)
	if err != nil {
		s.writeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", contentTypes[format])
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifacts[format])
}

// decodeRequest reads a layoutRequest and resolves its dataset.
func (s *Server) decodeRequest(w http.ResponseWriter, r *http.Request) (dataset.Dataset, pipeline.Options, error) {
	var req layoutRequest
	if err := decodeJSON(w, r, &req); err != nil {
		return dataset.Dataset{}, pipeline.Options{}, err
	}
	req.Options.Inherit(s.defaults)
	req.Options.Logger = s.logger

	switch {
	case req.Dataset != nil && req.Path != "":
		return dataset.Dataset{}, req.Options, errors.New(errors.ErrCodeInvalidInput, "request has both dataset and path")
	case req.Dataset != nil:
		return *req.Dataset, req.Options, nil
	case req.Path != "":
		ds, err := s.readDataFile(r, req.Path)
		return ds, req.Options, err
	}
	return dataset.Dataset{}, req.Options, errors.New(errors.ErrCodeInvalidInput, "request needs a dataset or a path")
}

func (s *Server) readDataFile(r *http.Request, path string) (dataset.Dataset, error) {
	if s.dataDir == "" {
		return dataset.Dataset{}, errors.New(errors.ErrCodeUnsupported, "server has no data directory")
	}
	if err := errors.ValidatePath(path); err != nil {
		return dataset.Dataset{}, err
	}
	return pipeline.ParseFile(r.Context(), filepath.Join(s.dataDir, filepath.FromSlash(path)))
}

// decodeJSON decodes a size-limited JSON body, rejecting unknown fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) error {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodyBytes)
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidInput, err, "decode request body")
	}
	if dec.More() {
		return errors.New(errors.ErrCodeInvalidInput, "request body has trailing data")
	}
	return nil
}
