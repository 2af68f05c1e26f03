// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/telekom/routemap/internal/logger"
	"github.com/telekom/routemap/internal/traceroute"
	"github.com/telekom/routemap/pkg/output"
	"github.com/telekom/routemap/pkg/pipeline"
	"golang.org/x/net/idna"
)

// maxRequestBody limits the size of a trace request
const maxRequestBody = 4 << 10

// traceRequest is the body of a trace request
type traceRequest struct {
	// Target is the hostname or address to trace
	Target string `json:"target"`
}

// errorResponse is the body of every failed request
type errorResponse struct {
	Error string `json:"error"`
}

// traceHandler serves the trace and artifact endpoints.
// Only one trace runs at a time.
type traceHandler struct {
	pipeline pipeline.Pipeline
	store    *output.Store
	mu       sync.Mutex
}

func newTraceHandler(p pipeline.Pipeline, store *output.Store) *traceHandler {
	return &traceHandler{pipeline: p, store: store}
}

func (h *traceHandler) createTrace(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromContext(ctx)

	var req traceRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody)).Decode(&req); err != nil {
		log.DebugContext(ctx, "Invalid trace request", "error", err)
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	req.Target = strings.TrimSpace(req.Target)
	if req.Target == "" {
		writeError(w, http.StatusBadRequest, traceroute.ErrEmptyTarget.Error())
		return
	}
	if !validTarget(req.Target) {
		log.WarnContext(ctx, "Rejected trace target", "target", req.Target)
		writeError(w, http.StatusBadRequest, ErrInvalidTarget.Error())
		return
	}

	h.mu.Lock()
	res, err := h.pipeline.Run(ctx, req.Target)
	h.mu.Unlock()
	if err != nil {
		switch {
		case errors.Is(err, pipeline.ErrNoRoute):
			writeError(w, http.StatusUnprocessableEntity, pipeline.ErrNoRoute.Error())
		case errors.Is(err, traceroute.ErrPublicAddress):
			writeError(w, http.StatusBadGateway, traceroute.ErrPublicAddress.Error())
		case errors.Is(err, traceroute.ErrEmptyTarget):
			writeError(w, http.StatusBadRequest, traceroute.ErrEmptyTarget.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, res)
}

// validTarget reports whether the target is an ip address or a hostname.
// Values the trace command could read as an option are refused.
func validTarget(target string) bool {
	if strings.HasPrefix(target, "-") || strings.HasPrefix(target, "/") {
		return false
	}
	if net.ParseIP(target) != nil {
		return true
	}
	_, err := idna.Registration.ToASCII(strings.ToLower(target))
	return err == nil
}

func (h *traceHandler) listRoutes(w http.ResponseWriter, r *http.Request) {
	names, err := h.store.Routes()
	if err != nil {
		logger.FromContext(r.Context()).ErrorContext(r.Context(), "Failed to list routes", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to list routes")
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (h *traceHandler) getRoute(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	b, err := h.store.Route(name)
	if err != nil {
		h.storeError(w, r, err)
		return
	}

	contentType := "application/json"
	if filepath.Ext(name) == "."+output.FormatYAML.String() {
		contentType = "application/yaml"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (h *traceHandler) getMap(w http.ResponseWriter, r *http.Request) {
	b, err := h.store.Map()
	if err != nil {
		h.storeError(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(b)
}

func (h *traceHandler) storeError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, output.ErrNotFound) {
		writeError(w, http.StatusNotFound, output.ErrNotFound.Error())
		return
	}
	logger.FromContext(r.Context()).ErrorContext(r.Context(), "Failed to read artifact", "error", err)
	writeError(w, http.StatusInternalServerError, "failed to read artifact")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}
