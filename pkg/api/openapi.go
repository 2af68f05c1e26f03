// SPDX-FileCopyrightText: 2025 Deutsche Telekom IT GmbH
//
// SPDX-License-Identifier: Apache-2.0

package api

import (
	"encoding/json"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3gen"
	"github.com/telekom/routemap/internal/logger"
	"github.com/telekom/routemap/pkg/pipeline"
	"gopkg.in/yaml.v3"
)

// openapi builds the openapi document of the api.
// The schemas are generated from the served types.
func (a *api) openapi() (*openapi3.T, error) {
	result, err := openapi3gen.NewSchemaRefForValue(pipeline.Result{}, nil)
	if err != nil {
		return nil, ErrCreateOpenapiSchema{name: "trace result", err: err}
	}
	request, err := openapi3gen.NewSchemaRefForValue(traceRequest{}, nil)
	if err != nil {
		return nil, ErrCreateOpenapiSchema{name: "trace request", err: err}
	}
	failure, err := openapi3gen.NewSchemaRefForValue(errorResponse{}, nil)
	if err != nil {
		return nil, ErrCreateOpenapiSchema{name: "error response", err: err}
	}
	names, err := openapi3gen.NewSchemaRefForValue([]string{}, nil)
	if err != nil {
		return nil, ErrCreateOpenapiSchema{name: "route list", err: err}
	}

	errorRef := func(desc string) *openapi3.ResponseRef {
		return &openapi3.ResponseRef{Value: openapi3.NewResponse().
			WithDescription(desc).
			WithContent(openapi3.NewContentWithJSONSchemaRef(failure))}
	}

	version := a.version
	if version == "" {
		version = "dev"
	}

	return &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       "routemap",
			Description: "Traces the network route towards a target and locates its hops",
			Version:     version,
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath("/v1/traces", &openapi3.PathItem{
				Post: &openapi3.Operation{
					OperationID: "createTrace",
					Summary:     "Trace the route towards a target",
					RequestBody: &openapi3.RequestBodyRef{Value: openapi3.NewRequestBody().
						WithRequired(true).
						WithJSONSchemaRef(request)},
					Responses: openapi3.NewResponses(
						openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: openapi3.NewResponse().
							WithDescription("The traced route and the written artifacts").
							WithContent(openapi3.NewContentWithJSONSchemaRef(result))}),
						openapi3.WithStatus(http.StatusBadRequest, errorRef("Invalid request")),
						openapi3.WithStatus(http.StatusUnprocessableEntity, errorRef("No route to the target")),
						openapi3.WithStatus(http.StatusBadGateway, errorRef("Public address unavailable")),
					),
				},
			}),
			openapi3.WithPath("/v1/routes", &openapi3.PathItem{
				Get: &openapi3.Operation{
					OperationID: "listRoutes",
					Summary:     "List the persisted route files, newest first",
					Responses: openapi3.NewResponses(
						openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: openapi3.NewResponse().
							WithDescription("Route file names").
							WithContent(openapi3.NewContentWithJSONSchemaRef(names))}),
					),
				},
			}),
			openapi3.WithPath("/v1/routes/{name}", &openapi3.PathItem{
				Get: &openapi3.Operation{
					OperationID: "getRoute",
					Summary:     "Get a persisted route file",
					Parameters: openapi3.Parameters{
						{Value: openapi3.NewPathParameter("name").WithSchema(openapi3.NewStringSchema())},
					},
					Responses: openapi3.NewResponses(
						openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: openapi3.NewResponse().
							WithDescription("The route file").
							WithContent(openapi3.NewContentWithJSONSchemaRef(result.Value.Properties["route"]))}),
						openapi3.WithStatus(http.StatusNotFound, errorRef("Unknown route file")),
					),
				},
			}),
			openapi3.WithPath("/v1/map", &openapi3.PathItem{
				Get: &openapi3.Operation{
					OperationID: "getMap",
					Summary:     "Get the map of the latest route",
					Responses: openapi3.NewResponses(
						openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{Value: openapi3.NewResponse().
							WithDescription("HTML page")}),
						openapi3.WithStatus(http.StatusNotFound, errorRef("No map rendered yet")),
					),
				},
			}),
		),
	}, nil
}

// handleOpenapi serves the openapi document as yaml or as json if requested
func (a *api) handleOpenapi(doc *openapi3.T) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromContext(r.Context())

		mime := "application/yaml"
		marshal := yaml.Marshal
		if r.Header.Get("Accept") == "application/json" {
			mime = "application/json"
			marshal = json.Marshal
		}

		b, err := marshal(doc)
		if err != nil {
			log.ErrorContext(r.Context(), "Failed to marshal openapi document", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to marshal openapi document")
			return
		}
		w.Header().Set("Content-Type", mime)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(b)
	}
}
