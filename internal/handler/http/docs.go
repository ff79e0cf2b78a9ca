// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bytes"
	"encoding/json"
	"html/template"
	"net/http"

	"github.com/MKhiriev/go-api-scaffold/internal/service"
	"github.com/MKhiriev/go-api-scaffold/models"
	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-chi/chi/v5"
)

// docsPage is the data of an interactive documentation page.
type docsPage struct {
	Title   string
	SpecURL string
}

var docsTemplates = map[string]*template.Template{
	service.DocsPathSwagger: template.Must(template.New("swagger").Parse(`<!doctype html>
<html>
<head>
<title>{{.Title}} - Swagger UI</title>
<meta charset="utf-8" />
<link rel="stylesheet" href="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
<div id="swagger-ui"></div>
<script src="https://cdn.jsdelivr.net/npm/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
<script>SwaggerUIBundle({url: "{{.SpecURL}}", dom_id: "#swagger-ui"});</script>
</body>
</html>`)),
	service.DocsPathRedoc: template.Must(template.New("redoc").Parse(`<!doctype html>
<html>
<head>
<title>{{.Title}} - ReDoc</title>
<meta charset="utf-8" />
</head>
<body>
<redoc spec-url="{{.SpecURL}}"></redoc>
<script src="https://cdn.jsdelivr.net/npm/redoc@2/bundles/redoc.standalone.js"></script>
</body>
</html>`)),
	service.DocsPathScalar: template.Must(template.New("scalar").Parse(`<!doctype html>
<html>
<head>
<title>{{.Title}} - API Documentation</title>
<meta charset="utf-8" />
<meta name="viewport" content="width=device-width, initial-scale=1" />
</head>
<body>
<script id="api-reference" data-url="{{.SpecURL}}"
  data-configuration='{"theme": "purple", "layout": "modern", "showSidebar": true, "darkMode": true}'></script>
<script src="https://cdn.jsdelivr.net/npm/@scalar/api-reference"></script>
</body>
</html>`)),
	service.DocsPathRapidoc: template.Must(template.New("rapidoc").Parse(`<!doctype html>
<html>
<head>
<title>{{.Title}} - RapiDoc</title>
<meta charset="utf-8" />
<script type="module" src="https://unpkg.com/rapidoc/dist/rapidoc-min.js"></script>
</head>
<body>
<rapi-doc spec-url="{{.SpecURL}}" render-style="read" show-header="false"></rapi-doc>
</body>
</html>`)),
}

// registerDocs mounts the OpenAPI document and the documentation pages.
func (h *Handler) registerDocs(router chi.Router) error {
	spec, err := json.Marshal(h.openAPIDocument())
	if err != nil {
		return err
	}

	router.Get(service.OpenAPIPath, h.handle(func(w http.ResponseWriter, r *http.Request) error {
		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write(spec)
		return err
	}))

	page := docsPage{Title: h.cfg.App.ProjectName, SpecURL: service.OpenAPIPath}
	for path, tmpl := range docsTemplates {
		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, page); err != nil {
			return err
		}
		html := buf.Bytes()

		router.Get(path, h.handle(func(w http.ResponseWriter, r *http.Request) error {
			w.Header().Set("Content-Type", "text/html; charset=utf-8")
			_, err := w.Write(html)
			return err
		}))
	}

	return nil
}

// openAPIDocument describes the routes registered by Init.
func (h *Handler) openAPIDocument() *openapi3.T {
	app := h.cfg.App

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:       app.ProjectName,
			Version:     app.Version,
			Description: app.Description,
		},
		Paths: &openapi3.Paths{},
	}

	errorSchema := openapi3.NewObjectSchema().
		WithProperty("error", openapi3.NewBoolSchema()).
		WithProperty("message", openapi3.NewStringSchema()).
		WithProperty("details", openapi3.NewObjectSchema())
	credentialsSchema := openapi3.NewObjectSchema().
		WithProperty("username", openapi3.NewStringSchema()).
		WithProperty("password", openapi3.NewStringSchema().WithFormat("password"))
	credentialsSchema.Required = []string{"username", "password"}

	operation := func(tag, summary string, status int, description string) *openapi3.Operation {
		op := openapi3.NewOperation()
		op.Tags = []string{tag}
		op.Summary = summary
		op.AddResponse(status, openapi3.NewResponse().WithDescription(description))
		op.AddResponse(0, openapi3.NewResponse().WithDescription("Error").WithJSONSchema(errorSchema))
		return op
	}
	withBody := func(op *openapi3.Operation) *openapi3.Operation {
		op.RequestBody = &openapi3.RequestBodyRef{
			Value: openapi3.NewRequestBody().WithRequired(true).WithJSONSchema(credentialsSchema),
		}
		return op
	}

	doc.Paths.Set("/", &openapi3.PathItem{Get: operation("Health", "Root", http.StatusOK, "Application description")})
	doc.Paths.Set("/health", &openapi3.PathItem{Get: operation("Health", "Health check", http.StatusOK, "Application is healthy")})

	api := app.APIPrefix
	doc.Paths.Set(api+"/auth/token", &openapi3.PathItem{
		Post: withBody(operation("Auth", "Issue an access token", http.StatusOK, "Access token")),
	})
	doc.Paths.Set(api+"/auth/register", &openapi3.PathItem{
		Post: withBody(operation("Auth", "Register a user", http.StatusCreated, "Registered user")),
	})
	doc.Paths.Set(api+"/auth/me", &openapi3.PathItem{
		Get: operation("Auth", "Current user", http.StatusOK, "Subject of the bearer token"),
	})

	list := operation("Users", "List users", http.StatusOK, "One page of users")
	list.AddParameter(openapi3.NewQueryParameter("skip").WithSchema(openapi3.NewIntegerSchema().WithMin(0)))
	list.AddParameter(openapi3.NewQueryParameter("limit").
		WithSchema(openapi3.NewIntegerSchema().WithMin(1).WithMax(models.MaxPageLimit)))
	list.AddParameter(openapi3.NewQueryParameter("order_by").WithSchema(openapi3.NewStringSchema()))
	list.AddParameter(openapi3.NewQueryParameter("order_desc").WithSchema(openapi3.NewBoolSchema()))
	doc.Paths.Set(api+"/users", &openapi3.PathItem{Get: list})

	return doc
}
