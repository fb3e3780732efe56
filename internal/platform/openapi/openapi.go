package openapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// resourceDef describes one REST resource exposed under /api.
type resourceDef struct {
	// Name is the schema name, e.g. "Patient".
	Name string
	// Plural is the path segment, e.g. "patients".
	Plural string
	// Properties are the resource's own fields beyond id/createdAt/updatedAt.
	Properties map[string]interface{}
	// Required lists the fields that must be present on create.
	Required []string
	// OwnerFiltered adds the patientId query parameter to the list operation.
	OwnerFiltered bool
}

func resources() []resourceDef {
	return []resourceDef{
		{
			Name:   "Patient",
			Plural: "patients",
			Properties: map[string]interface{}{
				"firstName":   map[string]interface{}{"type": "string"},
				"lastName":    map[string]interface{}{"type": "string"},
				"dateOfBirth": map[string]interface{}{"type": "string", "format": "date"},
				"gender":      map[string]interface{}{"type": "string", "enum": []string{"male", "female", "other"}},
				"email":       map[string]interface{}{"type": "string", "format": "email"},
				"phone":       map[string]interface{}{"type": "string"},
				"address":     map[string]interface{}{"type": "string"},
			},
			Required: []string{"firstName", "lastName", "dateOfBirth", "gender"},
		},
		{
			Name:   "Note",
			Plural: "notes",
			Properties: map[string]interface{}{
				"patientId": map[string]interface{}{"type": "integer", "format": "int64"},
				"title":     map[string]interface{}{"type": "string"},
				"content":   map[string]interface{}{"type": "string"},
				"category":  map[string]interface{}{"type": "string", "enum": []string{"consultation", "diagnosis", "treatment", "general"}},
			},
			Required:      []string{"patientId", "title", "content"},
			OwnerFiltered: true,
		},
		{
			Name:   "Summary",
			Plural: "summaries",
			Properties: map[string]interface{}{
				"patientId": map[string]interface{}{"type": "integer", "format": "int64"},
				"title":     map[string]interface{}{"type": "string"},
				"content":   map[string]interface{}{"type": "string"},
				"dateFrom":  map[string]interface{}{"type": "string", "format": "date"},
				"dateTo":    map[string]interface{}{"type": "string", "format": "date"},
			},
			Required:      []string{"patientId", "title", "content"},
			OwnerFiltered: true,
		},
	}
}

// Generator builds the OpenAPI 3.0 spec for the medical records API.
type Generator struct {
	version string
	baseURL string
}

// NewGenerator creates a new OpenAPI spec generator.
func NewGenerator(version, baseURL string) *Generator {
	return &Generator{version: version, baseURL: baseURL}
}

// GenerateSpec produces the OpenAPI 3.0 spec as a map.
func (g *Generator) GenerateSpec() map[string]interface{} {
	paths := make(map[string]interface{})
	schemas := make(map[string]interface{})

	for _, res := range resources() {
		schemas[res.Name] = buildResourceSchema(res)
		schemas[res.Name+"Input"] = buildInputSchema(res)

		collectionPath := "/api/" + res.Plural
		itemPath := collectionPath + "/{id}"

		var listParams []map[string]interface{}
		if res.OwnerFiltered {
			listParams = append(listParams, map[string]interface{}{
				"name":        "patientId",
				"in":          "query",
				"schema":      map[string]interface{}{"type": "integer", "format": "int64"},
				"description": "Restrict results to a single patient",
			})
		}

		paths[collectionPath] = map[string]interface{}{
			"get": map[string]interface{}{
				"summary":     "List " + res.Plural,
				"operationId": "list" + res.Name + "s",
				"tags":        []string{res.Name},
				"parameters":  listParams,
				"responses": map[string]interface{}{
					"200": buildEnvelopeResponse("Success", map[string]interface{}{
						"type":  "array",
						"items": map[string]interface{}{"$ref": "#/components/schemas/" + res.Name},
					}),
				},
			},
			"post": map[string]interface{}{
				"summary":     "Create a " + res.Name,
				"operationId": "create" + res.Name,
				"tags":        []string{res.Name},
				"requestBody": buildRequestBody(res.Name + "Input"),
				"responses": map[string]interface{}{
					"201": buildEnvelopeResponse("Created", map[string]interface{}{"$ref": "#/components/schemas/" + res.Name}),
					"400": buildErrorResponse("Validation error"),
				},
			},
		}

		paths[itemPath] = map[string]interface{}{
			"get": map[string]interface{}{
				"summary":     "Read a " + res.Name,
				"operationId": "get" + res.Name,
				"tags":        []string{res.Name},
				"parameters":  idPathParam(),
				"responses": map[string]interface{}{
					"200": buildEnvelopeResponse("Success", map[string]interface{}{"$ref": "#/components/schemas/" + res.Name}),
					"404": buildErrorResponse("Not found"),
				},
			},
			"put": map[string]interface{}{
				"summary":     "Update a " + res.Name,
				"operationId": "update" + res.Name,
				"tags":        []string{res.Name},
				"parameters":  idPathParam(),
				"requestBody": buildRequestBody(res.Name + "Input"),
				"responses": map[string]interface{}{
					"200": buildEnvelopeResponse("Updated", map[string]interface{}{"$ref": "#/components/schemas/" + res.Name}),
					"404": buildErrorResponse("Not found"),
				},
			},
			"delete": map[string]interface{}{
				"summary":     "Delete a " + res.Name,
				"operationId": "delete" + res.Name,
				"tags":        []string{res.Name},
				"parameters":  idPathParam(),
				"responses": map[string]interface{}{
					"200": buildErrorResponse("Deleted"),
					"404": buildErrorResponse("Not found"),
				},
			},
		}
	}

	paths["/health"] = map[string]interface{}{
		"get": map[string]interface{}{
			"summary":     "Health check",
			"operationId": "getHealth",
			"tags":        []string{"System"},
			"security":    []map[string][]string{},
			"responses": map[string]interface{}{
				"200": map[string]interface{}{"description": "Service healthy"},
				"503": map[string]interface{}{"description": "Service unhealthy"},
			},
		},
	}

	return map[string]interface{}{
		"openapi": "3.0.3",
		"info": map[string]interface{}{
			"title":       "Medical Records API",
			"version":     g.version,
			"description": "REST API for managing patients, clinical notes, and medical summaries",
		},
		"servers": []map[string]string{
			{"url": g.baseURL},
		},
		"security": []map[string][]string{
			{"ApiKeyAuth": {}},
		},
		"paths": paths,
		"components": map[string]interface{}{
			"securitySchemes": map[string]interface{}{
				"ApiKeyAuth": map[string]interface{}{
					"type": "apiKey",
					"in":   "header",
					"name": "X-API-Key",
				},
			},
			"schemas": schemas,
		},
	}
}

func buildResourceSchema(res resourceDef) map[string]interface{} {
	props := map[string]interface{}{
		"id":        map[string]interface{}{"type": "integer", "format": "int64"},
		"createdAt": map[string]interface{}{"type": "string", "format": "date-time"},
		"updatedAt": map[string]interface{}{"type": "string", "format": "date-time"},
	}
	for k, v := range res.Properties {
		props[k] = v
	}
	return map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
}

func buildInputSchema(res resourceDef) map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": res.Properties,
		"required":   res.Required,
	}
}

func idPathParam() []map[string]interface{} {
	return []map[string]interface{}{
		{"name": "id", "in": "path", "required": true, "schema": map[string]interface{}{"type": "integer", "format": "int64"}},
	}
}

func buildRequestBody(schemaName string) map[string]interface{} {
	return map[string]interface{}{
		"required": true,
		"content": map[string]interface{}{
			"application/json": map[string]interface{}{
				"schema": map[string]interface{}{"$ref": "#/components/schemas/" + schemaName},
			},
		},
	}
}

// buildEnvelopeResponse wraps a data schema in the success envelope.
func buildEnvelopeResponse(description string, dataSchema map[string]interface{}) map[string]interface{} {
	return map[string]interface{}{
		"description": description,
		"content": map[string]interface{}{
			"application/json": map[string]interface{}{
				"schema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"success": map[string]interface{}{"type": "boolean"},
						"data":    dataSchema,
					},
				},
			},
		},
	}
}

func buildErrorResponse(description string) map[string]interface{} {
	return map[string]interface{}{
		"description": description,
		"content": map[string]interface{}{
			"application/json": map[string]interface{}{
				"schema": map[string]interface{}{
					"type": "object",
					"properties": map[string]interface{}{
						"success": map[string]interface{}{"type": "boolean"},
						"error":   map[string]interface{}{"type": "string"},
						"message": map[string]interface{}{"type": "string"},
					},
				},
			},
		},
	}
}

// ── Swagger UI ──────────────────────────────────────────────────────────

const swaggerUIHTML = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>Medical Records API - Swagger UI</title>
  <link rel="stylesheet" type="text/css" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" >
  <style>
    html { box-sizing: border-box; overflow-y: scroll; }
    *, *:before, *:after { box-sizing: inherit; }
    body { margin: 0; background: #fafafa; }
  </style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "/api-docs/openapi.json",
      dom_id: '#swagger-ui',
      deepLinking: true,
      presets: [
        SwaggerUIBundle.presets.apis,
        SwaggerUIBundle.SwaggerUIStandalonePreset
      ],
      layout: "BaseLayout"
    })
  </script>
</body>
</html>`

// RegisterRoutes registers the documentation endpoints. These sit outside the
// authenticated API group so the docs are reachable without an API key.
func (g *Generator) RegisterRoutes(e *echo.Echo) {
	e.GET("/api-docs", func(c echo.Context) error {
		return c.HTML(http.StatusOK, swaggerUIHTML)
	})
	e.GET("/api-docs/openapi.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, g.GenerateSpec())
	})
}
