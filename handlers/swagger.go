package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the back-office API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>autohandel-backoffice - Swagger</title>
    <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@4/swagger-ui.css" />
  </head>
  <body>
    <div id="swagger-ui"></div>
    <script src="https://unpkg.com/swagger-ui-dist@4/swagger-ui-bundle.js"></script>
    <script>
      window.ui = SwaggerUIBundle({
        url: '/swagger/doc.json',
        dom_id: '#swagger-ui',
      })
    </script>
  </body>
</html>`

// Minimal OpenAPI document. Every /api/v1 path needs a bearer token and
// answers 403 when the role has no access to the module.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "autohandel-backoffice", "version": "v0.1.0" },
  "components": { "securitySchemes": { "bearer": { "type": "http", "scheme": "bearer" } } },
  "paths": {
    "/auth/login": {
      "post": {
        "summary": "Log in with username, password and role",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"username":{"type":"string"},"password":{"type":"string"},"role":{"type":"string","enum":["admin","verkoper","administratie","personeel"]}}}}}},
        "responses": { "200": { "description": "session, token and visible modules" }, "400": { "description": "missing fields" } }
      }
    },
    "/auth/logout": { "post": { "summary": "Clear the stored session", "responses": { "200": { "description": "logged out" } } } },
    "/auth/session": { "get": { "summary": "Restore the stored session", "responses": { "200": { "description": "session and modules" }, "401": { "description": "not logged in" } } } },
    "/api/v1/modules": { "get": { "summary": "Modules visible to the current role", "responses": { "200": { "description": "module list" } } } },
    "/api/v1/dashboard": { "get": { "summary": "Alert counters and recent activity", "responses": { "200": { "description": "dashboard" } } } },
    "/api/v1/dashboard/alerts": { "put": { "summary": "Override alert counters (admin)", "responses": { "200": { "description": "dashboard" }, "400": { "description": "invalid body" }, "403": { "description": "not an admin" } } } },
    "/api/v1/wagens": {
      "get": { "summary": "List vehicles", "parameters": [{"name":"status","in":"query"},{"name":"keuring","in":"query"},{"name":"type","in":"query"},{"name":"q","in":"query"}], "responses": { "200": { "description": "vehicles" } } },
      "post": { "summary": "Add a vehicle", "responses": { "201": { "description": "created" }, "400": { "description": "missing required fields" } } }
    },
    "/api/v1/wagens/{id}": {
      "get": { "summary": "Get a vehicle", "responses": { "200": { "description": "vehicle" }, "404": { "description": "not found" } } },
      "put": { "summary": "Update a vehicle", "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Delete a vehicle", "responses": { "200": { "description": "deleted" } } }
    },
    "/api/v1/personeel": {
      "get": { "summary": "List staff", "responses": { "200": { "description": "staff" } } },
      "post": { "summary": "Add a staff member", "responses": { "201": { "description": "created" }, "400": { "description": "missing required fields" } } }
    },
    "/api/v1/personeel/{id}": {
      "get": { "summary": "Staff member with edit form", "responses": { "200": { "description": "staff member" }, "404": { "description": "not found" } } },
      "put": { "summary": "Update a staff member", "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Delete a staff member", "responses": { "200": { "description": "deleted" } } }
    },
    "/api/v1/documenten": {
      "get": { "summary": "List documents", "parameters": [{"name":"categorie","in":"query"},{"name":"status","in":"query"},{"name":"type","in":"query"},{"name":"q","in":"query"}], "responses": { "200": { "description": "documents" } } },
      "post": { "summary": "Upload a document (multipart, file part 'bestand')", "responses": { "201": { "description": "uploaded" }, "400": { "description": "no file or missing fields" } } }
    },
    "/api/v1/documenten/{id}": {
      "put": { "summary": "Update document metadata", "responses": { "200": { "description": "updated" } } },
      "delete": { "summary": "Delete a document", "responses": { "200": { "description": "deleted" } } }
    },
    "/api/v1/documenten/{id}/view": { "get": { "summary": "View placeholder", "responses": { "200": { "description": "notice" } } } },
    "/api/v1/documenten/{id}/download": { "get": { "summary": "Download placeholder", "responses": { "200": { "description": "notice" } } } },
    "/api/v1/meldingen": {
      "get": { "summary": "List reminders", "parameters": [{"name":"type","in":"query"},{"name":"prioriteit","in":"query"},{"name":"status","in":"query"}], "responses": { "200": { "description": "reminders" } } },
      "post": { "summary": "Create a reminder", "responses": { "201": { "description": "created" }, "400": { "description": "missing required fields" } } }
    },
    "/api/v1/meldingen/gelezen": { "post": { "summary": "Mark every open reminder read", "responses": { "200": { "description": "marked" } } } },
    "/api/v1/meldingen/{id}/voltooid": { "post": { "summary": "Complete a reminder", "responses": { "200": { "description": "completed" } } } },
    "/api/v1/meldingen/{id}": { "delete": { "summary": "Delete a reminder", "responses": { "200": { "description": "deleted" } } } },
    "/api/v1/financien": { "get": { "summary": "Finance summary", "parameters": [{"name":"periode","in":"query"}], "responses": { "200": { "description": "summary" } } } },
    "/api/v1/financien/kosten": { "post": { "summary": "Record a cost", "responses": { "201": { "description": "recorded" }, "400": { "description": "missing required fields" } } } },
    "/api/v1/financien/export": { "get": { "summary": "Export placeholder", "responses": { "200": { "description": "notice" } } } },
    "/api/v1/zoeken": { "get": { "summary": "Global search, at least 3 characters", "parameters": [{"name":"q","in":"query"}], "responses": { "200": { "description": "results" } } } },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "metrics" } } } }
  }
}`
