package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg *gin.Engine) {
	rg.GET("/swagger/index.html", func(c *gin.Context) {
		c.Header("Content-Type", "text/html; charset=utf-8")
		c.String(http.StatusOK, swaggerHTML)
	})

	rg.GET("/swagger/doc.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json", []byte(swaggerJSON))
	})
}

const swaggerHTML = `<!doctype html>
<html>
  <head>
    <meta charset="utf-8" />
    <title>lessonhub — Swagger</title>
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

// Minimal OpenAPI document describing the lessons API surface.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "lessonhub", "version": "v0.1.0" },
  "paths": {
    "/search": {
      "get": {
        "summary": "Search lessons by subject or location",
        "parameters": [ { "name": "q", "in": "query", "required": true, "schema": { "type": "string" } } ],
        "responses": { "200": { "description": "matching lessons" }, "404": { "description": "no lessons matched" }, "406": { "description": "missing query" } }
      }
    },
    "/lessons": {
      "get": { "summary": "List all lessons", "responses": { "200": { "description": "lesson array" } } }
    },
    "/order": {
      "post": {
        "summary": "Place an order",
        "requestBody": { "content": { "application/json": { "schema": {"type":"object","properties":{"orderInfo":{"type":"object"},"lessonId":{"type":"array","items":{"type":"string"}}}}}}},
        "responses": { "201": { "description": "order created" }, "400": { "description": "malformed lesson id" } }
      }
    },
    "/updateLesson/{id}": {
      "put": { "summary": "Partial lesson update", "parameters": [ { "name": "id", "in": "path", "required": true, "schema": { "type": "string" } } ], "responses": { "200": { "description": "updated" }, "408": { "description": "invalid id, empty body or not found" } } }
    },
    "/deleteLesson/{id}": {
      "delete": { "summary": "Delete a lesson", "parameters": [ { "name": "id", "in": "path", "required": true, "schema": { "type": "string" } } ], "responses": { "200": { "description": "deleted" }, "408": { "description": "invalid id or not found" } } }
    },
    "/images/{file}": {
      "get": { "summary": "Lesson image", "parameters": [ { "name": "file", "in": "path", "required": true, "schema": { "type": "string" } } ], "responses": { "200": { "description": "file bytes" }, "404": { "description": "image not found" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } }
  }
}`
