package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterSwagger registers minimal Swagger/OpenAPI endpoints for the back-office API.
// - GET /swagger/index.html  -> a small HTML page that loads the OpenAPI JSON
// - GET /swagger/doc.json    -> machine-readable OpenAPI JSON
func RegisterSwagger(rg gin.IRoutes) {
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
    <title>jazflix-bo - Swagger</title>
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

// OpenAPI document for the catalog endpoints. The /sections and /users aliases
// behave like /section and /user and are not listed.
const swaggerJSON = `{
  "openapi": "3.0.0",
  "info": { "title": "jazflix-bo", "version": "v0.1.0" },
  "components": {
    "schemas": {
      "Movie": { "type": "object", "required": ["title","image","video"], "properties": {
        "id": {"type":"string","readOnly":true},
        "title": {"type":"string","minLength":5},
        "description": {"type":"string"},
        "image": {"type":"string","format":"uri"},
        "video": {"type":"string","minLength":5},
        "extra": {"type":"string","description":"comma separated tags"} } },
      "Section": { "type": "object", "required": ["icon","title","to"], "properties": {
        "id": {"type":"string"},
        "icon": {"type":"string"},
        "title": {"type":"string"},
        "to": {"type":"string","pattern":"^/"},
        "order": {"type":"integer"} } },
      "User": { "type": "object", "required": ["name","enabled"], "properties": {
        "id": {"type":"string"},
        "name": {"type":"string","format":"email"},
        "enabled": {"type":"boolean"} } },
      "Error": { "type": "object", "properties": { "error": {"type":"string"} } }
    }
  },
  "paths": {
    "/movies": {
      "get": { "summary": "List movies", "responses": { "200": { "description": "all movies, X-Total-Count header" } } },
      "post": { "summary": "Create a movie", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Movie"}}}}, "responses": { "201": { "description": "created" }, "400": { "description": "invalid body" } } }
    },
    "/movies/{id}": {
      "get": { "summary": "Get a movie", "responses": { "200": { "description": "movie" }, "404": { "description": "not found" } } },
      "put": { "summary": "Replace a movie, the path id wins", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Movie"}}}}, "responses": { "204": { "description": "updated" }, "400": { "description": "invalid body" }, "404": { "description": "not found" } } },
      "delete": { "summary": "Delete a movie", "responses": { "204": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/movies/{id}/video": {
      "get": { "summary": "Presigned video URL", "responses": { "200": { "description": "{\"url\": ...}" }, "404": { "description": "not found" }, "501": { "description": "media storage not configured" } } }
    },
    "/section": {
      "get": { "summary": "List sections", "responses": { "200": { "description": "all sections" } } },
      "post": { "summary": "Create a section", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Section"}}}}, "responses": { "201": { "description": "created" }, "400": { "description": "invalid body" } } }
    },
    "/section/{id}": {
      "get": { "summary": "Get a section", "responses": { "200": { "description": "section" }, "404": { "description": "not found" } } },
      "put": { "summary": "Replace a section", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/Section"}}}}, "responses": { "204": { "description": "updated" }, "400": { "description": "invalid body" }, "404": { "description": "not found" }, "409": { "description": "path and body ids differ" } } },
      "delete": { "summary": "Delete a section", "responses": { "204": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/user": {
      "get": { "summary": "List users", "responses": { "200": { "description": "all users" } } },
      "post": { "summary": "Create a user", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/User"}}}}, "responses": { "201": { "description": "created" }, "400": { "description": "invalid body" } } }
    },
    "/user/{id}": {
      "get": { "summary": "Get a user", "responses": { "200": { "description": "user" }, "404": { "description": "not found" } } },
      "put": { "summary": "Replace a user", "requestBody": { "content": { "application/json": { "schema": {"$ref":"#/components/schemas/User"}}}}, "responses": { "204": { "description": "updated" }, "400": { "description": "invalid body" }, "404": { "description": "not found" }, "409": { "description": "path and body ids differ" } } },
      "delete": { "summary": "Delete a user", "responses": { "204": { "description": "deleted" }, "404": { "description": "not found" } } }
    },
    "/health": { "get": { "summary": "Liveness check", "responses": { "200": { "description": "healthy" } } } },
    "/ready": { "get": { "summary": "Readiness check", "responses": { "200": { "description": "ready" }, "503": { "description": "not ready" } } } },
    "/metrics": { "get": { "summary": "Prometheus metrics", "responses": { "200": { "description": "text exposition" } } } }
  }
}`
