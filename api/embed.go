// Package api holds the OpenAPI document served at /openapi.json.
package api

import _ "embed"

// OpenAPI is the OpenAPI 3 description of the HTTP API.
//
//go:embed bookmarks.swagger.json
var OpenAPI []byte
