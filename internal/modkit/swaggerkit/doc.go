package swaggerkit

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	perr "moodlog/internal/platform/errors"

	"moodlog/internal/services/api/docs"
)

// BaseURL is where the documented routes are mounted
const BaseURL = "/api/v1"

var readDoc = func() string { return docs.SwaggerInfo.ReadDoc() }

// fallback is an error response added to operations that do not document their own
type fallback struct {
	code    perr.ErrorCode
	message string
	field   string
	// secured limits the fallback to operations that declare security
	secured bool
}

var fallbacks = []fallback{
	{code: perr.ErrorCodeValidation, message: "rating must be at most 5", field: "rating"},
	{code: perr.ErrorCodeUnauthorized, message: "invalid bearer token", secured: true},
	{code: perr.ErrorCodeUnknown, message: "internal error"},
}

func serveDoc(w http.ResponseWriter, _ *http.Request) {
	var spec map[string]any
	if err := json.Unmarshal([]byte(readDoc()), &spec); err != nil {
		http.Error(w, "swagger document does not parse", http.StatusInternalServerError)
		return
	}
	patch(spec)

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	_ = json.NewEncoder(w).Encode(spec)
}

// patch pins the document to OpenAPI 3.0.3, which the bundled UI renders,
// and fills in the parts the annotations cannot express
func patch(spec map[string]any) {
	delete(spec, "swagger")
	if v, _ := spec["openapi"].(string); !strings.HasPrefix(v, "3.0") {
		spec["openapi"] = "3.0.3"
	}
	if _, ok := spec["servers"]; !ok {
		spec["servers"] = []any{map[string]any{"url": BaseURL}}
	}

	schemas := child(child(spec, "components"), "schemas")
	if _, ok := schemas["ErrorResponse"]; !ok {
		schemas["ErrorResponse"] = errorSchema()
	}

	paths, _ := spec["paths"].(map[string]any)
	for _, item := range paths {
		ops, _ := item.(map[string]any)
		for _, o := range ops {
			op, ok := o.(map[string]any)
			if !ok {
				continue
			}
			_, secured := op["security"]
			responses := child(op, "responses")
			for _, f := range fallbacks {
				status := strconv.Itoa(f.code.Status())
				if f.secured && !secured {
					continue
				}
				if _, ok := responses[status]; !ok {
					responses[status] = f.response()
				}
			}
		}
	}
}

// child returns m[key] as an object, creating it when absent
func child(m map[string]any, key string) map[string]any {
	if c, ok := m[key].(map[string]any); ok {
		return c
	}
	c := map[string]any{}
	m[key] = c
	return c
}

func (f fallback) response() map[string]any {
	status := f.code.Status()
	example := map[string]any{
		"status_code": status,
		"status":      http.StatusText(status),
		"code":        int(f.code),
		"error":       f.message,
		"request_id":  "moodlog/Xq3v9-000042",
	}
	if f.field != "" {
		example["field"] = f.field
	}
	return map[string]any{
		"description": http.StatusText(status),
		"content": map[string]any{
			"application/json": map[string]any{
				"schema":  map[string]any{"$ref": "#/components/schemas/ErrorResponse"},
				"example": example,
			},
		},
	}
}

// errorSchema mirrors the envelope written by the reply helpers
func errorSchema() map[string]any {
	str := map[string]any{"type": "string"}
	num := map[string]any{"type": "integer", "format": "int32"}
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"status_code": num,
			"status":      str,
			"code":        num,
			"error":       str,
			"field":       str,
			"request_id":  str,
		},
		"required": []any{"status_code", "status"},
	}
}
