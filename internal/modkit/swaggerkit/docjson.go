package swaggerkit

import "net/http"

// docJSON is a hand-maintained OpenAPI document. The service surface is two
// endpoints; a docs generator would be more machinery than the API it documents
const docJSON = `{
  "openapi": "3.0.3",
  "info": {"title": "AI Voice Detection API", "version": "1.0.0"},
  "paths": {
    "/": {
      "get": {
        "summary": "Health check",
        "responses": {"200": {"description": "service descriptor"}}
      }
    },
    "/detect": {
      "post": {
        "summary": "Classify an audio clip as AI-generated or human",
        "parameters": [
          {"name": "x-api-key", "in": "header", "required": true, "schema": {"type": "string"}}
        ],
        "requestBody": {
          "required": true,
          "content": {"application/json": {"schema": {"$ref": "#/components/schemas/DetectionRequest"}}}
        },
        "responses": {
          "200": {"description": "detection result"},
          "400": {"description": "empty audio data"},
          "401": {"description": "invalid API key"},
          "422": {"description": "validation failed"}
        }
      }
    }
  },
  "components": {
    "schemas": {
      "DetectionRequest": {
        "type": "object",
        "required": ["language", "audio_format", "audio_base64"],
        "properties": {
          "language": {"type": "string", "enum": ["Tamil", "English", "Hindi", "Malayalam", "Telugu"]},
          "audio_format": {"type": "string", "enum": ["mp3"]},
          "audio_base64": {"type": "string"}
        }
      },
      "DetectionResponse": {
        "type": "object",
        "properties": {
          "classification": {"type": "string", "enum": ["AI_GENERATED", "HUMAN"]},
          "confidence_score": {"type": "number", "minimum": 0, "maximum": 1},
          "language": {"type": "string"},
          "explanation": {"type": "string"}
        }
      }
    }
  }
}`

// serveDocJSON serves the static spec
func serveDocJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.Header().Set("Cache-Control", "no-store")
		_, _ = w.Write([]byte(docJSON))
	}
}
