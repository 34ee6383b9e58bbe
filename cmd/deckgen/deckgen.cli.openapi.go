package main

import (
	"fmt"

	"github.com/siliconcp/go-deckgen"
)

// openAPIDocument returns the OpenAPI 3 description of the API. The
// document is maintained by hand and kept in lockstep with the routes
// in deckgen.cli.api.go.
func openAPIDocument() string {
	return fmt.Sprintf(openAPITemplate, deckgen.Version)
}

const openAPITemplate = `{
  "openapi": "3.0.3",
  "info": {
    "title": "Deckgen API",
    "description": "Renders proposal decks from a PPTX template, a placeholder catalog, and per-request values.",
    "version": "%s"
  },
  "paths": {
    "/api/v1/render": {
      "post": {
        "summary": "Render a proposal deck",
        "requestBody": {
          "required": true,
          "content": {
            "application/json": {
              "schema": {"$ref": "#/components/schemas/RenderRequest"}
            }
          }
        },
        "responses": {
          "200": {
            "description": "The rendered deck as a PPTX attachment. X-Deckgen-Warnings carries the count of unresolved placeholders when any were left in place.",
            "content": {
              "application/vnd.openxmlformats-officedocument.presentationml.presentation": {
                "schema": {"type": "string", "format": "binary"}
              }
            }
          },
          "400": {
            "description": "Missing required field, unformattable value, or malformed request body.",
            "content": {
              "application/json": {
                "schema": {"$ref": "#/components/schemas/Error"}
              }
            }
          },
          "500": {
            "description": "Template corruption or internal failure.",
            "content": {
              "application/json": {
                "schema": {"$ref": "#/components/schemas/Error"}
              }
            }
          }
        }
      }
    },
    "/api/v1/health": {
      "get": {
        "summary": "Liveness snapshot",
        "responses": {
          "200": {
            "description": "Service status and template slide count.",
            "content": {
              "application/json": {
                "schema": {
                  "type": "object",
                  "properties": {
                    "status": {"type": "string"},
                    "slides": {"type": "integer"}
                  }
                }
              }
            }
          }
        }
      }
    },
    "/api/v1/template": {
      "get": {
        "summary": "Inspect the loaded template",
        "responses": {
          "200": {
            "description": "Per-slide position, gating tags, and placeholder tokens.",
            "content": {
              "application/json": {
                "schema": {
                  "type": "object",
                  "properties": {
                    "name": {"type": "string"},
                    "slide_count": {"type": "integer"},
                    "slides": {
                      "type": "array",
                      "items": {"$ref": "#/components/schemas/SlideInfo"}
                    }
                  }
                }
              }
            }
          }
        }
      }
    }
  },
  "components": {
    "schemas": {
      "RenderRequest": {
        "type": "object",
        "required": ["company_name", "program", "proposal_date"],
        "properties": {
          "company_name": {"type": "string"},
          "contact_name": {"type": "string"},
          "contact_email": {"type": "string", "format": "email"},
          "program": {"type": "string"},
          "proposal_date": {"type": "string", "example": "2025-09-30"},
          "slide_toggles": {
            "type": "object",
            "additionalProperties": {"type": "boolean"}
          },
          "pricing_overrides": {
            "type": "object",
            "additionalProperties": {
              "oneOf": [{"type": "number"}, {"type": "string"}]
            }
          }
        }
      },
      "SlideInfo": {
        "type": "object",
        "properties": {
          "index": {"type": "integer"},
          "part": {"type": "string"},
          "tags": {"type": "array", "items": {"type": "string"}},
          "tokens": {"type": "array", "items": {"type": "string"}}
        }
      },
      "Error": {
        "type": "object",
        "properties": {
          "error": {"type": "string"},
          "code": {"type": "string"}
        }
      }
    }
  }
}`
