// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/prompt-types": {
            "get": {
                "produces": ["application/json"],
                "summary": "List quiz themes",
                "responses": {"200": {"description": "theme id to title, description and systemPrompt"}}
            }
        },
        "/questions": {
            "get": {
                "produces": ["application/json"],
                "summary": "Generate the question batch for a theme",
                "parameters": [
                    {"type": "string", "name": "promptType", "in": "query", "required": true},
                    {"type": "string", "name": "customPrompt", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "questions", "schema": {"type": "array", "items": {"$ref": "#/definitions/Question"}}},
                    "400": {"description": "invalid theme", "schema": {"$ref": "#/definitions/Error"}},
                    "503": {"description": "generation failed", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/analyze": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Analyze the answers of a quiz run",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/AnalyzeRequest"}}],
                "responses": {
                    "200": {"description": "analysis", "schema": {"$ref": "#/definitions/AnalyzeResponse"}},
                    "400": {"description": "invalid request", "schema": {"$ref": "#/definitions/Error"}},
                    "503": {"description": "generation failed", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/follow-up": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "summary": "Answer a follow-up question about an analysis",
                "parameters": [{"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/FollowUpRequest"}}],
                "responses": {
                    "200": {"description": "answer", "schema": {"$ref": "#/definitions/FollowUpResponse"}},
                    "400": {"description": "invalid request", "schema": {"$ref": "#/definitions/Error"}},
                    "429": {"description": "interaction budget or rate limit reached", "schema": {"$ref": "#/definitions/Error"}},
                    "503": {"description": "generation failed", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Question": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "options": {"type": "array", "items": {"type": "string"}, "minItems": 4, "maxItems": 4}
            }
        },
        "Section": {
            "type": "object",
            "properties": {"heading": {"type": "string"}, "body": {"type": "string"}}
        },
        "AnalyzeRequest": {
            "type": "object",
            "properties": {
                "answers": {"type": "array", "items": {"type": "string"}, "description": "One answer per question, in order. Without questions, only answers starting with an a) to d) label count as selections."},
                "promptType": {"type": "string"},
                "customPrompt": {"type": "string"},
                "questions": {"type": "array", "items": {"$ref": "#/definitions/Question"}, "description": "The batch from /questions. Send it back so answers equal to an option count as selections and the rest as custom responses."},
                "interactionCount": {"type": "integer"}
            }
        },
        "AnalyzeResponse": {
            "type": "object",
            "properties": {
                "analysis": {"type": "string"},
                "sections": {"type": "array", "items": {"$ref": "#/definitions/Section"}},
                "remainingInteractions": {"type": "integer"},
                "success": {"type": "boolean"},
                "sessionToken": {"type": "string"}
            }
        },
        "FollowUpRequest": {
            "type": "object",
            "properties": {
                "question": {"type": "string"},
                "previousAnalysis": {"type": "string"},
                "interactionCount": {"type": "integer"},
                "sessionToken": {"type": "string"}
            }
        },
        "FollowUpResponse": {
            "type": "object",
            "properties": {
                "answer": {"type": "string"},
                "sections": {"type": "array", "items": {"$ref": "#/definitions/Section"}},
                "remainingInteractions": {"type": "integer"},
                "success": {"type": "boolean"},
                "sessionToken": {"type": "string"}
            }
        },
        "Error": {
            "type": "object",
            "properties": {
                "error": {"type": "string"},
                "remainingInteractions": {"type": "integer"},
                "success": {"type": "boolean"},
                "details": {"type": "string"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "Persona Quiz API",
	Description:      "Themed quizzes and personality analyses backed by Gemini.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
