// Package docs registers the OpenAPI description served under /swagger.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.HealthResponse"}}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Register a new user",
                "parameters": [
                    {"description": "User registration request", "name": "registerRequest", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.RegisterRequest"}}
                ],
                "responses": {
                    "201": {"description": "User successfully registered", "schema": {"$ref": "#/definitions/models.AuthResponse"}},
                    "400": {"description": "Missing fields / user already exists", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "500": {"description": "Internal server error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "User login",
                "parameters": [
                    {"description": "Login Request", "name": "loginRequest", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token returned", "schema": {"$ref": "#/definitions/models.AuthResponse"}},
                    "400": {"description": "Email and password are required", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "401": {"description": "Invalid credentials", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/logout": {
            "post": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Logout",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.MessageResponse"}},
                    "401": {"description": "Access token required", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "403": {"description": "Invalid token", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/auth/me": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Current user",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.User"}},
                    "404": {"description": "User not found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/trips": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["trips"],
                "summary": "List trips",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Trip"}}}
                }
            },
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["trips"],
                "summary": "Create trip",
                "parameters": [
                    {"description": "Trip", "name": "createTripRequest", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.CreateTripRequest"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Trip"}},
                    "400": {"description": "Title, start date, and end date are required", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/trips/{tripID}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["trips"],
                "summary": "Get trip",
                "parameters": [
                    {"type": "string", "description": "Trip id", "name": "tripID", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Trip"}},
                    "404": {"description": "Trip not found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/destinations/popular": {
            "get": {
                "produces": ["application/json"],
                "tags": ["destinations"],
                "summary": "Popular destinations",
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Destination"}}}
                }
            }
        }
    },
    "definitions": {
        "models.AuthResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"},
                "user": {"$ref": "#/definitions/models.User"}
            }
        },
        "models.CreateTripRequest": {
            "type": "object",
            "required": ["title", "startDate", "endDate"],
            "properties": {
                "title": {"type": "string"},
                "description": {"type": "string"},
                "startDate": {"type": "string", "example": "2026-07-01"},
                "endDate": {"type": "string", "example": "2026-07-14"},
                "totalBudget": {"type": "number"},
                "currency": {"type": "string", "example": "USD"},
                "destinationIds": {"type": "array", "items": {"type": "integer"}, "example": [1, 2]}
            }
        },
        "models.Destination": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "name": {"type": "string"},
                "country": {"type": "string"},
                "description": {"type": "string"},
                "imageUrl": {"type": "string"},
                "tripCount": {"type": "integer"}
            }
        },
        "models.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Invalid credentials"}
            }
        },
        "models.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "OK"},
                "message": {"type": "string", "example": "GlobeTrotter API is running"}
            }
        },
        "models.LoginRequest": {
            "type": "object",
            "required": ["email", "password"],
            "properties": {
                "email": {"type": "string", "example": "john@example.com"},
                "password": {"type": "string", "example": "Secret123!"}
            }
        },
        "models.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Logged out successfully"}
            }
        },
        "models.RegisterRequest": {
            "type": "object",
            "required": ["email", "username", "password", "firstName", "lastName"],
            "properties": {
                "email": {"type": "string", "example": "john@example.com"},
                "username": {"type": "string", "example": "john_doe"},
                "password": {"type": "string", "example": "Secret123!"},
                "firstName": {"type": "string", "example": "John"},
                "lastName": {"type": "string", "example": "Doe"}
            }
        },
        "models.Trip": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "userId": {"type": "string"},
                "title": {"type": "string"},
                "description": {"type": "string"},
                "startDate": {"type": "string"},
                "endDate": {"type": "string"},
                "totalBudget": {"type": "number"},
                "currency": {"type": "string"},
                "destinationIds": {"type": "array", "items": {"type": "integer"}},
                "status": {"type": "string", "enum": ["upcoming", "ongoing", "completed"]},
                "createdAt": {"type": "string"},
                "updatedAt": {"type": "string"}
            }
        },
        "models.User": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "email": {"type": "string"},
                "username": {"type": "string"},
                "firstName": {"type": "string"},
                "lastName": {"type": "string"},
                "lastLoginAt": {"type": "string"},
                "createdAt": {"type": "string"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:8080",
	BasePath:         "/api",
	Schemes:          []string{"http"},
	Title:            "gw-travel-planner API",
	Description:      "Travel itinerary backend: accounts, trips and popular destinations",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
