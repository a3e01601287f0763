// Package docs holds the OpenAPI document served by Swagger UI.
// Regenerate with: swag init -g internal/api/handlers/base.go -o internal/api/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {},
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/animals": {
            "get": {
                "description": "Returns all animals matching every supplied filter, in insertion order",
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "List animals",
                "parameters": [
                    {
                        "type": "array",
                        "items": {"type": "string"},
                        "collectionFormat": "multi",
                        "description": "Required traits (repeatable)",
                        "name": "personalityTraits",
                        "in": "query"
                    },
                    {"type": "string", "description": "Exact diet", "name": "diet", "in": "query"},
                    {"type": "string", "description": "Exact species", "name": "species", "in": "query"},
                    {"type": "string", "description": "Exact name", "name": "name", "in": "query"}
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/zoo.Animal"}}
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {"$ref": "#/definitions/models.ErrorResponse"}
                    }
                }
            },
            "post": {
                "description": "Validates the animal, assigns the next id, appends it and rewrites the store",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Create an animal",
                "parameters": [
                    {
                        "description": "Animal without id",
                        "name": "animal",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/zoo.Animal"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/zoo.Animal"}},
                    "400": {"description": "The animal is not properly formatted.", "schema": {"type": "string"}},
                    "500": {"description": "Internal Server Error", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/animals/{id}": {
            "get": {
                "description": "Returns the animal with the given id; 404 with an empty body if none",
                "produces": ["application/json"],
                "tags": ["animals"],
                "summary": "Get an animal",
                "parameters": [
                    {"type": "string", "description": "Animal id", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/zoo.Animal"}},
                    "404": {"description": "Not Found"}
                }
            }
        },
        "/zookeepers": {
            "post": {
                "description": "Accepts a zookeeper and echoes it back. Nothing is validated or stored.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["zookeepers"],
                "summary": "Submit a zookeeper",
                "parameters": [
                    {
                        "description": "Zookeeper",
                        "name": "zookeeper",
                        "in": "body",
                        "required": true,
                        "schema": {"$ref": "#/definitions/zoo.Zookeeper"}
                    }
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/zoo.Zookeeper"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "description": "Returns ok when the animal store is reachable",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StatusResponse"}},
                    "503": {"description": "Service Unavailable", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/stats": {
            "get": {
                "description": "Returns uptime, goroutines, stored animal count and process resource usage",
                "produces": ["application/json"],
                "tags": ["system"],
                "summary": "Server statistics",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.ServerStatsResponse"}}
                }
            }
        }
    },
    "definitions": {
        "models.ErrorResponse": {
            "type": "object",
            "properties": {"error": {"type": "string"}}
        },
        "models.StatusResponse": {
            "type": "object",
            "properties": {"status": {"type": "string"}}
        },
        "models.ServerStatsResponse": {
            "type": "object",
            "properties": {
                "uptime": {"type": "string"},
                "uptime_seconds": {"type": "integer"},
                "start_time": {"type": "string"},
                "goroutines": {"type": "integer"},
                "num_cpu": {"type": "integer"},
                "animals": {"type": "integer"},
                "process_rss_mb": {"type": "number"},
                "process_cpu_percent": {"type": "number"}
            }
        },
        "zoo.Animal": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "name": {"type": "string"},
                "species": {"type": "string"},
                "diet": {"type": "string"},
                "personalityTraits": {"type": "array", "items": {"type": "string"}}
            }
        },
        "zoo.Zookeeper": {
            "type": "object",
            "properties": {
                "name": {"type": "string"},
                "age": {"type": "integer"},
                "favoriteAnimal": {"type": "string"}
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
	Title:            "ZooAPI",
	Description:      "Animal and zookeeper records over a JSON-backed store.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
