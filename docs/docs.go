// Package docs registers the Swagger document served at /swagger.
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
        "/apis/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Liveness and store connectivity",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/apis/students": {
            "get": {
                "security": [{"StudentKey": []}],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "List students",
                "parameters": [
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query", "maximum": 100}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PaginatedResponse"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "post": {
                "security": [{"StudentKey": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Register a student",
                "parameters": [
                    {"name": "student", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.StudentInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/models.Student"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "429": {"description": "Too Many Requests", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/apis/students/stats": {
            "get": {
                "security": [{"StudentKey": []}],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Dashboard counters",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.StudentStats"}}}
            }
        },
        "/apis/students/search": {
            "get": {
                "security": [{"StudentKey": []}],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Search students",
                "parameters": [
                    {"type": "string", "name": "search", "in": "query"},
                    {"type": "string", "name": "program", "in": "query"},
                    {"type": "string", "name": "yearLevel", "in": "query"},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query", "maximum": 100}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.PaginatedResponse"}}}
            }
        },
        "/apis/students/login": {
            "post": {
                "security": [{"StudentKey": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Student login",
                "parameters": [
                    {"name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.StudentLoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "403": {"description": "Forbidden", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/apis/students/{student_id}": {
            "put": {
                "security": [{"StudentKey": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Update a student",
                "parameters": [
                    {"type": "string", "name": "student_id", "in": "path", "required": true},
                    {"name": "student", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.StudentUpdate"}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Student"}},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            },
            "delete": {
                "security": [{"StudentKey": []}],
                "produces": ["application/json"],
                "tags": ["students"],
                "summary": "Delete a student",
                "parameters": [
                    {"type": "string", "name": "student_id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "Not Found", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/apis/masters": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["masters"],
                "summary": "List admin accounts",
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/models.Master"}}}}
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["masters"],
                "summary": "Create an admin account",
                "parameters": [
                    {"name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.MasterCredentials"}}
                ],
                "responses": {
                    "201": {"description": "Created"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/apis/masters/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["masters"],
                "summary": "Admin login",
                "parameters": [
                    {"name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.MasterCredentials"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request", "schema": {"$ref": "#/definitions/models.ErrorResponse"}}
                }
            }
        },
        "/apis/settings": {
            "get": {
                "security": [{"StudentKey": []}],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Registration and login toggles",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/models.Settings"}}}
            },
            "put": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["settings"],
                "summary": "Change registration and login toggles",
                "parameters": [
                    {"name": "settings", "in": "body", "required": true, "schema": {"$ref": "#/definitions/models.SettingsUpdate"}}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        }
    },
    "definitions": {
        "models.ErrorResponse": {
            "type": "object",
            "properties": {"message": {"type": "string"}}
        },
        "models.Student": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "student_id": {"type": "string"},
                "rfid_code": {"type": "string"},
                "first_name": {"type": "string"},
                "middle_name": {"type": "string"},
                "last_name": {"type": "string"},
                "suffix": {"type": "string"},
                "full_name": {"type": "string"},
                "year_level": {"type": "string"},
                "school_year": {"type": "string"},
                "program": {"type": "string"},
                "photo": {"type": "string"},
                "semester": {"type": "string"},
                "email": {"type": "string"},
                "created_date": {"type": "string"}
            }
        },
        "models.StudentInput": {
            "type": "object",
            "required": ["student_id", "first_name", "last_name", "year_level", "school_year", "program", "semester"],
            "properties": {
                "_ssaam_access_token": {"type": "string"},
                "student_id": {"type": "string"},
                "rfid_code": {"type": "string"},
                "first_name": {"type": "string"},
                "middle_name": {"type": "string"},
                "last_name": {"type": "string"},
                "suffix": {"type": "string"},
                "year_level": {"type": "string"},
                "school_year": {"type": "string"},
                "program": {"type": "string"},
                "photo": {"type": "string"},
                "semester": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "models.StudentUpdate": {
            "type": "object",
            "properties": {
                "rfid_code": {"type": "string"},
                "first_name": {"type": "string"},
                "middle_name": {"type": "string"},
                "last_name": {"type": "string"},
                "suffix": {"type": "string"},
                "year_level": {"type": "string"},
                "school_year": {"type": "string"},
                "program": {"type": "string"},
                "photo": {"type": "string"},
                "semester": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "models.StudentLoginRequest": {
            "type": "object",
            "properties": {
                "student_id": {"type": "string"},
                "last_name": {"type": "string"}
            }
        },
        "models.StudentStats": {
            "type": "object",
            "properties": {
                "stats": {"type": "object", "additionalProperties": {"type": "object", "additionalProperties": {"type": "integer"}}},
                "totalStudents": {"type": "integer"}
            }
        },
        "models.Pagination": {
            "type": "object",
            "properties": {
                "currentPage": {"type": "integer"},
                "limit": {"type": "integer"},
                "total": {"type": "integer"},
                "totalPages": {"type": "integer"},
                "hasNextPage": {"type": "boolean"},
                "hasPrevPage": {"type": "boolean"}
            }
        },
        "models.PaginatedResponse": {
            "type": "object",
            "properties": {
                "data": {},
                "pagination": {"$ref": "#/definitions/models.Pagination"}
            }
        },
        "models.Master": {
            "type": "object",
            "properties": {
                "_id": {"type": "string"},
                "username": {"type": "string"}
            }
        },
        "models.MasterCredentials": {
            "type": "object",
            "required": ["username", "password"],
            "properties": {
                "username": {"type": "string"},
                "password": {"type": "string"}
            }
        },
        "models.Settings": {
            "type": "object",
            "properties": {
                "userRegister": {"$ref": "#/definitions/models.RegisterSetting"},
                "userLogin": {"$ref": "#/definitions/models.LoginSetting"}
            }
        },
        "models.RegisterSetting": {
            "type": "object",
            "properties": {"register": {"type": "boolean"}, "message": {"type": "string"}}
        },
        "models.LoginSetting": {
            "type": "object",
            "properties": {"login": {"type": "boolean"}, "message": {"type": "string"}}
        },
        "models.SettingsUpdate": {
            "type": "object",
            "properties": {
                "userRegister": {"$ref": "#/definitions/models.RegisterSetting"},
                "userLogin": {"$ref": "#/definitions/models.LoginSetting"}
            }
        }
    },
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"},
        "StudentKey": {"type": "apiKey", "name": "Authorization", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "SSAAM API",
	Description:      "Student roster and registration API.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
