// Package docs holds the OpenAPI description served under /swagger/.
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
        "/repositories": {
            "get": {
                "tags": ["repositories"],
                "summary": "List the caller's repositories, newest first",
                "parameters": [
                    {"type": "string", "name": "X-Owner-ID", "in": "header", "required": true},
                    {"type": "integer", "name": "page", "in": "query"},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.MultiRepositoriesResponse"}}}
            },
            "post": {
                "tags": ["repositories"],
                "summary": "Initialize a repository",
                "parameters": [
                    {"type": "string", "name": "X-Owner-ID", "in": "header", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dtos.RepositoryInput"}}
                ],
                "responses": {
                    "200": {"description": "Already initialized", "schema": {"$ref": "#/definitions/dtos.InitRepositoryResponse"}},
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dtos.InitRepositoryResponse"}}
                }
            }
        },
        "/repositories/{repo}/files/{path}": {
            "get": {
                "tags": ["files"],
                "summary": "Read a working tree file",
                "parameters": [
                    {"type": "string", "name": "X-Owner-ID", "in": "header", "required": true},
                    {"type": "string", "name": "repo", "in": "path", "required": true},
                    {"type": "string", "name": "path", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.File"}}}
            },
            "put": {
                "tags": ["files"],
                "summary": "Write a working tree file",
                "parameters": [
                    {"type": "string", "name": "X-Owner-ID", "in": "header", "required": true},
                    {"type": "string", "name": "repo", "in": "path", "required": true},
                    {"type": "string", "name": "path", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dtos.WriteFileInput"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.File"}}}
            },
            "delete": {
                "tags": ["files"],
                "summary": "Delete a working tree file",
                "parameters": [
                    {"type": "string", "name": "X-Owner-ID", "in": "header", "required": true},
                    {"type": "string", "name": "repo", "in": "path", "required": true},
                    {"type": "string", "name": "path", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/repositories/{repo}/tree": {
            "get": {
                "tags": ["files"],
                "summary": "List working tree paths",
                "parameters": [
                    {"type": "string", "name": "X-Owner-ID", "in": "header", "required": true},
                    {"type": "string", "name": "repo", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.TreeResponse"}}}
            }
        },
        "/repositories/{repo}/commits": {
            "post": {
                "tags": ["commits"],
                "summary": "Commit the working tree to a branch",
                "parameters": [
                    {"type": "string", "name": "X-Owner-ID", "in": "header", "required": true},
                    {"type": "string", "name": "repo", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dtos.CommitInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dtos.Commit"}},
                    "409": {"description": "Branch head moved", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/repositories/{repo}/commits/{id}": {
            "get": {
                "tags": ["commits"],
                "summary": "Show a commit and the paths it captured",
                "parameters": [
                    {"type": "string", "name": "X-Owner-ID", "in": "header", "required": true},
                    {"type": "string", "name": "repo", "in": "path", "required": true},
                    {"type": "string", "name": "id", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.CommitDetailResponse"}}}
            }
        },
        "/repositories/{repo}/checkout": {
            "post": {
                "tags": ["branches"],
                "summary": "Replace the working tree with a branch head",
                "parameters": [
                    {"type": "string", "name": "X-Owner-ID", "in": "header", "required": true},
                    {"type": "string", "name": "repo", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dtos.CheckoutInput"}}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.CheckoutResponse"}}}
            }
        },
        "/repositories/{repo}/branches": {
            "get": {
                "tags": ["branches"],
                "summary": "List branches",
                "parameters": [
                    {"type": "string", "name": "X-Owner-ID", "in": "header", "required": true},
                    {"type": "string", "name": "repo", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.BranchesResponse"}}}
            },
            "post": {
                "tags": ["branches"],
                "summary": "Create a branch from another branch's current head",
                "parameters": [
                    {"type": "string", "name": "X-Owner-ID", "in": "header", "required": true},
                    {"type": "string", "name": "repo", "in": "path", "required": true},
                    {"name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/dtos.CreateBranchInput"}}
                ],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/dtos.Branch"}},
                    "409": {"description": "Branch exists", "schema": {"$ref": "#/definitions/response.Response"}}
                }
            }
        },
        "/repositories/{repo}/branches/{branch}/log": {
            "get": {
                "tags": ["branches"],
                "summary": "Walk a branch's history, newest first",
                "parameters": [
                    {"type": "string", "name": "X-Owner-ID", "in": "header", "required": true},
                    {"type": "string", "name": "repo", "in": "path", "required": true},
                    {"type": "string", "name": "branch", "in": "path", "required": true},
                    {"type": "integer", "name": "limit", "in": "query"}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.LogResponse"}}}
            }
        },
        "/repositories/{repo}/branches/{branch}/status": {
            "get": {
                "tags": ["branches"],
                "summary": "Compare the working tree to a branch head",
                "parameters": [
                    {"type": "string", "name": "X-Owner-ID", "in": "header", "required": true},
                    {"type": "string", "name": "repo", "in": "path", "required": true},
                    {"type": "string", "name": "branch", "in": "path", "required": true}
                ],
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/dtos.StatusResponse"}}}
            }
        },
        "/health": {
            "get": {
                "tags": ["health"],
                "summary": "Liveness and database check",
                "responses": {"200": {"description": "OK"}, "503": {"description": "Database unavailable"}}
            }
        }
    },
    "definitions": {
        "response.Response": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "kind": {"type": "string"},
                "message": {"type": "string"},
                "data": {}
            }
        },
        "dtos.RepositoryInput": {
            "type": "object",
            "required": ["name"],
            "properties": {"owner": {"type": "string"}, "name": {"type": "string"}}
        },
        "dtos.Repository": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "owner": {"type": "string"},
                "name": {"type": "string"},
                "default_branch": {"type": "string"},
                "created_at": {"type": "string"}
            }
        },
        "dtos.InitRepositoryResponse": {
            "type": "object",
            "properties": {"initialized": {"type": "boolean"}, "repository": {"$ref": "#/definitions/dtos.Repository"}}
        },
        "dtos.MultiRepositoriesResponse": {
            "type": "object",
            "properties": {
                "repositories": {"type": "array", "items": {"$ref": "#/definitions/dtos.Repository"}},
                "page_info": {"type": "object"}
            }
        },
        "dtos.WriteFileInput": {"type": "object", "properties": {"content": {"type": "string"}}},
        "dtos.File": {"type": "object", "properties": {"path": {"type": "string"}, "content": {"type": "string"}}},
        "dtos.TreeResponse": {
            "type": "object",
            "properties": {"tree": {"type": "array", "items": {"type": "object", "properties": {"path": {"type": "string"}}}}}
        },
        "dtos.CommitInput": {
            "type": "object",
            "required": ["message"],
            "properties": {
                "branch": {"type": "string"},
                "message": {"type": "string"},
                "author_name": {"type": "string"},
                "author_email": {"type": "string"},
                "expected_head": {"type": "string"}
            }
        },
        "dtos.Commit": {
            "type": "object",
            "properties": {
                "commit_id": {"type": "string"},
                "sha": {"type": "string"},
                "short_sha": {"type": "string"},
                "parent": {"type": "string"},
                "message": {"type": "string"},
                "author": {"type": "object", "properties": {"name": {"type": "string"}, "email": {"type": "string"}}},
                "timestamp": {"type": "string"}
            }
        },
        "dtos.CommitDetailResponse": {
            "type": "object",
            "properties": {"commit": {"$ref": "#/definitions/dtos.Commit"}, "files": {"type": "array", "items": {"type": "string"}}}
        },
        "dtos.LogResponse": {
            "type": "object",
            "properties": {"branch": {"type": "string"}, "entries": {"type": "array", "items": {"$ref": "#/definitions/dtos.Commit"}}}
        },
        "dtos.CheckoutInput": {"type": "object", "required": ["branch"], "properties": {"branch": {"type": "string"}}},
        "dtos.CheckoutResponse": {
            "type": "object",
            "properties": {"branch": {"type": "string"}, "head": {"type": "string"}, "files": {"type": "integer"}}
        },
        "dtos.CreateBranchInput": {
            "type": "object",
            "required": ["name"],
            "properties": {"name": {"type": "string"}, "from": {"type": "string"}}
        },
        "dtos.Branch": {"type": "object", "properties": {"name": {"type": "string"}, "head": {"type": "string"}}},
        "dtos.BranchesResponse": {
            "type": "object",
            "properties": {
                "branches": {"type": "array", "items": {"type": "string"}},
                "items": {"type": "array", "items": {"$ref": "#/definitions/dtos.Branch"}}
            }
        },
        "dtos.StatusResponse": {
            "type": "object",
            "properties": {
                "branch": {"type": "string"},
                "head": {"type": "string"},
                "entries": {"type": "array", "items": {"type": "object", "properties": {"path": {"type": "string"}, "state": {"type": "string"}}}}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "snapvcs API",
	Description:      "Owner-scoped snapshot versioning: working trees, commits, branches and history.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
