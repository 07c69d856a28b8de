package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "Admissions CRM API",
        "description": "Student directory, follow-up tasks, notes and communication logs for admissions staff.",
        "version": "1.0.0"
    },
    "basePath": "/api",
    "schemes": ["http", "https"],
    "securityDefinitions": {
        "BearerAuth": {"type": "apiKey", "name": "Authorization", "in": "header"}
    },
    "security": [{"BearerAuth": []}],
    "tags": [
        {"name": "Students", "description": "Directory search, stats and export"},
        {"name": "Tasks", "description": "Follow-up tasks"},
        {"name": "Notes", "description": "Staff notes"},
        {"name": "Communications", "description": "Calls, emails and texts"},
        {"name": "Interactions", "description": "Student activity events"},
        {"name": "Users", "description": "Staff profiles"},
        {"name": "Configuration", "description": "Shared vocabularies"}
    ],
    "paths": {
        "/students/search": {
            "get": {
                "tags": ["Students"],
                "summary": "Search the student directory",
                "parameters": [
                    {"name": "cursor", "in": "query", "type": "string"},
                    {"name": "country", "in": "query", "type": "string"},
                    {"name": "tags", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi", "description": "Repeated or comma-separated, any match"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string", "description": "Name prefix, name sort only"},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["name", "lastActive"]}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentSearchResponse"}},
                    "400": {"description": "Invalid cursor", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "401": {"description": "Unauthorized", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/students/stats": {
            "get": {
                "tags": ["Students"],
                "summary": "Count students per application status",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/StudentStats"}}}
            }
        },
        "/students/export": {
            "get": {
                "tags": ["Students"],
                "summary": "Export the filtered directory",
                "produces": ["text/csv", "application/pdf"],
                "parameters": [
                    {"name": "country", "in": "query", "type": "string"},
                    {"name": "tags", "in": "query", "type": "array", "items": {"type": "string"}, "collectionFormat": "multi"},
                    {"name": "status", "in": "query", "type": "string"},
                    {"name": "search", "in": "query", "type": "string"},
                    {"name": "sort", "in": "query", "type": "string", "enum": ["name", "lastActive"]},
                    {"name": "format", "in": "query", "type": "string", "enum": ["csv", "pdf"]}
                ],
                "responses": {"200": {"description": "File", "schema": {"type": "file"}}}
            }
        },
        "/students/{id}": {
            "get": {
                "tags": ["Students"],
                "summary": "Get a student by code or id",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Student"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/tasks": {
            "get": {
                "tags": ["Tasks"],
                "summary": "List tasks, newest first",
                "parameters": [{"name": "studentId", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Task"}}}}
            },
            "post": {
                "tags": ["Tasks"],
                "summary": "Create a task",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateTask"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Task"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/tasks/{id}": {
            "patch": {
                "tags": ["Tasks"],
                "summary": "Change a task's status",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"status": {"type": "string", "enum": ["pending", "in_progress", "completed", "overdue"]}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Task"}},
                    "403": {"description": "Not creator or assignee", "schema": {"$ref": "#/definitions/ErrorBody"}},
                    "404": {"description": "Not found", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/notes": {
            "get": {
                "tags": ["Notes"],
                "summary": "List notes, newest first",
                "parameters": [{"name": "studentId", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Note"}}}}
            },
            "post": {
                "tags": ["Notes"],
                "summary": "Create a note",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateNote"}}],
                "responses": {"201": {"description": "Created", "schema": {"$ref": "#/definitions/Note"}}}
            }
        },
        "/notes/{id}": {
            "patch": {
                "tags": ["Notes"],
                "summary": "Edit a note",
                "parameters": [
                    {"name": "id", "in": "path", "required": true, "type": "string"},
                    {"name": "payload", "in": "body", "required": true, "schema": {"type": "object", "properties": {"content": {"type": "string"}, "visibility": {"type": "string", "enum": ["public", "private"]}}}}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Note"}},
                    "403": {"description": "Not the author", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            },
            "delete": {
                "tags": ["Notes"],
                "summary": "Delete a note",
                "parameters": [{"name": "id", "in": "path", "required": true, "type": "string"}],
                "responses": {
                    "204": {"description": "Deleted"},
                    "403": {"description": "Not the author", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/communications": {
            "get": {
                "tags": ["Communications"],
                "summary": "List communications, newest first",
                "parameters": [{"name": "studentId", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/Communication"}}}}
            },
            "post": {
                "tags": ["Communications"],
                "summary": "Log a call, email or SMS",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/CreateCommunication"}}],
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Communication"}},
                    "400": {"description": "Invalid input", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/interactions": {
            "get": {
                "tags": ["Interactions"],
                "summary": "List interactions, newest first",
                "parameters": [{"name": "studentId", "in": "query", "type": "string"}],
                "responses": {"200": {"description": "OK"}}
            },
            "post": {
                "tags": ["Interactions"],
                "summary": "Record a student activity event",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/users": {
            "get": {
                "tags": ["Users"],
                "summary": "List staff",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}}}
            },
            "post": {
                "tags": ["Users"],
                "summary": "Create the caller's profile",
                "responses": {
                    "201": {"description": "Created", "schema": {"$ref": "#/definitions/Envelope"}},
                    "409": {"description": "Already exists", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/users/me": {
            "get": {
                "tags": ["Users"],
                "summary": "Get the caller's profile",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/Envelope"}},
                    "404": {"description": "No profile", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        },
        "/config": {
            "get": {
                "tags": ["Configuration"],
                "summary": "Get the global configuration",
                "responses": {"200": {"description": "OK", "schema": {"$ref": "#/definitions/GlobalConfig"}}}
            },
            "put": {
                "tags": ["Configuration"],
                "summary": "Replace the global configuration (admin)",
                "parameters": [{"name": "payload", "in": "body", "required": true, "schema": {"$ref": "#/definitions/GlobalConfig"}}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/GlobalConfig"}},
                    "403": {"description": "Not an admin", "schema": {"$ref": "#/definitions/ErrorBody"}}
                }
            }
        }
    },
    "definitions": {
        "ErrorBody": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "code": {"type": "string"},
                "message": {"type": "string"}
            }
        },
        "Envelope": {
            "type": "object",
            "properties": {
                "success": {"type": "boolean"},
                "data": {"type": "object"}
            }
        },
        "Student": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "studentId": {"type": "string"},
                "name": {"type": "string"},
                "email": {"type": "string"},
                "country": {"type": "string"},
                "applicationStatus": {"type": "string"},
                "tags": {"type": "array", "items": {"type": "string"}},
                "lastActive": {"type": "string", "format": "date-time"},
                "countCommunications": {"type": "integer"},
                "countPendingTasks": {"type": "integer"}
            }
        },
        "StudentSearchResponse": {
            "type": "object",
            "properties": {
                "students": {"type": "array", "items": {"$ref": "#/definitions/Student"}},
                "pagination": {
                    "type": "object",
                    "properties": {
                        "hasNextPage": {"type": "boolean"},
                        "nextCursor": {"type": "string", "x-nullable": true}
                    }
                },
                "filterOptions": {
                    "type": "object",
                    "properties": {
                        "tags": {"type": "array", "items": {"type": "string"}},
                        "statuses": {"type": "array", "items": {"type": "string"}},
                        "countries": {"type": "array", "items": {"type": "string"}}
                    }
                }
            }
        },
        "StudentStats": {
            "type": "object",
            "properties": {"summary": {"type": "object", "additionalProperties": {"type": "integer"}}}
        },
        "CreateTask": {
            "type": "object",
            "required": ["studentId", "description", "dueDate", "assignedTo"],
            "properties": {
                "studentId": {"type": "string"},
                "description": {"type": "string"},
                "dueDate": {"type": "string", "format": "date-time"},
                "assignedTo": {"type": "string"}
            }
        },
        "Task": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "studentId": {"type": "string"},
                "description": {"type": "string"},
                "dueDate": {"type": "string", "format": "date-time"},
                "assignedTo": {"type": "string"},
                "status": {"type": "string"},
                "createdBy": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "CreateNote": {
            "type": "object",
            "required": ["studentId", "content", "visibility"],
            "properties": {
                "studentId": {"type": "string"},
                "content": {"type": "string"},
                "visibility": {"type": "string", "enum": ["public", "private"]}
            }
        },
        "Note": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "studentId": {"type": "string"},
                "content": {"type": "string"},
                "visibility": {"type": "string"},
                "createdBy": {"type": "string"},
                "createdAt": {"type": "string", "format": "date-time"},
                "updatedAt": {"type": "string", "format": "date-time"}
            }
        },
        "CreateCommunication": {
            "type": "object",
            "required": ["studentId", "channel", "summary", "timestamp"],
            "properties": {
                "studentId": {"type": "string"},
                "channel": {"type": "string", "enum": ["call", "email", "sms"]},
                "summary": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"}
            }
        },
        "Communication": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "studentId": {"type": "string"},
                "channel": {"type": "string"},
                "summary": {"type": "string"},
                "timestamp": {"type": "string", "format": "date-time"},
                "loggedBy": {"type": "string"}
            }
        },
        "GlobalConfig": {
            "type": "object",
            "properties": {
                "tags": {"type": "array", "items": {"type": "string"}},
                "communicationTypes": {"type": "array", "items": {"type": "string"}},
                "taskStatuses": {"type": "array", "items": {"type": "string"}},
                "defaultReminderDays": {"type": "integer"},
                "studentStatusSortOrder": {"type": "array", "items": {"type": "string"}}
            }
        }
    }
}`

type swaggerDoc struct{}

// ReadDoc returns the Swagger document.
func (s *swaggerDoc) ReadDoc() string {
	return docTemplate
}

func init() {
	swag.Register(swag.Name, &swaggerDoc{})
}
