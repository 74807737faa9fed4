// Package swagger registers the OpenAPI document served under /swagger.
package swagger

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {"name": "API Support"},
        "license": {"name": "MIT"},
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/account": {
            "get": {
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Read the account",
                "parameters": [{"$ref": "#/parameters/cpf"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/account.AccountDTO"}},
                    "400": {"description": "Customer not found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            },
            "put": {
                "consumes": ["application/json"],
                "tags": ["accounts"],
                "summary": "Rename the customer",
                "parameters": [
                    {"$ref": "#/parameters/cpf"},
                    {"description": "New name", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.UpdateAccountRequest"}}
                ],
                "responses": {
                    "201": {"description": "Account updated"},
                    "400": {"description": "Customer not found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "tags": ["accounts"],
                "summary": "Open an account",
                "description": "Registers a customer by CPF. The CPF must not be registered yet.",
                "parameters": [
                    {"description": "Customer", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.CreateAccountRequest"}}
                ],
                "responses": {
                    "201": {"description": "Account created"},
                    "400": {"description": "Customer already exists!", "schema": {"$ref": "#/definitions/common.ErrorResponse"}},
                    "429": {"description": "Too many requests", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["accounts"],
                "summary": "Delete the account",
                "parameters": [{"$ref": "#/parameters/cpf"}],
                "responses": {
                    "200": {"description": "Account was deleted", "schema": {"type": "string"}},
                    "400": {"description": "Customer not found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/statement": {
            "get": {
                "produces": ["application/json"],
                "tags": ["statement"],
                "summary": "List the statement",
                "parameters": [{"$ref": "#/parameters/cpf"}],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/account.EntryDTO"}}},
                    "400": {"description": "Customer not found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/statement/date": {
            "get": {
                "produces": ["application/json"],
                "tags": ["statement"],
                "summary": "List the statement of a date",
                "parameters": [
                    {"$ref": "#/parameters/cpf"},
                    {"type": "string", "example": "2024-05-01", "description": "Calendar date", "name": "date", "in": "query", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK", "schema": {"type": "array", "items": {"$ref": "#/definitions/account.EntryDTO"}}},
                    "400": {"description": "Customer not found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/deposit": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["operations"],
                "summary": "Deposit funds",
                "parameters": [
                    {"$ref": "#/parameters/cpf"},
                    {"description": "Deposit details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.DepositRequest"}}
                ],
                "responses": {
                    "201": {"description": "Deposit recorded"},
                    "400": {"description": "Customer not found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/withdraw": {
            "post": {
                "consumes": ["application/json"],
                "tags": ["operations"],
                "summary": "Withdraw funds",
                "parameters": [
                    {"$ref": "#/parameters/cpf"},
                    {"description": "Withdrawal details", "name": "request", "in": "body", "required": true, "schema": {"$ref": "#/definitions/account.WithdrawRequest"}}
                ],
                "responses": {
                    "201": {"description": "Withdrawal recorded"},
                    "400": {"description": "Insufficient funds!", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/balance": {
            "get": {
                "produces": ["application/json"],
                "tags": ["operations"],
                "summary": "Read the balance",
                "parameters": [{"$ref": "#/parameters/cpf"}],
                "responses": {
                    "200": {"description": "Balance", "schema": {"type": "number"}},
                    "400": {"description": "Customer not found", "schema": {"$ref": "#/definitions/common.ErrorResponse"}}
                }
            }
        },
        "/health": {
            "get": {
                "produces": ["application/json"],
                "tags": ["health"],
                "summary": "Health check",
                "responses": {
                    "200": {"description": "OK", "schema": {"$ref": "#/definitions/webapi.HealthResponse"}}
                }
            }
        }
    },
    "parameters": {
        "cpf": {"type": "string", "description": "Customer CPF", "name": "cpf", "in": "header", "required": true}
    },
    "definitions": {
        "account.AccountDTO": {
            "type": "object",
            "properties": {
                "cpf": {"type": "string"},
                "name": {"type": "string"},
                "id": {"type": "string"},
                "statement": {"type": "array", "items": {"$ref": "#/definitions/account.EntryDTO"}},
                "created_at": {"type": "string"}
            }
        },
        "account.EntryDTO": {
            "type": "object",
            "properties": {
                "description": {"type": "string"},
                "amount": {"type": "number"},
                "created_at": {"type": "string"},
                "type": {"type": "string", "example": "credit"}
            }
        },
        "account.CreateAccountRequest": {
            "type": "object",
            "required": ["cpf", "name"],
            "properties": {
                "cpf": {"type": "string", "maxLength": 64, "example": "111"},
                "name": {"type": "string", "maxLength": 255, "example": "Ana"}
            }
        },
        "account.UpdateAccountRequest": {
            "type": "object",
            "required": ["name"],
            "properties": {
                "name": {"type": "string", "maxLength": 255, "example": "Ana Maria"}
            }
        },
        "account.DepositRequest": {
            "type": "object",
            "required": ["amount"],
            "properties": {
                "description": {"type": "string", "maxLength": 255, "example": "salary"},
                "amount": {"type": "number", "example": 100}
            }
        },
        "account.WithdrawRequest": {
            "type": "object",
            "required": ["amount"],
            "properties": {
                "amount": {"type": "number", "example": 40}
            }
        },
        "common.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {"type": "string", "example": "Customer not found"}
            }
        },
        "webapi.HealthResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "ok"},
                "accounts": {"type": "integer", "example": 3}
            }
        }
    },
    "securityDefinitions": {
        "CustomerCPF": {"type": "apiKey", "name": "cpf", "in": "header"}
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "localhost:3333",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Ledger API",
	Description:      "In-memory customer ledger keyed by CPF",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
