// Package docs registers the OpenAPI description served by gin-swagger.
// Regenerate with: swag init -g cmd/ledger_backend/main.go -o cmd/docs
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
        "/accounts": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "List the chart of accounts", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Create a new account", "responses": {"201": {"description": "Created"}}}
        },
        "/accounts/seed": {
            "post": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Seed the default chart of accounts", "responses": {"200": {"description": "OK"}}}
        },
        "/accounts/{code}": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Get an account by code", "parameters": [{"type": "string", "name": "code", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/accounts/{code}/balance": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Get an account balance", "parameters": [{"type": "string", "name": "code", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/accounts/{code}/ledger": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["accounts"], "summary": "Get an account ledger", "parameters": [{"type": "string", "name": "code", "in": "path", "required": true}], "responses": {"200": {"description": "OK"}}}
        },
        "/income": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["income"], "summary": "List receipts", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["income"], "summary": "Record an income receipt", "responses": {"201": {"description": "Created"}}}
        },
        "/expenses": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "List vouchers", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["expenses"], "summary": "Record an expense voucher", "responses": {"201": {"description": "Created"}}}
        },
        "/period-locks": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["period-locks"], "summary": "List closed months", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["period-locks"], "summary": "Close an accounting month", "responses": {"201": {"description": "Created"}}}
        },
        "/reports/trial-balance": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Get trial balance report", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/income-expenditure": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Get income and expenditure report", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/balance-sheet": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Get balance sheet report", "responses": {"200": {"description": "OK"}}}
        },
        "/reports/fund-summary": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["reports"], "summary": "Get fund summary", "responses": {"200": {"description": "OK"}}}
        },
        "/settings": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["settings"], "summary": "Get tenant settings", "responses": {"200": {"description": "OK"}}},
            "put": {"security": [{"BearerAuth": []}], "tags": ["settings"], "summary": "Update tenant settings", "responses": {"200": {"description": "OK"}}}
        },
        "/audit-logs": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["audit"], "summary": "List the audit trail", "responses": {"200": {"description": "OK"}}}
        },
        "/tenants": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["tenants"], "summary": "List the caller's tenants", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["tenants"], "summary": "Open a new set of books", "responses": {"201": {"description": "Created"}}}
        },
        "/members": {
            "get": {"security": [{"BearerAuth": []}], "tags": ["tenants"], "summary": "List members of the current tenant", "responses": {"200": {"description": "OK"}}},
            "post": {"security": [{"BearerAuth": []}], "tags": ["tenants"], "summary": "Add a member or change their role", "responses": {"200": {"description": "OK"}}}
        }
    },
    "securityDefinitions": {
        "BearerAuth": {
            "description": "Type \"Bearer\" followed by a space and JWT token.",
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Fund Ledger API",
	Description:      "Fund-segregated double-entry bookkeeping for nonprofits.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
