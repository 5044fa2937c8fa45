// Package docs registers the swagger document served at /swagger.
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
    "securityDefinitions": {
        "BearerAuth": {
            "type": "apiKey",
            "name": "Authorization",
            "in": "header"
        }
    },
    "paths": {
        "/api/products": {
            "get": {
                "produces": ["application/json"],
                "tags": ["Catalog"],
                "summary": "Get product catalog",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/api/checkout": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Checkout"],
                "summary": "Checkout",
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "Bad Request"}
                }
            }
        },
        "/auth/register": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Register",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/auth/login": {
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Auth"],
                "summary": "Login",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/dashboard": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin - Dashboard"],
                "summary": "Dashboard stats",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/products": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Admin - Products"],
                "summary": "Create product",
                "responses": {"201": {"description": "Created"}}
            }
        },
        "/admin/products/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin - Products"],
                "summary": "Get product by ID",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Admin - Products"],
                "summary": "Update product",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            },
            "delete": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin - Products"],
                "summary": "Delete product",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/products/import": {
            "post": {
                "security": [{"BearerAuth": []}],
                "consumes": ["multipart/form-data"],
                "produces": ["application/json"],
                "tags": ["Admin - Products"],
                "summary": "Import products from xlsx",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/products/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Admin - Products"],
                "summary": "Export products as xlsx",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/orders": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin - Orders"],
                "summary": "Get all orders",
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/orders/{id}": {
            "get": {
                "security": [{"BearerAuth": []}],
                "produces": ["application/json"],
                "tags": ["Admin - Orders"],
                "summary": "Get order by ID",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/orders/{id}/status": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin - Orders"],
                "summary": "Update order status",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/orders/{id}/payment": {
            "patch": {
                "security": [{"BearerAuth": []}],
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["Admin - Orders"],
                "summary": "Update payment status",
                "parameters": [{"type": "integer", "name": "id", "in": "path", "required": true}],
                "responses": {"200": {"description": "OK"}}
            }
        },
        "/admin/orders/export": {
            "get": {
                "security": [{"BearerAuth": []}],
                "tags": ["Admin - Orders"],
                "summary": "Export orders as xlsx",
                "responses": {"200": {"description": "OK"}}
            }
        }
    }
}`

var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "POS Shop API",
	Description:      "Point-of-sale backend: product catalog, checkout and back-office management.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
