package http

import "github.com/swaggo/swag"

const docTemplate = `{
    "swagger": "2.0",
    "info": {
        "title": "{{.Title}}",
        "description": "{{escape .Description}}",
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "schemes": {{ marshal .Schemes }},
    "consumes": ["application/json"],
    "produces": ["application/json"],
    "paths": {
        "/health": {
            "get": {
                "summary": "Liveness probe",
                "operationId": "health",
                "produces": ["text/plain"],
                "responses": {
                    "200": {"description": "Service is up", "schema": {"type": "string"}}
                }
            }
        },
        "/api/v1/orders": {
            "post": {
                "summary": "Register an order",
                "operationId": "createOrder",
                "parameters": [
                    {"in": "body", "name": "order", "required": true, "schema": {"$ref": "#/definitions/NewOrder"}}
                ],
                "responses": {
                    "201": {"description": "Order created"},
                    "400": {"description": "Invalid order", "schema": {"$ref": "#/definitions/Error"}},
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/v1/orders/pending": {
            "get": {
                "summary": "List orders without a label",
                "operationId": "getPendingOrders",
                "responses": {
                    "200": {
                        "description": "Pending orders, oldest first",
                        "schema": {"type": "array", "items": {"$ref": "#/definitions/PendingOrder"}}
                    },
                    "500": {"description": "Storage failure", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/v1/labels": {
            "post": {
                "summary": "Start a label flow",
                "operationId": "startLabelFlow",
                "parameters": [
                    {"in": "body", "name": "flow", "required": true, "schema": {"$ref": "#/definitions/NewLabelFlow"}}
                ],
                "responses": {
                    "201": {"description": "Flow started", "schema": {"$ref": "#/definitions/LabelFlow"}},
                    "400": {"description": "Invalid request", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/v1/labels/{id}": {
            "parameters": [
                {"in": "path", "name": "id", "required": true, "type": "string", "format": "uuid"}
            ],
            "get": {
                "summary": "Read a label flow",
                "operationId": "getLabelFlow",
                "responses": {
                    "200": {"description": "Current flow", "schema": {"$ref": "#/definitions/LabelFlow"}},
                    "400": {"description": "Malformed id", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Unknown flow", "schema": {"$ref": "#/definitions/Error"}}
                }
            },
            "delete": {
                "summary": "Close a label flow",
                "operationId": "closeLabelFlow",
                "responses": {
                    "204": {"description": "Flow closed"},
                    "400": {"description": "Malformed id", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Unknown flow", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/v1/labels/{id}/events": {
            "parameters": [
                {"in": "path", "name": "id", "required": true, "type": "string", "format": "uuid"}
            ],
            "post": {
                "summary": "Send a client event to a label flow",
                "operationId": "sendLabelFlowEvent",
                "parameters": [
                    {"in": "body", "name": "event", "required": true, "schema": {"$ref": "#/definitions/EventEnvelope"}}
                ],
                "responses": {
                    "200": {"description": "Flow after the event", "schema": {"$ref": "#/definitions/LabelFlow"}},
                    "400": {"description": "Malformed event", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Unknown flow", "schema": {"$ref": "#/definitions/Error"}},
                    "409": {"description": "Event not accepted in the current state", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        },
        "/api/v1/labels/{id}/restart": {
            "parameters": [
                {"in": "path", "name": "id", "required": true, "type": "string", "format": "uuid"}
            ],
            "post": {
                "summary": "Drop progress and start the flow again",
                "operationId": "restartLabelFlow",
                "responses": {
                    "200": {"description": "Restarted flow", "schema": {"$ref": "#/definitions/LabelFlow"}},
                    "400": {"description": "Malformed id", "schema": {"$ref": "#/definitions/Error"}},
                    "404": {"description": "Unknown flow", "schema": {"$ref": "#/definitions/Error"}}
                }
            }
        }
    },
    "definitions": {
        "Error": {
            "type": "object",
            "required": ["code", "message"],
            "properties": {
                "code": {"type": "integer"},
                "message": {"type": "string"}
            }
        },
        "Address": {
            "type": "object",
            "required": ["country"],
            "properties": {
                "name": {"type": "string"},
                "company": {"type": "string"},
                "phone": {"type": "string"},
                "street1": {"type": "string"},
                "street2": {"type": "string"},
                "city": {"type": "string"},
                "region": {"type": "string"},
                "postalCode": {"type": "string"},
                "country": {"type": "string"}
            }
        },
        "NewOrder": {
            "type": "object",
            "required": ["id", "origin", "shipping"],
            "properties": {
                "id": {"type": "string", "maxLength": 64},
                "origin": {"$ref": "#/definitions/Address"},
                "shipping": {"$ref": "#/definitions/Address"}
            }
        },
        "PendingOrder": {
            "type": "object",
            "properties": {
                "id": {"type": "string"},
                "origin": {"$ref": "#/definitions/Address"},
                "shipping": {"$ref": "#/definitions/Address"},
                "createdAt": {"type": "string", "format": "date-time"}
            }
        },
        "NewLabelFlow": {
            "type": "object",
            "required": ["orderId"],
            "properties": {
                "orderId": {"type": "string"}
            }
        },
        "EventEnvelope": {
            "type": "object",
            "required": ["type"],
            "properties": {
                "type": {
                    "type": "string",
                    "enum": [
                        "AddressUsedAsIs", "AddressEditFinished", "SuggestedAddressSelected",
                        "OriginAddressValidationStarted", "EditOriginAddressRequested",
                        "ShippingAddressValidationStarted", "EditShippingAddressRequested",
                        "PackageSelectionStarted", "EditPackagingRequested", "PackagesSelected",
                        "CustomsDeclarationStarted", "EditCustomsRequested", "CustomsFormFilledOut",
                        "ShippingCarrierSelectionStarted", "EditShippingCarrierRequested", "ShippingCarrierSelected",
                        "PaymentSelectionStarted", "EditPaymentRequested", "PaymentSelected"
                    ]
                },
                "address": {"$ref": "#/definitions/Address"}
            }
        },
        "FlowData": {
            "type": "object",
            "properties": {
                "origin": {"$ref": "#/definitions/Address"},
                "shipping": {"$ref": "#/definitions/Address"},
                "stepsDone": {"type": "array", "items": {"type": "string"}}
            }
        },
        "Effect": {
            "type": "object",
            "required": ["type"],
            "properties": {
                "type": {"type": "string"},
                "orderId": {"type": "string"},
                "error": {"type": "string"},
                "address": {"$ref": "#/definitions/Address"},
                "entered": {"$ref": "#/definitions/Address"},
                "suggested": {"$ref": "#/definitions/Address"},
                "data": {"$ref": "#/definitions/FlowData"}
            }
        },
        "LabelFlow": {
            "type": "object",
            "required": ["id", "orderId", "state", "effect", "acceptedEvents", "completed"],
            "properties": {
                "id": {"type": "string", "format": "uuid"},
                "orderId": {"type": "string"},
                "state": {"type": "string"},
                "data": {"$ref": "#/definitions/FlowData"},
                "effect": {"$ref": "#/definitions/Effect"},
                "acceptedEvents": {"type": "array", "items": {"type": "string"}},
                "completed": {"type": "boolean"},
                "lastActivity": {"type": "string", "format": "date-time"}
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Shipping label API",
	Description:      "Drives the shipping label creation flow for stored orders.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
