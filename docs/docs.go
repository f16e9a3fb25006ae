// Package docs holds the OpenAPI description served under /swagger.
// Regenerate with: swag init -g cmd/app/main.go -o docs
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
        "/paytable": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "paytable"
                ],
                "summary": "Get the paytable",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.Paytable"
                        }
                    }
                }
            }
        },
        "/sessions": {
            "post": {
                "description": "Create a session with the starting balance and placeholder reels",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sessions"
                ],
                "summary": "Start a game session",
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/domain.SessionSnapshot"
                        }
                    },
                    "500": {
                        "description": "Internal Server Error",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{sessionID}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sessions"
                ],
                "summary": "Get a game session",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID (UUID)",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.SessionSnapshot"
                        }
                    },
                    "400": {
                        "description": "Malformed session ID",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Unknown or expired session",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "tags": [
                    "sessions"
                ],
                "summary": "End a game session",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID (UUID)",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "400": {
                        "description": "Malformed session ID",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Unknown or expired session",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{sessionID}/reset": {
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sessions"
                ],
                "summary": "Reset a game session",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID (UUID)",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.SessionSnapshot"
                        }
                    },
                    "400": {
                        "description": "Malformed session ID",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Unknown or expired session",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/sessions/{sessionID}/spin": {
            "post": {
                "description": "Take one spin. Insufficient funds returns 200 with outcome.accepted=false.",
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "sessions"
                ],
                "summary": "Spin the reels",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Session ID (UUID)",
                        "name": "sessionID",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/domain.SpinResult"
                        }
                    },
                    "400": {
                        "description": "Malformed session ID",
                        "schema": {
                            "$ref": "#/definitions/handler.ValidationErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Unknown or expired session",
                        "schema": {
                            "$ref": "#/definitions/handler.ErrorResponse"
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "domain.GameState": {
            "type": "object",
            "properties": {
                "balance": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "reels": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "spin_count": {
                    "type": "integer"
                }
            }
        },
        "domain.Paytable": {
            "type": "object",
            "properties": {
                "jackpot_every": {
                    "type": "integer"
                },
                "reel_count": {
                    "type": "integer"
                },
                "rewards": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "integer"
                    }
                },
                "spin_cost": {
                    "type": "integer"
                },
                "starting_coins": {
                    "type": "integer"
                },
                "symbols": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/domain.SymbolOdds"
                    }
                }
            }
        },
        "domain.SessionSnapshot": {
            "type": "object",
            "properties": {
                "created_at": {
                    "type": "string"
                },
                "session_id": {
                    "type": "string"
                },
                "state": {
                    "$ref": "#/definitions/domain.GameState"
                }
            }
        },
        "domain.SpinOutcome": {
            "type": "object",
            "properties": {
                "accepted": {
                    "type": "boolean"
                },
                "balance": {
                    "type": "integer"
                },
                "cost": {
                    "type": "integer"
                },
                "forced_jackpot": {
                    "type": "boolean"
                },
                "jackpot": {
                    "type": "boolean"
                },
                "match_count": {
                    "type": "integer"
                },
                "message": {
                    "type": "string"
                },
                "reels": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                },
                "reward": {
                    "type": "integer"
                },
                "spin_count": {
                    "type": "integer"
                }
            }
        },
        "domain.SpinResult": {
            "type": "object",
            "properties": {
                "outcome": {
                    "$ref": "#/definitions/domain.SpinOutcome"
                },
                "session": {
                    "$ref": "#/definitions/domain.SessionSnapshot"
                }
            }
        },
        "domain.SymbolOdds": {
            "type": "object",
            "properties": {
                "probability": {
                    "type": "number"
                },
                "symbol": {
                    "type": "string"
                },
                "weight": {
                    "type": "integer"
                }
            }
        },
        "handler.ErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                }
            }
        },
        "handler.ValidationErrorResponse": {
            "type": "object",
            "properties": {
                "error": {
                    "type": "string"
                },
                "fields": {
                    "type": "object",
                    "additionalProperties": {
                        "type": "string"
                    }
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "",
	BasePath:         "/api/v1",
	Schemes:          []string{},
	Title:            "Fun Slots API",
	Description:      "Three-reel slot machine sessions over HTTP.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
