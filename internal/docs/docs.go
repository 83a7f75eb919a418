// Package docs holds the OpenAPI document served under /swagger.
// Regenerate with: swag init -g cmd/server/main.go -o internal/docs
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "Sina Niyavarzi",
            "email": "sinaniya@gmail.com"
        },
        "license": {
            "name": "MIT",
            "url": "https://opensource.org/licenses/MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/catalog": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "catalog"
                ],
                "summary": "Catalog summary",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.SummaryResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/catalog/authors": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "List authors",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.AuthorListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Create",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.AuthorRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.CreateAuthorResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/catalog/authors/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Get by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.AuthorDetailResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Replace",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.AuthorRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Author"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Delete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/catalog/authors/{id}/delete": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "authors"
                ],
                "summary": "Preview delete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.AuthorDeleteResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/catalog/genres": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "genres"
                ],
                "summary": "List genres",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.GenreListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "genres"
                ],
                "summary": "Create",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.GenreRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.CreateGenreResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Genre already exists",
                        "schema": {
                            "$ref": "#/definitions/handler.CreateGenreResponse"
                        }
                    }
                }
            }
        },
        "/catalog/genres/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "genres"
                ],
                "summary": "Get by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.GenreDetailResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "genres"
                ],
                "summary": "Replace",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.GenreRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Genre"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "409": {
                        "description": "Name in use",
                        "schema": {
                            "$ref": "#/definitions/handler.CreateGenreResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "genres"
                ],
                "summary": "Delete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/catalog/genres/{id}/delete": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "genres"
                ],
                "summary": "Preview delete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.GenreDeleteResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/catalog/books": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "books"
                ],
                "summary": "List books",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BookListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "books"
                ],
                "summary": "Create",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.BookRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.CreateBookResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/catalog/books/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "books"
                ],
                "summary": "Get by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BookDetailResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "books"
                ],
                "summary": "Replace",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.BookRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.Book"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "books"
                ],
                "summary": "Delete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/catalog/books/{id}/delete": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "books"
                ],
                "summary": "Preview delete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BookDeleteResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/catalog/bookinstances": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookinstances"
                ],
                "summary": "List bookinstances",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BookInstanceListResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            },
            "post": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookinstances"
                ],
                "summary": "Create",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "description": "Request body",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.BookInstanceRequest"
                        }
                    }
                ],
                "responses": {
                    "201": {
                        "description": "Created",
                        "schema": {
                            "$ref": "#/definitions/handler.CreateBookInstanceResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/catalog/bookinstances/{id}": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookinstances"
                ],
                "summary": "Get by ID",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BookInstanceDetailResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            },
            "put": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookinstances"
                ],
                "summary": "Replace",
                "consumes": [
                    "application/json"
                ],
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    },
                    {
                        "description": "Request body",
                        "name": "payload",
                        "in": "body",
                        "required": true,
                        "schema": {
                            "$ref": "#/definitions/handler.BookInstanceRequest"
                        }
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BookInstance"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            },
            "delete": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookinstances"
                ],
                "summary": "Delete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "204": {
                        "description": "No Content"
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/catalog/bookinstances/{id}/delete": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookinstances"
                ],
                "summary": "Preview delete",
                "parameters": [
                    {
                        "type": "string",
                        "description": "Record ID (UUID)",
                        "name": "id",
                        "in": "path",
                        "required": true
                    }
                ],
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BookInstanceDeleteResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "400": {
                        "description": "Invalid request",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    },
                    "404": {
                        "description": "Not found",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/catalog/books/form": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "books"
                ],
                "summary": "Book form data",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BookFormResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/catalog/bookinstances/form": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "bookinstances"
                ],
                "summary": "Copy form data",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "$ref": "#/definitions/handler.BookInstanceFormResponse"
                        }
                    },
                    "500": {
                        "description": "Internal server error",
                        "schema": {
                            "$ref": "#/definitions/validation.ErrorResponse"
                        }
                    }
                }
            }
        },
        "/health": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "summary": "Liveness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        },
        "/ready": {
            "get": {
                "produces": [
                    "application/json"
                ],
                "tags": [
                    "health"
                ],
                "description": "Reports the database driver, whether it answers a ping and whether every catalog table is migrated",
                "summary": "Readiness probe",
                "responses": {
                    "200": {
                        "description": "OK",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    },
                    "503": {
                        "description": "Database unavailable",
                        "schema": {
                            "type": "object",
                            "additionalProperties": true
                        }
                    }
                }
            }
        }
    },
    "definitions": {
        "validation.FieldError": {
            "type": "object",
            "properties": {
                "field": {
                    "type": "string"
                },
                "rule": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                }
            }
        },
        "validation.ErrorResponse": {
            "type": "object",
            "properties": {
                "code": {
                    "type": "string"
                },
                "message": {
                    "type": "string"
                },
                "errors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/validation.FieldError"
                    }
                }
            }
        },
        "handler.AuthorRequest": {
            "type": "object",
            "properties": {
                "first_name": {
                    "type": "string",
                    "example": "Frank"
                },
                "family_name": {
                    "type": "string",
                    "example": "Herbert"
                },
                "date_of_birth": {
                    "type": "string",
                    "example": "1920-10-08"
                },
                "date_of_death": {
                    "type": "string",
                    "example": "1986-02-11"
                }
            }
        },
        "handler.Author": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "first_name": {
                    "type": "string"
                },
                "family_name": {
                    "type": "string"
                },
                "date_of_birth": {
                    "type": "string",
                    "example": "1920-10-08"
                },
                "date_of_death": {
                    "type": "string",
                    "example": "1986-02-11"
                },
                "name": {
                    "type": "string"
                },
                "lifespan": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "handler.AuthorSummary": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "handler.AuthorListResponse": {
            "type": "object",
            "properties": {
                "author_list": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.Author"
                    }
                }
            }
        },
        "handler.AuthorDetailResponse": {
            "type": "object",
            "properties": {
                "author": {
                    "$ref": "#/definitions/handler.Author"
                },
                "author_books": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.BookSummary"
                    }
                }
            }
        },
        "handler.AuthorDeleteResponse": {
            "type": "object",
            "properties": {
                "author": {
                    "$ref": "#/definitions/handler.Author"
                },
                "author_books": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.BookSummary"
                    }
                },
                "decision": {
                    "type": "string",
                    "example": "proceed"
                }
            }
        },
        "handler.CreateAuthorResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "author": {
                    "$ref": "#/definitions/handler.Author"
                }
            }
        },
        "handler.GenreRequest": {
            "type": "object",
            "properties": {
                "name": {
                    "type": "string",
                    "example": "Science Fiction"
                }
            }
        },
        "handler.Genre": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "handler.GenreSummary": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "name": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "handler.GenreListResponse": {
            "type": "object",
            "properties": {
                "genre_list": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.Genre"
                    }
                }
            }
        },
        "handler.GenreDetailResponse": {
            "type": "object",
            "properties": {
                "genre": {
                    "$ref": "#/definitions/handler.Genre"
                },
                "genre_books": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.BookSummary"
                    }
                }
            }
        },
        "handler.GenreDeleteResponse": {
            "type": "object",
            "properties": {
                "genre": {
                    "$ref": "#/definitions/handler.Genre"
                },
                "genre_books": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.BookSummary"
                    }
                },
                "decision": {
                    "type": "string",
                    "example": "proceed"
                }
            }
        },
        "handler.CreateGenreResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "genre": {
                    "$ref": "#/definitions/handler.Genre"
                }
            }
        },
        "handler.BookRequest": {
            "type": "object",
            "properties": {
                "title": {
                    "type": "string",
                    "example": "Dune"
                },
                "author": {
                    "type": "string"
                },
                "summary": {
                    "type": "string"
                },
                "isbn": {
                    "type": "string",
                    "example": "9780441013593"
                },
                "genre": {
                    "type": "array",
                    "items": {
                        "type": "string"
                    }
                }
            }
        },
        "handler.Book": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "author": {
                    "$ref": "#/definitions/handler.AuthorSummary"
                },
                "summary": {
                    "type": "string"
                },
                "isbn": {
                    "type": "string"
                },
                "genre": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.GenreSummary"
                    }
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "handler.BookSummary": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "summary": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "handler.BookListResponse": {
            "type": "object",
            "properties": {
                "book_list": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.Book"
                    }
                }
            }
        },
        "handler.BookDetailResponse": {
            "type": "object",
            "properties": {
                "book": {
                    "$ref": "#/definitions/handler.Book"
                },
                "book_instances": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.BookInstance"
                    }
                }
            }
        },
        "handler.BookDeleteResponse": {
            "type": "object",
            "properties": {
                "book": {
                    "$ref": "#/definitions/handler.Book"
                },
                "book_instances": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.BookInstance"
                    }
                },
                "decision": {
                    "type": "string",
                    "example": "blocked"
                }
            }
        },
        "handler.CreateBookResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "book": {
                    "$ref": "#/definitions/handler.Book"
                }
            }
        },
        "handler.BookFormResponse": {
            "type": "object",
            "properties": {
                "authors": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.Author"
                    }
                },
                "genres": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.Genre"
                    }
                }
            }
        },
        "handler.BookInstanceRequest": {
            "type": "object",
            "properties": {
                "book": {
                    "type": "string"
                },
                "imprint": {
                    "type": "string",
                    "example": "Ace Books, 1990"
                },
                "status": {
                    "type": "string",
                    "enum": [
                        "Available",
                        "Maintenance",
                        "Loaned",
                        "Reserved"
                    ],
                    "example": "Available"
                },
                "due_back": {
                    "type": "string",
                    "example": "2026-11-01"
                }
            }
        },
        "handler.BookRef": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "title": {
                    "type": "string"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "handler.BookInstance": {
            "type": "object",
            "properties": {
                "id": {
                    "type": "string"
                },
                "book": {
                    "$ref": "#/definitions/handler.BookRef"
                },
                "imprint": {
                    "type": "string"
                },
                "status": {
                    "type": "string"
                },
                "due_back": {
                    "type": "string",
                    "example": "2026-11-01"
                },
                "due_back_formatted": {
                    "type": "string",
                    "example": "Nov 1, 2026"
                },
                "url": {
                    "type": "string"
                }
            }
        },
        "handler.BookInstanceListResponse": {
            "type": "object",
            "properties": {
                "bookinstance_list": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.BookInstance"
                    }
                }
            }
        },
        "handler.BookInstanceDetailResponse": {
            "type": "object",
            "properties": {
                "bookinstance": {
                    "$ref": "#/definitions/handler.BookInstance"
                }
            }
        },
        "handler.BookInstanceDeleteResponse": {
            "type": "object",
            "properties": {
                "bookinstance": {
                    "$ref": "#/definitions/handler.BookInstance"
                },
                "decision": {
                    "type": "string",
                    "example": "proceed"
                }
            }
        },
        "handler.CreateBookInstanceResponse": {
            "type": "object",
            "properties": {
                "message": {
                    "type": "string"
                },
                "bookinstance": {
                    "$ref": "#/definitions/handler.BookInstance"
                }
            }
        },
        "handler.BookInstanceFormResponse": {
            "type": "object",
            "properties": {
                "books": {
                    "type": "array",
                    "items": {
                        "$ref": "#/definitions/handler.Book"
                    }
                }
            }
        },
        "handler.SummaryResponse": {
            "type": "object",
            "properties": {
                "book_count": {
                    "type": "integer"
                },
                "book_instance_count": {
                    "type": "integer"
                },
                "book_instance_available_count": {
                    "type": "integer"
                },
                "author_count": {
                    "type": "integer"
                },
                "genre_count": {
                    "type": "integer"
                }
            }
        }
    }
}`

// SwaggerInfo holds exported Swagger Info so clients can modify it
var SwaggerInfo = &swag.Spec{
	Version:          "1.0",
	Host:             "localhost:8080",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Shelfshare Catalog API",
	Description:      "Library catalog of authors, genres, books and book copies.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
