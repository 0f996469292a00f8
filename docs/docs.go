// Package docs registra no swag a especificação OpenAPI servida em /swagger.
// Mantida à mão junto com as anotações dos handlers; ao alterar uma rota,
// atualize o template abaixo.
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
        "/register": {
            "post": {
                "description": "Cria um usuário com a senha em hash. Sem role informada, o usuário recebe ROLE_USER.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Registra um novo usuário",
                "parameters": [
                    {"description": "Email, senha e role opcional", "name": "user", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.UserRegistration"}}
                ],
                "responses": {
                    "201": {"description": "Usuário registrado com sucesso", "schema": {"$ref": "#/definitions/domain.MessageResponse"}},
                    "400": {"description": "Payload inválido", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "409": {"description": "Usuário já registrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/login": {
            "post": {
                "description": "Valida email e senha e retorna um JWT.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Autentica um usuário",
                "parameters": [
                    {"description": "Credenciais", "name": "credentials", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.LoginRequest"}}
                ],
                "responses": {
                    "200": {"description": "Token JWT", "schema": {"$ref": "#/definitions/domain.TokenResponse"}},
                    "401": {"description": "Credenciais inválidas", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/logout": {
            "post": {
                "produces": ["application/json"],
                "tags": ["auth"],
                "summary": "Encerra a sessão",
                "responses": {
                    "200": {"description": "Usuário deslogado com sucesso", "schema": {"$ref": "#/definitions/domain.MessageResponse"}}
                }
            }
        },
        "/user/me": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Retorna o usuário autenticado",
                "responses": {
                    "200": {"description": "Usuário atual", "schema": {"$ref": "#/definitions/domain.UserView"}},
                    "401": {"description": "Usuário não autenticado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/users": {
            "get": {
                "security": [{"ApiKeyAuth": []}],
                "produces": ["application/json"],
                "tags": ["users"],
                "summary": "Lista todos os usuários",
                "responses": {
                    "200": {"description": "Lista de usuários", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.UserView"}}},
                    "401": {"description": "Usuário não autenticado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "403": {"description": "Acesso negado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/empresas": {
            "get": {
                "produces": ["application/json"],
                "tags": ["empresas"],
                "summary": "Lista todas as empresas",
                "responses": {
                    "200": {"description": "Lista de empresas", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Empresa"}}},
                    "500": {"description": "Erro interno do servidor", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "post": {
                "description": "Todos os campos são obrigatórios e não podem ser vazios.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["empresas"],
                "summary": "Cria uma nova empresa",
                "parameters": [
                    {"description": "Dados da empresa", "name": "empresa", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.EmpresaInput"}}
                ],
                "responses": {
                    "201": {"description": "Empresa criada com sucesso", "schema": {"$ref": "#/definitions/domain.EmpresaResponse"}},
                    "400": {"description": "Dados inválidos", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "500": {"description": "Erro interno do servidor", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/empresas/{id}": {
            "get": {
                "produces": ["application/json"],
                "tags": ["empresas"],
                "summary": "Obtém uma empresa por ID",
                "parameters": [
                    {"type": "integer", "description": "ID da empresa", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Empresa encontrada", "schema": {"$ref": "#/definitions/domain.Empresa"}},
                    "404": {"description": "Empresa não encontrada", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "put": {
                "description": "Campos omitidos mantêm o valor atual; o resultado é validado antes de gravar.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["empresas"],
                "summary": "Atualiza uma empresa",
                "parameters": [
                    {"type": "integer", "description": "ID da empresa", "name": "id", "in": "path", "required": true},
                    {"description": "Campos a alterar", "name": "empresa", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.EmpresaPatch"}}
                ],
                "responses": {
                    "200": {"description": "Empresa atualizada com sucesso", "schema": {"$ref": "#/definitions/domain.EmpresaResponse"}},
                    "400": {"description": "Dados inválidos", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Empresa não encontrada", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "delete": {
                "description": "A exclusão é recusada enquanto houver sócios associados.",
                "produces": ["application/json"],
                "tags": ["empresas"],
                "summary": "Exclui uma empresa",
                "parameters": [
                    {"type": "integer", "description": "ID da empresa", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Empresa excluída com sucesso", "schema": {"$ref": "#/definitions/domain.StatusResponse"}},
                    "400": {"description": "Existem sócios associados", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Empresa não encontrada", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/empresas/{id}/socios": {
            "get": {
                "produces": ["application/json"],
                "tags": ["empresas"],
                "summary": "Lista os sócios de uma empresa",
                "parameters": [
                    {"type": "integer", "description": "ID da empresa", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Sócios da empresa", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.SocioResumo"}}},
                    "404": {"description": "Empresa não encontrada", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/socios": {
            "get": {
                "description": "Cada sócio traz o resumo (id, nome) da empresa.",
                "produces": ["application/json"],
                "tags": ["socios"],
                "summary": "Lista todos os sócios",
                "responses": {
                    "200": {"description": "Lista de sócios", "schema": {"type": "array", "items": {"$ref": "#/definitions/domain.Socio"}}}
                }
            },
            "post": {
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["socios"],
                "summary": "Cria um novo sócio",
                "parameters": [
                    {"description": "Dados do sócio", "name": "socio", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.SocioInput"}}
                ],
                "responses": {
                    "201": {"description": "Sócio criado com sucesso", "schema": {"$ref": "#/definitions/domain.SocioResponse"}},
                    "400": {"description": "Dados incompletos", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}},
                    "404": {"description": "Empresa não encontrada", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        },
        "/socios/{id}": {
            "put": {
                "description": "Apenas os campos enviados são alterados.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "tags": ["socios"],
                "summary": "Atualiza um sócio",
                "parameters": [
                    {"type": "integer", "description": "ID do sócio", "name": "id", "in": "path", "required": true},
                    {"description": "Campos a alterar", "name": "socio", "in": "body", "required": true, "schema": {"$ref": "#/definitions/domain.SocioPatch"}}
                ],
                "responses": {
                    "200": {"description": "Sócio atualizado com sucesso", "schema": {"$ref": "#/definitions/domain.SocioResponse"}},
                    "404": {"description": "Sócio ou empresa não encontrados", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            },
            "delete": {
                "produces": ["application/json"],
                "tags": ["socios"],
                "summary": "Exclui um sócio",
                "parameters": [
                    {"type": "integer", "description": "ID do sócio", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "Sócio excluído com sucesso", "schema": {"$ref": "#/definitions/domain.StatusResponse"}},
                    "404": {"description": "Sócio não encontrado", "schema": {"$ref": "#/definitions/domain.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "domain.Empresa": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nome": {"type": "string", "example": "Acme"},
                "cnpj": {"type": "string", "example": "12345678901234"},
                "endereco": {"type": "string", "example": "Rua A"},
                "telefone": {"type": "string", "example": "111"},
                "email": {"type": "string", "example": "a@acme.com"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.EmpresaInput": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "cnpj": {"type": "string"},
                "endereco": {"type": "string"},
                "telefone": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "domain.EmpresaPatch": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "cnpj": {"type": "string"},
                "endereco": {"type": "string"},
                "telefone": {"type": "string"},
                "email": {"type": "string"}
            }
        },
        "domain.EmpresaRef": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nome": {"type": "string"}
            }
        },
        "domain.EmpresaResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "cnpj": {"type": "string"},
                "endereco": {"type": "string"},
                "telefone": {"type": "string"},
                "email": {"type": "string"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.ErrorResponse": {
            "description": "Estrutura padronizada para respostas de erro na API.",
            "type": "object",
            "properties": {
                "code": {"type": "integer", "example": 400},
                "category": {"type": "string", "example": "VALIDATION_ERROR"},
                "message": {"type": "string", "example": "Erro de Validação: Dados inválidos."},
                "errors": {"type": "array", "items": {"type": "string"}, "example": ["Nome da empresa é obrigatório."]}
            }
        },
        "domain.LoginRequest": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "admin@acme.com"},
                "password": {"type": "string", "example": "s3cr3t"}
            }
        },
        "domain.MessageResponse": {
            "type": "object",
            "properties": {
                "message": {"type": "string", "example": "Usuário registrado com sucesso"}
            }
        },
        "domain.Socio": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nome": {"type": "string", "example": "Maria"},
                "cpf": {"type": "string", "example": "12345678901"},
                "endereco": {"type": "string"},
                "telefone": {"type": "string"},
                "empresaId": {"type": "integer"},
                "empresa": {"$ref": "#/definitions/domain.EmpresaRef"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.SocioInput": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "cpf": {"type": "string"},
                "endereco": {"type": "string"},
                "telefone": {"type": "string"},
                "empresaId": {"type": "integer"}
            }
        },
        "domain.SocioPatch": {
            "type": "object",
            "properties": {
                "nome": {"type": "string"},
                "cpf": {"type": "string"},
                "endereco": {"type": "string"},
                "telefone": {"type": "string"},
                "empresaId": {"type": "integer"}
            }
        },
        "domain.SocioResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string"},
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "cpf": {"type": "string"},
                "endereco": {"type": "string"},
                "telefone": {"type": "string"},
                "empresaId": {"type": "integer"},
                "created_at": {"type": "string"},
                "updated_at": {"type": "string"}
            }
        },
        "domain.SocioResumo": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "nome": {"type": "string"},
                "cpf": {"type": "string"},
                "endereco": {"type": "string"},
                "telefone": {"type": "string"}
            }
        },
        "domain.StatusResponse": {
            "type": "object",
            "properties": {
                "status": {"type": "string", "example": "Empresa excluída com sucesso"}
            }
        },
        "domain.TokenResponse": {
            "type": "object",
            "properties": {
                "token": {"type": "string"}
            }
        },
        "domain.UserRegistration": {
            "type": "object",
            "properties": {
                "email": {"type": "string", "example": "admin@acme.com"},
                "password": {"type": "string", "example": "s3cr3t"},
                "role": {"type": "string", "example": "ROLE_USER"}
            }
        },
        "domain.UserView": {
            "type": "object",
            "properties": {
                "id": {"type": "integer"},
                "email": {"type": "string"},
                "roles": {"type": "array", "items": {"type": "string"}}
            }
        }
    },
    "securityDefinitions": {
        "ApiKeyAuth": {
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
	BasePath:         "/api",
	Schemes:          []string{},
	Title:            "GoCadastro API",
	Description:      "API de cadastro de empresas e sócios com autenticação JWT.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
