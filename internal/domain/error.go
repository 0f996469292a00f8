package domain

// ErrorResponse é a estrutura padronizada para respostas de erro na API.
// @Description Estrutura padronizada para respostas de erro na API.
type ErrorResponse struct {
	Code     int      `json:"code" example:"400"`
	Category string   `json:"category" example:"VALIDATION_ERROR"`
	Message  string   `json:"message" example:"Erro de Validação: Dados inválidos."`
	Errors   []string `json:"errors,omitempty" example:"Nome da empresa é obrigatório."`
}

// MessageResponse é o corpo das respostas de auth sem payload (registro, logout).
type MessageResponse struct {
	Message string `json:"message" example:"Usuário registrado com sucesso"`
}

// StatusResponse é o corpo das respostas de empresa/sócio sem payload (exclusão).
type StatusResponse struct {
	Status string `json:"status" example:"Empresa excluída com sucesso"`
}

// TokenResponse é o corpo da resposta de login.
type TokenResponse struct {
	Token string `json:"token"`
}

// UserView é a representação pública de um usuário (id, email, roles).
type UserView struct {
	ID    int64    `json:"id"`
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}

// EmpresaResponse é uma empresa acompanhada da mensagem de status.
type EmpresaResponse struct {
	Status string `json:"status"`
	Empresa
}

// SocioResponse é um sócio acompanhado da mensagem de status.
type SocioResponse struct {
	Status string `json:"status"`
	Socio
}
