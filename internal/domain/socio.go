package domain

import "time"

// Socio representa um sócio, sempre vinculado a exatamente uma Empresa.
type Socio struct {
	ID        int64       `json:"id"`
	Nome      string      `json:"nome" example:"Maria"`
	CPF       string      `json:"cpf" example:"12345678901"`
	Endereco  *string     `json:"endereco"` // Opcional (NULL no banco)
	Telefone  *string     `json:"telefone"` // Opcional (NULL no banco)
	EmpresaID int64       `json:"empresaId"`
	Empresa   *EmpresaRef `json:"empresa,omitempty"` // Preenchido apenas na listagem geral
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// SocioInput é o payload de criação de sócio.
type SocioInput struct {
	Nome      string  `json:"nome"`
	CPF       string  `json:"cpf"`
	Endereco  *string `json:"endereco"`
	Telefone  *string `json:"telefone"`
	EmpresaID int64   `json:"empresaId"`
}

// SocioPatch é o payload de atualização de sócio.
// Somente os campos presentes (não nulos) são aplicados.
type SocioPatch struct {
	Nome      *string `json:"nome"`
	CPF       *string `json:"cpf"`
	Endereco  *string `json:"endereco"`
	Telefone  *string `json:"telefone"`
	EmpresaID *int64  `json:"empresaId"`
}

// SocioResumo é a representação de um sócio na listagem por empresa.
type SocioResumo struct {
	ID       int64   `json:"id"`
	Nome     string  `json:"nome"`
	CPF      string  `json:"cpf"`
	Endereco *string `json:"endereco"`
	Telefone *string `json:"telefone"`
}

// Resumo converte o sócio para a representação da listagem por empresa.
func (s Socio) Resumo() SocioResumo {
	return SocioResumo{
		ID:       s.ID,
		Nome:     s.Nome,
		CPF:      s.CPF,
		Endereco: s.Endereco,
		Telefone: s.Telefone,
	}
}
