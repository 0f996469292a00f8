package domain

import "time"

// Empresa representa uma empresa cadastrada (o lado "um" da relação com Socio).
// As tags validate são aplicadas pelo pacote internal/pkg/validation;
// formato de CNPJ e de email não é validado.
type Empresa struct {
	ID        int64     `json:"id"`
	Nome      string    `json:"nome" validate:"notblank" example:"Acme"`
	CNPJ      string    `json:"cnpj" validate:"notblank" example:"12345678901234"`
	Endereco  string    `json:"endereco" validate:"notblank" example:"Rua A"`
	Telefone  string    `json:"telefone" validate:"notblank" example:"111"`
	Email     string    `json:"email" validate:"notblank" example:"a@acme.com"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// EmpresaInput é o payload de criação de empresa.
type EmpresaInput struct {
	Nome     string `json:"nome"`
	CNPJ     string `json:"cnpj"`
	Endereco string `json:"endereco"`
	Telefone string `json:"telefone"`
	Email    string `json:"email"`
}

// EmpresaPatch é o payload de atualização. Campos nulos ou ausentes
// mantêm o valor atual da empresa.
type EmpresaPatch struct {
	Nome     *string `json:"nome"`
	CNPJ     *string `json:"cnpj"`
	Endereco *string `json:"endereco"`
	Telefone *string `json:"telefone"`
	Email    *string `json:"email"`
}

// Apply devolve uma cópia da empresa com os campos do patch aplicados,
// usando o valor atual como fallback para cada campo omitido.
func (p EmpresaPatch) Apply(e Empresa) Empresa {
	e.Nome = coalesce(p.Nome, e.Nome)
	e.CNPJ = coalesce(p.CNPJ, e.CNPJ)
	e.Endereco = coalesce(p.Endereco, e.Endereco)
	e.Telefone = coalesce(p.Telefone, e.Telefone)
	e.Email = coalesce(p.Email, e.Email)
	return e
}

// EmpresaRef é o resumo da empresa aninhado na listagem de sócios.
type EmpresaRef struct {
	ID   int64  `json:"id"`
	Nome string `json:"nome"`
}

func coalesce(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
}
