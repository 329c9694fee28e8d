// Package models defines the entities exchanged with the Escalator API.
// Field names follow the server's JSON contract (Django REST Framework,
// snake_case, Portuguese domain terms).
package models

// Usuario is the authenticated principal returned by the login endpoint.
type Usuario struct {
	ID          string       `json:"id"`
	Username    string       `json:"username"`
	Email       string       `json:"email"`
	FirstName   string       `json:"first_name"`
	LastName    string       `json:"last_name"`
	Funcionario *Funcionario `json:"funcionario,omitempty"`
}

// Funcionario is an employee record.
type Funcionario struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Matricula string `json:"matricula"`
	CPF       string `json:"cpf"`
	Email     string `json:"email"`
	Telefone  string `json:"telefone"`
	Cargo     string `json:"cargo"`
	Setor     string `json:"setor"`
	Ativo     bool   `json:"ativo"`
	CreatedAt string `json:"created_at,omitempty"`
}
