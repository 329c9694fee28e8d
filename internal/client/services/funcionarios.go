package services

import (
	"context"
	"strconv"

	"github.com/escalatorhq/escalator-cli/internal/client/api"
	"github.com/escalatorhq/escalator-cli/internal/client/models"
)

// FuncionarioFilter narrows employee listings.
type FuncionarioFilter struct {
	Search   string
	Ativo    *bool
	Page     int
	PageSize int
}

func (f FuncionarioFilter) query() map[string]string {
	q := map[string]string{"search": f.Search}
	if f.Ativo != nil {
		q["ativo"] = strconv.FormatBool(*f.Ativo)
	}
	pageParams(q, f.Page, f.PageSize)
	return q
}

// FuncionarioInput is the writable portion of an employee record.
type FuncionarioInput struct {
	Nome      string `json:"nome"`
	Matricula string `json:"matricula"`
	CPF       string `json:"cpf"`
	Email     string `json:"email,omitempty"`
	Telefone  string `json:"telefone,omitempty"`
	Cargo     string `json:"cargo,omitempty"`
	Setor     string `json:"setor,omitempty"`
}

// FuncionariosService accesses the employee endpoints.
type FuncionariosService struct {
	api API
}

func NewFuncionariosService(api API) *FuncionariosService {
	return &FuncionariosService{api: api}
}

func (s *FuncionariosService) Get(ctx context.Context, id string) (*models.Funcionario, error) {
	var funcionario models.Funcionario
	err := s.api.Get(ctx, "/funcionarios/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": id},
	}, &funcionario)
	if err != nil {
		return nil, err
	}
	return &funcionario, nil
}

func (s *FuncionariosService) List(ctx context.Context, f FuncionarioFilter) (*models.Page[models.Funcionario], error) {
	var page models.Page[models.Funcionario]
	err := s.api.Get(ctx, "/funcionarios/", &api.RequestOptions{Query: f.query()}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *FuncionariosService) Create(ctx context.Context, in FuncionarioInput) (*models.Funcionario, error) {
	var funcionario models.Funcionario
	err := s.api.Post(ctx, "/funcionarios/", &api.RequestOptions{Body: in}, &funcionario)
	if err != nil {
		return nil, err
	}
	return &funcionario, nil
}

func (s *FuncionariosService) Update(ctx context.Context, id string, fields map[string]any) (*models.Funcionario, error) {
	var funcionario models.Funcionario
	err := s.api.Patch(ctx, "/funcionarios/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": id},
		Body:       fields,
	}, &funcionario)
	if err != nil {
		return nil, err
	}
	return &funcionario, nil
}

func (s *FuncionariosService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/funcionarios/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": id},
	})
}

// ToggleStatus activates or deactivates an employee.
func (s *FuncionariosService) ToggleStatus(ctx context.Context, id string, ativo bool) (*models.Funcionario, error) {
	return s.Update(ctx, id, map[string]any{"ativo": ativo})
}
