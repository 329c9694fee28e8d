package services

import (
	"context"

	"github.com/escalatorhq/escalator-cli/internal/client/api"
	"github.com/escalatorhq/escalator-cli/internal/client/models"
)

// DashboardService accesses the aggregated read-only dashboard endpoints.
type DashboardService struct {
	api API
}

func NewDashboardService(api API) *DashboardService {
	return &DashboardService{api: api}
}

// Geral returns the company-wide dashboard aggregates.
func (s *DashboardService) Geral(ctx context.Context) (*models.DashboardGeral, error) {
	var dash models.DashboardGeral
	err := s.api.Get(ctx, "/dashboard/", nil, &dash)
	if err != nil {
		return nil, err
	}
	return &dash, nil
}

// Funcionario returns the per-employee dashboard: today's shift and
// punches, the current balance, and the expected next punch type.
func (s *DashboardService) Funcionario(ctx context.Context, funcionarioID string) (*models.DashboardFuncionario, error) {
	var dash models.DashboardFuncionario
	err := s.api.Get(ctx, "/dashboard/funcionario/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": funcionarioID},
	}, &dash)
	if err != nil {
		return nil, err
	}
	return &dash, nil
}

// ResumoSemanal returns the weekly summary, scoped to one employee when
// funcionarioID is non-empty.
func (s *DashboardService) ResumoSemanal(ctx context.Context, funcionarioID string) (*models.ResumoSemanal, error) {
	var resumo models.ResumoSemanal
	err := s.api.Get(ctx, "/dashboard/resumo-semanal/", &api.RequestOptions{
		Query: map[string]string{"funcionario": funcionarioID},
	}, &resumo)
	if err != nil {
		return nil, err
	}
	return &resumo, nil
}
