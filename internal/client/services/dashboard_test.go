package services

import (
	"context"
	"testing"

	"github.com/escalatorhq/escalator-cli/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDashboardService_Geral(t *testing.T) {
	fake := &fakeAPI{response: models.DashboardGeral{
		TotalFuncionarios:  12,
		FuncionariosAtivos: 10,
		PontosHoje:         37,
	}}
	svc := NewDashboardService(fake)

	dash, err := svc.Geral(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 12, dash.TotalFuncionarios)
	assert.Equal(t, 37, dash.PontosHoje)
	assert.Equal(t, "/dashboard/", fake.lastPath)
}

func TestDashboardService_Funcionario(t *testing.T) {
	fake := &fakeAPI{response: models.DashboardFuncionario{
		StatusAtual:  "trabalhando",
		ProximoPonto: "saida",
		SaldoBancoHoras: &models.Saldo{
			Funcionario:  "f1",
			SaldoMinutos: 90,
		},
	}}
	svc := NewDashboardService(fake)

	dash, err := svc.Funcionario(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "trabalhando", dash.StatusAtual)
	assert.Equal(t, "saida", dash.ProximoPonto)
	require.NotNil(t, dash.SaldoBancoHoras)
	assert.Equal(t, 90, dash.SaldoBancoHoras.SaldoMinutos)
	assert.Equal(t, "/dashboard/funcionario/{id}/", fake.lastPath)
	assert.Equal(t, map[string]string{"id": "f1"}, fake.lastOpts.PathParams)
}

func TestDashboardService_ResumoSemanal(t *testing.T) {
	resumo := models.ResumoSemanal{}
	resumo.SemanaAtual.Inicio = "2024-06-10"
	resumo.SemanaAtual.HorasTrabalhadas = 32.5
	resumo.SemanaAtual.DiasTrabalhados = 4

	fake := &fakeAPI{response: resumo}
	svc := NewDashboardService(fake)

	got, err := svc.ResumoSemanal(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, 32.5, got.SemanaAtual.HorasTrabalhadas)
	assert.Equal(t, 4, got.SemanaAtual.DiasTrabalhados)
	assert.Equal(t, "/dashboard/resumo-semanal/", fake.lastPath)
	assert.Equal(t, "f1", fake.lastOpts.Query["funcionario"])
}
