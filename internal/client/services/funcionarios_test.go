package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/escalatorhq/escalator-cli/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuncionariosService_Get(t *testing.T) {
	fake := &fakeAPI{response: models.Funcionario{ID: "f1", Nome: "Maria Silva", Ativo: true}}
	svc := NewFuncionariosService(fake)

	f, err := svc.Get(context.Background(), "f1")
	require.NoError(t, err)
	assert.Equal(t, "Maria Silva", f.Nome)
	assert.Equal(t, "/funcionarios/{id}/", fake.lastPath)
}

func TestFuncionariosService_List_Filter(t *testing.T) {
	ativo := true
	fake := &fakeAPI{response: models.Page[models.Funcionario]{Count: 1}}
	svc := NewFuncionariosService(fake)

	page, err := svc.List(context.Background(), FuncionarioFilter{Search: "silva", Ativo: &ativo})
	require.NoError(t, err)
	assert.Equal(t, 1, page.Count)
	assert.Equal(t, "silva", fake.lastOpts.Query["search"])
	assert.Equal(t, "true", fake.lastOpts.Query["ativo"])
}

func TestFuncionariosService_Create(t *testing.T) {
	fake := &fakeAPI{response: models.Funcionario{ID: "f2", Nome: "Joao Souza"}}
	svc := NewFuncionariosService(fake)

	f, err := svc.Create(context.Background(), FuncionarioInput{
		Nome:      "Joao Souza",
		Matricula: "1042",
		CPF:       "123.456.789-00",
	})
	require.NoError(t, err)
	assert.Equal(t, "f2", f.ID)
	assert.Equal(t, http.MethodPost, fake.lastMethod)
	assert.Equal(t, "/funcionarios/", fake.lastPath)
}

func TestFuncionariosService_Delete(t *testing.T) {
	fake := &fakeAPI{}
	svc := NewFuncionariosService(fake)

	require.NoError(t, svc.Delete(context.Background(), "f1"))
	assert.Equal(t, http.MethodDelete, fake.lastMethod)
	assert.Equal(t, map[string]string{"id": "f1"}, fake.lastOpts.PathParams)
}

func TestFuncionariosService_ToggleStatus(t *testing.T) {
	fake := &fakeAPI{response: models.Funcionario{ID: "f1", Ativo: false}}
	svc := NewFuncionariosService(fake)

	f, err := svc.ToggleStatus(context.Background(), "f1", false)
	require.NoError(t, err)
	assert.False(t, f.Ativo)
	assert.Equal(t, http.MethodPatch, fake.lastMethod)
	assert.Equal(t, map[string]any{"ativo": false}, fake.lastOpts.Body)
}
