package services

import (
	"context"

	"github.com/escalatorhq/escalator-cli/internal/client/api"
	"github.com/escalatorhq/escalator-cli/internal/client/models"
)

// BancoHorasFilter narrows hour-bank ledger listings. Tipo is "credito" or
// "debito" when set.
type BancoHorasFilter struct {
	Funcionario string
	DataInicio  string
	DataFim     string
	Tipo        string
	Page        int
	PageSize    int
}

func (f BancoHorasFilter) query() map[string]string {
	q := map[string]string{
		"funcionario": f.Funcionario,
		"data_inicio": f.DataInicio,
		"data_fim":    f.DataFim,
		"tipo":        f.Tipo,
	}
	pageParams(q, f.Page, f.PageSize)
	return q
}

// BancoHorasInput is the writable portion of a ledger entry.
type BancoHorasInput struct {
	Funcionario    string `json:"funcionario"`
	DataReferencia string `json:"data_referencia"`
	CreditoMinutos int    `json:"credito_minutos"`
	DebitoMinutos  int    `json:"debito_minutos"`
	Observacoes    string `json:"observacoes,omitempty"`
}

// BancoHorasService accesses the accrued-hours ledger endpoints. Balances
// are computed server-side; this layer only reads and records entries.
type BancoHorasService struct {
	api API
}

func NewBancoHorasService(api API) *BancoHorasService {
	return &BancoHorasService{api: api}
}

func (s *BancoHorasService) List(ctx context.Context, f BancoHorasFilter) (*models.Page[models.BancoHoras], error) {
	var page models.Page[models.BancoHoras]
	err := s.api.Get(ctx, "/banco-horas/", &api.RequestOptions{Query: f.query()}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *BancoHorasService) Get(ctx context.Context, id string) (*models.BancoHoras, error) {
	var entry models.BancoHoras
	err := s.api.Get(ctx, "/banco-horas/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": id},
	}, &entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *BancoHorasService) Create(ctx context.Context, in BancoHorasInput) (*models.BancoHoras, error) {
	var entry models.BancoHoras
	err := s.api.Post(ctx, "/banco-horas/", &api.RequestOptions{Body: in}, &entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *BancoHorasService) Update(ctx context.Context, id string, fields map[string]any) (*models.BancoHoras, error) {
	var entry models.BancoHoras
	err := s.api.Patch(ctx, "/banco-horas/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": id},
		Body:       fields,
	}, &entry)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *BancoHorasService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/banco-horas/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": id},
	})
}

// Saldo returns the employee's current balance.
func (s *BancoHorasService) Saldo(ctx context.Context, funcionarioID string) (*models.Saldo, error) {
	var saldo models.Saldo
	err := s.api.Get(ctx, "/banco-horas/saldo/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": funcionarioID},
	}, &saldo)
	if err != nil {
		return nil, err
	}
	return &saldo, nil
}

// Historico lists the employee's ledger, newest first.
func (s *BancoHorasService) Historico(ctx context.Context, funcionarioID string, f BancoHorasFilter) (*models.Page[models.BancoHoras], error) {
	f.Funcionario = funcionarioID
	return s.List(ctx, f)
}

// RelatorioMensal fetches the monthly report for one employee.
func (s *BancoHorasService) RelatorioMensal(ctx context.Context, funcionarioID string, ano, mes int) (*models.RelatorioMensal, error) {
	inicio, fim := monthRange(ano, mes)
	var rel models.RelatorioMensal
	err := s.api.Get(ctx, "/banco-horas/relatorio/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": funcionarioID},
		Query: map[string]string{
			"data_inicio": inicio,
			"data_fim":    fim,
		},
	}, &rel)
	if err != nil {
		return nil, err
	}
	return &rel, nil
}
