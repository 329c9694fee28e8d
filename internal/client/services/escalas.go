package services

import (
	"context"
	"time"

	"github.com/escalatorhq/escalator-cli/internal/client/api"
	"github.com/escalatorhq/escalator-cli/internal/client/models"
)

// EscalaFilter narrows escala listings. Zero values are omitted from the
// query string.
type EscalaFilter struct {
	Funcionario string
	DataInicio  string
	DataFim     string
	TipoEscala  string
	Page        int
	PageSize    int
}

func (f EscalaFilter) query() map[string]string {
	q := map[string]string{
		"funcionario": f.Funcionario,
		"data_inicio": f.DataInicio,
		"data_fim":    f.DataFim,
		"tipo_escala": f.TipoEscala,
	}
	pageParams(q, f.Page, f.PageSize)
	return q
}

// EscalaInput is the writable portion of an escala.
type EscalaInput struct {
	Funcionario  string `json:"funcionario"`
	Data         string `json:"data"`
	HoraInicio   string `json:"hora_inicio"`
	HoraFim      string `json:"hora_fim"`
	PausaMinutos int    `json:"pausa_minutos"`
	TipoEscala   string `json:"tipo_escala"`
	Descanso     bool   `json:"descanso"`
}

// EscalasService accesses the work-shift schedule endpoints.
type EscalasService struct {
	api API
	now func() time.Time
}

func NewEscalasService(api API) *EscalasService {
	return &EscalasService{api: api, now: time.Now}
}

func (s *EscalasService) List(ctx context.Context, f EscalaFilter) (*models.Page[models.Escala], error) {
	var page models.Page[models.Escala]
	err := s.api.Get(ctx, "/escalas/", &api.RequestOptions{Query: f.query()}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *EscalasService) Get(ctx context.Context, id string) (*models.Escala, error) {
	var escala models.Escala
	err := s.api.Get(ctx, "/escalas/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": id},
	}, &escala)
	if err != nil {
		return nil, err
	}
	return &escala, nil
}

func (s *EscalasService) Create(ctx context.Context, in EscalaInput) (*models.Escala, error) {
	var escala models.Escala
	err := s.api.Post(ctx, "/escalas/", &api.RequestOptions{Body: in}, &escala)
	if err != nil {
		return nil, err
	}
	return &escala, nil
}

// Update applies a partial change; fields map to the API's JSON names.
func (s *EscalasService) Update(ctx context.Context, id string, fields map[string]any) (*models.Escala, error) {
	var escala models.Escala
	err := s.api.Patch(ctx, "/escalas/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": id},
		Body:       fields,
	}, &escala)
	if err != nil {
		return nil, err
	}
	return &escala, nil
}

func (s *EscalasService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/escalas/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": id},
	})
}

// Hoje returns today's shift for the employee, nil when none is scheduled.
func (s *EscalasService) Hoje(ctx context.Context, funcionarioID string) (*models.Escala, error) {
	hoje := s.now().Format(isoDate)
	page, err := s.List(ctx, EscalaFilter{
		Funcionario: funcionarioID,
		DataInicio:  hoje,
		DataFim:     hoje,
	})
	if err != nil {
		return nil, err
	}
	return page.First(), nil
}

// Semana lists the 7-day window starting at dataInicio.
func (s *EscalasService) Semana(ctx context.Context, funcionarioID, dataInicio string) ([]models.Escala, error) {
	inicio, fim, err := dayRange(dataInicio, 6)
	if err != nil {
		return nil, err
	}
	page, err := s.List(ctx, EscalaFilter{
		Funcionario: funcionarioID,
		DataInicio:  inicio,
		DataFim:     fim,
	})
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Mes lists the calendar month's shifts.
func (s *EscalasService) Mes(ctx context.Context, funcionarioID string, ano, mes int) ([]models.Escala, error) {
	inicio, fim := monthRange(ano, mes)
	page, err := s.List(ctx, EscalaFilter{
		Funcionario: funcionarioID,
		DataInicio:  inicio,
		DataFim:     fim,
	})
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

// FolgaInput is the writable portion of a day off.
type FolgaInput struct {
	Funcionario string `json:"funcionario"`
	Data        string `json:"data"`
	Motivo      string `json:"motivo,omitempty"`
}

// Folgas lists registered days off, optionally bounded by a date range.
func (s *EscalasService) Folgas(ctx context.Context, funcionarioID, dataInicio, dataFim string) (*models.Page[models.Folga], error) {
	var page models.Page[models.Folga]
	err := s.api.Get(ctx, "/folgas/", &api.RequestOptions{
		Query: map[string]string{
			"funcionario": funcionarioID,
			"data_inicio": dataInicio,
			"data_fim":    dataFim,
		},
	}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

// RegistrarFolga records a day off.
func (s *EscalasService) RegistrarFolga(ctx context.Context, in FolgaInput) (*models.Folga, error) {
	var folga models.Folga
	err := s.api.Post(ctx, "/folgas/", &api.RequestOptions{Body: in}, &folga)
	if err != nil {
		return nil, err
	}
	return &folga, nil
}

// RemoverFolga deletes a registered day off.
func (s *EscalasService) RemoverFolga(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/folgas/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": id},
	})
}
