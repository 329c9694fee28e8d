package services

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/escalatorhq/escalator-cli/internal/client/api"
	"github.com/escalatorhq/escalator-cli/internal/client/credentials"
	"github.com/escalatorhq/escalator-cli/internal/client/models"
	"github.com/escalatorhq/escalator-cli/internal/logging"
)

// RegistroPonto describes one punch to record. The timestamp is taken
// client-side at submission.
type RegistroPonto struct {
	Funcionario  string
	TipoRegistro string
	Latitude     *float64
	Longitude    *float64
	Observacoes  string
}

// PontoFilter narrows punch listings.
type PontoFilter struct {
	Funcionario  string
	DataInicio   string
	DataFim      string
	TipoRegistro string
	Validado     *bool
	Page         int
	PageSize     int
}

func (f PontoFilter) query() map[string]string {
	q := map[string]string{
		"funcionario":   f.Funcionario,
		"data_inicio":   f.DataInicio,
		"data_fim":      f.DataFim,
		"tipo_registro": f.TipoRegistro,
	}
	if f.Validado != nil {
		q["validado"] = strconv.FormatBool(*f.Validado)
	}
	pageParams(q, f.Page, f.PageSize)
	return q
}

// PontosService accesses the clock-punch endpoints.
type PontosService struct {
	api   API
	store credentials.Store
	log   logging.Logger
	now   func() time.Time
}

func NewPontosService(api API, store credentials.Store, log logging.Logger) *PontosService {
	return &PontosService{api: api, store: store, log: log, now: time.Now}
}

// Registrar records a punch. The request carries this install's device id
// so the server can detect duplicate submissions.
func (s *PontosService) Registrar(ctx context.Context, reg RegistroPonto) (*models.Ponto, error) {
	if !models.ValidTipoRegistro(reg.TipoRegistro) {
		return nil, fmt.Errorf("invalid tipo_registro %q", reg.TipoRegistro)
	}

	body := map[string]any{
		"funcionario":   reg.Funcionario,
		"tipo_registro": reg.TipoRegistro,
		"timestamp":     s.now().UTC().Format(time.RFC3339),
	}
	if reg.Latitude != nil {
		body["localizacao_lat"] = *reg.Latitude
	}
	if reg.Longitude != nil {
		body["localizacao_lng"] = *reg.Longitude
	}
	if reg.Observacoes != "" {
		body["observacoes"] = reg.Observacoes
	}

	header := make(http.Header)
	if deviceID, err := credentials.DeviceID(ctx, s.store); err == nil {
		header.Set("X-Device-Id", deviceID)
	} else {
		s.log.Warn(ctx, "failed to resolve device id", "error", err)
	}

	var ponto models.Ponto
	err := s.api.Post(ctx, "/pontos/", &api.RequestOptions{Body: body, Header: header}, &ponto)
	if err != nil {
		return nil, err
	}

	s.log.Info(ctx, "ponto registrado",
		"funcionario", reg.Funcionario, "tipo", reg.TipoRegistro, "id", ponto.ID)
	return &ponto, nil
}

func (s *PontosService) List(ctx context.Context, f PontoFilter) (*models.Page[models.Ponto], error) {
	var page models.Page[models.Ponto]
	err := s.api.Get(ctx, "/pontos/", &api.RequestOptions{Query: f.query()}, &page)
	if err != nil {
		return nil, err
	}
	return &page, nil
}

func (s *PontosService) Get(ctx context.Context, id string) (*models.Ponto, error) {
	var ponto models.Ponto
	err := s.api.Get(ctx, "/pontos/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": id},
	}, &ponto)
	if err != nil {
		return nil, err
	}
	return &ponto, nil
}

// Hoje lists today's punches for the employee.
func (s *PontosService) Hoje(ctx context.Context, funcionarioID string) ([]models.Ponto, error) {
	hoje := s.now().Format(isoDate)
	page, err := s.List(ctx, PontoFilter{
		Funcionario: funcionarioID,
		DataInicio:  hoje,
		DataFim:     hoje,
	})
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}

// Ultimo returns the employee's most recent punch, nil when none exist.
func (s *PontosService) Ultimo(ctx context.Context, funcionarioID string) (*models.Ponto, error) {
	page, err := s.List(ctx, PontoFilter{Funcionario: funcionarioID, PageSize: 1})
	if err != nil {
		return nil, err
	}
	return page.First(), nil
}

func (s *PontosService) Update(ctx context.Context, id string, fields map[string]any) (*models.Ponto, error) {
	var ponto models.Ponto
	err := s.api.Patch(ctx, "/pontos/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": id},
		Body:       fields,
	}, &ponto)
	if err != nil {
		return nil, err
	}
	return &ponto, nil
}

// Validar marks a punch as validated (or not) by a supervisor.
func (s *PontosService) Validar(ctx context.Context, id string, validado bool) (*models.Ponto, error) {
	return s.Update(ctx, id, map[string]any{"validado": validado})
}

func (s *PontosService) Delete(ctx context.Context, id string) error {
	return s.api.Delete(ctx, "/pontos/{id}/", &api.RequestOptions{
		PathParams: map[string]string{"id": id},
	})
}

// Semana lists the 7-day window of punches starting at dataInicio.
func (s *PontosService) Semana(ctx context.Context, funcionarioID, dataInicio string) ([]models.Ponto, error) {
	inicio, fim, err := dayRange(dataInicio, 6)
	if err != nil {
		return nil, err
	}
	page, err := s.List(ctx, PontoFilter{
		Funcionario: funcionarioID,
		DataInicio:  inicio,
		DataFim:     fim,
	})
	if err != nil {
		return nil, err
	}
	return page.Results, nil
}
