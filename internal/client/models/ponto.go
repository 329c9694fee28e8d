package models

import "time"

// Punch types accepted by the pontos endpoint.
const (
	TipoEntrada     = "entrada"
	TipoSaida       = "saida"
	TipoPausaInicio = "pausa_inicio"
	TipoPausaFim    = "pausa_fim"
)

// ValidTipoRegistro reports whether tipo is one of the accepted punch types.
func ValidTipoRegistro(tipo string) bool {
	switch tipo {
	case TipoEntrada, TipoSaida, TipoPausaInicio, TipoPausaFim:
		return true
	}
	return false
}

// Ponto is a single clock punch.
type Ponto struct {
	ID             string    `json:"id"`
	Funcionario    string    `json:"funcionario"`
	Escala         string    `json:"escala,omitempty"`
	Timestamp      time.Time `json:"timestamp"`
	TipoRegistro   string    `json:"tipo_registro"`
	LocalizacaoLat *float64  `json:"localizacao_lat,omitempty"`
	LocalizacaoLng *float64  `json:"localizacao_lng,omitempty"`
	Validado       bool      `json:"validado"`
	Observacoes    string    `json:"observacoes,omitempty"`
	CreatedAt      string    `json:"created_at,omitempty"`
}
