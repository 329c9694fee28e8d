package models

// Escala is a scheduled work shift. Data is an ISO date (YYYY-MM-DD),
// HoraInicio/HoraFim are HH:MM:SS clock times.
type Escala struct {
	ID           string `json:"id"`
	Funcionario  string `json:"funcionario"`
	Data         string `json:"data"`
	HoraInicio   string `json:"hora_inicio"`
	HoraFim      string `json:"hora_fim"`
	PausaMinutos int    `json:"pausa_minutos"`
	TipoEscala   string `json:"tipo_escala"`
	Descanso     bool   `json:"descanso"`
	CreatedAt    string `json:"created_at,omitempty"`
}

// Folga is a registered day off.
type Folga struct {
	ID          string `json:"id"`
	Funcionario string `json:"funcionario"`
	Data        string `json:"data"`
	Motivo      string `json:"motivo"`
	CreatedAt   string `json:"created_at,omitempty"`
}
