package models

// DashboardGeral is the company-wide dashboard payload.
type DashboardGeral struct {
	TotalFuncionarios  int `json:"total_funcionarios"`
	FuncionariosAtivos int `json:"funcionarios_ativos"`
	PontosHoje         int `json:"pontos_hoje"`
	EscalasHoje        int `json:"escalas_hoje"`
	PontosPendentes    int `json:"pontos_pendentes"`
}

// DashboardFuncionario is the per-employee dashboard payload.
type DashboardFuncionario struct {
	EscalaHoje         *Escala `json:"escala_hoje,omitempty"`
	PontosHoje         []Ponto `json:"pontos_hoje"`
	SaldoBancoHoras    *Saldo  `json:"saldo_banco_horas,omitempty"`
	HorasTrabalhadaMes float64 `json:"horas_trabalhadas_mes"`
	StatusAtual        string  `json:"status_atual"`
	ProximoPonto       string  `json:"proximo_ponto"`
}

// ResumoSemanal summarizes the current week's worked hours.
type ResumoSemanal struct {
	SemanaAtual struct {
		Inicio           string  `json:"inicio"`
		Fim              string  `json:"fim"`
		HorasTrabalhadas float64 `json:"horas_trabalhadas"`
		DiasTrabalhados  int     `json:"dias_trabalhados"`
		MetaHoras        float64 `json:"meta_horas"`
	} `json:"semana_atual"`
	ComparacaoSemanaAnterior struct {
		DiferencaHoras    float64 `json:"diferenca_horas"`
		DiferencaDias     int     `json:"diferenca_dias"`
		PercentualMudanca float64 `json:"percentual_mudanca"`
	} `json:"comparacao_semana_anterior"`
}
