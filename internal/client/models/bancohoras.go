package models

// BancoHoras is one accrued-hours ledger entry. Amounts are minutes;
// SaldoMinutos is computed server-side.
type BancoHoras struct {
	ID             string `json:"id"`
	Funcionario    string `json:"funcionario"`
	DataReferencia string `json:"data_referencia"`
	CreditoMinutos int    `json:"credito_minutos"`
	DebitoMinutos  int    `json:"debito_minutos"`
	SaldoMinutos   int    `json:"saldo_minutos"`
	DataVencimento string `json:"data_vencimento,omitempty"`
	Compensado     bool   `json:"compensado"`
	Observacoes    string `json:"observacoes,omitempty"`
	CreatedAt      string `json:"created_at,omitempty"`
}

// Saldo is the current hour-bank balance of one employee.
type Saldo struct {
	Funcionario  string `json:"funcionario"`
	SaldoHoras   int    `json:"saldo_horas"`
	SaldoMinutos int    `json:"saldo_minutos"`
}

// RelatorioMensal is the monthly hour-bank report returned by
// /banco-horas/relatorio/{id}/.
type RelatorioMensal struct {
	Creditos      []BancoHoras `json:"creditos"`
	Debitos       []BancoHoras `json:"debitos"`
	SaldoInicial  int          `json:"saldo_inicial"`
	SaldoFinal    int          `json:"saldo_final"`
	TotalCreditos int          `json:"total_creditos"`
	TotalDebitos  int          `json:"total_debitos"`
}
