package cli

import (
	"context"
	"fmt"
)

// Resumo prints the per-employee dashboard: today's shift, punches so far,
// the current balance, and the expected next punch.
func (a *App) Resumo(ctx context.Context) error {
	funcID, err := a.requireFuncionario(ctx)
	if err != nil {
		return err
	}

	dash, err := a.dashboard.Funcionario(ctx, funcID)
	if err != nil {
		a.reportError(err)
		return err
	}

	printlnFn("Status:", dash.StatusAtual)
	if dash.EscalaHoje != nil {
		printlnFn("Shift today:", formatEscala(*dash.EscalaHoje))
	} else {
		printlnFn("No shift scheduled for today")
	}
	printlnFn(fmt.Sprintf("Punches today: %d", len(dash.PontosHoje)))
	if dash.ProximoPonto != "" {
		printlnFn("Next punch:", dash.ProximoPonto)
	}
	if dash.SaldoBancoHoras != nil {
		printlnFn("Hour-bank balance:", formatMinutos(dash.SaldoBancoHoras.SaldoMinutos))
	}
	printlnFn(fmt.Sprintf("Hours this month: %.1f", dash.HorasTrabalhadaMes))
	return nil
}
