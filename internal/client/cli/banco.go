package cli

import (
	"context"
	"fmt"

	"github.com/escalatorhq/escalator-cli/internal/client/services"
)

// formatMinutos renders a signed minute amount as hours and minutes,
// e.g. 630 -> "+10h30", -45 -> "-0h45".
func formatMinutos(m int) string {
	sign := "+"
	if m < 0 {
		sign = "-"
		m = -m
	}
	return fmt.Sprintf("%s%dh%02d", sign, m/60, m%60)
}

// Saldo prints the current hour-bank balance.
func (a *App) Saldo(ctx context.Context) error {
	funcID, err := a.requireFuncionario(ctx)
	if err != nil {
		return err
	}

	saldo, err := a.banco.Saldo(ctx, funcID)
	if err != nil {
		a.reportError(err)
		return err
	}

	printlnFn("Hour-bank balance:", formatMinutos(saldo.SaldoMinutos))
	return nil
}

// Extrato prints the hour-bank statement, most recent entries first.
func (a *App) Extrato(ctx context.Context) error {
	funcID, err := a.requireFuncionario(ctx)
	if err != nil {
		return err
	}

	page, err := a.banco.Historico(ctx, funcID, services.BancoHorasFilter{})
	if err != nil {
		a.reportError(err)
		return err
	}

	if len(page.Results) == 0 {
		printlnFn("No hour-bank entries")
		return nil
	}
	for _, e := range page.Results {
		printlnFn(fmt.Sprintf("%s  credito %s  debito %s  saldo %s",
			e.DataReferencia,
			formatMinutos(e.CreditoMinutos),
			formatMinutos(-e.DebitoMinutos),
			formatMinutos(e.SaldoMinutos)))
	}
	return nil
}
