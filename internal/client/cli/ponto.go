package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/escalatorhq/escalator-cli/internal/client/models"
	"github.com/escalatorhq/escalator-cli/internal/client/services"
)

var errNoFuncionario = errors.New("no employee record linked to this account")

func (a *App) requireFuncionario(ctx context.Context) (string, error) {
	id, ok := a.funcionarioID(ctx)
	if !ok {
		printlnFn("No employee record linked to this account")
		return "", errNoFuncionario
	}
	return id, nil
}

// RegistrarPonto records a punch of the given type for the signed-in
// employee. The timestamp is taken client-side at submission.
func (a *App) RegistrarPonto(ctx context.Context, tipo string) error {
	if !models.ValidTipoRegistro(tipo) {
		printlnFn("Usage: ponto <entrada|saida|pausa_inicio|pausa_fim>")
		return fmt.Errorf("invalid punch type %q", tipo)
	}

	funcID, err := a.requireFuncionario(ctx)
	if err != nil {
		return err
	}

	ponto, err := a.pontos.Registrar(ctx, services.RegistroPonto{
		Funcionario:  funcID,
		TipoRegistro: tipo,
	})
	if err != nil {
		a.reportError(err)
		return err
	}

	printlnFn(fmt.Sprintf("Registered %s at %s", ponto.TipoRegistro,
		ponto.Timestamp.Local().Format("15:04:05")))
	return nil
}

// PontosHoje lists the punches registered today.
func (a *App) PontosHoje(ctx context.Context) error {
	funcID, err := a.requireFuncionario(ctx)
	if err != nil {
		return err
	}

	pontos, err := a.pontos.Hoje(ctx, funcID)
	if err != nil {
		a.reportError(err)
		return err
	}

	if len(pontos) == 0 {
		printlnFn("No punches registered today")
		return nil
	}
	for _, p := range pontos {
		printlnFn(fmt.Sprintf("%s  %-12s  validado=%t",
			p.Timestamp.Local().Format("15:04:05"), p.TipoRegistro, p.Validado))
	}
	return nil
}
