package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/escalatorhq/escalator-cli/internal/client/models"
)

// weekStart returns the Monday of the week containing t.
func weekStart(t time.Time) time.Time {
	offset := (int(t.Weekday()) + 6) % 7
	return t.AddDate(0, 0, -offset)
}

func formatEscala(e models.Escala) string {
	if e.Descanso {
		return fmt.Sprintf("%s  day off", e.Data)
	}
	return fmt.Sprintf("%s  %s - %s  (pausa %dm)", e.Data, e.HoraInicio, e.HoraFim, e.PausaMinutos)
}

// EscalaHoje prints today's shift, if any.
func (a *App) EscalaHoje(ctx context.Context) error {
	funcID, err := a.requireFuncionario(ctx)
	if err != nil {
		return err
	}

	escala, err := a.escalas.Hoje(ctx, funcID)
	if err != nil {
		a.reportError(err)
		return err
	}

	if escala == nil {
		printlnFn("No shift scheduled for today")
		return nil
	}
	printlnFn(formatEscala(*escala))
	return nil
}

// EscalasSemana prints the shifts for the current week, Monday first.
func (a *App) EscalasSemana(ctx context.Context) error {
	funcID, err := a.requireFuncionario(ctx)
	if err != nil {
		return err
	}

	start := weekStart(time.Now()).Format("2006-01-02")
	escalas, err := a.escalas.Semana(ctx, funcID, start)
	if err != nil {
		a.reportError(err)
		return err
	}

	if len(escalas) == 0 {
		printlnFn("No shifts scheduled this week")
		return nil
	}
	for _, e := range escalas {
		printlnFn(formatEscala(e))
	}
	return nil
}
