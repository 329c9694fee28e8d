// Package cli provides the interactive Escalator command-line client.
//
// It wires configuration, the local credential database, the API client,
// and an interactive REPL for day-to-day time tracking. Typical flow:
// log in once, then punch the clock and inspect schedules and the hour
// bank from the prompt.
//
// Key features:
//   - Login / Logout / session status
//   - Clock punches: entrada, saida, pausa_inicio, pausa_fim
//   - Today's schedule and the current week
//   - Hour-bank balance and statement
//
// The REPL is started via App.Root(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
