package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn(ctx context.Context) bool
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Status(ctx context.Context) error
	RegistrarPonto(ctx context.Context, tipo string) error
	PontosHoje(ctx context.Context) error
	EscalaHoje(ctx context.Context) error
	EscalasSemana(ctx context.Context) error
	Saldo(ctx context.Context) error
	Extrato(ctx context.Context) error
	Resumo(ctx context.Context) error
}

// runREPL starts a simple read–eval–print loop for the Escalator CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Commands:
//
//	Not logged in:
//	  - help           — show available commands
//	  - login          — authenticate
//	  - exit | quit    — leave the program
//
//	Logged in:
//	  - help           — show available commands
//	  - status         — current session and token expiry
//	  - ponto <tipo>   — register a punch (entrada, saida, pausa_inicio, pausa_fim)
//	  - pontos         — today's punches
//	  - escala         — today's shift
//	  - escalas        — this week's shifts
//	  - saldo          — hour-bank balance
//	  - extrato        — hour-bank statement
//	  - resumo         — today's dashboard
//	  - logout         — log out
//	  - exit | quit    — leave the program
//
// Any errors returned by command handlers are ignored here; handlers log
// their own errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("esc %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn(ctx) {
				printlnFn("Available commands: status, ponto <tipo>, pontos, escala, escalas, saldo, extrato, resumo, logout, exit")
			} else {
				printlnFn("Available commands: login, exit")
			}

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "status":
			_ = a.Status(ctx)

		case "ponto":
			if len(args) == 0 {
				printlnFn("Usage: ponto <entrada|saida|pausa_inicio|pausa_fim>")
				continue
			}
			_ = a.RegistrarPonto(ctx, args[0])

		case "pontos":
			_ = a.PontosHoje(ctx)

		case "escala":
			_ = a.EscalaHoje(ctx)

		case "escalas":
			_ = a.EscalasSemana(ctx)

		case "saldo":
			_ = a.Saldo(ctx)

		case "extrato":
			_ = a.Extrato(ctx)

		case "resumo":
			_ = a.Resumo(ctx)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
