package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

func (a *App) getStatus(ctx context.Context) string {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil || user == nil {
		return ""
	}
	return fmt.Sprintf("(%s)", user.Username)
}

// Root prints the banner and runs the interactive loop until the user exits.
func (a *App) Root(ctx context.Context) {
	fmt.Println("Escalator CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)

	if !a.isLoggedIn(ctx) {
		_ = a.Login(ctx)
	}

	runREPL(ctx, a, func() string { return a.getStatus(ctx) }, scanner)
}
