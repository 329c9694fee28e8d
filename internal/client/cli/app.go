package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"

	"github.com/escalatorhq/escalator-cli/internal/client/api"
	"github.com/escalatorhq/escalator-cli/internal/client/config"
	"github.com/escalatorhq/escalator-cli/internal/client/credentials"
	"github.com/escalatorhq/escalator-cli/internal/client/services"
	"github.com/escalatorhq/escalator-cli/internal/logging"

	_ "modernc.org/sqlite"
)

// App ties the configuration, local credential storage, and API services
// together behind the interactive prompt.
type App struct {
	config *config.Config
	db     *sql.DB
	log    logging.Logger

	auth      *services.AuthService
	escalas   *services.EscalasService
	pontos    *services.PontosService
	banco     *services.BancoHorasService
	dashboard *services.DashboardService

	reader *bufio.Reader
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := credentials.OpenDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing credential database", "error", err)
		return nil, err
	}

	store := credentials.NewSQLiteStore(db)
	apiClient := api.New(c.APIBaseURL, store,
		api.WithTimeout(c.RequestTimeout),
		api.WithLogger(log),
	)

	return &App{
		config:    c,
		db:        db,
		log:       log,
		auth:      services.NewAuthService(apiClient),
		escalas:   services.NewEscalasService(apiClient),
		pontos:    services.NewPontosService(apiClient, store, log),
		banco:     services.NewBancoHorasService(apiClient),
		dashboard: services.NewDashboardService(apiClient),
		reader:    bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	a.Root(ctx)
}

func (a *App) isLoggedIn(ctx context.Context) bool {
	return a.auth.IsAuthenticated(ctx)
}

// funcionarioID resolves the employee record bound to the signed-in user.
func (a *App) funcionarioID(ctx context.Context) (string, bool) {
	user, err := a.auth.CurrentUser(ctx)
	if err != nil || user == nil || user.Funcionario == nil {
		return "", false
	}
	return user.Funcionario.ID, true
}
