// Package cli is the interactive console for the visitdesk admin core. It is
// a thin shell over the services layer: every command reads input, calls one
// service operation and prints the result.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"time"

	"github.com/visitdesk/visitdesk/internal/api"
	"github.com/visitdesk/visitdesk/internal/audit"
	"github.com/visitdesk/visitdesk/internal/config"
	"github.com/visitdesk/visitdesk/internal/kvstore"
	"github.com/visitdesk/visitdesk/internal/logging"
	"github.com/visitdesk/visitdesk/internal/models"
	"github.com/visitdesk/visitdesk/internal/services"
	"github.com/visitdesk/visitdesk/internal/token"

	_ "modernc.org/sqlite"
)

type App struct {
	config      *config.Config
	authService services.AuthService
	sectors     *services.SectorService
	departments *services.DepartmentService
	visitors    *services.VisitorService
	visits      *services.VisitService
	audit       *audit.Logger
	log         logging.Logger
	reader      *bufio.Reader
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	db, err := kvstore.OpenDatabase(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("init database: %w", err)
	}

	store := kvstore.NewStore(kvstore.NewSQLiteRepository(db), log)

	codec, err := token.NewCodec(cfg.TokenKey)
	if err != nil {
		return nil, err
	}

	auditLog := audit.New(store, log, audit.ClientInfo{
		UserAgent: "visitdesk-cli",
		IP:        "127.0.0.1",
	})

	apiClient := api.NewMockClient(cfg.MockLatency)
	auth := services.NewAuthService(apiClient, store, auditLog, codec, cfg.SessionTTL, log)

	return &App{
		config:      cfg,
		authService: auth,
		sectors:     services.NewSectorService(store, auth),
		departments: services.NewDepartmentService(store, auth),
		visitors:    services.NewVisitorService(store, auth),
		visits:      services.NewVisitService(store, auth),
		audit:       auditLog,
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
	}, nil
}

func (a *App) Run(ctx context.Context) {
	if user, err := a.authService.Restore(ctx); err == nil {
		printlnFn("Session restored for", user.Email)
	}
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	_, ok := a.authService.CurrentUser()
	return ok
}

func (a *App) getStatus() string {
	user, ok := a.authService.CurrentUser()
	if !ok {
		return ""
	}
	return fmt.Sprintf("(%s %s)", user.Email, user.Role)
}

func (a *App) currentUser() models.User {
	user, _ := a.authService.CurrentUser()
	return user
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Local().Format("2006-01-02 15:04")
}
