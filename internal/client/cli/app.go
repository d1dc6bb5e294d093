// Package cli is the interactive console over the store and services:
// the "view" layer. It owns no server state of its own; everything it
// prints is read from store snapshots.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rohitpatil05/finlens/internal/client/api"
	"github.com/rohitpatil05/finlens/internal/client/config"
	"github.com/rohitpatil05/finlens/internal/client/guard"
	"github.com/rohitpatil05/finlens/internal/client/models"
	"github.com/rohitpatil05/finlens/internal/client/services"
	"github.com/rohitpatil05/finlens/internal/client/store"
	"github.com/rohitpatil05/finlens/internal/logging"
)

// command is one console verb. Route ties the command to the view it
// belongs to; the guard decides on every invocation, exactly like a
// browser navigation would.
type command struct {
	name  string
	usage string
	help  string
	route string
	run   func(ctx context.Context, args []string) error
}

type App struct {
	config *config.Config
	store  *store.Store

	auth      *services.Auth
	clients   *services.Clients
	documents *services.Documents
	analysis  *services.Analysis

	reader   *bufio.Reader
	out      io.Writer
	log      logging.Logger
	commands map[string]command
	order    []string
}

// NewApp wires the whole client: session file, store, HTTP client
// (token source and unauthorized hook injected after store
// construction) and the services.
func NewApp(cfg *config.Config, log logging.Logger) *App {
	session := store.NewSessionFile(cfg.SessionFile)
	st := store.New(session, log)

	apiClient := api.New(cfg.BaseURL, cfg.RequestTimeout, log)
	apiClient.SetTokenSource(st)

	authSvc := services.NewAuth(apiClient, st, log)
	apiClient.SetUnauthorizedHook(func() {
		authSvc.ForceLogout("Your session has expired. Please log in again.")
	})

	a := &App{
		config:    cfg,
		store:     st,
		auth:      authSvc,
		clients:   services.NewClients(apiClient, st, cfg.ListCacheTTL, log),
		documents: services.NewDocuments(apiClient, st, log),
		analysis:  services.NewAnalysis(apiClient, st, log),
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
		log:       log,
	}
	a.registerCommands()
	return a
}

// Run starts the console loop. It returns on EOF or an exit command.
func (a *App) Run(ctx context.Context) {
	fmt.Fprintln(a.out, "FinLens console (type 'help' for commands)")
	if a.isLoggedIn() {
		snap := a.store.Snapshot()
		fmt.Fprintf(a.out, "Restored session for %s\n", snap.Auth.User.Username)
	}
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, scanner)
}

func (a *App) isLoggedIn() bool {
	return a.store.Snapshot().Auth.IsAuthenticated
}

func (a *App) prompt() string {
	snap := a.store.Snapshot()
	if !snap.Auth.IsAuthenticated {
		return "finlens > "
	}
	return fmt.Sprintf("finlens (%s/%s) > ", snap.Auth.User.Username, snap.Auth.User.Role)
}

// execute looks a command up, runs it through the guard and then the
// handler. Handler errors are printed, not propagated: the loop stays up.
func (a *App) execute(ctx context.Context, name string, args []string) {
	cmd, ok := a.commands[name]
	if !ok {
		fmt.Fprintln(a.out, "Unknown command:", name)
		return
	}

	if msg, ok := a.checkAccess(cmd); !ok {
		fmt.Fprintln(a.out, msg)
		return
	}

	if err := cmd.run(ctx, args); err != nil {
		fmt.Fprintf(a.out, "error: %v\n", err)
	}
	a.showNotification()
}

// checkAccess runs the route guard for the command's view. Evaluated
// fresh on every command; nothing is cached.
func (a *App) checkAccess(cmd command) (string, bool) {
	if cmd.route == "" {
		return "", true
	}
	route, ok := guard.Find(cmd.route)
	if !ok {
		return "", true
	}

	snap := a.store.Snapshot()
	var role models.Role
	if snap.Auth.User != nil {
		role = snap.Auth.User.Role
	}

	switch guard.Evaluate(snap.Auth.IsAuthenticated, role, route) {
	case guard.RedirectLogin:
		return "Please log in first ('login').", false
	case guard.RedirectHome:
		return fmt.Sprintf("Not available for your role; try %s instead.", guard.Home(role)), false
	default:
		return "", true
	}
}

// showNotification drains the single global banner, if one is active.
func (a *App) showNotification() {
	snap := a.store.Snapshot()
	if n := snap.UI.Notification; n != nil {
		fmt.Fprintf(a.out, "[%s] %s\n", n.Severity, n.Message)
		a.store.ClearNotification()
	}
}

// helpText lists public commands when logged out and protected ones
// when logged in, mirroring the two help menus of the original console.
func (a *App) helpText() string {
	loggedIn := a.isLoggedIn()
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, name := range a.order {
		cmd := a.commands[name]
		if loggedIn == routeIsPublic(cmd.route) {
			continue
		}
		fmt.Fprintf(&b, "  %-28s %s\n", cmd.usage, cmd.help)
	}
	b.WriteString("  exit | quit                  leave the console")
	return b.String()
}

func routeIsPublic(path string) bool {
	r, ok := guard.Find(path)
	return ok && r.Public
}

func (a *App) register(cmd command) {
	a.commands[cmd.name] = cmd
	a.order = append(a.order, cmd.name)
}

func (a *App) registerCommands() {
	a.commands = make(map[string]command)

	a.register(command{name: "login", usage: "login", help: "authenticate", route: "/login", run: a.cmdLogin})
	a.register(command{name: "register", usage: "register", help: "create an account", route: "/register", run: a.cmdRegister})
	a.register(command{name: "reset", usage: "reset", help: "request a password reset", route: "/forgot-password", run: a.cmdResetPassword})
	a.register(command{name: "whoami", usage: "whoami", help: "show the current session", route: "/profile", run: a.cmdWhoami})
	a.register(command{name: "logout", usage: "logout", help: "log out", route: "/profile", run: a.cmdLogout})

	a.register(command{name: "clients", usage: "clients", help: "list clients", route: "/ca/clients", run: a.cmdClients})
	a.register(command{name: "client", usage: "client <id>", help: "show one client", route: "/ca/clients", run: a.cmdClient})
	a.register(command{name: "addclient", usage: "addclient", help: "create a client", route: "/ca/clients", run: a.cmdAddClient})
	a.register(command{name: "editclient", usage: "editclient <id>", help: "update a client", route: "/ca/clients", run: a.cmdEditClient})
	a.register(command{name: "delclient", usage: "delclient <id>", help: "delete a client", route: "/ca/clients", run: a.cmdDeleteClient})
	a.register(command{name: "clientdocs", usage: "clientdocs <id>", help: "list a client's documents", route: "/ca/clients", run: a.cmdClientDocs})

	a.register(command{name: "docs", usage: "docs", help: "list documents", route: "/ca/documents", run: a.cmdDocuments})
	a.register(command{name: "doc", usage: "doc <id>", help: "show one document", route: "/ca/documents", run: a.cmdDocument})
	a.register(command{name: "upload", usage: "upload <file> [title]", help: "upload a document", route: "/ca/documents", run: a.cmdUpload})
	a.register(command{name: "process", usage: "process <id>", help: "run backend analysis", route: "/workspace/client-analysis", run: a.cmdProcess})
	a.register(command{name: "deldoc", usage: "deldoc <id>", help: "delete a document", route: "/ca/documents", run: a.cmdDeleteDocument})
	a.register(command{name: "docstatus", usage: "docstatus <id>", help: "poll processing status", route: "/ca/documents", run: a.cmdDocStatus})

	a.register(command{name: "analysis", usage: "analysis <id>", help: "full analysis results", route: "/workspace/client-analysis", run: a.cmdAnalysis})
	a.register(command{name: "cibil", usage: "cibil <id>", help: "credit score", route: "/workspace/client-analysis", run: a.cmdCibil})
	a.register(command{name: "summary", usage: "summary <id>", help: "document summary", route: "/workspace/client-analysis", run: a.cmdSummary})
	a.register(command{name: "tables", usage: "tables <id>", help: "extracted tables", route: "/workspace/client-analysis", run: a.cmdTables})
	a.register(command{name: "ocr", usage: "ocr <id>", help: "recognized text", route: "/workspace/client-analysis", run: a.cmdOCR})
	a.register(command{name: "bank", usage: "bank <id>", help: "bank statement breakdown", route: "/workspace/client-analysis", run: a.cmdBankStatement})
	a.register(command{name: "chat", usage: "chat <id> <question>", help: "ask about a document", route: "/workspace/client-analysis", run: a.cmdChat})
	a.register(command{name: "report", usage: "report <id> [format]", help: "download the report", route: "/workspace/client-analysis", run: a.cmdReport})

	a.register(command{name: "stats", usage: "stats", help: "store statistics", route: "/admin/stats", run: a.cmdStats})
}
