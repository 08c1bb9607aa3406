// Package app runs the interactive client loop: it parses user commands and
// drives the session service, generation orchestrator, and render engine.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"fridgechef/internal/core/generate"
	"fridgechef/internal/core/render"
	"fridgechef/internal/core/session"
	"fridgechef/internal/core/transport"
	"fridgechef/internal/infrastructure/config"
	"fridgechef/internal/pkg/common"
	"fridgechef/internal/ui/term"

	"go.uber.org/zap"
)

// App wires the client components and owns the command loop.
type App struct {
	cfg      *config.Config
	ui       *term.UI
	engine   *render.Engine
	sessions *session.Service
	orch     *generate.Orchestrator

	reader *bufio.Reader
	out    io.Writer

	filters generate.Filters
	notes   string
}

// New builds a fully wired client app reading from in and writing to out.
func New(cfg *config.Config, in io.Reader, out io.Writer) *App {
	reader := bufio.NewReader(in)

	ui := term.New(reader, out)
	engine := render.NewEngine(ui)
	caller := transport.New(cfg.Client.BaseURL)
	sessions := session.NewService(caller, ui)
	orch := generate.NewOrchestrator(caller, engine, ui, sessions, cfg.Client.PlaceholderCards)

	return &App{
		cfg:      cfg,
		ui:       ui,
		engine:   engine,
		sessions: sessions,
		orch:     orch,
		reader:   reader,
		out:      out,
	}
}

// Run reconciles the initial session state and processes commands until EOF
// or quit.
func (a *App) Run(ctx context.Context) error {
	fmt.Fprintln(a.out, "fridgechef — what's in your fridge?  (type 'help' for commands)")
	a.sessions.Refresh(ctx)

	for {
		fmt.Fprint(a.out, "fridgechef> ")
		line, err := a.reader.ReadString('\n')
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		cmd, rest := splitCommand(line)
		if cmd == "quit" || cmd == "exit" {
			return nil
		}
		a.dispatch(ctx, cmd, rest)
	}
}

func splitCommand(line string) (string, string) {
	parts := strings.SplitN(line, " ", 2)
	cmd := strings.ToLower(parts[0])
	rest := ""
	if len(parts) == 2 {
		rest = strings.TrimSpace(parts[1])
	}
	return cmd, rest
}

func (a *App) dispatch(ctx context.Context, cmd, rest string) {
	switch cmd {
	case "help":
		a.printHelp()

	case "login":
		a.auth(ctx, rest, a.sessions.Login, "login failed")

	case "signup":
		a.auth(ctx, rest, a.sessions.Signup, "signup failed")

	case "logout":
		if err := a.sessions.Logout(ctx); err != nil {
			a.ui.ShowError(err.Error())
		}

	case "me":
		a.sessions.Refresh(ctx)

	case "find":
		a.orch.Generate(ctx, rest, a.notes, a.filters, a.cfg.Client.RecipeLimit)

	case "notes":
		a.notes = rest
		fmt.Fprintf(a.out, "notes set: %q\n", a.notes)

	case "veg", "vegan", "gf", "df":
		a.toggleFilter(cmd)

	case "toggle":
		n, err := strconv.Atoi(rest)
		if err != nil {
			a.ui.ShowValidation("usage: toggle <card number>")
			return
		}
		if err := a.engine.Toggle(n - 1); err != nil {
			a.ui.ShowValidation(err.Error())
		}

	case "save":
		path := rest
		if path == "" {
			path = a.cfg.Client.ExportPath
		}
		a.save(path)

	default:
		a.ui.ShowValidation(fmt.Sprintf("unknown command %q, try 'help'", cmd))
	}
}

func (a *App) auth(ctx context.Context, rest string, fn func(context.Context, string, string) error, failMsg string) {
	fields := strings.Fields(rest)
	if len(fields) != 2 {
		a.ui.ShowValidation("usage: <command> <username> <password>")
		return
	}
	if err := fn(ctx, common.NormalizeUsername(fields[0]), fields[1]); err != nil {
		common.LogWarn(failMsg, zap.Error(err))
		a.ui.ShowError(err.Error())
	}
}

func (a *App) toggleFilter(name string) {
	switch name {
	case "veg":
		a.filters.Vegetarian = !a.filters.Vegetarian
	case "vegan":
		a.filters.Vegan = !a.filters.Vegan
	case "gf":
		a.filters.GlutenFree = !a.filters.GlutenFree
	case "df":
		a.filters.DairyFree = !a.filters.DairyFree
	}
	fmt.Fprintf(a.out, "filters: vegetarian=%t vegan=%t gluten_free=%t dairy_free=%t\n",
		a.filters.Vegetarian, a.filters.Vegan, a.filters.GlutenFree, a.filters.DairyFree)
}

func (a *App) save(path string) {
	cards := a.engine.Cards()
	if len(cards) == 0 {
		a.ui.ShowValidation("nothing to save yet, run 'find' first")
		return
	}
	if err := os.WriteFile(path, []byte(render.Document(cards)), 0644); err != nil {
		a.ui.ShowError(fmt.Sprintf("save failed: %v", err))
		return
	}
	fmt.Fprintf(a.out, "saved %d cards to %s\n", len(cards), path)
}

func (a *App) printHelp() {
	fmt.Fprint(a.out, `commands:
  find <ingredients>      generate recipes from a comma-separated list
  notes <text>            extra instructions sent with the next find
  veg | vegan | gf | df   toggle dietary filters
  toggle <n>              show/hide the steps of card n
  save [path]             export the current cards as an HTML page
  login <user> <pass>     sign in
  signup <user> <pass>    create an account and sign in
  logout                  sign out
  me                      refresh the usage display
  quit                    leave
`)
}
