package cli

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	"github.com/dmitrijs2005/netops/internal/client/client"
	"github.com/dmitrijs2005/netops/internal/client/config"
	"github.com/dmitrijs2005/netops/internal/client/models"
	"github.com/dmitrijs2005/netops/internal/client/services"
	"github.com/dmitrijs2005/netops/internal/logging"
)

type App struct {
	config    *config.Config
	logger    logging.Logger
	container services.StateContainer
	in        io.Reader
	out       io.Writer
}

// NewApp wires the HTTP client and the state container from c. Logs go to
// stderr so they do not interleave with the REPL on stdout.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, err
	}
	logger := logging.New(os.Stderr, level)

	apiClient, err := client.NewHTTPClient(c.ServerBaseURL, client.WithLogger(logger.With("component", "client")))
	if err != nil {
		return nil, err
	}

	container := services.NewStateContainer(ctx, apiClient, logger.With("component", "state"))

	return newApp(c, logger, container, os.Stdin, os.Stdout), nil
}

func newApp(c *config.Config, logger logging.Logger, container services.StateContainer, in io.Reader, out io.Writer) *App {
	return &App{
		config:    c,
		logger:    logger,
		container: container,
		in:        in,
		out:       &lockedWriter{w: out},
	}
}

// Run renders state changes while the REPL reads commands, and returns when
// the user quits or input ends. In-flight requests are awaited and their
// results rendered before Run returns.
func (a *App) Run(ctx context.Context) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	states := a.container.Observe(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		render(states, a.out)
	}()

	a.logger.Info(ctx, "client started", "server", a.config.ServerBaseURL)
	runREPL(a, a.out, bufio.NewScanner(a.in))

	// Close ends the stream only after queued states reach the renderer.
	a.container.Wait()
	a.container.Close()
	wg.Wait()
}

func (a *App) SetFullName(name string) {
	a.container.Dispatch(models.FullNameChanged{Text: name})
}

func (a *App) SetEmail(email string) {
	a.container.Dispatch(models.EmailChanged{Text: email})
}

// SetPassword prompts for the password without echo.
func (a *App) SetPassword() error {
	pw, err := GetPassword(a.out)
	if err != nil {
		return err
	}
	a.container.Dispatch(models.PasswordChanged{Text: pw})
	return nil
}

func (a *App) Register() { a.container.Dispatch(models.RegisterClicked{}) }

func (a *App) Login() { a.container.Dispatch(models.LoginClicked{}) }

func (a *App) Profile() { a.container.Dispatch(models.GetProfileClicked{}) }

func (a *App) State() models.UiState { return a.container.Current() }

// Wait blocks until every request started so far has finished.
func (a *App) Wait() { a.container.Wait() }

// lockedWriter serializes writes from the REPL and the renderer.
type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *lockedWriter) Write(p []byte) (int, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.w.Write(p)
}
