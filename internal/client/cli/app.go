package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/dmitrijs2005/storefront/internal/client/client"
	"github.com/dmitrijs2005/storefront/internal/client/config"
	"github.com/dmitrijs2005/storefront/internal/client/services"
)

type App struct {
	config   *config.Config
	auth     services.AuthService
	products services.ProductService
	reader   *bufio.Reader
	out      io.Writer
	email    string
}

func NewApp(c *config.Config) (*App, error) {
	apiClient, err := client.NewHTTPClient(c.ServerURL, c.RequestTimeout)
	if err != nil {
		return nil, err
	}

	return &App{
		config:   c,
		auth:     services.NewAuthService(apiClient),
		products: services.NewProductService(apiClient),
		reader:   bufio.NewReader(os.Stdin),
		out:      os.Stdout,
	}, nil
}

func (a *App) isLoggedIn() bool {
	return a.email != ""
}

func (a *App) status() string {
	if a.email == "" {
		return "guest"
	}
	return a.email
}

// Run executes args as a single command, or starts the REPL when args is empty.
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) > 0 {
		return a.Exec(ctx, args[0])
	}

	fmt.Fprintf(a.out, "Storefront CLI, server %s (type 'help' for commands)\n", a.config.ServerURL)
	if err := a.auth.Ping(ctx); err != nil {
		log.Printf("Server unavailable: %v", err)
	}

	runREPL(ctx, a, a.status, a.reader, a.out)
	return nil
}

// Exec runs one command by name.
func (a *App) Exec(ctx context.Context, cmd string) error {
	h, ok := commandFor(a, cmd)
	if !ok {
		return fmt.Errorf("unknown command: %s", cmd)
	}
	return h(ctx)
}
