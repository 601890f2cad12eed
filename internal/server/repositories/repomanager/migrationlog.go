package repomanager

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/dmitrijs2005/storefront/internal/logging"
	"github.com/pressly/goose/v3"
)

// exit is a seam for os.Exit.
var exit = os.Exit

// gooseLogger adapts logging.Logger to goose.Logger.
type gooseLogger struct {
	l logging.Logger
}

func (g gooseLogger) Printf(format string, v ...any) {
	g.l.Info(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
}

func (g gooseLogger) Fatalf(format string, v ...any) {
	g.l.Error(context.Background(), strings.TrimSpace(fmt.Sprintf(format, v...)))
	exit(1)
}

// SetMigrationLogger sends goose output to l instead of the standard logger.
func SetMigrationLogger(l logging.Logger) {
	goose.SetLogger(gooseLogger{l: l.With("module", "migrations")})
}
