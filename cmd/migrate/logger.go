package migrate

import (
	"fmt"
	"strings"

	"github.com/gaze-network/orc20-indexer/pkg/logger"
	"github.com/gaze-network/orc20-indexer/pkg/logger/slogx"
	"github.com/golang-migrate/migrate/v4"
)

var _ migrate.Logger = migrateLogger{}

// migrateLogger forwards golang-migrate progress lines to the application logger.
type migrateLogger struct {
	schema  string
	verbose bool
}

func (l migrateLogger) Printf(format string, v ...any) {
	logger.Info(strings.TrimSpace(fmt.Sprintf(format, v...)), slogx.String("schema", l.schema))
}

func (l migrateLogger) Verbose() bool {
	return l.verbose
}
