// Package automaxprocs sets GOMAXPROCS from the container CPU quota and logs
// the change through the application logger.
package automaxprocs

import (
	"fmt"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"github.com/gaze-network/orc20-indexer/pkg/logger"
	"github.com/gaze-network/orc20-indexer/pkg/logger/slogx"
	"go.uber.org/automaxprocs/maxprocs"
)

// Init adjusts GOMAXPROCS once. An explicit GOMAXPROCS environment variable
// always wins.
func Init() error {
	prev := runtime.GOMAXPROCS(0)
	_, err := maxprocs.Set(maxprocs.Min(1), maxprocs.Logger(func(format string, args ...any) {
		logger.Debug(fmt.Sprintf(format, args...), slogx.String("package", "automaxprocs"))
	}))
	if err != nil {
		return errors.Wrap(err, "can't set GOMAXPROCS")
	}

	_, fromEnv := os.LookupEnv("GOMAXPROCS")
	logger.Info("GOMAXPROCS configured",
		slogx.Int("prev", prev),
		slogx.Int("current", runtime.GOMAXPROCS(0)),
		slogx.Bool("from_env", fromEnv),
	)
	return nil
}
