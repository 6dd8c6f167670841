package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"

	"github.com/hasbyte1/argonia/hashing"
	"github.com/hasbyte1/argonia/internal/config"
	"github.com/hasbyte1/argonia/internal/logging"
)

var version = "dev" // Will be set during build

// Process exit statuses.
const (
	exitOK        = 0
	exitMismatch  = 1
	exitMalformed = 2
	exitFailure   = 3
)

// errMismatch is returned by verify when the hash is well formed but the
// password does not match. It is reported through the exit status only.
var errMismatch = errors.New("password does not match")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(stderr, "argonia: failed to load config: %v\n", err)
		return exitFailure
	}

	logger, err := logging.NewLogger(cfg.Logger)
	if err != nil {
		fmt.Fprintf(stderr, "argonia: failed to init logger: %v\n", err)
		return exitFailure
	}
	defer logger.Sync() //nolint:errcheck

	a := &app{cfg: cfg, logger: logger, fs: afero.NewOsFs()}
	return a.execute(args, stdin, stdout, stderr)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, errMismatch):
		return exitMismatch
	case errors.Is(err, hashing.ErrMalformedHash):
		return exitMalformed
	default:
		return exitFailure
	}
}
