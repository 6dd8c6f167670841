package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/argonia/hashing"
	"github.com/hasbyte1/argonia/internal/config"
)

// app carries the dependencies shared by every subcommand.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
	fs     afero.Fs
}

func (a *app) execute(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	root := a.newRootCmd()
	root.SetArgs(args)
	root.SetIn(stdin)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err != nil && !errors.Is(err, errMismatch) {
		fmt.Fprintf(stderr, "argonia: %v\n", err)
	}
	return exitCode(err)
}

func (a *app) newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "argonia",
		Short:         "Argon2id password hashing",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Long: `argonia hashes and verifies passwords with Argon2id.

Hashes are written in the PHC string format and carry their own parameters:

    $argon2id$v=19$m=19456,t=2,p=1$<salt>$<hash>

Passwords are read from the positional argument, --password-file, or the
first line of standard input.

Exit status:
    0  success (verify: password matches)
    1  verify: password does not match
    2  hash string is malformed or unsupported
    3  any other failure

Environment (also read from .env):
    LOG_LEVEL            debug, info, warn (default), error
    ARGONIA_MEMORY       memory cost in KiB for new hashes (default 19456)
    ARGONIA_TIME         iterations for new hashes (default 2)
    ARGONIA_PARALLELISM  lanes for new hashes (default 1)
    ARGONIA_KEY_LENGTH   derived key bytes for new hashes (default 32)`,
	}

	root.AddCommand(
		a.newHashCmd(),
		a.newVerifyCmd(),
		a.newInfoCmd(),
		a.newNeedsRehashCmd(),
	)
	return root
}

// costFlags binds the cost parameter flags shared by hash and needs-rehash.
type costFlags struct {
	memory      uint32
	time        uint32
	parallelism uint8
	keyLength   uint32
}

func (c *costFlags) register(cmd *cobra.Command, def config.HashingConfig) {
	f := cmd.Flags()
	f.Uint32Var(&c.memory, "memory", def.Memory, "memory cost in KiB")
	f.Uint32Var(&c.time, "time", def.Time, "number of iterations")
	f.Uint8Var(&c.parallelism, "parallelism", def.Parallelism, "degree of parallelism")
	f.Uint32Var(&c.keyLength, "key-length", def.KeyLength, "derived key length in bytes")
}

func (c *costFlags) hasher() (*hashing.Hasher, error) {
	return hashing.NewHasher(hashing.Params{
		Memory:  c.memory,
		Time:    c.time,
		Threads: c.parallelism,
		KeyLen:  c.keyLength,
	})
}
