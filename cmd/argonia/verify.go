package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/hasbyte1/argonia/hashing"
)

func (a *app) newVerifyCmd() *cobra.Command {
	var hashFile, passwordFile string

	cmd := &cobra.Command{
		Use:   "verify <hash> [password]",
		Short: "Check a password against a PHC string",
		Long: `Check a password against a PHC string and print true or false.

The exit status is 0 on a match, 1 on a mismatch and 2 when the hash
cannot be parsed. The cost parameters are always taken from the hash.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hashed, rest, err := a.resolveHash(args, hashFile)
			if err != nil {
				return err
			}
			password, err := a.readPassword(rest, passwordFile, cmd.InOrStdin())
			if err != nil {
				return err
			}

			start := time.Now()
			ok, err := hashing.Verify(hashed, password)
			if err != nil {
				if errors.Is(err, hashing.ErrMalformedHash) {
					a.logger.Warn("rejected malformed hash")
				}
				return err
			}
			a.logger.Debug("verified password",
				zap.Bool("match", ok),
				zap.Duration("elapsed", time.Since(start)),
			)

			if _, err := fmt.Fprintln(cmd.OutOrStdout(), ok); err != nil {
				return err
			}
			if !ok {
				return errMismatch
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&hashFile, "hash-file", "", "read the hash from this file")
	cmd.Flags().StringVar(&passwordFile, "password-file", "", "read the password from this file")
	return cmd
}
