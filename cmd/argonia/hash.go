package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) newHashCmd() *cobra.Command {
	var (
		costs        costFlags
		passwordFile string
	)

	cmd := &cobra.Command{
		Use:   "hash [password]",
		Short: "Hash a password and print the PHC string",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := costs.hasher()
			if err != nil {
				return err
			}
			password, err := a.readPassword(args, passwordFile, cmd.InOrStdin())
			if err != nil {
				return err
			}

			start := time.Now()
			hashed, err := h.Hash(password)
			if err != nil {
				return err
			}
			a.logger.Debug("hashed password",
				zap.Stringer("params", h.Params()),
				zap.Duration("elapsed", time.Since(start)),
			)

			_, err = fmt.Fprintln(cmd.OutOrStdout(), hashed)
			return err
		},
	}

	costs.register(cmd, a.cfg.Hashing)
	cmd.Flags().StringVar(&passwordFile, "password-file", "", "read the password from this file")
	return cmd
}
