package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hasbyte1/argonia/hashing"
)

func (a *app) newInfoCmd() *cobra.Command {
	var hashFile string

	cmd := &cobra.Command{
		Use:   "info <hash>",
		Short: "Print the parameters embedded in a PHC string as JSON",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hashed, rest, err := a.resolveHash(args, hashFile)
			if err != nil {
				return err
			}
			if len(rest) > 0 {
				return fmt.Errorf("%w: hash given both as argument and --hash-file", errUsage)
			}

			info, err := hashing.Info(hashed)
			if err != nil {
				return err
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(info)
		},
	}

	cmd.Flags().StringVar(&hashFile, "hash-file", "", "read the hash from this file")
	return cmd
}

func (a *app) newNeedsRehashCmd() *cobra.Command {
	var (
		costs    costFlags
		hashFile string
	)

	cmd := &cobra.Command{
		Use:   "needs-rehash <hash>",
		Short: "Report whether a hash was made with different cost parameters",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := costs.hasher()
			if err != nil {
				return err
			}
			hashed, rest, err := a.resolveHash(args, hashFile)
			if err != nil {
				return err
			}
			if len(rest) > 0 {
				return fmt.Errorf("%w: hash given both as argument and --hash-file", errUsage)
			}

			needs, err := h.NeedsRehash(hashed)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), needs)
			return err
		},
	}

	costs.register(cmd, a.cfg.Hashing)
	cmd.Flags().StringVar(&hashFile, "hash-file", "", "read the hash from this file")
	return cmd
}
