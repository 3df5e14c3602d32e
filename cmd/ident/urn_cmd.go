package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chaikit/ident/pkg/ulid"
	"github.com/chaikit/ident/pkg/urn"
)

var (
	urnID string
	urnAt string
)

var urnCmd = &cobra.Command{
	Use:   "urn <app> <entity>",
	Short: "Compose an app:entity:ulid identifier",
	Long: `Compose a URN from an app name, an entity name, and a ULID.

Without flags a fresh ULID is generated. Use --id to embed an existing
identifier, or --at to fix the timestamp portion.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		var opts []urn.Option
		if urnID != "" {
			opts = append(opts, urn.WithID(ulid.ULID(urnID)))
		} else {
			ms, fixed, err := parseAt(urnAt)
			if err != nil {
				return err
			}
			if fixed {
				opts = append(opts, urn.WithTimestamp(ms))
			}
		}

		u, err := urn.New(args[0], args[1], opts...)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), u)
		return nil
	},
}

func init() {
	urnCmd.Flags().StringVar(&urnID, "id", "", "embed an existing ULID instead of generating one")
	urnCmd.Flags().StringVar(&urnAt, "at", "", "timestamp override (unix milliseconds or RFC3339)")
	rootCmd.AddCommand(urnCmd)
}
