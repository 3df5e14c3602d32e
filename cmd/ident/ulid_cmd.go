package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chaikit/ident/pkg/ulid"
)

var (
	ulidCount     int
	ulidMonotonic bool
	ulidAt        string
)

var ulidCmd = &cobra.Command{
	Use:   "ulid",
	Short: "Generate one or more ULIDs",
	Long: `Generate ULIDs, one per line.

With --monotonic, identifiers come from a single sequencer and are
strictly increasing even within one millisecond. With --at, the timestamp
portion is fixed to the given instant instead of the wall clock.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		ms, fixed, err := parseAt(ulidAt)
		if err != nil {
			return err
		}

		if ulidMonotonic {
			var opts []ulid.MonotonicOption
			if fixed {
				opts = append(opts, ulid.WithClock(func() time.Time {
					return time.UnixMilli(ms)
				}))
			}
			seq := ulid.NewMonotonic(opts...)
			for i := 0; i < ulidCount; i++ {
				id, err := seq.Next()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), id)
			}
			return nil
		}

		for i := 0; i < ulidCount; i++ {
			var (
				id  ulid.ULID
				err error
			)
			if fixed {
				id, err = ulid.At(ms)
			} else {
				id, err = ulid.New()
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
		}
		return nil
	},
}

func init() {
	ulidCmd.Flags().IntVarP(&ulidCount, "count", "n", 1, "number of identifiers to generate")
	ulidCmd.Flags().BoolVar(&ulidMonotonic, "monotonic", false, "guarantee strict ordering within one millisecond")
	ulidCmd.Flags().StringVar(&ulidAt, "at", "", "timestamp override (unix milliseconds or RFC3339)")
	rootCmd.AddCommand(ulidCmd)
}
