package main

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chaikit/ident/pkg/ulid"
	"github.com/chaikit/ident/pkg/urn"
)

var inspectJSON bool

// report is the decomposed view of an identifier; App and Entity are
// empty for a bare ULID.
type report struct {
	App         string `json:"app,omitempty"`
	Entity      string `json:"entity,omitempty"`
	ID          string `json:"id"`
	TimestampMS int64  `json:"timestamp_ms"`
	Time        string `json:"time"`
}

var inspectCmd = &cobra.Command{
	Use:   "inspect <identifier>",
	Short: "Decompose a ULID or URN",
	Long: `Decompose an identifier into its components.

A value containing ":" is parsed as a URN, anything else as a bare ULID.
The embedded timestamp is reported in unix milliseconds and RFC3339.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var rep report
		if strings.Contains(args[0], ":") {
			u, err := urn.Parse(args[0])
			if err != nil {
				return err
			}
			rep = report{
				App:         u.App,
				Entity:      u.Entity,
				ID:          u.ID.String(),
				TimestampMS: u.Timestamp(),
				Time:        u.Time().Format(time.RFC3339Nano),
			}
		} else {
			id, err := ulid.Parse(args[0])
			if err != nil {
				return err
			}
			rep = report{
				ID:          id.String(),
				TimestampMS: id.Timestamp(),
				Time:        id.Time().Format(time.RFC3339Nano),
			}
		}

		if inspectJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		}

		w := cmd.OutOrStdout()
		if rep.App != "" {
			fmt.Fprintf(w, "app:       %s\n", rep.App)
			fmt.Fprintf(w, "entity:    %s\n", rep.Entity)
		}
		fmt.Fprintf(w, "id:        %s\n", rep.ID)
		fmt.Fprintf(w, "timestamp: %d\n", rep.TimestampMS)
		fmt.Fprintf(w, "time:      %s\n", rep.Time)
		return nil
	},
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(inspectCmd)
}
