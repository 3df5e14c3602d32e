package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

// rootCmd is the base command; called without a subcommand it prints help.
var rootCmd = &cobra.Command{
	Use:   "ident",
	Short: "ident generates and inspects sortable identifiers",
	Long: `ident generates and inspects time-sortable identifiers.

A ULID is a 26-character Crockford Base32 string encoding a millisecond
timestamp and a random payload; identifiers sort lexicographically by
creation time. A URN scopes a ULID within an application and entity
namespace as "app:entity:ulid".`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// parseAt interprets a --at flag value as unix milliseconds or RFC3339.
// An empty value reports ok=false, meaning the wall clock applies.
func parseAt(s string) (ms int64, ok bool, err error) {
	if s == "" {
		return 0, false, nil
	}
	if v, perr := strconv.ParseInt(s, 10, 64); perr == nil {
		return v, true, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return 0, false, fmt.Errorf("invalid --at value %q: expected unix milliseconds or RFC3339", s)
	}
	return t.UnixMilli(), true, nil
}
