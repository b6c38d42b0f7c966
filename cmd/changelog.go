package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/clinicadigital/omnidesk/internal/changelog"
)

var changelogSince string

var changelogCmd = &cobra.Command{
	Use:   "changelog",
	Short: "Show release notes",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		writeChangelog(cmd.OutOrStdout(), changelog.Since(changelogSince, changelog.Entries()))
	},
}

func init() {
	changelogCmd.Flags().StringVar(&changelogSince, "since", "", "Only show releases newer than this version")
	rootCmd.AddCommand(changelogCmd)
}

func writeChangelog(w io.Writer, entries []changelog.Entry) {
	if len(entries) == 0 {
		fmt.Fprintln(w, "No new releases.")
		return
	}
	for i, e := range entries {
		if i > 0 {
			fmt.Fprintln(w)
		}
		if e.Date != "" {
			fmt.Fprintf(w, "v%s (%s)\n", e.Version, e.Date)
		} else {
			fmt.Fprintf(w, "v%s\n", e.Version)
		}
		for _, c := range e.Changes {
			fmt.Fprintf(w, "  - %s\n", c)
		}
	}
}
