package iacguard

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/iacguard/iacguard/internal/rules"
)

func init() {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "List the built-in rule catalog",
		Run: func(cmd *cobra.Command, _ []string) {
			reg := rules.NewRegistry()
			for _, id := range reg.IDs() {
				m := reg.Lookup(id)
				fmt.Fprintf(os.Stdout, "%-10s %-24s %s\n", m.Severity, m.ID, m.Title)
			}
		},
	}
	rootCmd.AddCommand(cmd)
}
