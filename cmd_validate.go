package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) validateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the content file and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ct, err := a.loadContent()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "content ok: %d features, %d plans, %d legal pages\n",
				len(ct.Features), len(ct.Plans), len(ct.Legal))
			for _, p := range ct.Plans {
				fmt.Fprintf(out, "  %-10s %-6s %s\n", p.Name, p.Price, ct.CheckoutURL(p))
			}
			return nil
		},
	}
}
