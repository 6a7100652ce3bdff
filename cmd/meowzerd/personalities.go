package main

import (
	"fmt"
	"os"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/KyleBlankRollins/meowzer-sub000/personality"
)

func newPersonalitiesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "personalities",
		Short: "List the built-in personality presets and their trait vectors",
		RunE: func(cmd *cobra.Command, args []string) error {
			table := tablewriter.NewWriter(os.Stdout)
			table.SetHeader([]string{"Name", "Energy", "Curiosity", "Playfulness", "Independence", "Sociability"})
			for _, name := range personality.ListPresets() {
				p, _ := personality.GetPreset(name)
				table.Append([]string{
					string(name),
					fmt.Sprintf("%.1f", p.Energy),
					fmt.Sprintf("%.1f", p.Curiosity),
					fmt.Sprintf("%.1f", p.Playfulness),
					fmt.Sprintf("%.1f", p.Independence),
					fmt.Sprintf("%.1f", p.Sociability),
				})
			}
			table.Render()
			return nil
		},
	}
}
