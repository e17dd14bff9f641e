package commands

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// newListCommand creates the list command
func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all known lights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			br, err := bridgeFromCmd(cmd)
			if err != nil {
				return err
			}

			lights, err := br.Lights()
			if err != nil {
				return err
			}
			sortLights(lights)

			table := pterm.TableData{{"id", "name", "reachable", "on"}}
			for _, l := range lights {
				table = append(table, []string{l.ID, l.Name, boolLabel(l.Reachable), onLabel(l.On)})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(table).Render()
		},
	}
}
