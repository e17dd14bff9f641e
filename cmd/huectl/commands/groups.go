package commands

import (
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// newListGroupsCommand creates the list-groups command
func newListGroupsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list-groups",
		Short: "List all known groups",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			br, err := bridgeFromCmd(cmd)
			if err != nil {
				return err
			}

			groups, err := br.Groups()
			if err != nil {
				return err
			}
			sortGroups(groups)

			table := pterm.TableData{{"id", "name", "lights"}}
			for _, g := range groups {
				table = append(table, []string{g.ID, g.Name, strings.Join(g.Lights, ",")})
			}
			return pterm.DefaultTable.WithHasHeader().WithData(table).Render()
		},
	}
}
