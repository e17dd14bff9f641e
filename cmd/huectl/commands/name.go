package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

// newNameCommand creates the name command
func newNameCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "name <id> <new-name>",
		Short: "Name a specific light",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			br, err := bridgeFromCmd(cmd)
			if err != nil {
				return err
			}

			id, name := args[0], args[1]
			if err := br.RenameLight(id, name); err != nil {
				return err
			}

			fmt.Printf("Set light %s name to %q\n", id, name)
			return nil
		},
	}
}
