package commands

import (
	"fmt"
	"net"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"huectl/internal/config"
	"huectl/internal/hue"
)

// registerFunc performs the pairing call against the bridge at addr.
type registerFunc func(addr net.IP, clientName string) (string, error)

// newRegisterCommand creates the register command. Registration runs
// before any config is loaded, since no username exists yet.
func newRegisterCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "register",
		Short: "Register a new username with the bridge",
		Long: "Register a new username with the bridge.\n\n" +
			"Press the link button on the bridge shortly before running this\n" +
			"command, then copy the printed username into the config file.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			addr, err := resolveAddress(cmd)
			if err != nil {
				return err
			}

			register := registerFunc(hue.Register)
			if fn, ok := cmd.Context().Value(registerContextKey{}).(registerFunc); ok {
				register = fn
			}

			username, err := register(addr, clientName)
			if err != nil {
				return err
			}

			fmt.Printf("Username: %s\n", username)
			pterm.Info.Printfln("Add it as username = %q to %s", username, config.Path())
			return nil
		},
	}
}
