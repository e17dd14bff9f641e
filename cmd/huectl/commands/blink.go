package commands

import (
	"context"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"huectl/internal/hue"
)

// blinkInterval is the time between on/off toggles.
const blinkInterval = time.Second

// newBlinkCommand creates the blink command
func newBlinkCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "blink <id>",
		Short: "Blink a specific light",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			br, err := bridgeFromCmd(cmd)
			if err != nil {
				return err
			}

			pterm.Info.Printfln("Blinking light %s, interrupt to stop", args[0])
			return runBlink(cmd.Context(), br, args[0], blinkInterval)
		},
	}
}

// runBlink toggles the light's power state every interval until ctx is
// cancelled. The light is left in whatever state the last toggle set.
func runBlink(ctx context.Context, br hue.Bridge, id string, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	on := true
	for {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if err := br.SetLightOn(id, on); err != nil {
			return err
		}
		on = !on

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
