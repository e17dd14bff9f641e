package commands

import (
	"context"
	"strings"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"huectl/internal/hue"
)

// scanWait is how long the bridge is given to find new lights after a
// search is triggered.
const scanWait = 40 * time.Second

// newScanCommand creates the scan command
func newScanCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "scan",
		Short: "Scan for new lights",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			br, err := bridgeFromCmd(cmd)
			if err != nil {
				return err
			}
			return runScan(cmd.Context(), br, scanWait)
		},
	}
}

// runScan triggers a new-light search, waits for the bridge to finish,
// then reports what was found. The wait aborts when ctx is cancelled.
func runScan(ctx context.Context, br hue.Bridge, wait time.Duration) error {
	if err := br.SearchNewLights(); err != nil {
		return err
	}

	pterm.Info.Printfln("Initiated scan, waiting %s for new lights", wait)
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(wait):
	}

	ids, err := br.NewLights()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		pterm.Info.Println("No new lights found")
		return nil
	}
	pterm.Success.Printfln("Found %d new light(s): %s", len(ids), strings.Join(ids, ","))
	return nil
}
