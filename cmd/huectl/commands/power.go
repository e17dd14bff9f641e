package commands

import (
	"github.com/spf13/cobra"

	"huectl/internal/hue"
)

// newAllOnCommand creates the all-on command
func newAllOnCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all-on",
		Short: "Turn all lights on",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			br, err := bridgeFromCmd(cmd)
			if err != nil {
				return err
			}
			return setAllLights(br, true)
		},
	}
}

// newAllOffCommand creates the all-off command
func newAllOffCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "all-off",
		Short: "Turn all lights off",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			br, err := bridgeFromCmd(cmd)
			if err != nil {
				return err
			}
			return setAllLights(br, false)
		},
	}
}

// setAllLights sets every light's power state, one blocking call per
// light in ascending ID order. The first failure aborts the remainder;
// lights already set stay set.
func setAllLights(br hue.Bridge, on bool) error {
	lights, err := br.Lights()
	if err != nil {
		return err
	}
	sortLights(lights)

	for _, l := range lights {
		if err := br.SetLightOn(l.ID, on); err != nil {
			return err
		}
	}
	return nil
}
