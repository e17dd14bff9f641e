package commands

import (
	"context"
	"fmt"
	"log/slog"
	"net"

	"github.com/spf13/cobra"

	"huectl/internal/config"
	"huectl/internal/hue"
	"huectl/internal/utils"
)

// clientName is the device type sent to the bridge during registration.
const clientName = "huectl"

// NewRootCommand creates the root command
func NewRootCommand(logger *slog.Logger, version, commit, buildDate string) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "huectl",
		Short:        "Control Philips Hue lights",
		SilenceUsage: true,
	}

	// Add global flags
	cmd.PersistentFlags().String("ip", "", "Bridge IP address (searches the network when empty)")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().String("log-format", "text", "Log format (text, json)")

	cmd.PersistentPreRun = func(c *cobra.Command, args []string) {
		level, _ := c.Flags().GetString("log-level")
		format, _ := c.Flags().GetString("log-format")
		logger := utils.SetupLogger(level, format)
		utils.SetAsDefaultLogger(logger)
		c.SetContext(context.WithValue(c.Context(), loggerContextKey{}, logger))
	}

	// Add commands
	cmd.AddCommand(
		newRegisterCommand(),
		newScanCommand(),
		newListCommand(),
		newListGroupsCommand(),
		newBlinkCommand(),
		newNameCommand(),
		newAllOnCommand(),
		newAllOffCommand(),
		newVersionCommand(version, commit, buildDate),
	)

	if logger != nil {
		parent := cmd.Context()
		if parent == nil {
			parent = context.Background()
		}
		cmd.SetContext(context.WithValue(parent, loggerContextKey{}, logger))
	}

	return cmd
}

// newVersionCommand creates the version command
func newVersionCommand(version, commit, buildDate string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("Version:    %s\n", version)
			fmt.Printf("Commit:     %s\n", commit)
			fmt.Printf("Build Date: %s\n", buildDate)
		},
	}
}

// bridgeFromCmd returns the bridge session for the command. Tests inject
// a stub through the context; otherwise the session is built from the
// config file and the resolved bridge address.
func bridgeFromCmd(cmd *cobra.Command) (hue.Bridge, error) {
	if br, ok := cmd.Context().Value(bridgeContextKey{}).(hue.Bridge); ok {
		return br, nil
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	addr, err := resolveAddress(cmd)
	if err != nil {
		return nil, err
	}

	return hue.NewSession(addr, cfg.Username), nil
}

// resolveAddress resolves the bridge address from the --ip flag or, when
// unset, from network discovery.
func resolveAddress(cmd *cobra.Command) (net.IP, error) {
	explicit, _ := cmd.Flags().GetString("ip")
	addr, err := hue.Locate(cmd.Context(), explicit, hue.Discover)
	if err != nil {
		return nil, err
	}
	getLoggerFromCmd(cmd).Debug("resolved bridge address", "address", addr.String())
	return addr, nil
}
