package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errSettingsNotConfigured = errors.New("settings service not configured")

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change stored settings.

Settings live in config.toml under ~/.polycalc (or $POLYCALC_CONFIG_DIR).
Command-line flags override them for a single invocation.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Long: `Change a single setting by its dot-notation key.

Examples:
  polycalc settings set format.precision 2
  polycalc settings set engine.prune_zero true
  polycalc settings set run.output json`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Restore defaults",
	Long: `Remove a stored setting so its default applies again.
With no key, every setting is reset.

Examples:
  polycalc settings reset run.workers
  polycalc settings reset`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSettingsReset,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Format]")
	cmd.Printf("  Precision: %s\n", precisionText(settings.Format.Precision))
	cmd.Println()

	cmd.Println("[Engine]")
	cmd.Printf("  Reorder operands: %s\n", onOff(settings.Engine.Reorder))
	cmd.Printf("  Prune zero terms: %s\n", onOff(settings.Engine.PruneZero))
	cmd.Println()

	cmd.Println("[Run]")
	cmd.Printf("  Workers: %d\n", settings.Run.Workers)
	cmd.Printf("  Output: %s\n", settings.Run.Output.Description())
	cmd.Println()

	cmd.Println("[Watch]")
	cmd.Printf("  Minimum interval: %s\n", settings.Watch.MinInterval)

	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}

	cmd.Printf("%s = %s\n", args[0], args[1])
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	key := ""
	if len(args) == 1 {
		key = args[0]
	}
	if err := settingsService.Reset(key); err != nil {
		return fmt.Errorf("failed to reset settings: %w", err)
	}

	if key == "" {
		cmd.Println("All settings reset to defaults")
	} else {
		cmd.Printf("%s reset to default\n", key)
	}
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	for _, key := range settingsService.Keys() {
		cmd.Println(key)
	}
	return nil
}

func precisionText(p int) string {
	if p < 0 {
		return "shortest round-trip"
	}
	return fmt.Sprintf("%d decimal places", p)
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}
