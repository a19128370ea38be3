package main

import (
	"fmt"
	"sort"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/TonnyWong1052/picker/internal/config"
	"github.com/TonnyWong1052/picker/internal/selector"
)

var configCmd = &cobra.Command{
	Use:               "config",
	Short:             "Manage configuration settings",
	PersistentPreRunE: setupLenient,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current configuration and effective key bindings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()

		fmt.Fprint(out, pterm.DefaultSection.Sprintln("Current Configuration"))
		items := []pterm.BulletListItem{
			{Level: 0, Text: fmt.Sprintf("File: %s", path)},
			{Level: 0, Text: "Display"},
			{Level: 1, Text: fmt.Sprintf("Show help: %t", cfg.Display.ShowHelp)},
			{Level: 1, Text: fmt.Sprintf("Cursor marker: %q", cfg.Display.CursorMarker)},
			{Level: 1, Text: fmt.Sprintf("Clear on exit: %t", cfg.Display.ClearOnExit)},
			{Level: 0, Text: "Logging"},
			{Level: 1, Text: fmt.Sprintf("Level: %s", cfg.Logging.Level)},
			{Level: 1, Text: fmt.Sprintf("Format: %s", cfg.Logging.Format)},
			{Level: 1, Text: fmt.Sprintf("Output: %s", cfg.Logging.Output)},
			{Level: 1, Text: fmt.Sprintf("File: %s", cfg.Logging.LogFile)},
		}
		list, err := pterm.DefaultBulletList.WithItems(items).Srender()
		if err != nil {
			return err
		}
		fmt.Fprint(out, list)

		rows, err := bindingRows(cfg)
		if err != nil {
			// Show the raw entries so a broken binding can be found and unbound.
			fmt.Fprint(out, pterm.Warning.Sprintfln("Key bindings are invalid: %v", err))
			rows = configuredRows(cfg)
		}
		fmt.Fprint(out, pterm.DefaultSection.Sprintln("Key Bindings"))
		table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, table)
		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the configuration file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := config.GetConfigPath()
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
		return nil
	},
}

var configBindCmd = &cobra.Command{
	Use:   "bind <one|many> <key> <action>",
	Short: "Bind a key to a built-in action",
	Long: `Bind a key to a built-in action for one mode.

Actions for 'one':  up, down, select, cancel
Actions for 'many': up, down, toggle, finish, cancel
The action 'none' removes the default binding of the key.`,
	Example: `  picker config bind one n down
  picker config bind many x toggle
  picker config bind many space none`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Bind(args[0], args[1], args[2]); err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), pterm.Success.Sprintfln("Bound %s to %s for '%s'", args[1], args[2], args[0]))
		return nil
	},
}

var configUnbindCmd = &cobra.Command{
	Use:   "unbind <one|many> <key>",
	Short: "Drop a configured binding so the default applies again",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		removed, err := cfg.Unbind(args[0], args[1])
		if err != nil {
			return err
		}
		if !removed {
			fmt.Fprint(cmd.OutOrStdout(), pterm.Info.Sprintfln("No configured binding for %s in '%s'", args[1], args[0]))
			return nil
		}
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), pterm.Success.Sprintfln("Removed binding for %s in '%s'", args[1], args[0]))
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configPathCmd, configBindCmd, configUnbindCmd)
}

// bindingRows lists the effective keymaps, defaults plus configuration, as
// table rows with a header.
func bindingRows(c *config.Config) ([][]string, error) {
	rows := [][]string{{"Mode", "Key", "Action"}}

	single := selector.DefaultSingleKeymap[string]()
	if err := config.ApplySingle(single, c.SingleKeys); err != nil {
		return nil, err
	}
	for _, k := range single.Keys() {
		a, _ := single.Lookup(k)
		rows = append(rows, []string{config.ModeOne, string(k), a.Kind().String()})
	}

	multi := selector.DefaultMultiKeymap[string]()
	if err := config.ApplyMulti(multi, c.MultiKeys); err != nil {
		return nil, err
	}
	for _, k := range multi.Keys() {
		a, _ := multi.Lookup(k)
		rows = append(rows, []string{config.ModeMany, string(k), a.Kind().String()})
	}
	return rows, nil
}

// configuredRows lists the bindings as written in the configuration file.
func configuredRows(c *config.Config) [][]string {
	rows := [][]string{{"Mode", "Key", "Action"}}
	for _, section := range []struct {
		mode string
		keys map[string]string
	}{
		{config.ModeOne, c.SingleKeys},
		{config.ModeMany, c.MultiKeys},
	} {
		keys := make([]string, 0, len(section.keys))
		for k := range section.keys {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			rows = append(rows, []string{section.mode, k, section.keys[k]})
		}
	}
	return rows
}
