package cmd

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/tally/internal/config"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location, defaults and configured values" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	settingsFile := config.GetSettingsFilePath()
	defaults := config.GetSettingsExample()
	configured := config.GetConfiguredValues(cli.settings)

	if s.Format == "json" {
		return printJSON(map[string]any{
			"configured":    configured,
			"defaults":      defaults,
			"settings_file": settingsFile,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)

	keys := make([]string, 0, len(defaults))
	for key := range defaults {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tDEFAULT\tCONFIGURED")
	for _, key := range keys {
		current := "-"
		if v, ok := configured[key]; ok {
			current = fmt.Sprintf("%v", v)
		}
		fmt.Fprintf(w, "%s\t%v\t%s\n", key, defaults[key], current)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Create or edit this file to configure tally.")
	fmt.Println("Every option can also be set with a TALLY_<NAME> environment variable,")
	fmt.Println("which takes precedence over the file. All settings are optional.")

	return nil
}
