package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/tiles/internal/application/usecase"
	"github.com/bnema/tiles/internal/cli/styles"
	"github.com/bnema/tiles/internal/infrastructure/config"
)

var (
	configShowFormat  string
	configKeysJSON    bool
	configKeysSection string
	configInitForce   bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `Locate, inspect and initialize the configuration file.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	RunE:  runConfigPath,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Long: `Print the configuration after defaults, file and TILES_* environment
variables are merged.

Examples:
  tiles config show                  # TOML, as in the config file
  tiles config show --format yaml
  TILES_LAYOUT_MODE=tree tiles config show --format json`,
	RunE: runConfigShow,
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the config file",
	RunE:  runConfigSchema,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List all configuration keys",
	Long: `List every configuration key with its type, default value and description.

Examples:
  tiles config keys                    # All keys grouped by section
  tiles config keys --section keys     # Keybindings only
  tiles config keys --json             # Machine-readable listing`,
	RunE: runConfigKeys,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with default values",
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSchemaCmd)
	configCmd.AddCommand(configKeysCmd)
	configCmd.AddCommand(configInitCmd)

	configShowCmd.Flags().StringVar(&configShowFormat, "format", config.FormatTOML, "output format: toml, yaml, json")
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "output as JSON")
	configKeysCmd.Flags().StringVarP(&configKeysSection, "section", "s", "", "only list keys of this section")
	configInitCmd.Flags().BoolVarP(&configInitForce, "force", "f", false, "overwrite an existing file")
}

// resolveConfigFile returns --config or the XDG location.
func resolveConfigFile() (string, error) {
	if configFile != "" {
		return configFile, nil
	}
	return config.GetConfigFile()
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigFile()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), path)
	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	data, err := config.Encode(app.Config, configShowFormat)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if configShowFormat != config.FormatJSON {
		fmt.Fprintf(out, "# %s\n", app.Manager.GetConfigFile())
	}
	_, err = out.Write(data)
	return err
}

func runConfigSchema(cmd *cobra.Command, _ []string) error {
	data, err := config.GenerateSchema()
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	uc := usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider())
	result, err := uc.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return err
	}
	if len(result.Keys) == 0 {
		return fmt.Errorf("unknown section %q", configKeysSection)
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	out := cmd.OutOrStdout()
	if configKeysJSON {
		data, err := renderer.RenderJSON(result.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, data)
		return nil
	}

	fmt.Fprintln(out, renderer.Render(result.Keys, result.Sections))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigFile()
	if err != nil {
		return err
	}

	if _, err := os.Stat(path); err == nil && !configInitForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	} else if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config file: %w", err)
	}

	if err := config.WriteConfig(config.DefaultConfig(), path); err != nil {
		return err
	}

	theme := styles.NewTheme(nil)
	fmt.Fprintln(cmd.OutOrStdout(), theme.Highlight.Render(styles.IconCheck)+" wrote "+path)
	return nil
}
