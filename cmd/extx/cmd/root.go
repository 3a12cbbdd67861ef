package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/msto63/extx/core/config"
	mdwlog "github.com/msto63/extx/core/log"
	"github.com/msto63/extx/utils/enumx"
	mdwstringx "github.com/msto63/extx/utils/stringx"
)

var (
	cfgFile     string
	catalogFile string
	verbose     bool

	// appFs backs config, catalog and input files.
	appFs afero.Fs = afero.NewOsFs()
)

// settings holds what the persistent pre-run resolved for the command.
type settings struct {
	separators string
	delimiter  string
	catalog    *enumx.Catalog
	logger     *mdwlog.Logger
}

var current settings

// enumSection is the [enum] table of the config file.
type enumSection struct {
	Separators string `config:"separators"`
	Delimiter  string `config:"delimiter"`
	Catalog    string `config:"catalog"`
}

var configRules = config.ValidationRules{
	"log.level":       {Type: config.TypeString},
	"log.format":      {Type: config.TypeString},
	"enum.separators": {Type: config.TypeString},
	"enum.delimiter":  {Type: config.TypeString, Min: 1},
	"enum.catalog":    {Type: config.TypeString, Pattern: `\.(toml|ya?ml|json)$`},
}

var rootCmd = &cobra.Command{
	Use:   "extx",
	Short: "extx - enum resolution and text utilities",
	Long: `extx resolves enum names and labels to values and back.

Built-in enums (log.level, log.format, config.format, hash.algorithm)
are always available. Further enums come from a catalog file in TOML,
YAML or JSON, given with --catalog or the enum.catalog config key.

Configuration is discovered in ./, ~/.config/extx and /etc/extx and
can be overridden with EXTX_* environment variables:
  EXTX_LOG_LEVEL=debug
  EXTX_ENUM_SEPARATORS=",;"`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printError(rootCmd.ErrOrStderr(), err)
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: discovered extx.toml or config.toml)")
	rootCmd.PersistentFlags().StringVar(&catalogFile, "catalog", "", "enum catalog file (.toml, .yaml, .yml, .json)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func setup(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if err := cfg.Validate(configRules).Err(); err != nil {
		return err
	}
	var section enumSection
	if err := cfg.BindToStruct("enum", &section); err != nil {
		return err
	}

	level := config.GetEnum(cfg, "log.level", mdwlog.LevelWarn)
	if verbose {
		level = mdwlog.LevelDebug
	}
	logger := mdwlog.New().
		WithLevel(level).
		WithFormat(config.GetEnum(cfg, "log.format", mdwlog.FormatConsole)).
		WithOutput(cmd.ErrOrStderr()).
		WithName("extx")
	mdwlog.SetDefault(logger)

	current = settings{
		separators: mdwstringx.FromBlankDefault(section.Separators, enumx.DefaultSeparators),
		delimiter:  mdwstringx.FromDefault(section.Delimiter, enumx.DefaultDelimiter),
		logger:     logger,
	}

	path := mdwstringx.FirstNonBlank(catalogFile, section.Catalog)
	if path == "" {
		return nil
	}
	catalog, err := enumx.LoadCatalog(appFs, path)
	if err != nil {
		return err
	}
	current.catalog = catalog
	return nil
}

func loadConfig() (*config.Config, error) {
	if cfgFile != "" {
		return config.LoadWithOptions(cfgFile, config.LoadOptions{
			Format:    config.FormatAuto,
			EnvPrefix: config.DefaultEnvPrefix,
			Fs:        appFs,
		})
	}
	options := config.DefaultDiscoveryOptions()
	options.Fs = appFs
	return config.Discover(options)
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
