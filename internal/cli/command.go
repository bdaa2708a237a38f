package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/hunapertium/internal"
	"codeberg.org/snonux/hunapertium/internal/dictionary"
)

// CreateRootCommand creates and configures the root cobra command
func CreateRootCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "hunapertium <input-file> [encoding]",
		Short: "Apertium to hunalign dictionary converter",
		Long: `hunapertium converts an Apertium bilingual dictionary (.dix) into two
hunalign dictionaries, one per translation direction.

The language pair is taken from the file name, which must look like
name.src-tgt.ext. Each output line has the form "target @ source" and
appears only once per file.

Examples:
  hunapertium apertium-en-es.en-es.dix             # hunapertium-en-es.dic and hunapertium-es-en.dic
  hunapertium apertium-en-es.en-es.dix iso-8859-1  # same, encoded as latin1
  hunapertium reverse hunapertium-en-es.dic        # swap the sides of a dictionary`,
		Args:    cobra.RangeArgs(1, 2),
		Version: internal.Version,
	}

	// Set up flags
	setupFlags(rootCmd, flags)

	rootCmd.AddCommand(createReverseCommand(), createBitextorCommand())

	return rootCmd
}

func setupFlags(cmd *cobra.Command, flags *Flags) {
	// Global flags
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.hunapertium.yaml)")

	// Local flags
	cmd.Flags().StringVarP(&flags.OutputDir, "output", "o", flags.OutputDir, "Output directory for the dictionaries")
	cmd.Flags().StringVarP(&flags.Encoding, "encoding", "e", flags.Encoding, "Encoding of the dictionaries (the [encoding] argument takes precedence)")
	cmd.Flags().StringVar(&flags.Prefix, "prefix", flags.Prefix, "File name prefix of the dictionaries")
	cmd.Flags().BoolVar(&flags.Sort, "sort", false, "Write dictionary lines in sorted order instead of input order")
	cmd.Flags().BoolVar(&flags.Archive, "archive", false, "Move existing dictionaries to an archive directory before overwriting them")
	cmd.Flags().BoolVar(&flags.Debug, "debug", false, "Print dropped duplicate lines")

	// Export flags
	cmd.Flags().StringVar(&flags.Database, "db", "", "Also export the pairs to this SQLite database")
	cmd.Flags().StringVar(&flags.AnkiFile, "anki", "", "Also export the pairs to this Anki CSV file")

	// Bind flags to viper
	bindFlagsToViper(cmd)
}

func bindFlagsToViper(cmd *cobra.Command) {
	viper.BindPFlag("output.directory", cmd.Flags().Lookup("output"))
	viper.BindPFlag("output.encoding", cmd.Flags().Lookup("encoding"))
	viper.BindPFlag("output.prefix", cmd.Flags().Lookup("prefix"))
	viper.BindPFlag("output.sort", cmd.Flags().Lookup("sort"))
	viper.BindPFlag("output.archive", cmd.Flags().Lookup("archive"))
	viper.BindPFlag("export.database", cmd.Flags().Lookup("db"))
	viper.BindPFlag("export.anki", cmd.Flags().Lookup("anki"))
	viper.BindPFlag("debug", cmd.Flags().Lookup("debug"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".hunapertium" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".hunapertium")
	}

	// Environment variables, e.g. HUNAPERTIUM_OUTPUT_ENCODING or HUNAPERTIUM_DEBUG
	viper.SetEnvPrefix("HUNAPERTIUM")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

// ApplyConfig copies the values resolved by viper into flags. Flags given
// on the command line win over environment variables, which win over the
// config file.
func ApplyConfig(flags *Flags) {
	flags.OutputDir = viper.GetString("output.directory")
	flags.Encoding = viper.GetString("output.encoding")
	flags.Prefix = viper.GetString("output.prefix")
	flags.Sort = viper.GetBool("output.sort")
	flags.Archive = viper.GetBool("output.archive")
	flags.Database = viper.GetString("export.database")
	flags.AnkiFile = viper.GetString("export.anki")
	flags.Debug = viper.GetBool("debug")
}

func createReverseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "reverse [file]",
		Short: "Swap the sides of a hunalign dictionary",
		Long: `reverse reads "a @ b" lines from file (or stdin) and prints the sorted
"b @ a" lines to stdout.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInput(cmd, args, func(r io.Reader) ([]string, error) {
				return dictionary.Reverse(r, cmd.ErrOrStderr())
			})
		},
	}
}

func createBitextorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "bitextor [file]",
		Short: "Convert a tab separated bitextor dictionary",
		Long: `bitextor reads tab separated lines from file (or stdin) and prints them
sorted, with the tab replaced by " @ ".`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withInput(cmd, args, dictionary.FromBitextor)
		},
	}
}

// withInput runs convert on the file named in args, or stdin, and prints
// the resulting lines.
func withInput(cmd *cobra.Command, args []string, convert func(io.Reader) ([]string, error)) error {
	in := cmd.InOrStdin()
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open dictionary: %w", err)
		}
		defer f.Close()
		in = f
	}

	lines, err := convert(in)
	if err != nil {
		return err
	}

	return dictionary.WriteLines(cmd.OutOrStdout(), lines)
}
