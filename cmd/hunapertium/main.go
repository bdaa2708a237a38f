package main

import (
	"os"

	"github.com/spf13/cobra"

	"codeberg.org/snonux/hunapertium/internal/cli"
	"codeberg.org/snonux/hunapertium/internal/processor"
)

func main() {
	// Create flags instance
	flags := cli.NewFlags()

	// Create root command
	rootCmd := cli.CreateRootCommand(flags)

	// Set up command initialization
	cobra.OnInitialize(func() {
		cli.InitConfig(flags.CfgFile)
	})

	// Set the run function
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		return runCommand(cmd, args, flags)
	}

	// Execute command
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCommand(cmd *cobra.Command, args []string, flags *cli.Flags) error {
	// Arguments are valid past this point; don't repeat the usage on failure
	cmd.SilenceUsage = true

	cli.ApplyConfig(flags)

	// The positional encoding overrides flag and config
	if len(args) > 1 {
		flags.Encoding = args[1]
	}

	proc := processor.NewProcessor(flags)
	proc.SetOutput(cmd.OutOrStdout(), cmd.ErrOrStderr())

	if _, err := proc.Convert(args[0]); err != nil {
		return err
	}

	return nil
}
