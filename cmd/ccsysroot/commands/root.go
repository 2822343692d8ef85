// Package commands implements the CLI commands for ccsysroot.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/ccsysroot/internal/app"
	"go.trai.ch/ccsysroot/internal/build"
	"go.trai.ch/ccsysroot/internal/core/ports"
)

// CLI represents the command line interface for ccsysroot.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Fix(ctx context.Context, opts app.FixOptions) (*app.FixResult, error)
}

// New creates a new CLI instance with the given app and logger.
func New(a Application, log ports.Logger) *CLI {
	c := &CLI{
		app:    a,
		logger: log,
	}

	rootCmd := &cobra.Command{
		Use:   "ccsysroot [flags] <build-dir> <sysroot>",
		Short: "Retarget a CMake compilation database at a cross-compile sysroot",
		Long: "ccsysroot reads compile_commands.json from a CMake build directory, moves every\n" +
			"system include path into the sysroot, appends --sysroot and --gcc-toolchain and\n" +
			"writes the result into the project's source directory.",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runFix,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	// Persistent flags first: the version flag only claims -v while it is free.
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log stage timings and debug details")
	rootCmd.PersistentFlags().Bool("log-json", false, "Log as JSON lines")

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.Flags().String("remap", "", "YAML or TOML file replacing the built-in library remap table")
	rootCmd.Flags().StringArray("keep", nil, "Include path prefix to leave untouched (repeatable, replaces the default)")
	rootCmd.Flags().Bool("dry-run", false, "Print the rewritten database instead of writing it")

	c.rootCmd = rootCmd
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

func (c *CLI) runFix(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logJSON, _ := cmd.Flags().GetBool("log-json")
	remap, _ := cmd.Flags().GetString("remap")
	keep, _ := cmd.Flags().GetStringArray("keep")
	dryRun, _ := cmd.Flags().GetBool("dry-run")

	c.logger.SetJSON(logJSON)
	c.logger.SetVerbose(verbose)

	result, err := c.app.Fix(cmd.Context(), app.FixOptions{
		BuildDir:  args[0],
		Sysroot:   args[1],
		RemapFile: remap,
		Keep:      keep,
		DryRun:    dryRun,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if dryRun {
		c.logger.Info("dry run: " + result.SourceDir + " left untouched")
		_, err = out.Write(result.Output)
		return err
	}

	_, err = fmt.Fprintln(out, result.SourceDir)
	return err
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
