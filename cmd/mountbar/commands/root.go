// Package commands implements the CLI commands for mountbar.
package commands

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/mountbar/internal/build"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/ui/output"
	"go.trai.ch/zerr"
)

// CLI represents the command line interface for mountbar.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	in      io.Reader
	out     *output.Printer
	logHook func(jsonMode, debug bool)
	// detectJSON reports whether output to w should be JSON under the
	// --output flag value.
	detectJSON func(w io.Writer, mode string) bool
}

// Application represents the application logic interface.
type Application interface {
	Status(ctx context.Context) (domain.MountStatus, error)
	Check(ctx context.Context) (domain.CLIStatus, error)
	HelperVersion(ctx context.Context) (string, error)
	Disks(ctx context.Context, admin bool) (domain.DiskList, error)
	Mount(ctx context.Context, device string, passphrase domain.Secret) (string, error)
	Unmount(ctx context.Context) (string, error)
	Eject(ctx context.Context, device string) (string, error)
	Cleanup(ctx context.Context) (string, error)

	VMConfig(ctx context.Context) (domain.VMConfig, error)
	UpdateVMConfig(ctx context.Context, cfg domain.VMConfig) error
	Images(ctx context.Context) ([]domain.VMImage, error)
	InstallImage(ctx context.Context, name string) error
	UninstallImage(ctx context.Context, name string) error
	Packages(ctx context.Context) ([]string, error)
	AddPackages(ctx context.Context, pkgs []string) error
	RemovePackages(ctx context.Context, pkgs []string) error

	Actions(ctx context.Context) ([]domain.CustomAction, error)
	CreateAction(ctx context.Context, action domain.CustomAction) error
	UpdateAction(ctx context.Context, action domain.CustomAction) error
	DeleteAction(ctx context.Context, name string) error

	Logs(ctx context.Context, n int) ([]string, error)
	FollowLogs(ctx context.Context, emit func(line string)) error
	WatchDisks(ctx context.Context, admin bool, emit func(domain.DiskList)) error
	Shell(ctx context.Context) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "mountbar",
		Short:         "Mount Linux filesystems on macOS through anylinuxfs",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("json", false, "Print results and diagnostics as JSON")
	rootCmd.PersistentFlags().String("output", "auto", "Output format: auto, text or json")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug diagnostics")

	c := &CLI{
		app:        a,
		rootCmd:    rootCmd,
		in:         os.Stdin,
		detectJSON: jsonFlagOnly,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		jsonMode, err := cmd.Flags().GetBool("json")
		if err != nil {
			return err
		}
		debug, err := cmd.Flags().GetBool("debug")
		if err != nil {
			return err
		}
		mode, err := cmd.Flags().GetString("output")
		if err != nil {
			return err
		}
		switch mode {
		case "auto", "text", "json":
		default:
			return zerr.With(zerr.Wrap(domain.ErrUnknownOutput, "invalid --output flag"), "output", mode)
		}
		if !jsonMode {
			jsonMode = c.detectJSON(cmd.OutOrStdout(), mode)
		}
		c.out = output.NewPrinter(cmd.OutOrStdout(), jsonMode)
		if c.logHook != nil {
			c.logHook(jsonMode, debug)
		}
		return nil
	}

	rootCmd.AddCommand(
		c.newStatusCmd(),
		c.newCheckCmd(),
		c.newVersionCmd(),
		c.newDisksCmd(),
		c.newWatchCmd(),
		c.newMountCmd(),
		c.newUnmountCmd(),
		c.newEjectCmd(),
		c.newCleanupCmd(),
		c.newConfigCmd(),
		c.newImagesCmd(),
		c.newPackagesCmd(),
		c.newActionsCmd(),
		c.newLogsCmd(),
		c.newShellCmd(),
	)

	return c
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

// SetInput sets the stream passphrases are read from.
func (c *CLI) SetInput(in io.Reader) {
	c.in = in
	c.rootCmd.SetIn(in)
}

// SetLogHook registers fn to receive the --json and --debug flags before any
// command runs.
func (c *CLI) SetLogHook(fn func(jsonMode, debug bool)) {
	c.logHook = fn
}

// SetOutputDetector replaces how --output auto|text|json maps to JSON mode
// for the command's stdout. --json always wins.
func (c *CLI) SetOutputDetector(fn func(w io.Writer, mode string) bool) {
	c.detectJSON = fn
}

// jsonFlagOnly honors an explicit --output json and nothing else.
func jsonFlagOnly(_ io.Writer, mode string) bool {
	return mode == "json"
}

// result prints v as JSON in JSON mode, otherwise calls text.
func (c *CLI) result(v any, text func()) error {
	if c.out.JSONMode() {
		return c.out.JSON(v)
	}
	text()
	return nil
}

// message prints a helper message, or a JSON object holding it.
func (c *CLI) message(msg string) error {
	return c.result(map[string]string{"message": msg}, func() {
		c.out.Success(msg)
	})
}
