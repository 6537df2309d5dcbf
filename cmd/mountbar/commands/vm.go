package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or change the helper VM configuration",
	}

	get := &cobra.Command{
		Use:   "get",
		Short: "Show the effective VM configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := c.app.VMConfig(cmd.Context())
			if err != nil {
				return err
			}
			return c.result(cfg, func() {
				c.out.Field("RAM", optional(cfg.RAMMB, " MB"))
				c.out.Field("vCPUs", optional(cfg.VCPUs, ""))
				c.out.Field("Log level", deref(cfg.LogLevel))
			})
		},
	}

	set := &cobra.Command{
		Use:   "set",
		Short: "Change RAM, vCPUs or log level",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var cfg domain.VMConfig
			flags := cmd.Flags()
			if flags.Changed("ram") {
				v, _ := flags.GetUint32("ram")
				cfg.RAMMB = &v
			}
			if flags.Changed("vcpus") {
				v, _ := flags.GetUint32("vcpus")
				cfg.VCPUs = &v
			}
			if flags.Changed("log-level") {
				v, _ := flags.GetString("log-level")
				cfg.LogLevel = &v
			}
			if cfg == (domain.VMConfig{}) {
				return zerr.Wrap(domain.ErrInvalidConfig, "nothing to change, set --ram, --vcpus or --log-level")
			}

			if err := c.app.UpdateVMConfig(cmd.Context(), cfg); err != nil {
				return err
			}
			return c.message("Configuration updated")
		},
	}
	set.Flags().Uint32("ram", 0, fmt.Sprintf("VM memory in MB (%d-%d)", domain.MinRAMMB, domain.MaxRAMMB))
	set.Flags().Uint32("vcpus", 0, fmt.Sprintf("VM virtual CPUs (%d-%d)", domain.MinVCPUs, domain.MaxVCPUs))
	set.Flags().String("log-level", "", fmt.Sprintf("Helper log level %v", domain.LogLevels))

	cmd.AddCommand(get, set)
	return cmd
}

func (c *CLI) newImagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "images",
		Short: "Manage guest VM images",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List available guest images",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			images, err := c.app.Images(cmd.Context())
			if err != nil {
				return err
			}
			return c.result(images, func() {
				for _, img := range images {
					if img.Installed {
						c.out.Styled(style.Check, img.Name+" (installed)", style.Green)
						continue
					}
					c.out.Styled(style.Circle, img.Name, style.Slate)
				}
			})
		},
	}

	install := &cobra.Command{
		Use:   "install <name>",
		Short: "Download and install a guest image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.InstallImage(cmd.Context(), args[0]); err != nil {
				return err
			}
			return c.message("Installed " + args[0])
		},
	}

	uninstall := &cobra.Command{
		Use:   "uninstall <name>",
		Short: "Remove a guest image",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.UninstallImage(cmd.Context(), args[0]); err != nil {
				return err
			}
			return c.message("Uninstalled " + args[0])
		},
	}

	cmd.AddCommand(list, install, uninstall)
	return cmd
}

func (c *CLI) newPackagesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "packages",
		Short: "Manage packages installed in the guest",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List installed guest packages",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pkgs, err := c.app.Packages(cmd.Context())
			if err != nil {
				return err
			}
			return c.result(pkgs, func() {
				for _, p := range pkgs {
					c.out.Line("%s", p)
				}
			})
		},
	}

	add := &cobra.Command{
		Use:   "add <package>...",
		Short: "Install guest packages",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.AddPackages(cmd.Context(), args); err != nil {
				return err
			}
			return c.message(fmt.Sprintf("Added %d package(s)", len(args)))
		},
	}

	remove := &cobra.Command{
		Use:   "remove <package>...",
		Short: "Remove guest packages",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.RemovePackages(cmd.Context(), args); err != nil {
				return err
			}
			return c.message(fmt.Sprintf("Removed %d package(s)", len(args)))
		},
	}

	cmd.AddCommand(list, add, remove)
	return cmd
}

func optional(v *uint32, unit string) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d%s", *v, unit)
}
