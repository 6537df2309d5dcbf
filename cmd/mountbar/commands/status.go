package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the current mount state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			exitCode, _ := cmd.Flags().GetBool("exit-code")

			st, err := c.app.Status(cmd.Context())
			if err != nil {
				return err
			}
			if err := c.result(st, func() { c.printStatus(st) }); err != nil {
				return err
			}
			if exitCode && st.Mounted {
				return domain.ErrStillMounted
			}
			return nil
		},
	}
	cmd.Flags().Bool("exit-code", false, "Exit with status 1 while a filesystem is mounted")
	return cmd
}

func (c *CLI) printStatus(st domain.MountStatus) {
	switch {
	case st.Mounted:
		c.out.Styled(style.MountIcon(true), "Mounted", style.MountColor(true))
		c.out.Field("Device", deref(st.Device))
		c.out.Field("Mount point", deref(st.MountPoint))
		c.out.Field("Filesystem", deref(st.Filesystem))
	case st.OrphanedInstance:
		c.out.Styled(style.Warning, "Helper VM running without a mount", style.Yellow)
		c.out.Line("  Run 'mountbar cleanup' to stop it.")
	default:
		c.out.Styled(style.MountIcon(false), "Not mounted", style.MountColor(false))
	}
	if st.RAMMB != nil {
		c.out.Field("RAM", fmt.Sprintf("%d MB", *st.RAMMB))
	}
	if st.VCPUs != nil {
		c.out.Field("vCPUs", fmt.Sprintf("%d", *st.VCPUs))
	}
}

func (c *CLI) newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Check that the anylinuxfs helper is installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := c.app.Check(cmd.Context())
			if err != nil {
				return err
			}
			return c.result(st, func() {
				if st.Available {
					c.out.Success("anylinuxfs found at " + st.Path)
					return
				}
				c.out.Styled(style.Cross, "anylinuxfs "+st.Path, style.Red)
				c.out.Line("  Install it with: brew install nohajc/anylinuxfs/anylinuxfs")
			})
		},
	}
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
