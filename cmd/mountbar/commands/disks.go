package commands

import (
	"context"
	"errors"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/ui/style"
)

func (c *CLI) newDisksCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "disks",
		Short: "List disks and partitions visible to anylinuxfs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, _ := cmd.Flags().GetBool("sudo")

			list, err := c.app.Disks(cmd.Context(), admin)
			if err != nil {
				return err
			}
			return c.result(list, func() { c.printDisks(list) })
		},
	}
	cmd.Flags().Bool("sudo", false, "List with administrator privileges to see more devices")
	return cmd
}

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Print the disk list whenever removable volumes change",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			admin, _ := cmd.Flags().GetBool("sudo")

			err := c.app.WatchDisks(cmd.Context(), admin, func(list domain.DiskList) {
				if c.out.JSONMode() {
					_ = c.out.JSON(list)
					return
				}
				c.printDisks(list)
				c.out.Line("")
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().Bool("sudo", false, "List with administrator privileges to see more devices")
	return cmd
}

func (c *CLI) printDisks(list domain.DiskList) {
	if len(list.Disks) == 0 {
		c.out.Line("No disks found")
		return
	}

	for _, d := range list.Disks {
		header := d.Device
		if d.Model != nil {
			header += " (" + *d.Model + ")"
		}
		if d.Size != "" {
			header += " " + d.Size
		}
		c.out.Styled("", header, style.Iris)

		for _, p := range d.Partitions {
			c.printPartition(p)
		}
	}

	if !list.HasSupportedPartitions {
		c.out.Styled(style.Warning, "No mountable Linux partitions found", style.Yellow)
	}
}

func (c *CLI) printPartition(p domain.Partition) {
	parts := []string{p.Device, p.Filesystem, p.Size}
	if p.Label != nil && *p.Label != "" {
		parts = append(parts, "["+*p.Label+"]")
	}
	if p.Encrypted {
		parts = append(parts, "encrypted")
	}
	line := "  " + strings.Join(parts, "  ")

	switch {
	case p.MountedBySystem:
		c.out.Styled(style.Tilde, line+"  mounted at "+deref(p.SystemMountPoint), style.Slate)
	case p.Supported:
		c.out.Styled(style.Check, line+note(p.SupportNote), style.Green)
	default:
		c.out.Styled(style.Cross, line+note(p.SupportNote), style.Red)
	}
}

func note(s *string) string {
	if s == nil {
		return ""
	}
	return "  (" + *s + ")"
}
