package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"
)

func (c *CLI) newLogsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show the anylinuxfs log",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			n, _ := cmd.Flags().GetInt("lines")
			follow, _ := cmd.Flags().GetBool("follow")

			lines, err := c.app.Logs(cmd.Context(), n)
			if err != nil {
				return err
			}
			if err := c.result(lines, func() {
				for _, line := range lines {
					c.out.Line("%s", line)
				}
			}); err != nil {
				return err
			}
			if !follow {
				return nil
			}

			err = c.app.FollowLogs(cmd.Context(), func(line string) {
				if c.out.JSONMode() {
					_ = c.out.JSON(map[string]string{"line": line})
					return
				}
				c.out.Line("%s", line)
			})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntP("lines", "n", 0, "Number of trailing lines to show (default from settings)")
	cmd.Flags().BoolP("follow", "f", false, "Keep printing lines as they are appended")
	return cmd
}

func (c *CLI) newShellCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Open an interactive shell in the helper VM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Shell(cmd.Context())
		},
	}
}
