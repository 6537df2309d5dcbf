package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/mountbar/internal/build"
)

func (c *CLI) newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the application and helper versions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			helper, err := c.app.HelperVersion(cmd.Context())
			if err != nil {
				helper = "unavailable"
			}
			return c.result(map[string]string{
				"version": build.Version,
				"commit":  build.Commit,
				"date":    build.Date,
				"helper":  helper,
			}, func() {
				c.out.Line("mountbar version %s (commit: %s, date: %s)", build.Version, build.Commit, build.Date)
				c.out.Line("anylinuxfs version %s", helper)
			})
		},
	}
}
