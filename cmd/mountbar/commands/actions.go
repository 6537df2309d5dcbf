package commands

import (
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/mountbar/internal/ui/style"
)

func (c *CLI) newActionsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "actions",
		Short: "Manage custom mount actions",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List upstream and user actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			actions, err := c.app.Actions(cmd.Context())
			if err != nil {
				return err
			}
			return c.result(actions, func() {
				if len(actions) == 0 {
					c.out.Line("No custom actions")
					return
				}
				for _, a := range actions {
					icon, color := style.Dot, style.Iris
					if a.IsUpstream {
						icon, color = style.Circle, style.Slate
					}
					c.out.Styled(icon, a.Name, color)
					if a.Description != "" {
						c.out.Field("Description", a.Description)
					}
				}
			})
		},
	}

	create := &cobra.Command{
		Use:   "create <name>",
		Short: "Add a user action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.CreateAction(cmd.Context(), actionFromFlags(args[0], cmd.Flags())); err != nil {
				return err
			}
			return c.message("Created action " + args[0])
		},
	}
	actionFlags(create.Flags())

	update := &cobra.Command{
		Use:   "update <name>",
		Short: "Replace a user action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.UpdateAction(cmd.Context(), actionFromFlags(args[0], cmd.Flags())); err != nil {
				return err
			}
			return c.message("Updated action " + args[0])
		},
	}
	actionFlags(update.Flags())

	del := &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a user action",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.DeleteAction(cmd.Context(), args[0]); err != nil {
				return err
			}
			return c.message("Deleted action " + args[0])
		},
	}

	cmd.AddCommand(list, create, update, del)
	return cmd
}

func actionFlags(fs *pflag.FlagSet) {
	fs.String("description", "", "Short description")
	fs.String("before-mount", "", "Script run in the VM before mounting")
	fs.String("after-mount", "", "Script run in the VM after mounting")
	fs.String("before-unmount", "", "Script run in the VM before unmounting")
	fs.StringSlice("env", nil, "Environment variables passed to the scripts (KEY=VALUE)")
	fs.StringSlice("capture-env", nil, "Environment variables captured after before-mount")
	fs.String("nfs-export", "", "Override the exported NFS path")
	fs.String("required-os", "", "Guest OS the action requires")
}

func actionFromFlags(name string, fs *pflag.FlagSet) domain.CustomAction {
	str := func(flag string) string {
		v, _ := fs.GetString(flag)
		return v
	}
	list := func(flag string) []string {
		v, _ := fs.GetStringSlice(flag)
		if len(v) == 0 {
			return nil
		}
		return v
	}

	return domain.CustomAction{
		Name:               name,
		Description:        str("description"),
		BeforeMount:        str("before-mount"),
		AfterMount:         str("after-mount"),
		BeforeUnmount:      str("before-unmount"),
		Environment:        list("env"),
		CaptureEnvironment: list("capture-env"),
		OverrideNFSExport:  str("nfs-export"),
		RequiredOS:         str("required-os"),
	}
}
