package commands

import (
	"bufio"
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/awnumar/memguard"
	"github.com/spf13/cobra"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/term"
)

func (c *CLI) newMountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mount <device>",
		Short: "Mount a Linux partition and wait until it is visible",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			secret, err := c.passphrase(cmd)
			if err != nil {
				return err
			}
			if secret != nil {
				defer secret.Destroy()
			}

			msg, err := c.app.Mount(cmd.Context(), args[0], secret)
			if err != nil {
				return err
			}
			if msg == "" {
				msg = "Mounted " + args[0]
			}
			return c.message(msg)
		},
	}
	cmd.Flags().Bool("passphrase-stdin", false, "Read the LUKS or BitLocker passphrase from the first line of stdin")
	cmd.Flags().Bool("ask-passphrase", false, "Prompt for the LUKS or BitLocker passphrase")
	cmd.MarkFlagsMutuallyExclusive("passphrase-stdin", "ask-passphrase")
	return cmd
}

// passphrase returns the secret selected by the mount flags, or nil.
func (c *CLI) passphrase(cmd *cobra.Command) (domain.Secret, error) {
	fromStdin, _ := cmd.Flags().GetBool("passphrase-stdin")
	ask, _ := cmd.Flags().GetBool("ask-passphrase")

	var (
		raw []byte
		err error
	)
	switch {
	case fromStdin:
		raw, err = readLine(c.in)
	case ask:
		raw, err = c.prompt(cmd)
	default:
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, domain.ErrNoPassphrase
	}
	return memguard.NewBufferFromBytes(raw), nil
}

func (c *CLI) prompt(cmd *cobra.Command) ([]byte, error) {
	f, ok := c.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return nil, zerr.Wrap(domain.ErrNoPassphrase, "passphrase prompt requires a terminal")
	}

	stderr := cmd.ErrOrStderr()
	_, _ = io.WriteString(stderr, "Passphrase: ")
	raw, err := term.ReadPassword(int(f.Fd()))
	_, _ = io.WriteString(stderr, "\n")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read passphrase")
	}
	return raw, nil
}

func readLine(r io.Reader) ([]byte, error) {
	line, err := bufio.NewReader(r).ReadBytes('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		memguard.WipeBytes(line)
		return nil, zerr.Wrap(err, "failed to read passphrase")
	}
	return bytes.TrimRight(line, "\r\n"), nil
}

func (c *CLI) newUnmountCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unmount",
		Short: "Unmount the active filesystem and stop the helper VM",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := c.app.Unmount(cmd.Context())
			if err != nil {
				return err
			}
			if msg == "" {
				msg = "Unmounted"
			}
			return c.message(msg)
		},
	}
}

func (c *CLI) newEjectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eject <device>",
		Short: "Unmount if needed and eject the disk holding a partition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			msg, err := c.app.Eject(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if msg == "" {
				msg = "Ejected " + args[0]
			}
			return c.message(msg)
		},
	}
}

func (c *CLI) newCleanupCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cleanup",
		Short: "Kill leftover helper processes and remove the control socket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			msg, err := c.app.Cleanup(cmd.Context())
			if err != nil {
				return err
			}
			return c.message(msg)
		},
	}
}
