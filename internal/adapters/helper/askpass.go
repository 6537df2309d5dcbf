package helper

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.trai.ch/mountbar/internal/core/domain"
	"go.trai.ch/zerr"
)

// askpassScript shows a native password dialog and prints the answer for sudo.
// The password flows from osascript to sudo without passing through mountbar.
const askpassScript = `#!/bin/bash
osascript -e 'Tell application "System Events" to display dialog "anylinuxfs requires administrator privileges." & return & return & "Enter your password:" with hidden answer default answer "" buttons {"Cancel", "OK"} default button "OK" with title "Authentication Required" with icon caution' -e 'text returned of result' 2>/dev/null
`

// writeAskpass creates a single-use, owner-only prompt hook in dir.
// The caller removes it.
func writeAskpass(dir string) (string, error) {
	path := filepath.Join(dir, "anylinuxfs-askpass-"+uuid.NewString()+".sh")

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, domain.ScriptPerm)
	if err != nil {
		return "", zerr.Wrap(err, "failed to create askpass script")
	}

	if _, err := f.WriteString(askpassScript); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return "", zerr.Wrap(err, "failed to write askpass script")
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(path)
		return "", zerr.Wrap(err, "failed to write askpass script")
	}

	// O_CREATE honours the umask.
	if err := os.Chmod(path, domain.ScriptPerm); err != nil {
		_ = os.Remove(path)
		return "", zerr.Wrap(err, "failed to set askpass permissions")
	}

	return path, nil
}
