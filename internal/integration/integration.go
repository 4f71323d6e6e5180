// Package integration renders shell completion scripts for the command.
package integration

import (
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
)

// Shells lists the supported shells.
//
//nolint:gochecknoglobals // Config constant
var Shells = []string{"bash", "zsh", "fish", "powershell"}

// Render writes the completion script for shell to w.
func Render(cmd *cobra.Command, shell string, w io.Writer) error {
	if !slices.Contains(Shells, shell) {
		return fmt.Errorf("unsupported shell %q: must be one of %v", shell, Shells)
	}

	switch shell {
	case "bash":
		return cmd.GenBashCompletionV2(w, true)
	case "zsh":
		return cmd.GenZshCompletion(w)
	case "fish":
		return cmd.GenFishCompletion(w, true)
	default:
		return cmd.GenPowerShellCompletionWithDesc(w)
	}
}
