// init.go implements the "hiremind init" command: write a default config
// file to edit.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/prajaltale/HireMind/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Long: `Write a default config.yaml to the state directory (~/.hiremind by
default, HIREMIND_STATE_DIR overrides). The client runs fine without
one; init exists so there is a file to edit for the backend URL and the
speech commands.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := config.StateDir()
		path := filepath.Join(dir, "config.yaml")

		if _, err := os.Stat(path); err == nil && !initForce {
			return fmt.Errorf("%s already exists; use --force to overwrite", path)
		}

		if err := config.Write(dir, config.Default()); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "Overwrite an existing config file")
}
