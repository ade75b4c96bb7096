// upload.go implements the "hiremind upload" command: parse a resume and
// print the extracted text.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/prajaltale/HireMind/internal/resume"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <resume.pdf>",
	Short: "Upload a resume and print the extracted text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !resume.AcceptsFilename(path) {
			return fmt.Errorf("only PDF resumes are accepted: %s", path)
		}

		env, err := newEnv()
		if err != nil {
			return err
		}
		defer env.close()

		if _, err := env.requireSession(); err != nil {
			return err
		}

		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("opening %s: %w", path, err)
		}
		defer f.Close()

		text, err := env.client.ParseResume(context.Background(), path, f)
		if err != nil {
			return fmt.Errorf("parsing resume: %w", err)
		}

		fmt.Println(text)
		return nil
	},
}
