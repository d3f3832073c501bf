package main

import (
	"fmt"
	"os"

	"github.com/deppfellow/grampanchayat/internal/lib/email"
	"github.com/spf13/cobra"
)

func newEmailPreviewCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "email-preview <template>",
		Short: "Render an email template with sample data",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := email.Template(args[0])
			data, ok := email.PreviewData[name]
			if !ok {
				return fmt.Errorf("unknown template %q", args[0])
			}

			html, err := email.Render(name, data)
			if err != nil {
				return err
			}

			if out == "" {
				_, err = fmt.Fprint(cmd.OutOrStdout(), html)
				return err
			}
			return os.WriteFile(out, []byte(html), 0o644)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "write the HTML to a file instead of stdout")
	return cmd
}
