package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"gwspec/internal/app"
)

func newClassifyCommand() *cobra.Command {
	var spec string
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Print which source a spec string refers to",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result := newAppService().Classify(app.ClassifyRequest{Spec: spec})
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s network=%t\n", result.Source, result.RequiresNetwork)
			return err
		},
	}
	cmd.Flags().StringVar(&spec, "spec", "", "Spec string to classify")
	return cmd
}
