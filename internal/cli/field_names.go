package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gwspec/internal/app"
)

func newFieldNamesCommand() *cobra.Command {
	var spec string
	cmd := &cobra.Command{
		Use:   "field-names",
		Short: "Print the field id to display name map of every chart",
		RunE: func(cmd *cobra.Command, _ []string) error {
			result, err := newAppService().FieldNames(commandContext(cmd), app.FieldNamesRequest{
				Spec:    resolveString(cmd, spec, "spec", "spec"),
				Privacy: viper.GetString("privacy"),
			})
			if err != nil {
				return err
			}
			data, err := json.MarshalIndent(result.Charts, "", "  ")
			if err != nil {
				return err
			}
			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\n", data)
			return err
		},
	}
	cmd.Flags().StringVar(&spec, "spec", "", "JSON, ksf:// reference, URL, config id or file path")
	return cmd
}
