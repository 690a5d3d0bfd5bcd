package cli

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gwspec/internal/app"
)

type fillFieldsOptions struct {
	Spec   string
	Fields string
	Output string
}

func newFillFieldsCommand() *cobra.Command {
	opts := fillFieldsOptions{}
	cmd := &cobra.Command{
		Use:   "fill-fields",
		Short: "Add dataset fields missing from every chart of a spec",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runFillFields(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "", "JSON, ksf:// reference, URL, config id or file path")
	cmd.Flags().StringVar(&opts.Fields, "fields", "", "Dataset field list (YAML or JSON)")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the spec to this file instead of stdout")
	_ = viper.BindPFlag("fields", cmd.Flags().Lookup("fields"))
	return cmd
}

func runFillFields(cmd *cobra.Command, opts fillFieldsOptions) error {
	service := newAppService()
	result, err := service.FillFields(commandContext(cmd), app.FillFieldsRequest{
		Spec:       resolveString(cmd, opts.Spec, "spec", "spec"),
		Privacy:    viper.GetString("privacy"),
		FieldsPath: resolveString(cmd, opts.Fields, "fields", "fields"),
		OutputPath: resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}
	return printSpecResult(cmd, result.Source, result.Document, result.OutputPath)
}
