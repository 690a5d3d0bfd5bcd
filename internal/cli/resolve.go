package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"gwspec/internal/app"
	"gwspec/internal/types"
)

type resolveOptions struct {
	Spec   string
	Output string
}

func newResolveCommand() *cobra.Command {
	opts := resolveOptions{}
	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Resolve a chart spec from its source and migrate it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runResolve(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Spec, "spec", "", "JSON, ksf:// reference, URL, config id or file path")
	cmd.Flags().StringVar(&opts.Output, "output", "", "Write the resolved spec to this file instead of stdout")
	_ = viper.BindPFlag("spec", cmd.Flags().Lookup("spec"))
	_ = viper.BindPFlag("output", cmd.Flags().Lookup("output"))
	return cmd
}

func runResolve(cmd *cobra.Command, opts resolveOptions) error {
	service := newAppService()
	result, err := service.Resolve(commandContext(cmd), app.ResolveRequest{
		Spec:       resolveString(cmd, opts.Spec, "spec", "spec"),
		Privacy:    viper.GetString("privacy"),
		OutputPath: resolveString(cmd, opts.Output, "output", "output"),
	})
	if err != nil {
		return err
	}
	return printSpecResult(cmd, result.Source, result.Document, result.OutputPath)
}

func printSpecResult(cmd *cobra.Command, source types.SourceTag, doc types.SpecDocument, outputPath string) error {
	out := cmd.OutOrStdout()
	if outputPath != "" {
		_, err := fmt.Fprintf(out, "source: %s\n", source)
		return err
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(out, "%s\n", data)
	return err
}
