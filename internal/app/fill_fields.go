package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"gwspec/internal/core"
)

// FillFields resolves a spec and adds the dataset fields it is missing to
// every chart. A spec without charts is returned unchanged.
func (s Service) FillFields(ctx context.Context, req FillFieldsRequest) (FillFieldsResult, error) {
	fieldsPath := strings.TrimSpace(req.FieldsPath)
	if fieldsPath == "" {
		return FillFieldsResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("field list path is required")
	}
	fields, err := s.Fields.LoadFields(fieldsPath)
	if err != nil {
		return FillFieldsResult{}, err
	}
	privacy, err := ParsePrivacyMode(req.Privacy)
	if err != nil {
		return FillFieldsResult{}, err
	}
	doc, source, err := s.specResolver(privacy).Resolve(ctx, req.Spec)
	if err != nil {
		return FillFieldsResult{}, err
	}
	config, ok := doc.Config()
	if ok && config != "" {
		filled, err := core.NewFieldReconciler(s.IDs).FillNewFields(ctx, config, fields)
		if err != nil {
			return FillFieldsResult{}, err
		}
		doc.SetConfig(filled)
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath != "" {
		if err := s.Output.WriteSpec(outputPath, doc); err != nil {
			return FillFieldsResult{}, err
		}
		log.Ctx(ctx).Info().Str("path", outputPath).Msg("filled spec written")
	}
	return FillFieldsResult{
		Document:   doc,
		Source:     source,
		OutputPath: outputPath,
	}, nil
}
