package app

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"gwspec/internal/core"
)

func (s Service) Resolve(ctx context.Context, req ResolveRequest) (ResolveResult, error) {
	privacy, err := ParsePrivacyMode(req.Privacy)
	if err != nil {
		return ResolveResult{}, err
	}
	doc, source, err := s.specResolver(privacy).Resolve(ctx, req.Spec)
	if err != nil {
		return ResolveResult{}, err
	}
	outputPath := strings.TrimSpace(req.OutputPath)
	if outputPath != "" {
		if err := s.Output.WriteSpec(outputPath, doc); err != nil {
			return ResolveResult{}, err
		}
		log.Ctx(ctx).Info().Str("path", outputPath).Msg("resolved spec written")
	}
	return ResolveResult{
		Document:   doc,
		Source:     source,
		OutputPath: outputPath,
	}, nil
}

func (s Service) Classify(req ClassifyRequest) ClassifyResult {
	source := core.ClassifySource(req.Spec)
	return ClassifyResult{
		Source:          source,
		RequiresNetwork: source.RequiresNetwork(),
	}
}
