package app

import (
	"context"

	"gwspec/internal/core"
	"gwspec/internal/types"
)

// FieldNames resolves a spec and returns, per chart, the map from field ids
// (and aggregated "<fid>_<aggName>" keys) to display names.
func (s Service) FieldNames(ctx context.Context, req FieldNamesRequest) (FieldNamesResult, error) {
	privacy, err := ParsePrivacyMode(req.Privacy)
	if err != nil {
		return FieldNamesResult{}, err
	}
	doc, source, err := s.specResolver(privacy).Resolve(ctx, req.Spec)
	if err != nil {
		return FieldNamesResult{}, err
	}
	result := FieldNamesResult{Source: source, Charts: []map[string]string{}}
	config, _ := doc.Config()
	if config == "" {
		return result, nil
	}
	items, err := types.ParseChartItems(config)
	if err != nil {
		return FieldNamesResult{}, err
	}
	for _, item := range items {
		result.Charts = append(result.Charts, core.FieldNameMap(item))
	}
	return result, nil
}
