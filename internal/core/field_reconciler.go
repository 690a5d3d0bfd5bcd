package core

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"gwspec/internal/ports"
	"gwspec/internal/types"
)

const dragIDPrefix = "GW_"

// FieldReconciler adds dataset fields that a saved spec does not know about
// to every chart's field pool. Existing fields are never removed or
// reordered.
type FieldReconciler struct {
	IDs ports.IDSourcePort
}

func NewFieldReconciler(ids ports.IDSourcePort) FieldReconciler {
	return FieldReconciler{IDs: ids}
}

// FillNewFields returns config with the missing fields appended to each
// chart's dimensions or measures.
func (r FieldReconciler) FillNewFields(ctx context.Context, config string, fields []types.Field) (string, error) {
	if r.IDs == nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("field reconciler requires an id source")
	}
	items, err := types.ParseChartItems(config)
	if err != nil {
		return "", malformedSpecError(err)
	}
	for i, item := range items {
		present := map[string]struct{}{}
		for _, field := range item.PoolFields() {
			present[field.FID()] = struct{}{}
		}
		var dimensions, measures []types.Field
		for _, field := range fields {
			if _, ok := present[field.FID()]; ok {
				continue
			}
			gwField := field.Clone()
			gwField["basename"] = field.Name()
			gwField["dragId"] = dragIDPrefix + r.IDs.NewID()
			if field.AnalyticType() == types.AnalyticTypeDimension {
				dimensions = append(dimensions, gwField)
			} else {
				measures = append(measures, gwField)
			}
		}
		item.AppendToChannel(types.ChannelDimensions, dimensions...)
		item.AppendToChannel(types.ChannelMeasures, measures...)
		if added := len(dimensions) + len(measures); added > 0 {
			log.Ctx(ctx).Debug().Int("chart", i).Int("added", added).Msg("new fields filled")
		}
	}
	return types.MarshalChartItems(items)
}
