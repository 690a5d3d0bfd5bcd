package core

import "gwspec/internal/types"

// FieldNameMap maps field ids to display names for one chart's encodings.
// Placed fields with an aggregation also contribute "<fid>_<aggName>" ->
// "<name>_<aggName>", which is how aggregated columns are keyed in query
// results.
func FieldNameMap(item types.ChartItem) map[string]string {
	out := map[string]string{}
	for _, field := range item.PoolFields() {
		out[field.FID()] = field.Name()
	}
	for _, channel := range types.PlacedChannels {
		for _, field := range item.Channel(channel) {
			if agg := field.AggName(); agg != "" {
				out[field.FID()+"_"+agg] = field.Name() + "_" + agg
			}
		}
	}
	return out
}
