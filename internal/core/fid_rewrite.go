package core

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"gwspec/internal/ports"
	"gwspec/internal/types"
)

// FIDRewriter replaces legacy field ids with identifiers derived from the
// field display names. Rewrites are whole-token: a string value or object
// key is changed only when it equals a field id or an aggregated key
// "<fid>_<aggName>". Display text under name keys is never rewritten.
type FIDRewriter struct {
	Renamer ports.ColumnRenamerPort
}

func NewFIDRewriter(renamer ports.ColumnRenamerPort) FIDRewriter {
	return FIDRewriter{Renamer: renamer}
}

func (r FIDRewriter) Rewrite(ctx context.Context, config string) (string, error) {
	if r.Renamer == nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("fid rewrite requires a column renamer")
	}
	items, err := types.ParseChartItems(config)
	if err != nil {
		return "", malformedSpecError(err)
	}
	for i, item := range items {
		mapping, err := r.fidMapping(item)
		if err != nil {
			return "", err
		}
		if len(mapping) == 0 {
			continue
		}
		rw := fidRewrite{mapping: mapping, aggNames: aggregationNames(item)}
		items[i] = types.ChartItem(rw.object(item))
		log.Ctx(ctx).Debug().Int("chart", i).Int("fields", len(mapping)).Msg("field ids rewritten")
	}
	return types.MarshalChartItems(items)
}

// fidMapping maps each renameable field id of the chart's field pool to its
// new identifier. Computed fields and the pivot sentinels keep their ids.
func (r FIDRewriter) fidMapping(item types.ChartItem) (map[string]string, error) {
	var oldFIDs []string
	names := map[string]string{}
	for _, field := range item.PoolFields() {
		if field.Computed() || field.IsSentinel() {
			continue
		}
		fid := field.FID()
		if _, seen := names[fid]; !seen {
			oldFIDs = append(oldFIDs, fid)
		}
		names[fid] = field.Name()
	}
	if len(oldFIDs) == 0 {
		return nil, nil
	}
	displayNames := make([]string, len(oldFIDs))
	for i, fid := range oldFIDs {
		displayNames[i] = names[fid]
	}
	renamed := r.Renamer.RenameColumns(displayNames)
	if len(renamed) != len(oldFIDs) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg(fmt.Sprintf("column renamer returned %d names for %d fields", len(renamed), len(oldFIDs)))
	}
	mapping := make(map[string]string, len(oldFIDs))
	for i, fid := range oldFIDs {
		mapping[fid] = renamed[i]
	}
	return mapping, nil
}

// aggregationNames lists the aggregations used on the chart's placed fields,
// longest first so that "<fid>_<agg>" splits on the most specific suffix.
func aggregationNames(item types.ChartItem) []string {
	set := map[string]struct{}{}
	for _, channel := range types.PlacedChannels {
		for _, field := range item.Channel(channel) {
			if agg := field.AggName(); agg != "" {
				set[agg] = struct{}{}
			}
		}
	}
	out := make([]string, 0, len(set))
	for agg := range set {
		out = append(out, agg)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i]) != len(out[j]) {
			return len(out[i]) > len(out[j])
		}
		return out[i] < out[j]
	})
	return out
}

type fidRewrite struct {
	mapping  map[string]string
	aggNames []string
}

func (w fidRewrite) object(obj map[string]any) map[string]any {
	out := make(map[string]any, len(obj))
	for key, value := range obj {
		if _, display := displayKeys[key]; display {
			out[key] = value
			continue
		}
		out[w.key(key)] = w.value(value)
	}
	return out
}

func (w fidRewrite) value(value any) any {
	switch v := value.(type) {
	case map[string]any:
		return w.object(v)
	case []any:
		out := make([]any, len(v))
		for i, elem := range v {
			out[i] = w.value(elem)
		}
		return out
	case string:
		if replacement, ok := w.mapping[v]; ok {
			return replacement
		}
		if replacement, ok := w.composite(v); ok {
			return replacement
		}
		return v
	default:
		return value
	}
}

// key rewrites object keys that are field ids or aggregated keys, as used
// by maps keyed per field.
func (w fidRewrite) key(key string) string {
	if replacement, ok := w.mapping[key]; ok {
		return replacement
	}
	if replacement, ok := w.composite(key); ok {
		return replacement
	}
	return key
}

func (w fidRewrite) composite(s string) (string, bool) {
	for _, agg := range w.aggNames {
		base, found := strings.CutSuffix(s, "_"+agg)
		if !found {
			continue
		}
		if replacement, ok := w.mapping[base]; ok {
			return replacement + "_" + agg, true
		}
	}
	return "", false
}

// displayKeys hold user-facing text that may coincide with a field id.
var displayKeys = map[string]struct{}{
	"name":     {},
	"basename": {},
}
