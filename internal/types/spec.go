package types

import "encoding/json"

const (
	SpecKeyChartMap = "chart_map"
	SpecKeyConfig   = "config"
	SpecKeyVersion  = "version"
)

// DefaultSpecVersion is assumed for documents that do not declare one.
const DefaultSpecVersion = "0.1.0"

// SpecDocument is a resolved chart spec: an object holding at least
// chart_map and config, where config is a serialized list of chart items.
// Unknown top-level keys are carried through untouched.
type SpecDocument map[string]any

// EmptySpecDocument returns the document used when a source yields no text.
func EmptySpecDocument() SpecDocument {
	return SpecDocument{
		SpecKeyChartMap: map[string]any{},
		SpecKeyConfig:   "",
	}
}

// Version returns the declared schema version, or DefaultSpecVersion when
// the key is absent. The second value is false when version is present but
// not a non-empty string.
func (d SpecDocument) Version() (string, bool) {
	raw, present := d[SpecKeyVersion]
	if !present {
		return DefaultSpecVersion, true
	}
	value, ok := raw.(string)
	if !ok || value == "" {
		return "", false
	}
	return value, true
}

// Config returns the serialized chart item list. The second value is false
// when config is missing or not a string.
func (d SpecDocument) Config() (string, bool) {
	value, ok := d[SpecKeyConfig].(string)
	return value, ok
}

func (d SpecDocument) SetConfig(config string) {
	d[SpecKeyConfig] = config
}

// ChartItem is one chart of a spec. It is kept as a generic JSON object so
// that keys this module does not know about survive a round trip.
type ChartItem map[string]any

// Encodings returns the encodings object of the chart item, or nil.
func (c ChartItem) Encodings() map[string]any {
	value, _ := c["encodings"].(map[string]any)
	return value
}

// Channel returns the fields placed on one encoding channel.
func (c ChartItem) Channel(name string) []Field {
	encodings := c.Encodings()
	if encodings == nil {
		return nil
	}
	raw, _ := encodings[name].([]any)
	fields := make([]Field, 0, len(raw))
	for _, item := range raw {
		if obj, ok := item.(map[string]any); ok {
			fields = append(fields, Field(obj))
		}
	}
	return fields
}

// AppendToChannel appends fields to a channel, creating the channel and the
// encodings object when needed.
func (c ChartItem) AppendToChannel(name string, fields ...Field) {
	if len(fields) == 0 {
		return
	}
	encodings := c.Encodings()
	if encodings == nil {
		encodings = map[string]any{}
		c["encodings"] = encodings
	}
	raw, _ := encodings[name].([]any)
	for _, field := range fields {
		raw = append(raw, map[string]any(field))
	}
	encodings[name] = raw
}

// Field channel names of a chart item's encodings.
const (
	ChannelDimensions = "dimensions"
	ChannelMeasures   = "measures"
	ChannelRows       = "rows"
	ChannelColumns    = "columns"
	ChannelSize       = "size"
	ChannelShape      = "shape"
	ChannelColor      = "color"
	ChannelDetails    = "details"
	ChannelOpacity    = "opacity"
)

// PlacedChannels are the channels holding fields the user dragged onto the
// chart, as opposed to the dimensions/measures field pool.
var PlacedChannels = []string{
	ChannelRows,
	ChannelColumns,
	ChannelSize,
	ChannelShape,
	ChannelColor,
	ChannelDetails,
	ChannelOpacity,
}

// PoolFields returns dimensions followed by measures.
func (c ChartItem) PoolFields() []Field {
	return append(c.Channel(ChannelDimensions), c.Channel(ChannelMeasures)...)
}

// ParseChartItems decodes a serialized chart item list. Numbers are kept as
// json.Number so they re-serialize exactly.
func ParseChartItems(config string) ([]ChartItem, error) {
	var items []ChartItem
	if err := decodeJSON(config, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// MarshalChartItems serializes a chart item list.
func MarshalChartItems(items []ChartItem) (string, error) {
	if items == nil {
		items = []ChartItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
