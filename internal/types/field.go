package types

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Field is a field reference inside a chart item, or an entry of a
// dataset's field list. All attributes are preserved, including ones this
// module does not interpret (semanticType, expression, ...).
type Field map[string]any

func (f Field) FID() string {
	value, _ := f["fid"].(string)
	return value
}

func (f Field) Name() string {
	value, _ := f["name"].(string)
	return value
}

func (f Field) AnalyticType() AnalyticType {
	value, _ := f["analyticType"].(string)
	return AnalyticType(value)
}

func (f Field) AggName() string {
	value, _ := f["aggName"].(string)
	return value
}

func (f Field) Computed() bool {
	value, _ := f["computed"].(bool)
	return value
}

// IsSentinel reports whether the field is one of the synthetic pivot fields.
func (f Field) IsSentinel() bool {
	fid := f.FID()
	return fid == MeasureValueFID || fid == MeasureKeyFID
}

// Clone returns a shallow copy of the field's attributes.
func (f Field) Clone() Field {
	out := make(Field, len(f)+2)
	for key, value := range f {
		out[key] = value
	}
	return out
}

func decodeJSON(text string, target any) error {
	decoder := json.NewDecoder(bytes.NewReader([]byte(text)))
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return err
	}
	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return errTrailingData
	}
	return nil
}

var errTrailingData = errors.New("invalid character after top-level value")

// ParseSpecJSON decodes any JSON value, keeping numbers as json.Number.
func ParseSpecJSON(text string) (any, error) {
	var value any
	if err := decodeJSON(text, &value); err != nil {
		return nil, err
	}
	return value, nil
}
