package adapters

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"gwspec/internal/ports"
	"gwspec/internal/types"
)

// FieldListFileAdapter loads a dataset field list from a YAML or JSON file.
// The file holds either a list of fields or a mapping with a "fields" list.
type FieldListFileAdapter struct{}

func NewFieldListFileAdapter() FieldListFileAdapter {
	return FieldListFileAdapter{}
}

type fieldListFile struct {
	Fields []map[string]any `yaml:"fields"`
}

func (a FieldListFileAdapter) LoadFields(path string) ([]types.Field, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("field list file not found").
			WithCause(err)
	}
	raw, err := parseFieldList(data)
	if err != nil {
		return nil, err
	}
	fields := make([]types.Field, 0, len(raw))
	for i, entry := range raw {
		field := types.Field(entry)
		if field.FID() == "" {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("field %d has no fid", i))
		}
		switch field.AnalyticType() {
		case types.AnalyticTypeDimension, types.AnalyticTypeMeasure:
		default:
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("field %s has invalid analyticType %q", field.FID(), field.AnalyticType()))
		}
		fields = append(fields, field)
	}
	return fields, nil
}

func parseFieldList(data []byte) ([]map[string]any, error) {
	var list []map[string]any
	if err := yaml.Unmarshal(data, &list); err == nil {
		return list, nil
	}
	var file fieldListFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse field list").
			WithCause(err)
	}
	return file.Fields, nil
}

var _ ports.FieldListPort = FieldListFileAdapter{}
