package core

import (
	"path/filepath"
	"strings"
	"unicode/utf8"

	"gwspec/internal/types"
)

const (
	ksfPrefix          = "ksf://"
	configIDLength     = 32
	maxSpecFileNameLen = 200
)

// ClassifySource decides which source a raw spec string refers to. The
// checks run in a fixed priority order; anything that is not recognised as
// another source is treated as a local file path.
func ClassifySource(spec string) types.SourceTag {
	switch {
	case spec == "":
		return types.SourceTagEmptyString
	case IsJSONSpec(spec):
		return types.SourceTagJSONString
	case strings.HasPrefix(spec, ksfPrefix):
		return types.SourceTagJSONKSF
	case strings.HasPrefix(spec, "http:") || strings.HasPrefix(spec, "https:"):
		return types.SourceTagJSONHTTP
	case IsConfigID(spec):
		return types.SourceTagJSONServer
	default:
		return types.SourceTagJSONFile
	}
}

// IsJSONSpec reports whether s is a JSON object or array. Scalars are
// rejected so that a 32 digit id is never mistaken for a JSON number.
func IsJSONSpec(s string) bool {
	value, err := types.ParseSpecJSON(s)
	if err != nil {
		return false
	}
	switch value.(type) {
	case map[string]any, []any:
		return true
	default:
		return false
	}
}

// IsConfigID reports whether s has the shape of a remote config id: exactly
// 32 hexadecimal digits.
func IsConfigID(s string) bool {
	if len(s) != configIDLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return false
		}
	}
	return true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func specFileNameTooLong(path string) bool {
	return utf8.RuneCountInString(filepath.Base(path)) > maxSpecFileNameLen
}
