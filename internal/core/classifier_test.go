package core

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"gwspec/internal/types"
)

func TestClassifySource(t *testing.T) {
	tests := []struct {
		name string
		spec string
		want types.SourceTag
	}{
		{name: "empty", spec: "", want: types.SourceTagEmptyString},
		{name: "json object", spec: `{"config": "[]"}`, want: types.SourceTagJSONString},
		{name: "json array", spec: `[{"encodings": {}}]`, want: types.SourceTagJSONString},
		{name: "json with whitespace", spec: "  [ ]\n", want: types.SourceTagJSONString},
		{name: "ksf", spec: "ksf://workspace/chart", want: types.SourceTagJSONKSF},
		{name: "http", spec: "http://example.com/spec.json", want: types.SourceTagJSONHTTP},
		{name: "https", spec: "https://example.com/spec.json", want: types.SourceTagJSONHTTP},
		{name: "config id", spec: "0123456789abcdefABCDEF0123456789", want: types.SourceTagJSONServer},
		{name: "local file", spec: "./charts/spec.json", want: types.SourceTagJSONFile},
		{name: "json scalar is a path", spec: "42", want: types.SourceTagJSONFile},
		{name: "truncated json is a path", spec: `{"config": `, want: types.SourceTagJSONFile},
		{name: "trailing data is a path", spec: `[] []`, want: types.SourceTagJSONFile},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, ClassifySource(tt.spec)); diff != "" {
				t.Fatalf("unexpected source (-want +got):\n%s", diff)
			}
		})
	}
}

func TestClassifySourceConfigIDShape(t *testing.T) {
	ids := []string{
		strings.Repeat("0", 32),
		strings.Repeat("f", 32),
		strings.Repeat("A", 32),
		"5f3c1e2d9b8a7f6e5d4c3b2a19081726",
	}
	for _, id := range ids {
		if got := ClassifySource(id); got != types.SourceTagJSONServer {
			t.Fatalf("expected json_server for %q, got %s", id, got)
		}
		nonHex := "g" + id[1:]
		if got := ClassifySource(nonHex); got == types.SourceTagJSONServer {
			t.Fatalf("expected non-hex %q not to be a config id", nonHex)
		}
		if got := ClassifySource(id[1:]); got == types.SourceTagJSONServer {
			t.Fatalf("expected 31 chars %q not to be a config id", id[1:])
		}
		if got := ClassifySource(id + "0"); got == types.SourceTagJSONServer {
			t.Fatalf("expected 33 chars not to be a config id")
		}
	}
}

func TestIsConfigIDRejectsHexPrefix(t *testing.T) {
	if IsConfigID("0x" + strings.Repeat("a", 30)) {
		t.Fatalf("0x prefix must not count as hex digits")
	}
}

func TestSpecFileNameTooLong(t *testing.T) {
	if specFileNameTooLong("dir/" + strings.Repeat("a", 200)) {
		t.Fatalf("200 chars must be accepted")
	}
	if !specFileNameTooLong("dir/" + strings.Repeat("a", 201)) {
		t.Fatalf("201 chars must be rejected")
	}
	if specFileNameTooLong(strings.Repeat("d", 300) + "/spec.json") {
		t.Fatalf("only the base name counts")
	}
}
