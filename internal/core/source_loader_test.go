package core

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gwspec/internal/types"
)

func TestSpecSourceLoaderOfflineRefusesNetworkSources(t *testing.T) {
	specs := []string{
		"ksf://x",
		"http://x",
		"https://x",
		strings.Repeat("ab", 16),
	}
	for _, spec := range specs {
		remote := &fakeRemote{text: "[]"}
		loader := SpecSourceLoader{
			Cloud:   remote,
			Server:  remote,
			URL:     remote,
			Local:   fsLocal{},
			Privacy: types.PrivacyModeOffline,
		}
		_, _, err := loader.Load(context.Background(), spec)
		require.Error(t, err, spec)
		assert.True(t, IsPrivacyViolation(err), spec)
		assert.Equal(t, errbuilder.CodePermissionDenied, errbuilder.CodeOf(err))
		assert.Empty(t, remote.calls, "no network call expected for %s", spec)
	}
}

func TestSpecSourceLoaderOfflineAllowsLiteralAndFile(t *testing.T) {
	loader := SpecSourceLoader{Local: fsLocal{}, Privacy: types.PrivacyModeOffline}

	text, tag, err := loader.Load(context.Background(), `[{"encodings": {}}]`)
	require.NoError(t, err)
	assert.Equal(t, types.SourceTagJSONString, tag)
	assert.Equal(t, `[{"encodings": {}}]`, text)

	path := filepath.Join(t.TempDir(), "spec.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"config": "[]"}`), 0644))
	text, tag, err = loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, types.SourceTagJSONFile, tag)
	assert.Equal(t, `{"config": "[]"}`, text)
}

func TestSpecSourceLoaderDispatch(t *testing.T) {
	configID := "0123456789abcdef0123456789abcdef"
	tests := []struct {
		name     string
		spec     string
		wantTag  types.SourceTag
		wantCall string
	}{
		{name: "ksf strips prefix", spec: "ksf://team/chart", wantTag: types.SourceTagJSONKSF, wantCall: "team/chart"},
		{name: "url passes through", spec: "https://example.com/a.json", wantTag: types.SourceTagJSONHTTP, wantCall: "https://example.com/a.json"},
		{name: "config id", spec: configID, wantTag: types.SourceTagJSONServer, wantCall: configID},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			remote := &fakeRemote{text: `{"config": "[]"}`}
			loader := SpecSourceLoader{Cloud: remote, Server: remote, URL: remote, Privacy: types.PrivacyModeEvents}
			text, tag, err := loader.Load(context.Background(), tt.spec)
			require.NoError(t, err)
			assert.Equal(t, tt.wantTag, tag)
			assert.Equal(t, `{"config": "[]"}`, text)
			assert.Equal(t, []string{tt.wantCall}, remote.calls)
		})
	}
}

func TestSpecSourceLoaderPropagatesTransportErrors(t *testing.T) {
	transportErr := errors.New("connection refused")
	remote := &fakeRemote{err: transportErr}
	loader := SpecSourceLoader{URL: remote}
	_, _, err := loader.Load(context.Background(), "http://example.com")
	assert.Same(t, transportErr, err)
}

func TestSpecSourceLoaderMissingFileIsCreated(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")
	loader := SpecSourceLoader{Local: fsLocal{}}
	text, tag, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	assert.Equal(t, "", text)
	assert.Equal(t, types.SourceTagJSONFile, tag)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, int64(0), info.Size())
}

func TestSpecSourceLoaderFileNameTooLong(t *testing.T) {
	path := filepath.Join(t.TempDir(), strings.Repeat("a", 201))
	loader := SpecSourceLoader{Local: fsLocal{}}
	_, _, err := loader.Load(context.Background(), path)
	require.Error(t, err)
	assert.True(t, IsPathTooLong(err))
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr))
}

func TestSpecSourceLoaderMissingAdapter(t *testing.T) {
	loader := SpecSourceLoader{}
	_, _, err := loader.Load(context.Background(), "ksf://x")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
}
