package core

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/require"

	"gwspec/internal/types"
)

type fakeRemote struct {
	text  string
	err   error
	calls []string
}

func (f *fakeRemote) ReadConfig(_ context.Context, path string) (string, error) {
	f.calls = append(f.calls, path)
	return f.text, f.err
}

func (f *fakeRemote) FetchConfig(_ context.Context, configID string) (string, error) {
	f.calls = append(f.calls, configID)
	return f.text, f.err
}

func (f *fakeRemote) FetchURL(_ context.Context, url string) (string, error) {
	f.calls = append(f.calls, url)
	return f.text, f.err
}

// fsLocal is a LocalSpecPort on the real filesystem.
type fsLocal struct{}

func (fsLocal) Exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, err
}

func (fsLocal) ReadSpec(path string) (string, error) {
	data, err := os.ReadFile(path)
	return string(data), err
}

func (fsLocal) CreateEmpty(path string) error {
	return os.WriteFile(path, nil, 0644)
}

type prefixRenamer struct{}

func (prefixRenamer) RenameColumns(names []string) []string {
	out := make([]string, len(names))
	for i, name := range names {
		out[i] = "enc_" + name
	}
	return out
}

type shortRenamer struct{}

func (shortRenamer) RenameColumns(names []string) []string {
	return names[:len(names)-1]
}

type sequenceIDs struct {
	next int
}

func (s *sequenceIDs) NewID() string {
	s.next++
	return fmt.Sprintf("id%04d", s.next)
}

func field(fid, name string, analytic types.AnalyticType) map[string]any {
	return map[string]any{"fid": fid, "name": name, "analyticType": string(analytic)}
}

func encodings(dimensions, measures []any, placed map[string][]any) map[string]any {
	out := map[string]any{
		types.ChannelDimensions: dimensions,
		types.ChannelMeasures:   measures,
	}
	for _, channel := range types.PlacedChannels {
		out[channel] = []any{}
	}
	for channel, fields := range placed {
		out[channel] = fields
	}
	return out
}

func mustParseItems(t *testing.T, config string) []types.ChartItem {
	t.Helper()
	items, err := types.ParseChartItems(config)
	require.NoError(t, err)
	return items
}

func mustMarshalItems(t *testing.T, items []types.ChartItem) string {
	t.Helper()
	config, err := types.MarshalChartItems(items)
	require.NoError(t, err)
	return config
}

func mustParseJSON(t *testing.T, text string) any {
	t.Helper()
	value, err := types.ParseSpecJSON(text)
	require.NoError(t, err)
	return value
}
