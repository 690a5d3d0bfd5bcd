// Package testutil provides shared test helpers used across integration,
// e2e, and unit test packages.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// LegacySpec is a chart list in the pre-0.3.17 shape, where field ids are
// raw column names.
const LegacySpec = `[{"visId": "chart-1", "name": "Price by city", "encodings": {"dimensions": [{"fid": "city", "name": "city", "analyticType": "dimension"}, {"fid": "gw_mea_key_fid", "name": "Measure names", "analyticType": "dimension"}], "measures": [{"fid": "price", "name": "price", "analyticType": "measure"}, {"fid": "gw_mea_val_fid", "name": "Measure values", "analyticType": "measure"}], "rows": [{"fid": "city", "name": "city", "analyticType": "dimension"}], "columns": [{"fid": "price", "name": "price", "analyticType": "measure", "aggName": "sum"}], "size": [], "shape": [], "color": [], "details": [], "opacity": []}, "config": {"sorted": "price_sum"}}]`

// RepoRoot returns the absolute path to the repository root by walking
// up from the current working directory. It fails the test if the
// working directory cannot be determined.
func RepoRoot(t *testing.T) string {
	t.Helper()
	dir, err := os.Getwd()
	require.NoError(t, err)
	return filepath.Clean(filepath.Join(dir, "..", ".."))
}

// WriteFile writes content under dir and returns the full path.
func WriteFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}
