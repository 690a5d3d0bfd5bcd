package core

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gwspec/internal/types"
)

func TestVersionMigratorGateBoundary(t *testing.T) {
	migrator := NewVersionMigrator(prefixRenamer{})
	tests := []struct {
		version string
		want    bool
	}{
		{version: "0.1.0", want: true},
		{version: "0.3.16", want: true},
		{version: "0.3.17a1", want: true},
		{version: "0.3.17a4", want: true},
		{version: "0.3.17b1", want: false},
		{version: "0.3.17", want: false},
		{version: "0.3.18", want: false},
		{version: "0.4.0", want: false},
	}
	for _, tt := range tests {
		got, err := migrator.NeedsMigration(tt.version)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, tt.version)
	}
}

func TestVersionMigratorPreReleaseNumbersCompareNumerically(t *testing.T) {
	migrator := VersionMigrator{Steps: []MigrationStep{{Name: "noop", MaxVersion: "1.0.0a4", Apply: identityStep}}}
	got, err := migrator.NeedsMigration("1.0.0a10")
	require.NoError(t, err)
	assert.False(t, got)
}

func TestVersionMigratorInvalidVersion(t *testing.T) {
	migrator := NewVersionMigrator(prefixRenamer{})
	err := migrator.Migrate(context.Background(), types.SpecDocument{"version": "not a version", "config": "[]"})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestVersionMigratorSkipsNewDocuments(t *testing.T) {
	config := `[{"encodings":{"dimensions":[{"fid":"a","name":"a"}],"measures":[]}}]`
	doc := types.SpecDocument{"version": "0.3.18", "config": config}
	require.NoError(t, NewVersionMigrator(prefixRenamer{}).Migrate(context.Background(), doc))
	got, _ := doc.Config()
	assert.Equal(t, config, got)
}

func TestVersionMigratorMissingVersionMigrates(t *testing.T) {
	config := `[{"encodings":{"dimensions":[{"fid":"a","name":"city"}],"measures":[]}}]`
	doc := types.SpecDocument{"config": config}
	require.NoError(t, NewVersionMigrator(prefixRenamer{}).Migrate(context.Background(), doc))
	got, _ := doc.Config()
	items := mustParseItems(t, got)
	assert.Equal(t, "enc_city", items[0].Channel(types.ChannelDimensions)[0].FID())
}

func TestVersionMigratorRejectsPresentButUnusableVersion(t *testing.T) {
	config := `[{"encodings":{"dimensions":[{"fid":"a","name":"city"}],"measures":[]}}]`
	tests := []struct {
		name    string
		version any
	}{
		{name: "empty", version: ""},
		{name: "null", version: nil},
		{name: "number", version: json.Number("0.4")},
		{name: "float", version: 0.4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := types.SpecDocument{"version": tt.version, "config": config}
			err := NewVersionMigrator(prefixRenamer{}).Migrate(context.Background(), doc)
			require.Error(t, err)
			assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
			got, _ := doc.Config()
			assert.Equal(t, config, got)
		})
	}
}

func TestVersionMigratorRunsStepsInOrder(t *testing.T) {
	var order []string
	step := func(name string) MigrationStep {
		return MigrationStep{
			Name:       name,
			MaxVersion: "0.2.0",
			Apply: func(_ context.Context, config string) (string, error) {
				order = append(order, name)
				return config + name, nil
			},
		}
	}
	migrator := VersionMigrator{Steps: []MigrationStep{
		step("first"),
		{Name: "skipped", MaxVersion: "0.0.1", Apply: identityStep},
		step("second"),
	}}
	doc := types.SpecDocument{"version": "0.1.0", "config": "x"}
	require.NoError(t, migrator.Migrate(context.Background(), doc))
	assert.Equal(t, []string{"first", "second"}, order)
	got, _ := doc.Config()
	assert.Equal(t, "xfirstsecond", got)
}

func TestVersionMigratorRejectsNonStringConfig(t *testing.T) {
	doc := types.SpecDocument{"config": []any{}}
	err := NewVersionMigrator(prefixRenamer{}).Migrate(context.Background(), doc)
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestVersionMigratorEmptyConfig(t *testing.T) {
	doc := types.SpecDocument{"config": ""}
	require.NoError(t, NewVersionMigrator(prefixRenamer{}).Migrate(context.Background(), doc))
	got, _ := doc.Config()
	assert.Equal(t, "", got)
}

func identityStep(_ context.Context, config string) (string, error) {
	return config, nil
}
