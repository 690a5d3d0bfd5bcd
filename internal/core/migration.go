package core

import (
	"context"
	"fmt"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"
	"github.com/rs/zerolog/log"

	"gwspec/internal/ports"
	"gwspec/internal/types"
)

// EncodedFIDMaxVersion is the last schema version whose field ids were raw
// column names rather than encoded identifiers.
const EncodedFIDMaxVersion = "0.3.17a4"

// MigrationStep rewrites the serialized chart list of every document whose
// declared version is at or below MaxVersion.
type MigrationStep struct {
	Name       string
	MaxVersion string
	Apply      func(ctx context.Context, config string) (string, error)
}

// VersionMigrator runs the applicable steps in order. Steps are independent
// predicates on the document version, so a new schema change is one more
// entry in Steps.
type VersionMigrator struct {
	Steps []MigrationStep
}

func NewVersionMigrator(renamer ports.ColumnRenamerPort) VersionMigrator {
	return VersionMigrator{
		Steps: []MigrationStep{
			{
				Name:       "fid-to-encoded-name",
				MaxVersion: EncodedFIDMaxVersion,
				Apply:      NewFIDRewriter(renamer).Rewrite,
			},
		},
	}
}

// Migrate updates doc's config in place.
func (m VersionMigrator) Migrate(ctx context.Context, doc types.SpecDocument) error {
	version, ok := doc.Version()
	if !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid spec version %v", doc[types.SpecKeyVersion]))
	}
	steps, err := m.pendingSteps(version)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return nil
	}
	config, ok := doc.Config()
	if !ok {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("spec config must be a serialized chart list")
	}
	if config == "" {
		return nil
	}
	for _, step := range steps {
		config, err = step.Apply(ctx, config)
		if err != nil {
			return err
		}
		log.Ctx(ctx).Debug().
			Str("step", step.Name).
			Str("version", version).
			Msg("spec migration applied")
	}
	doc.SetConfig(config)
	return nil
}

func (m VersionMigrator) pendingSteps(version string) ([]MigrationStep, error) {
	current, err := parseSpecVersion(version)
	if err != nil {
		return nil, err
	}
	var out []MigrationStep
	for _, step := range m.Steps {
		limit, err := parseSpecVersion(step.MaxVersion)
		if err != nil {
			return nil, err
		}
		if current.Compare(limit) <= 0 {
			out = append(out, step)
		}
	}
	return out, nil
}

// NeedsMigration reports whether a document declaring version would be
// rewritten by m.
func (m VersionMigrator) NeedsMigration(version string) (bool, error) {
	steps, err := m.pendingSteps(version)
	if err != nil {
		return false, err
	}
	return len(steps) > 0, nil
}

func parseSpecVersion(value string) (pep440.Version, error) {
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("invalid spec version %q", value)).
			WithCause(err)
	}
	return parsed, nil
}
