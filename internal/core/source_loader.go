package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"gwspec/internal/ports"
	"gwspec/internal/types"
)

// SpecSourceLoader fetches the raw text of a chart spec from whichever
// source the spec string refers to. Network-backed sources are refused when
// Privacy is offline; literal JSON and local files keep working.
type SpecSourceLoader struct {
	Cloud   ports.CloudConfigPort
	Server  ports.ConfigServerPort
	URL     ports.SpecURLPort
	Local   ports.LocalSpecPort
	Privacy types.PrivacyMode
}

func (l SpecSourceLoader) Load(ctx context.Context, spec string) (string, types.SourceTag, error) {
	tag := ClassifySource(spec)
	log.Ctx(ctx).Debug().Str("source", string(tag)).Msg("spec source classified")

	if tag.RequiresNetwork() && l.Privacy == types.PrivacyModeOffline {
		return "", "", privacyViolationError()
	}

	var (
		text string
		err  error
	)
	switch tag {
	case types.SourceTagEmptyString:
		return "", tag, nil
	case types.SourceTagJSONString:
		return spec, tag, nil
	case types.SourceTagJSONKSF:
		if l.Cloud == nil {
			return "", "", missingAdapterError(tag)
		}
		text, err = l.Cloud.ReadConfig(ctx, strings.TrimPrefix(spec, ksfPrefix))
	case types.SourceTagJSONHTTP:
		if l.URL == nil {
			return "", "", missingAdapterError(tag)
		}
		text, err = l.URL.FetchURL(ctx, spec)
	case types.SourceTagJSONServer:
		if l.Server == nil {
			return "", "", missingAdapterError(tag)
		}
		text, err = l.Server.FetchConfig(ctx, spec)
	default:
		text, err = l.loadLocal(spec)
	}
	if err != nil {
		return "", "", err
	}
	return text, tag, nil
}

// loadLocal reads an existing spec file. A missing file is created empty so
// the UI can save into it later.
func (l SpecSourceLoader) loadLocal(path string) (string, error) {
	if specFileNameTooLong(path) {
		return "", pathTooLongError()
	}
	if l.Local == nil {
		return "", missingAdapterError(types.SourceTagJSONFile)
	}
	exists, err := l.Local.Exists(path)
	if err != nil {
		return "", err
	}
	if exists {
		return l.Local.ReadSpec(path)
	}
	if err := l.Local.CreateEmpty(path); err != nil {
		return "", err
	}
	return "", nil
}

func missingAdapterError(tag types.SourceTag) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeFailedPrecondition).
		WithMsg(fmt.Sprintf("no adapter configured for %s sources", tag))
}
