package app

import (
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"gwspec/internal/types"
)

// ParsePrivacyMode normalizes a configured privacy value. Empty means
// events, the least restrictive mode.
func ParsePrivacyMode(value string) (types.PrivacyMode, error) {
	mode := types.PrivacyMode(strings.ToLower(strings.TrimSpace(value)))
	switch mode {
	case "":
		return types.PrivacyModeEvents, nil
	case types.PrivacyModeOffline, types.PrivacyModeUpdateOnly, types.PrivacyModeEvents:
		return mode, nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported privacy mode: %s", value))
	}
}
