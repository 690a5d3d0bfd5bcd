package core

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

const (
	msgPrivacyViolation = "due to privacy policy, this spec source can't be used offline"
	msgInvalidConfigID  = "invalid config id"
	msgPathTooLong      = "spec file name too long"
	msgMalformedSpec    = "spec is not a valid json"
)

func privacyViolationError() error {
	return errbuilder.New().
		WithCode(errbuilder.CodePermissionDenied).
		WithMsg(msgPrivacyViolation)
}

// InvalidConfigIDError is returned by config server adapters when the lookup
// service rejects an id.
func InvalidConfigIDError(configID string) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeNotFound).
		WithMsg(fmt.Sprintf("%s: %s", msgInvalidConfigID, configID))
}

func pathTooLongError() error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msgPathTooLong)
}

func malformedSpecError(cause error) error {
	return errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg(msgMalformedSpec).
		WithCause(cause)
}

func IsPrivacyViolation(err error) bool {
	return hasCodeAndPrefix(err, errbuilder.CodePermissionDenied, msgPrivacyViolation)
}

func IsInvalidConfigID(err error) bool {
	return hasCodeAndPrefix(err, errbuilder.CodeNotFound, msgInvalidConfigID)
}

func IsPathTooLong(err error) bool {
	return hasCodeAndPrefix(err, errbuilder.CodeInvalidArgument, msgPathTooLong)
}

func IsMalformedSpec(err error) bool {
	return hasCodeAndPrefix(err, errbuilder.CodeInvalidArgument, msgMalformedSpec)
}

func hasCodeAndPrefix(err error, code errbuilder.ErrCode, prefix string) bool {
	if err == nil || errbuilder.CodeOf(err) != code {
		return false
	}
	var builder *errbuilder.ErrBuilder
	if !errors.As(err, &builder) {
		return false
	}
	return strings.HasPrefix(builder.Msg, prefix)
}
