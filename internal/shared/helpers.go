// Package shared provides common utility functions used across multiple
// packages in the gwspec codebase.
package shared

import (
	"fmt"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/errbuilder-go"
)

// HTTPStatusError creates a formatted error for non-2xx HTTP responses.
func HTTPStatusError(status int, url string) error {
	return fmt.Errorf("status=%d url=%s", status, url)
}

// HTTPStatusErrorWithBody creates a formatted error that includes the
// response body for non-2xx HTTP responses.
func HTTPStatusErrorWithBody(status int, url string, body string) error {
	return fmt.Errorf("status=%d url=%s response=%s", status, url, body)
}

// UTF8Text converts data to a string, rejecting invalid UTF-8.
func UTF8Text(data []byte, source string) (string, error) {
	if !utf8.Valid(data) {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("%s is not valid utf-8", source))
	}
	return string(data), nil
}
