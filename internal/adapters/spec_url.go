package adapters

import (
	"context"
	"time"

	"gwspec/internal/ports"
	"gwspec/internal/shared"
)

const specURLTimeout = 15 * time.Second

// SpecURLAdapter downloads a chart spec from an arbitrary URL.
type SpecURLAdapter struct{}

func NewSpecURLAdapter() SpecURLAdapter {
	return SpecURLAdapter{}
}

func (a SpecURLAdapter) FetchURL(ctx context.Context, url string) (string, error) {
	body, err := httpGet(ctx, url, specURLTimeout, nil)
	if err != nil {
		return "", err
	}
	return shared.UTF8Text(body, "spec response")
}

var _ ports.SpecURLPort = SpecURLAdapter{}
