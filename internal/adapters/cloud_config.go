package adapters

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"gwspec/internal/ports"
)

const cloudConfigTimeout = 15 * time.Second

const cloudAPIKeyHeader = "kanaries-api-key"

type cloudConfigResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    struct {
		Config string `json:"config"`
	} `json:"data"`
}

// CloudConfigAdapter reads chart specs saved in a cloud workspace, addressed
// as ksf://<path>.
type CloudConfigAdapter struct {
	Endpoint string
	APIKey   string
}

func NewCloudConfigAdapter(endpoint string, apiKey string) CloudConfigAdapter {
	return CloudConfigAdapter{
		Endpoint: strings.TrimRight(strings.TrimSpace(endpoint), "/"),
		APIKey:   strings.TrimSpace(apiKey),
	}
}

func (a CloudConfigAdapter) ReadConfig(ctx context.Context, path string) (string, error) {
	if a.Endpoint == "" {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("cloud api url is not configured")
	}
	requestURL := a.Endpoint + "/pygConfig?" + url.Values{"path": []string{path}}.Encode()
	header := http.Header{}
	if a.APIKey != "" {
		header.Set(cloudAPIKeyHeader, a.APIKey)
	}
	body, err := httpGet(ctx, requestURL, cloudConfigTimeout, header)
	if err != nil {
		return "", err
	}
	var resp cloudConfigResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to decode cloud config response").
			WithCause(err)
	}
	if !resp.Success {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("cloud config request failed: " + resp.Message)
	}
	return resp.Data.Config, nil
}

var _ ports.CloudConfigPort = CloudConfigAdapter{}
