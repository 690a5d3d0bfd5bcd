package adapters

import (
	"context"
	"encoding/json"
	"net/url"
	"strings"
	"time"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"gwspec/internal/core"
	"gwspec/internal/ports"
)

// DefaultConfigServerURL is the public lookup endpoint for shared chart
// configs.
const DefaultConfigServerURL = "https://i4rwxmw117.execute-api.us-east-1.amazonaws.com/default/pygwalker-config"

const configServerTimeout = 30 * time.Second

type configServerResponse struct {
	Code int `json:"code"`
	Data struct {
		ConfigJSON string `json:"config_json"`
	} `json:"data"`
}

// ConfigServerAdapter looks up shared chart configs by id.
type ConfigServerAdapter struct {
	Endpoint string
}

func NewConfigServerAdapter(endpoint string) ConfigServerAdapter {
	if strings.TrimSpace(endpoint) == "" {
		endpoint = DefaultConfigServerURL
	}
	return ConfigServerAdapter{Endpoint: endpoint}
}

func (a ConfigServerAdapter) FetchConfig(ctx context.Context, configID string) (string, error) {
	lookupURL, err := url.Parse(a.Endpoint)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid config server url").
			WithCause(err)
	}
	query := lookupURL.Query()
	query.Set("config_id", configID)
	lookupURL.RawQuery = query.Encode()

	body, err := httpGet(ctx, lookupURL.String(), configServerTimeout, nil)
	if err != nil {
		return "", err
	}
	var resp configServerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to decode config server response").
			WithCause(err)
	}
	if resp.Code != 0 {
		return "", core.InvalidConfigIDError(configID)
	}
	return resp.Data.ConfigJSON, nil
}

var _ ports.ConfigServerPort = ConfigServerAdapter{}
