package app

import (
	"gwspec/internal/adapters"
	"gwspec/internal/core"
	"gwspec/internal/ports"
	"gwspec/internal/types"
)

type Service struct {
	Cloud   ports.CloudConfigPort
	Server  ports.ConfigServerPort
	URL     ports.SpecURLPort
	Local   ports.LocalSpecPort
	Renamer ports.ColumnRenamerPort
	IDs     ports.IDSourcePort
	Fields  ports.FieldListPort
	Output  ports.SpecOutputPort
}

// ServiceConfig carries the remote endpoints. Empty values fall back to the
// adapters' defaults.
type ServiceConfig struct {
	ConfigServerURL string
	CloudAPIURL     string
	CloudAPIKey     string
}

func NewService(cfg ServiceConfig) Service {
	return Service{
		Cloud:   adapters.NewCloudConfigAdapter(cfg.CloudAPIURL, cfg.CloudAPIKey),
		Server:  adapters.NewConfigServerAdapter(cfg.ConfigServerURL),
		URL:     adapters.NewSpecURLAdapter(),
		Local:   adapters.NewSpecFileAdapter(),
		Renamer: adapters.NewColumnRenamerAdapter(),
		IDs:     adapters.NewUUIDSource(),
		Fields:  adapters.NewFieldListFileAdapter(),
		Output:  adapters.NewSpecOutputFileAdapter(),
	}
}

func (s Service) specResolver(privacy types.PrivacyMode) core.SpecResolver {
	loader := core.SpecSourceLoader{
		Cloud:   s.Cloud,
		Server:  s.Server,
		URL:     s.URL,
		Local:   s.Local,
		Privacy: privacy,
	}
	return core.NewSpecResolver(loader, core.NewVersionMigrator(s.Renamer))
}
