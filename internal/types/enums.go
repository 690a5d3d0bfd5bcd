package types

// SourceTag records where a resolved chart spec came from.
type SourceTag string

const (
	SourceTagEmptyString SourceTag = "empty_string"
	SourceTagJSONString  SourceTag = "json_string"
	SourceTagJSONKSF     SourceTag = "json_ksf"
	SourceTagJSONHTTP    SourceTag = "json_http"
	SourceTagJSONServer  SourceTag = "json_server"
	SourceTagJSONFile    SourceTag = "json_file"
)

// RequiresNetwork reports whether resolving this source reaches out to a
// remote service.
func (t SourceTag) RequiresNetwork() bool {
	switch t {
	case SourceTagJSONKSF, SourceTagJSONHTTP, SourceTagJSONServer:
		return true
	default:
		return false
	}
}

type PrivacyMode string

const (
	PrivacyModeOffline    PrivacyMode = "offline"
	PrivacyModeUpdateOnly PrivacyMode = "update-only"
	PrivacyModeEvents     PrivacyMode = "events"
)

type AnalyticType string

const (
	AnalyticTypeDimension AnalyticType = "dimension"
	AnalyticTypeMeasure   AnalyticType = "measure"
)

// Synthetic pivot fields. They never correspond to a dataset column and are
// never renamed.
const (
	MeasureValueFID = "gw_mea_val_fid"
	MeasureKeyFID   = "gw_mea_key_fid"
)
