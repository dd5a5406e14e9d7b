package appstore

import "github.com/JRed1989/ambari/pkg/domain"

// Slice names of the log-search application state.
const (
	AppSettings              domain.ModelName = "appSettings"
	AppState                 domain.ModelName = "appState"
	AuditLogs                domain.ModelName = "auditLogs"
	ServiceLogs              domain.ModelName = "serviceLogs"
	ServiceLogsHistogramData domain.ModelName = "serviceLogsHistogramData"
	Graphs                   domain.ModelName = "graphs"
	Hosts                    domain.ModelName = "hosts"
	UserConfigs              domain.ModelName = "userConfigs"
	Filters                  domain.ModelName = "filters"
	Clusters                 domain.ModelName = "clusters"
	Components               domain.ModelName = "components"
	ServiceLogsFields        domain.ModelName = "serviceLogsFields"
	AuditLogsFields          domain.ModelName = "auditLogsFields"
)

// Kind tells collection slices from object slices.
type Kind string

const (
	KindCollection Kind = "collection"
	KindObject     Kind = "object"
)

// SliceInfo describes one registered slice.
type SliceInfo struct {
	Model domain.ModelName `json:"model" yaml:"model"`
	Kind  Kind             `json:"kind" yaml:"kind"`
	Item  string           `json:"item" yaml:"item"` // Go type of the items (or the object shape)
}
