package domain

// AppSettings holds user-facing dashboard preferences (object slice).
type AppSettings struct {
	Timezone     string `json:"timeZone" yaml:"timeZone" mapstructure:"timeZone"`
	LogsType     string `json:"logsType" yaml:"logsType" mapstructure:"logsType"`
	PageSize     int    `json:"pageSize" yaml:"pageSize" mapstructure:"pageSize"`
	DarkMode     bool   `json:"darkMode" yaml:"darkMode" mapstructure:"darkMode"`
	SortingField string `json:"sortingField,omitempty" yaml:"sortingField,omitempty" mapstructure:"sortingField,omitempty"`
}

// AppState holds transient UI flags (object slice).
type AppState struct {
	IsAuthorized      bool   `json:"isAuthorized" yaml:"isAuthorized" mapstructure:"isAuthorized"`
	IsInitialLoading  bool   `json:"isInitialLoading" yaml:"isInitialLoading" mapstructure:"isInitialLoading"`
	IsLoginInProgress bool   `json:"isLoginInProgress" yaml:"isLoginInProgress" mapstructure:"isLoginInProgress"`
	ActiveLogsType    string `json:"activeLogsType" yaml:"activeLogsType" mapstructure:"activeLogsType"`
}

// AuditLog is one entry of the access audit stream.
type AuditLog struct {
	ID        string   `json:"id" yaml:"id" mapstructure:"id"`
	Repo      string   `json:"repo" yaml:"repo" mapstructure:"repo"`
	ReqUser   string   `json:"reqUser" yaml:"reqUser" mapstructure:"reqUser"`
	Resource  string   `json:"resource" yaml:"resource" mapstructure:"resource"`
	Action    string   `json:"action" yaml:"action" mapstructure:"action"`
	Result    int      `json:"result" yaml:"result" mapstructure:"result"`
	Cluster   string   `json:"cluster" yaml:"cluster" mapstructure:"cluster"`
	EventTime int64    `json:"evtTime" yaml:"evtTime" mapstructure:"evtTime"`
	Tags      []string `json:"tags,omitempty" yaml:"tags,omitempty" mapstructure:"tags"`
}

func (l AuditLog) EntityID() string { return l.ID }

// ServiceLog is one line emitted by a cluster component.
type ServiceLog struct {
	ID      string `json:"id" yaml:"id" mapstructure:"id"`
	Type    string `json:"type" yaml:"type" mapstructure:"type"`
	Level   string `json:"level" yaml:"level" mapstructure:"level"`
	Message string `json:"log_message" yaml:"log_message" mapstructure:"log_message"`
	Host    string `json:"host" yaml:"host" mapstructure:"host"`
	Cluster string `json:"cluster" yaml:"cluster" mapstructure:"cluster"`
	File    string `json:"file,omitempty" yaml:"file,omitempty" mapstructure:"file"`
	LineNum int    `json:"line_number,omitempty" yaml:"line_number,omitempty" mapstructure:"line_number"`
	LogTime int64  `json:"logtime" yaml:"logtime" mapstructure:"logtime"`
}

func (l ServiceLog) EntityID() string { return l.ID }

// BarGraph is one series of the service log histogram.
type BarGraph struct {
	Name       string           `json:"name" yaml:"name" mapstructure:"name"`
	DataCounts []GraphDataPoint `json:"dataCount" yaml:"dataCount" mapstructure:"dataCount"`
}

func (b BarGraph) EntityID() string { return b.Name }

// GraphDataPoint is a single (name, value) sample.
type GraphDataPoint struct {
	Name  string `json:"name" yaml:"name" mapstructure:"name"`
	Value string `json:"value" yaml:"value" mapstructure:"value"`
}

// Graph is a named aggregation over a log field.
type Graph struct {
	Name       string           `json:"name" yaml:"name" mapstructure:"name"`
	Count      string           `json:"count" yaml:"count" mapstructure:"count"`
	DataList   []Graph          `json:"dataList,omitempty" yaml:"dataList,omitempty" mapstructure:"dataList"`
	DataCounts []GraphDataPoint `json:"dataCount,omitempty" yaml:"dataCount,omitempty" mapstructure:"dataCount"`
}

func (g Graph) EntityID() string { return g.Name }

// Node is a host (or any tree node) with its component counts.
type Node struct {
	Name      string      `json:"name" yaml:"name" mapstructure:"name"`
	Type      string      `json:"type,omitempty" yaml:"type,omitempty" mapstructure:"type"`
	Value     string      `json:"value,omitempty" yaml:"value,omitempty" mapstructure:"value"`
	IsParent  bool        `json:"isParent" yaml:"isParent" mapstructure:"isParent"`
	IsRoot    bool        `json:"isRoot" yaml:"isRoot" mapstructure:"isRoot"`
	Children  []Node      `json:"childs,omitempty" yaml:"childs,omitempty" mapstructure:"childs"`
	LogLevels []NodeCount `json:"logLevelCount,omitempty" yaml:"logLevelCount,omitempty" mapstructure:"logLevelCount"`
}

func (n Node) EntityID() string { return n.Name }

// NodeCount is a per-level counter attached to a Node.
type NodeCount struct {
	Name  string `json:"name" yaml:"name" mapstructure:"name"`
	Value string `json:"value" yaml:"value" mapstructure:"value"`
}

// UserConfig is a saved filter preset owned by a user.
type UserConfig struct {
	ID         string   `json:"id" yaml:"id" mapstructure:"id"`
	UserName   string   `json:"userName" yaml:"userName" mapstructure:"userName"`
	FilterName string   `json:"filtername" yaml:"filtername" mapstructure:"filtername"`
	Values     string   `json:"values" yaml:"values" mapstructure:"values"`
	RowType    string   `json:"rowType" yaml:"rowType" mapstructure:"rowType"`
	ShareNames []string `json:"shareNameList,omitempty" yaml:"shareNameList,omitempty" mapstructure:"shareNameList"`
}

func (c UserConfig) EntityID() string { return c.ID }

// Filter is the per-component log level filter.
type Filter struct {
	ID             string   `json:"id" yaml:"id" mapstructure:"id"`
	Label          string   `json:"label" yaml:"label" mapstructure:"label"`
	Hosts          []string `json:"hosts,omitempty" yaml:"hosts,omitempty" mapstructure:"hosts"`
	DefaultLevels  []string `json:"defaultLevels,omitempty" yaml:"defaultLevels,omitempty" mapstructure:"defaultLevels"`
	OverrideLevels []string `json:"overrideLevels,omitempty" yaml:"overrideLevels,omitempty" mapstructure:"overrideLevels"`
	ExpiryTime     string   `json:"expiryTime,omitempty" yaml:"expiryTime,omitempty" mapstructure:"expiryTime"`
}

func (f Filter) EntityID() string { return f.ID }

// ServiceLogField describes one searchable service log column.
type ServiceLogField struct {
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	DisplayName string `json:"displayName" yaml:"displayName" mapstructure:"displayName"`
	IsAvailable bool   `json:"isAvailable" yaml:"isAvailable" mapstructure:"isAvailable"`
	IsDisplayed bool   `json:"isDisplayed" yaml:"isDisplayed" mapstructure:"isDisplayed"`
}

func (f ServiceLogField) EntityID() string { return f.Name }

// AuditLogField describes one searchable audit log column.
type AuditLogField struct {
	Name        string `json:"name" yaml:"name" mapstructure:"name"`
	DisplayName string `json:"displayName" yaml:"displayName" mapstructure:"displayName"`
	IsAvailable bool   `json:"isAvailable" yaml:"isAvailable" mapstructure:"isAvailable"`
	IsDisplayed bool   `json:"isDisplayed" yaml:"isDisplayed" mapstructure:"isDisplayed"`
}

func (f AuditLogField) EntityID() string { return f.Name }
