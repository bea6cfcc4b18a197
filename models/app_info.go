package models

// AppInfo is served by GET /api/version. Rules lists the rule names egg
// variables may use on this panel.
type AppInfo struct {
	Version  string    `json:"version"`
	Database string    `json:"database"`
	Rules    []string  `json:"rules"`
	Build    BuildInfo `json:"build"`
}

// BuildInfo is stamped into go-panel-server with -ldflags -X.
type BuildInfo struct {
	Version string `json:"version"`
	Date    string `json:"date"`
	Commit  string `json:"commit"`
}

// NewBuildInfo fills unstamped values with "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{Version: notAvailable(version), Date: notAvailable(date), Commit: notAvailable(commit)}
}

func notAvailable(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
