package models

// unknownBuildValue replaces build metadata the linker did not inject.
const unknownBuildValue = "N/A"

// AppBuildInfo is the version, date and commit stamped into the itemsync
// binary with -ldflags. The CLI prints it from `itemsync version` and uses
// the version as the default App.Version reported by /api/version.
type AppBuildInfo struct {
	buildVersion string
	buildDate    string
	buildCommit  string
}

// NewAppBuildInfo returns build info with every empty value replaced by "N/A".
func NewAppBuildInfo(buildVersion, buildDate, buildCommit string) AppBuildInfo {
	return AppBuildInfo{
		buildVersion: orUnknown(buildVersion),
		buildDate:    orUnknown(buildDate),
		buildCommit:  orUnknown(buildCommit),
	}
}

func (a AppBuildInfo) BuildVersion() string { return a.buildVersion }

func (a AppBuildInfo) BuildDate() string { return a.buildDate }

func (a AppBuildInfo) BuildCommit() string { return a.buildCommit }

func orUnknown(v string) string {
	if v == "" {
		return unknownBuildValue
	}
	return v
}
