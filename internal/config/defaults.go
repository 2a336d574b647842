package config

const (
	defaultAPIBaseURL     = "https://api.spacexdata.com/v4"
	defaultSnapshotURL    = "https://cf-courses-data.s3.us.cloud-object-storage.appdomain.cloud/IBM-DS0321EN-SkillsNetwork/datasets/API_call_spacex_api.json"
	defaultUserAgent      = "launchset/dev"
	defaultDateCutoff     = "2020-11-13"
	defaultFamily         = "Falcon 9"
	defaultDataDir        = "~/.local/share/launchset"
	defaultLogDir         = "~/.local/share/launchset/logs"
	defaultExportDir      = "~/.local/share/launchset/exports"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultConfigLocation = "~/.config/launchset/config.toml"
	projectConfigName     = "launchset.toml"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			BaseURL:     defaultAPIBaseURL,
			SnapshotURL: defaultSnapshotURL,
			UserAgent:   defaultUserAgent,
		},
		Pipeline: Pipeline{
			DateCutoff: defaultDateCutoff,
			Family:     defaultFamily,
		},
		Paths: Paths{
			DataDir:   defaultDataDir,
			LogDir:    defaultLogDir,
			ExportDir: defaultExportDir,
		},
		Export: Export{
			CSV: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
