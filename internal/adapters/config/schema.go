package config

// SettingsFile represents the structure of mountbar's config.yaml.
type SettingsFile struct {
	HelperPath  string `yaml:"helper_path"`
	SocketPath  string `yaml:"socket_path"`
	LogPath     string `yaml:"log_path"`
	LogLines    *int   `yaml:"log_lines"`
	JSONLogs    bool   `yaml:"json_logs"`
	TaskWorkers *int   `yaml:"task_workers"`
	Trace       bool   `yaml:"trace"`
}
