package manifest

type YAMLManifest struct {
	Romconv YAMLSettings      `yaml:"romconv"`
	Vars    map[string]string `yaml:"vars"`
	Jobs    []YAMLJob         `yaml:"jobs"`
}

type YAMLSettings struct {
	LogFile string      `yaml:"log_file"`
	Reports YAMLReports `yaml:"reports"`
}

type YAMLReports struct {
	Enabled *bool  `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

type YAMLJob struct {
	Name   string `yaml:"name"`
	Kind   string `yaml:"kind"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}
