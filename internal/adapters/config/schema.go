package config

// Wispfile is the on-disk layout of wisp.yaml.
// Pointer fields distinguish "absent" from an explicit zero value.
type Wispfile struct {
	DataRoot string   `yaml:"data_root"`
	Portable *bool    `yaml:"portable"`
	Cache    CacheDTO `yaml:"cache"`
	Log      LogDTO   `yaml:"log"`
}

// CacheDTO is the cache section of wisp.yaml.
type CacheDTO struct {
	MaxMemory     string `yaml:"max_memory"`
	SlidingWindow string `yaml:"sliding_window"`
	PollInterval  string `yaml:"poll_interval"`
	Shards        *int   `yaml:"shards"`
}

// LogDTO is the log section of wisp.yaml.
type LogDTO struct {
	JSON  *bool  `yaml:"json"`
	Level string `yaml:"level"`
}
