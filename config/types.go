package config

// DataConfig locates the local cache root. The directory holds downloaded
// archives, extracted daily CSV files and every parquet tier.
type DataConfig struct {
	Directory string `yaml:"directory" validate:"required"`
}

// ArchiveConfig tunes the monthly-archive download.
type ArchiveConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty,url"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Data    DataConfig    `yaml:"data" validate:"required"`
	Archive ArchiveConfig `yaml:"archive"`
}
