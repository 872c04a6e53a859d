package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server" validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Study    StudyConfig    `mapstructure:"study"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port     int    `mapstructure:"port" validate:"required,gt=0,lt=65536"`
	LogLevel string `mapstructure:"log_level" validate:"required,oneof=debug info warn error"`
}

// DatabaseConfig contains all database-related configuration settings.
// The URL scheme selects the driver: postgres:// uses pgx, anything else is
// treated as a SQLite path/DSN for local development.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// StudyConfig tunes the answer-matching and retention policies. Zero values
// mean "use the built-in default" so a config file only needs to name the
// knobs it changes.
type StudyConfig struct {
	AcceptThreshold     float64 `mapstructure:"accept_threshold"      validate:"gte=0,lte=1"`
	CloseThreshold      float64 `mapstructure:"close_threshold"       validate:"gte=0,lte=1"`
	ConfidenceAlpha     float64 `mapstructure:"confidence_alpha"      validate:"gte=0,lte=1"`
	KnownConfidence     float64 `mapstructure:"known_confidence"      validate:"gte=0,lte=1"`
	MasteryRatio        float64 `mapstructure:"mastery_ratio"         validate:"gte=0,lte=1"`
	MasteryMinAttempts  int     `mapstructure:"mastery_min_attempts"  validate:"gte=0"`
	MinExposureAttempts int     `mapstructure:"min_exposure_attempts" validate:"gte=0"`
}
