package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	configPathEnvKey  = "CONFIG_PATH"
	defaultConfigPath = "config.yaml"
)

type App struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	JWT       JWTConfig       `koanf:"jwt"`
	CORS      CORSConfig      `koanf:"cors"`
	Superuser SuperuserConfig `koanf:"superuser"`
}

type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         string        `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
}

type DatabaseConfig struct {
	Driver      string `koanf:"driver"` // postgres or sqlite
	Host        string `koanf:"host"`
	Port        int    `koanf:"port"`
	Username    string `koanf:"username"`
	Password    string `koanf:"password"`
	Database    string `koanf:"database"`
	SSLMode     string `koanf:"sslmode"`
	LogLevel    string `koanf:"log_level"`
	AutoMigrate bool   `koanf:"auto_migrate"`
}

type JWTConfig struct {
	Secret      string `koanf:"secret"`
	ExpireHours int    `koanf:"expire_hours"`
}

type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// SuperuserConfig describes the bootstrap superuser seeded into an empty database.
type SuperuserConfig struct {
	Username string `koanf:"username"`
	Email    string `koanf:"email"`
	Password string `koanf:"password"`
}

// NewApp loads the yaml config file, then layers environment variables on top.
// A .env file in the working directory is loaded first when present.
func NewApp() (App, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		fmt.Fprintf(os.Stderr, "warning: could not load .env file: %v\n", err)
	}

	path, ok := os.LookupEnv(configPathEnvKey)
	if !ok {
		path = defaultConfigPath
	}

	k := koanf.New(".")

	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return App{}, fmt.Errorf("load config file %q: %w", path, err)
	}

	// Nesting is marked with a double underscore so that keys containing a
	// single one stay intact: ACCOUNTD_DATABASE__PASSWORD overrides
	// database.password, ACCOUNTD_DATABASE__AUTO_MIGRATE database.auto_migrate.
	err := k.Load(env.Provider("ACCOUNTD_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "ACCOUNTD_")
		return strings.ReplaceAll(strings.ToLower(s), "__", ".")
	}), nil)
	if err != nil {
		return App{}, fmt.Errorf("load environment overrides: %w", err)
	}

	var app App
	if err := k.Unmarshal("", &app); err != nil {
		return App{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if app.JWT.ExpireHours == 0 {
		app.JWT.ExpireHours = 24
	}

	return app, nil
}

// DSN assembles the driver connection string. For sqlite the database
// field is the file path and everything else is ignored.
func (d DatabaseConfig) DSN() string {
	if d.Driver == "sqlite" {
		return d.Database
	}

	sslMode := d.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.Username, d.Password, d.Database, sslMode)
}
