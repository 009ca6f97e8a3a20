package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-sql-driver/mysql"
	"gopkg.in/yaml.v2"

	"itemsBack/internal/repositories"
)

const (
	defaultPort      = 3000
	defaultDriver    = "postgres"
	defaultDBHost    = "localhost"
	defaultDBName    = "code-test"
	defaultSQLiteDB  = "items.db"
	defaultNamespace = "items"
)

type Config struct {
	Server struct {
		Port  int  `yaml:"port"`
		Debug bool `yaml:"debug"`
		// SecretKey is read so existing settings files keep loading; no
		// handler signs anything with it.
		SecretKey string `yaml:"secret_key"`
	} `yaml:"server"`
	Database struct {
		Driver   string `yaml:"driver"`
		URL      string `yaml:"url"`
		Host     string `yaml:"host"`
		Name     string `yaml:"dbname"`
		User     string `yaml:"user"`
		Password string `yaml:"password"`
	} `yaml:"database"`
	Metrics struct {
		Namespace string    `yaml:"namespace"`
		Buckets   []float64 `yaml:"buckets"`
	} `yaml:"metrics"`
}

// Default returns the built-in settings.
func Default() Config {
	var cfg Config
	cfg.Server.Port = defaultPort
	cfg.Server.Debug = true
	cfg.Database.Driver = defaultDriver
	cfg.Database.Host = defaultDBHost
	cfg.Database.Name = defaultDBName
	cfg.Metrics.Namespace = defaultNamespace
	return cfg
}

// LoadConfig reads the YAML file at path (a missing file keeps the defaults),
// then applies environment overrides.
func LoadConfig(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return Config{}, fmt.Errorf("read config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return Config{}, fmt.Errorf("unmarshal config data: %w", err)
			}
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, err := readIntEnv("PORT"); err != nil {
		return fmt.Errorf("parse PORT: %w", err)
	} else if v != nil {
		c.Server.Port = *v
	}

	if v := os.Getenv("DEBUG"); v != "" {
		debug, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("parse DEBUG: %w", err)
		}
		c.Server.Debug = debug
	}

	setString(&c.Server.SecretKey, "SECRET_KEY")
	setString(&c.Database.Driver, "DB_DRIVER")
	setString(&c.Database.URL, "DATABASE_URL")
	setString(&c.Database.Host, "DB_HOST")
	setString(&c.Database.Name, "DB_NAME")
	setString(&c.Database.User, "DB_USER")
	setString(&c.Database.Password, "DB_PASSWORD")
	setString(&c.Metrics.Namespace, "METRICS_NAMESPACE")
	return nil
}

// Validate rejects unknown drivers and out-of-range ports.
func (c Config) Validate() error {
	if _, err := repositories.ParseDialect(c.Database.Driver); err != nil {
		return err
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Server.Port)
	}
	return nil
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Server.Port)
}

// Dialect is the parsed database driver.
func (c Config) Dialect() repositories.Dialect {
	d, _ := repositories.ParseDialect(c.Database.Driver)
	return d
}

// DSN returns Database.URL when set, otherwise a driver-specific DSN built
// from the discrete fields.
func (c Config) DSN() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	db := c.Database
	switch c.Dialect() {
	case repositories.DialectMySQL:
		mc := mysql.NewConfig()
		mc.User = db.User
		mc.Passwd = db.Password
		mc.Net = "tcp"
		mc.Addr = db.Host
		mc.DBName = db.Name
		mc.ParseTime = true
		return mc.FormatDSN()
	case repositories.DialectSQLite:
		if db.Name == "" || db.Name == defaultDBName {
			return defaultSQLiteDB
		}
		return db.Name
	default:
		parts := []string{}
		for _, kv := range [][2]string{
			{"host", db.Host},
			{"dbname", db.Name},
			{"user", db.User},
			{"password", db.Password},
		} {
			if kv[1] != "" {
				parts = append(parts, kv[0]+"="+quoteDSNValue(kv[1]))
			}
		}
		return strings.Join(parts, " ")
	}
}

// quoteDSNValue quotes keyword/value DSN values containing spaces or quotes.
func quoteDSNValue(v string) string {
	if !strings.ContainsAny(v, ` '\`) {
		return v
	}
	v = strings.ReplaceAll(v, `\`, `\\`)
	v = strings.ReplaceAll(v, `'`, `\'`)
	return "'" + v + "'"
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func readIntEnv(key string) (*int, error) {
	v := os.Getenv(key)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return nil, err
	}
	return &n, nil
}
