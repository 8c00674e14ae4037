// Package config loads and watches service configuration through viper,
// with .env overrides applied before the config file is read.
package config

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	dc "github.com/aimarket/mcore/data/config"
)

var (
	config *Config
	path   string
	once   sync.Once
	mu     sync.Mutex
	v      *viper.Viper
)

// Config represents the configuration implementation.
type Config struct {
	AppName     string
	RunMode     string
	Environment string
	Protocol    string
	Domain      string
	Host        string
	Port        int
	Logger      *Logger
	Data        *dc.Config
	Viper       *viper.Viper
}

func init() {
	flag.StringVar(&path, "conf", "", "e.g: bin ./config.yaml")
	v = viper.New()
}

// Init initializes and loads the configuration. Repeated calls return the
// already loaded configuration.
func Init() (*Config, error) {
	var err error
	once.Do(func() {
		_, err = loadConfiguration()
	})
	if err != nil {
		return nil, err
	}
	return config, nil
}

// GetConfig returns the configuration.
// It does not handle errors internally; instead, it returns the error for the caller to handle.
func GetConfig() (*Config, error) {
	if config == nil {
		var err error
		config, err = Init()
		if err != nil {
			return nil, fmt.Errorf("failed to initialize config: %w", err)
		}
	}
	return config, nil
}

// loadConfiguration loads the configuration from the file and sets it globally.
func loadConfiguration() (*Config, error) {
	flag.Parse()
	cfg, err := LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}
	config = cfg
	return cfg, nil
}

// LoadConfig loads the configuration from the file.
// A .env file in the working directory is loaded first so that environment
// overrides are visible to viper.
func LoadConfig(configPath string) (*Config, error) {
	_ = godotenv.Load()

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		ex, err := os.Executable()
		if err != nil {
			return nil, fmt.Errorf("failed to get executable path: %w", err)
		}
		v.SetConfigName("config")
		v.AddConfigPath("/etc/aimarket")
		v.AddConfigPath("$HOME/.aimarket")
		v.AddConfigPath(".")
		v.AddConfigPath(filepath.Dir(ex))
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return readConfig(v), nil
}

// readConfig builds a Config from a prepared viper instance.
func readConfig(v *viper.Viper) *Config {
	return &Config{
		AppName:     v.GetString("app_name"),
		RunMode:     v.GetString("run_mode"),
		Environment: v.GetString("environment"),
		Protocol:    v.GetString("server.protocol"),
		Domain:      v.GetString("server.domain"),
		Host:        v.GetString("server.host"),
		Port:        v.GetInt("server.port"),
		Logger:      getLoggerConfig(v),
		Data:        dc.GetConfig(v),
		Viper:       v,
	}
}

// Reload reloads the configuration from the file.
func Reload() error {
	mu.Lock()
	defer mu.Unlock()

	newConfig, err := LoadConfig(path)
	if err != nil {
		return fmt.Errorf("failed to reload config: %w", err)
	}

	config = newConfig
	return nil
}

// Watch watches the configuration file and reloads it when it changes.
func Watch(callback func(*Config)) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		if err := Reload(); err != nil {
			fmt.Printf("Error reloading config: %v\n", err)
			return
		}
		callback(config)
	})
}
