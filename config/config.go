package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Auth     AuthConfig     `yaml:"auth"`
	Store    StoreConfig    `yaml:"store"`
	Contract ContractConfig `yaml:"contract"`
	Archive  ArchiveConfig  `yaml:"archive"`
	Users    []User         `yaml:"users"`
}

type ServerConfig struct {
	Port int `yaml:"port"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type AuthConfig struct {
	JWTSecret        string `yaml:"jwt_secret"`
	TokenExpireHours int    `yaml:"token_expire_hours"`
}

type StoreConfig struct {
	MaxContracts int `yaml:"max_contracts"`
	MaxCampaigns int `yaml:"max_campaigns"`
}

// ContractConfig holds the knobs for contract text composition. It is
// passed explicitly to the contract service so composition never reads
// ambient globals.
type ContractConfig struct {
	CurrencySymbol string `yaml:"currency_symbol"`
	IDPrefix       string `yaml:"id_prefix"`
}

// ArchiveConfig configures the optional object-storage archive for
// generated contract documents.
type ArchiveConfig struct {
	Enabled    bool   `yaml:"enabled"`
	Endpoint   string `yaml:"endpoint"`
	AccessKey  string `yaml:"access_key"`
	SecretKey  string `yaml:"secret_key"`
	Bucket     string `yaml:"bucket"`
	UseSSL     bool   `yaml:"use_ssl"`
	ExpireDays int    `yaml:"expire_days"`
}

type User struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
	Tenant   string `yaml:"tenant"`
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Auth.TokenExpireHours == 0 {
		cfg.Auth.TokenExpireHours = 24
	}
	if cfg.Store.MaxContracts == 0 {
		cfg.Store.MaxContracts = 100
	}
	if cfg.Store.MaxCampaigns == 0 {
		cfg.Store.MaxCampaigns = 100
	}
	if cfg.Contract.CurrencySymbol == "" {
		cfg.Contract.CurrencySymbol = "$"
	}
	if cfg.Contract.IDPrefix == "" {
		cfg.Contract.IDPrefix = "CTR"
	}
	if cfg.Archive.Bucket == "" {
		cfg.Archive.Bucket = "contracts"
	}
	if cfg.Archive.ExpireDays == 0 {
		cfg.Archive.ExpireDays = 7
	}

	return &cfg, nil
}

// FindUser finds a user by username
func (c *Config) FindUser(username string) *User {
	for i := range c.Users {
		if c.Users[i].Username == username {
			return &c.Users[i]
		}
	}
	return nil
}
