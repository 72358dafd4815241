// Package config はサービスの起動設定を扱います。
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config はサービス起動時に読み込む設定全体です。
type Config struct {
	Server  ServerConfig  `yaml:"server"`
	Storage StorageConfig `yaml:"storage"`
	CORS    CORSConfig    `yaml:"cors"`
}

// ServerConfig はAPIサーバーの待ち受けアドレスを設定します。
type ServerConfig struct {
	Address string `yaml:"address"`
}

// StorageConfig はタスクのバックアップファイルの場所を設定します。
type StorageConfig struct {
	TasksFile string `yaml:"tasks_file"`
}

// CORSConfig は許可するオリジンを設定します。
type CORSConfig struct {
	AllowOrigins []string `yaml:"allow_origins"`
}

// Load は指定パスのYAML設定ファイルを読み込みます。
// ファイルが存在しない場合はデフォルト値のみの設定を返します。
func Load(path string) (*Config, error) {
	var cfg Config

	data, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("could not read config file: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("could not parse config file %s: %w", path, err)
		}
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	return &cfg, nil
}

// applyDefaults は未設定の項目に既定値を設定します。
func (c *Config) applyDefaults() {
	if c.Server.Address == "" {
		c.Server.Address = ":8080"
	}
	if c.Storage.TasksFile == "" {
		c.Storage.TasksFile = "tasks.json"
	}
	if len(c.CORS.AllowOrigins) == 0 {
		c.CORS.AllowOrigins = []string{"http://localhost:3000"}
	}
}

// applyEnv は環境変数による上書きを反映します (.envはmainで読み込み済み)。
func (c *Config) applyEnv() {
	if addr := os.Getenv("ADDR"); addr != "" {
		c.Server.Address = addr
	}
	if file := os.Getenv("TASKS_FILE"); file != "" {
		c.Storage.TasksFile = file
	}
}
