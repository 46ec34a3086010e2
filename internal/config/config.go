package config

import (
	"fmt"
	"os"

	"github.com/fxnlabs/kermaview/internal/cuda"
	"github.com/fxnlabs/kermaview/internal/kernel"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Logger struct {
		Verbosity string `yaml:"verbosity"`
	} `yaml:"logger"`
	Server struct {
		ListenAddress string `yaml:"listenAddress"`
		ListenPort    int    `yaml:"listenPort"`
	} `yaml:"server"`
	// Limits overrides cuda.DefaultLimits field by field; zero values keep
	// the default.
	Limits  cuda.Limits         `yaml:"limits"`
	Kernels []kernel.Descriptor `yaml:"kernels"`
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var config Config
	config.Server.ListenAddress = "127.0.0.1"
	config.Server.ListenPort = 8080
	return &config
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return nil, err
	}

	if config.Server.ListenPort == 0 {
		config.Server.ListenPort = 8080
	}

	return &config, nil
}

// CudaLimits returns cuda.DefaultLimits with the configured overrides
// applied.
func (c *Config) CudaLimits() (cuda.Limits, error) {
	l := cuda.DefaultLimits
	o := c.Limits
	if o.WarpSize != 0 {
		l.WarpSize = o.WarpSize
	}
	if o.MaxBlockThreads != 0 {
		l.MaxBlockThreads = o.MaxBlockThreads
	}
	l.MaxBlockDim = overrideDim(l.MaxBlockDim, o.MaxBlockDim)
	l.MaxGridDim = overrideDim(l.MaxGridDim, o.MaxGridDim)
	if err := l.Validate(); err != nil {
		return cuda.Limits{}, fmt.Errorf("config limits: %w", err)
	}
	return l, nil
}

func overrideDim(base, o cuda.Dim) cuda.Dim {
	if o.X != 0 {
		base.X = o.X
	}
	if o.Y != 0 {
		base.Y = o.Y
	}
	if o.Z != 0 {
		base.Z = o.Z
	}
	return base
}

// ListenAddr returns the host:port the server binds to.
func (c *Config) ListenAddr() string {
	return fmt.Sprintf("%s:%d", c.Server.ListenAddress, c.Server.ListenPort)
}

// SelectionModel builds the configured kernels.
func (c *Config) SelectionModel() (*kernel.SelectionModel, error) {
	limits, err := c.CudaLimits()
	if err != nil {
		return nil, err
	}
	return kernel.LoadSelectionModel(c.Kernels, limits)
}
