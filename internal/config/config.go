// Package config provides YAML-based application configuration and the
// player settings service.
package config

// AppConfig contains the process-wide configuration: where the database
// lives, how fast the simulation ticks and how the SSH front end binds.
type AppConfig struct {
	Database DatabaseConfig `yaml:"database"`
	Game     GameConfig     `yaml:"game"`
	SSH      SSHConfig      `yaml:"ssh"`
}

// DatabaseConfig locates the SQLite file.
type DatabaseConfig struct {
	Path string `yaml:"path"`
}

// GameConfig tunes the simulation loop.
type GameConfig struct {
	FPS         int    `yaml:"fps"`
	CatalogPath string `yaml:"catalog_path"` // empty uses the built-in catalog
}

// SSHConfig configures the optional SSH server.
type SSHConfig struct {
	Host        string `yaml:"host"`
	Port        int    `yaml:"port"`
	HostKeyPath string `yaml:"host_key_path"`
}

// DefaultConfig returns the built-in configuration, used when no config
// file is found anywhere in the search order.
func DefaultConfig() AppConfig {
	return AppConfig{
		Database: DatabaseConfig{
			Path: "~/.pasha/pasha.db",
		},
		Game: GameConfig{
			FPS: 30,
		},
		SSH: SSHConfig{
			Host:        "0.0.0.0",
			Port:        2323,
			HostKeyPath: "~/.pasha/host_key",
		},
	}
}
