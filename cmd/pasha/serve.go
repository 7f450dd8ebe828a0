package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/pashakim/pasha-party/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the party-game SSH server",
	Long: `Start an SSH server that lets users connect and play full sessions.

Each SSH connection gets its own session; the SSH username becomes the
leaderboard name. All users share the server's leaderboard.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.pasha/host_key

Examples:
  pasha serve                           # Listen on :2323 with auto-generated key
  pasha serve --ssh :2222               # Listen on port 2222
  pasha serve --host-key ./my_host_key  # Use specific host key
  pasha serve --db ./pasha.db           # Use specific database

Users can connect with:
  ssh localhost -p 2323`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", "", "SSH server address (host:port, empty = config value)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	appCfg := loadAppConfig()
	cat := loadCatalog(appCfg)

	addr := flagSSHAddr
	if addr == "" {
		addr = fmt.Sprintf("%s:%d", appCfg.SSH.Host, appCfg.SSH.Port)
	}
	hostKey := flagHostKey
	if hostKey == "" {
		hostKey = appCfg.SSH.HostKeyPath
	}

	cfg := tui.SSHServerConfig{
		Address:     addr,
		HostKeyPath: hostKey,
		DBPath:      appCfg.Database.Path,
		FPS:         appCfg.Game.FPS,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
	}

	server, err := tui.NewSSHServer(cfg, cat)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting pasha SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
