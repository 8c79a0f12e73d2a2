package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

const defaultPort = "3000"

// Config holds the process settings. Precedence: flags, then environment,
// then a .env file in the working directory, then defaults.
type Config struct {
	Addr      string // HTTP listen address
	ClientDir string // static client files; empty disables serving
	DBPath    string // SQLite event log; empty disables it
}

// LoadConfig builds the Config from .env, the environment and args
func LoadConfig(args []string) (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("ignoring .env: %v", err)
	}

	cfg := Config{
		Addr:      ":" + envOr("PORT", defaultPort),
		ClientDir: os.Getenv("BALLGAME_CLIENT_DIR"),
		DBPath:    os.Getenv("BALLGAME_DB"),
	}
	if addr := os.Getenv("BALLGAME_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	fset := flag.NewFlagSet("ballgame-server", flag.ContinueOnError)
	fset.SetOutput(io.Discard)
	fset.StringVar(&cfg.Addr, "addr", cfg.Addr, "HTTP listen address")
	fset.StringVar(&cfg.ClientDir, "client", cfg.ClientDir, "Path to client directory (default: ../client or ./public)")
	fset.StringVar(&cfg.DBPath, "db", cfg.DBPath, "SQLite event log path (empty disables)")
	if err := fset.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}

	cfg.ClientDir = resolveClientDir(cfg.ClientDir)
	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// resolveClientDir falls back to a client directory next to the binary, then
// ./public. Returns "" if nothing exists.
func resolveClientDir(dir string) string {
	if dir != "" {
		return dir
	}
	candidates := []string{"public"}
	if exe, err := os.Executable(); err == nil {
		candidates = append([]string{filepath.Join(filepath.Dir(exe), "..", "client")}, candidates...)
	}
	for _, c := range candidates {
		if st, err := os.Stat(c); err == nil && st.IsDir() {
			return c
		}
	}
	return ""
}
