package config

import (
	"os"
	"strconv"

	"github.com/BurntSushi/toml"
)

type Server struct {
	Host        string `toml:"host"`
	Port        int    `toml:"port"`
	MetricsPort int    `toml:"metrics_port"`
	Debug       bool   `toml:"debug_mode"`
	SqliteFile  string `toml:"sqlite_file"`
}

type Config struct {
	Server Server
}

func New() (Config, error) {
	var serverCfg Server
	_, err := toml.DecodeFile("configs/server.toml", &serverCfg)
	if err != nil {
		return Config{}, err
	}
	if file := os.Getenv("STANDINGS_SQLITE_FILE"); file != "" {
		serverCfg.SqliteFile = file
	}
	if port := os.Getenv("STANDINGS_PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return Config{}, err
		}
		serverCfg.Port = p
	}
	if serverCfg.SqliteFile == "" {
		serverCfg.SqliteFile = "standings.sqlite"
	}

	return Config{
		Server: serverCfg,
	}, nil
}
