package config

import (
	"flag"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

const (
	defaultAddr         = ":3000"
	defaultAllowOrigins = "http://localhost:5173"
	defaultBufferSize   = 1024
)

// Config holds the server settings. Every field can be set by flag; the string and
// bool fields also fall back to an environment variable.
type Config struct {
	Addr              string
	AllowOrigins      string
	WSReadBufferSize  int
	WSWriteBufferSize int
	Dev               bool
}

// Origins splits AllowOrigins into the list the websocket upgrader expects.
func (c Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.AllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// Load parses args (without the program name). Flags win over CHESS_ADDR,
// CHESS_ALLOW_ORIGINS and CHESS_DEV, which win over the defaults.
func Load(args []string) (Config, error) {
	return load(args, os.LookupEnv, io.Discard)
}

func load(args []string, lookup func(string) (string, bool), output io.Writer) (Config, error) {
	cfg := Config{
		Addr:              defaultAddr,
		AllowOrigins:      defaultAllowOrigins,
		WSReadBufferSize:  defaultBufferSize,
		WSWriteBufferSize: defaultBufferSize,
	}
	if v, ok := lookup("CHESS_ADDR"); ok && v != "" {
		cfg.Addr = v
	}
	if v, ok := lookup("CHESS_ALLOW_ORIGINS"); ok && v != "" {
		cfg.AllowOrigins = v
	}
	if v, ok := lookup("CHESS_DEV"); ok && v != "" {
		dev, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, errors.Wrapf(err, "CHESS_DEV=%q", v)
		}
		cfg.Dev = dev
	}

	fs := flag.NewFlagSet("server", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "listen address")
	fs.StringVar(&cfg.AllowOrigins, "allow-origins", cfg.AllowOrigins, "comma separated CORS origins")
	fs.IntVar(&cfg.WSReadBufferSize, "ws-read-buffer", cfg.WSReadBufferSize, "websocket read buffer size in bytes")
	fs.IntVar(&cfg.WSWriteBufferSize, "ws-write-buffer", cfg.WSWriteBufferSize, "websocket write buffer size in bytes")
	fs.BoolVar(&cfg.Dev, "dev", cfg.Dev, "development logging")
	if err := fs.Parse(args); err != nil {
		return Config{}, errors.Wrap(err, "parse flags")
	}
	if fs.NArg() > 0 {
		return Config{}, errors.Errorf("unexpected arguments: %v", fs.Args())
	}

	if cfg.Addr == "" {
		return Config{}, errors.New("listen address must not be empty")
	}
	if len(cfg.Origins()) == 0 {
		return Config{}, errors.New("at least one allowed origin is required")
	}
	if cfg.WSReadBufferSize <= 0 || cfg.WSWriteBufferSize <= 0 {
		return Config{}, errors.Errorf("websocket buffer sizes must be positive, got %d/%d",
			cfg.WSReadBufferSize, cfg.WSWriteBufferSize)
	}
	return cfg, nil
}
