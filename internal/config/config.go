package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/popup-grep/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envInput   = "POPUP_GREP_INPUT"
	envMoves   = "POPUP_GREP_MOVES"
	envVerbose = "POPUP_GREP_VERBOSE"
	envHeight  = "POPUP_GREP_HEIGHT"
	envTrace   = "POPUP_GREP_TRACE"
	envLogFile = "POPUP_GREP_LOG_FILE"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("popup-grep", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	input := fs.String("input", envOrDefault(env, envInput, "-"), "file with path:line:text records (- reads stdin)")
	moves := fs.String("moves", envOrDefault(env, envMoves, ""), "comma separated navigation script, e.g. n*3,p,/main.go")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print the matched text with the selection")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "viewport height in rows used to track scrolling (0 uses terminal height)")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}
	if fs.NArg() > 0 {
		return Config{}, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	cfg := Config{
		App: app.Config{
			InputPath: *input,
			Moves:     *moves,
			Verbose:   *verbose,
			Height:    *height,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"input":   *input,
			"moves":   *moves,
			"verbose": strconv.FormatBool(*verbose),
			"height":  strconv.Itoa(*height),
			"trace":   strconv.FormatBool(*trace),
			"logFile": *logFile,
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || key == "" {
			continue
		}
		values[key] = value
	}
	return values
}

func envOrDefault(env map[string]string, key, fallback string) string {
	if v, ok := env[key]; ok {
		return v
	}
	return fallback
}

func envOrInt(env map[string]string, key string, fallback int) int {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func envOrBool(env map[string]string, key string, fallback bool) bool {
	v, ok := env[key]
	if !ok || strings.TrimSpace(v) == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

// MustLoad returns configuration or exits.
func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	return cfg
}

// Validate rejects navigation scripts that cannot be parsed.
func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.App.InputPath) == "" {
		return fmt.Errorf("input must not be empty")
	}
	if _, err := app.ParseMoves(cfg.App.Moves); err != nil {
		return fmt.Errorf("moves: %w", err)
	}
	return nil
}
