package config

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/atomicstack/cmenu/internal/app"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	Flags   map[string]string
	Args    []string
	// List prints the configured menus instead of starting the UI.
	List bool
}

type Logging struct {
	FilePath string
	Trace    bool
}

const (
	envSocketPath = "CMENU_SOCKET"
	envWidth      = "CMENU_WIDTH"
	envHeight     = "CMENU_HEIGHT"
	envShowFooter = "CMENU_FOOTER"
	envVerbose    = "CMENU_VERBOSE"
	envTrace      = "CMENU_TRACE"
	envLogFile    = "CMENU_LOG_FILE"
	envMenus      = "CMENU_MENUS"
	envAtMouse    = "CMENU_AT_MOUSE"
	envOpen       = "CMENU_OPEN"
)

// Load parses configuration from CLI arguments and environment variables.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	fs := flag.NewFlagSet("cmenu", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	socket := fs.String("socket", envOrDefault(env, envSocketPath, ""), "path to the tmux socket used by --at-mouse and tmux: items")
	width := fs.Int("width", envOrInt(env, envWidth, 0), "desired viewport width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, 0), "desired viewport height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, true), "show the key hint footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, false), "enable verbose JSON trace logging")
	verbose := fs.Bool("verbose", envOrBool(env, envVerbose, false), "print success messages for actions")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, ""), "path to the log file")
	menusPath := fs.String("menus", envOrDefault(env, envMenus, ""), "path to a TOML file describing the menus")
	atMouse := fs.Bool("at-mouse", envOrBool(env, envAtMouse, false), "open a menu at the tmux mouse position")
	openID := fs.String("open", envOrDefault(env, envOpen, ""), "id of the menu --at-mouse opens (default: the first menu)")
	list := fs.Bool("list", false, "print the configured menus and exit")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	menus := DefaultMenus()
	if strings.TrimSpace(*menusPath) != "" {
		loaded, err := LoadMenuFile(*menusPath)
		if err != nil {
			return Config{}, err
		}
		menus = loaded
	}

	cfg := Config{
		App: app.Config{
			SocketPath: *socket,
			Width:      *width,
			Height:     *height,
			ShowFooter: *footer,
			Verbose:    *verbose,
			AtMouse:    *atMouse,
			OpenID:     strings.TrimSpace(*openID),
			Menus:      menus,
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Flags: map[string]string{
			"socket":  *socket,
			"width":   strconv.Itoa(*width),
			"height":  strconv.Itoa(*height),
			"footer":  strconv.FormatBool(*footer),
			"trace":   strconv.FormatBool(*trace),
			"verbose": strconv.FormatBool(*verbose),
			"logFile": *logFile,
			"menus":   *menusPath,
			"atMouse": strconv.FormatBool(*atMouse),
			"open":    *openID,
		},
		Args: append([]string(nil), args...),
		List: *list,
	}

	return cfg, nil
}

func parseEnv(environ []string) map[string]string {
	values := make(map[string]string, len(environ))
	for _, entry := range environ {
		if entry == "" {
			continue
		}
		parts := strings.SplitN(entry, "=", 2)
		if len(parts) != 2 {
			continue
		}
		values[parts[0]] = parts[1]
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

// Validate ensures required minimum configuration is present.
func Validate(cfg Config) error {
	if len(cfg.App.Menus) == 0 {
		return fmt.Errorf("no menus configured")
	}
	seen := make(map[string]struct{}, len(cfg.App.Menus))
	for _, m := range cfg.App.Menus {
		if strings.TrimSpace(m.ID) == "" {
			return fmt.Errorf("menu without id")
		}
		if _, ok := seen[m.ID]; ok {
			return fmt.Errorf("menu id %q declared twice", m.ID)
		}
		seen[m.ID] = struct{}{}
	}
	return nil
}
