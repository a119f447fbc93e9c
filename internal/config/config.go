package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/atomicstack/linux-ref-guide/internal/app"
	"github.com/atomicstack/linux-ref-guide/internal/menu"
	"github.com/atomicstack/linux-ref-guide/internal/nav"
	"github.com/atomicstack/linux-ref-guide/internal/ui"
	"gopkg.in/yaml.v3"
)

// Config captures runtime configuration for the application.
type Config struct {
	App     app.Config
	Logging Logging
	// Source is the YAML file that was read, or empty when none was.
	Source string
	Flags  map[string]string
	Args   []string
}

type Logging struct {
	FilePath string
	Trace    bool
}

// File is the YAML configuration file layout. Unset keys leave the
// defaults alone.
type File struct {
	Width        *int    `yaml:"width"`
	Height       *int    `yaml:"height"`
	Footer       *bool   `yaml:"footer"`
	Trace        *bool   `yaml:"trace"`
	LogFile      *string `yaml:"log_file"`
	Start        *string `yaml:"start"`
	Style        *string `yaml:"style"`
	Wrap         *int    `yaml:"wrap"`
	SidebarWidth *int    `yaml:"sidebar_width"`
}

const (
	envConfig       = "LINUX_REF_GUIDE_CONFIG"
	envWidth        = "LINUX_REF_GUIDE_WIDTH"
	envHeight       = "LINUX_REF_GUIDE_HEIGHT"
	envShowFooter   = "LINUX_REF_GUIDE_FOOTER"
	envTrace        = "LINUX_REF_GUIDE_TRACE"
	envLogFile      = "LINUX_REF_GUIDE_LOG_FILE"
	envStart        = "LINUX_REF_GUIDE_START"
	envStyle        = "LINUX_REF_GUIDE_STYLE"
	envWrap         = "LINUX_REF_GUIDE_WRAP"
	envSidebarWidth = "LINUX_REF_GUIDE_SIDEBAR_WIDTH"

	appDirName     = "linux-ref-guide"
	configFileName = "config.yaml"
)

// Load parses configuration from CLI arguments, environment variables and
// the optional YAML file.
func Load() (Config, error) {
	return LoadArgs(os.Args[1:], os.Environ())
}

// LoadArgs allows tests to supply specific args/environment.
func LoadArgs(args []string, environ []string) (Config, error) {
	env := parseEnv(environ)

	path, explicit := configPath(args, env)
	file, err := readFile(path, explicit)
	if err != nil {
		return Config{}, err
	}
	source := ""
	if file != nil {
		source = path
	} else {
		file = &File{}
	}

	fs := flag.NewFlagSet("linux-ref-guide", flag.ContinueOnError)
	fs.SetOutput(new(strings.Builder))

	fs.String("config", path, "path to a YAML config file")
	width := fs.Int("width", envOrInt(env, envWidth, intOr(file.Width, 0)), "desired width in cells (0 uses terminal width)")
	height := fs.Int("height", envOrInt(env, envHeight, intOr(file.Height, 0)), "desired height in rows (0 uses terminal height)")
	footer := fs.Bool("footer", envOrBool(env, envShowFooter, boolOr(file.Footer, true)), "show the keybinding footer")
	trace := fs.Bool("trace", envOrBool(env, envTrace, boolOr(file.Trace, false)), "enable verbose JSON trace logging")
	logFile := fs.String("log-file", envOrDefault(env, envLogFile, stringOr(file.LogFile, "")), "path to the log file")
	start := fs.String("start", envOrDefault(env, envStart, stringOr(file.Start, "")), "initial menu or topic id (e.g. basic, inter-shell)")
	style := fs.String("style", envOrDefault(env, envStyle, stringOr(file.Style, ui.StyleAuto)), "markdown style: "+strings.Join(ui.StyleNames(), ", "))
	wrap := fs.Int("wrap", envOrInt(env, envWrap, intOr(file.Wrap, 0)), "markdown wrap column (0 fits the content pane)")
	sidebarWidth := fs.Int("sidebar-width", envOrInt(env, envSidebarWidth, intOr(file.SidebarWidth, ui.DefaultSidebarWidth)), "sidebar width in cells")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if *width < 0 {
		return Config{}, fmt.Errorf("width must be >= 0 (got %d)", *width)
	}
	if *height < 0 {
		return Config{}, fmt.Errorf("height must be >= 0 (got %d)", *height)
	}

	cfg := Config{
		App: app.Config{
			Width:        *width,
			Height:       *height,
			ShowFooter:   *footer,
			SidebarWidth: *sidebarWidth,
			Style:        strings.ToLower(strings.TrimSpace(*style)),
			Wrap:         *wrap,
			Start:        strings.TrimSpace(*start),
		},
		Logging: Logging{
			FilePath: *logFile,
			Trace:    *trace,
		},
		Source: source,
		Flags: map[string]string{
			"config":       source,
			"width":        strconv.Itoa(*width),
			"height":       strconv.Itoa(*height),
			"footer":       strconv.FormatBool(*footer),
			"trace":        strconv.FormatBool(*trace),
			"logFile":      *logFile,
			"start":        *start,
			"style":        *style,
			"wrap":         strconv.Itoa(*wrap),
			"sidebarWidth": strconv.Itoa(*sidebarWidth),
		},
		Args: append([]string(nil), args...),
	}

	return cfg, nil
}

// configPath finds the config file named by -config or the environment, or
// falls back to the default location. explicit reports whether the user named
// the file.
func configPath(args []string, env map[string]string) (string, bool) {
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			break
		}
		name := strings.TrimLeft(arg, "-")
		if name == arg {
			continue
		}
		if value, ok := strings.CutPrefix(name, "config="); ok {
			return value, true
		}
		if name == "config" && i+1 < len(args) {
			return args[i+1], true
		}
	}
	if v := strings.TrimSpace(env[envConfig]); v != "" {
		return v, true
	}
	return defaultConfigPath(env), false
}

func defaultConfigPath(env map[string]string) string {
	if dir := strings.TrimSpace(env["XDG_CONFIG_HOME"]); dir != "" {
		return filepath.Join(dir, appDirName, configFileName)
	}
	if home := strings.TrimSpace(env["HOME"]); home != "" {
		return filepath.Join(home, ".config", appDirName, configFileName)
	}
	return ""
}

// readFile loads the YAML file at path. A missing default file is not an
// error; a missing explicit one is.
func readFile(path string, explicit bool) (*File, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return nil, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &file, nil
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

func intOr(v *int, fallback int) int {
	if v == nil {
		return fallback
	}
	return *v
}

func boolOr(v *bool, fallback bool) bool {
	if v == nil {
		return fallback
	}
	return *v
}

func stringOr(v *string, fallback string) string {
	if v == nil {
		return fallback
	}
	return *v
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

// Validate rejects values the UI cannot honour.
func Validate(cfg Config) error {
	var errs []error
	if cfg.App.Width < 0 || cfg.App.Height < 0 {
		errs = append(errs, fmt.Errorf("size must be >= 0 (got %dx%d)", cfg.App.Width, cfg.App.Height))
	}
	if cfg.App.Wrap < 0 {
		errs = append(errs, fmt.Errorf("wrap must be >= 0 (got %d)", cfg.App.Wrap))
	}
	if w := cfg.App.SidebarWidth; w < ui.MinSidebarWidth || w > ui.MaxSidebarWidth {
		errs = append(errs, fmt.Errorf("sidebar-width must be between %d and %d (got %d)", ui.MinSidebarWidth, ui.MaxSidebarWidth, w))
	}
	if !ui.ValidStyle(cfg.App.Style) {
		errs = append(errs, fmt.Errorf("unknown style %q (want one of %s)", cfg.App.Style, strings.Join(ui.StyleNames(), ", ")))
	}
	if _, err := nav.ParseTarget(menu.BuildCatalog(), cfg.App.Start); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}
