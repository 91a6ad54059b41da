// Package config loads bootstrap settings from the environment and
// optional .env style files.
package config

import (
	"strconv"
	"strings"

	"github.com/gobuffalo/envy"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

const prefix = "SODA_"

// Window backends.
const (
	WindowGLFW = "glfw"
	WindowSDL  = "sdl"
)

// Configuration defines the bootstrap settings
type Configuration struct {
	AppName    string
	EngineName string

	Width  int
	Height int

	// Debug enables the debug extension and validation layer bundle
	Debug           bool
	DebugExtensions []string
	DebugLayers     []string

	// Extensions and Layers are requested by the application itself
	Extensions       []string
	Layers           []string
	DeviceExtensions []string

	// Window is the windowing backend, "glfw" or "sdl"
	Window string

	LogLevel  string
	LogFormat string

	PreferDiscrete bool
}

var defaults = map[string]string{
	"APP_NAME":          "soda/vulkan",
	"ENGINE_NAME":       "soda",
	"WIDTH":             "800",
	"HEIGHT":            "600",
	"DEBUG":             "true",
	"DEBUG_EXTENSIONS":  "VK_EXT_debug_report",
	"DEBUG_LAYERS":      "VK_LAYER_KHRONOS_validation",
	"EXTENSIONS":        "",
	"LAYERS":            "",
	"DEVICE_EXTENSIONS": "",
	"WINDOW":            "glfw",
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "text",
	"PREFER_DISCRETE":   "false",
}

// Load reads the configuration from the environment. Values in files,
// read in order, override the environment.
func Load(files ...string) (Configuration, error) {
	overrides := map[string]string{}
	if len(files) > 0 {
		m, err := godotenv.Read(files...)
		if err != nil {
			return Configuration{}, errors.Wrap(err, "read config files")
		}
		overrides = m
	}

	get := func(key string) string {
		if v, ok := overrides[prefix+key]; ok {
			return v
		}
		return envy.Get(prefix+key, defaults[key])
	}

	var (
		cfg Configuration
		err error
	)
	cfg.AppName = get("APP_NAME")
	cfg.EngineName = get("ENGINE_NAME")
	if cfg.Width, err = parseInt(get, "WIDTH"); err != nil {
		return Configuration{}, err
	}
	if cfg.Height, err = parseInt(get, "HEIGHT"); err != nil {
		return Configuration{}, err
	}
	if cfg.Debug, err = parseBool(get, "DEBUG"); err != nil {
		return Configuration{}, err
	}
	if cfg.PreferDiscrete, err = parseBool(get, "PREFER_DISCRETE"); err != nil {
		return Configuration{}, err
	}
	cfg.DebugExtensions = List(get("DEBUG_EXTENSIONS"))
	cfg.DebugLayers = List(get("DEBUG_LAYERS"))
	cfg.Extensions = List(get("EXTENSIONS"))
	cfg.Layers = List(get("LAYERS"))
	cfg.DeviceExtensions = List(get("DEVICE_EXTENSIONS"))
	cfg.Window = strings.ToLower(get("WINDOW"))
	cfg.LogLevel = get("LOG_LEVEL")
	cfg.LogFormat = get("LOG_FORMAT")

	switch cfg.Window {
	case WindowGLFW, WindowSDL:
	default:
		return Configuration{}, errors.Errorf("%sWINDOW: unknown backend %q", prefix, cfg.Window)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return Configuration{}, errors.Errorf("window size %dx%d must be positive", cfg.Width, cfg.Height)
	}

	return cfg, nil
}

// List splits a comma separated value, dropping blanks.
func List(value string) []string {
	var out []string
	for _, s := range strings.Split(value, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func parseInt(get func(string) string, key string) (int, error) {
	v, err := strconv.Atoi(strings.TrimSpace(get(key)))
	if err != nil {
		return 0, errors.Wrapf(err, "%s%s", prefix, key)
	}
	return v, nil
}

func parseBool(get func(string) string, key string) (bool, error) {
	v, err := strconv.ParseBool(strings.TrimSpace(get(key)))
	if err != nil {
		return false, errors.Wrapf(err, "%s%s", prefix, key)
	}
	return v, nil
}
