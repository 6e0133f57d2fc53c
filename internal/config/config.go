// Package config loads optional local CLI preferences from a TOML file,
// adapted from the teacher's loadToml pattern. This carries only
// operator preferences (default output mode, netlink receive timeout);
// it never holds device or pin state, which always comes from the
// kernel over netlink.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Preferences is the shape of the optional preferences file at
// DefaultPath, consulted
// for defaults the CLI flags don't override.
type Preferences struct {
	JSON           bool          `toml:"json"`
	Pretty         bool          `toml:"pretty"`
	RecvTimeout    time.Duration `toml:"recv_timeout"`
	MonitorTimeout time.Duration `toml:"monitor_timeout"`
}

// DefaultRecvTimeout bounds a single request/reply round trip when no
// preference file overrides it.
const DefaultRecvTimeout = 5 * time.Second

// DefaultMonitorTimeout bounds each wait-for-event tick in the
// notification loop.
const DefaultMonitorTimeout = 2 * time.Second

func defaultPreferences() Preferences {
	return Preferences{
		RecvTimeout:    DefaultRecvTimeout,
		MonitorTimeout: DefaultMonitorTimeout,
	}
}

// Load reads preferences from path. A missing file is not an error: it
// returns defaults, since the preference file is optional.
func Load(path string) (Preferences, error) {
	prefs := defaultPreferences()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return prefs, nil
		}
		return Preferences{}, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	if err := toml.Unmarshal(data, &prefs); err != nil {
		return Preferences{}, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	if err := Validate(prefs); err != nil {
		return Preferences{}, err
	}
	return prefs, nil
}

// Validate rejects preference values that cannot be applied.
func Validate(prefs Preferences) error {
	if prefs.RecvTimeout < 0 {
		return fmt.Errorf("recv_timeout must not be negative")
	}
	if prefs.MonitorTimeout < 0 {
		return fmt.Errorf("monitor_timeout must not be negative")
	}
	return nil
}

// DefaultPath returns the conventional per-user preferences path,
// honoring XDG_CONFIG_HOME when set.
func DefaultPath() string {
	if xdg := strings.TrimSpace(os.Getenv("XDG_CONFIG_HOME")); xdg != "" {
		return xdg + "/dpllctl/config.toml"
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".dpllctl.toml"
	}
	return home + "/.config/dpllctl/config.toml"
}
