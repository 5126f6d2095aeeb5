// Package profile resolves the active profile directory from a profiles.ini
// registry of the kind Thunderbird and Firefox maintain.
package profile

import (
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"
)

type section struct {
	path     string
	relative bool
	def      bool
}

// Resolve returns the directory of the selected profile. Priority follows
// the registry format's convention: an Install section's Default pointer
// wins over a Profile section's Default=1 flag. The boolean is false when no
// profile can be resolved, including when the registry itself is missing or
// corrupt; callers are expected to degrade, not fail.
func Resolve(registryPath string) (string, bool) {
	cfg, err := ini.Load(registryPath)
	if err != nil {
		return "", false
	}
	base := filepath.Dir(registryPath)

	var profiles []section
	var installDefault string
	for _, sec := range cfg.Sections() {
		name := sec.Name()
		switch {
		case strings.HasPrefix(name, "Install"):
			if installDefault == "" {
				installDefault = sec.Key("Default").String()
			}
		case strings.HasPrefix(name, "Profile"):
			profiles = append(profiles, section{
				path: sec.Key("Path").String(),
				// Paths are relative to the registry unless the section
				// says otherwise.
				relative: sec.Key("IsRelative").MustInt(1) == 1,
				def:      sec.Key("Default").String() == "1",
			})
		}
	}

	join := func(path string, relative bool) string {
		if relative {
			return filepath.Join(base, path)
		}
		return path
	}

	if installDefault != "" {
		for _, p := range profiles {
			if p.path == installDefault {
				return join(p.path, p.relative), true
			}
		}
		// Install pointers name a path relative to the registry even when
		// no Profile section describes it.
		return filepath.Join(base, installDefault), true
	}
	for _, p := range profiles {
		if p.def && p.path != "" {
			return join(p.path, p.relative), true
		}
	}
	return "", false
}
