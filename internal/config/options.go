package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/viper"
)

type ConfigOption struct {
	Key     string
	Default any
	Comment string
}

// GetConfigOptions returns the configuration options, their defaults and meanings.
func GetConfigOptions() []ConfigOption {
	return []ConfigOption{
		{Key: "marker", Default: "|", Comment: "Margin marker character"},
		{Key: "prefix", Default: "", Comment: "Multi-character margin prefix; overrides marker when set"},
		{Key: "strict", Default: false, Comment: "Fail when a content line has no margin"},
		{Key: "extension", Default: ".margin", Comment: "Source file extension picked up by build"},
		{Key: "db_name", Default: ".trim-margin.db", Comment: "Render cache file name, searched up the directory tree"},
		{Key: "verbose", Default: false, Comment: "Enable debug logging"},
	}
}

// applyDefaults seeds Viper with the defaults of GetConfigOptions.
func applyDefaults(v *viper.Viper) {
	for _, o := range GetConfigOptions() {
		v.SetDefault(o.Key, o.Default)
	}
}

// RenderYAML renders the effective configuration as commented YAML.
func RenderYAML(v *viper.Viper) string {
	opts := GetConfigOptions()
	sort.SliceStable(opts, func(i, j int) bool { return opts[i].Key < opts[j].Key })

	var b strings.Builder
	for _, o := range opts {
		fmt.Fprintf(&b, "# %s\n", o.Comment)
		switch val := v.Get(o.Key).(type) {
		case string:
			fmt.Fprintf(&b, "%s: %q\n", o.Key, val)
		default:
			fmt.Fprintf(&b, "%s: %v\n", o.Key, val)
		}
	}
	return b.String()
}
