package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ThomasCrouzet/nagmaps/internal/detect"
	"github.com/ThomasCrouzet/nagmaps/internal/filter"
	"github.com/ThomasCrouzet/nagmaps/internal/model"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the home directory.
const FileName = ".nagmaps.yml"

type Config struct {
	HostgroupInclude []string                       `mapstructure:"hostgroup_include" yaml:"hostgroup_include"`
	HostgroupExclude []string                       `mapstructure:"hostgroup_exclude" yaml:"hostgroup_exclude"`
	HostgroupPrefix  []string                       `mapstructure:"hostgroup_prefix" yaml:"hostgroup_prefix"`
	HostgroupPostfix []string                       `mapstructure:"hostgroup_postfix" yaml:"hostgroup_postfix"`
	Backend          string                         `mapstructure:"backend" yaml:"backend"`
	ImagePath        string                         `mapstructure:"image_path" yaml:"image_path"`
	NagvisImagePath  string                         `mapstructure:"nagvis_image_path" yaml:"nagvis_image_path"`
	Iconset          string                         `mapstructure:"iconset" yaml:"iconset"`
	Source           string                         `mapstructure:"source" yaml:"source"`
	SourceFile       string                         `mapstructure:"source_file" yaml:"source_file"`
	LivestatusSocket string                         `mapstructure:"livestatus_socket" yaml:"livestatus_socket"`
	Debug            bool                           `mapstructure:"debug" yaml:"debug"`
	Groups           map[string]model.GroupMetadata `mapstructure:"groups" yaml:"groups"`

	// File is the config file that was read, empty if none.
	File string `mapstructure:"-" yaml:"-"`
}

// DefaultPath returns ~/.nagmaps.yml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, FileName), nil
}

// IsNotFound reports whether err means the config file does not exist.
func IsNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("hostgroup_include", []string{})
	v.SetDefault("hostgroup_exclude", []string{})
	v.SetDefault("hostgroup_prefix", []string{""})
	v.SetDefault("hostgroup_postfix", []string{""})
	v.SetDefault("backend", "localhost")
	v.SetDefault("image_path", "")
	v.SetDefault("nagvis_image_path", "")
	v.SetDefault("iconset", "std_big")
	v.SetDefault("source", "livestatus")
	v.SetDefault("source_file", "")
	v.SetDefault("livestatus_socket", "")
	v.SetDefault("debug", false)
}

// Load builds the configuration from the global viper instance and the
// local monitoring site.
func Load() (*Config, error) {
	return LoadFrom(viper.GetViper(), detect.Detect(nil))
}

// LoadFrom builds the configuration from v. Paths left empty are filled
// from site, image_path finally falling back to the executable's directory.
func LoadFrom(v *viper.Viper, site detect.Result) (*Config, error) {
	setDefaults(v)

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}

	// viper folds keys to lower case; host group names are case sensitive
	if used := v.ConfigFileUsed(); used != "" {
		if _, err := os.Stat(used); err == nil {
			groups, err := readGroups(used)
			if err != nil {
				return nil, err
			}
			cfg.Groups = groups
			cfg.File = used
		}
	}
	if cfg.Groups == nil {
		cfg.Groups = map[string]model.GroupMetadata{}
	}

	if cfg.LivestatusSocket == "" {
		cfg.LivestatusSocket = site.LivestatusSocket
	}
	if cfg.NagvisImagePath == "" {
		cfg.NagvisImagePath = site.NagvisImagePath
	}
	if cfg.ImagePath == "" {
		cfg.ImagePath = cfg.NagvisImagePath
	}
	if cfg.ImagePath == "" {
		dir, err := executableDir()
		if err != nil {
			return nil, fmt.Errorf("locating executable: %w", err)
		}
		cfg.ImagePath = dir
	}

	return cfg, nil
}

func readGroups(path string) (map[string]model.GroupMetadata, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var raw struct {
		Groups map[string]model.GroupMetadata `yaml:"groups"`
	}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing groups in %s: %w", path, err)
	}
	return raw.Groups, nil
}

func executableDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// Rules returns the host group filter rules.
func (c *Config) Rules() filter.Rules {
	return filter.Rules{
		Include: c.HostgroupInclude,
		Exclude: c.HostgroupExclude,
		Prefix:  c.HostgroupPrefix,
		Postfix: c.HostgroupPostfix,
	}
}

// Metadata returns the display settings of group with defaults applied.
func (c *Config) Metadata(group string) model.GroupMetadata {
	return model.MetadataFor(c.Groups, group)
}

// Dump renders the effective configuration as YAML.
func (c *Config) Dump() (string, error) {
	out, err := yaml.Marshal(c)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
