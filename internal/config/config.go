package config

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/spf13/viper"

	"github.com/joestump/embedres/internal/embedgen"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// Resource is one entry of the resources list. Exactly one of Source and Glob
// is set.
type Resource struct {
	Name   string `mapstructure:"name"`
	Source string `mapstructure:"source"`
	Glob   string `mapstructure:"glob"`
	Kind   string `mapstructure:"kind"`
}

// Config holds the generator configuration.
type Config struct {
	ConfigFile string
	// BaseDir is the directory relative source paths and globs resolve against.
	BaseDir   string
	Package   string
	OutputDir string
	Verbose   bool
	Resources []Resource
}

// Load reads configuration from the global viper instance, which merges flag
// values, EMBEDGEN_* env vars and the optional config file (set up by the
// cobra command in cmd/embedgen).
func Load() (Config, error) {
	return LoadFrom(viper.GetViper())
}

// LoadFrom reads configuration from v. If config_file is set, the file is read
// first and its directory becomes BaseDir.
func LoadFrom(v *viper.Viper) (Config, error) {
	cfg := Config{
		ConfigFile: v.GetString("config_file"),
		BaseDir:    ".",
	}
	var fileOutputDir string
	if cfg.ConfigFile != "" {
		fv := viper.New()
		fv.SetConfigFile(cfg.ConfigFile)
		if err := fv.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", cfg.ConfigFile, err)
		}
		if err := v.MergeConfigMap(fv.AllSettings()); err != nil {
			return Config{}, fmt.Errorf("merging config %s: %w", cfg.ConfigFile, err)
		}
		cfg.BaseDir = filepath.Dir(cfg.ConfigFile)
		fileOutputDir = fv.GetString("output_dir")
	}

	cfg.Package = v.GetString("package")
	cfg.OutputDir = v.GetString("output_dir")
	cfg.Verbose = v.GetBool("verbose")

	// An output_dir from the config file is relative to the file, like
	// sources. Flag and env values stay relative to the working directory.
	if fileOutputDir != "" && cfg.OutputDir == fileOutputDir {
		cfg.OutputDir = cfg.resolve(cfg.OutputDir)
	}

	if err := v.UnmarshalKey("resources", &cfg.Resources); err != nil {
		return Config{}, fmt.Errorf("parsing resources: %w", err)
	}
	for _, flag := range v.GetStringSlice("resource") {
		r, err := ParseResourceFlag(flag)
		if err != nil {
			return Config{}, err
		}
		cfg.Resources = append(cfg.Resources, r)
	}

	if cfg.OutputDir == "" {
		cfg.OutputDir = "."
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseResourceFlag parses a --resource value of the form kind:name=path. The
// kind prefix is optional and defaults to binary.
func ParseResourceFlag(s string) (Resource, error) {
	var r Resource
	spec := s
	if kind, rest, ok := strings.Cut(spec, ":"); ok && !strings.ContainsAny(kind, "=/\\") {
		r.Kind = kind
		spec = rest
	}
	name, path, ok := strings.Cut(spec, "=")
	if !ok || name == "" || path == "" {
		return Resource{}, fmt.Errorf("invalid resource %q: want [kind:]name=path", s)
	}
	r.Name = name
	r.Source = path
	return r, nil
}

// Validate checks the configuration for missing or malformed values.
func (c Config) Validate() error {
	if c.Package == "" {
		return fmt.Errorf("package is required")
	}
	if len(c.Resources) == 0 {
		return fmt.Errorf("no resources configured")
	}
	for i, r := range c.Resources {
		if (r.Source == "") == (r.Glob == "") {
			return fmt.Errorf("resources[%d]: exactly one of source and glob must be set", i)
		}
		if _, err := embedgen.ParseKind(r.Kind); err != nil {
			return fmt.Errorf("resources[%d]: %w", i, err)
		}
		if r.Source != "" {
			if err := embedgen.ValidateName(r.Name); err != nil {
				return fmt.Errorf("resources[%d]: %w", i, err)
			}
		}
	}
	return nil
}

// Expand resolves glob entries and returns the loaded resources in
// configuration order, globs sorted by path. A glob matching nothing is an
// error, as are two resources that would share an accessor or a generated
// file.
func (c Config) Expand() ([]embedgen.Resource, error) {
	var out []embedgen.Resource
	accessors := make(map[string]string)
	files := make(map[string]string)

	add := func(name, path, kindName string) error {
		kind, err := embedgen.ParseKind(kindName)
		if err != nil {
			return err
		}
		r, err := embedgen.Load(name, path, kind)
		if err != nil {
			return err
		}
		if prev, ok := accessors[r.Accessor()]; ok {
			return fmt.Errorf("resources %s and %s both generate accessor %s", prev, path, r.Accessor())
		}
		if prev, ok := files[r.FileName()]; ok {
			return fmt.Errorf("resources %s and %s both generate file %s", prev, path, r.FileName())
		}
		accessors[r.Accessor()] = path
		files[r.FileName()] = path
		out = append(out, r)
		return nil
	}

	for _, r := range c.Resources {
		if r.Source != "" {
			if err := add(r.Name, c.resolve(r.Source), r.Kind); err != nil {
				return nil, err
			}
			continue
		}

		matches, err := doublestar.FilepathGlob(c.resolve(r.Glob), doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("glob %s: %w", r.Glob, err)
		}
		if len(matches) == 0 {
			return nil, fmt.Errorf("glob %s matched no files", r.Glob)
		}
		sort.Strings(matches)
		for _, m := range matches {
			if err := add(embedgen.NameFromPath(m), m, r.Kind); err != nil {
				return nil, err
			}
		}
	}
	return out, nil
}

func (c Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.BaseDir, path)
}
