package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/joestump/embedres/internal/config"
	"github.com/joestump/embedres/internal/embedgen"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "embedgen",
		Short:        "Generate Go accessors for resource files",
		Version:      config.Version,
		SilenceUsage: true,
	}

	f := rootCmd.PersistentFlags()
	f.String("config", "", "path to an embedgen YAML config file")
	f.String("package", "", "package name of the generated files")
	f.String("output", "", "directory the generated files are written to (default \".\")")
	f.StringArray("resource", nil, "resource to embed as [kind:]name=path (repeatable, one per flag)")
	f.Bool("verbose", false, "log every resource processed")

	// Viper keys use underscores so they match the env var suffix after
	// stripping the EMBEDGEN_ prefix.
	bindFlag := func(viperKey, flagName string) {
		_ = viper.BindPFlag(viperKey, f.Lookup(flagName))
	}
	bindFlag("config_file", "config")
	bindFlag("package", "package")
	bindFlag("output_dir", "output")
	bindFlag("verbose", "verbose")

	viper.SetEnvPrefix("EMBEDGEN")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Write one Go file per resource",
			Args:  cobra.NoArgs,
			RunE:  runGenerate,
		},
		&cobra.Command{
			Use:   "check",
			Short: "Report generated files that are missing or out of date",
			Args:  cobra.NoArgs,
			RunE:  runCheck,
		},
	)
	return rootCmd
}

func loadResources(cmd *cobra.Command) (config.Config, []embedgen.Resource, error) {
	// Read --resource directly: viper's flag binding would split values on
	// commas.
	if f := cmd.Flags(); f.Changed("resource") {
		resources, err := f.GetStringArray("resource")
		if err != nil {
			return config.Config{}, nil, err
		}
		viper.Set("resource", resources)
	}

	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("config: %w", err)
	}
	resources, err := cfg.Expand()
	if err != nil {
		return config.Config{}, nil, fmt.Errorf("resources: %w", err)
	}
	return cfg, resources, nil
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, resources, err := loadResources(cmd)
	if err != nil {
		return err
	}

	gen := embedgen.Generator{Package: cfg.Package}
	for _, r := range resources {
		path, err := gen.WriteFile(cfg.OutputDir, r)
		if err != nil {
			return fmt.Errorf("generate: %w", err)
		}
		if cfg.Verbose {
			log.Printf("wrote %s (%s, %d bytes from %s)", path, r.Kind, len(r.Data), r.Source)
		}
	}
	log.Printf("generated %d resource file(s) in %s", len(resources), cfg.OutputDir)
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	cfg, resources, err := loadResources(cmd)
	if err != nil {
		return err
	}

	gen := embedgen.Generator{Package: cfg.Package}
	stale := 0
	for _, r := range resources {
		path := filepath.Join(cfg.OutputDir, r.FileName())
		err := gen.Check(path, r)
		switch {
		case errors.Is(err, embedgen.ErrStale):
			log.Printf("%v", err)
			stale++
		case err != nil:
			return fmt.Errorf("check: %w", err)
		case cfg.Verbose:
			log.Printf("%s is up to date", path)
		}
	}
	if stale > 0 {
		return fmt.Errorf("%d of %d generated file(s) are stale; run embedgen generate", stale, len(resources))
	}
	return nil
}
