package cli

import "path/filepath"

type projectFlags struct {
	Application string `name:"application" env:"PROPEL_PRUNE_APPLICATION" default:"frontend" help:"The application name."`
	Env         string `name:"env" env:"PROPEL_PRUNE_ENV" default:"prod" help:"The environment."`
	Root        string `name:"root" env:"PROPEL_PRUNE_ROOT" default:"." help:"Project root directory."`
	ConfigDir   string `name:"config-dir" env:"PROPEL_PRUNE_CONFIG_DIR" help:"Config directory (default: <root>/config)."`
	LibDir      string `name:"lib-dir" env:"PROPEL_PRUNE_LIB_DIR" help:"Library directory holding model, form and filter (default: <root>/lib)."`
	Schema      string `name:"schema" env:"PROPEL_PRUNE_SCHEMA" help:"Schema XML or YML file (default: <config-dir>/schema.xml)."`
}

func (f projectFlags) configDir() string {
	return f.resolve(f.ConfigDir, "config")
}

func (f projectFlags) libDir() string {
	return f.resolve(f.LibDir, "lib")
}

func (f projectFlags) schemaPath() string {
	if f.Schema == "" {
		return filepath.Join(f.configDir(), "schema.xml")
	}
	return f.resolve(f.Schema, "")
}

func (f projectFlags) resolve(p, fallback string) string {
	if p == "" {
		p = fallback
	}
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	root := f.Root
	if root == "" {
		root = "."
	}
	return filepath.Join(root, p)
}
