package backend

import (
	"io"
	"log/slog"
	"slices"

	"github.com/genova-cli/genova/internal/core/drivers"
	"github.com/genova-cli/genova/pkg/models"
)

// DependencySet is the ordered, duplicate-free list of packages to install.
type DependencySet struct {
	Runtime []string
	Dev     []string
}

// Add appends runtime packages not already present.
func (s *DependencySet) Add(pkgs ...string) {
	s.Runtime = appendUnique(s.Runtime, pkgs...)
}

// AddDev appends dev packages not already present.
func (s *DependencySet) AddDev(pkgs ...string) {
	s.Dev = appendUnique(s.Dev, pkgs...)
}

func appendUnique(list []string, pkgs ...string) []string {
	for _, p := range pkgs {
		if p != "" && !slices.Contains(list, p) {
			list = append(list, p)
		}
	}
	return list
}

// BuildDependencies returns the packages a backend with cfg needs. A
// database key without a registered driver contributes nothing and is
// logged.
func BuildDependencies(cfg models.ProjectConfig, logger *slog.Logger) DependencySet {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	var set DependencySet
	ts := cfg.UseTypeScript

	switch cfg.Backend {
	case models.BackendExpress:
		set.Add("express")
		if ts {
			set.Add("@types/express")
		}
	case models.BackendHapi:
		set.Add("@hapi/hapi")
		if ts {
			set.Add("@types/hapi__hapi")
		}
	}

	set.Add("dotenv")

	if cfg.NeedsDatabase() {
		if spec, ok := drivers.Lookup(cfg.Database); ok {
			set.Add(spec.Package)
			if ts {
				set.Add(spec.TypesPackage)
			}
		} else {
			logger.Warn("no driver registered for database, skipping", "database", cfg.Database)
		}
	}

	if ts {
		set.AddDev("typescript", "@types/node", "ts-node", "nodemon")
	} else {
		set.AddDev("nodemon")
	}

	return set
}
