// Package drivers maps a database choice to the npm package that lets the
// generated backend talk to it.
package drivers

import (
	"sort"

	"github.com/genova-cli/genova/pkg/models"
)

// DriverSpec describes the driver package for one database engine.
type DriverSpec struct {
	Key          models.Database
	Package      string // npm package name
	DisplayName  string
	TypesPackage string // type definitions, empty when the package ships its own
	DefaultPort  int    // 0 for file-based engines
}

var registry = map[models.Database]DriverSpec{
	models.DatabasePostgreSQL: {
		Key:          models.DatabasePostgreSQL,
		Package:      "pg",
		DisplayName:  "PostgreSQL",
		TypesPackage: "@types/pg",
		DefaultPort:  5432,
	},
	models.DatabaseMySQL: {
		Key:         models.DatabaseMySQL,
		Package:     "mysql2",
		DisplayName: "MySQL",
		DefaultPort: 3306,
	},
	models.DatabaseSQLite: {
		Key:         models.DatabaseSQLite,
		Package:     "sqlite3",
		DisplayName: "SQLite",
	},
}

// Lookup returns the driver for db. The second return value is false for
// "none" and for keys without a registered driver.
func Lookup(db models.Database) (DriverSpec, bool) {
	spec, ok := registry[db]
	return spec, ok
}

// Keys returns the registered database keys in sorted order.
func Keys() []models.Database {
	keys := make([]models.Database, 0, len(registry))
	for k := range registry {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// DisplayName returns the driver display name, or the raw key when no driver
// is registered.
func DisplayName(db models.Database) string {
	if spec, ok := registry[db]; ok {
		return spec.DisplayName
	}
	return string(db)
}
