package template

import (
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/genova-cli/genova/internal/core/drivers"
	"github.com/genova-cli/genova/internal/defs"
	"github.com/genova-cli/genova/pkg/models"
)

// Defaults used when no option overrides them.
const (
	DefaultPort       = 3000
	DefaultNodeEnv    = "development"
	DefaultDBHost     = "localhost"
	DefaultDBName     = "your_database"
	DefaultDBUser     = "your_username"
	DefaultDBPassword = "your_password"
)

// TemplateContext provides data for rendering generated files.
// All fields are exported for use with Go's text/template package.
type TemplateContext struct {
	// Project
	ProjectName string
	Title       string // ProjectName in title case, e.g. "My Shop"

	// Topology
	HasFrontend   bool
	HasBackend    bool
	Fullstack     bool
	FrontendPath  string // relative to the project root
	ServerPath    string // relative to the project root
	FrontendStack string // e.g. "React + Vite + TypeScript"
	BackendStack  string // e.g. "Express.js"
	TypeScript    bool

	// Server
	Port    int
	NodeEnv string

	// Database
	NeedsDatabase bool
	DatabaseName  string // driver display name, e.g. "PostgreSQL"
	DBHost        string
	DBPort        string // empty for file-based engines
	DBName        string
	DBUser        string
	DBPassword    string
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext with defaults, then applies
// any provided options.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		Port:       DefaultPort,
		NodeEnv:    DefaultNodeEnv,
		DBHost:     DefaultDBHost,
		DBName:     DefaultDBName,
		DBUser:     DefaultDBUser,
		DBPassword: DefaultDBPassword,
	}

	for _, opt := range opts {
		opt(ctx)
	}

	if ctx.Title == "" {
		ctx.Title = TitleCase(ctx.ProjectName)
	}

	return ctx
}

// WithProjectName sets the project name.
func WithProjectName(name string) ContextOption {
	return func(c *TemplateContext) {
		c.ProjectName = name
	}
}

// WithPort sets the server port. Non-positive values keep the default.
func WithPort(port int) ContextOption {
	return func(c *TemplateContext) {
		if port > 0 {
			c.Port = port
		}
	}
}

// WithConfig derives topology, stack names and database settings from cfg.
func WithConfig(cfg models.ProjectConfig) ContextOption {
	return func(c *TemplateContext) {
		if c.ProjectName == "" {
			c.ProjectName = cfg.Name
		}
		c.TypeScript = cfg.UseTypeScript
		c.HasFrontend = cfg.ProjectType.HasFrontend()
		c.HasBackend = cfg.ProjectType.HasBackend()
		c.Fullstack = cfg.ProjectType == models.ProjectTypeFullstack

		c.FrontendPath = ""
		c.ServerPath = ""
		switch cfg.ProjectType {
		case models.ProjectTypeFullstack:
			c.FrontendPath = defs.FrontendDir
			c.ServerPath = defs.BackendDir + "/" + defs.ServerDir
		case models.ProjectTypeBackend:
			c.ServerPath = defs.ServerDir
		}

		c.FrontendStack = FrontendStackName(cfg.Frontend, cfg.UseTypeScript)
		c.BackendStack = cfg.Backend.DisplayName()

		c.NeedsDatabase = cfg.NeedsDatabase()
		c.DatabaseName = ""
		c.DBPort = ""
		if c.NeedsDatabase {
			c.DatabaseName = drivers.DisplayName(cfg.Database)
			if spec, ok := drivers.Lookup(cfg.Database); ok && spec.DefaultPort > 0 {
				c.DBPort = strconv.Itoa(spec.DefaultPort)
			}
		}
	}
}

// FrontendStackName returns the display name of a frontend stack.
func FrontendStackName(f models.Frontend, typeScript bool) string {
	var name string
	switch f {
	case models.FrontendVite:
		name = "React + Vite"
	case models.FrontendNextJS:
		name = "Next.js"
	default:
		return ""
	}
	if typeScript {
		name += " + TypeScript"
	}
	return name
}

// TitleCase turns a project name such as "my-shop_api" into "My Shop Api".
func TitleCase(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return r == '-' || r == '_'
	})
	return cases.Title(language.English).String(strings.Join(words, " "))
}
