package template

// ESLintConfig is the .eslintrc.json document.
type ESLintConfig struct {
	Env           map[string]bool `json:"env"`
	Extends       []string        `json:"extends"`
	Parser        string          `json:"parser,omitempty"`
	ParserOptions ParserOptions   `json:"parserOptions"`
	Rules         map[string]any  `json:"rules"`
}

// ParserOptions configures the ESLint parser.
type ParserOptions struct {
	ECMAVersion string `json:"ecmaVersion"`
	SourceType  string `json:"sourceType"`
}

// TypeScriptESLintParser is the parser wired in for TypeScript projects.
const TypeScriptESLintParser = "@typescript-eslint/parser"

// NewESLintConfig returns the recommended rule set, extended with the
// TypeScript plugin when typeScript is true.
func NewESLintConfig(typeScript bool) ESLintConfig {
	cfg := ESLintConfig{
		Env:     map[string]bool{"node": true, "es2021": true},
		Extends: []string{"eslint:recommended"},
		ParserOptions: ParserOptions{
			ECMAVersion: "latest",
			SourceType:  "module",
		},
		Rules: map[string]any{},
	}
	if typeScript {
		cfg.Extends = append(cfg.Extends, "plugin:@typescript-eslint/recommended")
		cfg.Parser = TypeScriptESLintParser
	}
	return cfg
}

// PrettierConfig is the .prettierrc.json document.
type PrettierConfig struct {
	Semi          bool   `json:"semi"`
	TrailingComma string `json:"trailingComma"`
	SingleQuote   bool   `json:"singleQuote"`
	PrintWidth    int    `json:"printWidth"`
	TabWidth      int    `json:"tabWidth"`
}

// NewPrettierConfig returns the fixed formatting style.
func NewPrettierConfig() PrettierConfig {
	return PrettierConfig{
		Semi:          true,
		TrailingComma: "es5",
		SingleQuote:   true,
		PrintWidth:    80,
		TabWidth:      2,
	}
}

// TSConfig is the tsconfig.json document.
type TSConfig struct {
	CompilerOptions CompilerOptions `json:"compilerOptions"`
	Include         []string        `json:"include"`
	Exclude         []string        `json:"exclude"`
}

// CompilerOptions holds the TypeScript compiler settings.
type CompilerOptions struct {
	Target                           string `json:"target"`
	Module                           string `json:"module"`
	ModuleResolution                 string `json:"moduleResolution"`
	OutDir                           string `json:"outDir"`
	RootDir                          string `json:"rootDir"`
	Strict                           bool   `json:"strict"`
	ESModuleInterop                  bool   `json:"esModuleInterop"`
	SkipLibCheck                     bool   `json:"skipLibCheck"`
	ForceConsistentCasingInFileNames bool   `json:"forceConsistentCasingInFileNames"`
}

// NewTSConfig returns the compiler configuration for generated servers.
func NewTSConfig() TSConfig {
	return TSConfig{
		CompilerOptions: CompilerOptions{
			Target:                           "ES2020",
			Module:                           "ESNext",
			ModuleResolution:                 "node",
			OutDir:                           "./dist",
			RootDir:                          "./src",
			Strict:                           true,
			ESModuleInterop:                  true,
			SkipLibCheck:                     true,
			ForceConsistentCasingInFileNames: true,
		},
		Include: []string{"src/**/*"},
		Exclude: []string{"node_modules"},
	}
}
