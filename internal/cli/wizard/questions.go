package wizard

import (
	"fmt"

	"github.com/genova-cli/genova/pkg/models"
)

// FolderExists reports whether a project folder is already taken.
type FolderExists func(name string) bool

// wantsBackend is the condition for backend-related questions.
func wantsBackend(a *Answers) bool {
	return a.Fullstack || a.ProjectType == models.ProjectTypeBackend
}

// wantsFrontend is the condition for frontend-related questions.
func wantsFrontend(a *Answers) bool {
	return a.Fullstack || a.ProjectType == models.ProjectTypeFrontend
}

// ValidateName returns the project-name validator. A name must match the
// allowed pattern and must not name an existing folder.
func ValidateName(exists FolderExists) func(string) error {
	return func(name string) error {
		if name == "" {
			return fmt.Errorf("project name cannot be empty")
		}
		if err := models.ValidateProjectName(name); err != nil {
			return fmt.Errorf("only lowercase letters, numbers, - and _ allowed")
		}
		if exists != nil && exists(name) {
			return fmt.Errorf("folder '%s' already exists", name)
		}
		return nil
	}
}

// DefaultQuestions returns the questions in the order they are asked:
// 1. Project name
// 2. Fullstack or not
// 3. Project type (when not fullstack)
// 4. Frontend framework
// 5. Backend framework
// 6. Language
// 7. Database
// 8. ESLint, Prettier and git (backend projects)
func DefaultQuestions(exists FolderExists) []Question {
	return []Question{
		// 1. Project Name
		{
			ID:          IDProjectName,
			Type:        QuestionTypeInput,
			Title:       "Project name:",
			Description: "Lowercase letters, numbers, - and _.",
			Placeholder: "my-project",
			Validate:    ValidateName(exists),
		},
		// 2. Fullstack
		{
			ID:          IDFullstack,
			Type:        QuestionTypeConfirm,
			Title:       "Fullstack project?",
			Description: "Creates frontend/ and backend/ in one folder.",
			Default:     "false",
		},
		// 3. Project Type
		{
			ID:    IDProjectType,
			Type:  QuestionTypeSelect,
			Title: "Project type:",
			Options: []Option{
				{Label: "Frontend", Value: string(models.ProjectTypeFrontend)},
				{Label: "Backend", Value: string(models.ProjectTypeBackend)},
			},
			Condition: func(a *Answers) bool { return !a.Fullstack },
		},
		// 4. Frontend Framework
		{
			ID:    IDFrontend,
			Type:  QuestionTypeSelect,
			Title: "Frontend framework:",
			Options: []Option{
				{Label: "Vite", Value: string(models.FrontendVite), Desc: "React"},
				{Label: "Next.js", Value: string(models.FrontendNextJS), Desc: "App Router, Tailwind"},
			},
			Condition: wantsFrontend,
		},
		// 5. Backend Framework
		{
			ID:    IDBackend,
			Type:  QuestionTypeSelect,
			Title: "Backend framework:",
			Options: []Option{
				{Label: "Express", Value: string(models.BackendExpress)},
				{Label: "Hapi", Value: string(models.BackendHapi)},
			},
			Condition: wantsBackend,
		},
		// 6. Language
		{
			ID:    IDLanguage,
			Type:  QuestionTypeSelect,
			Title: "Language:",
			Options: []Option{
				{Label: "TypeScript", Value: string(models.LanguageTypeScript)},
				{Label: "JavaScript", Value: string(models.LanguageJavaScript)},
			},
		},
		// 7. Database
		{
			ID:    IDDatabase,
			Type:  QuestionTypeSelect,
			Title: "Database:",
			Options: []Option{
				{Label: "PostgreSQL", Value: string(models.DatabasePostgreSQL)},
				{Label: "MySQL", Value: string(models.DatabaseMySQL)},
				{Label: "SQLite", Value: string(models.DatabaseSQLite)},
				{Label: "None", Value: string(models.DatabaseNone)},
			},
			Condition: wantsBackend,
		},
		// 8. Tooling
		{
			ID:        IDLinting,
			Type:      QuestionTypeConfirm,
			Title:     "Add ESLint?",
			Default:   "true",
			Condition: wantsBackend,
		},
		{
			ID:        IDPrettier,
			Type:      QuestionTypeConfirm,
			Title:     "Add Prettier?",
			Default:   "true",
			Condition: wantsBackend,
		},
		{
			ID:        IDGit,
			Type:      QuestionTypeConfirm,
			Title:     "Initialize a git repository?",
			Default:   "true",
			Condition: wantsBackend,
		},
	}
}
