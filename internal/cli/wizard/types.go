// Package wizard asks the project questions with huh forms and turns the
// answers into a models.ProjectConfig.
package wizard

import (
	"errors"

	"github.com/genova-cli/genova/pkg/models"
)

// Answers holds the user's selections.
type Answers struct {
	ProjectName string
	Fullstack   bool
	ProjectType models.ProjectType
	Frontend    models.Frontend
	Backend     models.Backend
	Language    models.Language
	Database    models.Database
	AddLinting  bool
	AddPrettier bool
	InitGit     bool
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeConfirm is a yes/no question.
	QuestionTypeConfirm
)

// Question IDs.
const (
	IDProjectName = "project_name"
	IDFullstack   = "fullstack"
	IDProjectType = "project_type"
	IDFrontend    = "frontend"
	IDBackend     = "backend"
	IDLanguage    = "language"
	IDDatabase    = "database"
	IDLinting     = "add_linting"
	IDPrettier    = "add_prettier"
	IDGit         = "init_git"
)

// Question defines a single wizard question.
type Question struct {
	ID          string                   // Unique identifier
	Type        QuestionType             // Select, Input or Confirm
	Title       string                   // Question title
	Description string                   // Additional description
	Placeholder string                   // Input placeholder
	Options     []Option                 // Options for select questions
	Default     string                   // Default value; "true"/"false" for confirms
	Condition   func(*Answers) bool      // Condition for asking this question
	Validate    func(value string) error // Input validation
}

// Option represents a selectable option.
type Option struct {
	Label string // Display label
	Value string // Actual value stored
	Desc  string // Optional description
}

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("operation cancelled")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
	// ErrInvalidAnswer is returned when an answer does not fit its question.
	ErrInvalidAnswer = errors.New("invalid answer")
)
