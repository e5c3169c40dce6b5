package wizard

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/genova-cli/genova/pkg/models"
)

// Prompter asks a single question and returns the raw answer.
// Confirm answers are "true" or "false".
type Prompter interface {
	Ask(ctx context.Context, q *Question) (string, error)
}

// FormPrompter asks questions with one huh.Form per question.
// Each question runs as its own form to avoid the huh v0.8.x YOffset scroll
// bug that occurs when multiple groups share a single viewport.
type FormPrompter struct {
	theme      *huh.Theme
	accessible bool
}

// NewFormPrompter creates a FormPrompter. Accessible mode reads plain lines
// from stdin and is used when no terminal is attached.
func NewFormPrompter(accessible bool) *FormPrompter {
	return &FormPrompter{theme: newGenovaTheme(), accessible: accessible}
}

// Ask implements Prompter.
func (p *FormPrompter) Ask(ctx context.Context, q *Question) (string, error) {
	var (
		value string
		field huh.Field
		yes   bool
	)

	switch q.Type {
	case QuestionTypeSelect:
		field = buildSelectField(q, &value)
	case QuestionTypeInput:
		field = buildInputField(q, &value)
	case QuestionTypeConfirm:
		yes = q.Default == "true"
		field = huh.NewConfirm().
			Title(q.Title).
			Description(q.Description).
			Affirmative("Yes").
			Negative("No").
			Value(&yes)
	default:
		return "", fmt.Errorf("%w: unknown question type %d", ErrInvalidAnswer, q.Type)
	}

	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(p.accessible)

	if err := form.RunWithContext(ctx); err != nil {
		if errors.Is(err, huh.ErrUserAborted) || errors.Is(err, context.Canceled) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("wizard error: %w", err)
	}

	if q.Type == QuestionTypeConfirm {
		return strconv.FormatBool(yes), nil
	}
	return strings.TrimSpace(value), nil
}

// buildSelectField creates a huh.Select field for a select-type question.
// Options are static: OptionsFunc forces a fixed height in huh v0.8.x and
// makes the viewport jump to the cursor on every update.
func buildSelectField(q *Question, value *string) *huh.Select[string] {
	*value = q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(value)
}

// buildInputField creates a huh.Input field for an input-type question.
func buildInputField(q *Question, value *string) *huh.Input {
	*value = q.Default

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(value)

	if q.Placeholder != "" {
		inp = inp.Placeholder(q.Placeholder)
	}
	if q.Validate != nil {
		validate := q.Validate
		inp = inp.Validate(func(val string) error {
			return validate(strings.TrimSpace(val))
		})
	}
	return inp
}

// Run asks every question whose condition holds, in order, and collects
// the answers. Cancellation at any point returns ErrCancelled.
func Run(ctx context.Context, questions []Question, p Prompter) (*Answers, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	answers := &Answers{Language: models.LanguageTypeScript}

	for i := range questions {
		q := &questions[i]

		// Pre-check condition: skip questions whose condition is not met.
		if q.Condition != nil && !q.Condition(answers) {
			continue
		}

		value, err := p.Ask(ctx, q)
		if err != nil {
			return nil, err
		}
		if q.Validate != nil {
			if err := q.Validate(value); err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidAnswer, q.ID, err)
			}
		}
		if err := checkOption(q, value); err != nil {
			return nil, err
		}
		if err := saveAnswer(q.ID, value, answers); err != nil {
			return nil, err
		}
	}

	return answers, nil
}

// checkOption rejects select answers that are not one of the options.
func checkOption(q *Question, value string) error {
	if q.Type != QuestionTypeSelect {
		return nil
	}
	if slices.ContainsFunc(q.Options, func(o Option) bool { return o.Value == value }) {
		return nil
	}
	return fmt.Errorf("%w: %s: %q is not an option", ErrInvalidAnswer, q.ID, value)
}

// saveAnswer stores an answer in the result.
func saveAnswer(id, value string, a *Answers) error {
	switch id {
	case IDProjectName:
		a.ProjectName = value
	case IDFullstack:
		b, err := parseBool(id, value)
		if err != nil {
			return err
		}
		a.Fullstack = b
		if b {
			a.ProjectType = models.ProjectTypeFullstack
		}
	case IDProjectType:
		a.ProjectType = models.ProjectType(value)
	case IDFrontend:
		a.Frontend = models.Frontend(value)
	case IDBackend:
		a.Backend = models.Backend(value)
	case IDLanguage:
		a.Language = models.Language(value)
	case IDDatabase:
		a.Database = models.Database(value)
	case IDLinting, IDPrettier, IDGit:
		b, err := parseBool(id, value)
		if err != nil {
			return err
		}
		switch id {
		case IDLinting:
			a.AddLinting = b
		case IDPrettier:
			a.AddPrettier = b
		default:
			a.InitGit = b
		}
	default:
		return fmt.Errorf("%w: unknown question %q", ErrInvalidAnswer, id)
	}
	return nil
}

func parseBool(id, value string) (bool, error) {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s: %q is not yes or no", ErrInvalidAnswer, id, value)
	}
	return b, nil
}

// ProjectConfig converts the answers into a validated models.ProjectConfig.
func (a *Answers) ProjectConfig() (models.ProjectConfig, error) {
	cfg := models.ProjectConfig{
		Name:          a.ProjectName,
		ProjectType:   a.ProjectType,
		UseTypeScript: a.Language != models.LanguageJavaScript,
	}
	if a.Fullstack {
		cfg.ProjectType = models.ProjectTypeFullstack
	}

	if cfg.ProjectType.HasFrontend() {
		cfg.Frontend = a.Frontend
	}
	if cfg.ProjectType.HasBackend() {
		cfg.Backend = a.Backend
		cfg.Database = a.Database
		cfg.AddLinting = a.AddLinting
		cfg.AddPrettier = a.AddPrettier
		cfg.InitGit = a.InitGit
	}

	if err := cfg.Validate(); err != nil {
		return models.ProjectConfig{}, err
	}
	return cfg, nil
}
