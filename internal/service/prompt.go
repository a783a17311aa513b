package service

import (
	"bytes"
	_ "embed"
	"fmt"
	"math"
	"os"
	"strings"
	"text/template"

	"github.com/phrazzld/escribe/internal/domain"
)

// TokensPerWord converts a requested word count into a token budget.
const TokensPerWord = 5

// DefaultTemperature is the sampling temperature sent with every request.
const DefaultTemperature float32 = 0.7

//go:embed templates/prompt.tmpl
var defaultPromptTemplate string

// TokenBudget returns targetLength * TokensPerWord, saturating at math.MaxInt.
func TokenBudget(targetLength int) int {
	if targetLength > math.MaxInt/TokensPerWord {
		return math.MaxInt
	}
	return targetLength * TokensPerWord
}

// promptData is what the prompt template sees.
type promptData struct {
	ContentType  string
	Topic        string
	Style        string
	TargetLength int
}

// PromptBuilder renders prompts from a text template.
type PromptBuilder struct {
	tmpl *template.Template
}

// NewPromptBuilder parses the template at path, or the embedded default when
// path is empty.
func NewPromptBuilder(path string) (*PromptBuilder, error) {
	text := defaultPromptTemplate
	name := "default"
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read prompt template from %s: %w", path, err)
		}
		text = string(content)
		name = path
	}

	tmpl, err := template.New(name).Option("missingkey=error").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}

	return &PromptBuilder{tmpl: tmpl}, nil
}

// Build substitutes req into the template. Surrounding whitespace, including
// the template file's trailing newline, is removed.
func (b *PromptBuilder) Build(req *domain.GenerationRequest) (string, error) {
	data := promptData{
		ContentType:  req.ContentType,
		Topic:        req.Topic,
		Style:        req.Style,
		TargetLength: req.TargetLength,
	}

	var buf bytes.Buffer
	if err := b.tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute prompt template: %w", err)
	}

	return strings.TrimSpace(buf.String()), nil
}
