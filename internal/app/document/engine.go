package document

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/oguzk/disiplintakip/internal/pkg/apperrors"
)

// Engine renders document bodies from the built-in template set. The
// template set is parsed once at construction.
type Engine struct {
	templates map[Type]*template.Template
}

// NewEngine parses every built-in template body. A parse failure is a
// programming error and panics at startup.
func NewEngine() *Engine {
	set := make(map[Type]*template.Template, len(templateBodies))
	for t, body := range templateBodies {
		set[t] = template.Must(template.New(string(t)).Parse(body))
	}
	return &Engine{templates: set}
}

// Title returns the display title of a form type.
func Title(t Type) string {
	for _, info := range Catalog {
		if info.Type == t {
			return info.Title
		}
	}
	return string(t)
}

// Render produces the HTML body for one form. Outside blank mode the
// student and incident requirements of the form type are enforced.
func (e *Engine) Render(req Request) (Result, error) {
	tpl, ok := e.templates[req.Type]
	if !ok {
		return Result{}, apperrors.ErrUnknownTemplate
	}

	if !req.Blank {
		if NeedsStudent(req.Type) && req.Student == nil {
			return Result{}, apperrors.ErrContextMissing
		}
		if NeedsIncident(req.Type) && req.Incident == nil {
			return Result{}, apperrors.ErrContextMissing
		}
	}

	var sb strings.Builder
	if err := tpl.Execute(&sb, buildData(req)); err != nil {
		return Result{}, fmt.Errorf("failed to render %s: %w", req.Type, err)
	}
	return Result{Type: req.Type, Title: Title(req.Type), Body: sb.String()}, nil
}
