// Package bootstrap builds the checker registry from configuration in an
// explicit order at program start.
package bootstrap

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"levelzero/internal/platform/config"
	"levelzero/internal/validation"
	"levelzero/internal/validation/checkers/certification"
	"levelzero/internal/validation/checkers/events"
	"levelzero/internal/validation/checkers/handlelifetime"
	"levelzero/internal/validation/checkers/leak"
	"levelzero/internal/validation/checkers/parameter"
	"levelzero/internal/validation/checkers/performance"
	"levelzero/internal/validation/checkers/template"
	"levelzero/internal/validation/checkers/threading"
	"levelzero/pkg/platform/strings"
	"levelzero/pkg/ze"
)

var ErrUnknownChecker = errors.New("bootstrap: unknown checker")

// DefaultOrder is the registration order used when no override is set.
// Threading is always registered last: its prologue marks a command list
// busy and only its epilogue releases it, so no later prologue may fail in
// between.
var DefaultOrder = []string{
	parameter.Name,
	certification.Name,
	handlelifetime.Name,
	template.Name,
	performance.Name,
	leak.Name,
	events.Name,
	threading.Name,
}

// Deps are the collaborators handed to every checker constructor.
type Deps struct {
	Logger     *slog.Logger
	// LeakReport receives the leak checker's report on Close.
	LeakReport io.Writer
	// Registry receives the checkers. Nil means a new registry.
	Registry   *validation.Registry
}

type constructor func(cfg config.Validation, deps Deps) (validation.Checker, error)

var constructors = map[string]constructor{
	parameter.Name: func(config.Validation, Deps) (validation.Checker, error) {
		return parameter.New(), nil
	},
	certification.Name: func(cfg config.Validation, deps Deps) (validation.Checker, error) {
		opts := []certification.Option{certification.WithLogger(deps.Logger)}
		if cfg.CertificationVersion != "" {
			v, err := ze.ParseAPIVersion(cfg.CertificationVersion)
			if err != nil {
				return nil, err
			}
			opts = append(opts, certification.WithVersion(v))
		}
		return certification.New(opts...), nil
	},
	handlelifetime.Name: func(config.Validation, Deps) (validation.Checker, error) {
		return handlelifetime.New(), nil
	},
	template.Name: func(_ config.Validation, deps Deps) (validation.Checker, error) {
		return template.New(template.WithLogger(deps.Logger)), nil
	},
	performance.Name: func(_ config.Validation, deps Deps) (validation.Checker, error) {
		return performance.New(performance.WithLogger(deps.Logger)), nil
	},
	leak.Name: func(_ config.Validation, deps Deps) (validation.Checker, error) {
		return leak.New(leak.WithLogger(deps.Logger), leak.WithOutput(deps.LeakReport)), nil
	},
	events.Name: func(_ config.Validation, deps Deps) (validation.Checker, error) {
		return events.New(events.WithLogger(deps.Logger)), nil
	},
	threading.Name: func(_ config.Validation, deps Deps) (validation.Checker, error) {
		return threading.New(threading.WithLogger(deps.Logger)), nil
	},
}

// Enabled reports whether any checker is switched on.
func Enabled(cfg config.Validation) bool {
	for _, name := range DefaultOrder {
		if enabled(cfg, name) {
			return true
		}
	}
	return false
}

func enabled(cfg config.Validation, name string) bool {
	switch name {
	case parameter.Name:
		return bool(cfg.Parameter)
	case certification.Name:
		return bool(cfg.Certification)
	case handlelifetime.Name:
		return bool(cfg.HandleLifetime)
	case template.Name:
		return bool(cfg.Template)
	case performance.Name:
		return bool(cfg.Performance)
	case leak.Name:
		return bool(cfg.Leak)
	case events.Name:
		return bool(cfg.Events)
	case threading.Name:
		return bool(cfg.Threading)
	}
	return false
}

// Order resolves the registration order. Names in cfg.Order come first,
// then every remaining checker in default order. Threading stays last.
func Order(cfg config.Validation) ([]string, error) {
	requested := strings.NormalizeNames(cfg.Order)
	order := make([]string, 0, len(DefaultOrder))
	seen := make(map[string]bool, len(DefaultOrder))
	for _, name := range requested {
		if _, ok := constructors[name]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownChecker, name)
		}
		if name == threading.Name {
			continue
		}
		order = append(order, name)
		seen[name] = true
	}
	for _, name := range DefaultOrder {
		if !seen[name] && name != threading.Name {
			order = append(order, name)
		}
	}
	return append(order, threading.Name), nil
}

// Setup constructs every enabled checker and appends it to deps.Registry,
// or to a new registry when that is nil. A checker whose constructor fails is left out and logged; the rest are
// still installed.
func Setup(cfg config.Validation, deps Deps) (*validation.Registry, error) {
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deps.LeakReport == nil {
		deps.LeakReport = os.Stderr
	}

	order, err := Order(cfg)
	if err != nil {
		return nil, err
	}

	registry := deps.Registry
	if registry == nil {
		registry = validation.NewRegistry()
	}
	for _, name := range order {
		if !enabled(cfg, name) {
			continue
		}
		checker, err := constructors[name](cfg, deps)
		if err != nil {
			deps.Logger.Warn("checker disabled", "checker", name, "error", err)
			continue
		}
		if err := registry.Append(checker); err != nil {
			return nil, fmt.Errorf("register %s: %w", name, err)
		}
		deps.Logger.Debug("checker registered", "checker", name, "position", registry.Len())
	}
	return registry, nil
}
