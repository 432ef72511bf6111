// Package errors provides the structured error type (EngineError) used for
// validation reporting, plus an accumulating list so a run can surface every
// fault in one pass instead of failing on the first.
package errors

import (
	"fmt"
	"sort"
	"strings"
)

// Category classifies an EngineError for logging and exit handling.
type Category string

const (
	CategoryConfig     Category = "config"
	CategoryValidation Category = "validation"
	CategoryRoute      Category = "route"
	CategoryAssets     Category = "assets"
	CategoryFileSystem Category = "filesystem"
	CategoryInternal   Category = "internal"
)

// Kind identifies the specific fault. The set is closed; builders and
// registries construct errors only through the constructors in this package.
type Kind string

const (
	KindUnknownType             Kind = "UnknownType"
	KindUnknownLang             Kind = "UnknownLang"
	KindMissingRequiredProperty Kind = "MissingRequiredProperty"
	KindMalformedDate           Kind = "MalformedDate"
	KindDuplicateSlug           Kind = "DuplicateSlug"
	KindDuplicateTranslation    Kind = "DuplicateTranslation"
	KindUnmappedType            Kind = "UnmappedType"
	KindAssetNotFound           Kind = "AssetNotFound"
	KindConfigMissingSection    Kind = "ConfigMissingSection"
)

// ContextFields carries structured context for an EngineError.
type ContextFields map[string]any

// EngineError is a structured error naming the offending page, the fault
// kind, and any counterpart involved (e.g. the first page of a duplicate).
type EngineError struct {
	Kind     Kind
	Category Category
	Page     string // source page id; empty for config-level faults
	Message  string
	Context  ContextFields
}

// Error implements the error interface.
func (e *EngineError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s", e.Kind)
	if e.Page != "" {
		fmt.Fprintf(&b, " [%s]", e.Page)
	}
	fmt.Fprintf(&b, ": %s", e.Message)
	if len(e.Context) > 0 {
		keys := make([]string, 0, len(e.Context))
		for k := range e.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s=%v", k, e.Context[k]))
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(parts, ", "))
	}
	return b.String()
}

// WithContext adds context information to the error.
func (e *EngineError) WithContext(key string, value any) *EngineError {
	if e.Context == nil {
		e.Context = make(ContextFields)
	}
	e.Context[key] = value
	return e
}

// New creates a new EngineError.
func New(kind Kind, category Category, page, message string) *EngineError {
	return &EngineError{Kind: kind, Category: category, Page: page, Message: message}
}

// IsKind checks if an error is an EngineError of a specific kind.
func IsKind(err error, kind Kind) bool {
	if ee, ok := err.(*EngineError); ok {
		return ee.Kind == kind
	}
	return false
}

// List accumulates EngineErrors across a validation pass.
type List struct {
	errs []*EngineError
}

// Add appends any non-nil errors to the list.
func (l *List) Add(errs ...*EngineError) {
	for _, e := range errs {
		if e != nil {
			l.errs = append(l.errs, e)
		}
	}
}

// Merge appends all errors from another list.
func (l *List) Merge(other *List) {
	if other != nil {
		l.errs = append(l.errs, other.errs...)
	}
}

// Len returns the number of accumulated errors.
func (l *List) Len() int { return len(l.errs) }

// All returns the accumulated errors in insertion order.
func (l *List) All() []*EngineError { return l.errs }

// Err returns the list as an error, or nil when empty.
func (l *List) Err() error {
	if len(l.errs) == 0 {
		return nil
	}
	return l
}

// Error renders one line per fault so the author sees every problem at once.
func (l *List) Error() string {
	lines := make([]string, 0, len(l.errs))
	for _, e := range l.errs {
		lines = append(lines, e.Error())
	}
	return fmt.Sprintf("%d validation error(s):\n%s", len(l.errs), strings.Join(lines, "\n"))
}
