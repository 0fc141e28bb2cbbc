package catalog

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Package catalog holds the pattern demonstration registry. Every demo is a
// self-contained toy: it builds its own objects, runs a short scripted
// interaction, and reports what happened as a trace of plain-text lines.
// Demos take no input and hold no state between runs.

var (
	ErrDemoExists      = errors.New("demo already registered")
	ErrDemoNil         = errors.New("demo is nil")
	ErrInvalidMetadata = errors.New("invalid demo metadata")
	ErrInvalidCategory = errors.New("invalid category")
)

// Category groups demos by the kind of principle or pattern they illustrate.
type Category string

const (
	CategorySolid      Category = "solid"
	CategoryCreational Category = "creational"
	CategoryStructural Category = "structural"
	CategoryBehavioral Category = "behavioral"
)

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	switch c {
	case CategorySolid, CategoryCreational, CategoryStructural, CategoryBehavioral:
		return true
	}
	return false
}

// Metadata is the contract for demo identity and display data.
type Metadata struct {
	Name        string   `json:"name"`
	Title       string   `json:"title"`
	Category    Category `json:"category"`
	Description string   `json:"description"`
}

// Demo is a single pattern demonstration. Run executes the scripted
// interaction and returns its trace, one line per step. Run must be
// deterministic: the same trace every call.
type Demo interface {
	Metadata() Metadata
	Run() []string
}

// Registry stores demos by stable name.
type Registry struct {
	items map[string]Demo
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{items: make(map[string]Demo)}
}

// ValidateMetadata checks required metadata fields and name format.
func ValidateMetadata(meta Metadata) error {
	name := strings.TrimSpace(meta.Name)
	title := strings.TrimSpace(meta.Title)
	desc := strings.TrimSpace(meta.Description)
	if name == "" || title == "" || desc == "" {
		return fmt.Errorf("%w: name, title, and description are required", ErrInvalidMetadata)
	}
	if !isValidName(name) {
		return fmt.Errorf("%w: invalid name format %q", ErrInvalidMetadata, name)
	}
	if !meta.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", ErrInvalidMetadata, meta.Category)
	}
	return nil
}

// Register adds a demo to the registry.
func (r *Registry) Register(d Demo) error {
	if d == nil {
		return ErrDemoNil
	}

	meta := d.Metadata()
	if err := ValidateMetadata(meta); err != nil {
		return err
	}

	if _, ok := r.items[meta.Name]; ok {
		return ErrDemoExists
	}
	r.items[meta.Name] = d
	return nil
}

// Resolve returns a demo by name.
func (r *Registry) Resolve(name string) (Demo, bool) {
	d, ok := r.items[name]
	return d, ok
}

// Len returns the number of registered demos.
func (r *Registry) Len() int {
	return len(r.items)
}

// List returns demo metadata in deterministic name order. An empty category
// lists everything; otherwise only demos in that category are returned.
func (r *Registry) List(category Category) []Metadata {
	list := make([]Metadata, 0, len(r.items))
	for _, d := range r.items {
		meta := d.Metadata()
		if category != "" && meta.Category != category {
			continue
		}
		list = append(list, meta)
	}
	sort.Slice(list, func(i, j int) bool {
		return list[i].Name < list[j].Name
	})
	return list
}

// Default returns a registry pre-loaded with the full demo roster.
func Default() *Registry {
	r := NewRegistry()
	for _, d := range roster() {
		if err := r.Register(d); err != nil {
			panic(fmt.Sprintf("catalog: register %q: %v", d.Metadata().Name, err))
		}
	}
	return r
}

func roster() []Demo {
	return []Demo{
		// SOLID principles
		srpDemo{},
		ocpDemo{},
		lspDemo{},
		ispDemo{},
		dipDemo{},
		// Creational patterns
		singletonDemo{},
		factoryMethodDemo{},
		abstractFactoryDemo{},
		builderDemo{},
		prototypeDemo{},
		// Structural patterns
		adapterDemo{},
		compositeDemo{},
		decoratorDemo{},
		facadeDemo{},
		flyweightDemo{},
		proxyDemo{},
		// Behavioral patterns
		chainDemo{},
		commandDemo{},
		observerDemo{},
		stateDemo{},
		strategyDemo{},
		templateMethodDemo{},
		visitorDemo{},
	}
}

func isValidName(name string) bool {
	if name == "" {
		return false
	}
	lastSep := false
	for i := 0; i < len(name); i++ {
		c := name[i]
		isLower := c >= 'a' && c <= 'z'
		isDigit := c >= '0' && c <= '9'
		isSep := c == '-' || c == '_' || c == '.'
		if !(isLower || isDigit || isSep) {
			return false
		}
		if i == 0 || i == len(name)-1 {
			if isSep {
				return false
			}
		}
		if isSep && lastSep {
			return false
		}
		lastSep = isSep
	}
	return true
}
