package catalog

import "fmt"

// Creational pattern demos.

// --- Singleton ---

type appSettings struct {
	env string
}

type singletonDemo struct{}

func (singletonDemo) Metadata() Metadata {
	return Metadata{
		Name:        "singleton",
		Title:       "Singleton",
		Category:    CategoryCreational,
		Description: "Two lookups of the application settings observe the same instance.",
	}
}

func (singletonDemo) Run() []string {
	// Scoped to the run so the demo stays stateless between calls.
	var instance *appSettings
	getSettings := func() *appSettings {
		if instance == nil {
			instance = &appSettings{env: "production"}
		}
		return instance
	}

	first := getSettings()
	second := getSettings()
	return []string{
		fmt.Sprintf("first lookup: env=%s", first.env),
		fmt.Sprintf("second lookup: env=%s", second.env),
		fmt.Sprintf("same instance: %t", first == second),
	}
}

// --- Factory Method ---

type transport interface {
	deliver() string
}

type lorry struct{}

func (lorry) deliver() string { return "delivering by road in a lorry" }

type ship struct{}

func (ship) deliver() string { return "delivering by sea in a ship" }

func newTransport(kind string) (transport, error) {
	switch kind {
	case "road":
		return lorry{}, nil
	case "sea":
		return ship{}, nil
	}
	return nil, fmt.Errorf("unknown transport kind %q", kind)
}

type factoryMethodDemo struct{}

func (factoryMethodDemo) Metadata() Metadata {
	return Metadata{
		Name:        "factory-method",
		Title:       "Factory Method",
		Category:    CategoryCreational,
		Description: "Callers ask the factory for a transport by kind and never touch concrete constructors.",
	}
}

func (factoryMethodDemo) Run() []string {
	trace := make([]string, 0, 3)
	for _, kind := range []string{"road", "sea"} {
		t, err := newTransport(kind)
		if err != nil {
			trace = append(trace, "error: "+err.Error())
			continue
		}
		trace = append(trace, fmt.Sprintf("factory(%s): %s", kind, t.deliver()))
	}
	if _, err := newTransport("air"); err != nil {
		trace = append(trace, "factory(air): "+err.Error())
	}
	return trace
}

// --- Abstract Factory ---

type button interface {
	render() string
}

type checkbox interface {
	tick() string
}

type widgetFactory interface {
	newButton() button
	newCheckbox() checkbox
}

type darkButton struct{}

func (darkButton) render() string { return "rendered dark button" }

type darkCheckbox struct{}

func (darkCheckbox) tick() string { return "ticked dark checkbox" }

type lightButton struct{}

func (lightButton) render() string { return "rendered light button" }

type lightCheckbox struct{}

func (lightCheckbox) tick() string { return "ticked light checkbox" }

type darkFactory struct{}

func (darkFactory) newButton() button     { return darkButton{} }
func (darkFactory) newCheckbox() checkbox { return darkCheckbox{} }

type lightFactory struct{}

func (lightFactory) newButton() button     { return lightButton{} }
func (lightFactory) newCheckbox() checkbox { return lightCheckbox{} }

type abstractFactoryDemo struct{}

func (abstractFactoryDemo) Metadata() Metadata {
	return Metadata{
		Name:        "abstract-factory",
		Title:       "Abstract Factory",
		Category:    CategoryCreational,
		Description: "A theme factory produces matched widget families without exposing concrete widget types.",
	}
}

func (abstractFactoryDemo) Run() []string {
	var trace []string
	for _, f := range []widgetFactory{darkFactory{}, lightFactory{}} {
		trace = append(trace, f.newButton().render(), f.newCheckbox().tick())
	}
	return trace
}

// --- Builder ---

type burger struct {
	patty    string
	cheese   bool
	toppings []string
}

type burgerBuilder struct {
	b burger
}

func (bb *burgerBuilder) withPatty(p string) *burgerBuilder {
	bb.b.patty = p
	return bb
}

func (bb *burgerBuilder) withCheese() *burgerBuilder {
	bb.b.cheese = true
	return bb
}

func (bb *burgerBuilder) withTopping(t string) *burgerBuilder {
	bb.b.toppings = append(bb.b.toppings, t)
	return bb
}

func (bb *burgerBuilder) build() burger {
	return bb.b
}

type builderDemo struct{}

func (builderDemo) Metadata() Metadata {
	return Metadata{
		Name:        "builder",
		Title:       "Builder",
		Category:    CategoryCreational,
		Description: "A fluent builder assembles a burger step by step before producing the final value.",
	}
}

func (builderDemo) Run() []string {
	b := (&burgerBuilder{}).
		withPatty("beef").
		withCheese().
		withTopping("lettuce").
		withTopping("onion").
		build()
	return []string{
		"builder: set patty=beef",
		"builder: added cheese",
		"builder: added toppings lettuce, onion",
		fmt.Sprintf("built burger: %s patty, cheese=%t, %d toppings", b.patty, b.cheese, len(b.toppings)),
	}
}

// --- Prototype ---

type treePrototype struct {
	species string
	height  int
}

func (t treePrototype) clone() treePrototype {
	return treePrototype{species: t.species, height: t.height}
}

type prototypeDemo struct{}

func (prototypeDemo) Metadata() Metadata {
	return Metadata{
		Name:        "prototype",
		Title:       "Prototype",
		Category:    CategoryCreational,
		Description: "New trees are cloned from a prototype and then varied, instead of being built from scratch.",
	}
}

func (prototypeDemo) Run() []string {
	proto := treePrototype{species: "oak", height: 10}
	clone := proto.clone()
	clone.height = 12
	return []string{
		fmt.Sprintf("prototype: %s height=%d", proto.species, proto.height),
		fmt.Sprintf("clone: %s height=%d", clone.species, clone.height),
		fmt.Sprintf("prototype unchanged: height=%d", proto.height),
	}
}
