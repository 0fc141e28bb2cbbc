package catalog

import "fmt"

// Structural pattern demos.

// --- Adapter ---

type audioPlayer interface {
	playMP3(file string) string
}

type vlcLibrary struct{}

func (vlcLibrary) playVLC(file string) string {
	return "vlc library playing " + file
}

type vlcAdapter struct {
	lib vlcLibrary
}

func (a vlcAdapter) playMP3(file string) string {
	// Translate the mp3 request into the incompatible vlc call.
	return a.lib.playVLC(file)
}

type adapterDemo struct{}

func (adapterDemo) Metadata() Metadata {
	return Metadata{
		Name:        "adapter",
		Title:       "Adapter",
		Category:    CategoryStructural,
		Description: "An adapter lets the mp3 player interface drive an incompatible vlc library.",
	}
}

func (adapterDemo) Run() []string {
	var player audioPlayer = vlcAdapter{lib: vlcLibrary{}}
	return []string{
		"client requests playMP3(song.mp3)",
		"adapter: " + player.playMP3("song.mp3"),
	}
}

// --- Composite ---

type fsNode interface {
	size() int
	describe(indent string) []string
}

type fsFile struct {
	name  string
	bytes int
}

func (f fsFile) size() int { return f.bytes }
func (f fsFile) describe(indent string) []string {
	return []string{fmt.Sprintf("%s%s (%d bytes)", indent, f.name, f.bytes)}
}

type fsDir struct {
	name     string
	children []fsNode
}

func (d fsDir) size() int {
	total := 0
	for _, c := range d.children {
		total += c.size()
	}
	return total
}

func (d fsDir) describe(indent string) []string {
	lines := []string{fmt.Sprintf("%s%s/ (%d bytes)", indent, d.name, d.size())}
	for _, c := range d.children {
		lines = append(lines, c.describe(indent+"  ")...)
	}
	return lines
}

type compositeDemo struct{}

func (compositeDemo) Metadata() Metadata {
	return Metadata{
		Name:        "composite",
		Title:       "Composite",
		Category:    CategoryStructural,
		Description: "Directories and files share one node interface, so sizing a tree is a single recursive call.",
	}
}

func (compositeDemo) Run() []string {
	root := fsDir{
		name: "project",
		children: []fsNode{
			fsFile{name: "main.go", bytes: 120},
			fsDir{
				name: "docs",
				children: []fsNode{
					fsFile{name: "readme.md", bytes: 80},
				},
			},
		},
	}
	return root.describe("")
}

// --- Decorator ---

type beverage interface {
	label() string
	cost() int
}

type espresso struct{}

func (espresso) label() string { return "espresso" }
func (espresso) cost() int     { return 200 }

type withMilk struct {
	inner beverage
}

func (w withMilk) label() string { return w.inner.label() + " + milk" }
func (w withMilk) cost() int     { return w.inner.cost() + 50 }

type withMocha struct {
	inner beverage
}

func (w withMocha) label() string { return w.inner.label() + " + mocha" }
func (w withMocha) cost() int     { return w.inner.cost() + 75 }

type decoratorDemo struct{}

func (decoratorDemo) Metadata() Metadata {
	return Metadata{
		Name:        "decorator",
		Title:       "Decorator",
		Category:    CategoryStructural,
		Description: "Condiments wrap a coffee and add to its cost without changing the coffee type.",
	}
}

func (decoratorDemo) Run() []string {
	var drink beverage = espresso{}
	trace := []string{fmt.Sprintf("%s costs %d", drink.label(), drink.cost())}
	drink = withMilk{inner: drink}
	trace = append(trace, fmt.Sprintf("%s costs %d", drink.label(), drink.cost()))
	drink = withMocha{inner: drink}
	trace = append(trace, fmt.Sprintf("%s costs %d", drink.label(), drink.cost()))
	return trace
}

// --- Facade ---

type projector struct{}

func (projector) on() string { return "projector on" }

type amplifier struct{}

func (amplifier) setVolume(v int) string { return fmt.Sprintf("amplifier volume %d", v) }

type mediaPlayer struct{}

func (mediaPlayer) play(title string) string { return "playing " + title }

type homeTheater struct {
	proj projector
	amp  amplifier
	play mediaPlayer
}

func (h homeTheater) watchMovie(title string) []string {
	return []string{
		h.proj.on(),
		h.amp.setVolume(5),
		h.play.play(title),
	}
}

type facadeDemo struct{}

func (facadeDemo) Metadata() Metadata {
	return Metadata{
		Name:        "facade",
		Title:       "Facade",
		Category:    CategoryStructural,
		Description: "One watchMovie call hides the projector, amplifier, and player startup sequence.",
	}
}

func (facadeDemo) Run() []string {
	theater := homeTheater{}
	trace := []string{"facade: watchMovie(Metropolis)"}
	return append(trace, theater.watchMovie("Metropolis")...)
}

// --- Flyweight ---

type treeType struct {
	species string
	texture string
}

type treeTypeFactory struct {
	types map[string]*treeType
}

func (f *treeTypeFactory) get(species, texture string) *treeType {
	key := species + "/" + texture
	if t, ok := f.types[key]; ok {
		return t
	}
	t := &treeType{species: species, texture: texture}
	f.types[key] = t
	return t
}

type plantedTree struct {
	x, y int
	kind *treeType
}

type flyweightDemo struct{}

func (flyweightDemo) Metadata() Metadata {
	return Metadata{
		Name:        "flyweight",
		Title:       "Flyweight",
		Category:    CategoryStructural,
		Description: "A forest of trees shares TreeType instances holding the heavy visual attributes.",
	}
}

func (flyweightDemo) Run() []string {
	factory := &treeTypeFactory{types: make(map[string]*treeType)}
	forest := []plantedTree{
		{x: 1, y: 2, kind: factory.get("oak", "rough")},
		{x: 3, y: 4, kind: factory.get("pine", "smooth")},
		{x: 5, y: 6, kind: factory.get("oak", "rough")},
		{x: 7, y: 8, kind: factory.get("oak", "rough")},
	}
	trace := make([]string, 0, len(forest)+1)
	for _, t := range forest {
		trace = append(trace, fmt.Sprintf("planted %s at (%d,%d)", t.kind.species, t.x, t.y))
	}
	trace = append(trace, fmt.Sprintf("%d trees share %d tree types", len(forest), len(factory.types)))
	return trace
}

// --- Proxy ---

type image interface {
	display() string
}

type diskImage struct {
	file string
}

func newDiskImage(file string) diskImage {
	return diskImage{file: file}
}

func (d diskImage) display() string { return "displaying " + d.file }

type imageProxy struct {
	file   string
	loaded *diskImage
	trace  *[]string
}

func (p *imageProxy) display() string {
	if p.loaded == nil {
		*p.trace = append(*p.trace, "proxy: loading "+p.file+" from disk")
		img := newDiskImage(p.file)
		p.loaded = &img
	}
	return p.loaded.display()
}

type proxyDemo struct{}

func (proxyDemo) Metadata() Metadata {
	return Metadata{
		Name:        "proxy",
		Title:       "Proxy",
		Category:    CategoryStructural,
		Description: "A virtual proxy defers the expensive disk load until the image is first displayed.",
	}
}

func (proxyDemo) Run() []string {
	var trace []string
	var img image = &imageProxy{file: "photo.png", trace: &trace}
	trace = append(trace, "proxy created, nothing loaded yet")
	trace = append(trace, img.display())
	trace = append(trace, img.display()+" (already loaded, no second read)")
	return trace
}
