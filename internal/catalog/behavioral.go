package catalog

import "fmt"

// Behavioral pattern demos.

// --- Chain of Responsibility ---

type supportHandler interface {
	handle(severity int, issue string) []string
}

type supportLevel struct {
	name string
	max  int
	next supportHandler
}

func (l supportLevel) handle(severity int, issue string) []string {
	if severity <= l.max {
		return []string{fmt.Sprintf("%s resolved %q (severity %d)", l.name, issue, severity)}
	}
	lines := []string{fmt.Sprintf("%s escalates %q (severity %d)", l.name, issue, severity)}
	if l.next == nil {
		return append(lines, "no handler left, ticket dropped")
	}
	return append(lines, l.next.handle(severity, issue)...)
}

type chainDemo struct{}

func (chainDemo) Metadata() Metadata {
	return Metadata{
		Name:        "chain-of-responsibility",
		Title:       "Chain of Responsibility",
		Category:    CategoryBehavioral,
		Description: "Support tickets travel up a chain of handlers until one can resolve them.",
	}
}

func (chainDemo) Run() []string {
	chain := supportLevel{
		name: "helpdesk", max: 1,
		next: supportLevel{
			name: "engineer", max: 2,
			next: supportLevel{name: "on-call lead", max: 3},
		},
	}
	trace := chain.handle(1, "password reset")
	return append(trace, chain.handle(3, "database outage")...)
}

// --- Command ---

type command interface {
	execute() string
	undo() string
}

type lightCommand struct {
	room string
	on   bool
}

func (c lightCommand) execute() string {
	if c.on {
		return c.room + " light on"
	}
	return c.room + " light off"
}

func (c lightCommand) undo() string {
	if c.on {
		return c.room + " light off (undo)"
	}
	return c.room + " light on (undo)"
}

type commandDemo struct{}

func (commandDemo) Metadata() Metadata {
	return Metadata{
		Name:        "command",
		Title:       "Command",
		Category:    CategoryBehavioral,
		Description: "Light switch requests are command objects, so executed commands can be undone in reverse order.",
	}
}

func (commandDemo) Run() []string {
	var history []command
	var trace []string
	for _, c := range []command{
		lightCommand{room: "kitchen", on: true},
		lightCommand{room: "hall", on: true},
	} {
		trace = append(trace, c.execute())
		history = append(history, c)
	}
	for i := len(history) - 1; i >= 0; i-- {
		trace = append(trace, history[i].undo())
	}
	return trace
}

// --- Observer ---

type weatherDisplay interface {
	update(tempC float64) string
}

type phoneDisplay struct{}

func (phoneDisplay) update(tempC float64) string {
	return fmt.Sprintf("phone display: now %.1fC", tempC)
}

type windowDisplay struct{}

func (windowDisplay) update(tempC float64) string {
	return fmt.Sprintf("window display: now %.1fC", tempC)
}

type weatherStation struct {
	observers []weatherDisplay
}

func (w *weatherStation) attach(d weatherDisplay) {
	w.observers = append(w.observers, d)
}

func (w *weatherStation) setTemperature(tempC float64) []string {
	lines := []string{fmt.Sprintf("station: temperature reading %.1fC", tempC)}
	for _, o := range w.observers {
		lines = append(lines, o.update(tempC))
	}
	return lines
}

type observerDemo struct{}

func (observerDemo) Metadata() Metadata {
	return Metadata{
		Name:        "observer",
		Title:       "Observer",
		Category:    CategoryBehavioral,
		Description: "A weather station pushes each new temperature reading to every attached display.",
	}
}

func (observerDemo) Run() []string {
	station := &weatherStation{}
	station.attach(phoneDisplay{})
	station.attach(windowDisplay{})
	trace := station.setTemperature(21.5)
	return append(trace, station.setTemperature(19.0)...)
}

// --- State (vending machine) ---

type vendingState string

const (
	stateIdle       vendingState = "idle"
	stateHasCoin    vendingState = "has-coin"
	stateDispensing vendingState = "dispensing"
)

type slot struct {
	name  string
	count int
}

type vendingMachine struct {
	state vendingState
	slots map[string]*slot
	trace []string
}

func newVendingMachine() *vendingMachine {
	return &vendingMachine{
		state: stateIdle,
		slots: map[string]*slot{
			"A1": {name: "Coke", count: 5},
			"B2": {name: "Chips", count: 3},
		},
	}
}

func (m *vendingMachine) transition(to vendingState) {
	m.trace = append(m.trace, fmt.Sprintf("state: %s -> %s", m.state, to))
	m.state = to
}

func (m *vendingMachine) insertCoin() {
	if m.state != stateIdle {
		m.trace = append(m.trace, "coin rejected: machine busy")
		return
	}
	m.trace = append(m.trace, "coin accepted")
	m.transition(stateHasCoin)
}

func (m *vendingMachine) selectProduct(code string) {
	if m.state != stateHasCoin {
		m.trace = append(m.trace, "selection ignored: insert a coin first")
		return
	}
	s, ok := m.slots[code]
	if !ok || s.count == 0 {
		m.trace = append(m.trace, fmt.Sprintf("slot %s empty or unknown, coin returned", code))
		m.transition(stateIdle)
		return
	}
	m.transition(stateDispensing)
	before := s.count
	s.count--
	m.trace = append(m.trace,
		"Dispensing "+s.name,
		fmt.Sprintf("slot %s: %s count %d -> %d", code, s.name, before, s.count),
	)
	m.transition(stateIdle)
}

type stateDemo struct{}

func (stateDemo) Metadata() Metadata {
	return Metadata{
		Name:        "state",
		Title:       "State",
		Category:    CategoryBehavioral,
		Description: "A vending machine moves through idle, has-coin, and dispensing states as coins and selections arrive.",
	}
}

func (stateDemo) Run() []string {
	m := newVendingMachine()
	m.selectProduct("A1") // ignored: no coin yet
	m.insertCoin()
	m.selectProduct("A1")
	return m.trace
}

// --- Strategy ---

type paymentStrategy interface {
	pay(amount int) string
}

type cardPayment struct{}

func (cardPayment) pay(amount int) string { return fmt.Sprintf("paid %d by card", amount) }

type walletPayment struct{}

func (walletPayment) pay(amount int) string { return fmt.Sprintf("paid %d from wallet", amount) }

type checkout struct {
	strategy paymentStrategy
}

func (c *checkout) process(amount int) string {
	return c.strategy.pay(amount)
}

type strategyDemo struct{}

func (strategyDemo) Metadata() Metadata {
	return Metadata{
		Name:        "strategy",
		Title:       "Strategy",
		Category:    CategoryBehavioral,
		Description: "Checkout swaps payment strategies at runtime without branching on payment type.",
	}
}

func (strategyDemo) Run() []string {
	co := &checkout{strategy: cardPayment{}}
	trace := []string{co.process(1200)}
	co.strategy = walletPayment{}
	return append(trace, co.process(300), "checkout logic never changed")
}

// --- Template Method ---

type brewSteps interface {
	brew() string
	condiments() string
}

func prepareBeverage(name string, s brewSteps) []string {
	return []string{
		name + ": boil water",
		name + ": " + s.brew(),
		name + ": pour into cup",
		name + ": " + s.condiments(),
	}
}

type teaSteps struct{}

func (teaSteps) brew() string       { return "steep the tea bag" }
func (teaSteps) condiments() string { return "add lemon" }

type coffeeSteps struct{}

func (coffeeSteps) brew() string       { return "drip through filter" }
func (coffeeSteps) condiments() string { return "add sugar and milk" }

type templateMethodDemo struct{}

func (templateMethodDemo) Metadata() Metadata {
	return Metadata{
		Name:        "template-method",
		Title:       "Template Method",
		Category:    CategoryBehavioral,
		Description: "The brewing skeleton is fixed; tea and coffee supply only the varying steps.",
	}
}

func (templateMethodDemo) Run() []string {
	trace := prepareBeverage("tea", teaSteps{})
	return append(trace, prepareBeverage("coffee", coffeeSteps{})...)
}

// --- Visitor ---

type cartItem interface {
	accept(v cartVisitor) string
}

type book struct {
	title string
	price int
}

func (b book) accept(v cartVisitor) string { return v.visitBook(b) }

type groceries struct {
	weightKG int
	perKG    int
}

func (g groceries) accept(v cartVisitor) string { return v.visitGroceries(g) }

type cartVisitor interface {
	visitBook(b book) string
	visitGroceries(g groceries) string
}

type pricingVisitor struct {
	total int
}

func (p *pricingVisitor) visitBook(b book) string {
	p.total += b.price
	return fmt.Sprintf("book %q adds %d", b.title, b.price)
}

func (p *pricingVisitor) visitGroceries(g groceries) string {
	cost := g.weightKG * g.perKG
	p.total += cost
	return fmt.Sprintf("groceries %dkg add %d", g.weightKG, cost)
}

type visitorDemo struct{}

func (visitorDemo) Metadata() Metadata {
	return Metadata{
		Name:        "visitor",
		Title:       "Visitor",
		Category:    CategoryBehavioral,
		Description: "A pricing visitor computes cart totals without adding pricing methods to the item types.",
	}
}

func (visitorDemo) Run() []string {
	cart := []cartItem{
		book{title: "Design Patterns", price: 450},
		groceries{weightKG: 2, perKG: 30},
	}
	visitor := &pricingVisitor{}
	trace := make([]string, 0, len(cart)+1)
	for _, item := range cart {
		trace = append(trace, item.accept(visitor))
	}
	return append(trace, fmt.Sprintf("cart total: %d", visitor.total))
}
