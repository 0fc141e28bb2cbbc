package catalog

import "fmt"

// SOLID principle demos. The vehicle examples mirror the classic insurance
// tier exercise: a base Vehicle abstraction, tier rules per concrete type,
// and capability interfaces split so electric vehicles are never forced to
// implement refueling.

// --- Single Responsibility ---

type srpReport struct {
	title string
	body  string
}

type srpReportWriter struct{}

func (srpReportWriter) format(r srpReport) string {
	return fmt.Sprintf("[%s] %s", r.title, r.body)
}

type srpReportSaver struct{}

func (srpReportSaver) save(r srpReport) string {
	return fmt.Sprintf("saved report %q to archive", r.title)
}

type srpDemo struct{}

func (srpDemo) Metadata() Metadata {
	return Metadata{
		Name:        "srp",
		Title:       "Single Responsibility Principle",
		Category:    CategorySolid,
		Description: "Formatting and persisting a report are separate responsibilities handled by separate types.",
	}
}

func (srpDemo) Run() []string {
	report := srpReport{title: "Q3 Sales", body: "revenue up 12%"}
	var writer srpReportWriter
	var saver srpReportSaver
	return []string{
		"formatter: " + writer.format(report),
		"saver: " + saver.save(report),
		"each type changes for exactly one reason",
	}
}

// --- Open/Closed ---

type insuredVehicle interface {
	describe() string
	insurance() int
}

type car struct{ age int }

func (c car) describe() string { return fmt.Sprintf("car (age %d)", c.age) }
func (c car) insurance() int {
	if c.age > 5 {
		return 1000
	}
	return 500
}

type truck struct{ age int }

func (t truck) describe() string { return fmt.Sprintf("truck (age %d)", t.age) }
func (t truck) insurance() int {
	if t.age > 5 {
		return 2000
	}
	return 1000
}

type bus struct{ age int }

func (b bus) describe() string { return fmt.Sprintf("bus (age %d)", b.age) }
func (b bus) insurance() int {
	if b.age > 10 {
		return 1500
	}
	return 1000
}

type motorcycle struct{ age int }

func (m motorcycle) describe() string { return fmt.Sprintf("motorcycle (age %d)", m.age) }
func (m motorcycle) insurance() int {
	if m.age > 10 {
		return 2500
	}
	return 1500
}

type ocpDemo struct{}

func (ocpDemo) Metadata() Metadata {
	return Metadata{
		Name:        "ocp",
		Title:       "Open/Closed Principle",
		Category:    CategorySolid,
		Description: "New vehicle types add insurance rules without modifying the premium calculator.",
	}
}

func (ocpDemo) Run() []string {
	fleet := []insuredVehicle{
		car{age: 7},
		truck{age: 3},
		bus{age: 12},
		motorcycle{age: 2},
	}
	trace := make([]string, 0, len(fleet)+1)
	total := 0
	for _, v := range fleet {
		premium := v.insurance()
		total += premium
		trace = append(trace, fmt.Sprintf("%s premium: %d", v.describe(), premium))
	}
	trace = append(trace, fmt.Sprintf("fleet premium total: %d", total))
	return trace
}

// --- Liskov Substitution ---

type bird interface {
	name() string
	move() string
}

type sparrow struct{}

func (sparrow) name() string { return "sparrow" }
func (sparrow) move() string { return "flies away" }

type penguin struct{}

func (penguin) name() string { return "penguin" }
func (penguin) move() string { return "swims away" }

type lspDemo struct{}

func (lspDemo) Metadata() Metadata {
	return Metadata{
		Name:        "lsp",
		Title:       "Liskov Substitution Principle",
		Category:    CategorySolid,
		Description: "A penguin cannot honor a fly() contract; modeling movement instead keeps every bird substitutable.",
	}
}

func (lspDemo) Run() []string {
	birds := []bird{sparrow{}, penguin{}}
	trace := []string{"a fly() contract would force the penguin to fail at runtime"}
	for _, b := range birds {
		trace = append(trace, fmt.Sprintf("%s %s", b.name(), b.move()))
	}
	return trace
}

// --- Interface Segregation ---

type fuelVehicle interface {
	refuel() string
}

type electricVehicle interface {
	recharge() string
}

type dieselTruck struct{}

func (dieselTruck) refuel() string { return "truck refuels with diesel" }

type electricScooter struct{}

func (electricScooter) recharge() string { return "scooter recharges its battery" }

type ispDemo struct{}

func (ispDemo) Metadata() Metadata {
	return Metadata{
		Name:        "isp",
		Title:       "Interface Segregation Principle",
		Category:    CategorySolid,
		Description: "Refueling and recharging are separate capabilities; no vehicle implements a method it cannot use.",
	}
}

func (ispDemo) Run() []string {
	var f fuelVehicle = dieselTruck{}
	var e electricVehicle = electricScooter{}
	return []string{
		f.refuel(),
		e.recharge(),
		"neither vehicle carries an unused capability",
	}
}

// --- Dependency Inversion ---

type messageSender interface {
	send(to, msg string) string
}

type emailSender struct{}

func (emailSender) send(to, msg string) string {
	return fmt.Sprintf("email to %s: %s", to, msg)
}

type smsSender struct{}

func (smsSender) send(to, msg string) string {
	return fmt.Sprintf("sms to %s: %s", to, msg)
}

type alertService struct {
	sender messageSender
}

func (a alertService) alert(to, msg string) string {
	return a.sender.send(to, msg)
}

type dipDemo struct{}

func (dipDemo) Metadata() Metadata {
	return Metadata{
		Name:        "dip",
		Title:       "Dependency Inversion Principle",
		Category:    CategorySolid,
		Description: "The alert service depends on a sender abstraction, not on a concrete email or sms transport.",
	}
}

func (dipDemo) Run() []string {
	byEmail := alertService{sender: emailSender{}}
	bySMS := alertService{sender: smsSender{}}
	return []string{
		byEmail.alert("ops", "disk usage above 90%"),
		bySMS.alert("ops", "disk usage above 90%"),
		"swapping transports required no change to the alert service",
	}
}
