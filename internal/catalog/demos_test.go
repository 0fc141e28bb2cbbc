package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// These tests pin the narrative output of the demos: each trace is part of
// the catalog's contract, not an implementation detail.

func TestStateDemo_VendingMachine(t *testing.T) {
	trace := stateDemo{}.Run()

	assert.Equal(t, []string{
		"selection ignored: insert a coin first",
		"coin accepted",
		"state: idle -> has-coin",
		"state: has-coin -> dispensing",
		"Dispensing Coke",
		"slot A1: Coke count 5 -> 4",
		"state: dispensing -> idle",
	}, trace)
}

func TestStateDemo_EmptySlotReturnsCoin(t *testing.T) {
	m := newVendingMachine()
	m.insertCoin()
	m.selectProduct("C9")

	require.NotEmpty(t, m.trace)
	assert.Contains(t, m.trace, "slot C9 empty or unknown, coin returned")
	assert.Equal(t, stateIdle, m.state)
	assert.Equal(t, 5, m.slots["A1"].count)
}

func TestDecoratorDemo_CondimentsStackCost(t *testing.T) {
	trace := decoratorDemo{}.Run()

	assert.Equal(t, []string{
		"espresso costs 200",
		"espresso + milk costs 250",
		"espresso + milk + mocha costs 325",
	}, trace)
}

func TestObserverDemo_AllDisplaysNotified(t *testing.T) {
	trace := observerDemo{}.Run()

	assert.Equal(t, []string{
		"station: temperature reading 21.5C",
		"phone display: now 21.5C",
		"window display: now 21.5C",
		"station: temperature reading 19.0C",
		"phone display: now 19.0C",
		"window display: now 19.0C",
	}, trace)
}

func TestVisitorDemo_CartTotal(t *testing.T) {
	trace := visitorDemo{}.Run()

	require.Len(t, trace, 3)
	assert.Equal(t, `book "Design Patterns" adds 450`, trace[0])
	assert.Equal(t, "groceries 2kg add 60", trace[1])
	assert.Equal(t, "cart total: 510", trace[2])
}

func TestOCPDemo_InsuranceTiers(t *testing.T) {
	trace := ocpDemo{}.Run()

	assert.Equal(t, []string{
		"car (age 7) premium: 1000",
		"truck (age 3) premium: 1000",
		"bus (age 12) premium: 1500",
		"motorcycle (age 2) premium: 1500",
		"fleet premium total: 5000",
	}, trace)
}

func TestFlyweightDemo_TreeTypesShared(t *testing.T) {
	trace := flyweightDemo{}.Run()

	require.NotEmpty(t, trace)
	assert.Equal(t, "4 trees share 2 tree types", trace[len(trace)-1])
}

func TestSingletonDemo_SameInstance(t *testing.T) {
	trace := singletonDemo{}.Run()

	require.Len(t, trace, 3)
	assert.Equal(t, "same instance: true", trace[2])
}

func TestProxyDemo_LoadsOnce(t *testing.T) {
	trace := proxyDemo{}.Run()

	assert.Equal(t, []string{
		"proxy created, nothing loaded yet",
		"proxy: loading photo.png from disk",
		"displaying photo.png",
		"displaying photo.png (already loaded, no second read)",
	}, trace)
}

func TestCommandDemo_UndoReversesOrder(t *testing.T) {
	trace := commandDemo{}.Run()

	assert.Equal(t, []string{
		"kitchen light on",
		"hall light on",
		"hall light off (undo)",
		"kitchen light off (undo)",
	}, trace)
}

func TestChainDemo_Escalation(t *testing.T) {
	trace := chainDemo{}.Run()

	assert.Equal(t, []string{
		`helpdesk resolved "password reset" (severity 1)`,
		`helpdesk escalates "database outage" (severity 3)`,
		`engineer escalates "database outage" (severity 3)`,
		`on-call lead resolved "database outage" (severity 3)`,
	}, trace)
}

func TestCompositeDemo_DirectorySizes(t *testing.T) {
	trace := compositeDemo{}.Run()

	assert.Equal(t, []string{
		"project/ (200 bytes)",
		"  main.go (120 bytes)",
		"  docs/ (80 bytes)",
		"    readme.md (80 bytes)",
	}, trace)
}

func TestFactoryMethodDemo_UnknownKind(t *testing.T) {
	trace := factoryMethodDemo{}.Run()

	require.Len(t, trace, 3)
	assert.Equal(t, "factory(road): delivering by road in a lorry", trace[0])
	assert.Equal(t, "factory(sea): delivering by sea in a ship", trace[1])
	assert.Contains(t, trace[2], `unknown transport kind "air"`)
}

func TestPrototypeDemo_CloneIndependent(t *testing.T) {
	trace := prototypeDemo{}.Run()

	assert.Equal(t, []string{
		"prototype: oak height=10",
		"clone: oak height=12",
		"prototype unchanged: height=10",
	}, trace)
}

func TestTemplateMethodDemo_SkeletonFixed(t *testing.T) {
	trace := templateMethodDemo{}.Run()

	require.Len(t, trace, 8)
	assert.Equal(t, "tea: boil water", trace[0])
	assert.Equal(t, "tea: steep the tea bag", trace[1])
	assert.Equal(t, "coffee: boil water", trace[4])
	assert.Equal(t, "coffee: drip through filter", trace[5])
}
