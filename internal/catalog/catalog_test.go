package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDemo struct {
	meta Metadata
}

func (f fakeDemo) Metadata() Metadata { return f.meta }
func (f fakeDemo) Run() []string      { return []string{"ran " + f.meta.Name} }

func validMeta(name string) Metadata {
	return Metadata{
		Name:        name,
		Title:       "Fake " + name,
		Category:    CategoryBehavioral,
		Description: "a fake demo for registry tests",
	}
}

func TestRegistry_Register(t *testing.T) {
	tests := []struct {
		name    string
		demo    Demo
		wantErr error
	}{
		{
			name: "valid demo",
			demo: fakeDemo{meta: validMeta("fake")},
		},
		{
			name:    "nil demo",
			demo:    nil,
			wantErr: ErrDemoNil,
		},
		{
			name:    "missing title",
			demo:    fakeDemo{meta: Metadata{Name: "fake", Category: CategoryBehavioral, Description: "d"}},
			wantErr: ErrInvalidMetadata,
		},
		{
			name:    "uppercase in name",
			demo:    fakeDemo{meta: Metadata{Name: "Fake", Title: "t", Category: CategoryBehavioral, Description: "d"}},
			wantErr: ErrInvalidMetadata,
		},
		{
			name:    "leading separator",
			demo:    fakeDemo{meta: Metadata{Name: "-fake", Title: "t", Category: CategoryBehavioral, Description: "d"}},
			wantErr: ErrInvalidMetadata,
		},
		{
			name:    "unknown category",
			demo:    fakeDemo{meta: Metadata{Name: "fake", Title: "t", Category: "mystery", Description: "d"}},
			wantErr: ErrInvalidMetadata,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry()
			err := r.Register(tt.demo)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, 0, r.Len())
			} else {
				assert.NoError(t, err)
				assert.Equal(t, 1, r.Len())
			}
		})
	}

	t.Run("duplicate name", func(t *testing.T) {
		r := NewRegistry()
		require.NoError(t, r.Register(fakeDemo{meta: validMeta("fake")}))
		err := r.Register(fakeDemo{meta: validMeta("fake")})
		assert.ErrorIs(t, err, ErrDemoExists)
	})
}

func TestRegistry_Resolve(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(fakeDemo{meta: validMeta("fake")}))

	d, ok := r.Resolve("fake")
	assert.True(t, ok)
	assert.Equal(t, "fake", d.Metadata().Name)

	_, ok = r.Resolve("missing")
	assert.False(t, ok)
}

func TestRegistry_List(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(fakeDemo{meta: Metadata{Name: "zeta", Title: "z", Category: CategoryBehavioral, Description: "d"}}))
	require.NoError(t, r.Register(fakeDemo{meta: Metadata{Name: "alpha", Title: "a", Category: CategorySolid, Description: "d"}}))
	require.NoError(t, r.Register(fakeDemo{meta: Metadata{Name: "mid", Title: "m", Category: CategoryBehavioral, Description: "d"}}))

	t.Run("all demos sorted by name", func(t *testing.T) {
		list := r.List("")
		require.Len(t, list, 3)
		assert.Equal(t, "alpha", list[0].Name)
		assert.Equal(t, "mid", list[1].Name)
		assert.Equal(t, "zeta", list[2].Name)
	})

	t.Run("category filter", func(t *testing.T) {
		list := r.List(CategoryBehavioral)
		require.Len(t, list, 2)
		assert.Equal(t, "mid", list[0].Name)
		assert.Equal(t, "zeta", list[1].Name)
	})

	t.Run("empty category match", func(t *testing.T) {
		assert.Empty(t, r.List(CategoryCreational))
	})
}

func TestDefault(t *testing.T) {
	r := Default()

	assert.Equal(t, 23, r.Len())

	// Every category is represented.
	for _, cat := range []Category{CategorySolid, CategoryCreational, CategoryStructural, CategoryBehavioral} {
		assert.NotEmpty(t, r.List(cat), "category %s has no demos", cat)
	}

	// Every registered demo produces a non-empty deterministic trace.
	for _, meta := range r.List("") {
		d, ok := r.Resolve(meta.Name)
		require.True(t, ok)

		first := d.Run()
		second := d.Run()
		assert.NotEmpty(t, first, "demo %s produced no trace", meta.Name)
		assert.Equal(t, first, second, "demo %s is not deterministic", meta.Name)
	}
}

func TestCategory_Valid(t *testing.T) {
	assert.True(t, CategorySolid.Valid())
	assert.True(t, CategoryBehavioral.Valid())
	assert.False(t, Category("").Valid())
	assert.False(t, Category("misc").Valid())
}
