package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"Stairs/internal/catalog"
	"Stairs/internal/record"
)

func TestCheckName(t *testing.T) {
	tests := []struct {
		name    string
		typ     catalog.PartType
		part    string
		wantErr error
	}{
		{"round head member", catalog.RoundingHead, "DJ-25-170", nil},
		{"anchor member", catalog.Anchor, "MS-20-80", nil},
		{"anchor name under round head", catalog.RoundingHead, "MS-20-80", record.ErrCatalog},
		{"round head name under anchor", catalog.Anchor, "DJ-25-170", record.ErrCatalog},
		{"unknown name", catalog.Anchor, "BAD-NAME", record.ErrCatalog},
		{"unknown type", catalog.PartType(7), "DJ-25-170", record.ErrUnreachable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := catalog.CheckName("lifting_name", tt.typ, tt.part)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, "lifting_name", record.FieldOf(err))
		})
	}
}

func TestSelect(t *testing.T) {
	p, err := catalog.Select(catalog.RoundingHead, 21)
	require.NoError(t, err)
	assert.Equal(t, "DJ-25-170", p.PartName())

	p, err = catalog.Select(catalog.Anchor, 0.5)
	require.NoError(t, err)
	assert.Equal(t, "MS-12-60", p.PartName())

	_, err = catalog.Select(catalog.Anchor, 100)
	assert.ErrorIs(t, err, catalog.ErrNoPart)
}

func TestNamesAreOrderedByCapacity(t *testing.T) {
	names := catalog.Names(catalog.RoundingHead)
	require.NotEmpty(t, names)
	prev := 0.0
	for _, n := range names {
		p, ok := catalog.Lookup(catalog.RoundingHead, n)
		require.True(t, ok)
		assert.GreaterOrEqual(t, p.LoadCapacity(), prev)
		prev = p.LoadCapacity()
	}
}

func TestPartVariants(t *testing.T) {
	raw := map[string]any{
		"name": "MS-16-70", "capacity": 12, "thread_diameter": 16,
		"length": 70, "outer_diameter": 21, "edge_distance": 120,
	}
	p, err := record.Resolve("lifting_parameter", catalog.Anchor, raw, catalog.PartVariants)
	require.NoError(t, err)
	assert.IsType(t, catalog.AnchorParameter{}, p)

	_, err = record.Resolve("lifting_parameter", catalog.RoundingHead, raw, catalog.PartVariants)
	assert.ErrorIs(t, err, record.ErrTypeMismatch)
}

func TestValidDiameter(t *testing.T) {
	assert.True(t, catalog.ValidDiameter(12))
	assert.False(t, catalog.ValidDiameter(11))
	assert.Len(t, catalog.RebarDiameters(), 12)
}
