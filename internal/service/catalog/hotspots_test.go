package catalog

import (
	"testing"

	"lionscars-service/internal/domain/vehicle"
	xerrors "lionscars-service/internal/pkg/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHotspot(t *testing.T) {
	h, err := NewHotspot(12.5, 80, "Rayón leve", "Puerta del conductor", 1)
	require.NoError(t, err)

	assert.NotEmpty(t, h.ID)
	assert.Equal(t, 12.5, h.X)
	assert.Equal(t, 80.0, h.Y)
	assert.Equal(t, "Rayón leve", h.Label)
	assert.Equal(t, "Puerta del conductor", h.Detail)
	assert.Equal(t, 1, h.ImageIndex)

	h2, err := NewHotspot(1, 1, "Otro", "", 0)
	require.NoError(t, err)
	assert.NotEqual(t, h.ID, h2.ID)
}

func TestNewHotspot_Validation(t *testing.T) {
	_, err := NewHotspot(10, 10, "   ", "detail", 0)
	assert.ErrorIs(t, err, xerrors.ErrValidation)

	_, err = NewHotspot(-1, 10, "label", "", 0)
	assert.ErrorIs(t, err, xerrors.ErrValidation)

	_, err = NewHotspot(10, 101, "label", "", 0)
	assert.ErrorIs(t, err, xerrors.ErrValidation)

	_, err = NewHotspot(10, 10, "label", "", -1)
	assert.ErrorIs(t, err, xerrors.ErrValidation)

	// Detail stays optional.
	_, err = NewHotspot(0, 100, "label", "", 0)
	assert.NoError(t, err)
}

func TestAddHotspot_IndexMustReferenceImage(t *testing.T) {
	v := &vehicle.Vehicle{Images: []string{"a.jpg", "b.jpg"}}

	h, err := NewHotspot(50, 50, "Detalle", "", 1)
	require.NoError(t, err)
	require.NoError(t, AddHotspot(v, h))
	assert.Len(t, v.Hotspots, 1)

	h.ImageIndex = 2
	err = AddHotspot(v, h)
	assert.ErrorIs(t, err, xerrors.ErrValidation)
	assert.Len(t, v.Hotspots, 1)
}

func TestAddHotspot_LegacyPrimaryImageCounts(t *testing.T) {
	// No gallery, only the legacy single-image field.
	v := &vehicle.Vehicle{PrimaryImage: "cover.jpg"}

	h, err := NewHotspot(50, 50, "Detalle", "", 0)
	require.NoError(t, err)
	assert.NoError(t, AddHotspot(v, h))
}

func TestDeleteHotspot(t *testing.T) {
	v := &vehicle.Vehicle{Hotspots: []vehicle.Hotspot{
		{ID: "a", Label: "uno"},
		{ID: "b", Label: "dos"},
	}}

	DeleteHotspot(v, "a")
	require.Len(t, v.Hotspots, 1)
	assert.Equal(t, "b", v.Hotspots[0].ID)

	// Unknown id is a no-op.
	DeleteHotspot(v, "zzz")
	assert.Len(t, v.Hotspots, 1)
}

func TestRemoveImage_ReindexesHotspots(t *testing.T) {
	v := &vehicle.Vehicle{
		Images: []string{"0.jpg", "1.jpg", "2.jpg"},
		Hotspots: []vehicle.Hotspot{
			{ID: "h0", Label: "frente", ImageIndex: 0},
			{ID: "h1", Label: "lateral", ImageIndex: 1},
			{ID: "h2", Label: "atrás", ImageIndex: 2},
		},
	}

	require.NoError(t, RemoveImage(v, 1))

	assert.Equal(t, []string{"0.jpg", "2.jpg"}, v.Images)

	// Hotspot on the removed image is gone; the later one shifted down.
	require.Len(t, v.Hotspots, 2)
	assert.Equal(t, "h0", v.Hotspots[0].ID)
	assert.Equal(t, 0, v.Hotspots[0].ImageIndex)
	assert.Equal(t, "h2", v.Hotspots[1].ID)
	assert.Equal(t, 1, v.Hotspots[1].ImageIndex)

	// Every surviving index still points at a real image.
	for _, h := range v.Hotspots {
		assert.Less(t, h.ImageIndex, len(v.Images))
	}
}

func TestRemoveImage_SyncsPrimaryImage(t *testing.T) {
	v := &vehicle.Vehicle{
		Images:       []string{"0.jpg", "1.jpg"},
		PrimaryImage: "0.jpg",
	}

	require.NoError(t, RemoveImage(v, 0))
	assert.Equal(t, "1.jpg", v.PrimaryImage)

	require.NoError(t, RemoveImage(v, 0))
	assert.Empty(t, v.Images)
	assert.Empty(t, v.PrimaryImage)
}

func TestRemoveImage_OutOfRange(t *testing.T) {
	v := &vehicle.Vehicle{Images: []string{"0.jpg"}}

	assert.ErrorIs(t, RemoveImage(v, -1), xerrors.ErrValidation)
	assert.ErrorIs(t, RemoveImage(v, 1), xerrors.ErrValidation)
	assert.Equal(t, []string{"0.jpg"}, v.Images)
}
