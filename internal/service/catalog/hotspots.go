package catalog

import (
	"fmt"
	"strings"

	"lionscars-service/internal/domain/vehicle"
	xerrors "lionscars-service/internal/pkg/errors"

	"github.com/oklog/ulid/v2"
)

// NewHotspot builds a finalized hotspot from already-chosen coordinates.
// Label is required; detail may be empty. Coordinates are percentages and
// must fall inside the image.
func NewHotspot(x, y float64, label, detail string, imageIndex int) (vehicle.Hotspot, error) {
	if strings.TrimSpace(label) == "" {
		return vehicle.Hotspot{}, fmt.Errorf("hotspot label is required: %w", xerrors.ErrValidation)
	}
	if x < 0 || x > 100 || y < 0 || y > 100 {
		return vehicle.Hotspot{}, fmt.Errorf("hotspot coordinates out of range: %w", xerrors.ErrValidation)
	}
	if imageIndex < 0 {
		return vehicle.Hotspot{}, fmt.Errorf("hotspot image index must be >= 0: %w", xerrors.ErrValidation)
	}
	return vehicle.Hotspot{
		ID:         ulid.Make().String(),
		X:          x,
		Y:          y,
		Label:      label,
		Detail:     detail,
		ImageIndex: imageIndex,
	}, nil
}

// AddHotspot appends h to the vehicle. The image index must reference an
// existing image.
func AddHotspot(v *vehicle.Vehicle, h vehicle.Hotspot) error {
	if h.ImageIndex >= len(v.DisplayImages()) {
		return fmt.Errorf("hotspot references image %d of %d: %w",
			h.ImageIndex, len(v.DisplayImages()), xerrors.ErrValidation)
	}
	v.Hotspots = append(v.Hotspots, h)
	return nil
}

// DeleteHotspot removes the hotspot with the given id. A missing id is a
// no-op, not an error.
func DeleteHotspot(v *vehicle.Vehicle, id string) {
	kept := v.Hotspots[:0]
	for _, h := range v.Hotspots {
		if h.ID != id {
			kept = append(kept, h)
		}
	}
	v.Hotspots = kept
}

// RemoveImage drops the image at index and keeps the annotation set
// consistent: hotspots on the removed image are dropped, hotspots on later
// images are shifted down by one. The legacy primary-image field follows the
// new head of the list.
func RemoveImage(v *vehicle.Vehicle, index int) error {
	if index < 0 || index >= len(v.Images) {
		return fmt.Errorf("image index %d out of range: %w", index, xerrors.ErrValidation)
	}
	v.Images = append(v.Images[:index], v.Images[index+1:]...)

	kept := v.Hotspots[:0]
	for _, h := range v.Hotspots {
		switch {
		case h.ImageIndex == index:
			continue
		case h.ImageIndex > index:
			h.ImageIndex--
		}
		kept = append(kept, h)
	}
	v.Hotspots = kept

	syncPrimaryImage(v)
	return nil
}

func syncPrimaryImage(v *vehicle.Vehicle) {
	if len(v.Images) > 0 {
		v.PrimaryImage = v.Images[0]
	} else {
		v.PrimaryImage = ""
	}
}
