package mapview

import (
	"github.com/google/uuid"
	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/prowe/fishtrack/cmd/palette"
)

// Handle identifies one drawable marker on a Surface.
type Handle = uuid.UUID

// Surface is the rendering surface layers and particles are drawn on. It is
// write-only: callers never query map state back.
type Surface interface {
	AddMarker(p fish.Point, c palette.Color, radius float64) Handle
	RemoveMarker(h Handle)
	SetOpacity(h Handle, v float64)
}
