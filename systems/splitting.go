package systems

import (
	"fmt"
	"slices"

	"github.com/Vovchek-aks/SnakesEvolv/components"
	"github.com/Vovchek-aks/SnakesEvolv/grid"
)

// Split divides the body at its midpoint. The parent keeps the leading
// half; the trailing half, reversed so the old tail becomes the new head,
// is returned as the child's segments. The child gets ceil(n/2) segments.
// Cells stay where they are, so the index needs no update.
func Split(body *components.Body) []grid.Position {
	n := body.Len()
	if n < 2 {
		panic(fmt.Sprintf("systems: split of %d-segment snake", n))
	}

	mid := n / 2
	child := slices.Clone(body.Segments[mid:])
	slices.Reverse(child)

	body.Segments = body.Segments[:mid]
	return child
}
