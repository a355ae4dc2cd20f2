package center

import (
	"fmt"

	"github.com/arl/fieldcenter/geom"
	"github.com/arl/gobj"
)

// LoadHeadlandsOBJ reads headland pass polygons from an OBJ file: each
// face is one closed polygon, Z is discarded. The first nFieldPasses
// faces are the field's own headland passes, outermost first; every
// remaining face is an island's sole (outermost) headland track, one
// island per face, numbered from 1 in face order.
//
// circleStart/circleStep aren't recoverable from geometry alone and
// are passed through from the caller's settings.
func LoadHeadlandsOBJ(path string, nFieldPasses, circleStart, circleStep int) (Headlands, []*Island, error) {
	obj, err := gobj.Load(path)
	if err != nil {
		return Headlands{}, nil, fmt.Errorf("fieldcenter: loading %s: %w", path, err)
	}
	polys := obj.Polys()
	if nFieldPasses <= 0 || nFieldPasses > len(polys) {
		return Headlands{}, nil, fmt.Errorf("fieldcenter: %s has %d faces, nFieldPasses=%d", path, len(polys), nFieldPasses)
	}

	field := make([]*geom.Polygon, nFieldPasses)
	for i := 0; i < nFieldPasses; i++ {
		field[i] = polygonFromFace(polys[i])
	}
	headlands := Headlands{Passes: field, CircleStart: circleStart, CircleStep: circleStep}

	var islands []*Island
	for i, face := range polys[nFieldPasses:] {
		track := polygonFromFace(face)
		islands = append(islands, &Island{
			ID:                  i + 1,
			OutermostHeadlandIx: 0,
			HeadlandTracks:      []*geom.Polygon{track},
		})
	}
	return headlands, islands, nil
}

func polygonFromFace(face gobj.Polygon) *geom.Polygon {
	pts := make([]geom.Point, len(face))
	for i, v := range face {
		pts[i] = geom.NewPoint(float32(v.X()), float32(v.Y()))
	}
	return geom.NewPolygon(pts)
}
