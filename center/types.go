// Package center implements the center course generator: row-angle
// optimization, center-into-blocks decomposition, the four row-order
// traversal patterns, and the genetic block sequencer and linker that
// together turn a field boundary plus islands into an ordered
// polyline of up/down-row waypoints.
package center

import "github.com/arl/fieldcenter/geom"

// Mode selects a row-ordering traversal pattern. The numeric values
// are part of the wire format produced by CenterSettings consumers
// (the CLI's YAML config) and must not be renumbered.
type Mode int

const (
	UpDown   Mode = 1
	Spiral   Mode = 2
	Circular Mode = 3
	Lands    Mode = 4
)

func (m Mode) String() string {
	switch m {
	case UpDown:
		return "UP_DOWN"
	case Spiral:
		return "SPIRAL"
	case Circular:
		return "CIRCULAR"
	case Lands:
		return "LANDS"
	default:
		return "UNKNOWN"
	}
}

// Corner names one of a block's four bounding-quadrilateral corners.
// These values are kept stable: the GA draws random corners as
// Corner(0..3), so the four corners must stay numbered 0 through 3.
type Corner int

const (
	BL Corner = iota
	BR
	TL
	TR
)

func (c Corner) String() string {
	switch c {
	case BL:
		return "BL"
	case BR:
		return "BR"
	case TL:
		return "TL"
	case TR:
		return "TR"
	default:
		return "?"
	}
}

const (
	// WWp is the default distance between sampled waypoints along a row.
	WWp float32 = 5
	// WMin is the minimum shortfall tolerated before appending a final
	// waypoint exactly at a row's trimmed end.
	WMin float32 = 1.25
	// smallBlockTrackCountLimit is the row-count threshold under which
	// a block counts against the angle searcher's smallBlockScore.
	smallBlockTrackCountLimit = 5
)

// CenterSettings configures row angle selection and row ordering.
// RowAngle is in radians.
type CenterSettings struct {
	Mode                     Mode    `yaml:"mode"`
	RowAngle                 float32 `yaml:"rowAngle"`
	UseBestAngle             bool    `yaml:"useBestAngle"`
	UseLongestEdgeAngle      bool    `yaml:"useLongestEdgeAngle"`
	NRowsToSkip              int     `yaml:"nRowsToSkip"`
	LeaveSkippedRowsUnworked bool    `yaml:"leaveSkippedRowsUnworked"`
	NRowsPerLand             int     `yaml:"nRowsPerLand"`
	PipeOnLeftSide           bool    `yaml:"pipeOnLeftSide"`
}

// DefaultCenterSettings returns settings equivalent to UP_DOWN with no
// skipped rows, searching for the best angle.
func DefaultCenterSettings() CenterSettings {
	return CenterSettings{
		Mode:         UpDown,
		UseBestAngle: true,
		NRowsPerLand: 4,
	}
}

// HeadlandSettings configures the headland pass count that in turn
// determines how far the row generator stays off the boundary.
type HeadlandSettings struct {
	Mode    int `yaml:"mode"`
	NPasses int `yaml:"nPasses"`
}

// DistanceFromBoundary returns the row generator's `d`: a full
// implement width when headland passes exist, otherwise half a width.
func (h HeadlandSettings) DistanceFromBoundary(width float32) float32 {
	if h.NPasses > 0 {
		return width
	}
	return width / 2
}

// GASettings are the genetic block sequencer's tunables, broken out
// so the CLI's YAML config can override them without touching code.
type GASettings struct {
	PopulationMultiplier int     `yaml:"populationMultiplier"`
	GenerationMultiplier int     `yaml:"generationMultiplier"`
	MutationRate         float32 `yaml:"mutationRate"`
	TournamentSize       int     `yaml:"tournamentSize"`
}

// DefaultGASettings returns population 40*nBlocks, 10*nBlocks
// generations, 3% mutation, tournament size 5.
func DefaultGASettings() GASettings {
	return GASettings{
		PopulationMultiplier: 40,
		GenerationMultiplier: 10,
		MutationRate:         0.03,
		TournamentSize:       5,
	}
}

// Island is an obstacle within the field, described by its outermost
// headland polygon (the one row segments are tested against) among a
// list of concentric headland passes.
type Island struct {
	ID                  int
	OutermostHeadlandIx int
	HeadlandTracks      []*geom.Polygon
}

// OutermostHeadland returns the island's outer headland polygon, the
// one the row generator intersects rows against.
func (isl *Island) OutermostHeadland() *geom.Polygon {
	return isl.HeadlandTracks[isl.OutermostHeadlandIx]
}

// Headlands is the ordered list of field headland passes, outermost
// first, plus where on the innermost pass the headland track hands
// off to center work.
type Headlands struct {
	Passes      []*geom.Polygon
	CircleStart int
	CircleStep  int // +1 or -1
}

// Innermost returns the innermost headland polygon, the one the row
// generator's bounding box and the GA's transition distances are
// computed against.
func (h Headlands) Innermost() *geom.Polygon {
	if len(h.Passes) == 0 {
		return nil
	}
	return h.Passes[len(h.Passes)-1]
}
