package builder

// Canonical constructor names, used as error prefixes.
const (
	MethodCycle             = "Cycle"
	MethodPath              = "Path"
	MethodStar              = "Star"
	MethodWheel             = "Wheel"
	MethodComplete          = "Complete"
	MethodCompleteBipartite = "CompleteBipartite"
	MethodRandomSparse      = "RandomSparse"
	MethodRandomRegular     = "RandomRegular"
	MethodGrid              = "Grid"
	MethodIsolated          = "Isolated"
)

// CenterVertexID is the hub of Star and Wheel.
const CenterVertexID = "Center"

// Minimum sizes per topology.
const (
	MinCycleNodes    = 3
	MinPathNodes     = 2
	MinStarNodes     = 2
	MinWheelNodes    = 4
	MinCompleteNodes = 1
	MinGridDim       = 1
	MinPartition     = 1
)

// Probability bounds for RandomSparse, inclusive.
const (
	MinProbability = 0.0
	MaxProbability = 1.0
)
