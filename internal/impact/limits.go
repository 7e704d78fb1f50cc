package impact

// AnalysisLimits describes what an impact result does and does not cover.
type AnalysisLimits struct {
	Direction string   `json:"direction"` // Adjacency the analysis walked
	Notes     []string `json:"notes"`
}

// NewAnalysisLimits creates limits for a forward-walking analysis.
func NewAnalysisLimits() *AnalysisLimits {
	return &AnalysisLimits{
		Direction: "forward",
		Notes:     make([]string, 0),
	}
}

// AddNote adds a limitation note to the analysis
func (al *AnalysisLimits) AddNote(note string) {
	al.Notes = append(al.Notes, note)
}

// HasLimitations returns true if there are any limitations
func (al *AnalysisLimits) HasLimitations() bool {
	return len(al.Notes) > 0
}

const (
	noteDirection     = "Impact follows forward adjacency: the seed's transitive dependencies, not the files that import it"
	noteNoForwardDeps = "Seed has no forward dependencies"
	noteOnDisk        = "Seed exists on disk but is absent from the dependency graph"
	noteMissing       = "Seed is neither in the dependency graph nor on disk"
	noteUnresolved    = "Input did not match any graph node; analyzed as a raw path"
	noteTopicMissing  = "Topic did not match any graph node"
)
