package impact

import (
	"depscope/internal/traverse"
)

// SeedStatus says where the analyzed seed was found.
type SeedStatus string

const (
	SeedInGraph SeedStatus = "in-graph" // Present in the dependency graph
	SeedOnDisk  SeedStatus = "on-disk"  // Absent from the graph but a real file
	SeedMissing SeedStatus = "missing"  // Neither in the graph nor on disk
)

// RiskLevel is a coarse size class for the affected set.
type RiskLevel string

const (
	RiskHigh   RiskLevel = "high"
	RiskMedium RiskLevel = "medium"
	RiskLow    RiskLevel = "low"
)

// Result is the outcome of one impact analysis.
type Result struct {
	Input       string             `json:"input"`
	Seed        string             `json:"seed"`
	Resolved    bool               `json:"resolved"`
	ResolvedBy  string             `json:"resolvedBy,omitempty"` // Heuristic name
	Status      SeedStatus         `json:"status"`
	Affected    []string           `json:"affected"` // Seed first, then discovery order
	Stats       traverse.Stats     `json:"stats"`
	Directories []DirectorySummary `json:"directories"`
	BlastRadius *BlastRadius       `json:"blastRadius"`
	Limits      *AnalysisLimits    `json:"limits"`
}

// DirectorySummary counts affected files per directory.
type DirectorySummary struct {
	Directory string `json:"directory"`
	FileCount int    `json:"fileCount"`
}

// BlastRadius summarizes the affected set, seed excluded.
type BlastRadius struct {
	FileCount      int       `json:"fileCount"`
	DirectoryCount int       `json:"directoryCount"`
	MaxDepth       int       `json:"maxDepth"`
	RiskLevel      RiskLevel `json:"riskLevel"`
}
