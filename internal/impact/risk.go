package impact

import (
	"sort"

	"depscope/internal/paths"
)

// Blast radius thresholds.
const (
	highFileCount   = 20
	highDirCount    = 5
	mediumFileCount = 5
	mediumDirCount  = 2
)

// ClassifyBlastRadius maps affected file and directory counts to a risk level.
func ClassifyBlastRadius(fileCount, dirCount int) RiskLevel {
	switch {
	case fileCount >= highFileCount || dirCount >= highDirCount:
		return RiskHigh
	case fileCount >= mediumFileCount || dirCount >= mediumDirCount:
		return RiskMedium
	default:
		return RiskLow
	}
}

// summarizeDirectories groups the affected ids, seed excluded, by directory.
// Files at the workspace root are reported under ".".
func summarizeDirectories(affected []string) []DirectorySummary {
	counts := make(map[string]int)
	for i, id := range affected {
		if i == 0 {
			continue
		}
		dir := paths.Dir(id)
		if dir == "" {
			dir = "."
		}
		counts[dir]++
	}

	summaries := make([]DirectorySummary, 0, len(counts))
	for dir, n := range counts {
		summaries = append(summaries, DirectorySummary{Directory: dir, FileCount: n})
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].FileCount != summaries[j].FileCount {
			return summaries[i].FileCount > summaries[j].FileCount
		}
		return summaries[i].Directory < summaries[j].Directory
	})
	return summaries
}

func computeBlastRadius(affected []string, dirs []DirectorySummary, maxDepth int) *BlastRadius {
	files := len(affected) - 1
	if files < 0 {
		files = 0
	}
	return &BlastRadius{
		FileCount:      files,
		DirectoryCount: len(dirs),
		MaxDepth:       maxDepth,
		RiskLevel:      ClassifyBlastRadius(files, len(dirs)),
	}
}
