package paths

import (
	"path"
	"path/filepath"
	"strings"
)

// NormalizePath converts backslashes to forward slashes regardless of the
// host OS, so ids produced on Windows scanners match ids produced elsewhere.
func NormalizePath(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), "\\", "/")
}

// ToNodeID converts a scanner-reported path to a workspace-relative,
// forward-slash id.
// - Absolute paths under workspaceRoot are made relative to it
// - "./" prefixes and redundant separators are removed
// - An empty input yields an empty id
func ToNodeID(raw string, workspaceRoot string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}

	if workspaceRoot != "" && filepath.IsAbs(raw) {
		if rel, err := filepath.Rel(workspaceRoot, raw); err == nil {
			raw = rel
		}
	}

	id := path.Clean(NormalizePath(raw))
	id = strings.TrimPrefix(id, "./")
	if id == "." {
		return ""
	}
	return id
}

// JoinRepoPath joins a workspace root with a node id using OS separators.
func JoinRepoPath(repoRoot string, nodeID string) string {
	parts := strings.Split(NormalizePath(nodeID), "/")
	return filepath.Join(append([]string{repoRoot}, parts...)...)
}

// Base returns the last element of a forward-slash id.
func Base(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[i+1:]
	}
	return id
}

// Dir returns everything before the last "/" of an id, or "" for a bare name.
// Unlike path.Dir it never returns ".".
func Dir(id string) string {
	if i := strings.LastIndex(id, "/"); i >= 0 {
		return id[:i]
	}
	return ""
}

// StripExt removes the final extension from a file name ("a.test.ts" -> "a.test").
func StripExt(name string) string {
	ext := path.Ext(name)
	if ext == "" || ext == name {
		return name
	}
	return strings.TrimSuffix(name, ext)
}
