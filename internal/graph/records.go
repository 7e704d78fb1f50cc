package graph

import (
	"bytes"
	"encoding/json"

	"depscope/internal/errors"
)

// DependencyRecord is one resolved dependency of a scanned module.
type DependencyRecord struct {
	Resolved        string   `json:"resolved"`
	DependencyTypes []string `json:"dependencyTypes,omitempty"`
	Types           []string `json:"types,omitempty"`
}

// TypeList returns the dependency types, whichever field the scanner filled.
func (d DependencyRecord) TypeList() []string {
	if len(d.DependencyTypes) > 0 {
		return d.DependencyTypes
	}
	return d.Types
}

// ModuleRecord is one module as reported by the external dependency scanner.
type ModuleRecord struct {
	Source       string             `json:"source"`
	Dependencies []DependencyRecord `json:"dependencies"`
}

// DecodeReport counts what DecodeModules had to drop.
type DecodeReport struct {
	Modules             int `json:"modules"`
	SkippedModules      int `json:"skippedModules"`
	SkippedDependencies int `json:"skippedDependencies"`
}

// Problem returns a MALFORMED_INPUT error describing the skipped records, or
// nil when nothing was skipped. It is informational: the decoded records
// are still usable.
func (r DecodeReport) Problem() error {
	if r.SkippedModules == 0 && r.SkippedDependencies == 0 {
		return nil
	}
	return errors.Newf(errors.MalformedInput, "skipped %d malformed module records and %d unresolved dependencies",
		r.SkippedModules, r.SkippedDependencies)
}

type moduleEnvelope struct {
	Source       string            `json:"source"`
	Dependencies []json.RawMessage `json:"dependencies"`
}

// DecodeModules decodes raw scanner output. The payload must be either a JSON
// array of module records or an object holding one under "modules"; anything
// else is an INVALID_SCANNER_OUTPUT error. Inside the collection every record
// is decoded on its own, and records that do not decode are skipped and
// counted rather than failing the whole payload.
func DecodeModules(data []byte) ([]ModuleRecord, DecodeReport, error) {
	var report DecodeReport

	elems, err := splitCollection(data)
	if err != nil {
		return nil, report, err
	}

	mods := make([]ModuleRecord, 0, len(elems))
	for _, raw := range elems {
		var env moduleEnvelope
		if err := json.Unmarshal(raw, &env); err != nil || env.Source == "" {
			report.SkippedModules++
			continue
		}

		mod := ModuleRecord{
			Source:       env.Source,
			Dependencies: make([]DependencyRecord, 0, len(env.Dependencies)),
		}
		for _, rawDep := range env.Dependencies {
			var dep DependencyRecord
			if err := json.Unmarshal(rawDep, &dep); err != nil || dep.Resolved == "" {
				report.SkippedDependencies++
				continue
			}
			mod.Dependencies = append(mod.Dependencies, dep)
		}
		mods = append(mods, mod)
	}

	report.Modules = len(mods)
	return mods, report, nil
}

func splitCollection(data []byte) ([]json.RawMessage, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, errors.New(errors.InvalidScannerOutput, "scanner output is empty", nil)
	}

	switch trimmed[0] {
	case '[':
		var elems []json.RawMessage
		if err := json.Unmarshal(trimmed, &elems); err != nil {
			return nil, errors.New(errors.InvalidScannerOutput, "scanner output is not a valid module list", err)
		}
		return elems, nil
	case '{':
		var report map[string]json.RawMessage
		if err := json.Unmarshal(trimmed, &report); err != nil {
			return nil, errors.New(errors.InvalidScannerOutput, "scanner output is not a valid JSON object", err)
		}
		rawModules, ok := report["modules"]
		if !ok {
			return nil, errors.Newf(errors.InvalidScannerOutput, "scanner report has no \"modules\" field")
		}
		var elems []json.RawMessage
		if err := json.Unmarshal(rawModules, &elems); err != nil {
			return nil, errors.New(errors.InvalidScannerOutput, "scanner report \"modules\" is not a list", err)
		}
		return elems, nil
	default:
		return nil, errors.Newf(errors.InvalidScannerOutput, "scanner output must be a JSON list of modules")
	}
}
