package matching

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-matcher/internal/schemas"
)

// HierarchyEdge is a directed implication: possessing any child skill implies
// possessing the parent skill, never the reverse.
type HierarchyEdge struct {
	Parent   string   `json:"parent"`
	Children []string `json:"children"`
}

// Registry holds synonym groups and hierarchy edges loaded from configuration.
// It is immutable after construction and safe for concurrent use without
// synchronization.
type Registry struct {
	synonyms    map[string][]string // canonical -> normalized synonyms
	toCanonical map[string]string   // normalized synonym -> canonical
	hierarchies []HierarchyEdge     // parent and children normalized at load
}

// synonymsDocument mirrors the configuration file layout: category names map
// canonical skill names to synonym lists, with one reserved "hierarchies" key.
type synonymsDocument map[string]json.RawMessage

// EmptyRegistry returns a registry with no synonym or hierarchy data.
// Matching against it degrades to exact and fuzzy rules only.
func EmptyRegistry() *Registry {
	return &Registry{
		synonyms:    make(map[string][]string),
		toCanonical: make(map[string]string),
	}
}

// LoadRegistry builds a registry from a JSON synonyms document.
//
// Construction never fails: a missing, unreadable, or malformed source yields
// an empty registry together with a non-nil warning the caller should log.
// The returned registry is always usable.
func LoadRegistry(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return EmptyRegistry(), fmt.Errorf("skill synonyms file not available: %w", err)
	}

	// Schema validation is a safety check; if the schema document is not
	// found alongside the binary we fall through to plain JSON parsing.
	if schemaPath := schemas.ResolveSchemaPath("schemas/skill_synonyms.schema.json"); schemaPath != "" {
		if err := schemas.ValidateBytes(schemaPath, data); err != nil {
			return EmptyRegistry(), fmt.Errorf("skill synonyms file failed schema validation: %w", err)
		}
	}

	var doc synonymsDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return EmptyRegistry(), fmt.Errorf("failed to parse skill synonyms JSON: %w", err)
	}

	return buildRegistry(doc)
}

func buildRegistry(doc synonymsDocument) (*Registry, error) {
	reg := EmptyRegistry()

	for category, raw := range doc {
		if category == "hierarchies" {
			var edges []HierarchyEdge
			if err := json.Unmarshal(raw, &edges); err != nil {
				return EmptyRegistry(), fmt.Errorf("failed to parse hierarchies: %w", err)
			}
			for _, edge := range edges {
				normalized := HierarchyEdge{
					Parent:   Normalize(edge.Parent),
					Children: make([]string, 0, len(edge.Children)),
				}
				for _, child := range edge.Children {
					normalized.Children = append(normalized.Children, Normalize(child))
				}
				reg.hierarchies = append(reg.hierarchies, normalized)
			}
			continue
		}

		var group map[string][]string
		if err := json.Unmarshal(raw, &group); err != nil {
			// Non-group top-level entries (metadata, comments) are skipped.
			continue
		}

		for canonicalName, syns := range group {
			canonical := Normalize(canonicalName)
			if canonical == "" {
				continue
			}
			normalizedSyns := make([]string, 0, len(syns))
			for _, syn := range syns {
				normalized := Normalize(syn)
				if normalized == "" {
					continue
				}
				normalizedSyns = append(normalizedSyns, normalized)
				reg.toCanonical[normalized] = canonical
			}
			// The canonical name is a member of its own group.
			reg.toCanonical[canonical] = canonical
			reg.synonyms[canonical] = normalizedSyns
		}
	}

	return reg, nil
}

// CanonicalOf returns the canonical skill name a normalized string maps to,
// and whether any mapping exists.
func (r *Registry) CanonicalOf(normalized string) (string, bool) {
	canonical, ok := r.toCanonical[normalized]
	return canonical, ok
}

// SynonymsOf returns the normalized synonym set for a canonical skill name.
// Unknown canonical names yield nil.
func (r *Registry) SynonymsOf(canonical string) []string {
	return r.synonyms[canonical]
}

// IsChildOf reports whether childCanonical is listed as a child of
// parentCanonical in any hierarchy edge. The relation is one-directional.
func (r *Registry) IsChildOf(childCanonical, parentCanonical string) bool {
	for _, edge := range r.hierarchies {
		if edge.Parent != parentCanonical {
			continue
		}
		for _, child := range edge.Children {
			if child == childCanonical {
				return true
			}
		}
	}
	return false
}

// GroupCount returns the number of loaded synonym groups.
func (r *Registry) GroupCount() int {
	return len(r.synonyms)
}

// HierarchyCount returns the number of loaded hierarchy edges.
func (r *Registry) HierarchyCount() int {
	return len(r.hierarchies)
}
