package matrix

import (
	"reflect"
	"sort"
	"testing"
)

func TestDecodeMatrix_MappingAndSequenceEquivalent(t *testing.T) {
	fromMap, skipped := DecodeMatrix(map[string]any{"Engineer": []any{"coaching"}})
	if skipped != 0 {
		t.Fatalf("mapping shape: unexpected skips: %d", skipped)
	}
	fromSeq, skipped := DecodeMatrix([]any{
		map[string]any{"job_title": "Engineer", "competencies": []any{"coaching"}},
	})
	if skipped != 0 {
		t.Fatalf("sequence shape: unexpected skips: %d", skipped)
	}
	if !reflect.DeepEqual(fromMap, fromSeq) {
		t.Fatalf("shapes decode differently:\n%#v\n%#v", fromMap, fromSeq)
	}
}

func TestDecodeMatrix_Mapping(t *testing.T) {
	entries, skipped := DecodeMatrix(map[string]any{
		"  Senior   Engineer ": []any{"coaching", map[string]any{"key": "comms"}},
		"Broken":               "not-a-list",
	})
	if skipped != 0 {
		t.Fatalf("unexpected skips: %d", skipped)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].JobTitle < entries[j].JobTitle })
	if entries[0].JobTitle != "Broken" || len(entries[0].Competencies) != 0 {
		t.Fatalf("non-list competencies should decode empty: %#v", entries[0])
	}
	if entries[1].JobTitle != "Senior Engineer" || len(entries[1].Competencies) != 2 {
		t.Fatalf("unexpected entry: %#v", entries[1])
	}
}

func TestDecodeMatrix_Sequence(t *testing.T) {
	entries, skipped := DecodeMatrix([]any{
		map[string]any{"title": "Engineer", "skills": []any{"coaching"}},
		map[string]any{"job_title": "   "},
		"bare string",
	})
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	if entries[0].JobTitle != "Engineer" {
		t.Fatalf("title fallback failed: %#v", entries[0])
	}
	if len(entries[0].Competencies) != 1 || entries[0].Competencies[0] != "coaching" {
		t.Fatalf("skills fallback failed: %#v", entries[0])
	}
	if skipped != 2 {
		t.Fatalf("expected 2 skips (empty title, non-object), got %d", skipped)
	}
}

func TestDecodeMatrix_UnrecognizedShape(t *testing.T) {
	entries, skipped := DecodeMatrix("just a string")
	if entries != nil || skipped != 1 {
		t.Fatalf("unrecognized shape: got %#v, %d", entries, skipped)
	}
	entries, skipped = DecodeMatrix(nil)
	if entries != nil || skipped != 0 {
		t.Fatalf("nil payload: got %#v, %d", entries, skipped)
	}
}

func TestDecodeStandards_Nested(t *testing.T) {
	records, skipped := DecodeStandards(map[string]any{
		"Dev": map[string]any{
			"Senior": map[string]any{"coaching": "advanced"},
			"Junior": map[string]any{"coaching": "basic"},
		},
	})
	if skipped != 0 {
		t.Fatalf("unexpected skips: %d", skipped)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}
	sort.Slice(records, func(i, j int) bool { return records[i].Level < records[j].Level })
	if records[1].JobTitle != "Dev" || records[1].Level != "Senior" {
		t.Fatalf("unexpected record: %#v", records[1])
	}
	if records[1].Standards["coaching"] != "advanced" {
		t.Fatalf("standards mapping lost: %#v", records[1])
	}
}

func TestDecodeStandards_Sequence(t *testing.T) {
	records, skipped := DecodeStandards([]any{
		map[string]any{"title": "Dev", "level": float64(3), "mapping": map[string]any{"coaching": "basic"}},
		"nope",
	})
	if len(records) != 1 || skipped != 1 {
		t.Fatalf("got %d records, %d skips", len(records), skipped)
	}
	r := records[0]
	if r.JobTitle != "Dev" || r.Level != "3" {
		t.Fatalf("level coercion failed: %#v", r)
	}
	if r.Standards["coaching"] != "basic" {
		t.Fatalf("mapping fallback failed: %#v", r)
	}
}

func TestDecodeDefinitions_Mapping(t *testing.T) {
	defs, skipped := DecodeDefinitions(map[string]any{
		"coaching": map[string]any{
			"label":       "Coaching",
			"description": "Helps others",
			"values":      map[string]any{"advanced": "Runs mentoring programs"},
		},
		"comms": "not an object",
	})
	if skipped != 0 {
		t.Fatalf("unexpected skips: %d", skipped)
	}
	if len(defs) != 2 {
		t.Fatalf("expected 2 definitions, got %d", len(defs))
	}
	sort.Slice(defs, func(i, j int) bool { return defs[i].Key < defs[j].Key })
	d := defs[0]
	if d.Key != "coaching" || d.Label == nil || *d.Label != "Coaching" {
		t.Fatalf("unexpected definition: %#v", d)
	}
	if d.Description == nil || *d.Description != "Helps others" {
		t.Fatalf("description lost: %#v", d)
	}
	if d.Values["advanced"] != "Runs mentoring programs" {
		t.Fatalf("values lost: %#v", d)
	}
	if defs[1].Label != nil || defs[1].Description != nil || len(defs[1].Values) != 0 {
		t.Fatalf("non-object body should decode empty: %#v", defs[1])
	}
}

func TestDecodeDefinitions_Sequence(t *testing.T) {
	defs, skipped := DecodeDefinitions([]any{
		map[string]any{"id": "coaching", "levels": map[string]any{"basic": "Can mentor on simple tasks"}},
		map[string]any{"label": "Keyless"},
		42.0,
	})
	if len(defs) != 1 {
		t.Fatalf("expected 1 definition, got %d", len(defs))
	}
	if defs[0].Key != "coaching" {
		t.Fatalf("id fallback failed: %#v", defs[0])
	}
	if defs[0].Values["basic"] != "Can mentor on simple tasks" {
		t.Fatalf("levels fallback failed: %#v", defs[0])
	}
	if skipped != 2 {
		t.Fatalf("expected 2 skips (keyless, non-object), got %d", skipped)
	}
}
