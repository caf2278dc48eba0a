package matrix

// Shape-tolerant decoders for the three ingest payloads. Source exports come
// from spreadsheets and ad-hoc scripts, so each logical entity arrives in one
// of two shapes: a keyed object (natural key -> body) or a sequence of
// objects carrying their key inline. Each decoder tries both shapes and
// degrades to nothing on anything else; malformed items are dropped, never
// errors. The skipped count reports how many items (or, for an entirely
// unrecognizable payload, the payload itself) were dropped.

// DecodeMatrix accepts either {title: [competency...]} or
// [{job_title|title, competencies|skills}].
func DecodeMatrix(v any) (entries []MatrixEntry, skipped int) {
	switch t := v.(type) {
	case nil:
		return nil, 0
	case map[string]any:
		for title, comps := range t {
			entry := MatrixEntry{JobTitle: NormalizeTitle(title)}
			if seq, ok := comps.([]any); ok {
				entry.Competencies = seq
			}
			entries = append(entries, entry)
		}
		return entries, 0
	case []any:
		for _, item := range t {
			obj, ok := item.(map[string]any)
			if !ok {
				skipped++
				continue
			}
			title := NormalizeTitle(firstString(obj, "job_title", "title"))
			if title == "" {
				skipped++
				continue
			}
			comps := anySlice(obj["competencies"])
			if comps == nil {
				comps = anySlice(obj["skills"])
			}
			entries = append(entries, MatrixEntry{JobTitle: title, Competencies: comps})
		}
		return entries, skipped
	default:
		return nil, 1
	}
}

// DecodeStandards accepts either {title: {level: {competency: value}}} or
// [{job_title|title, level, standards|mapping}].
func DecodeStandards(v any) (records []StandardRecord, skipped int) {
	switch t := v.(type) {
	case nil:
		return nil, 0
	case map[string]any:
		for title, levels := range t {
			byLevel, ok := levels.(map[string]any)
			if !ok {
				if levels != nil {
					skipped++
				}
				continue
			}
			for level, mapping := range byLevel {
				records = append(records, StandardRecord{
					JobTitle:  NormalizeTitle(title),
					Level:     level,
					Standards: anyMap(mapping),
				})
			}
		}
		return records, skipped
	case []any:
		for _, item := range t {
			obj, ok := item.(map[string]any)
			if !ok {
				skipped++
				continue
			}
			mapping := anyMap(obj["standards"])
			if len(mapping) == 0 {
				mapping = anyMap(obj["mapping"])
			}
			records = append(records, StandardRecord{
				JobTitle:  NormalizeTitle(firstString(obj, "job_title", "title")),
				Level:     CoerceString(obj["level"]),
				Standards: mapping,
			})
		}
		return records, skipped
	default:
		return nil, 1
	}
}

// DecodeDefinitions accepts either {key: {label, description, values}} or
// [{key|id, label, description, values|levels}]. Sequence items without a
// key are skipped entirely.
func DecodeDefinitions(v any) (defs []DefinitionEntry, skipped int) {
	switch t := v.(type) {
	case nil:
		return nil, 0
	case map[string]any:
		for key, body := range t {
			def := DefinitionEntry{Key: key, Values: map[string]any{}}
			if obj, ok := body.(map[string]any); ok {
				def.Label = optString(obj["label"])
				def.Description = optString(obj["description"])
				def.Values = anyMap(obj["values"])
			}
			defs = append(defs, def)
		}
		return defs, 0
	case []any:
		for _, item := range t {
			obj, ok := item.(map[string]any)
			if !ok {
				skipped++
				continue
			}
			key := firstString(obj, "key", "id")
			if key == "" {
				skipped++
				continue
			}
			values := anyMap(obj["values"])
			if len(values) == 0 {
				values = anyMap(obj["levels"])
			}
			defs = append(defs, DefinitionEntry{
				Key:         key,
				Label:       optString(obj["label"]),
				Description: optString(obj["description"]),
				Values:      values,
			})
		}
		return defs, skipped
	default:
		return nil, 1
	}
}

func anySlice(v any) []any {
	s, _ := v.([]any)
	return s
}

func anyMap(v any) map[string]any {
	if m, ok := v.(map[string]any); ok {
		return m
	}
	return map[string]any{}
}

func optString(v any) *string {
	if s, ok := v.(string); ok {
		return &s
	}
	return nil
}
