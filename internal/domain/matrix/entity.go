package matrix

// MatrixEntry maps one job title to its ordered competency references.
// Titles are stored post-normalization and act as the natural key; nothing
// prevents two entries with the same title from coexisting in the store.
type MatrixEntry struct {
	JobTitle string
	// Competencies keeps the source ordering. Each element is either a bare
	// string key or an object carrying key/label fields; resolution happens
	// at read time via ResolveRef.
	Competencies []any
}

// StandardRecord holds the expected competency values for one (title, level)
// pair. Standards maps competency key to a free-form value, typically a
// level-name string such as "advanced".
type StandardRecord struct {
	JobTitle  string
	Level     string
	Standards map[string]any
}

// DefinitionEntry describes a competency and what its standard values mean.
// Label and Description are optional free text. Values maps a standard-value
// term (matched case-insensitively) to descriptive text.
type DefinitionEntry struct {
	Key         string
	Label       *string
	Description *string
	Values      map[string]any
}
