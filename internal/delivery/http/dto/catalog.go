package dto

type TitlesResponse struct {
	Titles []string            `json:"titles"`
	Levels map[string][]string `json:"levels"`
}

type CompetencyItemResponse struct {
	Key                string  `json:"key"`
	Label              string  `json:"label"`
	Standard           any     `json:"standard"`
	Definition         *string `json:"definition"`
	StandardDefinition any     `json:"standard_definition"`
}

type CompetenciesResponse struct {
	Title string                   `json:"title"`
	Level *string                  `json:"level"`
	Items []CompetencyItemResponse `json:"items"`
}
