package decoder

import genai "google.golang.org/genai"

// analysisSchema is the strict response contract for a single-document
// analysis. Every field listed in Required must be present or the artifact
// is rejected.
func analysisSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {
				Type: genai.TypeObject,
				Properties: map[string]*genai.Schema{
					"en": {Type: genai.TypeString},
					"hi": {Type: genai.TypeString},
				},
				Required: []string{"en", "hi"},
			},
			"complexityScore": {Type: genai.TypeInteger},
			"persona":         {Type: genai.TypeString},
			"verdict":         {Type: genai.TypeString, Enum: []string{"Safe", "Caution", "Dangerous"}},
			"risks": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"category":          {Type: genai.TypeString},
						"description":       {Type: genai.TypeString},
						"severity":          {Type: genai.TypeString, Enum: []string{"Low", "Medium", "High"}},
						"clause":            {Type: genai.TypeString},
						"whyRisky":          {Type: genai.TypeString},
						"recommendation":    {Type: genai.TypeString},
						"alternativeClause": {Type: genai.TypeString},
					},
					Required: []string{"category", "description", "severity", "clause", "whyRisky", "recommendation"},
				},
			},
			"clauseCards": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"title":   {Type: genai.TypeString},
						"summary": {Type: genai.TypeString},
						"icon":    {Type: genai.TypeString},
					},
					Required: []string{"title", "summary", "icon"},
				},
			},
			"hiddenFees": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"item":          {Type: genai.TypeString},
						"description":   {Type: genai.TypeString},
						"estimatedCost": {Type: genai.TypeString},
					},
					Required: []string{"item", "description"},
				},
			},
			"jargonTranslator": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"term":         {Type: genai.TypeString},
						"plainEnglish": {Type: genai.TypeString},
					},
					Required: []string{"term", "plainEnglish"},
				},
			},
		},
		Required: []string{"summary", "complexityScore", "persona", "verdict", "risks", "clauseCards", "hiddenFees", "jargonTranslator"},
	}
}

// comparisonSchema is the strict response contract for a two-document
// comparison. Source filenames are stamped locally and deliberately absent.
func comparisonSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"summary": {Type: genai.TypeString},
			"changes": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"type":         {Type: genai.TypeString, Enum: []string{"Added", "Removed", "Modified"}},
						"description":  {Type: genai.TypeString},
						"impact":       {Type: genai.TypeString, Enum: []string{"Positive", "Negative", "Neutral"}},
						"originalText": {Type: genai.TypeString},
						"newText":      {Type: genai.TypeString},
					},
					Required: []string{"type", "description", "impact"},
				},
			},
			"riskShift": {Type: genai.TypeString},
		},
		Required: []string{"summary", "changes", "riskShift"},
	}
}
