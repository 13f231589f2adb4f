package report

import "strings"

// Labels holds the fixed captions of a report
type Labels struct {
	NoRows        string
	Recap         string
	DistinctParts string
	TotalParts    string
	Forklift      string
}

var labelsByLanguage = map[string]Labels{
	"en": {
		NoRows:        "No rows",
		Recap:         "Recapitulation",
		DistinctParts: "Distinct parts",
		TotalParts:    "Total parts",
		Forklift:      "Forklift",
	},
	"fr": {
		NoRows:        "Aucune ligne",
		Recap:         "Récapitulatif",
		DistinctParts: "Nombre de références",
		TotalParts:    "Nombre total de pièces",
		Forklift:      "Chariot",
	},
}

// LabelsFor returns the captions for a language code, English when unknown
func LabelsFor(language string) Labels {
	if labels, ok := labelsByLanguage[strings.ToLower(strings.TrimSpace(language))]; ok {
		return labels
	}
	return labelsByLanguage["en"]
}

// SupportedLanguages lists the language codes LabelsFor knows
func SupportedLanguages() []string {
	return []string{"en", "fr"}
}
