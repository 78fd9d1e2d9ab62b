package medicine

import "strings"

// fallback is returned for diseases without a table entry.
var fallback = []string{"Consult a doctor"}

// table maps lowercased disease labels to suggested remedies.
var table = map[string][]string{
	"panic disorder": {
		"Xanax (Alprazolam)",
		"Cognitive Behavioral Therapy (CBT)",
		"Sertraline",
		"Clonazepam",
		"Paroxetine",
	},
	"migraine": {"Ibuprofen", "Paracetamol", "Triptans"},
	"flu":      {"Rest", "Fluids", "Paracetamol"},
	"common cold": {"Rest", "Fluids", "Antihistamines"},
	"hypertension": {"Lisinopril", "Amlodipine", "Lifestyle changes"},
	"diabetes":     {"Metformin", "Insulin", "Dietary management"},
	"gastritis":    {"Antacids", "Omeprazole", "Dietary adjustments"},
}

// Lookup returns the suggested remedies for a disease label. The match is
// case-insensitive; unmapped labels get the fallback suggestion, never an
// empty list.
func Lookup(diseaseLabel string) []string {
	if medicines, ok := table[strings.ToLower(strings.TrimSpace(diseaseLabel))]; ok {
		out := make([]string, len(medicines))
		copy(out, medicines)
		return out
	}
	out := make([]string, len(fallback))
	copy(out, fallback)
	return out
}
