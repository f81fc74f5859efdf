package language

// catalog maps the 22 scheduled Indian languages to their Google Translate
// codes. It is fixed at compile time and never mutated.
var catalog = map[string]string{
	"Assamese":  "as",
	"Bengali":   "bn",
	"Bodo":      "brx",
	"Dogri":     "doi",
	"Gujarati":  "gu",
	"Hindi":     "hi",
	"Kannada":   "kn",
	"Kashmiri":  "ks",
	"Konkani":   "kok",
	"Maithili":  "mai",
	"Malayalam": "ml",
	"Manipuri":  "mni",
	"Marathi":   "mr",
	"Nepali":    "ne",
	"Odia":      "or",
	"Punjabi":   "pa",
	"Sanskrit":  "sa",
	"Santali":   "sat",
	"Sindhi":    "sd",
	"Tamil":     "ta",
	"Telugu":    "te",
	"Urdu":      "ur",
}

// Catalog returns the supported language name → code table. Callers get a
// copy so the package-level table stays read-only.
func Catalog() map[string]string {
	out := make(map[string]string, len(catalog))
	for name, code := range catalog {
		out[name] = code
	}
	return out
}
