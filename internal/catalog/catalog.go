// Package catalog holds the static voice and dialect reference data served by
// the read-only catalog endpoints. The catalogs are fixed at build time; there
// is no persistence and no mutation.
package catalog

// Voice describes one selectable synthetic voice.
type Voice struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Gender      string `json:"gender"`
	Dialect     string `json:"dialect"`
	Description string `json:"description"`
	SampleURL   string `json:"sample_url"`
}

// Dialect describes one supported Arabic language variant.
type Dialect struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

var voices = []Voice{
	{
		ID:          "male1",
		Name:        "أحمد",
		Gender:      "male",
		Dialect:     "msa",
		Description: "صوت ذكوري هادئ",
		SampleURL:   "/api/samples/male1.wav",
	},
	{
		ID:          "female1",
		Name:        "فاطمة",
		Gender:      "female",
		Dialect:     "msa",
		Description: "صوت أنثوي واضح",
		SampleURL:   "/api/samples/female1.wav",
	},
	{
		ID:          "male2",
		Name:        "محمد",
		Gender:      "male",
		Dialect:     "egyptian",
		Description: "صوت ذكوري قوي - مصري",
		SampleURL:   "/api/samples/male2.wav",
	},
	{
		ID:          "female2",
		Name:        "عائشة",
		Gender:      "female",
		Dialect:     "gulf",
		Description: "صوت أنثوي دافئ - خليجي",
		SampleURL:   "/api/samples/female2.wav",
	},
}

var dialects = []Dialect{
	{Code: "msa", Name: "العربية الفصحى", Description: "اللغة العربية الفصحى الحديثة"},
	{Code: "egyptian", Name: "المصرية", Description: "اللهجة المصرية"},
	{Code: "gulf", Name: "الخليجية", Description: "اللهجة الخليجية"},
	{Code: "levantine", Name: "الشامية", Description: "اللهجة الشامية"},
	{Code: "maghrebi", Name: "المغاربية", Description: "اللهجة المغاربية"},
}

// Voices returns the fixed voice catalog.
func Voices() []Voice {
	out := make([]Voice, len(voices))
	copy(out, voices)
	return out
}

// Dialects returns the fixed dialect catalog.
func Dialects() []Dialect {
	out := make([]Dialect, len(dialects))
	copy(out, dialects)
	return out
}
