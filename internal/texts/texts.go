// Package texts holds the localized message table for the ordering
// conversation. Every language carries the same key set; adding a language
// means adding one complete Table here plus its selector code.
package texts

import "github.com/vyapaar-tech/orderbot-backend/internal/models"

// DefaultLanguage is used before the sender has picked a language.
const DefaultLanguage = models.LanguageHindi

// Retry is the fallback reply for a session in an unknown stage.
const Retry = "कृपया फिर से प्रयास करें।"

// Table is the full message set for one language.
type Table struct {
	Welcome       string
	ProductsIntro string
	EnterProducts string
	AskDays       string
	OrderSummary  string
	Thanks        string
	InvalidLang   string
}

var tables = map[models.Language]Table{
	models.LanguageHindi: {
		Welcome:       "🙏 स्वागत है!\nकृपया भाषा चुनें:\n1. हिन्दी\n2. ગુજરાતી",
		ProductsIntro: "📦 उपलब्ध उत्पाद:\n\n",
		EnterProducts: "कृपया उत्पाद और मात्रा भेजें (जैसे: प्लेट 100, कप 50)",
		AskDays:       "कितने दिनों में डिलीवरी चाहिए? (जैसे: 2)",
		OrderSummary:  "🧾 ऑर्डर सारांश:\n",
		Thanks:        "धन्यवाद! आपका ऑर्डर रिकॉर्ड कर लिया गया है।",
		InvalidLang:   "❗कृपया 1 या 2 में से चुनें।",
	},
	models.LanguageGujarati: {
		Welcome:       "🙏 સ્વાગત છે!\nકૃપા કરીને ભાષા પસંદ કરો:\n1. हिन्दी\n2. ગુજરાતી",
		ProductsIntro: "📦 ઉપલબ્ધ ઉત્પાદનો:\n\n",
		EnterProducts: "કૃપા કરીને ઉત્પાદન અને માત્રા લખો (જેમ કે: પ્લેટ 100, કપ 50)",
		AskDays:       "કેટલા દિવસમાં ડિલિવરી જોઈતી છે? (જેમ કે: 2)",
		OrderSummary:  "🧾 ઓર્ડર સરાંશ:\n",
		Thanks:        "આભાર! તમારું ઓર્ડર નોંધાઈ ગયું છે.",
		InvalidLang:   "❗મેહરબાની કરીને 1 અથવા 2 પસંદ કરો.",
	},
}

var languageCodes = map[string]models.Language{
	"1": models.LanguageHindi,
	"2": models.LanguageGujarati,
}

// For returns the table for lang, falling back to the default language for
// an unset or unknown value.
func For(lang models.Language) Table {
	if t, ok := tables[lang]; ok {
		return t
	}
	return tables[DefaultLanguage]
}

// LanguageForCode resolves a selector code ("1", "2") to a language.
func LanguageForCode(code string) (models.Language, bool) {
	lang, ok := languageCodes[code]
	return lang, ok
}

// Languages lists every supported language.
func Languages() []models.Language {
	langs := make([]models.Language, 0, len(tables))
	for lang := range tables {
		langs = append(langs, lang)
	}
	return langs
}
