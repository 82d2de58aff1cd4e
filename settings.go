package khata

import "fmt"

// Language selects the display language of the application.
type Language string

// The two supported locales.
const (
	English Language = "English"
	Urdu    Language = "Urdu"
)

// ParseLanguage parses a supported language name.
func ParseLanguage(s string) (Language, error) {
	switch Language(s) {
	case English:
		return English, nil
	case Urdu:
		return Urdu, nil
	default:
		return "", fmt.Errorf("unsupported language %q (want %q or %q): %w", s, English, Urdu, ErrInvalidArgument)
	}
}

// Settings is the single process-wide configuration record of the shop.
type Settings struct {
	ShopName  string   `json:"shopName"`
	Language  Language `json:"language"`
	Currency  string   `json:"currency"`
	Developer string   `json:"developer"`
}

// DefaultSettings returns the record used when nothing has been persisted yet.
func DefaultSettings() Settings {
	return Settings{
		ShopName:  "Digital Khata",
		Language:  English,
		Currency:  "Rs.",
		Developer: "Furqan",
	}
}

// SettingsPatch is a partial settings update; nil fields are left untouched.
// The developer attribution is static and not patchable.
type SettingsPatch struct {
	ShopName *string
	Language *Language
	Currency *string
}

// merge shallow-merges the patch into s.
func (s Settings) merge(p SettingsPatch) Settings {
	if p.ShopName != nil {
		s.ShopName = *p.ShopName
	}
	if p.Language != nil {
		s.Language = *p.Language
	}
	if p.Currency != nil {
		s.Currency = *p.Currency
	}
	return s
}
