package i18n

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Catalog is a Translator loaded from a YAML document. Top-level keys are
// language codes mapping failure codes to message templates:
//
//	en:
//	  invalid_type: "wanted {expected} but got {found}"
//	ja:
//	  invalid_type: "{expected} ではありません"
//
// Codes missing from the catalog fall back to the built-in dictionary for the
// active language.
type Catalog struct {
	lang     string
	messages map[string]map[string]string
	fallback Translator
}

// LoadCatalog parses a YAML catalog. lang selects the active language.
func LoadCatalog(data []byte, lang string) (*Catalog, error) {
	var raw map[string]map[string]string
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("i18n: parse catalog: %w", err)
	}
	if _, ok := raw[lang]; !ok {
		return nil, fmt.Errorf("i18n: catalog has no language %q", lang)
	}
	return &Catalog{lang: lang, messages: raw, fallback: dictTranslator{lang: lang}}, nil
}

// Message implements Translator.
func (c *Catalog) Message(code string, data map[string]string) string {
	if tpl, ok := c.messages[c.lang][code]; ok && tpl != "" {
		return Interpolate(tpl, data)
	}
	return c.fallback.Message(code, data)
}
