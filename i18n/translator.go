package i18n

import "strings"

// Translator retrieves localized messages for failure codes. data carries the
// structured params captured at failure time (for example "expected",
// "found", "name", "detail") and is interpolated into {placeholder} slots.
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

var enTemplates = map[string]string{
	"invalid_type":   "expected {expected}, found {found}",
	"required":       `missing required field "{name}"`,
	"unknown_key":    `unknown field "{name}"`,
	"out_of_range":   "value out of range: {detail}",
	"invalid_format": "invalid format: {detail}",
}

var jaTemplates = map[string]string{
	"invalid_type":   "{expected} を期待しましたが {found} でした",
	"required":       "必須フィールド \"{name}\" がありません",
	"unknown_key":    "未知のフィールド \"{name}\" です",
	"out_of_range":   "値が範囲外です: {detail}",
	"invalid_format": "形式が不正です: {detail}",
}

func (t dictTranslator) Message(code string, data map[string]string) string {
	var tpl string
	switch t.lang {
	case "ja":
		tpl = jaTemplates[code]
	default:
		tpl = enTemplates[code]
	}
	if tpl == "" {
		return code
	}
	return Interpolate(tpl, data)
}

// Interpolate replaces {key} placeholders with values from data. Placeholders
// without a value are left verbatim so missing params stay visible.
func Interpolate(tpl string, data map[string]string) string {
	if len(data) == 0 || !strings.ContainsRune(tpl, '{') {
		return tpl
	}
	out := tpl
	for k, v := range data {
		out = strings.ReplaceAll(out, "{"+k+"}", v)
	}
	return out
}

var currentTranslator Translator = dictTranslator{lang: "en"}

// SetLanguage switches the built-in Translator language ("en"/"ja").
func SetLanguage(lang string) {
	if lang != "ja" {
		lang = "en"
	}
	currentTranslator = dictTranslator{lang: lang}
}

// SetTranslator replaces the Translator implementation (not limited to the
// dictionary version).
func SetTranslator(tr Translator) {
	if tr == nil {
		currentTranslator = dictTranslator{lang: "en"}
		return
	}
	currentTranslator = tr
}

// T fetches a message for the given code using the current Translator.
func T(code string, data map[string]string) string { return currentTranslator.Message(code, data) }
