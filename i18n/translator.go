package i18n

// Translator retrieves localized messages for Issue codes.
// data provides optional metadata to embed in the message (for example,
// "key" or "unit").
type Translator interface {
	Message(code string, data map[string]string) string
}

// dictTranslator is the built-in dictionary-based Translator.
type dictTranslator struct{ lang string }

func (t dictTranslator) Message(code string, data map[string]string) string {
	switch t.lang {
	case "ja":
		switch code {
		case "non_finite_number":
			if v := data["value"]; v != "" {
				return "数値が有限ではありません: " + v
			}
			return "数値が有限ではありません"
		case "number_out_of_range":
			if l := data["literal"]; l != "" {
				return "数値リテラル " + l + " はIEEE-754倍精度で表現できません"
			}
			return "数値がIEEE-754倍精度で表現できません"
		case "invalid_surrogate":
			if u := data["unit"]; u != "" {
				return "対になっていないサロゲート " + u + " を含みます"
			}
			return "対になっていないサロゲートを含みます"
		case "invalid_utf8":
			return "不正なUTF-8シーケンスです"
		case "invalid_value":
			if tn := data["type"]; tn != "" {
				return "未対応の値型です: " + tn
			}
			return "未対応の値型です"
		case "depth_exceeded":
			if m := data["max"]; m != "" {
				return "最大深さ " + m + " を超えました"
			}
			return "最大深さを超えました"
		case "duplicate_key":
			if k := data["key"]; k != "" {
				return "キー '" + k + "' が重複しています"
			}
			return "キーが重複しています"
		case "parse_error":
			return "解析エラー"
		}
	default: // "en"
		switch code {
		case "non_finite_number":
			if v := data["value"]; v != "" {
				return "number is not finite: " + v
			}
			return "number is not finite"
		case "number_out_of_range":
			if l := data["literal"]; l != "" {
				return "number literal " + l + " does not fit an IEEE-754 double"
			}
			return "number does not fit an IEEE-754 double"
		case "invalid_surrogate":
			if u := data["unit"]; u != "" {
				return "lone surrogate " + u
			}
			return "lone surrogate code unit"
		case "invalid_utf8":
			return "invalid UTF-8 byte sequence"
		case "invalid_value":
			if tn := data["type"]; tn != "" {
				return "unsupported value type " + tn
			}
			return "unsupported value type"
		case "depth_exceeded":
			if m := data["max"]; m != "" {
				return "max depth " + m + " exceeded"
			}
			return "max depth exceeded"
		case "duplicate_key":
			if k := data["key"]; k != "" {
				return "key '" + k + "' duplicated"
			}
			return "duplicate key"
		case "parse_error":
			return "parse error"
		}
	}
	return code
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
