package glang

import (
	"encoding/json"
	"errors"
	"fmt"

	"dragchess/src/ui/gui/gbase/gassets"
)

var ErrUnsupportedLang = errors.New("unsupported lang")

type LangType int

const (
	EN LangType = iota
	RU
	ZZ
)

func LangTypeByString(lang string) LangType {
	switch lang {
	case "en":
		return EN
	case "ru":
		return RU
	default:
	}
	return ZZ
}

func (t LangType) String() string {
	switch t {
	case EN:
		return "en"
	case RU:
		return "ru"
	default:
	}
	return ""
}

type GUILangWorker struct {
	lang LangType
	dict map[string]string
}

func NewGUILangWorker(lang string) (*GUILangWorker, error) {
	lw := &GUILangWorker{}
	t := LangTypeByString(lang)
	if t == ZZ {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedLang, lang)
	}
	if err := lw.SetLang(t); err != nil {
		return nil, err
	}
	return lw, nil
}

func (lw *GUILangWorker) GetLang() LangType {
	return lw.lang
}

func (lw *GUILangWorker) SetLang(l LangType) error {
	if l == ZZ {
		return ErrUnsupportedLang
	}
	data, err := gassets.ReadAsset("assets/lang/" + l.String() + ".json")
	if err != nil {
		return err
	}
	dict := make(map[string]string)
	if err := json.Unmarshal(data, &dict); err != nil {
		return fmt.Errorf("error decode %v dictionary: %w", l, err)
	}
	lw.lang, lw.dict = l, dict
	return nil
}

// T returns the key itself when it has no translation.
func (lw *GUILangWorker) T(key string) string {
	if v, ok := lw.dict[key]; ok {
		return v
	}
	return key
}
