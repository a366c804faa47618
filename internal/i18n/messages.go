package i18n

import (
	"embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jhoicas/boardgames-store/internal/domain"
)

//go:embed messages/*.json
var bundleFS embed.FS

// Bundle mapeo clave -> texto localizado de un locale, anidado por namespace
// (auth, common, landing). Inmutable después de la carga.
type Bundle struct {
	locale   string
	messages map[string]any
}

// Los bundles se parsean una sola vez al arrancar; no hay mutación en runtime.
var bundles = loadBundles()

func loadBundles() map[string]*Bundle {
	out := make(map[string]*Bundle, len(Supported()))
	for _, loc := range Supported() {
		raw, err := bundleFS.ReadFile("messages/" + loc + ".json")
		if err != nil {
			panic(fmt.Sprintf("i18n: bundle %q ausente: %v", loc, err))
		}
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil {
			panic(fmt.Sprintf("i18n: bundle %q inválido: %v", loc, err))
		}
		out[loc] = &Bundle{locale: loc, messages: m}
	}
	return out
}

// Load devuelve el bundle del locale indicado. Falla cerrado con
// domain.ErrLocaleNotFound para códigos fuera del conjunto soportado:
// nunca un bundle parcial ni vacío.
func Load(locale string) (*Bundle, error) {
	b, ok := bundles[locale]
	if !ok {
		return nil, domain.ErrLocaleNotFound
	}
	return b, nil
}

// Locale devuelve el código de locale del bundle.
func (b *Bundle) Locale() string {
	return b.locale
}

// T resuelve una clave con puntos ("auth.login.title"). Si la clave no existe
// devuelve la clave misma: un marcador visible, nunca UI vacía.
func (b *Bundle) T(key string) string {
	cur := any(b.messages)
	for _, part := range strings.Split(key, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return key
		}
		if cur, ok = m[part]; !ok {
			return key
		}
	}
	s, ok := cur.(string)
	if !ok {
		return key
	}
	return s
}
