package i18n

import "golang.org/x/text/language"

// Locales soportados. El conjunto es fijo y pequeño; se extiende solo editando
// esta lista y añadiendo el bundle correspondiente en messages/.
const (
	LocaleEN = "en"
	LocaleES = "es"

	// DefaultLocale destino de la redirección para rutas sin prefijo de locale.
	DefaultLocale = LocaleEN
)

// El orden define la prioridad del matcher.
var supportedTags = []language.Tag{language.English, language.Spanish}

var matcher = language.NewMatcher(supportedTags)

// Supported devuelve los códigos de locale soportados.
func Supported() []string {
	return []string{LocaleEN, LocaleES}
}

// IsSupported indica si el código es exactamente uno de los locales soportados.
func IsSupported(code string) bool {
	return code == LocaleEN || code == LocaleES
}

// Canonical normaliza un código BCP 47 al locale soportado más cercano
// ("es-MX" -> "es", "en-GB" -> "en"). ok=false si el código no corresponde
// a ningún locale soportado.
func Canonical(code string) (string, bool) {
	tag, err := language.Parse(code)
	if err != nil {
		return "", false
	}
	_, idx, conf := matcher.Match(tag)
	if conf < language.High {
		return "", false
	}
	return Supported()[idx], true
}
