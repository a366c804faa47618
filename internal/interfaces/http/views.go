package http

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed views
var viewsFS embed.FS

// NewViewEngine crea el motor de plantillas con las vistas embebidas en el
// binario (mismo motor en servidor y tests, sin depender del working dir).
func NewViewEngine() *html.Engine {
	sub, err := fs.Sub(viewsFS, "views")
	if err != nil {
		panic("views embebidas: " + err.Error())
	}
	return html.NewFileSystem(http.FS(sub), ".html")
}

// ViewsLayout nombre del layout compartido por todas las páginas.
const ViewsLayout = "layouts/main"
