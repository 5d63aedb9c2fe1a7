package httpserver

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gofiber/fiber/v2"
	fiberfs "github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/template/html/v2"
)

// viewsFS holds the page templates. Template names keep the "views/" prefix,
// e.g. "views/tools/index".
//
//go:embed views
var viewsFS embed.FS

//go:embed static
var staticFS embed.FS

const staticRoot = "static"

func newViewEngine() *html.Engine {
	return html.NewFileSystem(http.FS(viewsFS), ".html")
}

func mountStatic(app *fiber.App) error {
	dist, err := fs.Sub(staticFS, staticRoot)
	if err != nil {
		return err
	}
	app.Use("/static", fiberfs.New(fiberfs.Config{
		Root:   http.FS(dist),
		Browse: false,
		MaxAge: 3600,
	}))
	return nil
}
