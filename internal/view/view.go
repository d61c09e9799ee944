package view

import (
	"embed"
	"fmt"
	"io/fs"
	"net/http"

	"github.com/gofiber/template/html/v2"
)

//go:embed templates/*.html
var templates embed.FS

// NewEngine returns the Fiber view engine over the embedded templates.
// Templates are addressed by file name without extension, e.g. "index".
func NewEngine() (*html.Engine, error) {
	sub, err := fs.Sub(templates, "templates")
	if err != nil {
		return nil, fmt.Errorf("fs.Sub > %w", err)
	}

	engine := html.NewFileSystem(http.FS(sub), ".html")
	engine.AddFunc("hasStatus", func(status *string) bool {
		return status != nil && *status != ""
	})
	return engine, nil
}
