package Templates

import (
	"embed"
	"net/http"
)

//go:embed *.html
var files embed.FS

// FS serves the built-in views to the html engine.
func FS() http.FileSystem {
	return http.FS(files)
}
