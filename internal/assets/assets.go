// Package assets embeds the static files served under /assets/.
package assets

import (
	"embed"
	"io/fs"
)

//go:embed static
var embedded embed.FS

// FS returns the static asset tree rooted at the static directory.
func FS() fs.FS {
	sub, err := fs.Sub(embedded, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
