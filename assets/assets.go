// Package assets bundles the default HTML templates served when no usable
// template row exists or an external reference cannot be fetched.
package assets

import (
	"embed"
	"strings"
)

//go:embed templates
var templates embed.FS

// Template returns a bundled template by path. Paths are stored relative to
// the assets root, e.g. "templates/agreement-template.html"; a leading
// "assets/" prefix from legacy rows is tolerated.
func Template(path string) (string, error) {
	path = strings.TrimPrefix(path, "assets/")

	raw, err := templates.ReadFile(path)
	if err != nil {
		return "", err
	}

	return string(raw), nil
}
