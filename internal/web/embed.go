// Package web embeds the static page shells served by the page handlers.
package web

import "embed"

//go:embed *.html
var FS embed.FS
