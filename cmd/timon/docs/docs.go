// Package docs embeds the language reference shown by `timon docs`.
package docs

import _ "embed"

//go:embed reference.md
var Reference string
