package lollywiz

import "embed"

//go:embed topics
var topicsFS embed.FS
