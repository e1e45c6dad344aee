package web

import "embed"

// FS holds the static assets served under /static: the stylesheet, the
// live client script and images.
//
//go:embed static/*
var FS embed.FS
