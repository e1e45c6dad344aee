// Package modules contains the pages of the site.
//
// Each subdirectory is a module that implements the `module.Module` interface.
// Modules are listed in `internal/app/modules.go` and booted by the server at
// startup.
package modules
