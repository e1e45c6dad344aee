package view

import (
	"context"
	"io"

	"github.com/a-h/templ"
	"maragu.dev/gomponents"
)

// GomponentToTemplAdapter lets a gomponents.Node be used as a templ.Component.
type GomponentToTemplAdapter struct {
	Node gomponents.Node
}

// Render implements templ.Component.
func (a *GomponentToTemplAdapter) Render(ctx context.Context, w io.Writer) error {
	if a.Node == nil {
		return nil
	}
	return a.Node.Render(w)
}

// AdaptGomponentToTempl wraps node as a templ.Component.
func AdaptGomponentToTempl(node gomponents.Node) templ.Component {
	return &GomponentToTemplAdapter{Node: node}
}

// TemplToGomponentAdapter lets a templ.Component be rendered inside a
// gomponents tree.
type TemplToGomponentAdapter struct {
	Component templ.Component
	// Ctx is passed to the component; gomponents has no context of its own.
	Ctx context.Context
}

// Render implements gomponents.Node.
func (a *TemplToGomponentAdapter) Render(w io.Writer) error {
	if a.Component == nil {
		return nil
	}
	ctx := a.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	return a.Component.Render(ctx, w)
}

// AdaptTemplToGomponent wraps component as a gomponents.Node rendered with
// ctx.
func AdaptTemplToGomponent(ctx context.Context, component templ.Component) gomponents.Node {
	return &TemplToGomponentAdapter{Component: component, Ctx: ctx}
}
