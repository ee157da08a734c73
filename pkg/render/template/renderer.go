package template

// TemplateRenderer is the engine contract the vanilla renderer depends on.
type TemplateRenderer interface {
	RenderTemplate(name string, data any) (string, error)
}
