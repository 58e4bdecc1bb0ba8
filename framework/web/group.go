package web

// Group mounts handlers under a shared path prefix and middleware chain.
type Group struct {
	app         *App
	prefixPath  string
	middlewares []Middleware
}

// NewGroup initializes a group of http handlers, with a bunch of middlewares.
func NewGroup(app *App, prefixPath string, mw ...Middleware) *Group {
	return &Group{
		app:         app,
		prefixPath:  prefixPath,
		middlewares: mw,
	}
}

// chain returns the group middlewares followed by mw in a fresh slice so that
// sibling routes never share a backing array.
func (g *Group) chain(mw []Middleware) []Middleware {
	out := make([]Middleware, 0, len(g.middlewares)+len(mw))
	out = append(out, g.middlewares...)

	return append(out, mw...)
}

// Handle mounts handler for verb under the group prefix.
func (g *Group) Handle(verb string, path string, handler Handler, mw ...Middleware) {
	g.app.Handle(verb, g.prefixPath+path, handler, g.chain(mw)...)
}

func (g *Group) Post(path string, handler Handler, mw ...Middleware) {
	g.app.Post(g.prefixPath+path, handler, g.chain(mw)...)
}

func (g *Group) Get(path string, handler Handler, mw ...Middleware) {
	g.app.Get(g.prefixPath+path, handler, g.chain(mw)...)
}

func (g *Group) Put(path string, handler Handler, mw ...Middleware) {
	g.app.Put(g.prefixPath+path, handler, g.chain(mw)...)
}

func (g *Group) Delete(path string, handler Handler, mw ...Middleware) {
	g.app.Delete(g.prefixPath+path, handler, g.chain(mw)...)
}

func (g *Group) Patch(path string, handler Handler, mw ...Middleware) {
	g.app.Patch(g.prefixPath+path, handler, g.chain(mw)...)
}

// NewSubgroup initializes a subgroup, within a group, with a bunch of additional middlewares.
func (g *Group) NewSubgroup(prefixPath string, mw ...Middleware) *Group {
	return &Group{
		app:         g.app,
		prefixPath:  g.prefixPath + prefixPath,
		middlewares: g.chain(mw),
	}
}
