package sentience

// Context is a lexical environment: a set of local variable bindings chained
// to an optional parent scope.  The parent is a structural reference used
// only for lookup; a Context never outlives whatever created it.
type Context struct {
	// Name identifies the scope in diagnostics (the enclosing function or
	// block name).  It carries no semantics.
	Name   string
	Parent *Context
	Scope  map[string]*SVal
}

// NewContext initializes and returns a new Context.  A nil parent produces
// a root scope.
func NewContext(name string, parent *Context) *Context {
	return &Context{
		Name:   name,
		Parent: parent,
		Scope:  make(map[string]*SVal),
	}
}

// Child returns a new Context nested inside ctx.  This is the sole
// mechanism for scope nesting; the evaluator calls it on every function call
// or block entry.
func (ctx *Context) Child(name string) *Context {
	return NewContext(name, ctx)
}

// Put binds name to v in the local scope only.  An existing binding of the
// same name in a parent scope is shadowed, never mutated.  The value is
// stored by reference so list bindings alias the caller's list.
func (ctx *Context) Put(name string, v *SVal) {
	ctx.Scope[name] = v
}

// Get returns the value bound to name, searching the local scope first and
// then each parent in turn.  Get fails when the full chain is exhausted.
func (ctx *Context) Get(name string) (*SVal, error) {
	for c := ctx; c != nil; c = c.Parent {
		if v, ok := c.Scope[name]; ok {
			return v, nil
		}
	}
	return nil, Errorf(ErrnoNoVar, "variable '%s' is not defined", name)
}

// Has reports whether name is bound anywhere in the chain.
func (ctx *Context) Has(name string) bool {
	for c := ctx; c != nil; c = c.Parent {
		if _, ok := c.Scope[name]; ok {
			return true
		}
	}
	return false
}

// Unset removes the local binding for name.  Parent bindings are untouched;
// after Unset a previously shadowed binding becomes visible again.
func (ctx *Context) Unset(name string) {
	delete(ctx.Scope, name)
}

// Root returns the root of the scope chain (the global scope).
func (ctx *Context) Root() *Context {
	for ctx.Parent != nil {
		ctx = ctx.Parent
	}
	return ctx
}
