package envkit

// Collector reads many variables from one source and gathers every failure,
// so startup code can report the whole configuration contract at once.
// Each call is still a single accessor pass; failed calls return None.
// Not safe for concurrent use.
type Collector struct {
	src   Source
	decls []Declaration
	errs  []*KeyError
}

// NewCollector creates a Collector reading from src.
func NewCollector(src Source) *Collector {
	return &Collector{
		src:   src,
		decls: make([]Declaration, 0),
	}
}

// Text reads key like the package-level Text and records the outcome.
func (c *Collector) Text(key string, opts ...Option[string]) Optional[string] {
	req := newRequest(key, opts)
	return collect(c, textPipeline(req), req)
}

// Int reads key like the package-level Int and records the outcome.
func (c *Collector) Int(key string, opts ...Option[int64]) Optional[int64] {
	req := newRequest(key, opts)
	return collect(c, intPipeline(req), req)
}

// Bool reads key like the package-level Bool and records the outcome.
func (c *Collector) Bool(key string, opts ...Option[bool]) Optional[bool] {
	return collect(c, boolPipeline(), newRequest(key, opts))
}

// Literal reads key like the package-level Literal and records the outcome.
func (c *Collector) Literal(key string, choices []string, opts ...Option[string]) Optional[string] {
	return collect(c, literalPipeline(choices), newRequest(key, opts))
}

// CollectEnum reads key like Enum and records the outcome on c.
// It is a function because Go methods cannot take type parameters.
func CollectEnum[T comparable](c *Collector, key string, symbols Symbols[T], opts ...Option[T]) Optional[T] {
	req := newRequest(key, opts)
	return collect(c, enumPipeline(symbols, req), req)
}

func collect[T any](c *Collector, p pipeline[T], req *request[T]) Optional[T] {
	v, decl, _ := p.run(c.src, req)
	c.decls = append(c.decls, decl)
	if decl.Err != nil {
		c.errs = append(c.errs, decl.Err)
	}
	return v
}

// Err returns a *ValidationError listing every failure so far, or nil.
func (c *Collector) Err() error {
	if len(c.errs) == 0 {
		return nil
	}
	errs := make([]*KeyError, len(c.errs))
	copy(errs, c.errs)
	return &ValidationError{Errors: errs}
}

// Declarations returns a copy of every recorded call in call order.
func (c *Collector) Declarations() []Declaration {
	decls := make([]Declaration, len(c.decls))
	copy(decls, c.decls)
	return decls
}
