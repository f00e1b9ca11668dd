package repokit

// Binder produces a domain repo over whatever Queryer the caller holds,
// the pool outside a transaction or the tx inside one
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a plain constructor
type BindFunc[T any] func(Queryer) T

func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }
