package menu

// Binding reads and writes one numeric value of a settings object
type Binding[T any] interface {
	Get(settings *T) float64
	Set(settings *T, value float64)
}

type funcBinding[T any] struct {
	get func(*T) float64
	set func(*T, float64)
}

func (b funcBinding[T]) Get(settings *T) float64        { return b.get(settings) }
func (b funcBinding[T]) Set(settings *T, value float64) { b.set(settings, value) }

// BindFuncs builds a Binding from a getter and a setter
func BindFuncs[T any](get func(*T) float64, set func(*T, float64)) Binding[T] {
	return funcBinding[T]{get: get, set: set}
}

type fieldBinding[T any] struct {
	field func(*T) *float64
}

func (b fieldBinding[T]) Get(settings *T) float64        { return *b.field(settings) }
func (b fieldBinding[T]) Set(settings *T, value float64) { *b.field(settings) = value }

// BindField builds a Binding from a selector returning a pointer to a float64 field
func BindField[T any](field func(*T) *float64) Binding[T] {
	return fieldBinding[T]{field: field}
}
