package dev

// error definitions
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrNoPin       = Error("nil encoder pin")
	ErrNoInput     = Error("nil analog input")
	ErrNoDriver    = Error("nil gate driver")
	ErrNoComponent = Error("nil loop component")
)
