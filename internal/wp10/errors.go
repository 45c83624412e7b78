package wp10

import "fmt"

// UnknownClassError reports a class name outside the assessment scale.
type UnknownClassError struct {
	Name string
}

func (e *UnknownClassError) Error() string {
	return fmt.Sprintf("unknown assessment class %q", e.Name)
}
