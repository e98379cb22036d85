// Package errors provides shared error handling helpers.
package errors

// ContextError prefixes an underlying error with the operation that failed.
type ContextError struct {
	Context string
	Err     error
}

func (e *ContextError) Error() string {
	return e.Context + ": " + e.Err.Error()
}

func (e *ContextError) Unwrap() error {
	return e.Err
}

// WrapWithContext wraps err with a context prefix. A nil err stays nil.
func WrapWithContext(err error, context string) error {
	if err == nil {
		return nil
	}
	return &ContextError{Context: context, Err: err}
}

// Cause strips the ContextError layers at the top of err and returns the
// first error that is not one, typically the driver's own error. Any other
// wrapper stops the walk and is returned intact, so a net.OpError keeps its
// address in the message.
func Cause(err error) error {
	for {
		ce, ok := err.(*ContextError) //nolint:errorlint // only the outermost layers are stripped
		if !ok {
			return err
		}
		err = ce.Err
	}
}
