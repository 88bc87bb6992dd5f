package testdata

// ErrReader implements the io.Reader interface by always failing with the
// error in its Err field.
type ErrReader struct {
	Err error
}

func (e *ErrReader) Read(_ []byte) (n int, err error) {
	return 0, e.Err
}
