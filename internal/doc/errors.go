package doc

import "errors"

// ErrNotUTF8 is returned when a file cannot be decoded as UTF-8 text.
var ErrNotUTF8 = errors.New("content is not valid UTF-8")
