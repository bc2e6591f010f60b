package processor

import "errors"

// ErrDecode is returned when the input bytes are not a decodable image.
var ErrDecode = errors.New("input is not a decodable image")
