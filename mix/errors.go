package mix

import "errors"

var (
	ErrUnsupportedBitDepth = errors.New("unsupported bit depth for mixing")
	ErrUnsupportedChannels = errors.New("unsupported channel layout for mixing")
	ErrUnsupportedRate     = errors.New("unsupported sample rate for mixing")
)
