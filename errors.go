package localize

import "errors"

var (
	// ErrReservedFormatID is returned when registering a custom date format
	// with an id inside the reserved built-in range.
	ErrReservedFormatID = errors.New("localize: custom date format ids must be DefaultFormatID or greater")

	ErrNilFormat   = errors.New("localize: date format cannot be nil")
	ErrEmptyLocale = errors.New("localize: locale cannot be empty")
	ErrNilLoader   = errors.New("localize: catalog loader cannot be nil")
	ErrNilProvider = errors.New("localize: settings provider cannot be nil")

	// ErrInvalidCatalogFile marks catalog files that exist but cannot be decoded.
	ErrInvalidCatalogFile = errors.New("localize: invalid catalog file")

	ErrUnparsableDate   = errors.New("localize: unparsable date")
	ErrUnparsableNumber = errors.New("localize: unparsable number")
)
