package wordlist

import "errors"

var (
	ErrEmptyDictionary  = errors.New("dictionary has no words")
	ErrInvalidWord      = errors.New("invalid dictionary word")
	ErrFailedToReadFile = errors.New("failed to read dictionary file")
	ErrFailedToParse    = errors.New("failed to parse dictionary")
)
