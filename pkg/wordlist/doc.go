// Package wordlist provides the ordered, read-only word dictionary used to build
// human-readable identifiers.
//
// A dictionary is a fixed sequence of words addressed by position. The position
// of every word matters: identifiers are derived by indexing into the list, so
// two dictionaries with the same words in a different order produce different
// identifiers.
//
// # Source format
//
// Dictionaries are read from a tab-separated list. The first line is a header
// and is skipped. For every other line the last tab-separated field, trimmed of
// surrounding whitespace, is the word:
//
//	index	word
//	11111	abacus
//	11112	abdomen
//
// # Usage
//
// Use the embedded default dictionary (parsed once per process):
//
//	dict := wordlist.Default()
//
// Or load your own list:
//
//	dict, err := wordlist.Load("/etc/humanid/words.tsv")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// A Dictionary is immutable after construction and safe for concurrent use.
package wordlist
