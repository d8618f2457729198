// Package api serves a humanid registry over HTTP.
//
// Every endpoint answers with the JSON envelope from package handler. An
// original identifier is written as {"type": "text"|"int"|"bytes", "value": ...}
// with bytes base64-encoded:
//
//	POST /ids {"original": {"type": "int", "value": 42}}
//	=> {"data": {"original": {"type": "int", "value": 42}, "human_readable": "apple-banana-7"}}
//
// Malformed bodies and invalid originals yield 400 bad_request, unknown
// identifiers 404 not_found and snapshot persistence failures 500.
package api
