package json

import jsoniter "github.com/json-iterator/go"

var (
	// JSON is the instance of jsoniter.API that should be used throughout the codebase
	JSON = jsoniter.ConfigCompatibleWithStandardLibrary

	// Pretty writes two-space indented output without HTML escaping and
	// leaves non-ASCII text as literal UTF-8.
	Pretty = jsoniter.Config{
		IndentionStep:          2,
		EscapeHTML:             false,
		SortMapKeys:            true,
		ValidateJsonRawMessage: true,
	}.Froze()

	// MarshalPretty is a shorthand for Pretty.Marshal
	MarshalPretty = Pretty.Marshal

	// Unmarshal is a shorthand for JSON.Unmarshal
	Unmarshal = JSON.Unmarshal
)

// RawMessage is a raw encoded JSON value whose decoding is deferred.
type RawMessage = jsoniter.RawMessage
