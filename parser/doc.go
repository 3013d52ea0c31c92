// Package parser implements a generic, table-driven recursive descent engine
// for XML-like markup with an HTML-flavoured lexical layer.
//
// The engine knows nothing about any particular vocabulary. A vocabulary is
// described by element kinds: a zero-size [Tag] marker type plus an
// [Element] descriptor pairing an [AttributesParser] with a [ChildrenParser].
// Parsing one element produces a [Component] whose type fixes its tag.
//
// # Tokens
//
// A [Cursor] tokenizes text on demand into element starts, tag terminators,
// closing tags, attributes, text and comments. Every token carries the
// [Span] of bytes it covers, and every diagnostic carries the [Origin] of
// the document it was found in.
//
// Informal grammar:
//
//	Document  → Misc* Element Misc* EOF
//	Element   → '<' Name Attribute* ( '/>' | '>' Content '</' Name '>' )
//	Attribute → Name ( '=' ( '"' .. '"' | '\'' .. '\'' | Unquoted ) )?
//	Misc      → Comment | Whitespace
//	Comment   → '<!--' .. '-->'
//
// # Diagnostics
//
// Recoverable anomalies such as unknown attributes are recorded as [Warning]
// values on the cursor and never change control flow. Structural problems
// end the parse with an [*Error] whose kind can be tested with [errors.Is]
// against the sentinel values ([ErrUnexpectedToken] and friends).
//
// # Includes
//
// A [Parser] holds the capability used to resolve included fragments.
// [NewParser] adapts an [IncludeLoader] that never suspends and
// [NewAsyncParser] adapts an [AsyncIncludeLoader] that honours context
// cancellation. Both drive the same algorithm. [Include] parses a resolved
// fragment with a fresh cursor and merges its warnings.
package parser
