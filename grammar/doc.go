// Package grammar contains the stock leaf types that implement the scry
// Parsable contract: verbatim text (Exact), the whole remaining input
// (Everything), end of input (Nothing), whitespace runs, integer literals,
// optional values and literal alternation.
//
// Beyond being useful on their own, they illustrate the pattern larger
// grammars compose: a struct holding the parsed value and its span, a Parse
// that consumes from the stream, a ParseValue override where the textual
// form does not determine the value, and an Unparse that reproduces the
// consumed text exactly.
package grammar
