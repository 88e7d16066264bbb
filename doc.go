// Package scry is a scannerless parsing core: grammars are expressed by
// composing typed values directly, and those values parse themselves out of a
// shared, immutable source buffer without a separate tokenization pass.
//
// The building blocks, leaves first:
//
//   - IndexedString / IndexedSlice: character-indexed UTF-8 storage with O(1)
//     character slicing and byte-offset mapping.
//   - Source: an immutable, shareable text buffer plus optional file origin.
//   - Span: a lightweight (source, range) pair with joining, line/column
//     resolution and line-windowed text extraction.
//   - Diagnostic: a tree of leveled, span-anchored messages rendered in the
//     familiar compiler excerpt-plus-caret layout.
//   - ParseStream: the cursor a parse threads through recursive descent, with
//     O(1) forking for speculative parsing and backtracking.
//
// Grammar types implement the Parsable contract (parse, unparse, span) and are
// dispatched statically through generics; see the grammar subpackage for the
// stock leaf types. The core correctness contract is the round-trip law: any
// text a type parses must unparse back to the identical bytes.
package scry
