// Package token defines the token model the matching engine operates on:
// the Token interface, its leaf implementation, and the decorating
// variants that rewrite passes produce.
//
// A Token couples a textual value with a Definition (the category the
// token claims) and a source span. Decorators each wrap exactly one
// inner token:
//
//   - Annotated attaches an immutable metadata map.
//   - Shadow suppresses a token for later structural passes.
//   - Indexed records an occurrence ordinal, e.g. within a repetition.
//   - Group collapses one or more tokens into a single composite whose
//     value is the concatenation of its members.
//
// Unwrapping is always explicit and one layer at a time (Unwrap,
// Unshadow); no operation in this package strips a decoration stack
// implicitly.
package token
