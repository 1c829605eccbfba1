// Package rule implements a composable matching algebra over token
// streams, in the spirit of regular expressions but with tokens as the
// alphabet instead of characters.
//
// # Rules
//
// Everything implements the Rule interface: a single Match method that
// tries to consume tokens from the stream's cursor and reports the
// consumed span, or nil on a miss. Atomic rules inspect one token:
//
//	rule.Value("if")          exact value
//	rule.ValueFold("IF")      case-insensitive value
//	rule.Pattern(`[0-9]+`)    full-value regular expression
//	rule.Def(numberDef)       token definition identity
//	rule.Any()                any one token
//
// Composites build larger shapes from smaller ones:
//
//	rule.Seq(a, b, c)         all in order
//	rule.Choice(a, b)         first that fits, declaration order
//	rule.Optional(a)          a, or nothing; never fails
//	rule.Repeat(a, 2, 4)      bounded greedy repetition
//	rule.ZeroOrMore(a)        unbounded greedy repetition
//	rule.Group(a, def)        collapse a's tokens into one group token
//	rule.Capture(a, "x")      bind a's tokens to a context name
//	rule.Ref("x")             match the values bound to a name
//
// Zero-width assertions test the neighborhood without consuming:
//
//	rule.Lookahead(a)           a fits next
//	rule.NegativeLookahead(a)   a does not fit next
//	rule.Lookbehind(a)          a fits behind, nearest token first
//	rule.NegativeLookbehind(a)  same, inverted
//
// # Failure and backtracking
//
// A miss is an ordinary outcome, reported as a nil *Match, never as an
// error. A failing rule may leave the cursor mid-way through its
// input; every composite here snapshots the index before trying a
// child and restores it when the child misses, which is all the
// backtracking the algebra needs. Repetition is greedy without
// reconsideration: Repeat takes as many iterations as it can and does
// not give any back to later sequence elements.
//
// # Negation
//
// Not(r) complements a rule. Only single-token rules have a usable
// complement, expressed through the Negatable capability; Value,
// ValueFold, Pattern and Def carry it, and Optional passes it through
// to its inner rule. Applying Not to anything else panics with an
// error wrapping ErrNotNegatable.
//
// # Contracts
//
// Constructors validate their arguments eagerly and panic on nonsense
// such as Repeat bounds of [0, 0] or a negative minimum. Match itself
// never panics on well-formed rules and streams.
package rule
