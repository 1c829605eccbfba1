// Package rewrite turns rule matches into stream edits.
//
// An Action maps one match to its replacement tokens: keep them
// (Identity), transform them (Convert), attach metadata
// (AnnotateWith), collapse them into a group (GroupAs), mark them for
// later removal (Shade) or delete them outright (Drop). A Transformer
// is a whole-stream pass that runs after actions, such as
// DropShadowed or FlattenGroups.
//
// A Context pairs an action with an immutable snapshot of the stream
// being rewritten so the action can inspect the tokens around its
// match. Contexts cannot be built over mutable streams; the
// constructor's signature only admits *stream.Immutable.
package rewrite
