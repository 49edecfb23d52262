// Package cst provides the indexed concrete syntax tree for SWON documents.
//
// The tree is an arena of nodes addressed by dense integer ids. Terminals carry
// either a span into the original input or synthesized text, so rendering an
// untouched tree reproduces the input byte for byte. On top of the arena sit:
//   - typed handles and views, one per grammar production, that check the
//     shape of a node's children on demand;
//   - a Walker that drives a Visitor through the tree, routing trivia
//     (whitespace, newlines, comments) to dedicated hooks in source order;
//   - a Commands buffer that records structural edits during a walk and
//     applies them in one pass afterwards.
package cst
