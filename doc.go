/*
Package chartparse implements an Earley chart parser over context-free
grammars (with optional lexicalized right-hand-side prefixes), producing a
shared, packed parse forest for a recognized input.

Package structure is as follows:

■ grammar: rules, grammars, reachability closure, and the grammar text-file
reader.

■ vocab: the surface-form ↔ part-of-speech vocabulary, loaded from JSON, plus
the process-wide set of parts of speech and the scanned-rule table.

■ heap: a small max-heap of integers, used to order the completion agenda by
decreasing start-column index.

■ chart: Columns, Items, and Spans — the Earley chart itself, plus forest
traversal (counting and enumerating derivations).

■ parser: the parser driver tying grammar, vocabulary and chart together:
initialization, scanning, the predict/complete main loop, and reparsing.

The base package (this one) contains data types shared across all of the
above: symbols and input spans.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.
*/
package chartparse
