/*
Package seqcomp provides lazy comprehension evaluators over Go 1.23+
iterators (iter.Seq).

It mirrors the eager slicecomp surface — [Map], [Where], [MapWhere],
[Product], [ProductWhere], and the mapping pair [Pairs] / [CollectMap] —
but evaluates on demand, so consumers can stop early and deep nesting
composes without materializing intermediate slices.

Try variants ([TryMap], [TryMapWhere]) yield (value, error) pairs; the
consumer decides whether an error stops the iteration.

[Range] and [Repeat] generate the index sequences the worked examples
iterate over.
*/
package seqcomp
