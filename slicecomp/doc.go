/*
Package slicecomp provides eager, slice-based comprehension evaluators.

Each function builds a new ordered collection from one or more input slices,
an element transform, and an optional predicate — the named-function
equivalent of the generator / filter / transform clauses of a comprehension:

  - [Map] and [MapWhere]: single-variable comprehensions.
  - [Product], [ProductWhere], [Product3], [Product3Where]: multi-variable
    comprehensions over the Cartesian product, outer slice slowest and
    inner slice fastest.
  - [ToMap] and [ToMapWhere]: dictionary comprehensions, last-write-wins
    on duplicate keys.

Output order is fully determined by the nested iteration order of the
inputs and by which elements pass the predicate; nothing is reordered,
sorted, or deduplicated.

# Error Handling

Transforms and predicates are expected to be pure. The "Try" variants
([TryMap], [TryProduct], etc.) accept functions that return an error; the
first error aborts the pass and is returned with no partial result.

# Concurrency

[TryParallelMap] distributes a large bulk evaluation across GOMAXPROCS
workers while preserving output order. Small inputs fall back to the
serial path.
*/
package slicecomp
