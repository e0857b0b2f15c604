// Package internal holds the registry assembly pipeline for knownsafe.
//
// # Architecture Overview
//
//	                        +------------------+
//	                        |   analyzer.go    |  flags, memoized run
//	                        +--------+---------+
//	                                 |
//	          +----------------------+----------------------+
//	          |                      |                      |
//	   +------v------+      +--------v---------+    +-------v--------+
//	   |   config    |      |    mutability    |    |    catalog     |
//	   | flags, YAML |      | immutable/mutable|    | fixed entries  |
//	   +------+------+      +--------+---------+    +-------+--------+
//	          |                      |                      |
//	          +----------------------+----------------------+
//	                                 |
//	                        +--------v---------+
//	                        |     assemble     |  precedence, logging
//	                        +--------+---------+
//	                                 |
//	                        +--------v---------+
//	                        |     registry     |  Builder, Table
//	                        +--------+---------+
//	                                 |
//	                        +--------v---------+
//	                        |    knowntypes    |  frozen facade
//	                        +------------------+
//
// # Precedence
//
// Entries are inserted in this order; a later insertion for the same name
// replaces the earlier one:
//
//  1. immutable types (mutability knowledge base, user immutable list first)
//  2. user thread-safe list (flags after settings file)
//  3. fixed catalog
//
// A user entry therefore never overrides a catalog entry. Users extend the
// registry; they do not correct it.
//
// # Failure
//
// Assembly is all-or-nothing. A catalog defect or invalid configuration makes
// the analyzer's run fail, which aborts the driver before any dependent
// analyzer reports.
package internal
