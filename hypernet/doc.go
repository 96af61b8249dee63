// Package hypernet walks the hypernet of a net occurrence: every net
// occurrence that carries the same electrical signal once hierarchical plugs,
// and optionally geometric overlaps, are followed.
//
// What
//
//   - HyperNet wraps one root net occurrence and hands out lazy views:
//   - NetOccurrences: every net occurrence of the hypernet.
//   - NetOccurrencesUnder: the same walk, but extraction only looks at
//     components meeting an area and never crosses rubbers.
//   - TerminalNetlistPlugOccurrences: the plugs through which the hypernet
//     enters terminal netlist cells.
//   - ComponentOccurrences: the components of every non-terminal net occurrence.
//   - IsConnex tells whether two component occurrences touch on conducting
//     layers, by extract masks and per basic layer bounding boxes.
//   - RootNetOccurrence and IsRootNetOccurrence resolve an occurrence to the
//     highest one naming the same logical net.
//
// Walk
//
//	Each Locator owns a LIFO worklist and a visited set. An occurrence is
//	marked visited when it is pushed, so nothing is expanded twice however
//	many routes reach it. The current element is the top of the worklist;
//	Next pops it and pushes its unseen neighbors:
//
//	  1. with extraction, occurrences of components overlapping one of the
//	     net's shapes in the owner cell, on layers that conduct to each other;
//	  2. unless the net's cell is a terminal netlist, the master nets of the
//	     plugs connected to the net, one level down;
//	  3. for an external net seen through an instance, the net the instance
//	     plug is connected to, one level up;
//	  4. only with WithGlobals, for a global net, the global nets of the same
//	     name one level up and one level down.
//
//	Views are re-startable: every Locator call starts a fresh walk, and
//	Clone forks one mid-flight.
//
// Errors
//
//   - ErrTypeBadOccurrence   New or a root helper got an invalid or non-net occurrence.
//   - ErrTypeMissingPlug     RootNetOccurrence met an external net without plug.
//   - ErrTypeInterrupted     the walk was cancelled through its context.
//
//	A hard error stops the Locator: Valid turns false and Err reports it.
//	Missing optional links (unconnected plugs on the way up, missing plugs,
//	and undeclared global nets when WithGlobals is set) are logged as
//	warnings and the walk goes on without that edge.
//
// Concurrency
//
//	Views may be walked interleaved, each Locator owning its state, but the
//	database must not change while a Locator is open.
package hypernet
