// Package platform defines the boundary with the windowing and surface collaborators.
//
// A Window delivers raw notifications (Event values) on a channel and answers size and
// scale queries. A Surface hands out one Frame per redraw and presents it. The engine
// never depends on a concrete backend; the terminal package provides one over tcell.
package platform
