// Package view turns server results into a declarative view tree that the UI
// and the CLI draw. Nothing here touches widgets.
package view
