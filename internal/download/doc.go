package download

// Package download saves files produced by the server into the local
// downloads folder. It tracks each save as a task, streams the body straight
// to disk and removes partial files when a save fails.
