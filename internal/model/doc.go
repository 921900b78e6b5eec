package model

// Package model defines the data shared across the client: operation kinds,
// the request and result records exchanged with the server, and the local
// save tasks tracked while files are written to disk. Structures carry JSON
// tags matching the server API so they can be decoded directly.
