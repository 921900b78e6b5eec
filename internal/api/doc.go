package api

// Package api is the HTTP client for the FastMedia processing server. It posts
// operation requests, uploads watermark images, streams produced files back,
// and asks the server to clean up temporary artifacts.
