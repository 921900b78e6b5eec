// Package batch saves every downloadable result of a submit, one file at a
// time with a fixed pause between attempts.
package batch
