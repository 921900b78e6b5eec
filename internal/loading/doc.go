// Package loading implements the progress indicator shown while a request is
// in flight. The indicator creeps towards 90% on a ticker, snaps to 100% when
// the request ends and resets itself after a short delay.
package loading
