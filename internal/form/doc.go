// Package form holds the owned form state of the client, the submit-button
// decision table, request building and the submit and upload flows.
package form
