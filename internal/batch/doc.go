// Package batch analyzes a list of passwords concurrently.
//
// Results are returned in input order. A failure on one entry is recorded
// in that entry and never stops the rest of the batch.
package batch
