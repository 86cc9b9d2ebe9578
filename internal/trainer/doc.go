// Package trainer runs referential-game experiments end to end: it
// generates the datasets, plays training rounds in REINFORCE batches,
// evaluates greedily on the held-out set, and summarizes the emerged
// protocol.
package trainer
