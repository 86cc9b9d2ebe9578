// Package agents holds the speaker and listener policies of the referential
// game: the untrained random baselines and the dense REINFORCE policies.
//
// A policy only mutates its weights inside Train, which the trainer calls
// between batches, so the evaluation pass may call Infer from many
// goroutines at once.
package agents
