// Package game implements the referential-game environment: synthetic
// dataset generation for both input modalities and the reward rule.
//
// A round of the game is pure data: the speaker observes Sample.Target, the
// listener observes the emitted message together with Sample.Candidates and
// picks an index, and Reward compares that index against Sample.TargetIndex.
// The training loop that drives rounds lives in the trainer package; this
// package stays free of agent and policy concerns.
package game
