package game

// Reward implements the referential-game payoff: 1 when the listener picked
// the target candidate, 0 otherwise. Both agents receive the same reward.
func Reward(chosenIndex, targetIndex int) int {
	if chosenIndex == targetIndex {
		return 1
	}
	return 0
}
