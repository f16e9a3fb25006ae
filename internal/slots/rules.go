package slots

import (
	"github.com/osse101/FunSlots_Go/internal/utils"
)

// RewardTable maps a match count to a coin reward.
// Counts that are not keys pay nothing.
type RewardTable map[int]int

// Reward returns the configured reward for matchCount, or 0 if none is configured
func (t RewardTable) Reward(matchCount int) int {
	if reward, ok := t[matchCount]; ok {
		return reward
	}
	return 0
}

// Max returns the largest configured reward
func (t RewardTable) Max() int {
	best := 0
	for _, reward := range t {
		if reward > best {
			best = reward
		}
	}
	return best
}

// Rules is the immutable configuration of a slot machine
type Rules struct {
	ReelCount     int
	SpinCost      int
	StartingCoins int
	JackpotEvery  int // 0 disables forced jackpots
	Symbols       *utils.WeightedPicker[string]
	Rewards       RewardTable
}

// DefaultRules returns the standard five-reel machine
func DefaultRules() Rules {
	return Rules{
		ReelCount:     ReelCount,
		SpinCost:      SpinCost,
		StartingCoins: StartingCoins,
		JackpotEvery:  JackpotEvery,
		Symbols:       utils.MustWeightedPicker(SymbolOrder, SymbolWeights),
		Rewards:       Rewards,
	}
}

// placeholders returns a fresh reel row of placeholder symbols
func (r Rules) placeholders() []string {
	reels := make([]string, r.ReelCount)
	for i := range reels {
		reels[i] = PlaceholderSymbol
	}
	return reels
}

// isForcedJackpot reports whether the spin with this index hits the jackpot cadence
func (r Rules) isForcedJackpot(spinCount int) bool {
	return r.JackpotEvery > 0 && spinCount%r.JackpotEvery == 0
}
