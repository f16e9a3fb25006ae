package slots

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/FunSlots_Go/internal/domain"
)

// Roll values that land on each symbol of the default table (total weight 29)
const (
	rollCherry     = 0  // [0,5)
	rollLemon      = 5  // [5,10)
	rollWatermelon = 10 // [10,14)
	rollGrapes     = 14 // [14,18)
	rollStar       = 18 // [18,21)
	rollStrawberry = 28 // [28,29)
)

// noMatchRolls produce five distinct symbols
var noMatchRolls = []int{rollCherry, rollLemon, rollWatermelon, rollGrapes, rollStar}

// scriptedRNG replays rolls in order, cycling when exhausted
func scriptedRNG(rolls ...int) func(int) int {
	i := 0
	return func(n int) int {
		v := rolls[i%len(rolls)]
		i++
		return v % n
	}
}

func newTestEngine(rolls ...int) *Engine {
	return NewEngine(DefaultRules(), scriptedRNG(rolls...))
}

func TestNewState(t *testing.T) {
	e := newTestEngine(0)
	state := e.NewState()

	assert.Equal(t, StartingCoins, state.Balance)
	assert.Equal(t, 0, state.SpinCount)
	assert.Equal(t, []string{"❓", "❓", "❓", "❓", "❓"}, state.Reels)
}

func TestSpin_RewardTiers(t *testing.T) {
	tests := []struct {
		name        string
		rolls       []int
		wantMatch   int
		wantReward  int
		wantJackpot bool
		wantMessage string
	}{
		{
			name:        "no match pays nothing",
			rolls:       noMatchRolls,
			wantMatch:   1,
			wantReward:  0,
			wantMessage: MsgNoMatch,
		},
		{
			name:        "two of a kind",
			rolls:       []int{rollCherry, rollCherry, rollLemon, rollWatermelon, rollGrapes},
			wantMatch:   2,
			wantReward:  50,
			wantMessage: "🎉 2 match! You won +50 coins.",
		},
		{
			name:        "three of a kind",
			rolls:       []int{rollStar, rollLemon, rollStar, rollStar, rollGrapes},
			wantMatch:   3,
			wantReward:  150,
			wantMessage: "🎉 3 match! You won +150 coins.",
		},
		{
			name:        "four of a kind",
			rolls:       []int{rollGrapes, rollGrapes, rollGrapes, rollGrapes, rollCherry},
			wantMatch:   4,
			wantReward:  400,
			wantMessage: "🎉 4 match! You won +400 coins.",
		},
		{
			name:        "natural jackpot",
			rolls:       []int{rollStrawberry},
			wantMatch:   5,
			wantReward:  1000,
			wantJackpot: true,
			wantMessage: "🌟 JACKPOT! All 5 match → +1000 coins!",
		},
		{
			name:        "two pairs count as two",
			rolls:       []int{rollCherry, rollLemon, rollCherry, rollLemon, rollStar},
			wantMatch:   2,
			wantReward:  50,
			wantMessage: "🎉 2 match! You won +50 coins.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newTestEngine(tt.rolls...)
			state := e.NewState()

			outcome := e.Spin(state)

			require.True(t, outcome.Accepted)
			assert.Equal(t, tt.wantMatch, outcome.MatchCount)
			assert.Equal(t, tt.wantReward, outcome.Reward)
			assert.Equal(t, tt.wantJackpot, outcome.Jackpot)
			assert.False(t, outcome.ForcedJackpot)
			assert.Equal(t, SpinCost, outcome.Cost)
			assert.Equal(t, StartingCoins-SpinCost+tt.wantReward, state.Balance)
			assert.Equal(t, state.Balance, outcome.Balance)
			assert.Equal(t, 1, state.SpinCount)
			assert.Equal(t, tt.wantMessage, state.Message)
			assert.Equal(t, tt.wantMessage, outcome.Message)
			assert.Len(t, state.Reels, ReelCount)
			assert.Equal(t, state.Reels, outcome.Reels)
		})
	}
}

func TestSpin_ForcedJackpotScenario(t *testing.T) {
	e := newTestEngine(noMatchRolls...)
	state := e.NewState()

	for i := 1; i <= 6; i++ {
		outcome := e.Spin(state)
		require.True(t, outcome.Accepted)
		require.Equal(t, 0, outcome.Reward, "spin %d should not pay", i)
	}
	assert.Equal(t, 700, state.Balance)
	assert.Equal(t, 6, state.SpinCount)

	// seventh spin draws a single symbol: the cycle restarts at rollCherry
	outcome := e.Spin(state)

	assert.True(t, outcome.ForcedJackpot)
	assert.True(t, outcome.Jackpot)
	assert.Equal(t, ReelCount, outcome.MatchCount)
	assert.Equal(t, Rewards.Max(), outcome.Reward)
	assert.Equal(t, 1650, state.Balance)
	assert.Equal(t, 7, state.SpinCount)
	assert.Equal(t, []string{SymbolCherry, SymbolCherry, SymbolCherry, SymbolCherry, SymbolCherry}, state.Reels)
	assert.Equal(t, "🌟 JACKPOT! All 5 match → +1000 coins!", state.Message)
}

func TestSpin_ForcedJackpotDrawsOneSymbol(t *testing.T) {
	draws := 0
	rng := func(n int) int {
		draws++
		return rollDiamond(n)
	}
	e := NewEngine(DefaultRules(), rng)
	state := e.NewState()
	state.SpinCount = JackpotEvery - 1

	outcome := e.Spin(state)

	assert.Equal(t, 1, draws)
	assert.True(t, outcome.ForcedJackpot)
	for _, sym := range state.Reels {
		assert.Equal(t, SymbolDiamond, sym)
	}
}

func rollDiamond(int) int { return 21 }

func TestSpin_EveryCadenceMultipleIsForced(t *testing.T) {
	e := NewEngine(DefaultRules(), rand.New(rand.NewSource(7)).Intn)
	state := e.NewState()
	state.Balance = 1_000_000

	for i := 1; i <= JackpotEvery*5; i++ {
		outcome := e.Spin(state)
		require.True(t, outcome.Accepted)
		if i%JackpotEvery == 0 {
			assert.True(t, outcome.ForcedJackpot, "spin %d", i)
			assert.Equal(t, ReelCount, MatchCount(outcome.Reels))
			assert.Equal(t, Rewards.Max(), outcome.Reward)
		} else {
			assert.False(t, outcome.ForcedJackpot, "spin %d", i)
		}
	}
	assert.Equal(t, JackpotEvery*5, state.SpinCount)
}

func TestSpin_InsufficientFunds(t *testing.T) {
	e := newTestEngine(noMatchRolls...)
	state := e.NewState()
	state.Balance = 20
	state.SpinCount = 3
	state.Reels = []string{SymbolApple, SymbolKiwi, SymbolApple, SymbolKiwi, SymbolStar}

	before := state.Clone()
	outcome := e.Spin(state)

	assert.False(t, outcome.Accepted)
	assert.Equal(t, 20, state.Balance)
	assert.Equal(t, 3, state.SpinCount)
	assert.Equal(t, before.Reels, state.Reels)
	assert.Equal(t, MsgNotEnoughCoins, state.Message)
	assert.Equal(t, 0, outcome.Cost)
	assert.Equal(t, 0, outcome.Reward)
	assert.Equal(t, 20, outcome.Balance)
	assert.Equal(t, OutcomeRefused, Classify(outcome))
}

// Hosts reset by command or endpoint, not by a button.
func TestNotEnoughCoinsMessage(t *testing.T) {
	assert.Equal(t, "🚫 Not enough coins! Reset to start over.", MsgNotEnoughCoins)
}

func TestSpin_ExactCostIsAccepted(t *testing.T) {
	e := newTestEngine(noMatchRolls...)
	state := e.NewState()
	state.Balance = SpinCost

	outcome := e.Spin(state)

	assert.True(t, outcome.Accepted)
	assert.Equal(t, 0, state.Balance)

	// next spin is refused and the balance never goes negative
	outcome = e.Spin(state)
	assert.False(t, outcome.Accepted)
	assert.Equal(t, 0, state.Balance)
	assert.Equal(t, 1, state.SpinCount)
}

func TestSpin_BalanceEquation(t *testing.T) {
	e := NewEngine(DefaultRules(), rand.New(rand.NewSource(99)).Intn)
	state := e.NewState()

	for i := 0; i < 500; i++ {
		before := state.Clone()
		outcome := e.Spin(state)

		if before.Balance < SpinCost {
			assert.False(t, outcome.Accepted)
			assert.Equal(t, before.Balance, state.Balance)
			assert.Equal(t, before.SpinCount, state.SpinCount)
			e.Reset(state)
			continue
		}

		expectedReward := 0
		if outcome.MatchCount >= MinRewardMatch {
			expectedReward = Rewards.Reward(outcome.MatchCount)
		}
		assert.Equal(t, before.Balance-SpinCost+expectedReward, state.Balance)
		assert.Equal(t, before.SpinCount+1, state.SpinCount)
		assert.Equal(t, MatchCount(state.Reels), outcome.MatchCount)
		assert.Len(t, state.Reels, ReelCount)
		assert.GreaterOrEqual(t, state.Balance, 0)
	}
}

func TestReset(t *testing.T) {
	e := newTestEngine(rollCherry)
	state := e.NewState()

	for i := 0; i < 10; i++ {
		e.Spin(state)
	}
	require.NotEqual(t, StartingCoins, state.Balance)

	e.Reset(state)

	assert.Equal(t, StartingCoins, state.Balance)
	assert.Equal(t, 0, state.SpinCount)
	assert.Equal(t, []string{"❓", "❓", "❓", "❓", "❓"}, state.Reels)
	assert.Equal(t, MsgGameReset, state.Message)
}

func TestReset_AfterBankruptcy(t *testing.T) {
	e := newTestEngine(noMatchRolls...)
	state := &domain.GameState{Balance: 0, SpinCount: 42, Reels: []string{"x"}}

	e.Reset(state)

	assert.Equal(t, StartingCoins, state.Balance)
	assert.Equal(t, 0, state.SpinCount)
	assert.Len(t, state.Reels, ReelCount)
}

func TestRewardTable(t *testing.T) {
	assert.Equal(t, 0, Rewards.Reward(0))
	assert.Equal(t, 0, Rewards.Reward(1))
	assert.Equal(t, 50, Rewards.Reward(2))
	assert.Equal(t, 1000, Rewards.Reward(5))
	assert.Equal(t, 0, Rewards.Reward(6), "counts above the table fall back to zero")
	assert.Equal(t, 1000, Rewards.Max())
	assert.Equal(t, 0, RewardTable{}.Max())
}

func TestReward_GuardsBelowMinimum(t *testing.T) {
	rules := DefaultRules()
	rules.Rewards = RewardTable{1: 999, 2: 50}
	e := NewEngine(rules, scriptedRNG(noMatchRolls...))
	state := e.NewState()

	outcome := e.Spin(state)

	assert.Equal(t, 1, outcome.MatchCount)
	assert.Equal(t, 0, outcome.Reward, "a single symbol never pays even if configured")
}

func TestJackpotCadenceDisabled(t *testing.T) {
	rules := DefaultRules()
	rules.JackpotEvery = 0
	e := NewEngine(rules, scriptedRNG(noMatchRolls...))
	state := e.NewState()

	for i := 0; i < 14; i++ {
		outcome := e.Spin(state)
		assert.False(t, outcome.ForcedJackpot)
	}
}

func TestMatchCount(t *testing.T) {
	assert.Equal(t, 0, MatchCount(nil))
	assert.Equal(t, 1, MatchCount([]string{"a", "b", "c"}))
	assert.Equal(t, 3, MatchCount([]string{"a", "b", "a", "c", "a"}))
	assert.Equal(t, 2, MatchCount([]string{"a", "b", "b", "a"}))
}

func TestClassify(t *testing.T) {
	assert.Equal(t, OutcomeRefused, Classify(domain.SpinOutcome{}))
	assert.Equal(t, OutcomeNoMatch, Classify(domain.SpinOutcome{Accepted: true, MatchCount: 1}))
	assert.Equal(t, OutcomeMatch, Classify(domain.SpinOutcome{Accepted: true, MatchCount: 3, Reward: 150}))
	assert.Equal(t, OutcomeJackpot, Classify(domain.SpinOutcome{Accepted: true, MatchCount: 5, Reward: 1000, Jackpot: true}))
}

func TestPaytable(t *testing.T) {
	e := NewEngine(DefaultRules(), nil)
	pt := e.Paytable()

	require.Len(t, pt.Symbols, len(SymbolOrder))
	assert.Equal(t, SymbolCherry, pt.Symbols[0].Symbol)
	assert.Equal(t, 5, pt.Symbols[0].Weight)
	assert.InDelta(t, 5.0/29.0, pt.Symbols[0].Probability, 1e-9)
	assert.Equal(t, SpinCost, pt.SpinCost)
	assert.Equal(t, JackpotEvery, pt.JackpotEvery)
	assert.Equal(t, 1000, pt.Rewards[5])

	// mutating the copy leaves the engine untouched
	pt.Rewards[5] = 1
	assert.Equal(t, 1000, e.Rules().Rewards[5])
}

func TestUnforcedSymbolFrequencies(t *testing.T) {
	rules := DefaultRules()
	rules.JackpotEvery = 0
	e := NewEngine(rules, rand.New(rand.NewSource(2024)).Intn)
	state := e.NewState()

	const spins = 40000
	counts := make(map[string]int)
	for i := 0; i < spins; i++ {
		state.Balance = StartingCoins
		outcome := e.Spin(state)
		for _, sym := range outcome.Reels {
			counts[sym]++
		}
	}

	total := float64(spins * ReelCount)
	for i, sym := range SymbolOrder {
		expected := float64(SymbolWeights[i]) / 29.0
		observed := float64(counts[sym]) / total
		assert.InDelta(t, expected, observed, 0.01, fmt.Sprintf("symbol %s", sym))
	}
}

func BenchmarkSpin(b *testing.B) {
	e := NewEngine(DefaultRules(), rand.New(rand.NewSource(1)).Intn)
	state := e.NewState()
	state.Balance = 1 << 40

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		e.Spin(state)
	}
}
