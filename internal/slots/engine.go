package slots

import (
	"fmt"

	"github.com/osse101/FunSlots_Go/internal/domain"
	"github.com/osse101/FunSlots_Go/internal/utils"
)

// Engine resolves spins and resets against a caller-owned GameState.
// The engine keeps no per-player state, so one engine can serve many
// sessions as long as its rng is safe for concurrent use.
type Engine struct {
	rules Rules
	rng   func(int) int // Injectable for testing; returns [0, n)
}

// NewEngine creates an engine with the given rules. A nil rng uses crypto/rand.
func NewEngine(rules Rules, rng func(int) int) *Engine {
	if rng == nil {
		rng = utils.SecureIntn
	}
	return &Engine{
		rules: rules,
		rng:   rng,
	}
}

// Rules returns the engine configuration
func (e *Engine) Rules() Rules {
	return e.rules
}

// NewState returns a GameState with the starting balance and placeholder reels
func (e *Engine) NewState() *domain.GameState {
	return &domain.GameState{
		Balance:   e.rules.StartingCoins,
		Reels:     e.rules.placeholders(),
		SpinCount: 0,
		Message:   "",
	}
}

// Spin takes one spin for state. A spin the balance cannot cover is refused:
// only the message changes and the outcome is returned with Accepted=false.
func (e *Engine) Spin(state *domain.GameState) domain.SpinOutcome {
	if state.Balance < e.rules.SpinCost {
		state.Message = MsgNotEnoughCoins
		return domain.SpinOutcome{
			Accepted:  false,
			Reels:     append([]string(nil), state.Reels...),
			Balance:   state.Balance,
			SpinCount: state.SpinCount,
			Message:   state.Message,
		}
	}

	balance := state.Balance - e.rules.SpinCost
	spinCount := state.SpinCount + 1

	var reels []string
	var matchCount int
	forced := e.rules.isForcedJackpot(spinCount)
	if forced {
		reels = e.fillReels(e.rules.Symbols.Pick(e.rng))
		matchCount = e.rules.ReelCount
	} else {
		reels = e.drawReels()
		matchCount = MatchCount(reels)
	}

	reward := e.reward(matchCount)
	balance += reward
	jackpot := matchCount == e.rules.ReelCount

	state.Balance = balance
	state.Reels = reels
	state.SpinCount = spinCount
	state.Message = e.formatMessage(matchCount, reward)

	return domain.SpinOutcome{
		Accepted:      true,
		Reels:         append([]string(nil), reels...),
		MatchCount:    matchCount,
		Cost:          e.rules.SpinCost,
		Reward:        reward,
		Jackpot:       jackpot,
		ForcedJackpot: forced,
		Balance:       balance,
		SpinCount:     spinCount,
		Message:       state.Message,
	}
}

// Reset restores state to the starting values
func (e *Engine) Reset(state *domain.GameState) {
	state.Balance = e.rules.StartingCoins
	state.Reels = e.rules.placeholders()
	state.SpinCount = 0
	state.Message = MsgGameReset
}

// Paytable describes the machine for clients
func (e *Engine) Paytable() domain.Paytable {
	symbols := e.rules.Symbols.Items()
	weights := e.rules.Symbols.Weights()

	odds := make([]domain.SymbolOdds, len(symbols))
	for i, sym := range symbols {
		odds[i] = domain.SymbolOdds{
			Symbol:      sym,
			Weight:      weights[i],
			Probability: e.rules.Symbols.Probability(i),
		}
	}

	rewards := make(map[int]int, len(e.rules.Rewards))
	for count, reward := range e.rules.Rewards {
		rewards[count] = reward
	}

	return domain.Paytable{
		Symbols:       odds,
		Rewards:       rewards,
		ReelCount:     e.rules.ReelCount,
		SpinCost:      e.rules.SpinCost,
		StartingCoins: e.rules.StartingCoins,
		JackpotEvery:  e.rules.JackpotEvery,
	}
}

// drawReels draws every reel independently, with replacement
func (e *Engine) drawReels() []string {
	reels := make([]string, e.rules.ReelCount)
	for i := range reels {
		reels[i] = e.rules.Symbols.Pick(e.rng)
	}
	return reels
}

func (e *Engine) fillReels(symbol string) []string {
	reels := make([]string, e.rules.ReelCount)
	for i := range reels {
		reels[i] = symbol
	}
	return reels
}

// reward applies the minimum-match guard before the table lookup
func (e *Engine) reward(matchCount int) int {
	if matchCount < MinRewardMatch {
		return 0
	}
	return e.rules.Rewards.Reward(matchCount)
}

func (e *Engine) formatMessage(matchCount, reward int) string {
	switch {
	case matchCount < MinRewardMatch:
		return MsgNoMatch
	case matchCount == e.rules.ReelCount:
		return fmt.Sprintf(MsgJackpotFormat, matchCount, reward)
	default:
		return fmt.Sprintf(MsgMatchFormat, matchCount, reward)
	}
}

// MatchCount returns the size of the largest group of identical symbols
func MatchCount(reels []string) int {
	counts := make(map[string]int, len(reels))
	best := 0
	for _, sym := range reels {
		counts[sym]++
		if counts[sym] > best {
			best = counts[sym]
		}
	}
	return best
}

// Classify labels an outcome for metrics and logs
func Classify(outcome domain.SpinOutcome) string {
	switch {
	case !outcome.Accepted:
		return OutcomeRefused
	case outcome.Jackpot:
		return OutcomeJackpot
	case outcome.Reward > 0:
		return OutcomeMatch
	default:
		return OutcomeNoMatch
	}
}
