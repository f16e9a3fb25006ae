package domain

// GameState is one player's slot machine state for the life of a session.
// It is owned by exactly one session and mutated only by spin and reset.
type GameState struct {
	Balance   int      `json:"balance"`    // Coins available
	Reels     []string `json:"reels"`      // Most recent outcome, always ReelCount symbols
	SpinCount int      `json:"spin_count"` // Accepted spins since the last reset
	Message   string   `json:"message"`    // Status text for the last action
}

// Clone returns a deep copy safe to hand outside the owning session.
func (s *GameState) Clone() GameState {
	return GameState{
		Balance:   s.Balance,
		Reels:     append([]string(nil), s.Reels...),
		SpinCount: s.SpinCount,
		Message:   s.Message,
	}
}

// SpinOutcome describes what a single spin request did
type SpinOutcome struct {
	Accepted      bool     `json:"accepted"`       // False when refused for insufficient funds
	Reels         []string `json:"reels"`          // Drawn symbols (current reels if refused)
	MatchCount    int      `json:"match_count"`    // Largest group of identical symbols
	Cost          int      `json:"cost"`           // Coins deducted
	Reward        int      `json:"reward"`         // Coins awarded
	Jackpot       bool     `json:"jackpot"`        // All reels match
	ForcedJackpot bool     `json:"forced_jackpot"` // Outcome set by the jackpot cadence
	Balance       int      `json:"balance"`        // Balance after the spin
	SpinCount     int      `json:"spin_count"`     // Spin count after the spin
	Message       string   `json:"message"`        // User-facing result text
}

// Net returns the balance change caused by the spin
func (o SpinOutcome) Net() int {
	return o.Reward - o.Cost
}

// Paytable exposes the fixed game configuration to clients
type Paytable struct {
	Symbols       []SymbolOdds `json:"symbols"`
	Rewards       map[int]int  `json:"rewards"`
	ReelCount     int          `json:"reel_count"`
	SpinCost      int          `json:"spin_cost"`
	StartingCoins int          `json:"starting_coins"`
	JackpotEvery  int          `json:"jackpot_every"`
}

// SymbolOdds is one row of the symbol table
type SymbolOdds struct {
	Symbol      string  `json:"symbol"`
	Weight      int     `json:"weight"`
	Probability float64 `json:"probability"`
}
