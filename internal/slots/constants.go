package slots

// Symbol constants
const (
	SymbolCherry     = "🍒"
	SymbolLemon      = "🍋"
	SymbolWatermelon = "🍉"
	SymbolGrapes     = "🍇"
	SymbolStar       = "⭐"
	SymbolDiamond    = "💎"
	SymbolKiwi       = "🥝"
	SymbolPineapple  = "🍍"
	SymbolApple      = "🍎"
	SymbolStrawberry = "🍓"

	// PlaceholderSymbol fills the reels before the first spin and after a reset
	PlaceholderSymbol = "❓"
)

// Game constants
const (
	ReelCount     = 5
	SpinCost      = 50
	StartingCoins = 1000
	JackpotEvery  = 7 // Every 7th accepted spin is a forced jackpot

	// MinRewardMatch is the smallest match count that can pay out
	MinRewardMatch = 2
)

// SymbolOrder is the symbol table order; weights line up by index
var SymbolOrder = []string{
	SymbolCherry,
	SymbolLemon,
	SymbolWatermelon,
	SymbolGrapes,
	SymbolStar,
	SymbolDiamond,
	SymbolKiwi,
	SymbolPineapple,
	SymbolApple,
	SymbolStrawberry,
}

// SymbolWeights for weighted random selection (out of 29)
var SymbolWeights = []int{
	5, // 🍒 ~17.2%
	5, // 🍋 ~17.2%
	4, // 🍉 ~13.8%
	4, // 🍇 ~13.8%
	3, // ⭐ ~10.3%
	2, // 💎 ~6.9%
	2, // 🥝 ~6.9%
	2, // 🍍 ~6.9%
	1, // 🍎 ~3.4%
	1, // 🍓 ~3.4%
}

// Rewards maps match count to coins won
var Rewards = RewardTable{
	2: 50,
	3: 150,
	4: 400,
	5: 1000,
}

// User-facing status messages
const (
	MsgNotEnoughCoins = "🚫 Not enough coins! Reset to start over."
	MsgJackpotFormat  = "🌟 JACKPOT! All %d match → +%d coins!"
	MsgMatchFormat    = "🎉 %d match! You won +%d coins."
	MsgNoMatch        = "😢 No match. Better luck next time!"
	MsgGameReset      = "🔄 Game reset. Good luck!"
)

// Outcome labels for metrics and logs
const (
	OutcomeRefused = "refused"
	OutcomeNoMatch = "no_match"
	OutcomeMatch   = "match"
	OutcomeJackpot = "jackpot"
)
