package model

// SignalLevel is the buy/sell verdict for one coin.
type SignalLevel string

const (
	LevelStrongBuy  SignalLevel = "STRONG BUY"
	LevelBuy        SignalLevel = "BUY"
	LevelNeutral    SignalLevel = "NEUTRAL"
	LevelSell       SignalLevel = "SELL"
	LevelStrongSell SignalLevel = "STRONG SELL"
	LevelWarmingUp  SignalLevel = "Warming Up"
)

// RSISet holds the RSI(14) value per timeframe. Timeframes with too little
// data reuse the 1m value.
type RSISet struct {
	Min1  float64
	Min5  float64
	Min15 float64
	Hour1 float64
}

// CoinSignal is the scoring output for one coin.
type CoinSignal struct {
	Symbol     string
	Score      int
	Prob       int
	Level      SignalLevel
	ColorClass string
	Reasons    []string
	RSI        RSISet
}
