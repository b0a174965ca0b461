package formatter

import "github.com/shopspring/decimal"

type RatingTier int

const (
	RatingPoor RatingTier = iota
	RatingGood
	RatingExcellent
)

var (
	excellentFrom = decimal.RequireFromString("4.5")
	goodFrom      = decimal.RequireFromString("4.0")
)

func TierOf(rating decimal.Decimal) RatingTier {
	switch {
	case rating.GreaterThanOrEqual(excellentFrom):
		return RatingExcellent
	case rating.GreaterThanOrEqual(goodFrom):
		return RatingGood
	default:
		return RatingPoor
	}
}

func (t RatingTier) String() string {
	switch t {
	case RatingExcellent:
		return "excellent"
	case RatingGood:
		return "good"
	default:
		return "poor"
	}
}
