package engine

import "alpha-trade-tracker/internal/types"

// scoreTable is the venue's volume score ladder: tier k needs 2^k of buy
// volume and awards k points, up to 2^27.
var scoreTable = buildScoreTable()

func buildScoreTable() []types.Tier {
	tiers := make([]types.Tier, 0, 27)
	volume := 2.0
	for k := 1; k <= 27; k++ {
		tiers = append(tiers, types.Tier{Volume: volume, Score: k})
		volume *= 2
	}
	return tiers
}

// ScoreFor looks up the step-function score for a cumulative buy volume.
// CurrentTier is the highest tier reached (nil below the first step),
// NextTier the lowest tier still above the volume (nil at the top), and
// Gap the volume missing to the next tier.
func ScoreFor(totalBuyVolume float64) types.TierScore {
	res := types.TierScore{}
	for i := range scoreTable {
		if totalBuyVolume >= scoreTable[i].Volume {
			tier := scoreTable[i]
			res.Score = tier.Score
			res.CurrentTier = &tier
		} else {
			tier := scoreTable[i]
			res.NextTier = &tier
			break
		}
	}
	if res.NextTier != nil {
		res.Gap = res.NextTier.Volume - totalBuyVolume
	}
	return res
}
