package entity

// Weights - evaluation weights. Positive evaluations favor Player2, negative favor Player1.
type Weights struct {
	ScoreScale  float64 `json:"scoreScale"`
	P1ThreatVal float64 `json:"p1ThreatVal"`
	P2ThreatVal float64 `json:"p2ThreatVal"`
	P1DoubleVal float64 `json:"p1DoubleVal"`
	P2DoubleVal float64 `json:"p2DoubleVal"`
}

// DefaultWeights - weights used for every option a caller leaves unset.
// Double setups default to 0, which is the simple evaluator.
func DefaultWeights() Weights {
	return Weights{
		ScoreScale:  200,
		P1ThreatVal: 40,
		P2ThreatVal: -40,
		P1DoubleVal: 0,
		P2DoubleVal: 0,
	}
}

// WeightOverrides - weights as received from clients, nil fields keep the base value.
type WeightOverrides struct {
	ScoreScale  *float64 `json:"scoreScale,omitempty"`
	P1ThreatVal *float64 `json:"p1ThreatVal,omitempty"`
	P2ThreatVal *float64 `json:"p2ThreatVal,omitempty"`
	P1DoubleVal *float64 `json:"p1DoubleVal,omitempty"`
	P2DoubleVal *float64 `json:"p2DoubleVal,omitempty"`
}

func (that *WeightOverrides) Apply(base Weights) Weights {
	if that == nil {
		return base
	}

	set := func(dst *float64, src *float64) {
		if src != nil {
			*dst = *src
		}
	}

	set(&base.ScoreScale, that.ScoreScale)
	set(&base.P1ThreatVal, that.P1ThreatVal)
	set(&base.P2ThreatVal, that.P2ThreatVal)
	set(&base.P1DoubleVal, that.P1DoubleVal)
	set(&base.P2DoubleVal, that.P2DoubleVal)

	return base
}
