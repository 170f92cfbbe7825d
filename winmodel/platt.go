package winmodel

import "math"

// plattScaler holds the two parameters of Platt's sigmoid post-fit:
// calibrated probability = 1 / (1 + exp(A*f + B)), where f is the
// underlying classifier's raw decision score.
type plattScaler struct {
	A float64
	B float64
}

func identityPlatt() *plattScaler {
	// A=-1, B=0 reduces to sigmoid(f), a neutral fallback if fitting
	// ever receives degenerate input.
	return &plattScaler{A: -1, B: 0}
}

// Transform maps a raw score to a calibrated probability in (0, 1).
func (p *plattScaler) Transform(rawScore float64) float64 {
	if p == nil {
		p = identityPlatt()
	}
	return 1.0 / (1.0 + math.Exp(p.A*rawScore+p.B))
}

// fitPlatt implements Platt's 1999 algorithm: Newton's method with
// backtracking line search on the regularized negative log-likelihood,
// using the target-smoothing priors from the paper (t=1/(N-+2) for
// negatives, t=(N++1)/(N++2) for positives) to avoid overfitting the
// calibration curve to a finite validation fold. gonum ships no
// ready-made Platt scaler, so the optimization itself is hand-rolled;
// gonum/stat is used by the caller (metrics.go) for the surrounding
// diagnostics instead.
func fitPlatt(scores, labels []float64) *plattScaler {
	n := len(scores)
	if n == 0 {
		return identityPlatt()
	}

	var nPos, nNeg float64
	for _, y := range labels {
		if y > 0.5 {
			nPos++
		} else {
			nNeg++
		}
	}
	if nPos == 0 || nNeg == 0 {
		return identityPlatt()
	}

	hiTarget := (nPos + 1.0) / (nPos + 2.0)
	loTarget := 1.0 / (nNeg + 2.0)

	t := make([]float64, n)
	for i, y := range labels {
		if y > 0.5 {
			t[i] = hiTarget
		} else {
			t[i] = loTarget
		}
	}

	A, B := 0.0, math.Log((nNeg+1.0)/(nPos+1.0))

	const (
		maxIters = 100
		minStep  = 1e-10
		sigma    = 1e-12
	)

	fApB := make([]float64, n)
	fval := negLogLikelihood(scores, t, A, B, fApB)

	for iter := 0; iter < maxIters; iter++ {
		var h11, h22, h21, g1, g2 float64
		h11, h22 = sigma, sigma
		for i := 0; i < n; i++ {
			fApB[i] = scores[i]*A + B
			var p, q float64
			if fApB[i] >= 0 {
				p = math.Exp(-fApB[i]) / (1.0 + math.Exp(-fApB[i]))
				q = 1.0 / (1.0 + math.Exp(-fApB[i]))
			} else {
				p = 1.0 / (1.0 + math.Exp(fApB[i]))
				q = math.Exp(fApB[i]) / (1.0 + math.Exp(fApB[i]))
			}
			d2 := p * q
			h11 += scores[i] * scores[i] * d2
			h22 += d2
			h21 += scores[i] * d2
			d1 := t[i] - p
			g1 += scores[i] * d1
			g2 += d1
		}
		if math.Abs(g1) < 1e-5 && math.Abs(g2) < 1e-5 {
			break
		}

		det := h11*h22 - h21*h21
		if det == 0 {
			break
		}
		dA := (h22*g1 - h21*g2) / det
		dB := (h11*g2 - h21*g1) / det
		gd := g1*dA + g2*dB

		stepSize := 1.0
		for stepSize >= minStep {
			newA := A + stepSize*dA
			newB := B + stepSize*dB
			newF := negLogLikelihood(scores, t, newA, newB, fApB)
			if newF < fval+1e-4*stepSize*gd {
				A, B, fval = newA, newB, newF
				break
			}
			stepSize /= 2
		}
		if stepSize < minStep {
			break
		}
	}

	return &plattScaler{A: A, B: B}
}

func negLogLikelihood(scores, t []float64, A, B float64, scratch []float64) float64 {
	var sum float64
	for i := range scores {
		fApB := scores[i]*A + B
		scratch[i] = fApB
		if fApB >= 0 {
			sum += t[i]*fApB + math.Log(1+math.Exp(-fApB))
		} else {
			sum += (t[i]-1)*fApB + math.Log(1+math.Exp(fApB))
		}
	}
	return sum
}
