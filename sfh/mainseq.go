package sfh

import (
	"fmt"
	"math"
)

// umBestFit holds the UniverseMachine best-fit coefficients for the median
// main-sequence SFR as a function of vmax and redshift.
// See https://arxiv.org/abs/1806.07893, Eqs. 4-11.
type umBestFit struct {
	logV0, logVa, logVlnz, logVz             float64
	alpha0, alphaA, alphaLnz, alphaZ         float64
	beta0, betaA, betaZ                      float64
	gamma0, gammaA, gammaZ                   float64
	delta0                                   float64
	epsilon0, epsilonA, epsilonLnz, epsilonZ float64
}

var umBestFitParams = umBestFit{
	logV0: 2.151, logVa: -1.658, logVlnz: 1.68, logVz: -0.233,
	alpha0: -5.598, alphaA: -20.731, alphaLnz: 13.455, alphaZ: -1.321,
	beta0: -1.911, betaA: 0.395, betaZ: 0.747,
	gamma0: -1.699, gammaA: 4.206, gammaZ: -0.809,
	delta0:   0.055,
	epsilon0: 0.109, epsilonA: -3.441, epsilonLnz: 5.079, epsilonZ: -0.781,
}

// MeanSFRVsVmaxRedshift evaluates the median main-sequence SFR, in Msun/yr,
// for halos with maximum circular velocity vmax (km/s) at the given
// redshifts. A closed-form empirical fit: a peripheral convenience with no
// connection to the integration pipeline.
func MeanSFRVsVmaxRedshift(vmax, redshift []float64) ([]float64, error) {
	if len(vmax) != len(redshift) {
		return nil, fmt.Errorf("mismatched lengths: %d vmax values vs %d redshifts", len(vmax), len(redshift))
	}
	out := make([]float64, len(vmax))
	for i := range vmax {
		out[i] = meanSFRVsVmaxRedshift(vmax[i], redshift[i])
	}
	return out, nil
}

func meanSFRVsVmaxRedshift(vmax, z float64) float64 {
	c := umBestFitParams
	a := 1 / (1 + z)

	logV := c.logV0 + c.logVa*(1-a) + c.logVlnz*math.Log(1+z) + c.logVz*z
	v := vmax / math.Pow(10, logV)

	alpha := c.alpha0 + c.alphaA*(1-a) + c.alphaLnz*math.Log(1+z) + c.alphaZ*z
	beta := c.beta0 + c.betaA*(1-a) + c.betaZ*z
	term1 := 1 / (math.Pow(v, alpha) + math.Pow(v, beta))

	logv := math.Log10(v)
	logGamma := c.gamma0 + c.gammaA*(1-a) + c.gammaZ*z
	term2 := math.Pow(10, logGamma) * math.Exp(-logv*logv/(2*c.delta0))

	logEps := c.epsilon0 + c.epsilonA*(1-a) + c.epsilonLnz*math.Log(1+z) + c.epsilonZ*z
	return math.Pow(10, logEps) * (term1 + term2)
}
