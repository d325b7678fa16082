// Package spectral provides power spectral density estimation.
package spectral

import (
	"errors"
	"fmt"

	"github.com/mjibson/go-dsp/fft"
	dsp "github.com/mjibson/go-dsp/spectral"
)

// ErrUnknownMethod reports a PSD estimation method outside {fft, welch}.
var ErrUnknownMethod = errors.New("unknown spectral estimation method")

// Method represents the PSD estimation method
type Method int

const (
	// Periodogram estimates the PSD from a single full-length FFT
	Periodogram Method = iota

	// Welch estimates the PSD by averaging windowed, overlapping segments
	Welch
)

func (m Method) String() string {
	switch m {
	case Periodogram:
		return "fft"
	case Welch:
		return "welch"
	default:
		return "unknown"
	}
}

// ParseMethod maps the public method names to a Method.
// Valid names are "fft" (periodogram) and "welch".
func ParseMethod(name string) (Method, error) {
	switch name {
	case "fft":
		return Periodogram, nil
	case "welch":
		return Welch, nil
	default:
		return 0, fmt.Errorf("%w: %q (valid methods: fft, welch)", ErrUnknownMethod, name)
	}
}

// DefaultNperseg is the Welch segment length used when none is given
const DefaultNperseg = 256

// Estimator computes one-sided power spectral densities of real sequences
type Estimator struct {
	sampleRate float64
	method     Method
	nperseg    int
}

// NewEstimator creates a PSD estimator. nperseg only applies to the Welch
// method; zero selects DefaultNperseg.
func NewEstimator(sampleRate float64, method Method, nperseg int) (*Estimator, error) {
	if sampleRate <= 0 {
		return nil, fmt.Errorf("sampling rate must be positive, got %g", sampleRate)
	}
	if method != Periodogram && method != Welch {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, method)
	}
	if nperseg < 0 {
		return nil, fmt.Errorf("nperseg must be >= 0, got %d", nperseg)
	}

	return &Estimator{
		sampleRate: sampleRate,
		method:     method,
		nperseg:    nperseg,
	}, nil
}

// PSD returns the one-sided power spectral density of x, one value per
// frequency bin from DC to Nyquist.
func (e *Estimator) PSD(x []float64) ([]float64, error) {
	if len(x) < 2 {
		return nil, fmt.Errorf("sequence of length %d is too short for spectral estimation", len(x))
	}

	switch e.method {
	case Periodogram:
		return e.periodogram(x), nil
	case Welch:
		return e.welch(x), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, e.method)
	}
}

// periodogram computes the density-scaled one-sided periodogram over the full
// sequence (rectangular window) using mjibson/go-dsp for the FFT.
func (e *Estimator) periodogram(x []float64) []float64 {
	n := len(x)
	spectrum := fft.FFTReal(x)

	nfreq := n/2 + 1
	psd := make([]float64, nfreq)
	scale := 1.0 / (e.sampleRate * float64(n))

	for k := 0; k < nfreq; k++ {
		re := real(spectrum[k])
		im := imag(spectrum[k])
		p := (re*re + im*im) * scale
		// One-sided spectrum: interior bins carry the energy of both
		// the positive and negative frequency. DC never doubles, and
		// the last bin is the Nyquist bin only for even n.
		if k > 0 && !(n%2 == 0 && k == nfreq-1) {
			p *= 2
		}
		psd[k] = p
	}

	return psd
}

// welch computes Welch's averaged periodogram with 50% segment overlap and
// the estimator default (Hann) window.
func (e *Estimator) welch(x []float64) []float64 {
	nperseg := e.nperseg
	if nperseg <= 0 {
		nperseg = DefaultNperseg
	}
	if nperseg > len(x) {
		nperseg = len(x)
	}

	psd, _ := dsp.Pwelch(x, e.sampleRate, &dsp.PwelchOptions{
		NFFT:     nperseg,
		Noverlap: nperseg / 2,
	})

	return psd
}
