package agents

import (
	"math/rand"
	"sync"

	"github.com/MKhiriev/refgame/models"
	"gonum.org/v1/gonum/mat"
)

// DenseListener is the learned listener policy: a bilinear scorer. The
// message is embedded as a bag-of-symbols count vector m over the alphabet,
// each candidate c_i is scored as mᵀ·W·c_i, and the choice distribution is
// the softmax over scores.
//
// The single weight matrix keeps the REINFORCE gradient closed-form:
//
//	∇W log p(choice) = m ⊗ (c_choice − Σ_i p_i·c_i)
//
// scaled by the round reward.
type DenseListener struct {
	inputDim int
	channel  models.ChannelSpec
	lr       float64

	w *mat.Dense // alphabet × input

	mu  sync.Mutex
	rng *rand.Rand
}

// NewDenseListener constructs a DenseListener with Xavier-scaled random
// initial weights.
func NewDenseListener(inputDim int, channel models.ChannelSpec, lr float64, seed int64) (*DenseListener, error) {
	if inputDim < 1 || channel.AlphabetSize < 2 {
		return nil, ErrInvalidPolicyShape
	}

	rng := rand.New(rand.NewSource(seed + 3))

	return &DenseListener{
		inputDim: inputDim,
		channel:  channel,
		lr:       lr,
		w:        randomDense(rng, channel.AlphabetSize, inputDim),
		rng:      rng,
	}, nil
}

// messageVector embeds a message as symbol counts over the alphabet.
func (l *DenseListener) messageVector(message models.Message) (*mat.VecDense, error) {
	m := mat.NewVecDense(l.channel.AlphabetSize, nil)
	for _, symbol := range message.Symbols {
		if symbol < 0 || symbol >= l.channel.AlphabetSize {
			return nil, ErrDimensionMismatch
		}
		m.SetVec(symbol, m.AtVec(symbol)+1)
	}
	return m, nil
}

// forward returns the choice distribution over candidates for a message.
func (l *DenseListener) forward(message models.Message, candidates [][]float64) ([]float64, *mat.VecDense, error) {
	if len(candidates) == 0 {
		return nil, nil, ErrNoCandidates
	}

	m, err := l.messageVector(message)
	if err != nil {
		return nil, nil, err
	}

	// u = Wᵀ·m, then score_i = u·c_i
	u := mat.NewVecDense(l.inputDim, nil)
	u.MulVec(l.w.T(), m)

	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		if len(c) != l.inputDim {
			return nil, nil, ErrDimensionMismatch
		}
		scores[i] = mat.Dot(u, mat.NewVecDense(l.inputDim, c))
	}

	return softmax(scores), m, nil
}

// Sample implements [Listener].
func (l *DenseListener) Sample(message models.Message, candidates [][]float64) (int, error) {
	probs, _, err := l.forward(message, candidates)
	if err != nil {
		return 0, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	return sampleIndex(l.rng, probs), nil
}

// Infer implements [Listener]: greedy argmax over the choice distribution.
func (l *DenseListener) Infer(message models.Message, candidates [][]float64) (int, error) {
	probs, _, err := l.forward(message, candidates)
	if err != nil {
		return 0, err
	}
	return argmax(probs), nil
}

// Train implements [Listener]: one REINFORCE ascent step from the batch.
func (l *DenseListener) Train(batch []Experience) error {
	if len(batch) == 0 {
		return nil
	}

	grad := mat.NewDense(l.channel.AlphabetSize, l.inputDim, nil)

	for _, exp := range batch {
		if exp.Reward == 0 {
			continue
		}

		probs, m, err := l.forward(exp.Message, exp.Candidates)
		if err != nil {
			return err
		}
		if exp.Choice < 0 || exp.Choice >= len(exp.Candidates) {
			return ErrNoCandidates
		}

		// diff = c_choice − Σ_i p_i·c_i
		diff := mat.NewVecDense(l.inputDim, nil)
		diff.CopyVec(mat.NewVecDense(l.inputDim, exp.Candidates[exp.Choice]))
		for i, c := range exp.Candidates {
			diff.AddScaledVec(diff, -probs[i], mat.NewVecDense(l.inputDim, c))
		}

		grad.RankOne(grad, exp.Reward, m, diff)
	}

	grad.Scale(l.lr/float64(len(batch)), grad)
	l.w.Add(l.w, grad)

	return nil
}
