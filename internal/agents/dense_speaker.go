package agents

import (
	"math/rand"
	"sync"

	"github.com/MKhiriev/refgame/models"
	"gonum.org/v1/gonum/mat"
)

// DenseSpeaker is the learned speaker policy: a fully connected network with
// one ReLU hidden layer and a softmax readout over the alphabet. A message
// is produced by drawing MaxMessageLength symbols from the readout
// distribution conditioned on the target.
//
// Training is plain REINFORCE over batches: for every emitted symbol the
// log-likelihood gradient is scaled by the round reward and applied as an
// ascent step. Weights are only mutated in Train, so Sample and Infer read a
// frozen network between updates.
type DenseSpeaker struct {
	inputDim  int
	hiddenDim int
	channel   models.ChannelSpec
	lr        float64

	w1 *mat.Dense    // hidden × input
	b1 *mat.VecDense // hidden
	w2 *mat.Dense    // alphabet × hidden
	b2 *mat.VecDense // alphabet

	mu  sync.Mutex
	rng *rand.Rand
}

// NewDenseSpeaker constructs a DenseSpeaker with Xavier-scaled random
// initial weights.
func NewDenseSpeaker(inputDim, hiddenDim int, channel models.ChannelSpec, lr float64, seed int64) (*DenseSpeaker, error) {
	if inputDim < 1 || hiddenDim < 1 || channel.AlphabetSize < 2 || channel.MaxMessageLength < 1 {
		return nil, ErrInvalidPolicyShape
	}

	rng := rand.New(rand.NewSource(seed + 2))

	s := &DenseSpeaker{
		inputDim:  inputDim,
		hiddenDim: hiddenDim,
		channel:   channel,
		lr:        lr,
		w1:        randomDense(rng, hiddenDim, inputDim),
		b1:        mat.NewVecDense(hiddenDim, nil),
		w2:        randomDense(rng, channel.AlphabetSize, hiddenDim),
		b2:        mat.NewVecDense(channel.AlphabetSize, nil),
		rng:       rng,
	}

	return s, nil
}

func randomDense(rng *rand.Rand, rows, cols int) *mat.Dense {
	data := make([]float64, rows*cols)
	scale := xavierScale(cols)
	for i := range data {
		data[i] = rng.NormFloat64() * scale
	}
	return mat.NewDense(rows, cols, data)
}

// forward runs the network for one target and returns the hidden activation
// and the symbol distribution.
func (s *DenseSpeaker) forward(target []float64) (*mat.VecDense, []float64, error) {
	if len(target) != s.inputDim {
		return nil, nil, ErrDimensionMismatch
	}

	x := mat.NewVecDense(s.inputDim, target)

	h := mat.NewVecDense(s.hiddenDim, nil)
	h.MulVec(s.w1, x)
	h.AddVec(h, s.b1)
	relu(h.RawVector().Data)

	logits := mat.NewVecDense(s.channel.AlphabetSize, nil)
	logits.MulVec(s.w2, h)
	logits.AddVec(logits, s.b2)

	return h, softmax(logits.RawVector().Data), nil
}

// Sample implements [Speaker]: MaxMessageLength symbols drawn independently
// from the softmax readout.
func (s *DenseSpeaker) Sample(target []float64) (models.Message, error) {
	_, probs, err := s.forward(target)
	if err != nil {
		return models.Message{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	symbols := make([]int, s.channel.MaxMessageLength)
	for i := range symbols {
		symbols[i] = sampleIndex(s.rng, probs)
	}

	return models.Message{Symbols: symbols}, nil
}

// Infer implements [Speaker]: the greedy readout emits the MaxMessageLength
// most probable symbols in descending probability order.
func (s *DenseSpeaker) Infer(target []float64) (models.Message, error) {
	_, probs, err := s.forward(target)
	if err != nil {
		return models.Message{}, err
	}

	return models.Message{Symbols: topIndices(probs, s.channel.MaxMessageLength)}, nil
}

// Train implements [Speaker]: one REINFORCE ascent step from the batch.
// Rounds with zero reward contribute nothing, so the whole batch being
// unrewarded leaves the policy untouched.
func (s *DenseSpeaker) Train(batch []Experience) error {
	if len(batch) == 0 {
		return nil
	}

	gw1 := mat.NewDense(s.hiddenDim, s.inputDim, nil)
	gb1 := mat.NewVecDense(s.hiddenDim, nil)
	gw2 := mat.NewDense(s.channel.AlphabetSize, s.hiddenDim, nil)
	gb2 := mat.NewVecDense(s.channel.AlphabetSize, nil)

	for _, exp := range batch {
		if exp.Reward == 0 {
			continue
		}

		h, probs, err := s.forward(exp.Target)
		if err != nil {
			return err
		}
		x := mat.NewVecDense(s.inputDim, exp.Target)

		for _, symbol := range exp.Message.Symbols {
			// d log p(symbol) / d logits = onehot(symbol) - probs
			dlogits := mat.NewVecDense(s.channel.AlphabetSize, nil)
			for i := range probs {
				dlogits.SetVec(i, -exp.Reward*probs[i])
			}
			dlogits.SetVec(symbol, dlogits.AtVec(symbol)+exp.Reward)

			gw2.RankOne(gw2, 1, dlogits, h)
			gb2.AddVec(gb2, dlogits)

			dh := mat.NewVecDense(s.hiddenDim, nil)
			dh.MulVec(s.w2.T(), dlogits)
			for i := 0; i < s.hiddenDim; i++ {
				if h.AtVec(i) <= 0 {
					dh.SetVec(i, 0)
				}
			}

			gw1.RankOne(gw1, 1, dh, x)
			gb1.AddVec(gb1, dh)
		}
	}

	step := s.lr / float64(len(batch))

	gw1.Scale(step, gw1)
	gb1.ScaleVec(step, gb1)
	gw2.Scale(step, gw2)
	gb2.ScaleVec(step, gb2)

	s.w1.Add(s.w1, gw1)
	s.b1.AddVec(s.b1, gb1)
	s.w2.Add(s.w2, gw2)
	s.b2.AddVec(s.b2, gb2)

	return nil
}
