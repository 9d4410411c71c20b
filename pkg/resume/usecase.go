package resume

import (
	"math/rand/v2"
	"sync"

	"github.com/artem13815/resumeboost/pkg/metrics"
)

// Scorer produces a score for an uploaded resume.
type Scorer interface {
	Analyze(data []byte) Score
}

type randomScorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewScorer returns a Scorer that ignores the file content and draws every
// value uniformly from its fixed range. A nil src uses a randomly seeded
// PCG source.
func NewScorer(src rand.Source) Scorer {
	if src == nil {
		src = rand.NewPCG(rand.Uint64(), rand.Uint64())
	}
	return &randomScorer{rng: rand.New(src)}
}

func (s *randomScorer) Analyze(_ []byte) Score {
	s.mu.Lock()
	defer s.mu.Unlock()
	metrics.ResumeAnalysesTotal.Inc()
	return Score{
		Overall: s.draw(overallRange),
		Categories: Categories{
			Formatting: s.draw(formattingRange),
			Keywords:   s.draw(keywordsRange),
			Experience: s.draw(experienceRange),
			Education:  s.draw(educationRange),
			Skills:     s.draw(skillsRange),
		},
		Suggestions: Suggestions(),
	}
}

func (s *randomScorer) draw(r scoreRange) int {
	return r.min + s.rng.IntN(r.max-r.min+1)
}
