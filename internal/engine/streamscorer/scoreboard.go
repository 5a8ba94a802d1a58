// internal/engine/streamscorer/scoreboard.go
package streamscorer

import "math"

// ScoreBoard accumulates additive scores for a single Analyze call. Scores
// only grow. A stream that was never touched counts as zero and is not part
// of the snapshot.
type ScoreBoard struct {
	scores  map[StreamID]float64
	touched []StreamID
}

func newScoreBoard() *ScoreBoard {
	return &ScoreBoard{scores: make(map[StreamID]float64, len(streamOrder))}
}

// Add increases the score of id by points. Non-positive points are ignored.
func (b *ScoreBoard) Add(id StreamID, points float64) {
	if points <= 0 {
		return
	}
	if _, ok := b.scores[id]; !ok {
		b.touched = append(b.touched, id)
	}
	b.scores[id] += points
}

// AddToPresent adds points to every stream already on the board.
func (b *ScoreBoard) AddToPresent(points float64) {
	for _, id := range b.touched {
		b.Add(id, points)
	}
}

func (b *ScoreBoard) Score(id StreamID) float64 {
	return b.scores[id]
}

func (b *ScoreBoard) Empty() bool {
	return len(b.touched) == 0
}

func (b *ScoreBoard) Total() float64 {
	var total float64
	for _, id := range b.touched {
		total += b.scores[id]
	}
	return total
}

func (b *ScoreBoard) Max() float64 {
	var hi float64
	for _, id := range b.touched {
		hi = math.Max(hi, b.scores[id])
	}
	return hi
}

// Leader returns the highest scoring stream. Ties resolve to the earliest
// stream in profile order; an empty board yields DefaultStream.
func (b *ScoreBoard) Leader() StreamID {
	leader := DefaultStream
	best := 0.0
	for _, id := range streamOrder {
		if s, ok := b.scores[id]; ok && s > best {
			leader, best = id, s
		}
	}
	return leader
}

// Snapshot copies the current scores.
func (b *ScoreBoard) Snapshot() map[StreamID]float64 {
	out := make(map[StreamID]float64, len(b.scores))
	for id, s := range b.scores {
		out[id] = s
	}
	return out
}

// Confidence is the leader's share of the total as a percentage with one
// decimal. With no score at all it is exactly 50.
func (b *ScoreBoard) Confidence() float64 {
	total := b.Total()
	if total <= 0 {
		return 50.0
	}
	return math.Round(b.Max()/total*1000) / 10
}
