package model

import "fmt"

// leaf marks a node without children in ChildrenLeft/ChildrenRight.
const leaf = -1

// Classifier maps normalized rows to integer class labels.
type Classifier interface {
	NumFeatures() int
	Predict(rows [][]float64) ([]int, error)
}

// Tree is one fitted decision tree in flat array layout. Node 0 is the
// root; Value holds per-class sample counts (or weights) at each node.
type Tree struct {
	ChildrenLeft  []int
	ChildrenRight []int
	Feature       []int
	Threshold     []float64
	Value         [][]float64
}

// Forest is a fitted random-forest classifier. Predictions average the
// trees' leaf class distributions and pick the most probable class.
type Forest struct {
	Features int
	Classes  []int
	Trees    []Tree
}

var _ Classifier = (*Forest)(nil)

// NumFeatures returns the row width the forest was fitted on.
func (f *Forest) NumFeatures() int {
	return f.Features
}

// Validate checks every tree is walkable and every leaf has one value per class.
func (f *Forest) Validate() error {
	if f.Features <= 0 {
		return fmt.Errorf("%w: forest has %d features", ErrMalformed, f.Features)
	}
	if len(f.Classes) == 0 {
		return fmt.Errorf("%w: forest has no classes", ErrMalformed)
	}
	if len(f.Trees) == 0 {
		return fmt.Errorf("%w: forest has no trees", ErrMalformed)
	}
	for i := range f.Trees {
		if err := f.Trees[i].validate(f.Features, len(f.Classes)); err != nil {
			return fmt.Errorf("%w: tree %d: %v", ErrMalformed, i, err)
		}
	}
	return nil
}

func (t *Tree) validate(features, classes int) error {
	n := len(t.ChildrenLeft)
	if n == 0 {
		return fmt.Errorf("no nodes")
	}
	if len(t.ChildrenRight) != n || len(t.Feature) != n || len(t.Threshold) != n || len(t.Value) != n {
		return fmt.Errorf("node arrays differ in length")
	}
	for i := 0; i < n; i++ {
		l, r := t.ChildrenLeft[i], t.ChildrenRight[i]
		if l == leaf || r == leaf {
			if l != r {
				return fmt.Errorf("node %d has one child", i)
			}
			if len(t.Value[i]) != classes {
				return fmt.Errorf("leaf %d has %d class values, want %d", i, len(t.Value[i]), classes)
			}
			continue
		}
		// Children must point forward, which rules out cycles.
		if l <= i || l >= n || r <= i || r >= n {
			return fmt.Errorf("node %d has child out of range", i)
		}
		if t.Feature[i] < 0 || t.Feature[i] >= features {
			return fmt.Errorf("node %d splits on feature %d", i, t.Feature[i])
		}
		if !finite(t.Threshold[i]) {
			return fmt.Errorf("node %d threshold is not finite", i)
		}
	}
	return nil
}

// Predict returns one label per row. A forest that fails Validate is
// never walked; the error wraps ErrMalformed.
func (f *Forest) Predict(rows [][]float64) ([]int, error) {
	if err := f.Validate(); err != nil {
		return nil, err
	}

	labels := make([]int, len(rows))
	proba := make([]float64, len(f.Classes))

	for r, row := range rows {
		if len(row) != f.Features {
			return nil, &DimensionError{Expected: f.Features, Got: len(row)}
		}

		for i := range proba {
			proba[i] = 0
		}
		for i := range f.Trees {
			dist := f.Trees[i].leafValue(row)
			var total float64
			for _, v := range dist {
				total += v
			}
			if total == 0 {
				continue
			}
			for c, v := range dist {
				proba[c] += v / total
			}
		}

		best := 0
		for c := 1; c < len(proba); c++ {
			if proba[c] > proba[best] {
				best = c
			}
		}
		labels[r] = f.Classes[best]
	}
	return labels, nil
}

func (t *Tree) leafValue(row []float64) []float64 {
	node := 0
	for t.ChildrenLeft[node] != leaf {
		if row[t.Feature[node]] <= t.Threshold[node] {
			node = t.ChildrenLeft[node]
		} else {
			node = t.ChildrenRight[node]
		}
	}
	return t.Value[node]
}
