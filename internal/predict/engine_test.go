package predict

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/abhisek/heartstage/internal/artifact"
	"github.com/abhisek/heartstage/internal/features"
	"github.com/abhisek/heartstage/internal/model"
)

// stubScaler is an identity scaler of configurable width.
type stubScaler struct {
	width int
	err   error
}

func (s *stubScaler) NumFeatures() int { return s.width }
func (s *stubScaler) Transform(rows [][]float64) ([][]float64, error) {
	if s.err != nil {
		return nil, s.err
	}
	return rows, nil
}

// stubClassifier returns canned labels and records the rows it saw.
type stubClassifier struct {
	labels []int
	err    error
	seen   [][]float64
}

func (c *stubClassifier) NumFeatures() int { return features.NumFeatures }
func (c *stubClassifier) Predict(rows [][]float64) ([]int, error) {
	c.seen = rows
	if c.err != nil {
		return nil, c.err
	}
	return c.labels, nil
}

func fixtureEngine(t *testing.T) *Engine {
	t.Helper()
	dir := filepath.Join("..", "artifact", "testdata")
	set, err := artifact.Load(artifact.Paths{
		Scaler:    filepath.Join(dir, "scaler.json"),
		Model:     filepath.Join(dir, "rf.json"),
		Checksums: filepath.Join(dir, "checksums.txt"),
	})
	require.NoError(t, err)
	e, err := New(set.Scaler, set.Forest)
	require.NoError(t, err)
	return e
}

func TestLookupTable(t *testing.T) {
	want := []Stage{
		{0, "Less than 50% Diameter Narrowing – No Heart Disease", "green"},
		{1, "Greater than 50% Diameter Narrowing – Stage 1", "yellow"},
		{2, "Greater than 50% Diameter Narrowing – Stage 2", "orange"},
		{3, "Greater than 50% Diameter Narrowing – Stage 3", "red"},
		{4, "Greater than 50% Diameter Narrowing – Stage 4", "purple"},
	}
	if diff := cmp.Diff(want, Stages()); diff != "" {
		t.Errorf("stage table mismatch (-want +got):\n%s", diff)
	}

	for _, s := range want {
		got, err := Lookup(s.Label)
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestLookupOutOfRange(t *testing.T) {
	for _, label := range []int{-1, 5, 99} {
		_, err := Lookup(label)
		var lookupErr *LookupError
		require.ErrorAs(t, err, &lookupErr, "label %d", label)
		assert.Equal(t, label, lookupErr.Label)
	}
}

func TestNewRejectsNil(t *testing.T) {
	_, err := New(nil, &stubClassifier{})
	assert.Error(t, err)
	_, err = New(&stubScaler{width: 13}, nil)
	assert.Error(t, err)
}

func TestPredictDefaultsWithStubs(t *testing.T) {
	clf := &stubClassifier{labels: []int{0}}
	e, err := New(&stubScaler{width: features.NumFeatures}, clf)
	require.NoError(t, err)

	res, err := e.Predict(features.DefaultVector())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Label)
	assert.Equal(t, "green", res.Color)

	// One sample, thirteen features.
	require.Len(t, clf.seen, 1)
	assert.Len(t, clf.seen[0], features.NumFeatures)
}

func TestPredictErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name   string
		scaler Scaler
		clf    model.Classifier
		check  func(t *testing.T, err error)
	}{
		{
			name:   "scaler fitted on other width",
			scaler: &stubScaler{width: 4},
			clf:    &stubClassifier{labels: []int{0}},
			check: func(t *testing.T, err error) {
				var domainErr *DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.Equal(t, 4, domainErr.Expected)
				assert.Equal(t, 13, domainErr.Got)
			},
		},
		{
			name:   "scaler transform fails",
			scaler: &stubScaler{width: 13, err: boom},
			clf:    &stubClassifier{labels: []int{0}},
			check: func(t *testing.T, err error) {
				var domainErr *DomainError
				require.ErrorAs(t, err, &domainErr)
				assert.ErrorIs(t, err, boom)
			},
		},
		{
			name:   "classifier fails",
			scaler: &stubScaler{width: 13},
			clf:    &stubClassifier{err: boom},
			check: func(t *testing.T, err error) {
				var modelErr *ModelError
				require.ErrorAs(t, err, &modelErr)
				assert.ErrorIs(t, err, boom)
			},
		},
		{
			name:   "classifier returns no label",
			scaler: &stubScaler{width: 13},
			clf:    &stubClassifier{labels: nil},
			check: func(t *testing.T, err error) {
				var modelErr *ModelError
				assert.ErrorAs(t, err, &modelErr)
			},
		},
		{
			name:   "label outside table",
			scaler: &stubScaler{width: 13},
			clf:    &stubClassifier{labels: []int{7}},
			check: func(t *testing.T, err error) {
				var lookupErr *LookupError
				require.ErrorAs(t, err, &lookupErr)
				assert.Equal(t, 7, lookupErr.Label)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(tt.scaler, tt.clf)
			require.NoError(t, err)
			res, err := e.Predict(features.DefaultVector())
			require.Error(t, err)
			assert.Equal(t, Result{}, res)
			tt.check(t, err)
		})
	}
}

func TestPredictZeroEngine(t *testing.T) {
	var e Engine
	_, err := e.Predict(features.DefaultVector())
	assert.ErrorIs(t, err, ErrModelUnavailable)
}

func TestPredictDefaultsWithFixtureArtifacts(t *testing.T) {
	res, err := fixtureEngine(t).Predict(features.NewForm().Vector())
	require.NoError(t, err)
	assert.Equal(t, 0, res.Label)
	assert.Equal(t, "Less than 50% Diameter Narrowing – No Heart Disease", res.Text)
}

func TestPredictEndToEnd(t *testing.T) {
	e := fixtureEngine(t)

	tests := []struct {
		name   string
		vector features.Vector
	}{
		{"textbook example", features.Vector{63, 1, 1, 145, 233, 1, 2, 150, 0, 2.3, 3, 0, 6}},
		{"all zeros", features.Vector{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := e.Predict(tt.vector)
			require.NoError(t, err)

			want, err := Lookup(res.Label)
			require.NoError(t, err)
			assert.Equal(t, want, res.Stage)
		})
	}
}

func TestPredictDeterministic(t *testing.T) {
	e := fixtureEngine(t)
	v := features.Vector{63, 1, 1, 145, 233, 1, 2, 150, 0, 2.3, 3, 0, 6}

	first, err := e.Predict(v)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := e.Predict(v)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestPredictDoesNotMutateInput(t *testing.T) {
	e := fixtureEngine(t)
	v := features.DefaultVector()
	_, err := e.Predict(v)
	require.NoError(t, err)
	assert.Equal(t, features.DefaultVector(), v)
}

func TestWithLogging(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	logger := zap.New(core)

	inner, err := New(&stubScaler{width: 13}, &stubClassifier{labels: []int{3}})
	require.NoError(t, err)
	p := WithLogging(inner, logger)

	res, err := p.Predict(features.DefaultVector())
	require.NoError(t, err)
	assert.Equal(t, 3, res.Label)

	entries := logs.FilterMessage("prediction").All()
	require.Len(t, entries, 1)
	ctx := entries[0].ContextMap()
	assert.Equal(t, int64(3), ctx["label"])
	assert.NotEmpty(t, ctx["request_id"])
	assert.Len(t, logs.FilterMessage("prediction input").All(), 1)
}

func TestWithLoggingPassesErrorsThrough(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)

	inner, err := New(&stubScaler{width: 13}, &stubClassifier{labels: []int{9}})
	require.NoError(t, err)

	_, err = WithLogging(inner, zap.New(core)).Predict(features.DefaultVector())
	var lookupErr *LookupError
	require.ErrorAs(t, err, &lookupErr)
	assert.Len(t, logs.FilterMessage("prediction failed").All(), 1)
	assert.Empty(t, logs.FilterMessage("prediction input").All())
}

func TestWithLoggingNilLogger(t *testing.T) {
	inner, err := New(&stubScaler{width: 13}, &stubClassifier{labels: []int{1}})
	require.NoError(t, err)
	res, err := WithLogging(inner, nil).Predict(features.DefaultVector())
	require.NoError(t, err)
	assert.Equal(t, "yellow", res.Color)
}

func TestPredictMalformedForest(t *testing.T) {
	leafTree := func(left, right []float64) model.Tree {
		return model.Tree{
			ChildrenLeft:  []int{1, -1, -1},
			ChildrenRight: []int{2, -1, -1},
			Feature:       []int{0, -2, -2},
			Threshold:     []float64{0, -2, -2},
			Value:         [][]float64{nil, left, right},
		}
	}

	backEdge := leafTree([]float64{1, 0, 0}, []float64{0, 1, 0})
	backEdge.ChildrenLeft = []int{0, -1, -1}

	tests := []struct {
		name   string
		forest *model.Forest
	}{
		{"forest without classes", &model.Forest{Features: features.NumFeatures}},
		{"leaf wider than classes", &model.Forest{
			Features: features.NumFeatures,
			Classes:  []int{0, 1, 2},
			Trees:    []model.Tree{leafTree([]float64{1, 0, 0, 0, 0}, []float64{0, 1, 0})},
		}},
		{"tree with back edge", &model.Forest{
			Features: features.NumFeatures,
			Classes:  []int{0, 1, 2},
			Trees:    []model.Tree{backEdge},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, err := New(&stubScaler{width: features.NumFeatures}, tt.forest)
			require.NoError(t, err)

			res, err := e.Predict(features.DefaultVector())
			assert.Equal(t, Result{}, res)
			var modelErr *ModelError
			require.ErrorAs(t, err, &modelErr)
			assert.ErrorIs(t, err, model.ErrMalformed)
		})
	}
}
