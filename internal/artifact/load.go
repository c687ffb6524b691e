package artifact

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/mod/semver"
	"golang.org/x/sync/errgroup"

	"github.com/abhisek/heartstage/internal/model"
)

// Kind names an artifact type; it matches the document's "kind" field.
type Kind string

const (
	KindScaler Kind = "standard_scaler"
	KindForest Kind = "random_forest_classifier"
)

// SupportedMajor is the artifact format major version this build reads.
const SupportedMajor = "v1"

// Paths locates the artifacts on disk. Checksums is optional.
type Paths struct {
	Scaler    string
	Model     string
	Checksums string
}

// Info describes a loaded artifact.
type Info struct {
	Path          string
	Kind          Kind
	FormatVersion string
	SHA256        string
	Metadata      map[string]string
}

// Set holds the two load-once artifacts.
type Set struct {
	Scaler     *model.Scaler
	Forest     *model.Forest
	ScalerInfo Info
	ForestInfo Info
}

type scalerDoc struct {
	Kind          Kind              `json:"kind"`
	FormatVersion string            `json:"format_version"`
	FeatureNames  []string          `json:"feature_names"`
	Mean          []float64         `json:"mean"`
	Scale         []float64         `json:"scale"`
	Metadata      map[string]string `json:"metadata"`
}

type forestDoc struct {
	Kind          Kind              `json:"kind"`
	FormatVersion string            `json:"format_version"`
	NFeatures     int               `json:"n_features"`
	Classes       []int             `json:"classes"`
	Trees         []treeDoc         `json:"trees"`
	Metadata      map[string]string `json:"metadata"`
}

type treeDoc struct {
	ChildrenLeft  []int       `json:"children_left"`
	ChildrenRight []int       `json:"children_right"`
	Feature       []int       `json:"feature"`
	Threshold     []float64   `json:"threshold"`
	Value         [][]float64 `json:"value"`
}

// Load reads, verifies and decodes both artifacts. When p.Checksums is set,
// each artifact must match its manifest entry.
func Load(p Paths) (*Set, error) {
	var manifest Manifest
	if p.Checksums != "" {
		m, err := ReadManifest(p.Checksums)
		if err != nil {
			return nil, fmt.Errorf("read checksums %s: %w", p.Checksums, err)
		}
		manifest = m
	}

	// The two artifacts are independent; load them side by side.
	set := &Set{}
	var g errgroup.Group
	g.Go(func() error {
		var err error
		set.Scaler, set.ScalerInfo, err = loadScaler(p.Scaler, manifest)
		return err
	})
	g.Go(func() error {
		var err error
		set.Forest, set.ForestInfo, err = loadForest(p.Model, manifest)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if n := set.Scaler.NumFeatures(); n != set.Forest.NumFeatures() {
		return nil, &ArtifactLoadError{
			Path: p.Model,
			Kind: KindForest,
			Err:  fmt.Errorf("%w: model expects %d features, scaler has %d", model.ErrMalformed, set.Forest.NumFeatures(), n),
		}
	}
	return set, nil
}

// LoadScaler reads a scaler artifact without checksum verification.
func LoadScaler(path string) (*model.Scaler, error) {
	s, _, err := loadScaler(path, nil)
	return s, err
}

// LoadForest reads a classifier artifact without checksum verification.
func LoadForest(path string) (*model.Forest, error) {
	f, _, err := loadForest(path, nil)
	return f, err
}

func loadScaler(path string, manifest Manifest) (*model.Scaler, Info, error) {
	info := Info{Path: path, Kind: KindScaler}
	fail := func(err error) (*model.Scaler, Info, error) {
		return nil, info, &ArtifactLoadError{Path: path, Kind: KindScaler, Err: err}
	}

	raw, err := readVerified(path, manifest, &info)
	if err != nil {
		return fail(err)
	}
	if err := validateRaw(KindScaler, raw); err != nil {
		return fail(err)
	}

	var doc scalerDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fail(fmt.Errorf("decode: %w", err))
	}
	if err := checkVersion(doc.FormatVersion); err != nil {
		return fail(err)
	}
	info.FormatVersion = doc.FormatVersion
	info.Metadata = doc.Metadata

	s := &model.Scaler{
		FeatureNames: doc.FeatureNames,
		Mean:         doc.Mean,
		Scale:        doc.Scale,
	}
	if err := s.Validate(); err != nil {
		return fail(err)
	}
	return s, info, nil
}

func loadForest(path string, manifest Manifest) (*model.Forest, Info, error) {
	info := Info{Path: path, Kind: KindForest}
	fail := func(err error) (*model.Forest, Info, error) {
		return nil, info, &ArtifactLoadError{Path: path, Kind: KindForest, Err: err}
	}

	raw, err := readVerified(path, manifest, &info)
	if err != nil {
		return fail(err)
	}
	if err := validateRaw(KindForest, raw); err != nil {
		return fail(err)
	}

	var doc forestDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fail(fmt.Errorf("decode: %w", err))
	}
	if err := checkVersion(doc.FormatVersion); err != nil {
		return fail(err)
	}
	info.FormatVersion = doc.FormatVersion
	info.Metadata = doc.Metadata

	f := &model.Forest{
		Features: doc.NFeatures,
		Classes:  doc.Classes,
		Trees:    make([]model.Tree, len(doc.Trees)),
	}
	for i, t := range doc.Trees {
		f.Trees[i] = model.Tree{
			ChildrenLeft:  t.ChildrenLeft,
			ChildrenRight: t.ChildrenRight,
			Feature:       t.Feature,
			Threshold:     t.Threshold,
			Value:         t.Value,
		}
	}
	if err := f.Validate(); err != nil {
		return fail(err)
	}
	return f, info, nil
}

func readVerified(path string, manifest Manifest, info *Info) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	info.SHA256 = digest(raw)
	if manifest != nil {
		if err := manifest.Verify(filepath.Base(path), raw); err != nil {
			return nil, err
		}
	}
	return raw, nil
}

func checkVersion(v string) error {
	if !semver.IsValid(v) {
		return fmt.Errorf("%w: %q", ErrUnsupportedVersion, v)
	}
	if semver.Major(v) != SupportedMajor {
		return fmt.Errorf("%w: %s (supported: %s.x)", ErrUnsupportedVersion, v, SupportedMajor)
	}
	return nil
}
