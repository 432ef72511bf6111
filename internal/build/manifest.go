package build

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/graphpress/graphpress/internal/config"
)

// manifestFile is written beside the content root, never inside it, so the
// content tree stays a pure function of graph and configuration.
const manifestFile = "graphpress-build.json"

// Manifest records one build: what went in, what came out. Two builds from
// identical inputs produce identical ConfigHash and ContentHash.
type Manifest struct {
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	ConfigHash  string    `json:"config_hash"`
	Pages       int       `json:"pages"`
	Assets      int       `json:"assets"`
	Skipped     int       `json:"skipped"`
	ContentHash string    `json:"content_hash"`
	Duration    int64     `json:"duration_ms,omitempty"`
}

func (m *Manifest) ToJSON() ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal manifest: %w", err)
	}
	return data, nil
}

func ManifestFromJSON(data []byte) (*Manifest, error) {
	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("unmarshal manifest: %w", err)
	}
	return &m, nil
}

// NewManifest summarizes a finished plan.
func NewManifest(cfg *config.Config, plan *Plan, ts time.Time) (*Manifest, error) {
	configHash, err := hashConfig(cfg)
	if err != nil {
		return nil, err
	}
	return &Manifest{
		ID:          plan.BuildID,
		Timestamp:   ts.UTC(),
		ConfigHash:  configHash,
		Pages:       len(plan.Pages),
		Assets:      len(plan.Copies),
		Skipped:     plan.Skipped,
		ContentHash: hashContent(plan),
	}, nil
}

func hashConfig(cfg *config.Config) (string, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("marshal config for hash: %w", err)
	}
	return fmt.Sprintf("%x", sha256.Sum256(data)), nil
}

// hashContent folds every planned file into one digest, in path order so
// the value is independent of planning order.
func hashContent(plan *Plan) string {
	paths := make(map[string][]byte, len(plan.Files))
	sorted := make([]string, 0, len(plan.Files))
	for _, f := range plan.Files {
		paths[f.Path] = f.Content
		sorted = append(sorted, f.Path)
	}
	sort.Strings(sorted)

	h := sha256.New()
	for _, p := range sorted {
		h.Write([]byte(p))
		h.Write([]byte{0})
		h.Write(paths[p])
		h.Write([]byte{0})
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

func (e *Engine) writeManifest(plan *Plan) error {
	m, err := NewManifest(e.cfg, plan, e.now)
	if err != nil {
		return err
	}
	data, err := m.ToJSON()
	if err != nil {
		return err
	}
	path := filepath.Join(filepath.Dir(e.contentDir), manifestFile)
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
