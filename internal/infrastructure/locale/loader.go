package locale

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"

	"localeaudit/internal/domain"
	"localeaudit/internal/domain/entities"
	"localeaudit/internal/ports/output"
)

var _ output.Loader = (*Loader)(nil)

// DecodeFunc parses one resource file into a tree, keeping document order.
type DecodeFunc func(data []byte) (*entities.Tree, error)

// Loader reads resource files with the decoder registered for their extension.
type Loader struct {
	decoders map[string]DecodeFunc
	log      *logrus.Entry
}

// NewLoader returns a Loader with the toml, json, yaml and yml decoders registered.
func NewLoader(log *logrus.Entry) *Loader {
	l := &Loader{decoders: make(map[string]DecodeFunc), log: log}
	l.RegisterDecoder("toml", DecodeTOML)
	l.RegisterDecoder("json", DecodeJSON)
	l.RegisterDecoder("yaml", DecodeYAML)
	l.RegisterDecoder("yml", DecodeYAML)
	return l
}

// RegisterDecoder adds or replaces the decoder of an extension (without the dot).
func (l *Loader) RegisterDecoder(ext string, fn DecodeFunc) {
	l.decoders[ext] = fn
}

func (l *Loader) Supports(ext string) bool {
	_, ok := l.decoders[ext]
	return ok
}

// Load decodes every path and returns them as a single grouping, in path order.
func (l *Loader) Load(paths []string) ([]entities.SourceSet, error) {
	set := make(entities.SourceSet, 0, len(paths))
	for _, path := range paths {
		tree, err := l.loadFile(path)
		if err != nil {
			return nil, err
		}
		l.log.WithFields(logrus.Fields{"path": path, "keys": tree.Leaves()}).Debug("resource decoded")
		set = append(set, entities.Source{Path: path, Tree: tree})
	}
	return []entities.SourceSet{set}, nil
}

func (l *Loader) loadFile(path string) (*entities.Tree, error) {
	decode, ok := l.decoders[extension(path)]
	if !ok {
		return nil, fmt.Errorf("decode %s: %w", path, domain.ErrUnsupportedFormat)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	tree, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return tree, nil
}
