package text

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed stopwords_en.yaml
var englishStopwordsYAML []byte

var (
	defaultStopwordsOnce sync.Once
	defaultStopwords     Stopwords
)

// Stopwords is a read-only set of case-folded function words.
type Stopwords map[string]struct{}

// stopwordsFile is the on-disk layout shared by the embedded list and
// user-supplied override files.
type stopwordsFile struct {
	Language string   `yaml:"language"`
	Words    []string `yaml:"words"`
}

// Contains reports whether word (any case) is a stopword.
func (s Stopwords) Contains(word string) bool {
	_, ok := s[strings.ToLower(word)]
	return ok
}

// Len returns the number of distinct stopwords.
func (s Stopwords) Len() int {
	return len(s)
}

// DefaultStopwords returns the embedded English stopword list. The set is
// parsed once per process and must not be modified by callers.
func DefaultStopwords() Stopwords {
	defaultStopwordsOnce.Do(func() {
		set, err := ParseStopwords(englishStopwordsYAML)
		if err != nil {
			panic(fmt.Sprintf("text: embedded stopword list is invalid: %v", err))
		}
		defaultStopwords = set
	})
	return defaultStopwords
}

// LoadStopwords reads a YAML stopword file from path. An empty path returns
// the embedded English list.
func LoadStopwords(path string) (Stopwords, error) {
	if path == "" {
		return DefaultStopwords(), nil
	}

	data, err := os.ReadFile(path) // #nosec G304 -- path comes from operator configuration
	if err != nil {
		return nil, fmt.Errorf("failed to read stopwords file: %w", err)
	}

	set, err := ParseStopwords(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stopwords file %s: %w", path, err)
	}
	return set, nil
}

// ParseStopwords decodes a YAML document of the form
//
//	language: english
//	words: ["a", "an", ...]
func ParseStopwords(data []byte) (Stopwords, error) {
	var file stopwordsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	if len(file.Words) == 0 {
		return nil, errors.New("stopword list is empty")
	}

	set := make(Stopwords, len(file.Words))
	for _, w := range file.Words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			set[w] = struct{}{}
		}
	}
	return set, nil
}
