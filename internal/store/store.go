// Package store persists and loads a ReadingProgress as a YAML file,
// writing atomically so a crash mid-save cannot corrupt it.
package store

import (
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/renameio/v2"
	"gopkg.in/yaml.v3"

	"github.com/jsimonrichard/brp/internal/apperr"
	"github.com/jsimonrichard/brp/internal/progress"
)

// wireRef is the (chapter, verse) wire encoding of a progress.BookRef.
type wireRef struct {
	Chapter uint32 `yaml:"chapter"`
	Verse   uint32 `yaml:"verse"`
}

type wireEntry struct {
	Start     wireRef   `yaml:"start"`
	End       wireRef   `yaml:"end"`
	ReadCount uint32    `yaml:"read_count"`
	LastRead  time.Time `yaml:"last_read"`
}

type wireDocument struct {
	Books map[string][]wireEntry `yaml:"books"`
}

// Load reads a ReadingProgress from path. A missing file yields an empty
// ReadingProgress, not an error.
func Load(path string) (*progress.ReadingProgress, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return progress.New(), nil
	}
	if err != nil {
		return nil, apperr.NewIoError("read progress file", err)
	}

	var doc wireDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, apperr.NewParseError(path, err)
	}

	p := progress.New()
	for book, entries := range doc.Books {
		for _, e := range entries {
			start := progress.BookRef{Chapter: e.Start.Chapter, Verse: e.Start.Verse}
			end := progress.BookRef{Chapter: e.End.Chapter, Verse: e.End.Verse}
			p.InsertRaw(book, start, end, progress.ReadingRecord{ReadCount: e.ReadCount, LastRead: e.LastRead})
		}
	}
	return p, nil
}

// Save writes p to path atomically, creating parent directories as
// needed.
func Save(path string, p *progress.ReadingProgress) error {
	doc := wireDocument{Books: map[string][]wireEntry{}}

	books := make([]string, 0, len(p.Books))
	for book := range p.Books {
		books = append(books, book)
	}
	sort.Strings(books)

	for _, book := range books {
		entries := p.Entries(book)
		wireEntries := make([]wireEntry, 0, len(entries))
		for _, e := range entries {
			wireEntries = append(wireEntries, wireEntry{
				Start:     wireRef{Chapter: e.Start.Chapter, Verse: e.Start.Verse},
				End:       wireRef{Chapter: e.End.Chapter, Verse: e.End.Verse},
				ReadCount: e.Record.ReadCount,
				LastRead:  e.Record.LastRead,
			})
		}
		doc.Books[book] = wireEntries
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return apperr.NewIoError("encode progress", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return apperr.NewPathError(filepath.Dir(path), err)
	}
	if err := renameio.WriteFile(path, data, 0o644); err != nil {
		return apperr.NewIoError("write progress file", err)
	}
	return nil
}
