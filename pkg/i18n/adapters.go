package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"path"
)

// TranslationAdapter loads translations keyed by language.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves translations from memory.
type MapAdapter struct {
	Data map[string]map[string]any
}

func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return map[string]map[string]any{}, nil
	}
	return a.Data, nil
}

// FSAdapter loads every file in dir that the parser supports. It works with
// embed.FS as well as os.DirFS.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
}

func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	return &FSAdapter{parser: parser, fsys: fsys, dir: dir}
}

// Load reads files in name order; a later file overrides top-level keys of an
// earlier one for the same language.
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if a.parser == nil || a.fsys == nil {
		return nil, ErrNilAdapter
	}
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}

	all := make(map[string]map[string]any)
	loaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		name := path.Join(a.dir, entry.Name())
		content, err := fs.ReadFile(a.fsys, name)
		if err != nil {
			return nil, errors.Join(ErrFailedToReadFile, err)
		}

		translations, err := a.parser.Parse(ctx, string(content))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}

		for lang, messages := range translations {
			if all[lang] == nil {
				all[lang] = make(map[string]any, len(messages))
			}
			maps.Copy(all[lang], messages)
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in %q", ErrNoTranslationFiles, a.dir)
	}

	return all, nil
}
