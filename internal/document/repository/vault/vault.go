package vault

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"task-metadata-sync/internal/document"
)

func (r *implRepository) List(ctx context.Context) ([]document.Document, error) {
	var docs []document.Document

	err := filepath.WalkDir(r.root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		if d.IsDir() {
			if p != r.root && IsHidden(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}
		if !IsMarkdown(d.Name()) || IsHidden(d.Name()) {
			return nil
		}

		rel, err := filepath.Rel(r.root, p)
		if err != nil {
			return err
		}
		doc, err := r.read(filepath.ToSlash(rel), p)
		if err != nil {
			return err
		}
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("vault: list %s: %w", r.root, err)
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func (r *implRepository) Get(ctx context.Context, id string) (document.Document, error) {
	p, err := r.resolve(id)
	if err != nil {
		return document.Document{}, err
	}
	return r.read(id, p)
}

func (r *implRepository) Update(ctx context.Context, id string, content string) error {
	p, err := r.resolve(id)
	if err != nil {
		return err
	}

	info, err := os.Stat(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return document.ErrDocumentNotFound
		}
		return fmt.Errorf("vault: stat %s: %w", id, err)
	}

	if err := writeAtomic(p, []byte(content), info.Mode().Perm()); err != nil {
		r.l.Errorf(ctx, "vault: failed to write %s: %v", id, err)
		return err
	}
	return nil
}

func (r *implRepository) read(id, p string) (document.Document, error) {
	raw, err := os.ReadFile(p)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return document.Document{}, document.ErrDocumentNotFound
		}
		return document.Document{}, fmt.Errorf("vault: read %s: %w", id, err)
	}

	info, err := os.Stat(p)
	if err != nil {
		return document.Document{}, fmt.Errorf("vault: stat %s: %w", id, err)
	}

	return document.Document{
		ID:        id,
		Content:   string(raw),
		UpdatedAt: info.ModTime(),
	}, nil
}

// resolve maps a slash separated ID to a path inside the root.
func (r *implRepository) resolve(id string) (string, error) {
	if id == "" || !IsMarkdown(id) || path.IsAbs(id) || strings.Contains(id, "\\") {
		return "", document.ErrInvalidDocumentID
	}
	clean := path.Clean(id)
	if clean != id || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", document.ErrInvalidDocumentID
	}
	return filepath.Join(r.root, filepath.FromSlash(clean)), nil
}

// writeAtomic writes into a sibling temp file and renames it over p.
func writeAtomic(p string, data []byte, perm fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(p), "."+filepath.Base(p)+".tmp-*")
	if err != nil {
		return fmt.Errorf("vault: create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("vault: write temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("vault: sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("vault: close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		return fmt.Errorf("vault: chmod temp file: %w", err)
	}
	if err := os.Rename(tmpName, p); err != nil {
		return fmt.Errorf("vault: rename temp file: %w", err)
	}
	return nil
}

// IsMarkdown reports whether name carries the markdown extension.
func IsMarkdown(name string) bool {
	return strings.EqualFold(filepath.Ext(name), MarkdownExt)
}

// IsHidden reports dot-prefixed names such as .obsidian or .git.
func IsHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
