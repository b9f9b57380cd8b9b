// Package gitrev retrieves workbook bytes from git revisions, so two
// revisions of one file (or a revision and the working tree) can be compared
// without checking anything out.
package gitrev

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/apex/log"
	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/exceldiff/exceldiff/pkg/exceldiff/models"
	"github.com/exceldiff/exceldiff/pkg/exceldiff/reader"
)

// ErrNotARepository indicates the given path is not inside a git repository.
var ErrNotARepository = errors.New("not a git repository")

// ErrNotInRevision indicates the file does not exist in the given revision.
var ErrNotInRevision = errors.New("file not present in revision")

// Repository wraps a git repository for workbook retrieval.
type Repository struct {
	repo *git.Repository
	root string
}

// Open opens the repository containing path, searching parent directories for
// the .git directory.
func Open(path string) (*Repository, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, fmt.Errorf("%w: %s", ErrNotARepository, path)
		}
		return nil, err
	}
	wt, err := repo.Worktree()
	if err != nil {
		return nil, err
	}
	return &Repository{repo: repo, root: wt.Filesystem.Root()}, nil
}

// Root returns the worktree root directory.
func (r *Repository) Root() string {
	return r.root
}

func (r *Repository) commit(rev string) (*object.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, fmt.Errorf("resolve revision %q: %w", rev, err)
	}
	return r.repo.CommitObject(*hash)
}

// relPath converts a path to the slash-separated form git uses, relative to
// the worktree root.
func (r *Repository) relPath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	rel, err := filepath.Rel(r.root, abs)
	if err != nil || strings.HasPrefix(rel, "..") {
		// Already relative to the repository root.
		rel = path
	}
	return filepath.ToSlash(rel), nil
}

// FileAt returns the content of a file at a revision.
func (r *Repository) FileAt(rev, path string) ([]byte, error) {
	commit, err := r.commit(rev)
	if err != nil {
		return nil, err
	}
	rel, err := r.relPath(path)
	if err != nil {
		return nil, err
	}
	f, err := commit.File(rel)
	if err != nil {
		if errors.Is(err, object.ErrFileNotFound) {
			return nil, fmt.Errorf("%w: %q at %q", ErrNotInRevision, rel, rev)
		}
		return nil, err
	}
	contents, err := f.Contents()
	if err != nil {
		return nil, err
	}
	log.WithField("path", rel).
		WithField("revision", rev).
		WithField("bytes", len(contents)).
		Debug("retrieved file from revision")
	return []byte(contents), nil
}

// WorkbookAt reads the workbook stored at a revision. The workbook name
// carries the file name and the short commit hash.
func (r *Repository) WorkbookAt(rev, path string) (*models.Workbook, error) {
	b, err := r.FileAt(rev, path)
	if err != nil {
		return nil, err
	}
	info, err := r.CommitInfo(rev)
	if err != nil {
		return nil, err
	}
	name := fmt.Sprintf("%s (%s)", filepath.Base(path), info.ShortHash)
	return reader.ReadBytes(b, name)
}

// Parent returns the hash of the first parent of a revision.
func (r *Repository) Parent(rev string) (string, error) {
	commit, err := r.commit(rev)
	if err != nil {
		return "", err
	}
	if commit.NumParents() == 0 {
		return "", fmt.Errorf("revision %q has no parent", rev)
	}
	parent, err := commit.Parent(0)
	if err != nil {
		return "", err
	}
	return parent.Hash.String(), nil
}

// CommitInfo describes a commit for diff labeling.
type CommitInfo struct {
	// Hash is the full commit hash.
	Hash string
	// ShortHash is the 7-character abbreviated hash.
	ShortHash string
	// Message is the trimmed commit message.
	Message string
	// Author is "Name <email>".
	Author string
	// When is the commit timestamp.
	When time.Time
}

// CommitInfo returns labeling information for a revision.
func (r *Repository) CommitInfo(rev string) (CommitInfo, error) {
	commit, err := r.commit(rev)
	if err != nil {
		return CommitInfo{}, err
	}
	hash := commit.Hash.String()
	return CommitInfo{
		Hash:      hash,
		ShortHash: hash[:7],
		Message:   strings.TrimSpace(commit.Message),
		Author:    fmt.Sprintf("%s <%s>", commit.Author.Name, commit.Author.Email),
		When:      commit.Author.When,
	}, nil
}

// CompareRevisions reads the workbook at two revisions. An empty from selects
// the parent of to.
func (r *Repository) CompareRevisions(path, from, to string) (oldWB, newWB *models.Workbook, err error) {
	if to == "" {
		to = "HEAD"
	}
	if from == "" {
		from, err = r.Parent(to)
		if err != nil {
			return nil, nil, err
		}
	}
	oldWB, err = r.WorkbookAt(from, path)
	if err != nil {
		return nil, nil, err
	}
	newWB, err = r.WorkbookAt(to, path)
	if err != nil {
		return nil, nil, err
	}
	return oldWB, newWB, nil
}

// CompareWithWorkingTree reads the workbook at a revision and the current file
// on disk.
func (r *Repository) CompareWithWorkingTree(path, rev string) (oldWB, newWB *models.Workbook, err error) {
	if rev == "" {
		rev = "HEAD"
	}
	oldWB, err = r.WorkbookAt(rev, path)
	if err != nil {
		return nil, nil, err
	}
	newWB, err = reader.ReadFile(path)
	if err != nil {
		return nil, nil, err
	}
	return oldWB, newWB, nil
}
