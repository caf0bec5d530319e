// Package repo 直接读取 git 对象库，解析修订并遍历其树中的文件，
// 整个过程不会在磁盘上检出任何文件
package repo

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// HeadRevision 是未指定修订时使用的默认值
const HeadRevision = "HEAD"

// Repository 是对 go-git 仓库的只读包装
type Repository struct {
	repo *git.Repository
	dir  string
}

// Open 打开 dir 所在的仓库，会向上查找 .git 目录；裸仓库同样可以打开
func Open(dir string) (*Repository, error) {
	if dir == "" {
		dir = "."
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, &RepositoryNotFoundError{Dir: dir, Err: err}
	}
	fi, err := os.Stat(abs)
	if err != nil {
		return nil, &RepositoryNotFoundError{Dir: abs, Err: err}
	}
	if !fi.IsDir() {
		return nil, &RepositoryNotFoundError{Dir: abs, Err: errors.New("not a directory")}
	}

	r, err := git.PlainOpenWithOptions(abs, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, &RepositoryNotFoundError{Dir: abs, Err: err}
	}
	return &Repository{repo: r, dir: abs}, nil
}

// FromGit 包装一个已打开的 go-git 仓库（例如基于内存存储的仓库）
func FromGit(r *git.Repository) *Repository {
	return &Repository{repo: r}
}

// Dir 返回打开仓库时使用的目录；FromGit 创建的仓库返回空串
func (r *Repository) Dir() string { return r.dir }

// ResolveTree 将修订解析为一个不可变的树快照；rev 为空时使用 HEAD
func (r *Repository) ResolveTree(rev string) (*Tree, error) {
	if rev == "" {
		rev = HeadRevision
	}
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, &RevisionNotFoundError{Revision: rev, Err: err}
	}
	commit, err := r.repo.CommitObject(*hash)
	if err != nil {
		return nil, &RevisionNotFoundError{Revision: rev, Err: err}
	}
	tree, err := commit.Tree()
	if err != nil {
		return nil, fmt.Errorf("load tree of %s: %w", commit.Hash, err)
	}
	return &Tree{repo: r, tree: tree, revision: rev, commit: commit.Hash}, nil
}

// Tree 是已解析修订的根树句柄
type Tree struct {
	repo     *Repository
	tree     *object.Tree
	revision string
	commit   plumbing.Hash
}

// Revision 返回解析前的修订字符串
func (t *Tree) Revision() string { return t.revision }

// Commit 返回修订对应的提交哈希
func (t *Tree) Commit() string { return t.commit.String() }

// Walk 返回一个新的单次遍历器
func (t *Tree) Walk(opts WalkOptions) *Walker {
	return newWalker(t, opts)
}
