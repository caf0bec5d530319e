// Package repotest 在内存中构造 git 仓库，供测试使用
package repotest

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/storer"
	"github.com/go-git/go-git/v5/storage/memory"
)

// File 描述提交中的一个条目；Mode 为零值时视为普通文件
type File struct {
	Path    string
	Content string
	Mode    filemode.FileMode
}

// Regular 创建普通文件条目
func Regular(path, content string) File {
	return File{Path: path, Content: content, Mode: filemode.Regular}
}

// Symlink 创建符号链接条目，Content 为链接目标
func Symlink(path, target string) File {
	return File{Path: path, Content: target, Mode: filemode.Symlink}
}

// Submodule 创建子模块（gitlink）条目
func Submodule(path string) File {
	return File{Path: path, Mode: filemode.Submodule}
}

// NewMemory 初始化一个内存仓库，并在 master 上提交 files
func NewMemory(t testing.TB, files ...File) *git.Repository {
	t.Helper()
	r, err := git.Init(memory.NewStorage(), nil)
	if err != nil {
		t.Fatalf("init memory repo: %v", err)
	}
	if len(files) > 0 {
		Commit(t, r, "master", "initial", files...)
	}
	return r
}

// Commit 在 branch 上创建一个新提交（以 branch 当前提交为父提交），返回提交哈希
func Commit(t testing.TB, r *git.Repository, branch, msg string, files ...File) plumbing.Hash {
	t.Helper()
	s := r.Storer

	root := &node{}
	for _, f := range files {
		root.add(strings.Split(f.Path, "/"), f)
	}
	treeHash := writeTree(t, s, root)

	var parents []plumbing.Hash
	refName := plumbing.NewBranchReferenceName(branch)
	if ref, err := s.Reference(refName); err == nil {
		parents = append(parents, ref.Hash())
	}

	sig := object.Signature{Name: "gitloc", Email: "gitloc@example.com", When: time.Unix(1700000000, 0).UTC()}
	c := &object.Commit{
		Author:       sig,
		Committer:    sig,
		Message:      msg,
		TreeHash:     treeHash,
		ParentHashes: parents,
	}
	obj := s.NewEncodedObject()
	if err := c.Encode(obj); err != nil {
		t.Fatalf("encode commit: %v", err)
	}
	hash, err := s.SetEncodedObject(obj)
	if err != nil {
		t.Fatalf("store commit: %v", err)
	}
	if err := s.SetReference(plumbing.NewHashReference(refName, hash)); err != nil {
		t.Fatalf("set ref %s: %v", refName, err)
	}
	return hash
}

// NewDisk 在临时目录初始化仓库，写入 files 并提交一次，返回工作目录
func NewDisk(t testing.TB, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	r, err := git.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("init repo: %v", err)
	}
	wt, err := r.Worktree()
	if err != nil {
		t.Fatalf("worktree: %v", err)
	}
	for name, content := range files {
		p := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
		if _, err := wt.Add(name); err != nil {
			t.Fatalf("add %s: %v", name, err)
		}
	}
	sig := &object.Signature{Name: "gitloc", Email: "gitloc@example.com", When: time.Unix(1700000000, 0).UTC()}
	if _, err := wt.Commit("initial", &git.CommitOptions{Author: sig, Committer: sig}); err != nil {
		t.Fatalf("commit: %v", err)
	}
	return dir
}

// Tag 创建指向 hash 的轻量标签
func Tag(t testing.TB, r *git.Repository, name string, hash plumbing.Hash) {
	t.Helper()
	if err := r.Storer.SetReference(plumbing.NewHashReference(plumbing.NewTagReferenceName(name), hash)); err != nil {
		t.Fatalf("set tag %s: %v", name, err)
	}
}

type node struct {
	files map[string]File
	dirs  map[string]*node
}

func (n *node) add(parts []string, f File) {
	if len(parts) == 1 {
		if n.files == nil {
			n.files = map[string]File{}
		}
		n.files[parts[0]] = f
		return
	}
	if n.dirs == nil {
		n.dirs = map[string]*node{}
	}
	child, ok := n.dirs[parts[0]]
	if !ok {
		child = &node{}
		n.dirs[parts[0]] = child
	}
	child.add(parts[1:], f)
}

func writeTree(t testing.TB, s storer.EncodedObjectStorer, n *node) plumbing.Hash {
	t.Helper()
	entries := make([]object.TreeEntry, 0, len(n.files)+len(n.dirs))
	for name, f := range n.files {
		mode := f.Mode
		if mode == filemode.Empty {
			mode = filemode.Regular
		}
		var hash plumbing.Hash
		if mode == filemode.Submodule {
			hash = plumbing.ComputeHash(plumbing.CommitObject, []byte(f.Path))
		} else {
			hash = writeBlob(t, s, f.Content)
		}
		entries = append(entries, object.TreeEntry{Name: name, Mode: mode, Hash: hash})
	}
	for name, child := range n.dirs {
		entries = append(entries, object.TreeEntry{Name: name, Mode: filemode.Dir, Hash: writeTree(t, s, child)})
	}
	// git 的规范顺序：目录名按追加 `/` 后参与比较
	sort.Slice(entries, func(i, j int) bool { return sortKey(entries[i]) < sortKey(entries[j]) })

	obj := s.NewEncodedObject()
	if err := (&object.Tree{Entries: entries}).Encode(obj); err != nil {
		t.Fatalf("encode tree: %v", err)
	}
	hash, err := s.SetEncodedObject(obj)
	if err != nil {
		t.Fatalf("store tree: %v", err)
	}
	return hash
}

func writeBlob(t testing.TB, s storer.EncodedObjectStorer, content string) plumbing.Hash {
	t.Helper()
	obj := s.NewEncodedObject()
	obj.SetType(plumbing.BlobObject)
	w, err := obj.Writer()
	if err != nil {
		t.Fatalf("blob writer: %v", err)
	}
	if _, err := w.Write([]byte(content)); err != nil {
		t.Fatalf("write blob: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close blob: %v", err)
	}
	hash, err := s.SetEncodedObject(obj)
	if err != nil {
		t.Fatalf("store blob: %v", err)
	}
	return hash
}

func sortKey(e object.TreeEntry) string {
	if e.Mode == filemode.Dir {
		return e.Name + "/"
	}
	return e.Name
}
