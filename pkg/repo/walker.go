package repo

import (
	"errors"
	"fmt"
	"io"

	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/filemode"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// Blob 是树中的一个文件条目，只读
type Blob struct {
	Path string
	Hash plumbing.Hash
	Size int64
	Mode filemode.FileMode

	blob *object.Blob
}

// Open 从对象库读取内容
func (b *Blob) Open() (io.ReadCloser, error) {
	return b.blob.Reader()
}

// Bytes 读取完整内容
func (b *Blob) Bytes() ([]byte, error) {
	rc, err := b.Open()
	if err != nil {
		return nil, fmt.Errorf("open blob %s (%s): %w", b.Path, b.Hash, err)
	}
	defer func() { _ = rc.Close() }()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("read blob %s (%s): %w", b.Path, b.Hash, err)
	}
	return data, nil
}

// Walker 按 git 树的顺序深度优先地产出文件，只能遍历一次
//
// 目录会被展开但不产出；子模块与符号链接条目会被跳过，它们没有可统计的行内容
type Walker struct {
	tree   *Tree
	tw     *object.TreeWalker
	filter pathFilter
	done   bool

	skipped int
}

func newWalker(t *Tree, opts WalkOptions) *Walker {
	return &Walker{
		tree:   t,
		tw:     object.NewTreeWalker(t.tree, true, nil),
		filter: newPathFilter(opts),
	}
}

// Next 返回下一个文件；遍历结束后总是返回 io.EOF
func (w *Walker) Next() (*Blob, error) {
	if w.done {
		return nil, io.EOF
	}
	for {
		name, entry, err := w.tw.Next()
		if err == io.EOF {
			w.close()
			return nil, io.EOF
		}
		if err != nil {
			w.close()
			return nil, fmt.Errorf("walk tree %s: %w", w.tree.Commit(), err)
		}

		switch entry.Mode {
		case filemode.Dir:
			continue
		case filemode.Submodule, filemode.Symlink:
			w.skipped++
			continue
		}
		if !entry.Mode.IsFile() {
			w.skipped++
			continue
		}
		if !w.filter.match(name) {
			continue
		}

		b, err := object.GetBlob(w.tree.repo.repo.Storer, entry.Hash)
		if err != nil {
			w.close()
			return nil, fmt.Errorf("load blob %s (%s): %w", name, entry.Hash, err)
		}
		return &Blob{
			Path: name,
			Hash: entry.Hash,
			Size: b.Size,
			Mode: entry.Mode,
			blob: b,
		}, nil
	}
}

// ForEach 对每个文件调用 fn；fn 返回 ErrStop 时提前结束且不返回错误
func (w *Walker) ForEach(fn func(*Blob) error) error {
	defer w.close()
	for {
		b, err := w.Next()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if err := fn(b); err != nil {
			if errors.Is(err, ErrStop) {
				return nil
			}
			return err
		}
	}
}

// Skipped 返回目前为止跳过的子模块与符号链接数量
func (w *Walker) Skipped() int { return w.skipped }

func (w *Walker) close() {
	if w.done {
		return
	}
	w.done = true
	w.tw.Close()
}
