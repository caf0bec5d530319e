package repo

import (
	"errors"
	"fmt"
)

// ErrStop 由 ForEach 的回调返回，用于提前结束遍历且不视为错误
var ErrStop = errors.New("stop walking")

// RepositoryNotFoundError 表示工作目录不是有效的 git 仓库
type RepositoryNotFoundError struct {
	Dir string
	Err error
}

func (e *RepositoryNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("repository not found at %s: %v", e.Dir, e.Err)
	}
	return fmt.Sprintf("repository not found at %s", e.Dir)
}

func (e *RepositoryNotFoundError) Unwrap() error { return e.Err }

// RevisionNotFoundError 表示修订无法解析为树
type RevisionNotFoundError struct {
	Revision string
	Err      error
}

func (e *RevisionNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("revision %q not found: %v", e.Revision, e.Err)
	}
	return fmt.Sprintf("revision %q not found", e.Revision)
}

func (e *RevisionNotFoundError) Unwrap() error { return e.Err }
