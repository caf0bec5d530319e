package cmd

import (
	"errors"

	"github.com/yeisme/gitloc/pkg/classify"
	"github.com/yeisme/gitloc/pkg/repo"
	"github.com/yeisme/gitloc/pkg/report"
)

// 进程退出码
const (
	ExitOK                 = 0
	ExitError              = 1
	ExitRepositoryNotFound = 2
	ExitRevisionNotFound   = 3
	ExitUnsupportedFormat  = 4
	ExitUnsupportedGroupBy = 5
)

// ExitCode 把错误映射为退出码
func ExitCode(err error) int {
	var (
		repoErr    *repo.RepositoryNotFoundError
		revErr     *repo.RevisionNotFoundError
		formatErr  *report.UnsupportedFormatError
		groupByErr *classify.UnsupportedGroupByError
	)
	switch {
	case err == nil:
		return ExitOK
	case errors.As(err, &repoErr):
		return ExitRepositoryNotFound
	case errors.As(err, &revErr):
		return ExitRevisionNotFound
	case errors.As(err, &formatErr):
		return ExitUnsupportedFormat
	case errors.As(err, &groupByErr):
		return ExitUnsupportedGroupBy
	default:
		return ExitError
	}
}
