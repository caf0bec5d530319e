package classify

import (
	"fmt"
	"strings"

	"github.com/yeisme/gitloc/pkg/utils/suggest"
)

// UnsupportedGroupByError 表示不支持的分组方式
type UnsupportedGroupByError struct {
	Value string
}

func (e *UnsupportedGroupByError) Error() string {
	return fmt.Sprintf("unsupported groupby %q (valid: %s)%s",
		e.Value, strings.Join(ValidSchemes(), ", "), suggest.Hint(e.Value, ValidSchemes()))
}
