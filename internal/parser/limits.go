package parser

import "fmt"

// Security limits bound the cost of parsing adversarial input. Grounded on
// a MaxNestingDepth/MaxTokenCount + SecurityError pattern. Variables, not
// constants, so a deployment's configuration can raise or lower them
// without a rebuild (see cmd/timon/config).
var (
	MaxNestingDepth = 100
	MaxTokenCount   = 10000
)

// SecurityError reports that an input exceeded one of the limits above.
type SecurityError struct {
	Message string
	Limit   int
	Actual  int
}

func (e *SecurityError) Error() string {
	return fmt.Sprintf("%s (limit %d, got %d)", e.Message, e.Limit, e.Actual)
}
