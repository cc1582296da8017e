package dtb

import "errors"

var (
	// ErrMalformedHeader indicates a header field failed a structural check.
	ErrMalformedHeader = errors.New("dtb: malformed header")
	// ErrInvalidNodeName indicates a node name violated the node-name grammar.
	ErrInvalidNodeName = errors.New("dtb: invalid node name")
	// ErrUnbalancedNesting indicates a node-end token with no open node.
	ErrUnbalancedNesting = errors.New("dtb: unbalanced node nesting")
	// ErrPropertyOutsideNode indicates a property token before any node began.
	ErrPropertyOutsideNode = errors.New("dtb: property outside any node")
	// ErrTruncated indicates the structure block was cut short or carried
	// trailing data past the end-of-stream token.
	ErrTruncated = errors.New("dtb: truncated or trailing data")
	// ErrUnknownToken indicates an unrecognized token tag.
	ErrUnknownToken = errors.New("dtb: unknown token")
)
