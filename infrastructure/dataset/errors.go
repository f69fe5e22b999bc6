package dataset

import "fmt"

// ParseError locates a malformed value inside one of the dataset files.
type ParseError struct {
	File   string
	Line   int
	Record []string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: parse error at line %d: %v (record: %v)", e.File, e.Line, e.Err, e.Record)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

var (
	ErrMissingColumn     = fmt.Errorf("missing column")
	ErrInvalidNumber     = fmt.Errorf("invalid number")
	ErrInvalidDate       = fmt.Errorf("invalid date")
	ErrInvalidMonth      = fmt.Errorf("invalid month")
	ErrUnknownColleague  = fmt.Errorf("unknown colleague")
	ErrUnknownTenureBand = fmt.Errorf("unknown tenure band")
	ErrDuplicateRow      = fmt.Errorf("duplicate row")
)
