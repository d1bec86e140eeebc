package ask

// ErrorKind classifies a failed resolution.
type ErrorKind int

const (
	// KindInput means the line source failed before a full reply was read.
	KindInput ErrorKind = iota

	// KindInvalidType means a transform met an answer variant that does not
	// match the question's declared type. This is a contract fault in the
	// caller's wiring, not a user error, and is unreachable through the
	// resolver's own paths.
	KindInvalidType

	// KindValidation means the reply was rejected by the question's
	// validator.
	KindValidation
)

// String returns the kind's name for reports and error messages.
func (k ErrorKind) String() string {
	switch k {
	case KindInput:
		return "input"
	case KindInvalidType:
		return "invalid-type"
	case KindValidation:
		return "validation"
	default:
		return "unknown"
	}
}

// Answer is the outcome of resolving one question. The set is closed:
// StringAnswer, BoolAnswer, ErrorAnswer, and NoAnswer are the only
// variants, and exactly one is produced per resolution attempt.
type Answer interface {
	isAnswer()
}

// StringAnswer carries the accepted value of an Input question.
type StringAnswer struct {
	Value string
}

func (StringAnswer) isAnswer() {}

// BoolAnswer carries the accepted value of a Confirm question.
type BoolAnswer struct {
	Value bool
}

func (BoolAnswer) isAnswer() {}

// ErrorAnswer reports a classified failure in place of a value.
type ErrorAnswer struct {
	Kind ErrorKind
}

func (ErrorAnswer) isAnswer() {}

// NoAnswer is the zero outcome. The resolver never produces it, but it is
// part of the answer space so callers can represent "not asked yet".
type NoAnswer struct{}

func (NoAnswer) isAnswer() {}
