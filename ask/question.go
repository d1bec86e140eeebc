package ask

// Question describes a single prompt and how to interpret its reply.
// The set is closed: Input and Confirm are the only variants, and every
// decision point in the resolver switches over both.
type Question interface {
	isQuestion()
}

// Input asks for a line of free text.
//
// A nil Default makes the question required: empty replies re-enter the
// help path instead of resolving. Validate, when set, rejects replies with
// an ErrorAnswer of KindValidation. Transform, when set, is applied once to
// the accepted value (typed or defaulted) before it is returned.
type Input struct {
	Prompt    string
	Help      string
	Default   *string
	Validate  func(string) bool
	Transform func(string) string
}

func (Input) isQuestion() {}

// Confirm asks a yes/no question. Only "y" and "n" (case-insensitive) are
// accepted; anything else re-enters the help path. A nil Default makes the
// question required, and the prompt decoration capitalizes the letter an
// empty reply resolves to.
type Confirm struct {
	Prompt    string
	Help      string
	Default   *bool
	Transform func(bool) bool
}

func (Confirm) isQuestion() {}

// String returns a pointer to s, for use as a question default.
func String(s string) *string {
	return &s
}

// Bool returns a pointer to b, for use as a confirmation default.
func Bool(b bool) *bool {
	return &b
}
