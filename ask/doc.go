// Package ask turns raw terminal input into typed, validated answers.
//
// # Overview
//
// A Question describes what to ask (free text or yes/no confirmation) and
// how to interpret the reply: an optional default for empty input, an
// optional validator, and an optional transform applied to accepted values.
// Resolving a question always produces exactly one Answer; failures travel
// through the same Answer channel as successes, so callers switch on the
// result instead of handling errors out of band.
//
// # Usage
//
//	name := ask.Ask(ask.Input{
//	    Prompt:  "What is your name?",
//	    Default: ask.String("World"),
//	}, nil)
//
//	switch a := name.(type) {
//	case ask.StringAnswer:
//	    fmt.Printf("Hello, %s!\n", a.Value)
//	case ask.ErrorAnswer:
//	    fmt.Println("could not read a name:", a.Kind)
//	}
//
// Passing a nil LineSource reads from the terminal. Tests and scripted runs
// inject their own source:
//
//	answer := ask.Ask(ask.Confirm{Prompt: "Continue?"}, ask.Sequence("y"))
//
// # Help and re-asking
//
// AskWithHelp prints the question's help text before asking. Questions with
// no default re-enter the help path when the reply is empty, and
// confirmations do the same for replies that are not "y" or "n". The re-ask
// loop is unbounded: an interactive user eventually answers, and scripted
// sources fail with ErrNoMoreLines once exhausted, which ends the loop with
// an input error.
package ask
