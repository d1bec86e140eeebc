// Package questionnaire loads ordered question sets from YAML files and
// compiles them into resolver questions.
//
// # File format
//
//	apiVersion: v1
//	kind: Questionnaire
//	name: onboarding
//	spec:
//	  questions:
//	    - key: first_name
//	      type: input
//	      prompt: "What is your first name?"
//	      help: "We use this in the welcome message"
//	    - key: team
//	      type: input
//	      prompt: "Team name?"
//	      default: platform
//	      case: lower
//	    - key: subscribe
//	      type: confirm
//	      prompt: "Subscribe to updates?"
//	      defaultYes: true
//
// Parse reads a file, Validate reports structural problems with field
// paths and suggestions, and Build produces []ask.KeyedQuestion ready for
// ask.AskMany. MarshalReport and WriteReport render resolved answers back
// to YAML.
package questionnaire
