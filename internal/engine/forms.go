package engine

// FormKind names the dialog/form screens the simulation can show.
type FormKind int

const (
	FormContinue FormKind = iota // depart confirmation
	FormSupplies
	FormFork
	FormMap
)

// TransitionKind classifies what a form asks the dispatcher to do after
// handling a line of input.
type TransitionKind int

const (
	TransitionNone  TransitionKind = iota // stay put, wait for more input
	TransitionClose                       // pop this form
	TransitionTo                          // replace this form with another
)

// Transition is the command a form returns from HandleInput. Forms never
// mutate the mode stack themselves; the simulation applies the command.
type Transition struct {
	Kind TransitionKind
	Form FormKind
}

func None() Transition            { return Transition{Kind: TransitionNone} }
func Close() Transition           { return Transition{Kind: TransitionClose} }
func To(form FormKind) Transition { return Transition{Kind: TransitionTo, Form: form} }

// Form is one interactive screen: a text prompt plus input handling.
// Render must be idempotent; calling it repeatedly without new input
// produces the same string.
type Form interface {
	Render() string
	HandleInput(line string) Transition
}
