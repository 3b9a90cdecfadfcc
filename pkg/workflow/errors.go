package workflow

import (
	"errors"
	"fmt"
)

// ErrCyclicDependency is returned when step dependencies cannot be
// partitioned into execution stages.
var ErrCyclicDependency = errors.New("cyclic dependency between workflow steps")

// ErrReorderNotAllowed is returned when a template does not opt in to
// reordering. Absence of the flag refuses.
var ErrReorderNotAllowed = errors.New("workflow template does not allow reordering")

// ErrReorderBreaksDependencies is returned when a requested order would run
// a step before one of its dependencies.
var ErrReorderBreaksDependencies = errors.New("requested order violates step dependencies")

// UnknownStepError reports a reference to a step agent that does not exist
// in the execution.
type UnknownStepError struct {
	Agent string
}

func (e *UnknownStepError) Error() string {
	return fmt.Sprintf("unknown workflow step agent %q", e.Agent)
}

// UnknownDependencyError reports a step depending on an agent with no step.
type UnknownDependencyError struct {
	Agent      string
	Dependency string
}

func (e *UnknownDependencyError) Error() string {
	return fmt.Sprintf("step %q depends on unknown agent %q", e.Agent, e.Dependency)
}
