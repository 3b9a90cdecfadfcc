package workflow

import (
	"fmt"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepWithDeps(agent string, deps ...string) *Step {
	return &Step{Agent: agent, Task: "do " + agent, Dependencies: deps, Status: StepPending}
}

func TestExecutionStages_LinearChain(t *testing.T) {
	steps := []*Step{
		stepWithDeps("coder"),
		stepWithDeps("tester", "coder"),
		stepWithDeps("docs", "tester"),
	}

	stages, err := ExecutionStages(steps)
	require.NoError(t, err)
	require.Len(t, stages, 3)
	assert.Equal(t, "coder", stages[0][0].Agent)
	assert.Equal(t, "tester", stages[1][0].Agent)
	assert.Equal(t, "docs", stages[2][0].Agent)
}

func TestExecutionStages_DiamondRunsMiddleInParallel(t *testing.T) {
	steps := []*Step{
		stepWithDeps("product"),
		stepWithDeps("coder", "product"),
		stepWithDeps("tester", "product"),
		stepWithDeps("docs", "coder", "tester"),
	}

	stages, err := ExecutionStages(steps)
	require.NoError(t, err)
	require.Len(t, stages, 3)

	assert.Len(t, stages[0], 1)
	assert.Len(t, stages[1], 2)
	assert.Len(t, stages[2], 1)

	middle := []string{stages[1][0].Agent, stages[1][1].Agent}
	assert.ElementsMatch(t, []string{"coder", "tester"}, middle)
}

func TestExecutionStages_IndependentStepsShareOneStage(t *testing.T) {
	steps := []*Step{
		stepWithDeps("coder"),
		stepWithDeps("tester"),
		stepWithDeps("docs"),
	}

	stages, err := ExecutionStages(steps)
	require.NoError(t, err)
	require.Len(t, stages, 1)
	assert.Len(t, stages[0], 3)
}

func TestExecutionStages_CycleDetected(t *testing.T) {
	steps := []*Step{
		stepWithDeps("coder", "tester"),
		stepWithDeps("tester", "coder"),
	}

	_, err := ExecutionStages(steps)
	assert.ErrorIs(t, err, ErrCyclicDependency)
}

func TestExecutionStages_SelfDependencyIsACycle(t *testing.T) {
	steps := []*Step{stepWithDeps("coder", "coder")}

	_, err := ExecutionStages(steps)
	assert.ErrorIs(t, err, ErrCyclicDependency)
}

func TestExecutionStages_UnknownDependency(t *testing.T) {
	steps := []*Step{stepWithDeps("coder", "ghost")}

	_, err := ExecutionStages(steps)
	var unknownErr *UnknownDependencyError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "ghost", unknownErr.Dependency)
}

// Every generated acyclic graph must partition so that each step lands in a
// stage strictly after all of its dependencies, and all steps are placed
// exactly once.
func TestExecutionStages_TopologicalProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("stage index strictly increases along dependencies", prop.ForAll(
		func(n int, edgeBits []bool) bool {
			steps := genAcyclicSteps(n, edgeBits)

			stages, err := ExecutionStages(steps)
			if err != nil {
				return false
			}

			stageOf := make(map[string]int)
			placed := 0
			for idx, stage := range stages {
				for _, s := range stage {
					stageOf[s.Agent] = idx
					placed++
				}
			}
			if placed != len(steps) {
				return false
			}

			for _, s := range steps {
				for _, dep := range s.Dependencies {
					if stageOf[dep] >= stageOf[s.Agent] {
						return false
					}
				}
			}
			return true
		},
		gen.IntRange(1, 8),
		gen.SliceOfN(28, gen.Bool()),
	))

	properties.TestingRun(t)
}

// genAcyclicSteps builds a random DAG by only allowing edges from lower to
// higher indices; edgeBits selects which of the n*(n-1)/2 candidate edges
// exist.
func genAcyclicSteps(n int, edgeBits []bool) []*Step {
	steps := make([]*Step, n)
	for i := 0; i < n; i++ {
		steps[i] = stepWithDeps(fmt.Sprintf("agent%d", i))
	}

	bit := 0
	for j := 1; j < n; j++ {
		for i := 0; i < j; i++ {
			if bit < len(edgeBits) && edgeBits[bit] {
				steps[j].Dependencies = append(steps[j].Dependencies, steps[i].Agent)
			}
			bit++
		}
	}
	return steps
}
