package workflow

// ExecutionStages partitions steps into dependency rounds: stage k holds
// every step whose dependencies were all placed in stages before k. Steps
// inside a stage are independent and may run in parallel. A round that
// places nothing while steps remain means the graph has a cycle.
func ExecutionStages(steps []*Step) ([][]*Step, error) {
	known := make(map[string]bool, len(steps))
	for _, s := range steps {
		known[s.Agent] = true
	}
	for _, s := range steps {
		for _, dep := range s.Dependencies {
			if !known[dep] {
				return nil, &UnknownDependencyError{Agent: s.Agent, Dependency: dep}
			}
		}
	}

	placed := make(map[string]bool, len(steps))
	remaining := make([]*Step, len(steps))
	copy(remaining, steps)

	var stages [][]*Step
	for len(remaining) > 0 {
		var stage []*Step
		var next []*Step

		for _, s := range remaining {
			ready := true
			for _, dep := range s.Dependencies {
				if !placed[dep] {
					ready = false
					break
				}
			}
			if ready {
				stage = append(stage, s)
			} else {
				next = append(next, s)
			}
		}

		if len(stage) == 0 {
			return nil, ErrCyclicDependency
		}
		for _, s := range stage {
			placed[s.Agent] = true
		}
		stages = append(stages, stage)
		remaining = next
	}

	return stages, nil
}
