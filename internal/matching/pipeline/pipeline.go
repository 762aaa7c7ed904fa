package pipeline

// Pipeline runs a fixed, ordered sequence of stages against one
// ProcessingContext. There is no branching or recursion: every stage runs
// exactly once, in order, and decides for itself whether to act based on
// ctx.Aborted().
type Pipeline struct {
	stages []Handler
}

// New builds the standard five-stage pipeline: prepare condition, adjust
// for TIF, validate, execute, finalize.
func New() *Pipeline {
	return &Pipeline{stages: []Handler{
		PrepareConditionHandler{},
		TifAdjustHandler{},
		ValidationHandler{},
		ExecutionHandler{},
		FinalizeHandler{},
	}}
}

// Run drives ctx through every stage in order.
func (p *Pipeline) Run(ctx *ProcessingContext) {
	for _, stage := range p.stages {
		stage.Process(ctx)
	}
}
