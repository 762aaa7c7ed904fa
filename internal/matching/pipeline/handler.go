package pipeline

// Handler is one stage of the processing chain.
type Handler interface {
	Process(ctx *ProcessingContext)
}
