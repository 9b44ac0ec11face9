package paginate

// Observer receives diagnostics from the paginator and generator.
// Implementations must be safe for concurrent use when the generator runs
// more than one worker.
type Observer interface {
	Info(msg string)
	Warn(msg string)
	Debug(msg string)
}

// NopObserver discards all messages.
type NopObserver struct{}

// Compile-time interface implementation check.
var _ Observer = NopObserver{}

func (NopObserver) Info(string)  {}
func (NopObserver) Warn(string)  {}
func (NopObserver) Debug(string) {}

// ObserverFuncs adapts plain functions to Observer. Nil fields are ignored.
type ObserverFuncs struct {
	OnInfo  func(msg string)
	OnWarn  func(msg string)
	OnDebug func(msg string)
}

// Compile-time interface implementation check.
var _ Observer = ObserverFuncs{}

func (o ObserverFuncs) Info(msg string) {
	if o.OnInfo != nil {
		o.OnInfo(msg)
	}
}

func (o ObserverFuncs) Warn(msg string) {
	if o.OnWarn != nil {
		o.OnWarn(msg)
	}
}

func (o ObserverFuncs) Debug(msg string) {
	if o.OnDebug != nil {
		o.OnDebug(msg)
	}
}
