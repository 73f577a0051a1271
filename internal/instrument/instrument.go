// Package instrument defines behaviors to report negotiation outcomes.
package instrument

// Instrumentation describes the metrics emitted by the compression path,
// one call per negotiated request.
type Instrumentation interface {
	NegotiationSelected(coding string) // a response coding was selected
	NegotiationNone()                  // no mutually acceptable coding, response left uncompressed
	NegotiationRejected()              // negotiation aborted on a malformed quality value
}

// NopInstrumentation satisfies the Instrumentation interface but does no work.
type NopInstrumentation struct{}

// NegotiationSelected satisfies the Instrumentation interface but does no work.
func (i NopInstrumentation) NegotiationSelected(string) {}

// NegotiationNone satisfies the Instrumentation interface but does no work.
func (i NopInstrumentation) NegotiationNone() {}

// NegotiationRejected satisfies the Instrumentation interface but does no work.
func (i NopInstrumentation) NegotiationRejected() {}
