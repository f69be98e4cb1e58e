// Package service defines interfaces for external collaborators the
// application depends on, keeping the usecase layer free of infrastructure.
package service

import "context"

// Template names understood by the SMS provider.
const (
	// TemplateNewService notifies a business that a new order was created
	// for it. Tokens: owner full name, business name, order id.
	TemplateNewService = "new-service"

	// TemplateServicemanSMS notifies a worker that an order was assigned to
	// them. Token: order id.
	TemplateServicemanSMS = "serviceman-sms"
)

// SMSMessage is one templated SMS to dispatch. The provider substitutes the
// tokens into the named template; at most four tokens are supported.
type SMSMessage struct {
	Receptor string   // Destination phone number.
	Template string   // Provider-side template name.
	Tokens   []string // Token values, in template order.
}

// SMSGateway sends a single templated SMS synchronously.
// A transport failure or a non-200 provider response yields an error.
type SMSGateway interface {
	SendPattern(ctx context.Context, msg SMSMessage) error
}

// SMSDispatcher is the outbound queue in front of the gateway. Enqueue is
// best-effort and never fails the caller: delivery happens asynchronously
// with the dispatcher's own retry policy, and failures are logged, not
// propagated. Order persistence is the authoritative success signal.
type SMSDispatcher interface {
	Enqueue(msg SMSMessage)
}
