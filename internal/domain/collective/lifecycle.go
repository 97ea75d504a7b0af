package collective

import "time"

type ReadModel struct {
	DisplayedStatus DisplayedStatus
	AllowedActions  []AllowedAction
	IsBookable      bool
	IsSoldOut       bool
	IsEditable      bool
	IsArchived      bool
}

func (m ReadModel) Allows(action AllowedAction) bool {
	for _, a := range m.AllowedActions {
		if a == action {
			return true
		}
	}
	return false
}

type Settings struct {
	NewStatuses        bool
	CancellationGrace  time.Duration
	CancellationCutoff time.Duration
	EndedActionsWindow time.Duration
}

// Engine bundles the four evaluators. It holds only configuration and is safe for concurrent use.
type Engine struct {
	Resolver   StatusResolver
	Authorizer ActionAuthorizer
	Policy     CancellationPolicy
}

func NewEngine(s Settings) *Engine {
	return &Engine{
		Resolver:   NewStatusResolver(s.NewStatuses),
		Authorizer: NewActionAuthorizer(s.EndedActionsWindow),
		Policy:     NewCancellationPolicy(s.CancellationGrace, s.CancellationCutoff),
	}
}

func (e *Engine) Offer(now time.Time, offer OfferFacts, stock *StockFacts) ReadModel {
	status := e.Resolver.ResolveOffer(now, offer, stock)

	var (
		bookability Bookability
		end         *time.Time
	)
	if stock != nil {
		bookability = Evaluate(now, *stock, offer.State())
		end = stock.EndDatetime
	} else {
		bookability.IsEditable = isEditable(offer.Validation, false)
	}

	return ReadModel{
		DisplayedStatus: status,
		AllowedActions:  e.Authorizer.AllowedAt(now, status, offer.IsPublicAPI, end),
		IsBookable:      bookability.IsBookable,
		IsSoldOut:       bookability.IsSoldOut,
		IsEditable:      bookability.IsEditable,
		IsArchived:      offer.IsArchived(),
	}
}

func (e *Engine) Template(t TemplateFacts) ReadModel {
	status := e.Resolver.ResolveTemplate(t)
	return ReadModel{
		DisplayedStatus: status,
		AllowedActions:  e.Authorizer.Allowed(status, false, true),
		IsEditable:      t.IsEditable(),
		IsArchived:      t.IsArchived(),
	}
}

// BookingCancellationLimit is the deadline stored on a booking created at created.
func (e *Engine) BookingCancellationLimit(stock StockFacts, created time.Time) time.Time {
	return e.Policy.LimitDate(stock.BeginningDatetime, created)
}
