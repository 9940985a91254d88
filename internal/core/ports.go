package core

import "context"

// ServiceDirectory is the read side of the remote backend: the full service
// and carousel collections plus the public quote submission endpoint.
//
// Reads return the collection in backend order (no contractual sort). A fetch
// failure or an unrecognizable response yields an empty slice together with
// the error; callers render the empty state and keep the error for logs.
type ServiceDirectory interface {
	Services(ctx context.Context) ([]ServiceRecord, error)
	Carousels(ctx context.Context) ([]CarouselSlide, error)
	SubmitQuote(ctx context.Context, q QuoteSubmission) error
}

// AdminAPI is the write side, bearer-token authenticated against the
// backend's /admin namespace.
type AdminAPI interface {
	Login(ctx context.Context, identity, password string) (string, error)

	CreateService(ctx context.Context, fields ServiceFields) error
	UpdateService(ctx context.Context, id string, fields ServiceFields) error
	DeleteService(ctx context.Context, id string) error

	CreateCarousel(ctx context.Context, fields CarouselFields) error
	UpdateCarousel(ctx context.Context, id string, fields CarouselFields) error
	DeleteCarousel(ctx context.Context, id string) error

	QuoteRequests(ctx context.Context) ([]QuoteRequest, error)
	UpdateQuoteStatus(ctx context.Context, id, status string) error
	DeleteQuoteRequest(ctx context.Context, id string) error
}

// TokenSource yields the bearer token for the current request, if any.
// The web layer stores the admin token on the request context; injecting the
// lookup keeps the client decoupled from how sessions are kept.
type TokenSource func(ctx context.Context) (string, bool)
