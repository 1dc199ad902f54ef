// Package cart is the boundary between the product page and whatever fulfils orders.
// The page only knows the Hook interface; LogHook is the default that records the
// request and acknowledges it.
package cart

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
)

// ErrInvalidQuantity is returned for requests below one unit
var ErrInvalidQuantity = errors.New("quantity must be at least 1")

// Request is one add-to-cart activation
type Request struct {
	SessionID   string
	ProductSlug string
	Quantity    int
}

// Receipt acknowledges an accepted request
type Receipt struct {
	ID       string `json:"id"`
	Quantity int    `json:"quantity"`
}

// Hook accepts add-to-cart requests
type Hook interface {
	Add(req Request) (Receipt, error)
}

// LogHook logs each request and issues a receipt id. It keeps no state.
type LogHook struct{}

func (LogHook) Add(req Request) (Receipt, error) {
	if err := req.Validate(); err != nil {
		return Receipt{}, err
	}

	rcpt := Receipt{ID: uuid.NewString(), Quantity: req.Quantity}
	logger.Info("Add to cart",
		"receipt", rcpt.ID,
		"session", req.SessionID,
		"product", req.ProductSlug,
		"quantity", req.Quantity,
	)
	return rcpt, nil
}

// Validate checks the request before it reaches a hook
func (req Request) Validate() error {
	if req.ProductSlug == "" {
		return errors.New("product slug is required")
	}
	if req.Quantity < 1 {
		return ErrInvalidQuantity
	}
	return nil
}
