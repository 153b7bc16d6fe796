package checkout

import (
	"errors"
	"time"

	"github.com/fjod/go_techstore/internal/cart"
	"github.com/fjod/go_techstore/internal/ids"
)

type PaymentMethod string

const (
	PaymentCard            PaymentMethod = "card"
	PaymentInstantTransfer PaymentMethod = "instant-transfer"
	PaymentBankSlip        PaymentMethod = "bank-slip"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentCard, PaymentInstantTransfer, PaymentBankSlip:
		return true
	}
	return false
}

type Buyer struct {
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	Address       string        `json:"address"`
	PaymentMethod PaymentMethod `json:"payment_method"`
}

// Order is a frozen snapshot of the cart at checkout time. Total always
// equals the recomputed sum over Items; the order is never mutated after
// creation.
type Order struct {
	ID    string      `json:"id"`
	Items []cart.Line `json:"items"`
	Total float64     `json:"total"`
	When  time.Time   `json:"when"`
	Buyer Buyer       `json:"buyer"`
}

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrMissingBuyerField    = errors.New("buyer name, email and address are required")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
)

// CanConfirm reports whether Confirm would succeed for the given cart and
// buyer. Callers use it to disable the confirm action up front.
func CanConfirm(c *cart.Cart, b Buyer) bool {
	return c.Len() > 0 && b.Name != "" && b.Email != "" && b.Address != "" && b.PaymentMethod.Valid()
}

// Confirm produces an Order snapshot from the cart and empties it. The cart
// is left untouched when any precondition fails; no id is consumed on
// failure.
func Confirm(c *cart.Cart, b Buyer, gen ids.Generator, when time.Time) (Order, error) {
	if c.Len() == 0 {
		return Order{}, ErrEmptyCart
	}
	if b.Name == "" || b.Email == "" || b.Address == "" {
		return Order{}, ErrMissingBuyerField
	}
	if !b.PaymentMethod.Valid() {
		return Order{}, ErrInvalidPaymentMethod
	}

	order := Order{
		ID:    gen.NewID("ord"),
		Items: c.Lines(),
		Total: c.Total(),
		When:  when,
		Buyer: b,
	}
	c.Clear()
	return order, nil
}
