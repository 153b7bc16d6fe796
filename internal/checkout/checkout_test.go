package checkout

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_techstore/internal/cart"
	"github.com/fjod/go_techstore/internal/ids"
	"github.com/fjod/go_techstore/internal/catalog"
)

func populatedCart() *cart.Cart {
	c := cart.New(nil)
	c.Add(catalog.Product{ID: "p4", Price: 499.90})
	c.Add(catalog.Product{ID: "p4", Price: 499.90})
	c.Add(catalog.Product{ID: "p5", Price: 349.00})
	return c
}

func validBuyer() Buyer {
	return Buyer{
		Name:          "Ana Souza",
		Email:         "ana@example.com",
		Address:       "Main St 42",
		PaymentMethod: PaymentCard,
	}
}

func TestConfirm_Success(t *testing.T) {
	c := populatedCart()
	when := time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC)

	order, err := Confirm(c, validBuyer(), &ids.SeqGenerator{}, when)
	require.NoError(t, err)

	assert.Equal(t, "ord-000001", order.ID)
	assert.InDelta(t, 1348.80, order.Total, 1e-9)
	assert.Equal(t, when, order.When)
	assert.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Qty)

	// cart is emptied on success
	assert.Zero(t, c.Len())
}

func TestConfirm_TotalMatchesItemSum(t *testing.T) {
	c := populatedCart()

	order, err := Confirm(c, validBuyer(), &ids.SeqGenerator{}, time.Now())
	require.NoError(t, err)

	var sum float64
	for _, it := range order.Items {
		sum += it.Price * float64(it.Qty)
	}
	assert.InDelta(t, sum, order.Total, 1e-9)
}

func TestConfirm_EmptyCart(t *testing.T) {
	c := cart.New(nil)

	_, err := Confirm(c, validBuyer(), &ids.SeqGenerator{}, time.Now())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestConfirm_MissingBuyerFields(t *testing.T) {
	cases := []struct {
		name  string
		buyer Buyer
	}{
		{"no name", Buyer{Email: "a@b.c", Address: "x", PaymentMethod: PaymentCard}},
		{"no email", Buyer{Name: "a", Address: "x", PaymentMethod: PaymentCard}},
		{"no address", Buyer{Name: "a", Email: "a@b.c", PaymentMethod: PaymentCard}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := populatedCart()

			_, err := Confirm(c, tc.buyer, &ids.SeqGenerator{}, time.Now())
			assert.ErrorIs(t, err, ErrMissingBuyerField)

			// cart untouched on failure
			assert.Equal(t, 2, c.Len())
		})
	}
}

func TestConfirm_InvalidPaymentMethod(t *testing.T) {
	c := populatedCart()
	buyer := validBuyer()
	buyer.PaymentMethod = "check"

	_, err := Confirm(c, buyer, &ids.SeqGenerator{}, time.Now())
	assert.ErrorIs(t, err, ErrInvalidPaymentMethod)
	assert.Equal(t, 2, c.Len())
}

func TestConfirm_SnapshotIsFrozen(t *testing.T) {
	c := populatedCart()

	order, err := Confirm(c, validBuyer(), &ids.SeqGenerator{}, time.Now())
	require.NoError(t, err)

	// later cart activity leaves the snapshot alone
	c.Add(catalog.Product{ID: "p1", Price: 6499.90})
	assert.Len(t, order.Items, 2)
	assert.InDelta(t, 1348.80, order.Total, 1e-9)
}

func TestCanConfirm(t *testing.T) {
	assert.True(t, CanConfirm(populatedCart(), validBuyer()))
	assert.False(t, CanConfirm(cart.New(nil), validBuyer()))

	incomplete := validBuyer()
	incomplete.Email = ""
	assert.False(t, CanConfirm(populatedCart(), incomplete))
}

func TestPaymentMethod_Valid(t *testing.T) {
	assert.True(t, PaymentCard.Valid())
	assert.True(t, PaymentInstantTransfer.Valid())
	assert.True(t, PaymentBankSlip.Valid())
	assert.False(t, PaymentMethod("").Valid())
	assert.False(t, PaymentMethod("cash").Valid())
}
