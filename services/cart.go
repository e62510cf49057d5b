package services

import (
	"github.com/Kariqs/vkusnyashka/models"
	"github.com/juju/errors"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

type CartState string

const (
	CartAdded   CartState = "added"
	CartRemoved CartState = "removed"
)

// ToggleCart adds the product to the viewer's cart when absent and removes it
// when present. A toggle that loses a race is retried once, which applies it as the
// next toggle in sequence; a second conflict leaves the item in the cart.
func (s *Shop) ToggleCart(req Request, productID uint) (CartState, error) {
	if !req.Viewer.Authenticated() {
		return "", errors.Unauthorizedf("cart requires a signed-in user")
	}
	if _, err := s.store.FindProduct(req.Context, productID); err != nil {
		return "", errors.Trace(err)
	}

	added, err := s.store.ToggleCartItem(req.Context, req.Viewer.UserID, productID, req.Now)
	if errors.Is(err, errors.AlreadyExists) {
		log.WithFields(log.Fields{"user": req.Viewer.UserID, "product": productID}).
			Debug("Cart toggle lost a race, retrying")
		added, err = s.store.ToggleCartItem(req.Context, req.Viewer.UserID, productID, req.Now)
		if errors.Is(err, errors.AlreadyExists) {
			return CartAdded, nil
		}
	}
	if err != nil {
		return "", errors.Trace(err)
	}
	if added {
		return CartAdded, nil
	}
	return CartRemoved, nil
}

type CartPage struct {
	Items []models.CartItem `json:"items"`
	Total decimal.Decimal   `json:"total"`
}

// Cart lists the viewer's cart and its total.
func (s *Shop) Cart(req Request) (CartPage, error) {
	if !req.Viewer.Authenticated() {
		return CartPage{}, errors.Unauthorizedf("cart requires a signed-in user")
	}
	items, err := s.store.CartItems(req.Context, req.Viewer.UserID)
	if err != nil {
		return CartPage{}, errors.Trace(err)
	}
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return CartPage{Items: items, Total: total}, nil
}
