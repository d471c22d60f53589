package services

import (
	"errors"

	"github.com/catalog-labs/catalog-api/store"
)

// CartService mutates cart line items with stock enforcement and builds
// cart views with totals derived from current product prices. Each mutation
// is one read-check-write transaction on the affected item; nothing here
// decrements product stock.
type CartService struct {
	store store.Store
}

func NewCartService(s store.Store) *CartService {
	return &CartService{store: s}
}

func (s *CartService) CreateCart() (CartView, error) {
	cart, err := s.store.CreateCart()
	if err != nil {
		return CartView{}, err
	}
	return s.GetCart(cart.ID)
}

func (s *CartService) DeleteCart(cartID uint) error {
	if err := s.store.DeleteCart(cartID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCartNotFound
		}
		return err
	}
	return nil
}

// AddItem adds quantity units of a product to the cart. When the (cart,
// product) pair already exists the stock check runs against the summed
// target quantity, not the increment alone.
func (s *CartService) AddItem(cartID, productID uint, quantity int) (CartView, error) {
	if quantity < 1 {
		return CartView{}, ErrQuantityTooLow
	}
	err := s.store.InTransaction(func(tx store.Store) error {
		if _, err := tx.GetCart(cartID); err != nil {
			return cartErr(err)
		}
		product, err := tx.GetProduct(productID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		if !AdmitQuantity(quantity, product.Quantity) {
			return &StockError{Requested: quantity, Available: product.Quantity}
		}
		item, created, err := tx.GetOrCreateCartItem(cartID, productID, quantity)
		if err != nil {
			return err
		}
		if created {
			return nil
		}
		target := item.Quantity + quantity
		if !AdmitQuantity(target, product.Quantity) {
			return &StockError{Requested: target, Available: product.Quantity}
		}
		item.Quantity = target
		return tx.SaveCartItem(item)
	})
	if err != nil {
		return CartView{}, err
	}
	return s.GetCart(cartID)
}

// UpdateItem sets an item's quantity to an absolute value. Unlike AddItem
// the stock check runs against the new quantity alone; swapping the two
// shapes would silently change what gets admitted.
func (s *CartService) UpdateItem(cartID, itemID uint, quantity int) (CartView, error) {
	err := s.store.InTransaction(func(tx store.Store) error {
		item, err := tx.GetCartItem(cartID, itemID)
		if err != nil {
			return itemErr(err)
		}
		if quantity < 1 {
			return ErrQuantityTooLow
		}
		product, err := tx.GetProduct(item.ProductID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrProductNotFound
			}
			return err
		}
		if !AdmitQuantity(quantity, product.Quantity) {
			return &StockError{Requested: quantity, Available: product.Quantity}
		}
		item.Quantity = quantity
		return tx.SaveCartItem(item)
	})
	if err != nil {
		return CartView{}, err
	}
	return s.GetCart(cartID)
}

// RemoveItem deletes the item unconditionally; removal never consults stock.
func (s *CartService) RemoveItem(cartID, itemID uint) (CartView, error) {
	err := s.store.InTransaction(func(tx store.Store) error {
		item, err := tx.GetCartItem(cartID, itemID)
		if err != nil {
			return itemErr(err)
		}
		return tx.DeleteCartItem(item.ID)
	})
	if err != nil {
		return CartView{}, err
	}
	return s.GetCart(cartID)
}

// GetCart rereads the cart and derives the total from current product
// prices. It never mutates state.
func (s *CartService) GetCart(cartID uint) (CartView, error) {
	cart, err := s.store.GetCartWithItems(cartID)
	if err != nil {
		return CartView{}, cartErr(err)
	}
	return buildCartView(cart), nil
}

func cartErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrCartNotFound
	}
	return err
}

func itemErr(err error) error {
	if errors.Is(err, store.ErrNotFound) {
		return ErrItemNotFound
	}
	return err
}
