package services

import (
	"sort"
	"testing"

	"github.com/catalog-labs/catalog-api/models"
	"github.com/catalog-labs/catalog-api/store"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore is an in-memory store.Store. InTransaction runs the callback
// directly; atomicity is the real store's concern, the engine only cares
// about the sequencing.
type fakeStore struct {
	products map[uint]*models.Product
	carts    map[uint]*models.Cart
	items    map[uint]*models.CartItem
	nextID   uint
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		products: map[uint]*models.Product{},
		carts:    map[uint]*models.Cart{},
		items:    map[uint]*models.CartItem{},
	}
}

func (f *fakeStore) addProduct(id uint, price string, stock int) *models.Product {
	p := &models.Product{
		ID:       id,
		Title:    "Product",
		Price:    decimal.RequireFromString(price),
		Priority: models.PriorityMedium,
		Quantity: stock,
	}
	f.products[id] = p
	return p
}

func (f *fakeStore) addCart(id uint) *models.Cart {
	cart := &models.Cart{ID: id}
	f.carts[id] = cart
	return cart
}

func (f *fakeStore) InTransaction(fn func(store.Store) error) error { return fn(f) }

func (f *fakeStore) GetProduct(id uint) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakeStore) CreateCart() (*models.Cart, error) {
	f.nextID++
	cart := &models.Cart{ID: f.nextID}
	f.carts[cart.ID] = cart
	return cart, nil
}

func (f *fakeStore) GetCart(id uint) (*models.Cart, error) {
	cart, ok := f.carts[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	cp := *cart
	return &cp, nil
}

func (f *fakeStore) GetCartWithItems(id uint) (*models.Cart, error) {
	cart, err := f.GetCart(id)
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	for _, item := range f.items {
		if item.CartID != id {
			continue
		}
		cp := *item
		cp.Product = *f.products[item.ProductID]
		items = append(items, cp)
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	cart.Items = items
	return cart, nil
}

func (f *fakeStore) DeleteCart(id uint) error {
	if _, ok := f.carts[id]; !ok {
		return store.ErrNotFound
	}
	delete(f.carts, id)
	for itemID, item := range f.items {
		if item.CartID == id {
			delete(f.items, itemID)
		}
	}
	return nil
}

func (f *fakeStore) GetCartItem(cartID, itemID uint) (*models.CartItem, error) {
	item, ok := f.items[itemID]
	if !ok || item.CartID != cartID {
		return nil, store.ErrNotFound
	}
	cp := *item
	return &cp, nil
}

func (f *fakeStore) GetOrCreateCartItem(cartID, productID uint, quantity int) (*models.CartItem, bool, error) {
	for _, item := range f.items {
		if item.CartID == cartID && item.ProductID == productID {
			cp := *item
			return &cp, false, nil
		}
	}
	f.nextID++
	item := &models.CartItem{ID: f.nextID, CartID: cartID, ProductID: productID, Quantity: quantity}
	f.items[item.ID] = item
	cp := *item
	return &cp, true, nil
}

func (f *fakeStore) SaveCartItem(item *models.CartItem) error {
	cp := *item
	f.items[item.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteCartItem(itemID uint) error {
	if _, ok := f.items[itemID]; !ok {
		return store.ErrNotFound
	}
	delete(f.items, itemID)
	return nil
}

func TestAddItemRejectedWhenExceedingStock(t *testing.T) {
	fs := newFakeStore()
	fs.addProduct(1, "10.50", 2)
	fs.addCart(1)
	svc := NewCartService(fs)

	_, err := svc.AddItem(1, 1, 5)
	require.Error(t, err)
	assert.True(t, IsStockError(err))

	var se *StockError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 5, se.Requested)
	assert.Equal(t, 2, se.Available)

	// no partial mutation: cart stays empty
	view, err := svc.GetCart(1)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, "0.00", view.Total)
}

func TestAddItemWithinStock(t *testing.T) {
	fs := newFakeStore()
	fs.addProduct(1, "10.50", 2)
	fs.addCart(1)
	svc := NewCartService(fs)

	view, err := svc.AddItem(1, 1, 2)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity)
	assert.Equal(t, "21.00", view.Total)
}

func TestAddItemIncrementChecksSummedTarget(t *testing.T) {
	fs := newFakeStore()
	fs.addProduct(1, "10.50", 2)
	fs.addCart(1)
	svc := NewCartService(fs)

	_, err := svc.AddItem(1, 1, 2)
	require.NoError(t, err)

	// 2 already in cart, 2+1 > stock of 2
	_, err = svc.AddItem(1, 1, 1)
	require.Error(t, err)
	assert.True(t, IsStockError(err))

	view, err := svc.GetCart(1)
	require.NoError(t, err)
	require.Len(t, view.Items, 1)
	assert.Equal(t, 2, view.Items[0].Quantity, "quantity unchanged after rejection")
}

func TestAddItemIncrementAdmittedWhenStockAllows(t *testing.T) {
	fs := newFakeStore()
	fs.addProduct(1, "5.00", 3)
	fs.addCart(1)
	svc := NewCartService(fs)

	_, err := svc.AddItem(1, 1, 2)
	require.NoError(t, err)
	view, err := svc.AddItem(1, 1, 1)
	require.NoError(t, err)

	require.Len(t, view.Items, 1, "same product merges into one line item")
	assert.Equal(t, 3, view.Items[0].Quantity)
}

func TestAddItemValidation(t *testing.T) {
	fs := newFakeStore()
	fs.addProduct(1, "1.00", 10)
	fs.addCart(1)
	svc := NewCartService(fs)

	_, err := svc.AddItem(1, 1, 0)
	assert.ErrorIs(t, err, ErrQuantityTooLow)

	_, err = svc.AddItem(1, 99, 1)
	assert.ErrorIs(t, err, ErrProductNotFound)

	_, err = svc.AddItem(99, 1, 1)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestGetCartTotalTracksCurrentPrice(t *testing.T) {
	fs := newFakeStore()
	fs.addProduct(1, "10.50", 5)
	fs.addCart(1)
	svc := NewCartService(fs)

	view, err := svc.AddItem(1, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, "21.00", view.Total)

	// price change with no cart-side mutation
	fs.products[1].Price = decimal.RequireFromString("20.00")

	view, err = svc.GetCart(1)
	require.NoError(t, err)
	assert.Equal(t, "40.00", view.Total)
	assert.Equal(t, "20.00", view.Items[0].Product.Price.StringFixed(2))
}

func TestUpdateItemChecksAbsoluteQuantity(t *testing.T) {
	fs := newFakeStore()
	fs.addProduct(1, "2.00", 5)
	fs.addCart(1)
	svc := NewCartService(fs)

	view, err := svc.AddItem(1, 1, 2)
	require.NoError(t, err)
	itemID := view.Items[0].ID

	// absolute check: 6 > 5 even though the current quantity 2 was valid
	_, err = svc.UpdateItem(1, itemID, 6)
	require.Error(t, err)
	assert.True(t, IsStockError(err))

	view, err = svc.GetCart(1)
	require.NoError(t, err)
	assert.Equal(t, 2, view.Items[0].Quantity, "rejection leaves item unchanged")

	// full stock is admissible as an absolute target
	view, err = svc.UpdateItem(1, itemID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, view.Items[0].Quantity)
	assert.Equal(t, "10.00", view.Total)
}

func TestUpdateItemValidation(t *testing.T) {
	fs := newFakeStore()
	fs.addProduct(1, "2.00", 5)
	fs.addCart(1)
	svc := NewCartService(fs)

	view, err := svc.AddItem(1, 1, 1)
	require.NoError(t, err)

	_, err = svc.UpdateItem(1, view.Items[0].ID, 0)
	assert.ErrorIs(t, err, ErrQuantityTooLow)

	_, err = svc.UpdateItem(1, 999, 1)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestRemoveItemAlwaysSucceeds(t *testing.T) {
	fs := newFakeStore()
	// stock drained to zero after the add; removal must not care
	product := fs.addProduct(1, "3.00", 1)
	fs.addCart(1)
	svc := NewCartService(fs)

	view, err := svc.AddItem(1, 1, 1)
	require.NoError(t, err)
	product.Quantity = 0

	view, err = svc.RemoveItem(1, view.Items[0].ID)
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, "0.00", view.Total)

	_, err = svc.RemoveItem(1, 42)
	assert.ErrorIs(t, err, ErrItemNotFound)
}

func TestGetCartUnknownCart(t *testing.T) {
	svc := NewCartService(newFakeStore())
	_, err := svc.GetCart(7)
	assert.ErrorIs(t, err, ErrCartNotFound)
}

func TestCreateAndDeleteCart(t *testing.T) {
	fs := newFakeStore()
	svc := NewCartService(fs)

	view, err := svc.CreateCart()
	require.NoError(t, err)
	assert.Empty(t, view.Items)
	assert.Equal(t, "0.00", view.Total)

	require.NoError(t, svc.DeleteCart(view.ID))
	assert.ErrorIs(t, svc.DeleteCart(view.ID), ErrCartNotFound)
}
