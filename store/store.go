package store

import (
	"errors"

	"github.com/catalog-labs/catalog-api/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned for any missing cart, item or product so callers
// don't have to depend on gorm error values.
var ErrNotFound = errors.New("record not found")

// Store is the persistence surface the cart engine works against.
type Store interface {
	// InTransaction runs fn against a transactional view of the store.
	// Mutations on a cart item happen inside one transaction so the
	// read-check-write sequence is atomic with respect to other mutations
	// on the same item.
	InTransaction(fn func(Store) error) error

	GetProduct(id uint) (*models.Product, error)
	CreateCart() (*models.Cart, error)
	GetCart(id uint) (*models.Cart, error)
	GetCartWithItems(id uint) (*models.Cart, error)
	DeleteCart(id uint) error
	GetCartItem(cartID, itemID uint) (*models.CartItem, error)
	GetOrCreateCartItem(cartID, productID uint, quantity int) (*models.CartItem, bool, error)
	SaveCartItem(item *models.CartItem) error
	DeleteCartItem(itemID uint) error
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) InTransaction(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx})
	})
}

func (s *GormStore) GetProduct(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s *GormStore) CreateCart() (*models.Cart, error) {
	cart := models.Cart{}
	if err := s.db.Create(&cart).Error; err != nil {
		return nil, err
	}
	return &cart, nil
}

func (s *GormStore) GetCart(id uint) (*models.Cart, error) {
	var cart models.Cart
	if err := s.db.First(&cart, id).Error; err != nil {
		return nil, translate(err)
	}
	return &cart, nil
}

func (s *GormStore) GetCartWithItems(id uint) (*models.Cart, error) {
	var cart models.Cart
	err := s.db.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("cart_items.id")
		}).
		Preload("Items.Product").
		Preload("Items.Product.Category").
		First(&cart, id).Error
	if err != nil {
		return nil, translate(err)
	}
	return &cart, nil
}

func (s *GormStore) DeleteCart(id uint) error {
	result := s.db.Delete(&models.Cart{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *GormStore) GetCartItem(cartID, itemID uint) (*models.CartItem, error) {
	var item models.CartItem
	err := s.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("cart_id = ? AND id = ?", cartID, itemID).
		First(&item).Error
	if err != nil {
		return nil, translate(err)
	}
	return &item, nil
}

// GetOrCreateCartItem locks the existing (cart, product) row for update, or
// creates it with the given quantity when absent. The unique index on
// (cart_id, product_id) backs the at-most-one-row-per-pair invariant.
func (s *GormStore) GetOrCreateCartItem(cartID, productID uint, quantity int) (*models.CartItem, bool, error) {
	var item models.CartItem
	err := s.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&item).Error
	if err == nil {
		return &item, false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}
	item = models.CartItem{CartID: cartID, ProductID: productID, Quantity: quantity}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, false, err
	}
	return &item, true, nil
}

func (s *GormStore) SaveCartItem(item *models.CartItem) error {
	return s.db.Save(item).Error
}

func (s *GormStore) DeleteCartItem(itemID uint) error {
	result := s.db.Delete(&models.CartItem{}, itemID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func translate(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
