package services

// AdmitQuantity decides whether a requested quantity is admissible against
// a product's available stock. The check is advisory and point-in-time:
// stock is never decremented or reserved by a cart add, so two carts can
// each be admitted against the same stock figure. That gap is deliberate
// here; reconciliation belongs to checkout, which this engine does not do.
func AdmitQuantity(requested, available int) bool {
	if requested < 1 {
		return false
	}
	return requested <= available
}
