package model

// CartItem references a product placed in a user's cart.
type CartItem struct {
	ProductID int64
	Quantity  int
}

// CartLine is a cart item joined with its product data, as returned to clients.
type CartLine struct {
	Product  Product
	Quantity int
}
