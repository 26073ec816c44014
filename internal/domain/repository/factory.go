package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Products() ProductRepository
	Categories() CategoryRepository
	Vouchers() VoucherRepository
	Orders() OrderRepository
	Carts() CartRepository
	Reviews() ReviewRepository
	Posts() PostRepository
}
