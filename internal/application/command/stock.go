package command

import (
	"github.com/tu-usuario/fruteria/internal/domain"
	"github.com/tu-usuario/fruteria/internal/domain/inventory"
)

// IncreaseStock comando de entrada de mercancía: suma amount unidades de item
// al store. Inmutable después de construido.
type IncreaseStock struct {
	store  *inventory.Store
	item   string
	amount int
}

// NewIncreaseStock construye el comando. Valida temprano: item vacío o
// amount no positivo devuelven domain.ErrInvalidInput.
func NewIncreaseStock(store *inventory.Store, item string, amount int) (*IncreaseStock, error) {
	if store == nil || item == "" || amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return &IncreaseStock{store: store, item: item, amount: amount}, nil
}

// Apply ejecuta la entrada de stock. Nunca falla.
func (c *IncreaseStock) Apply() {
	c.store.Increase(c.item, c.amount)
}

// DecreaseStock comando de venta: resta amount unidades de item del store
// si hay existencias suficientes. Inmutable después de construido.
type DecreaseStock struct {
	store  *inventory.Store
	item   string
	amount int
}

// NewDecreaseStock construye el comando. Misma validación que NewIncreaseStock.
func NewDecreaseStock(store *inventory.Store, item string, amount int) (*DecreaseStock, error) {
	if store == nil || item == "" || amount <= 0 {
		return nil, domain.ErrInvalidInput
	}
	return &DecreaseStock{store: store, item: item, amount: amount}, nil
}

// Apply ejecuta la venta. El resultado booleano del store se descarta a
// propósito: la falta de stock ya queda reportada en el sink del store y el
// Invoker no inspecciona resultados individuales.
func (c *DecreaseStock) Apply() {
	_ = c.store.Decrease(c.item, c.amount)
}
