package inventory

import (
	"fmt"
	"io"

	"github.com/tu-usuario/fruteria/internal/domain"
	"github.com/tu-usuario/fruteria/pkg/logger"
)

// Item entrada de solo lectura del inventario (para Snapshot).
type Item struct {
	Name     string
	Quantity int
}

// Store es el receptor: mantiene el stock actual de la tienda (nombre -> cantidad).
// Las notificaciones legibles se escriben en el sink inyectado; los logs
// estructurados van por el logger. No es seguro para uso concurrente.
type Store struct {
	quantities map[string]int
	order      []string // orden de primera inserción, para recorridos deterministas
	sink       io.Writer
	log        *logger.Logger
}

// NewStore construye un inventario vacío que notifica sus operaciones en sink.
func NewStore(sink io.Writer, log *logger.Logger) *Store {
	return &Store{
		quantities: make(map[string]int),
		sink:       sink,
		log:        log,
	}
}

// Increase suma amount al stock de item (lo inserta si no existía).
// Rechaza sin mutar el estado un item vacío o un amount no positivo:
// la invariante del inventario es que ninguna cantidad sea negativa.
func (s *Store) Increase(item string, amount int) {
	if item == "" || amount <= 0 {
		s.log.Warn().
			Str("item", item).
			Int("amount", amount).
			Err(domain.ErrInvalidInput).
			Msg("entrada de stock rechazada")
		return
	}
	if _, exists := s.quantities[item]; !exists {
		s.order = append(s.order, item)
	}
	s.quantities[item] += amount
	fmt.Fprintf(s.sink, "Added %d %s(s) to the stock.\n", amount, item)
	s.log.Debug().
		Str("item", item).
		Int("amount", amount).
		Int("quantity", s.quantities[item]).
		Msg("entrada de stock")
}

// Decrease resta amount del stock de item si hay suficiente y devuelve true.
// Si el item no existe o el stock no alcanza, no muta nada y devuelve false:
// la falta de stock es un resultado esperado y recuperable, no un error.
func (s *Store) Decrease(item string, amount int) bool {
	current, exists := s.quantities[item]
	if !exists || current < amount {
		fmt.Fprintf(s.sink, "Sorry, we don't have enough %s in stock.\n", item)
		s.log.Debug().
			Str("item", item).
			Int("amount", amount).
			Int("quantity", current).
			Err(domain.ErrInsufficientStock).
			Msg("venta rechazada")
		return false
	}
	s.quantities[item] = current - amount
	fmt.Fprintf(s.sink, "Sold %d %s(s).\n", amount, item)
	s.log.Debug().
		Str("item", item).
		Int("amount", amount).
		Int("quantity", s.quantities[item]).
		Msg("salida de stock")
	return true
}

// Snapshot devuelve los pares (item, cantidad) en orden de primera inserción.
func (s *Store) Snapshot() []Item {
	items := make([]Item, 0, len(s.order))
	for _, name := range s.order {
		items = append(items, Item{Name: name, Quantity: s.quantities[name]})
	}
	return items
}

// Display escribe el stock actual en el sink, en el mismo orden que Snapshot.
func (s *Store) Display() {
	fmt.Fprintln(s.sink, "Current Stock:")
	for _, it := range s.Snapshot() {
		fmt.Fprintf(s.sink, "%s: %d\n", it.Name, it.Quantity)
	}
}
