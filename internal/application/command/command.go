// Package command implementa el patrón Command sobre el inventario de la
// tienda: cada comando encapsula una operación parametrizada en su
// construcción, y el Invoker los ejecuta en orden de llegada sin conocer
// su tipo concreto.
package command

// Command es la capacidad mínima que exige el Invoker: ejecutar la operación
// encapsulada exactamente una vez. Cualquier tipo con Apply califica; agregar
// variantes nuevas no toca ni al Invoker ni al Store.
type Command interface {
	Apply()
}
