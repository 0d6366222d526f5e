package command

import (
	"github.com/google/uuid"

	"github.com/tu-usuario/fruteria/pkg/logger"
)

// Invoker acumula comandos pendientes y los ejecuta en orden FIFO al drenar.
// Solo conoce la capacidad Apply, nunca el tipo concreto de cada comando.
// No es seguro para uso concurrente.
type Invoker struct {
	pending []Command
	log     *logger.Logger
}

// NewInvoker construye un invoker con la cola vacía.
func NewInvoker(log *logger.Logger) *Invoker {
	return &Invoker{log: log}
}

// Enqueue agrega un comando al final de la cola. No valida nada: se admiten
// duplicados y comandos sobre stores distintos.
func (i *Invoker) Enqueue(cmd Command) {
	i.pending = append(i.pending, cmd)
	i.log.Debug().Int("pending", len(i.pending)).Msg("comando encolado")
}

// Len devuelve la cantidad de comandos pendientes.
func (i *Invoker) Len() int {
	return len(i.pending)
}

// DrainAndApplyAll ejecuta todos los comandos pendientes en orden de llegada,
// exactamente una vez cada uno, y deja la cola vacía. Con la cola vacía es
// un no-op. Apply no señala errores, así que el drenado nunca se interrumpe.
func (i *Invoker) DrainAndApplyAll() {
	if len(i.pending) == 0 {
		return
	}
	batch := uuid.New().String()
	log := i.log.With().Str("batch", batch).Logger()
	log.Debug().Int("pending", len(i.pending)).Msg("drenando cola de comandos")
	for _, cmd := range i.pending {
		cmd.Apply()
	}
	log.Debug().Msg("cola de comandos drenada")
	i.pending = nil
}
