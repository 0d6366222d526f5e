package main

import (
	"os"

	"github.com/tu-usuario/fruteria/internal/application/command"
	"github.com/tu-usuario/fruteria/internal/domain/inventory"
	"github.com/tu-usuario/fruteria/pkg/config"
	"github.com/tu-usuario/fruteria/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando tienda")

	// Receptor e invoker: las notificaciones de la tienda van a stdout.
	store := inventory.NewStore(os.Stdout, log)
	invoker := command.NewInvoker(log)

	enqueue := func(cmd command.Command, err error) {
		if err != nil {
			log.Fatal().Err(err).Msg("construir comando")
		}
		invoker.Enqueue(cmd)
	}

	// Escenario de demostración: dos entradas de mercancía y dos ventas,
	// la última sobre un item sin existencias.
	enqueue(command.NewIncreaseStock(store, "Apples", 10))
	enqueue(command.NewIncreaseStock(store, "Bananas", 5))
	enqueue(command.NewDecreaseStock(store, "Apples", 3))
	enqueue(command.NewDecreaseStock(store, "Cherries", 1))

	invoker.DrainAndApplyAll()
	store.Display()
}
