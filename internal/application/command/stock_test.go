package command_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/fruteria/internal/application/command"
	"github.com/tu-usuario/fruteria/internal/domain"
	"github.com/tu-usuario/fruteria/internal/domain/inventory"
	"github.com/tu-usuario/fruteria/pkg/logger"
)

// Los constructores validan temprano: item vacío, cantidad no positiva o
// store nulo devuelven ErrInvalidInput.
func TestNewIncreaseStock_Validacion(t *testing.T) {
	store := inventory.NewStore(&bytes.Buffer{}, logger.Nop())

	cases := []struct {
		name   string
		store  *inventory.Store
		item   string
		amount int
	}{
		{"item vacío", store, "", 1},
		{"cantidad cero", store, "Apples", 0},
		{"cantidad negativa", store, "Apples", -2},
		{"store nulo", nil, "Apples", 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := command.NewIncreaseStock(tc.store, tc.item, tc.amount)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			assert.Nil(t, cmd)

			dec, err := command.NewDecreaseStock(tc.store, tc.item, tc.amount)
			assert.ErrorIs(t, err, domain.ErrInvalidInput,
				"NewDecreaseStock aplica la misma validación")
			assert.Nil(t, dec)
		})
	}
}

// Cada Apply delega en la operación del store con los argumentos fijados
// en la construcción.
func TestApply_DelegaEnElStore(t *testing.T) {
	var sink bytes.Buffer
	store := inventory.NewStore(&sink, logger.Nop())

	add, err := command.NewIncreaseStock(store, "Apples", 10)
	require.NoError(t, err)
	sell, err := command.NewDecreaseStock(store, "Apples", 4)
	require.NoError(t, err)

	add.Apply()
	sell.Apply()

	assert.Equal(t, []inventory.Item{{Name: "Apples", Quantity: 6}}, store.Snapshot())
	assert.Equal(t,
		"Added 10 Apples(s) to the stock.\nSold 4 Apples(s).\n",
		sink.String())
}

// El booleano de Decrease se descarta dentro del comando: aplicar una venta
// sin existencias no hace panic ni muta el estado, solo emite la línea.
func TestDecreaseStockApply_DescartaElResultado(t *testing.T) {
	var sink bytes.Buffer
	store := inventory.NewStore(&sink, logger.Nop())

	sell, err := command.NewDecreaseStock(store, "Cherries", 1)
	require.NoError(t, err)
	sell.Apply()

	assert.Empty(t, store.Snapshot())
	assert.Equal(t, "Sorry, we don't have enough Cherries in stock.\n", sink.String())
}
