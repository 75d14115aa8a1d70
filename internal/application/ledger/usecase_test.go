package ledger_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fixture: store con un usuario de oficina y un trabajador, más el libro de
// stock cableado a los fakes en memoria.
// ──────────────────────────────────────────────────────────────────────────────

const (
	testUserID   = "00000000-0000-0000-0000-0000000000aa"
	testWorkerID = "00000000-0000-0000-0000-0000000000bb"
)

func buildLedger(t *testing.T) (*ledger.StockLedgerUseCase, *memStore) {
	t.Helper()
	store := newMemStore()
	store.users[testUserID] = &entity.User{ID: testUserID, Username: "mgarcia", Role: entity.RoleStaff}
	store.workers[testWorkerID] = &entity.Worker{ID: testWorkerID, FirstName: "Pedro", LastName: "Rojas"}
	uc := ledger.NewStockLedgerUseCase(&memTxRunner{store}, &memUserRepo{store}, &memWorkerRepo{store})
	return uc, store
}

func seedItem(store *memStore, id, name string, quantity int64) {
	store.items[id] = &entity.StockItem{ID: id, Name: name, Quantity: quantity, Unit: "saco"}
}

func line(itemID string, qty int64) dto.VoucherLineRequest {
	return dto.VoucherLineRequest{ItemID: itemID, WorkerID: testWorkerID, Quantity: qty}
}

// ──────────────────────────────────────────────────────────────────────────────
// Vales de entrada
// ──────────────────────────────────────────────────────────────────────────────

// Una entrada por nombre de artículo inexistente da de alta la fila con la
// cantidad de la línea y unidad por defecto.
func TestCreateEntryVoucher_AltaPorNombre(t *testing.T) {
	uc, store := buildLedger(t)

	out, err := uc.CreateEntryVoucher(context.Background(), dto.CreateVoucherRequest{
		UserID: testUserID,
		Details: []dto.VoucherLineRequest{
			{ItemName: "Cemento 25kg", WorkerID: testWorkerID, Quantity: 100},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, "mgarcia", out.Username, "el vale debe resolver el username del responsable")

	require.Len(t, store.items, 1, "debe haberse creado el artículo")
	var item *entity.StockItem
	for _, it := range store.items {
		item = it
	}
	assert.Equal(t, "Cemento 25kg", item.Name)
	assert.Equal(t, int64(100), item.Quantity)
	assert.Equal(t, "pcs", item.Unit, "sin unidad en la línea aplica la unidad por defecto")

	require.Len(t, store.entryDetails, 1)
	require.Len(t, store.audits, 1)
	assert.Equal(t, entity.AuditActionEntry, store.audits[0].Action)
	assert.Equal(t, int64(0), store.audits[0].QuantityBefore)
	assert.Equal(t, int64(100), store.audits[0].QuantityAfter)
}

// Una entrada sobre artículo existente (por id) incrementa su cantidad.
func TestCreateEntryVoucher_IncrementaExistente(t *testing.T) {
	uc, store := buildLedger(t)
	seedItem(store, "item-1", "Arena fina", 40)

	_, err := uc.CreateEntryVoucher(context.Background(), dto.CreateVoucherRequest{
		UserID:  testUserID,
		Details: []dto.VoucherLineRequest{line("item-1", 60)},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(100), store.items["item-1"].Quantity)
	require.Len(t, store.audits, 1)
	assert.Equal(t, int64(40), store.audits[0].QuantityBefore)
	assert.Equal(t, int64(100), store.audits[0].QuantityAfter)
}

// Repetir una entrada por nombre sobre artículo existente suma cantidades y
// sobreescribe unit/notes solo si la línea los trae.
func TestCreateEntryVoucher_ReposicionPorNombreActualizaUnit(t *testing.T) {
	uc, store := buildLedger(t)
	seedItem(store, "item-1", "Arena fina", 40)

	_, err := uc.CreateEntryVoucher(context.Background(), dto.CreateVoucherRequest{
		UserID: testUserID,
		Details: []dto.VoucherLineRequest{
			{ItemName: "Arena fina", Unit: "m3", WorkerID: testWorkerID, Quantity: 10},
		},
	})
	require.NoError(t, err)

	item := store.items["item-1"]
	assert.Equal(t, int64(50), item.Quantity)
	assert.Equal(t, "m3", item.Unit, "la línea trae unidad nueva y debe sobreescribir")
	assert.Len(t, store.items, 1, "no debe duplicarse la fila")
}

// Un vale con N líneas deja N líneas persistidas y N filas de bitácora.
func TestCreateEntryVoucher_NLineasNDetallesNBitacora(t *testing.T) {
	uc, store := buildLedger(t)
	seedItem(store, "item-1", "Arena fina", 10)
	seedItem(store, "item-2", "Grava", 20)

	out, err := uc.CreateEntryVoucher(context.Background(), dto.CreateVoucherRequest{
		UserID: testUserID,
		Details: []dto.VoucherLineRequest{
			line("item-1", 5),
			line("item-2", 7),
			{ItemName: "Ladrillo H10", WorkerID: testWorkerID, Quantity: 500},
		},
	})
	require.NoError(t, err)

	assert.Len(t, store.entryVouchers, 1)
	assert.Len(t, store.entryDetails, 3)
	assert.Len(t, store.audits, 3)
	assert.Equal(t, int64(15), store.items["item-1"].Quantity)
	assert.Equal(t, int64(27), store.items["item-2"].Quantity)

	details, err := (&memEntryRepo{store}).ListDetailsByVoucher(out.ID)
	require.NoError(t, err)
	assert.Len(t, details, 3, "todas las líneas deben colgar del mismo vale")
}

func TestCreateEntryVoucher_Validaciones(t *testing.T) {
	uc, _ := buildLedger(t)
	ctx := context.Background()

	// Sin usuario responsable explícito no hay vale.
	_, err := uc.CreateEntryVoucher(ctx, dto.CreateVoucherRequest{
		Details: []dto.VoucherLineRequest{{ItemName: "Cemento", WorkerID: testWorkerID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "user_id vacío debe rechazarse")

	// Usuario inexistente.
	_, err = uc.CreateEntryVoucher(ctx, dto.CreateVoucherRequest{
		UserID:  "no-existe",
		Details: []dto.VoucherLineRequest{{ItemName: "Cemento", WorkerID: testWorkerID, Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Cantidad no positiva.
	_, err = uc.CreateEntryVoucher(ctx, dto.CreateVoucherRequest{
		UserID:  testUserID,
		Details: []dto.VoucherLineRequest{{ItemName: "Cemento", WorkerID: testWorkerID, Quantity: 0}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// Trabajador inexistente.
	_, err = uc.CreateEntryVoucher(ctx, dto.CreateVoucherRequest{
		UserID:  testUserID,
		Details: []dto.VoucherLineRequest{{ItemName: "Cemento", WorkerID: "no-existe", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	// Sin líneas no hay vale.
	_, err = uc.CreateEntryVoucher(ctx, dto.CreateVoucherRequest{UserID: testUserID})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

// ──────────────────────────────────────────────────────────────────────────────
// Vales de salida
// ──────────────────────────────────────────────────────────────────────────────

func TestCreateExitVoucher_DecrementaStock(t *testing.T) {
	uc, store := buildLedger(t)
	seedItem(store, "item-1", "Cemento 25kg", 100)

	_, err := uc.CreateExitVoucher(context.Background(), dto.CreateVoucherRequest{
		UserID:  testUserID,
		Details: []dto.VoucherLineRequest{line("item-1", 30)},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(70), store.items["item-1"].Quantity)
	require.Len(t, store.audits, 1)
	assert.Equal(t, entity.AuditActionExit, store.audits[0].Action)
	assert.Equal(t, int64(100), store.audits[0].QuantityBefore)
	assert.Equal(t, int64(70), store.audits[0].QuantityAfter)
}

// Pedir más de lo disponible rechaza el vale entero y no toca el stock.
func TestCreateExitVoucher_RechazaStockInsuficiente(t *testing.T) {
	uc, store := buildLedger(t)
	seedItem(store, "item-1", "Cemento 25kg", 100)

	_, err := uc.CreateExitVoucher(context.Background(), dto.CreateVoucherRequest{
		UserID:  testUserID,
		Details: []dto.VoucherLineRequest{line("item-1", 150)},
	})
	require.Error(t, err)

	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, "Cemento 25kg", insufficient.ItemName)
	assert.Equal(t, int64(100), insufficient.Available)
	assert.Equal(t, int64(150), insufficient.Requested)
	assert.ErrorIs(t, err, domain.ErrInsufficientStock, "el error debe envolver el sentinel")

	assert.Equal(t, int64(100), store.items["item-1"].Quantity, "el stock no debe cambiar")
	assert.Empty(t, store.exitVouchers, "el vale rechazado no debe persistirse")
	assert.Empty(t, store.exitDetails)
	assert.Empty(t, store.audits)
}

// Al llegar a cero la fila del artículo se elimina.
func TestCreateExitVoucher_EliminaArticuloEnCero(t *testing.T) {
	uc, store := buildLedger(t)
	seedItem(store, "item-1", "Cemento 25kg", 100)

	_, err := uc.CreateExitVoucher(context.Background(), dto.CreateVoucherRequest{
		UserID:  testUserID,
		Details: []dto.VoucherLineRequest{line("item-1", 100)},
	})
	require.NoError(t, err)

	_, exists := store.items["item-1"]
	assert.False(t, exists, "cantidad cero elimina la fila del artículo")
	require.Len(t, store.audits, 1)
	assert.Equal(t, int64(0), store.audits[0].QuantityAfter)
	assert.Len(t, store.exitDetails, 1, "la línea histórica sobrevive al artículo")
}

// Si una línea intermedia falla, todo el vale revierte: las líneas ya
// aplicadas no dejan rastro ni en stock ni en bitácora.
func TestCreateExitVoucher_AtomicidadRollback(t *testing.T) {
	uc, store := buildLedger(t)
	seedItem(store, "item-1", "Arena fina", 50)
	seedItem(store, "item-2", "Cemento 25kg", 10)

	_, err := uc.CreateExitVoucher(context.Background(), dto.CreateVoucherRequest{
		UserID: testUserID,
		Details: []dto.VoucherLineRequest{
			line("item-1", 20), // esta línea se aplica primero
			line("item-2", 99), // y esta revienta el vale
		},
	})
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)

	assert.Equal(t, int64(50), store.items["item-1"].Quantity, "la primera línea debe revertirse")
	assert.Equal(t, int64(10), store.items["item-2"].Quantity)
	assert.Empty(t, store.exitVouchers)
	assert.Empty(t, store.exitDetails)
	assert.Empty(t, store.audits)
}

func TestCreateExitVoucher_RequiereItemID(t *testing.T) {
	uc, _ := buildLedger(t)
	_, err := uc.CreateExitVoucher(context.Background(), dto.CreateVoucherRequest{
		UserID: testUserID,
		Details: []dto.VoucherLineRequest{
			{ItemName: "Cemento 25kg", WorkerID: testWorkerID, Quantity: 1},
		},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput, "las salidas exigen item_id, no nombre")
}

func TestCreateExitVoucher_ArticuloInexistente(t *testing.T) {
	uc, _ := buildLedger(t)
	_, err := uc.CreateExitVoucher(context.Background(), dto.CreateVoucherRequest{
		UserID:  testUserID,
		Details: []dto.VoucherLineRequest{line("no-existe", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Ciclo completo: salida total elimina la fila y la reentrada crea una nueva
// ──────────────────────────────────────────────────────────────────────────────

func TestCicloSalidaTotalYReentrada(t *testing.T) {
	uc, store := buildLedger(t)
	ctx := context.Background()

	// Alta inicial: 100 sacos de cemento.
	_, err := uc.CreateEntryVoucher(ctx, dto.CreateVoucherRequest{
		UserID: testUserID,
		Details: []dto.VoucherLineRequest{
			{ItemName: "Cemento 25kg", WorkerID: testWorkerID, Quantity: 100},
		},
	})
	require.NoError(t, err)
	var firstID string
	for id := range store.items {
		firstID = id
	}

	// Pedir 150 se rechaza sin tocar nada.
	_, err = uc.CreateExitVoucher(ctx, dto.CreateVoucherRequest{
		UserID:  testUserID,
		Details: []dto.VoucherLineRequest{line(firstID, 150)},
	})
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(100), store.items[firstID].Quantity)

	// Sacar los 100 elimina la fila.
	_, err = uc.CreateExitVoucher(ctx, dto.CreateVoucherRequest{
		UserID:  testUserID,
		Details: []dto.VoucherLineRequest{line(firstID, 100)},
	})
	require.NoError(t, err)
	assert.Empty(t, store.items)

	// Reentrada del mismo nombre crea una fila nueva con la cantidad nueva.
	_, err = uc.CreateEntryVoucher(ctx, dto.CreateVoucherRequest{
		UserID: testUserID,
		Details: []dto.VoucherLineRequest{
			{ItemName: "Cemento 25kg", WorkerID: testWorkerID, Quantity: 50},
		},
	})
	require.NoError(t, err)
	require.Len(t, store.items, 1)
	for id, item := range store.items {
		assert.NotEqual(t, firstID, id, "la reentrada crea un artículo nuevo, no revive el anterior")
		assert.Equal(t, int64(50), item.Quantity)
	}

	// La bitácora conserva las tres mutaciones del ciclo.
	assert.Len(t, store.audits, 3)
}

// ──────────────────────────────────────────────────────────────────────────────
// Agregar líneas a vales existentes
// ──────────────────────────────────────────────────────────────────────────────

func TestAppendEntryDetail(t *testing.T) {
	uc, store := buildLedger(t)
	seedItem(store, "item-1", "Arena fina", 10)

	out, err := uc.CreateEntryVoucher(context.Background(), dto.CreateVoucherRequest{
		UserID:  testUserID,
		Details: []dto.VoucherLineRequest{line("item-1", 5)},
	})
	require.NoError(t, err)

	detail, err := uc.AppendEntryDetail(context.Background(), dto.AppendDetailRequest{
		VoucherID: out.ID,
		ItemID:    "item-1",
		WorkerID:  testWorkerID,
		UserID:    testUserID,
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, out.ID, detail.VoucherID)
	assert.Equal(t, int64(18), store.items["item-1"].Quantity)
	assert.Len(t, store.entryDetails, 2)
	assert.Len(t, store.audits, 2)
}

func TestAppendEntryDetail_ValeInexistente(t *testing.T) {
	uc, store := buildLedger(t)
	seedItem(store, "item-1", "Arena fina", 10)

	_, err := uc.AppendEntryDetail(context.Background(), dto.AppendDetailRequest{
		VoucherID: "no-existe",
		ItemID:    "item-1",
		WorkerID:  testWorkerID,
		UserID:    testUserID,
		Quantity:  3,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, int64(10), store.items["item-1"].Quantity, "el stock no debe mutar si el vale no existe")
}

func TestAppendExitDetail_VerificaStock(t *testing.T) {
	uc, store := buildLedger(t)
	seedItem(store, "item-1", "Cemento 25kg", 10)

	out, err := uc.CreateExitVoucher(context.Background(), dto.CreateVoucherRequest{
		UserID:  testUserID,
		Details: []dto.VoucherLineRequest{line("item-1", 2)},
	})
	require.NoError(t, err)

	// Agregar una línea que excede lo disponible se rechaza sin tocar stock.
	_, err = uc.AppendExitDetail(context.Background(), dto.AppendDetailRequest{
		VoucherID: out.ID,
		ItemID:    "item-1",
		WorkerID:  testWorkerID,
		UserID:    testUserID,
		Quantity:  99,
	})
	var insufficient *domain.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, int64(8), store.items["item-1"].Quantity)
	assert.Len(t, store.exitDetails, 1)

	// Una línea válida sí se aplica.
	detail, err := uc.AppendExitDetail(context.Background(), dto.AppendDetailRequest{
		VoucherID: out.ID,
		ItemID:    "item-1",
		WorkerID:  testWorkerID,
		UserID:    testUserID,
		Quantity:  3,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), detail.Quantity)
	assert.Equal(t, int64(5), store.items["item-1"].Quantity)
}
