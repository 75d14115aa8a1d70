package ledger_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/ledger"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// captureGenerator guarda el documento recibido y devuelve bytes fijos, para
// verificar el armado del documento sin renderizar PDF real.
type captureGenerator struct {
	doc *ledger.VoucherDocument
}

func (g *captureGenerator) GenerateVoucherPDF(_ context.Context, doc *ledger.VoucherDocument) ([]byte, error) {
	g.doc = doc
	return []byte("%PDF-fake"), nil
}

func TestDownloadEntryVoucherPDF(t *testing.T) {
	store := newMemStore()
	store.users[testUserID] = &entity.User{ID: testUserID, Username: "mgarcia"}
	store.workers[testWorkerID] = &entity.Worker{ID: testWorkerID, FirstName: "Pedro", LastName: "Rojas"}
	seedItem(store, "item-1", "Cemento 25kg", 100)
	store.entryVouchers["v-1"] = &entity.EntryVoucher{
		ID: "v-1", Date: time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC), AddedBy: testUserID,
	}
	store.entryDetails["d-1"] = &entity.EntryDetail{
		ID: "d-1", VoucherID: "v-1", ItemID: "item-1", WorkerID: testWorkerID, Quantity: 100,
	}

	gen := &captureGenerator{}
	uc := ledger.NewVoucherPDFUseCase(&memEntryRepo{store}, &memExitRepo{store}, &memUserRepo{store}, gen)

	pdfBytes, filename, err := uc.DownloadEntryVoucherPDF(context.Background(), "v-1")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), pdfBytes)
	assert.Equal(t, "vale-entrada-v-1.pdf", filename)

	require.NotNil(t, gen.doc)
	assert.Equal(t, "entry", gen.doc.Kind)
	assert.Equal(t, "mgarcia", gen.doc.Username)
	assert.Equal(t, "29/08/2026 10:30", gen.doc.Date)
	require.Len(t, gen.doc.Lines, 1)
	assert.Equal(t, "Cemento 25kg", gen.doc.Lines[0].ItemName)
	assert.Equal(t, "Pedro Rojas", gen.doc.Lines[0].WorkerName)
	assert.Equal(t, int64(100), gen.doc.Lines[0].Quantity)
}

// Un artículo eliminado al llegar a cero se imprime con nombre de respaldo.
func TestDownloadExitVoucherPDF_ArticuloEliminado(t *testing.T) {
	store := newMemStore()
	store.users[testUserID] = &entity.User{ID: testUserID, Username: "mgarcia"}
	store.workers[testWorkerID] = &entity.Worker{ID: testWorkerID, FirstName: "Pedro", LastName: "Rojas"}
	store.exitVouchers["v-2"] = &entity.ExitVoucher{
		ID: "v-2", Date: time.Now(), HandledBy: testUserID,
	}
	// La línea apunta a un artículo que ya no existe en stock.
	store.exitDetails["d-2"] = &entity.ExitDetail{
		ID: "d-2", VoucherID: "v-2", ItemID: "item-borrado", WorkerID: testWorkerID, Quantity: 100,
	}

	gen := &captureGenerator{}
	uc := ledger.NewVoucherPDFUseCase(&memEntryRepo{store}, &memExitRepo{store}, &memUserRepo{store}, gen)

	_, filename, err := uc.DownloadExitVoucherPDF(context.Background(), "v-2")
	require.NoError(t, err)
	assert.Equal(t, "vale-salida-v-2.pdf", filename)
	require.Len(t, gen.doc.Lines, 1)
	assert.Equal(t, "(artículo eliminado)", gen.doc.Lines[0].ItemName)
}

func TestDownloadEntryVoucherPDF_ValeInexistente(t *testing.T) {
	store := newMemStore()
	gen := &captureGenerator{}
	uc := ledger.NewVoucherPDFUseCase(&memEntryRepo{store}, &memExitRepo{store}, &memUserRepo{store}, gen)

	_, _, err := uc.DownloadEntryVoucherPDF(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
