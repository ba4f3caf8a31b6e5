//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/domain/instruments"
	"github.com/aowkoakwokwa/aowkoakwokwa.github.io-sub000/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentLoanSqliteRepository_FindOpenByEquipment(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	e := CreateTestEquipment(t, "JFT-0200", date(2024, 1, 1), "1 Year")
	require.NoError(t, ctx.EquipmentRepo.Create(context.Background(), e))

	open, err := ctx.LoanRepo.FindOpenByEquipment(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Nil(t, open)

	loan := CreateTestLoan(t, e, "Budi", time.Date(2024, 6, 3, 8, 15, 0, 0, time.UTC))
	require.NoError(t, ctx.LoanRepo.Create(context.Background(), loan))

	open, err = ctx.LoanRepo.FindOpenByEquipment(context.Background(), e.ID)
	require.NoError(t, err)
	require.NotNil(t, open)
	assert.Equal(t, loan.ID, open.ID)

	returnedAt := loan.IssuedAt.Add(4 * time.Hour)
	loan.ReturnedAt = &returnedAt
	loan.Status = instruments.LoanStatusReturned
	require.NoError(t, ctx.LoanRepo.UpdateByID(context.Background(), loan))

	open, err = ctx.LoanRepo.FindOpenByEquipment(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Nil(t, open)
}

func TestInstrumentLoanSqliteRepository_List_ByMonthRange(t *testing.T) {
	ctx := SetupTestDB(t, config.SqliteDbType)

	e := CreateTestEquipment(t, "JFT-0201", date(2024, 1, 1), "1 Year")
	require.NoError(t, ctx.EquipmentRepo.Create(context.Background(), e))

	issueTimes := []time.Time{
		time.Date(2024, 2, 29, 23, 59, 0, 0, time.UTC),
		time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2024, 5, 31, 23, 0, 0, 0, time.UTC),
		time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
	}
	for _, issuedAt := range issueTimes {
		require.NoError(t, ctx.LoanRepo.Create(context.Background(), CreateTestLoan(t, e, "Sari", issuedAt)))
	}

	query := instruments.NewLoanQuery()
	query.Year = 2024
	query.Month = "03-05"
	list, err := ctx.LoanRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.True(t, list[0].IssuedAt.Equal(issueTimes[2]))
	assert.True(t, list[1].IssuedAt.Equal(issueTimes[1]))

	query = instruments.NewLoanQuery()
	query.Year = 2024
	list, err = ctx.LoanRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, list, 4)

	query.Borrower = "budi"
	list, err = ctx.LoanRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Empty(t, list)
}
