package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/foxxcyber/billscan/internal/models"
)

func TestSeedTypes(t *testing.T) {
	types, err := seedTypes("all")
	require.NoError(t, err)
	assert.Equal(t, []models.TransactionType{models.TransactionExpense, models.TransactionIncome}, types)

	types, err = seedTypes("income")
	require.NoError(t, err)
	assert.Equal(t, []models.TransactionType{models.TransactionIncome}, types)

	_, err = seedTypes("transfer")
	assert.Error(t, err)
}
