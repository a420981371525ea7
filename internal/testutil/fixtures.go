package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"

	"carteira/internal/datagen"
	"carteira/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

var faker = datagen.NewFaker()

// NewCliente builds an unsaved customer whose unique columns never collide
// with other fixtures.
func NewCliente() *models.Cliente {
	n := nextID()
	c := faker.Cliente()
	c.CpfCnpj = fmt.Sprintf("%011d", n)
	c.Email = fmt.Sprintf("cliente%d@test.com", n)
	return c
}

// NewAcao builds an unsaved asset with a unique nome and ticker.
func NewAcao() *models.Acao {
	n := nextID()
	a := faker.Acao()
	a.Nome = fmt.Sprintf("Test Asset %d", n)
	a.Ticker = fmt.Sprintf("TST%d", n)
	return a
}

// CreateTestCliente inserts a customer with unique document and email.
func CreateTestCliente(t *testing.T, db *gorm.DB) *models.Cliente {
	t.Helper()

	cliente := NewCliente()
	if err := db.Create(cliente).Error; err != nil {
		t.Fatalf("failed to create test cliente: %v", err)
	}
	return cliente
}

// CreateTestAcao inserts an asset with unique nome and ticker.
func CreateTestAcao(t *testing.T, db *gorm.DB) *models.Acao {
	t.Helper()

	acao := NewAcao()
	if err := db.Create(acao).Error; err != nil {
		t.Fatalf("failed to create test acao: %v", err)
	}
	return acao
}

// CreateTestAlocacao inserts an allocation of acaoID held by clienteID.
func CreateTestAlocacao(t *testing.T, db *gorm.DB, clienteID, acaoID uint) *models.Alocacao {
	t.Helper()

	alocacao := faker.Alocacao(clienteID, acaoID)
	if err := db.Omit(clause.Associations).Create(alocacao).Error; err != nil {
		t.Fatalf("failed to create test alocacao: %v", err)
	}
	return alocacao
}
