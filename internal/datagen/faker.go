// Package datagen generates fake but valid customers, assets and allocations.
package datagen

import (
	"strings"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"

	"carteira/internal/models"
)

var tipos = []string{"ON", "PN", "UNIT", "FII", "ETF", "BDR"}

// Faker provides fake data generation using gofakeit.
type Faker struct {
	faker *gofakeit.Faker
}

// NewFaker creates a new Faker with a random seed.
func NewFaker() *Faker {
	return &Faker{
		faker: gofakeit.New(uint64(time.Now().UnixNano())),
	}
}

// NewFakerWithSeed creates a new Faker with a specific seed for reproducibility.
func NewFakerWithSeed(seed uint64) *Faker {
	return &Faker{
		faker: gofakeit.New(seed),
	}
}

// Digits returns a string of n random decimal digits.
func (f *Faker) Digits(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + f.faker.IntRange(0, 9)))
	}
	return b.String()
}

// Letters returns n random uppercase ASCII letters.
func (f *Faker) Letters(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(byte('A' + f.faker.IntRange(0, 25)))
	}
	return b.String()
}

// Int generates a random integer between min and max (inclusive).
func (f *Faker) Int(min, max int) int {
	return f.faker.IntRange(min, max)
}

// Cliente generates a customer. Individuals get an 11-digit CPF and companies
// a 14-digit CNPJ.
func (f *Faker) Cliente() *models.Cliente {
	first, last := f.faker.FirstName(), f.faker.LastName()

	nome, doc := first+" "+last, f.Digits(11)
	if f.faker.IntRange(1, 5) == 1 {
		nome, doc = f.faker.Company(), f.Digits(14)
	}

	return &models.Cliente{
		NomeCompleto: nome,
		CpfCnpj:      doc,
		Telefone:     "55" + f.Digits(11),
		DataNascimento: models.NewDate(f.faker.DateRange(
			time.Date(1940, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2005, 12, 31, 0, 0, 0, 0, time.UTC),
		)),
		Email: emailLocal(first) + "." + emailLocal(last) + "." + f.Digits(4) + "@example.com",
	}
}

// Acao generates an asset with a B3-style ticker such as "ABCD3".
func (f *Faker) Acao() *models.Acao {
	tipo := Choose(f, tipos)
	descricao := f.faker.Sentence(8)

	return &models.Acao{
		Nome:       f.faker.Company() + " " + tipo,
		Ticker:     f.Letters(4) + Choose(f, []string{"3", "4", "11"}),
		PrecoAtual: models.Money{Decimal: f.decimal(1, 500, models.MoneyScale)},
		Tipo:       &tipo,
		Descricao:  &descricao,
	}
}

// Alocacao generates a holding of acaoID by clienteID.
func (f *Faker) Alocacao(clienteID, acaoID uint) *models.Alocacao {
	return &models.Alocacao{
		ClienteID:           clienteID,
		AcaoID:              acaoID,
		Quantidade:          models.Quantity{Decimal: decimal.NewFromInt(int64(f.faker.IntRange(1, 1000)))},
		ValorMedioAquisicao: models.Money{Decimal: f.decimal(1, 500, models.MoneyScale)},
		DataUltimaCompra: models.NewDate(f.faker.DateRange(
			time.Now().AddDate(-5, 0, 0),
			time.Now(),
		)),
	}
}

// emailLocal keeps the lowercase ASCII letters of a name.
func emailLocal(name string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' {
			return r
		}
		return -1
	}, strings.ToLower(name))
}

func (f *Faker) decimal(min, max float64, scale int32) decimal.Decimal {
	return decimal.NewFromFloat(f.faker.Float64Range(min, max)).Round(scale)
}

// Choose returns a random element from the given slice.
func Choose[T any](f *Faker, items []T) T {
	if len(items) == 0 {
		var zero T
		return zero
	}
	return items[f.Int(0, len(items)-1)]
}
