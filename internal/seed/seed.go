// Package seed fills a database with generated customers, assets and allocations.
package seed

import (
	"context"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin/binding"

	"carteira/internal/datagen"
	apperrors "carteira/internal/errors"
	"carteira/internal/logger"
	"carteira/internal/models"
	"carteira/internal/schemas"
	"carteira/internal/services"
	"carteira/internal/validator"
)

// Counts is how many records of each kind to attempt.
type Counts struct {
	Clientes  int
	Acoes     int
	Alocacoes int
}

// Result reports what a seeding run inserted and what it skipped because the
// generated record collided with an existing one.
type Result struct {
	Created Counts
	Skipped Counts
}

// Seeder inserts generated data through the services. Each record is first
// validated as the request body that would create it over HTTP, so the
// binding rules and the database constraints both apply.
type Seeder struct {
	faker     *datagen.Faker
	clientes  services.ClienteServicer
	acoes     services.AcaoServicer
	alocacoes services.AlocacaoServicer
}

// NewSeeder creates a Seeder drawing from faker.
func NewSeeder(faker *datagen.Faker, clientes services.ClienteServicer, acoes services.AcaoServicer, alocacoes services.AlocacaoServicer) *Seeder {
	validator.Register()
	return &Seeder{faker: faker, clientes: clientes, acoes: acoes, alocacoes: alocacoes}
}

// Run inserts assets, then customers, then allocations between the records it
// just created. Duplicates are counted and skipped; any other error stops the run.
func (s *Seeder) Run(ctx context.Context, n Counts) (Result, error) {
	var res Result
	log := logger.Get()

	acaoIDs := make([]uint, 0, n.Acoes)
	for i := 0; i < n.Acoes; i++ {
		req := acaoRequest(s.faker.Acao())
		if err := validate("acao", req); err != nil {
			return res, err
		}
		acao, err := s.acoes.CreateAcao(ctx, req.ToModel())
		if isDuplicate(err) {
			res.Skipped.Acoes++
			continue
		}
		if err != nil {
			return res, err
		}
		acaoIDs = append(acaoIDs, acao.ID)
		res.Created.Acoes++
	}

	clienteIDs := make([]uint, 0, n.Clientes)
	for i := 0; i < n.Clientes; i++ {
		req := clienteRequest(s.faker.Cliente())
		if err := validate("cliente", req); err != nil {
			return res, err
		}
		cliente, err := s.clientes.CreateCliente(ctx, req.ToModel())
		if isDuplicate(err) {
			res.Skipped.Clientes++
			continue
		}
		if err != nil {
			return res, err
		}
		clienteIDs = append(clienteIDs, cliente.ID)
		res.Created.Clientes++
	}

	if len(acaoIDs) == 0 || len(clienteIDs) == 0 {
		if n.Alocacoes > 0 {
			log.Warn("no customers or assets to allocate, skipping allocations")
			res.Skipped.Alocacoes = n.Alocacoes
		}
		return res, nil
	}

	for i := 0; i < n.Alocacoes; i++ {
		clienteID := datagen.Choose(s.faker, clienteIDs)
		req := alocacaoRequest(s.faker.Alocacao(clienteID, datagen.Choose(s.faker, acaoIDs)))
		if err := validate("alocacao", req); err != nil {
			return res, err
		}
		_, err := s.alocacoes.AddAlocacao(ctx, clienteID, req.ToModel(clienteID))
		if isDuplicate(err) {
			res.Skipped.Alocacoes++
			continue
		}
		if err != nil {
			return res, err
		}
		res.Created.Alocacoes++
	}

	return res, nil
}

func isDuplicate(err error) bool {
	return err != nil &&
		(errors.Is(err, apperrors.ErrDuplicateValue) || errors.Is(err, apperrors.ErrDuplicateAlocacao))
}

// validate applies the binding rules of the request shape to a generated
// record. A failure means the generator is out of step with the API.
func validate(kind string, req interface{}) error {
	if err := binding.Validator.ValidateStruct(req); err != nil {
		appErr := validator.BindingError(err)
		return fmt.Errorf("generated %s is invalid: %w", kind, appErr)
	}
	return nil
}

func clienteRequest(c *models.Cliente) schemas.CreateClienteRequest {
	return schemas.CreateClienteRequest{
		NomeCompleto:   c.NomeCompleto,
		CpfCnpj:        c.CpfCnpj,
		Telefone:       c.Telefone,
		DataNascimento: &c.DataNascimento,
		Email:          c.Email,
	}
}

func acaoRequest(a *models.Acao) schemas.CreateAcaoRequest {
	return schemas.CreateAcaoRequest{
		Nome:       a.Nome,
		Ticker:     a.Ticker,
		PrecoAtual: &a.PrecoAtual,
		Tipo:       a.Tipo,
		Descricao:  a.Descricao,
	}
}

func alocacaoRequest(a *models.Alocacao) schemas.CreateAlocacaoRequest {
	return schemas.CreateAlocacaoRequest{
		AcaoID:              a.AcaoID,
		Quantidade:          &a.Quantidade,
		ValorMedioAquisicao: &a.ValorMedioAquisicao,
		DataUltimaCompra:    &a.DataUltimaCompra,
	}
}
