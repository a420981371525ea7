package services

import (
	"context"
	"testing"

	apperrors "carteira/internal/errors"
	"carteira/internal/models"
	"carteira/internal/testutil"
)

func TestCreateCliente(t *testing.T) {
	ctx := context.Background()

	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClienteService(db)

		in := &models.Cliente{
			NomeCompleto:   "Maria Silva",
			CpfCnpj:        "12345678901",
			Telefone:       "11987654321",
			DataNascimento: models.MustDate("1990-05-20"),
			Email:          "maria@example.com",
		}
		cliente, err := svc.CreateCliente(ctx, in)
		testutil.AssertNoError(t, err)

		if cliente.ID == 0 {
			t.Fatal("expected non-zero cliente ID")
		}

		stored, err := svc.GetClienteByID(ctx, cliente.ID)
		testutil.AssertNoError(t, err)
		if stored.NomeCompleto != "Maria Silva" {
			t.Errorf("expected nome_completo 'Maria Silva', got %s", stored.NomeCompleto)
		}
		if stored.DataNascimento.String() != "1990-05-20" {
			t.Errorf("expected data_nascimento 1990-05-20, got %s", stored.DataNascimento)
		}
	})

	t.Run("duplicate_cpf_cnpj", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClienteService(db)
		existing := testutil.CreateTestCliente(t, db)

		dup := testutil.NewCliente()
		dup.CpfCnpj = existing.CpfCnpj
		_, err := svc.CreateCliente(ctx, dup)
		appErr := testutil.AssertAppError(t, err, "DUPLICATE_VALUE")
		testutil.AssertFields(t, appErr, "cpf_cnpj")
		if appErr.Message != "A record with this cpf_cnpj already exists" {
			t.Errorf("unexpected message %q", appErr.Message)
		}
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClienteService(db)
		existing := testutil.CreateTestCliente(t, db)

		dup := testutil.NewCliente()
		dup.Email = existing.Email
		_, err := svc.CreateCliente(ctx, dup)
		appErr := testutil.AssertAppError(t, err, "DUPLICATE_VALUE")
		testutil.AssertFields(t, appErr, "email")
	})
}

func TestListClientes(t *testing.T) {
	ctx := context.Background()

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClienteService(db)

		clientes, err := svc.ListClientes(ctx)
		testutil.AssertNoError(t, err)
		if clientes == nil || len(clientes) != 0 {
			t.Errorf("expected empty non-nil slice, got %v", clientes)
		}
	})

	t.Run("ordered_by_id", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClienteService(db)
		first := testutil.CreateTestCliente(t, db)
		second := testutil.CreateTestCliente(t, db)

		clientes, err := svc.ListClientes(ctx)
		testutil.AssertNoError(t, err)
		if len(clientes) != 2 {
			t.Fatalf("expected 2 clientes, got %d", len(clientes))
		}
		if clientes[0].ID != first.ID || clientes[1].ID != second.ID {
			t.Errorf("expected ids [%d %d], got [%d %d]", first.ID, second.ID, clientes[0].ID, clientes[1].ID)
		}
	})
}

func TestGetClienteByID_NotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewClienteService(db)

	_, err := svc.GetClienteByID(context.Background(), 99999)
	testutil.AssertAppError(t, err, "CLIENTE_NOT_FOUND")
}

func TestSearchCliente(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)
	defer testutil.TeardownTestDB(t, db)
	svc := NewClienteService(db)

	ana := testutil.NewCliente()
	ana.NomeCompleto = "Ana Souza"
	testutil.AssertNoError(t, db.Create(ana).Error)
	joana := testutil.NewCliente()
	joana.NomeCompleto = "Joana Lima"
	testutil.AssertNoError(t, db.Create(joana).Error)

	t.Run("by_cpf_cnpj", func(t *testing.T) {
		got, err := svc.SearchCliente(ctx, "", joana.CpfCnpj)
		testutil.AssertNoError(t, err)
		if got.ID != joana.ID {
			t.Errorf("expected cliente %d, got %d", joana.ID, got.ID)
		}
	})

	t.Run("by_name_case_insensitive", func(t *testing.T) {
		got, err := svc.SearchCliente(ctx, "SOUZA", "")
		testutil.AssertNoError(t, err)
		if got.ID != ana.ID {
			t.Errorf("expected cliente %d, got %d", ana.ID, got.ID)
		}
	})

	t.Run("first_match_wins", func(t *testing.T) {
		got, err := svc.SearchCliente(ctx, "ana", "")
		testutil.AssertNoError(t, err)
		if got.ID != ana.ID {
			t.Errorf("expected lowest id %d, got %d", ana.ID, got.ID)
		}
	})

	t.Run("cpf_cnpj_takes_precedence", func(t *testing.T) {
		got, err := svc.SearchCliente(ctx, "Ana", joana.CpfCnpj)
		testutil.AssertNoError(t, err)
		if got.ID != joana.ID {
			t.Errorf("expected cliente %d, got %d", joana.ID, got.ID)
		}
	})

	t.Run("no_match", func(t *testing.T) {
		_, err := svc.SearchCliente(ctx, "", "99999999999")
		testutil.AssertAppError(t, err, "CLIENTE_NOT_FOUND")
	})

	t.Run("no_criteria", func(t *testing.T) {
		_, err := svc.SearchCliente(ctx, "", "")
		appErr := testutil.AssertAppError(t, err, "INVALID_SEARCH")
		if appErr.Message != apperrors.ErrMissingSearch.Message {
			t.Errorf("unexpected message %q", appErr.Message)
		}
	})

	t.Run("wildcards_match_literally", func(t *testing.T) {
		for _, term := range []string{"%", "_", "a_a", `\`} {
			_, err := svc.SearchCliente(ctx, term, "")
			testutil.AssertAppError(t, err, "CLIENTE_NOT_FOUND")
		}

		pct := testutil.NewCliente()
		pct.NomeCompleto = "Rita 100% Dias"
		testutil.AssertNoError(t, db.Create(pct).Error)

		got, err := svc.SearchCliente(ctx, "100%", "")
		testutil.AssertNoError(t, err)
		if got.ID != pct.ID {
			t.Errorf("expected cliente %d, got %d", pct.ID, got.ID)
		}
	})
}

func TestUpdateCliente(t *testing.T) {
	ctx := context.Background()

	t.Run("partial", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClienteService(db)
		cliente := testutil.CreateTestCliente(t, db)

		updated, err := svc.UpdateCliente(ctx, cliente.ID, map[string]interface{}{"telefone": "21999998888"})
		testutil.AssertNoError(t, err)

		if updated.Telefone != "21999998888" {
			t.Errorf("expected telefone 21999998888, got %s", updated.Telefone)
		}
		if updated.NomeCompleto != cliente.NomeCompleto || updated.Email != cliente.Email {
			t.Error("fields not supplied should be unchanged")
		}
	})

	t.Run("empty", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClienteService(db)
		cliente := testutil.CreateTestCliente(t, db)

		_, err := svc.UpdateCliente(ctx, cliente.ID, map[string]interface{}{})
		testutil.AssertAppError(t, err, "EMPTY_UPDATE")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClienteService(db)

		_, err := svc.UpdateCliente(ctx, 99999, map[string]interface{}{"telefone": "21999998888"})
		testutil.AssertAppError(t, err, "CLIENTE_NOT_FOUND")
	})

	t.Run("duplicate_email", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClienteService(db)
		a := testutil.CreateTestCliente(t, db)
		b := testutil.CreateTestCliente(t, db)

		_, err := svc.UpdateCliente(ctx, b.ID, map[string]interface{}{"email": a.Email})
		appErr := testutil.AssertAppError(t, err, "DUPLICATE_VALUE")
		testutil.AssertFields(t, appErr, "email")
	})
}

func TestDeleteCliente(t *testing.T) {
	ctx := context.Background()

	t.Run("cascades_to_alocacoes", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClienteService(db)
		cliente := testutil.CreateTestCliente(t, db)
		acao := testutil.CreateTestAcao(t, db)
		testutil.CreateTestAlocacao(t, db, cliente.ID, acao.ID)

		testutil.AssertNoError(t, svc.DeleteCliente(ctx, cliente.ID))

		var count int64
		db.Model(&models.Alocacao{}).Where("cliente_id = ?", cliente.ID).Count(&count)
		if count != 0 {
			t.Errorf("expected allocations to be deleted, got %d", count)
		}
		db.Model(&models.Acao{}).Where("id = ?", acao.ID).Count(&count)
		if count != 1 {
			t.Error("asset should survive the customer's deletion")
		}

		_, err := svc.GetClienteByID(ctx, cliente.ID)
		testutil.AssertAppError(t, err, "CLIENTE_NOT_FOUND")
	})

	t.Run("not_found", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewClienteService(db)

		err := svc.DeleteCliente(ctx, 99999)
		testutil.AssertAppError(t, err, "CLIENTE_NOT_FOUND")
	})
}
