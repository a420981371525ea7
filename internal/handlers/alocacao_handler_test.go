package handlers

import (
	"context"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	apperrors "carteira/internal/errors"
	"carteira/internal/middleware"
	"carteira/internal/models"
	"carteira/internal/services"
)

// --- mock alocacao service ---

type mockAlocacaoService struct {
	addAlocacaoFn          func(clienteID uint, alocacao *models.Alocacao) (*models.Alocacao, error)
	listClienteAlocacoesFn func(clienteID uint) ([]models.Alocacao, error)
	getAlocacaoByIDFn      func(id uint) (*models.Alocacao, error)
	updateAlocacaoFn       func(id uint, updates map[string]interface{}) (*models.Alocacao, error)
	deleteAlocacaoFn       func(id uint) error
}

var _ services.AlocacaoServicer = (*mockAlocacaoService)(nil)

func (m *mockAlocacaoService) AddAlocacao(_ context.Context, clienteID uint, alocacao *models.Alocacao) (*models.Alocacao, error) {
	if m.addAlocacaoFn != nil {
		return m.addAlocacaoFn(clienteID, alocacao)
	}
	alocacao.ID = 1
	return alocacao, nil
}

func (m *mockAlocacaoService) ListClienteAlocacoes(_ context.Context, clienteID uint) ([]models.Alocacao, error) {
	if m.listClienteAlocacoesFn != nil {
		return m.listClienteAlocacoesFn(clienteID)
	}
	return []models.Alocacao{}, nil
}

func (m *mockAlocacaoService) GetAlocacaoByID(_ context.Context, id uint) (*models.Alocacao, error) {
	if m.getAlocacaoByIDFn != nil {
		return m.getAlocacaoByIDFn(id)
	}
	return &models.Alocacao{Base: models.Base{ID: id}}, nil
}

func (m *mockAlocacaoService) UpdateAlocacao(_ context.Context, id uint, updates map[string]interface{}) (*models.Alocacao, error) {
	if m.updateAlocacaoFn != nil {
		return m.updateAlocacaoFn(id, updates)
	}
	return &models.Alocacao{Base: models.Base{ID: id}}, nil
}

func (m *mockAlocacaoService) DeleteAlocacao(_ context.Context, id uint) error {
	if m.deleteAlocacaoFn != nil {
		return m.deleteAlocacaoFn(id)
	}
	return nil
}

// --- router setup ---

func setupAlocacaoRouter(handler *AlocacaoHandler) *gin.Engine {
	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.POST("/clientes/:id/alocacoes", handler.AddAlocacao)
	r.GET("/clientes/:id/alocacoes", handler.ListClienteAlocacoes)
	r.GET("/alocacoes/:id", handler.GetAlocacao)
	r.PUT("/alocacoes/:id", handler.UpdateAlocacao)
	r.DELETE("/alocacoes/:id", handler.DeleteAlocacao)
	return r
}

func petr4() *models.Acao {
	return &models.Acao{Base: models.Base{ID: 2}, Nome: "Petrobras PN", Ticker: "PETR4", PrecoAtual: models.MustMoney("30")}
}

// --- tests ---

func TestAlocacaoHandler_AddAlocacao(t *testing.T) {
	t.Run("returns_201_with_nested_acao", func(t *testing.T) {
		var gotCliente uint
		svc := &mockAlocacaoService{
			addAlocacaoFn: func(clienteID uint, a *models.Alocacao) (*models.Alocacao, error) {
				gotCliente = clienteID
				a.ID = 9
				a.Acao = petr4()
				return a, nil
			},
		}
		r := setupAlocacaoRouter(NewAlocacaoHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "POST", "/clientes/4/alocacoes",
			`{"acao_id":2,"quantidade":10,"valor_medio_aquisicao":"25.5","data_ultima_compra":"2024-01-10"}`)

		if rec.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
		}
		if gotCliente != 4 {
			t.Errorf("expected cliente 4 from the path, got %d", gotCliente)
		}
		result := parseJSON(t, rec)
		if result["cliente_id"] != float64(4) {
			t.Errorf("expected cliente_id=4, got %v", result["cliente_id"])
		}
		if result["quantidade"] != "10.0000" {
			t.Errorf("expected quantidade=10.0000, got %v", result["quantidade"])
		}
		if result["valor_medio_aquisicao"] != "25.50" {
			t.Errorf("expected valor_medio_aquisicao=25.50, got %v", result["valor_medio_aquisicao"])
		}
		if result["data_ultima_compra"] != "2024-01-10" {
			t.Errorf("expected data_ultima_compra=2024-01-10, got %v", result["data_ultima_compra"])
		}
		acao, ok := result["acao"].(map[string]interface{})
		if !ok {
			t.Fatalf("expected nested acao, got %v", result["acao"])
		}
		if acao["ticker"] != "PETR4" || acao["preco_atual"] != "30.00" {
			t.Errorf("unexpected nested acao %v", acao)
		}
	})

	t.Run("returns_400_on_missing_fields", func(t *testing.T) {
		r := setupAlocacaoRouter(NewAlocacaoHandler(&mockAlocacaoService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/clientes/4/alocacoes", `{"acao_id":2}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "VALIDATION_ERROR")
		for _, field := range []string{"quantidade", "valor_medio_aquisicao", "data_ultima_compra"} {
			assertDetailField(t, result, field)
		}
	})

	t.Run("returns_400_on_zero_quantity", func(t *testing.T) {
		r := setupAlocacaoRouter(NewAlocacaoHandler(&mockAlocacaoService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/clientes/4/alocacoes",
			`{"acao_id":2,"quantidade":0,"valor_medio_aquisicao":0,"data_ultima_compra":"2024-01-10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertDetailField(t, result, "quantidade")
		details, _ := result["details"].([]interface{})
		if len(details) != 1 {
			t.Errorf("a zero average price is allowed, expected one detail, got %v", details)
		}
	})

	t.Run("returns_400_on_string_acao_id", func(t *testing.T) {
		r := setupAlocacaoRouter(NewAlocacaoHandler(&mockAlocacaoService{}, &mockAuditService{}))

		rec := doRequest(r, "POST", "/clientes/4/alocacoes",
			`{"acao_id":"x","quantidade":1,"valor_medio_aquisicao":1,"data_ultima_compra":"2024-01-10"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		result := parseJSON(t, rec)
		assertErrorCode(t, result, "INVALID_INPUT")
		assertDetailField(t, result, "acao_id")
	})

	for _, tc := range []struct {
		name   string
		err    error
		status int
		code   string
	}{
		{"cliente_missing", apperrors.ErrClienteNotFound, http.StatusNotFound, "CLIENTE_NOT_FOUND"},
		{"acao_missing", apperrors.ErrAcaoNotFound, http.StatusNotFound, "ACAO_NOT_FOUND"},
		{"duplicate_pair", apperrors.ErrDuplicateAlocacao, http.StatusConflict, "DUPLICATE_ALOCACAO"},
	} {
		t.Run("returns_"+tc.code+"_when_"+tc.name, func(t *testing.T) {
			svc := &mockAlocacaoService{
				addAlocacaoFn: func(uint, *models.Alocacao) (*models.Alocacao, error) { return nil, tc.err },
			}
			r := setupAlocacaoRouter(NewAlocacaoHandler(svc, &mockAuditService{}))

			rec := doRequest(r, "POST", "/clientes/4/alocacoes",
				`{"acao_id":2,"quantidade":1,"valor_medio_aquisicao":1,"data_ultima_compra":"2024-01-10"}`)

			if rec.Code != tc.status {
				t.Fatalf("expected %d, got %d", tc.status, rec.Code)
			}
			assertErrorCode(t, parseJSON(t, rec), tc.code)
		})
	}
}

func TestAlocacaoHandler_ListClienteAlocacoes(t *testing.T) {
	t.Run("returns_empty_array", func(t *testing.T) {
		r := setupAlocacaoRouter(NewAlocacaoHandler(&mockAlocacaoService{}, &mockAuditService{}))

		rec := doRequest(r, "GET", "/clientes/99/alocacoes", "")

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}
		if rec.Body.String() != "[]" {
			t.Errorf("expected [], got %s", rec.Body.String())
		}
	})

	t.Run("returns_nested_acoes", func(t *testing.T) {
		svc := &mockAlocacaoService{
			listClienteAlocacoesFn: func(clienteID uint) ([]models.Alocacao, error) {
				return []models.Alocacao{{
					Base:       models.Base{ID: 1},
					ClienteID:  clienteID,
					AcaoID:     2,
					Quantidade: models.MustQuantity("3"),
					Acao:       petr4(),
				}}, nil
			},
		}
		r := setupAlocacaoRouter(NewAlocacaoHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "GET", "/clientes/4/alocacoes", "")

		list := parseJSONArray(t, rec)
		if len(list) != 1 {
			t.Fatalf("expected 1 alocacao, got %d", len(list))
		}
		item := list[0].(map[string]interface{})
		if item["acao"].(map[string]interface{})["nome"] != "Petrobras PN" {
			t.Errorf("expected nested acao nome, got %v", item["acao"])
		}
	})
}

func TestAlocacaoHandler_GetAlocacao(t *testing.T) {
	svc := &mockAlocacaoService{
		getAlocacaoByIDFn: func(uint) (*models.Alocacao, error) { return nil, apperrors.ErrAlocacaoNotFound },
	}
	r := setupAlocacaoRouter(NewAlocacaoHandler(svc, &mockAuditService{}))

	rec := doRequest(r, "GET", "/alocacoes/3", "")

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	assertErrorCode(t, parseJSON(t, rec), "ALOCACAO_NOT_FOUND")
}

func TestAlocacaoHandler_UpdateAlocacao(t *testing.T) {
	t.Run("ignores_fixed_keys", func(t *testing.T) {
		var got map[string]interface{}
		svc := &mockAlocacaoService{
			updateAlocacaoFn: func(_ uint, updates map[string]interface{}) (*models.Alocacao, error) {
				got = updates
				if len(updates) == 0 {
					return nil, apperrors.ErrEmptyUpdate
				}
				return &models.Alocacao{}, nil
			},
		}
		r := setupAlocacaoRouter(NewAlocacaoHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/alocacoes/1", `{"cliente_id":5,"acao_id":6}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "EMPTY_UPDATE")
		if len(got) != 0 {
			t.Errorf("expected no changes, got %v", got)
		}
	})

	t.Run("partial", func(t *testing.T) {
		var got map[string]interface{}
		svc := &mockAlocacaoService{
			updateAlocacaoFn: func(id uint, updates map[string]interface{}) (*models.Alocacao, error) {
				got = updates
				return &models.Alocacao{Base: models.Base{ID: id}, Quantidade: updates["quantidade"].(models.Quantity)}, nil
			},
		}
		r := setupAlocacaoRouter(NewAlocacaoHandler(svc, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/alocacoes/1", `{"quantidade":"12.5"}`)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
		}
		if len(got) != 1 {
			t.Errorf("expected only quantidade, got %v", got)
		}
		if parseJSON(t, rec)["quantidade"] != "12.5000" {
			t.Error("expected quantidade=12.5000")
		}
	})

	t.Run("returns_400_on_too_many_decimals", func(t *testing.T) {
		r := setupAlocacaoRouter(NewAlocacaoHandler(&mockAlocacaoService{}, &mockAuditService{}))

		rec := doRequest(r, "PUT", "/alocacoes/1", `{"quantidade":"1.00001"}`)

		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
		assertErrorCode(t, parseJSON(t, rec), "VALIDATION_ERROR")
	})
}

func TestAlocacaoHandler_DeleteAlocacao(t *testing.T) {
	audit := &mockAuditService{}
	r := setupAlocacaoRouter(NewAlocacaoHandler(&mockAlocacaoService{}, audit))

	rec := doRequest(r, "DELETE", "/alocacoes/1", "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if len(audit.entries) != 1 || audit.entries[0].action != "DELETE_ALOCACAO" {
		t.Errorf("expected one DELETE_ALOCACAO entry, got %+v", audit.entries)
	}
}
