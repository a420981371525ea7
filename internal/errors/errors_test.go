package errors

import (
	"encoding/json"
	stderrors "errors"
	"testing"
)

func TestDerivedErrorsMatchSentinel(t *testing.T) {
	cause := stderrors.New("connection refused")
	derived := []*AppError{
		Wrap(ErrInternalServer, cause),
		WithMessage(ErrInternalServer, "boom"),
		WithFields(ErrInternalServer, "x"),
		WithDetails(ErrInternalServer, []FieldError{{Field: "x", Message: "bad"}}),
	}
	for _, e := range derived {
		if !stderrors.Is(e, ErrInternalServer) {
			t.Errorf("expected %+v to match ErrInternalServer", e)
		}
		if stderrors.Is(e, ErrNotFound) {
			t.Errorf("expected %+v not to match ErrNotFound", e)
		}
	}

	if !stderrors.Is(derived[0], cause) {
		t.Error("expected Wrap to keep the cause reachable")
	}
	if ErrInternalServer.Internal != nil || ErrInternalServer.Message != "An internal error occurred" {
		t.Error("expected sentinel to be left untouched")
	}
}

func TestAppError_JSON(t *testing.T) {
	e := WithFields(Wrap(ErrDuplicateValue, stderrors.New("secret")), "cpf_cnpj")

	b, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := `{"code":"DUPLICATE_VALUE","message":"A record with this value already exists","fields":["cpf_cnpj"]}`
	if string(b) != want {
		t.Errorf("expected %s, got %s", want, b)
	}
}
