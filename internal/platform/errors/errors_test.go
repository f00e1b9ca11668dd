package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorCode_StatusAndName(t *testing.T) {
	cases := []struct {
		code   ErrorCode
		status int
		name   string
	}{
		{ErrorCodeNotFound, http.StatusNotFound, "not_found"},
		{ErrorCodeValidation, http.StatusBadRequest, "validation"},
		{ErrorCodeJSON, http.StatusBadRequest, "json"},
		{ErrorCodeInvalidArgument, http.StatusBadRequest, "invalid_argument"},
		{ErrorCodeDuplicateKey, http.StatusConflict, "duplicate_key"},
		{ErrorCodeUnauthorized, http.StatusUnauthorized, "unauthorized"},
		{ErrorCodeForbidden, http.StatusForbidden, "forbidden"},
		{ErrorCodeUnavailable, http.StatusServiceUnavailable, "unavailable"},
		{ErrorCodeDB, http.StatusInternalServerError, "db"},
		{ErrorCodePanic, http.StatusInternalServerError, "panic"},
		{404, http.StatusInternalServerError, "code(404)"},
	}
	for _, c := range cases {
		if c.code.Status() != c.status || c.code.String() != c.name {
			t.Fatalf("%d: status %d name %q", c.code, c.code.Status(), c.code.String())
		}
	}
}

func TestDescribe_HidesCause(t *testing.T) {
	cause := stderrs.New("dial tcp 10.0.0.3:5432: connection refused")
	err := fmt.Errorf("list: %w", Wrap(cause, ErrorCodeUnavailable, "mood store unavailable"))

	if !stderrs.Is(err, cause) {
		t.Fatalf("cause chain lost")
	}
	if want := "list: mood store unavailable: " + cause.Error(); err.Error() != want {
		t.Fatalf("Error() = %q", err.Error())
	}
	got := Describe(err)
	if got != (Public{Status: 503, Code: ErrorCodeUnavailable, Message: "mood store unavailable"}) {
		t.Fatalf("Describe = %+v", got)
	}
	if foreign := Describe(cause); foreign.Status != 500 || foreign.Message != "internal error" {
		t.Fatalf("foreign = %+v", foreign)
	}
}

func TestValidationfAndWithOp(t *testing.T) {
	err := Validationf("rating", "rating must be between %d and %d", 1, 5)
	tagged := WithOp(err, "submit")

	e, _ := As(tagged)
	if e.Field() != "rating" || e.Op() != "submit" || e.Message() != "rating must be between 1 and 5" {
		t.Fatalf("tagged = %+v", e)
	}
	if orig, _ := As(err); orig.Op() != "" {
		t.Fatalf("WithOp mutated the original")
	}
	raw := stderrs.New("raw")
	if WithOp(raw, "x") != raw {
		t.Fatalf("foreign errors should pass through")
	}
}

func TestRecode(t *testing.T) {
	if Recode(nil, ErrorCodeNotFound, "x") != nil {
		t.Fatalf("Recode(nil) should be nil")
	}
	orig := Forbiddenf("mood entry belongs to another user")
	got := Recode(orig, ErrorCodeNotFound, "mood entry not found")
	if !IsCode(got, ErrorCodeNotFound) || !stderrs.Is(got, orig) {
		t.Fatalf("Recode = %v", got)
	}
	if d := Describe(got); d.Status != 404 || d.Message != "mood entry not found" {
		t.Fatalf("recoded public = %+v", d)
	}
}

func TestClassifiers(t *testing.T) {
	cases := []struct {
		err   error
		code  ErrorCode
		infra bool
	}{
		{DBf("x"), ErrorCodeDB, true},
		{Unavailablef("x"), ErrorCodeUnavailable, true},
		{PanicErrf("x"), ErrorCodePanic, true},
		{stderrs.New("raw"), ErrorCodeUnknown, true},
		{Validationf("rating", "x"), ErrorCodeValidation, false},
		{NotFoundf("x"), ErrorCodeNotFound, false},
		{InvalidArgf("x"), ErrorCodeInvalidArgument, false},
		{JSONErrf("x"), ErrorCodeJSON, false},
		{Forbiddenf("x"), ErrorCodeForbidden, false},
		{Unauthorizedf("x"), ErrorCodeUnauthorized, false},
	}
	for _, c := range cases {
		if !IsCode(c.err, c.code) || IsInfrastructure(c.err) != c.infra {
			t.Fatalf("%v: code %v infra %v", c.err, CodeOf(c.err), IsInfrastructure(c.err))
		}
	}
	if IsInfrastructure(nil) || IsCode(nil, ErrorCodeUnknown) {
		t.Fatalf("nil is not an error of any kind")
	}
}
