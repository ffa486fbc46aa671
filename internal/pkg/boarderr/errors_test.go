package boarderr

import "testing"

func TestImmutable(t *testing.T) {
	e := New(400, "INVALID_REQUEST", "invalid request: some or all request parameters are invalid")
	changedE := e.Msg("%s", "changed")
	if e.Message == "changed" {
		t.Errorf("Expected immutable error with message not equal to 'changed', got '%s'", e.Message)
	}
	if changedE.Message != "changed" {
		t.Errorf("Expected immutable error with message equal to 'changed', got '%s'", changedE.Message)
	}
}

func TestWithExtrasKeepsOriginal(t *testing.T) {
	e := ErrUpstreamUnavailable.WithExtras(Extras{"upstream": "http://localhost:8000"})
	if ErrUpstreamUnavailable.Extras != nil {
		t.Errorf("Expected predefined error to stay without extras, got %v", *ErrUpstreamUnavailable.Extras)
	}
	if (*e.Extras)["upstream"] != "http://localhost:8000" {
		t.Errorf("Expected extras to carry upstream, got %v", *e.Extras)
	}
	if e.Error() != "UPSTREAM_UNAVAILABLE: stats backend is not reachable" {
		t.Errorf("Unexpected error string '%s'", e.Error())
	}
}
