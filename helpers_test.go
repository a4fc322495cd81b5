package jsonvalue

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// Documents shared by the accessor tests
const (
	testConfigJSON  = `{"dbtype":"mongo","mongo":{"hostip":"127.0.0.1","port":"30000","WC":"1"}}`
	testBrokenJSON  = `"30000","WC": "1" }} `
	testRecordsJSON = `{"test":[{"0":"1d43965f-3871-4ba0-a640-e306678989c2"},{"1":"914e273a-0a2c-4716-a21d-f1a783d534a1"},` +
		`{"2":"8551a577-b9bb-4724-aa4e-b0abac71d9da"},{"3":"7b8f16aa-25d2-44c4-b2f2-18828492fc62"},` +
		`{"4":"17b95552-401c-4842-8fc5-f57e5d5a2b00"},{"5":"bf4c336b-da18-47a3-9f19-7c690a2cd96b"},` +
		`{"6":"6e2b003e-44bc-4cd8-a525-9b1ef3e6df47"},{"7":"5f1537e7-7946-48f1-9e4d-8bb7a6ebe976"},` +
		`{"8":"dcff72de-ae70-4b51-a241-de89b58d1f76"},{"9":"846fe197-7ad8-4794-b2e6-ee284045d93b"}]}`
)

// TestHelper provides fixtures and assertions for value tests
type TestHelper struct {
	*require.Assertions
	t *testing.T
}

// NewTestHelper creates a new test helper
func NewTestHelper(t *testing.T) *TestHelper {
	return &TestHelper{Assertions: require.New(t), t: t}
}

// MustParse parses text with the default codec and closes the value when
// the test ends
func (h *TestHelper) MustParse(text string) *Value {
	h.t.Helper()
	v, err := Parse(text)
	h.NoError(err)
	h.t.Cleanup(func() { _ = v.Close() })
	return v
}

// NewObject returns a value holding an empty object, closed when the test ends
func (h *TestHelper) NewObject() *Value {
	h.t.Helper()
	v := New()
	h.NoError(v.CreateRootObject())
	h.t.Cleanup(func() { _ = v.Close() })
	return v
}

// RandomStrings returns n distinct random strings
func (h *TestHelper) RandomStrings(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = uuid.NewString()
	}
	return out
}

// Serialize returns the compact text of v
func (h *TestHelper) Serialize(v *Value) string {
	h.t.Helper()
	buf, err := v.ToBuffer()
	h.NoError(err)
	defer buf.Release()
	return buf.String()
}

// RoundTrip serializes v and parses the result into a new value
func (h *TestHelper) RoundTrip(v *Value) *Value {
	h.t.Helper()
	return h.MustParse(h.Serialize(v))
}
