package slot_test

import (
	"testing"

	"github.com/mgiwa78/hr-intern-macro-app/internal/adapters/storage/slot"
	"github.com/mgiwa78/hr-intern-macro-app/internal/core/onboarding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleEmployees() []onboarding.Employee {
	return []onboarding.Employee{
		{
			ID:         "emp-1",
			FullName:   "Jane Doe",
			Email:      "jane@co.com",
			JobRole:    "Software Engineer",
			Department: "Engineering",
			StartDate:  "2025-04-01",
			Tasks: []onboarding.Task{
				{ID: "t-1", Title: "Sign NDA", Completed: true, EmployeeID: "emp-1"},
				{ID: "t-2", Title: "Meet the team", EmployeeID: "emp-1", IsCustom: true},
			},
		},
		{
			ID:               "emp-2",
			FullName:         "John Smith",
			Email:            "john@co.com",
			JobRole:          "Sales Manager",
			Department:       "Sales",
			Tasks:            []onboarding.Task{},
			IsFullyOnboarded: true,
		},
	}
}

func TestEncode_FieldLayout(t *testing.T) {
	t.Parallel()

	b, err := slot.Encode(sampleEmployees()[1:])
	require.NoError(t, err)

	assert.JSONEq(t, `[{
		"id": "emp-2",
		"fullName": "John Smith",
		"email": "john@co.com",
		"jobRole": "Sales Manager",
		"department": "Sales",
		"tasks": [],
		"isFullyOnboarded": true
	}]`, string(b))
	assert.NotContains(t, string(b), "startDate")
}

func TestEncode_OmitsIsCustomForDefaultTasks(t *testing.T) {
	t.Parallel()

	b, err := slot.Encode(sampleEmployees()[:1])
	require.NoError(t, err)

	assert.Contains(t, string(b), `"startDate":"2025-04-01"`)
	assert.Contains(t, string(b), `{"id":"t-1","title":"Sign NDA","completed":true,"employeeId":"emp-1"}`)
	assert.Contains(t, string(b), `"isCustom":true`)
}

func TestEncode_Empty(t *testing.T) {
	t.Parallel()

	b, err := slot.Encode(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(b))
}

func TestDecode_RoundTripIsStable(t *testing.T) {
	t.Parallel()

	first, err := slot.Encode(sampleEmployees())
	require.NoError(t, err)

	decoded, ok := slot.Decode(first)
	require.True(t, ok)
	assert.Equal(t, sampleEmployees(), decoded)

	second, err := slot.Encode(decoded)
	require.NoError(t, err)
	assert.Equal(t, string(first), string(second))
}

func TestDecode_AcceptsBrowserShape(t *testing.T) {
	t.Parallel()

	raw := `[{"id":"a","fullName":"A","email":"a@x","jobRole":"IT Technician","department":"IT","startDate":"",
		"tasks":[{"id":"t","title":"Sign NDA","completed":false,"employeeId":"random"}],"isFullyOnboarded":false}]`

	decoded, ok := slot.Decode([]byte(raw))
	require.True(t, ok)
	require.Len(t, decoded, 1)
	assert.Equal(t, "", decoded[0].StartDate)
	assert.False(t, decoded[0].Tasks[0].IsCustom)
}

func TestDecode_MissingOrMalformedIsEmpty(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		input  string
		wantOK bool
	}{
		{name: "empty", input: "", wantOK: true},
		{name: "whitespace", input: "  \n", wantOK: true},
		{name: "null", input: "null", wantOK: true},
		{name: "not json", input: "{oops", wantOK: false},
		{name: "object instead of array", input: `{"id":"x"}`, wantOK: false},
		{name: "wrong field type", input: `[{"id":1}]`, wantOK: false},
		{name: "null record", input: `[null]`, wantOK: false},
		{name: "record without id", input: `[{}]`, wantOK: false},
		{name: "record with empty id", input: `[{"id":"","fullName":"Ada"}]`, wantOK: false},
		{name: "null task", input: `[{"id":"e1","tasks":[null]}]`, wantOK: false},
		{name: "task without id", input: `[{"id":"e1","tasks":[{"title":"Sign NDA"}]}]`, wantOK: false},
		{name: "one bad record among good ones", input: `[{"id":"e1"},{"fullName":"Bob"}]`, wantOK: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			decoded, ok := slot.Decode([]byte(tt.input))
			assert.Equal(t, tt.wantOK, ok)
			assert.NotNil(t, decoded)
			assert.Empty(t, decoded)
		})
	}
}
