package validation

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

func newValidator() *Validator {
	v := New()
	v.now = func() time.Time { return testNow }
	return v
}

func TestBody_UserCreate(t *testing.T) {
	v := newValidator()

	var ok UserCreate
	require.NoError(t, v.Body([]byte(`{"name":"`+gofakeit.Name()+`","email":"`+gofakeit.Email()+`"}`), &ok))

	tests := []struct {
		name string
		body string
	}{
		{name: "blank name", body: `{"name":"  ","email":"a@b.io"}`},
		{name: "bad email", body: `{"name":"Ann","email":"not-an-email"}`},
		{name: "missing email", body: `{"name":"Ann"}`},
		{name: "unknown field", body: `{"name":"Ann","email":"a@b.io","role":"admin"}`},
		{name: "malformed", body: `{"name":`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var u UserCreate
			assert.ErrorIs(t, v.Body([]byte(tt.body), &u), ErrInvalid)
		})
	}
}

func TestBody_UserUpdatePartial(t *testing.T) {
	v := newValidator()

	var onlyName UserUpdate
	assert.NoError(t, v.Body([]byte(`{"name":"Bob"}`), &onlyName))

	var badEmail UserUpdate
	assert.ErrorIs(t, v.Body([]byte(`{"email":"bob"}`), &badEmail), ErrInvalid)
}

func TestBody_ItemCreate(t *testing.T) {
	v := newValidator()

	var ok ItemCreate
	assert.NoError(t, v.Body([]byte(`{"name":"Drill","description":"cordless","available":false}`), &ok))

	var noAvailable ItemCreate
	assert.ErrorIs(t, v.Body([]byte(`{"name":"Drill","description":"cordless"}`), &noAvailable), ErrInvalid)

	var badRequest ItemCreate
	assert.ErrorIs(t, v.Body([]byte(`{"name":"Drill","description":"cordless","available":true,"requestId":0}`), &badRequest), ErrInvalid)
}

func TestBody_BookingCreate(t *testing.T) {
	v := newValidator()

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"itemId":1,"start":"2026-03-11T10:00:00Z","end":"2026-03-12T10:00:00Z"}`},
		{name: "start in past", body: `{"itemId":1,"start":"2026-03-09T10:00:00Z","end":"2026-03-12T10:00:00Z"}`, wantErr: true},
		{name: "end before start", body: `{"itemId":1,"start":"2026-03-12T10:00:00Z","end":"2026-03-11T10:00:00Z"}`, wantErr: true},
		{name: "end equals start", body: `{"itemId":1,"start":"2026-03-12T10:00:00Z","end":"2026-03-12T10:00:00Z"}`, wantErr: true},
		{name: "missing end", body: `{"itemId":1,"start":"2026-03-12T10:00:00Z"}`, wantErr: true},
		{name: "zero item", body: `{"itemId":0,"start":"2026-03-11T10:00:00Z","end":"2026-03-12T10:00:00Z"}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var b BookingCreate
			err := v.Body([]byte(tt.body), &b)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalid)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestStruct_Page(t *testing.T) {
	v := newValidator()

	assert.NoError(t, v.Struct(&Page{From: 0, Size: 10}))
	assert.ErrorIs(t, v.Struct(&Page{From: -1, Size: 10}), ErrInvalid)
	assert.ErrorIs(t, v.Struct(&Page{From: 0, Size: 0}), ErrInvalid)
}
