package service

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/api-activity/internal/validators"
)

func TestDemoService_Hello(t *testing.T) {
	svc := NewDemoService()

	assert.Equal(t, "Hello World!", svc.Hello(context.Background()).Message)
}

func TestDemoService_Square(t *testing.T) {
	tests := []struct {
		num  string
		want int64
	}{
		{num: "0", want: 0},
		{num: "4", want: 16},
		{num: "007", want: 49},
		{num: "3037000499", want: 3037000499 * 3037000499},
	}

	svc := NewDemoService()
	for _, tt := range tests {
		t.Run(tt.num, func(t *testing.T) {
			got, err := svc.Square(context.Background(), tt.num)
			require.NoError(t, err)
			assert.Equal(t, "Square", got.Shape)
			assert.Equal(t, tt.want, got.Area)
		})
	}
}

func TestDemoService_Square_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		num     string
		wantErr error
	}{
		{name: "does not parse as int64", num: "9223372036854775808", wantErr: validators.ErrNumberOutOfRange},
		{name: "area does not fit int64", num: "3037000500", wantErr: validators.ErrNumberOutOfRange},
		{name: "max int64", num: strconv.FormatInt(math.MaxInt64, 10), wantErr: validators.ErrNumberOutOfRange},
		{name: "negative", num: "-4", wantErr: validators.ErrNotANumber},
		{name: "letters", num: "four", wantErr: validators.ErrNotANumber},
		{name: "empty", num: "", wantErr: validators.ErrNotANumber},
	}

	svc := NewDemoService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Square(context.Background(), tt.num)

			var validationErr *validators.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, validators.FieldNum, validationErr.Field)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDemoService_Echo(t *testing.T) {
	foo, empty := "foo", ""

	tests := []struct {
		name       string
		arg1, arg2 *string
		wantJSON   string
	}{
		{name: "none", wantJSON: `{"arg1":null,"arg2":null}`},
		{name: "arg1 only", arg1: &foo, wantJSON: `{"arg1":"foo","arg2":null}`},
		{name: "empty arg2", arg1: &foo, arg2: &empty, wantJSON: `{"arg1":"foo","arg2":""}`},
	}

	svc := NewDemoService()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Echo(context.Background(), tt.arg1, tt.arg2)

			body, err := json.Marshal(got)
			require.NoError(t, err)
			assert.JSONEq(t, tt.wantJSON, string(body))
		})
	}
}
