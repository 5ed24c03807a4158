package contact_test

import (
	"errors"
	"testing"

	"github.com/KignLeon/hpcf-website/internal/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeSubmission(t *testing.T) {
	t.Run("AllFields", func(t *testing.T) {
		req, err := contact.DecodeSubmission([]byte(`{"name":"Jane","email":"jane@x.com","message":"Pray for me","type":"prayer","extra":1}`))
		require.NoError(t, err)
		require.NotNil(t, req)

		sub := req.Submission()
		assert.Equal(t, contact.Submission{
			Name:    "Jane",
			Email:   "jane@x.com",
			Message: "Pray for me",
			Type:    "prayer",
		}, sub)
	})

	t.Run("Defaults", func(t *testing.T) {
		req, err := contact.DecodeSubmission([]byte(`{"name":"A","email":"a@b.com"}`))
		require.NoError(t, err)

		sub := req.Submission()
		assert.Equal(t, contact.DefaultMessage, sub.Message)
		assert.Equal(t, contact.DefaultType, sub.Type)
	})

	t.Run("EmptyStringsArePresent", func(t *testing.T) {
		req, err := contact.DecodeSubmission([]byte(`{"name":"","email":"","message":""}`))
		require.NoError(t, err)
		require.NotNil(t, req.Name)
		require.NotNil(t, req.Email)

		sub := req.Submission()
		assert.Equal(t, "", sub.Message)
		assert.Equal(t, contact.DefaultType, sub.Type)
	})

	t.Run("AbsentDocument", func(t *testing.T) {
		for _, body := range []string{"", "   ", "null"} {
			req, err := contact.DecodeSubmission([]byte(body))
			assert.NoError(t, err, body)
			assert.Nil(t, req, body)
		}
	})

	t.Run("InvalidFormat", func(t *testing.T) {
		for _, body := range []string{"not valid json", `{"name":`, `{} {}`, `[]`, `true`, `{name:'A',email:'b'}`} {
			_, err := contact.DecodeSubmission([]byte(body))
			assert.ErrorIs(t, err, contact.ErrInvalidFormat, body)
		}
	})

	t.Run("PrimitivesReadAsText", func(t *testing.T) {
		req, err := contact.DecodeSubmission([]byte(`{"name":12345,"email":"j@x.com","message":true,"type":1.50}`))
		require.NoError(t, err)

		assert.Equal(t, contact.Submission{
			Name:    "12345",
			Email:   "j@x.com",
			Message: "true",
			Type:    "1.50",
		}, req.Submission())
	})

	t.Run("EscapedString", func(t *testing.T) {
		req, err := contact.DecodeSubmission([]byte(`{"name":"J\u00e9 \"Jo\"","email":"j@x.com"}`))
		require.NoError(t, err)
		assert.Equal(t, `Jé "Jo"`, req.Submission().Name)
	})

	t.Run("NullOptionalFieldsDefault", func(t *testing.T) {
		req, err := contact.DecodeSubmission([]byte(`{"name":"A","email":"b","message":null,"type":null}`))
		require.NoError(t, err)
		assert.Nil(t, req.Message)

		sub := req.Submission()
		assert.Equal(t, contact.DefaultMessage, sub.Message)
		assert.Equal(t, contact.DefaultType, sub.Type)
	})

	t.Run("WrongFieldType", func(t *testing.T) {
		for _, body := range []string{
			`{"name":"Jane","email":["a@b.com"]}`,
			`{"name":{"first":"Jane"},"email":"a@b.com"}`,
			`{"name":"Jane","email":"a@b.com","type":[]}`,
		} {
			_, err := contact.DecodeSubmission([]byte(body))
			require.Error(t, err, body)
			assert.False(t, errors.Is(err, contact.ErrInvalidFormat), body)
			assert.False(t, errors.Is(err, contact.ErrMissingFields), body)
		}
	})
}
