package sms

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTwilioSend(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/2010-04-01/Accounts/AC123/Messages.json", r.URL.Path)

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "tok456", pass)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "+15550001", r.PostForm.Get("To"))
		assert.Equal(t, "+15559999", r.PostForm.Get("From"))
		assert.Equal(t, "Your login code is 123456.", r.PostForm.Get("Body"))

		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"sid":"SM1"}`))
	}))
	defer srv.Close()

	tw := NewTwilio("AC123", "tok456", "+15559999")
	tw.BaseURL = srv.URL

	res, err := tw.Send(context.Background(), "+15550001", "Your login code is 123456.")
	require.NoError(t, err)
	assert.False(t, res.DevMode)
	assert.Equal(t, http.StatusCreated, res.StatusCode)
	assert.Contains(t, res.Body, "SM1")
}

func TestTwilioSendProviderError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"code":20003}`))
	}))
	defer srv.Close()

	tw := NewTwilio("AC123", "badtoken", "+15559999")
	tw.BaseURL = srv.URL

	res, err := tw.Send(context.Background(), "+15550001", "hi")
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	assert.Contains(t, res.Body, "20003")
}

func TestDevSend(t *testing.T) {
	d := NewDev(nil)
	res, err := d.Send(context.Background(), "+15550001", "hi")
	require.NoError(t, err)
	assert.True(t, res.DevMode)
}
