package api

import (
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func messageForm() url.Values {
	form := url.Values{}
	form.Set("name", "Ada")
	form.Set("email", "ada@example.com")
	form.Set("subject", "Hello")
	form.Set("message", "I would like to talk.")
	return form
}

func TestSubmitMessage(t *testing.T) {
	t.Run("success persists and notifies", func(t *testing.T) {
		store := &fakeMessageStore{}
		notifier := &fakeNotifier{}

		rec := postForm(t, newContactHandler(store, notifier).submitMessage(), messageForm())

		require.Equal(t, http.StatusOK, rec.Code)

		var resp MutationResponse
		require.NoError(t, jsonDecode(rec, &resp))
		assert.True(t, resp.Success)
		assert.Equal(t, "Your message has been sent successfully!", resp.Message)

		require.NotNil(t, store.lastAdded)
		assert.Equal(t, "ada@example.com", store.lastAdded.SenderEmail)
		assert.Equal(t, 1, notifier.notifyCalls)
	})

	t.Run("invalid email performs no insert", func(t *testing.T) {
		store := &fakeMessageStore{}
		form := messageForm()
		form.Set("email", "not-an-email")

		rec := postForm(t, newContactHandler(store, nil).submitMessage(), form)

		requireFailure(t, rec, http.StatusBadRequest, "Please enter a valid email address.")
		assert.Zero(t, store.addCalls)
	})

	t.Run("missing field", func(t *testing.T) {
		store := &fakeMessageStore{}
		form := messageForm()
		form.Del("subject")

		rec := postForm(t, newContactHandler(store, nil).submitMessage(), form)

		requireFailure(t, rec, http.StatusBadRequest,
			"All fields (Name, Email, Subject, Message) are required.")
		assert.Zero(t, store.addCalls)
	})

	t.Run("gateway failure", func(t *testing.T) {
		store := &fakeMessageStore{addErr: assert.AnError}
		rec := postForm(t, newContactHandler(store, nil).submitMessage(), messageForm())
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})

	t.Run("notifier failure does not fail the request", func(t *testing.T) {
		store := &fakeMessageStore{}
		notifier := &fakeNotifier{notifyErr: assert.AnError}

		rec := postForm(t, newContactHandler(store, notifier).submitMessage(), messageForm())

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, 1, notifier.notifyCalls)
	})
}
