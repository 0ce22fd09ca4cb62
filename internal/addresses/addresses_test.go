package addresses

import (
	"context"
	"net/http/httptest"
	"testing"

	"store499_app/internal/api"
	"store499_app/internal/apperrors"
	"store499_app/internal/kv"
	"store499_app/internal/models"
	"store499_app/internal/session"
	"store499_app/internal/stubapi"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	m.Run()
}

func validAddress() models.StoreAddress {
	return models.StoreAddress{
		Name:    "Asha Kumar",
		Address: "12 MG Road",
		City:    "Bengaluru",
		State:   "Karnataka",
		Pincode: "560001",
		Phone:   "9876543210",
	}
}

func newLoggedInStore(t *testing.T) *Store {
	t.Helper()
	backend := httptest.NewServer(stubapi.NewServer("test_secret").Router())
	t.Cleanup(backend.Close)

	client := api.NewClient(backend.URL)
	sess := session.New(client, kv.NewMemory())
	_, err := sess.Register(context.Background(), api.RegisterInput{
		Name: "Asha", Email: "asha@example.com", Phone: "9876543210", Password: "secret1",
	})
	require.NoError(t, err)

	return New(client, sess)
}

func TestAddValidation(t *testing.T) {
	s := newLoggedInStore(t)
	ctx := context.Background()

	missing := validAddress()
	missing.City = ""
	_, err := s.Add(ctx, missing)
	var ve *apperrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "form", ve.Field)

	badPhone := validAddress()
	badPhone.Phone = "1234567890"
	_, err = s.Add(ctx, badPhone)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "phone", ve.Field)

	badPin := validAddress()
	badPin.Pincode = "5600"
	_, err = s.Add(ctx, badPin)
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "pincode", ve.Field)

	assert.Empty(t, s.All(), "rejected input must not reach the slice")
}

func TestCRUDKeepsSliceInSync(t *testing.T) {
	s := newLoggedInStore(t)
	ctx := context.Background()

	created, err := s.Add(ctx, validAddress())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID, "server assigns the id")
	assert.Len(t, s.All(), 1)

	second := validAddress()
	second.Name = "Office"
	_, err = s.Add(ctx, second)
	require.NoError(t, err)
	assert.Len(t, s.All(), 2)

	// Remote list agrees with the local slice.
	require.NoError(t, s.Fetch(ctx))
	assert.Len(t, s.All(), 2)

	edited := validAddress()
	edited.City = "Mysuru"
	updated, err := s.Update(ctx, created.ID, edited)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Mysuru", updated.City)

	found := false
	for _, addr := range s.All() {
		if addr.ID == created.ID {
			found = true
			assert.Equal(t, "Mysuru", addr.City)
		}
	}
	assert.True(t, found)

	require.NoError(t, s.Delete(ctx, created.ID))
	assert.Len(t, s.All(), 1)

	require.NoError(t, s.Fetch(ctx))
	assert.Len(t, s.All(), 1)
}

func TestUpdateUnknownIDSurfacesServerMessage(t *testing.T) {
	s := newLoggedInStore(t)

	_, err := s.Update(context.Background(), "missing", validAddress())
	require.Error(t, err)
	assert.Equal(t, "Store not found", apperrors.Message(err))
}
