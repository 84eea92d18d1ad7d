package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/bakelk/cake_shop/internal/transport"
)

func deliveryInfoRequest() transport.DeliveryInfoRequest {
	return transport.DeliveryInfoRequest{
		CustomerName:  "Nimal Perera",
		Address:       "12 Temple Road",
		City:          "Colombo",
		PostalCode:    "00400",
		ContactNumber: "0771234567",
		Email:         "nimal@example.com",
	}
}

func TestWalletCreateRequiresAllFields(t *testing.T) {
	svc := &WalletService{Repo: newTestRepo(t)}

	req := deliveryInfoRequest()
	req.PostalCode = ""
	_, err := svc.Create(context.Background(), uuid.New(), req)
	require.ErrorIs(t, err, ErrValidation)
}

func TestWalletCRUD(t *testing.T) {
	svc := &WalletService{Repo: newTestRepo(t)}
	userID := uuid.New()

	info, err := svc.Create(context.Background(), userID, deliveryInfoRequest())
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, info.ID)

	got, err := svc.Get(context.Background(), info.ID, userID)
	require.NoError(t, err)
	require.Equal(t, "Colombo", got.City)

	req := deliveryInfoRequest()
	req.City = "Kandy"
	updated, err := svc.Update(context.Background(), info.ID, userID, req)
	require.NoError(t, err)
	require.Equal(t, "Kandy", updated.City)

	list, err := svc.List(context.Background(), userID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, svc.Delete(context.Background(), info.ID, userID))

	_, err = svc.Get(context.Background(), info.ID, userID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestWalletIsOwnerScoped(t *testing.T) {
	svc := &WalletService{Repo: newTestRepo(t)}
	owner := uuid.New()
	stranger := uuid.New()

	info, err := svc.Create(context.Background(), owner, deliveryInfoRequest())
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), info.ID, stranger)
	require.ErrorIs(t, err, ErrNotFound)

	_, err = svc.Update(context.Background(), info.ID, stranger, deliveryInfoRequest())
	require.ErrorIs(t, err, ErrNotFound)

	err = svc.Delete(context.Background(), info.ID, stranger)
	require.ErrorIs(t, err, ErrNotFound)

	list, err := svc.List(context.Background(), stranger)
	require.NoError(t, err)
	require.Empty(t, list)
}
