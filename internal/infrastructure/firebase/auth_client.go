package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

func (f *FirebaseAuthClient) GetUserInfo(ctx context.Context, uid string) (email, displayName, photoURL string, err error) {
	record, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return "", "", "", err
	}

	return record.Email, record.DisplayName, record.PhotoURL, nil
}

func (f *FirebaseAuthClient) DisableUser(ctx context.Context, uid string, disabled bool) error {
	params := (&auth.UserToUpdate{}).Disabled(disabled)

	_, err := f.client.UpdateUser(ctx, uid, params)
	return err
}
