package firebaseapp

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

// TokenVerifier checks Firebase ID tokens sent by the web client.
type TokenVerifier struct {
	client *auth.Client
}

func NewTokenVerifier(client *auth.Client) *TokenVerifier {
	return &TokenVerifier{client: client}
}

func (v *TokenVerifier) VerifyToken(ctx context.Context, idToken string) (string, error) {
	tok, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return "", err
	}
	return tok.UID, nil
}
