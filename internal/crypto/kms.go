package crypto

import (
	"context"
	"encoding/base64"

	gcpkms "cloud.google.com/go/kms/apiv1"
	"cloud.google.com/go/kms/apiv1/kmspb"

	"github.com/TamerMomtaz/agentee-backend/internal/errs"
)

// KMS encrypts sensitive fields (push subscription keys) before they are
// written to Firestore.
type KMS struct {
	client  *gcpkms.KeyManagementClient
	keyName string
}

func NewKMS(client *gcpkms.KeyManagementClient, keyName string) *KMS {
	return &KMS{client: client, keyName: keyName}
}

// configured reports whether a key is wired up. Without one, fields pass
// through unencrypted (local development).
func (k *KMS) configured() bool {
	return k.client != nil && k.keyName != ""
}

// Encrypt encrypts plaintext with the configured key and returns base64 text.
func (k *KMS) Encrypt(ctx context.Context, plaintext string) (string, error) {
	if !k.configured() {
		return plaintext, nil
	}
	resp, err := k.client.Encrypt(ctx, &kmspb.EncryptRequest{
		Name:      k.keyName,
		Plaintext: []byte(plaintext),
	})
	if err != nil {
		return "", errs.NewEncryptionError("failed to encrypt field", err)
	}
	return base64.StdEncoding.EncodeToString(resp.Ciphertext), nil
}

// Decrypt reverses Encrypt.
func (k *KMS) Decrypt(ctx context.Context, ciphertext string) (string, error) {
	if !k.configured() {
		return ciphertext, nil
	}
	raw, err := base64.StdEncoding.DecodeString(ciphertext)
	if err != nil {
		return "", errs.NewEncryptionError("ciphertext is not valid base64", err)
	}
	resp, err := k.client.Decrypt(ctx, &kmspb.DecryptRequest{
		Name:       k.keyName,
		Ciphertext: raw,
	})
	if err != nil {
		return "", errs.NewEncryptionError("failed to decrypt field", err)
	}
	return string(resp.Plaintext), nil
}
