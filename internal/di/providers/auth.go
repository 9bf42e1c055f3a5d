package providers

import (
	"encoding/hex"

	"github.com/samber/do/v2"

	"github.com/quillapp/quill-server/internal/auth"
	"github.com/quillapp/quill-server/internal/config"
	"github.com/quillapp/quill-server/internal/logger"
)

// AuthKey is the PASETO symmetric key loaded from the data directory.
type AuthKey []byte

// ProvideAuthKey loads the token key from disk, generating one on first
// boot.
func ProvideAuthKey(i do.Injector) (AuthKey, error) {
	cfg := do.MustInvoke[*config.Config](i)
	log := do.MustInvoke[*logger.Logger](i)

	key, err := auth.LoadOrGenerateKey(cfg.Data.Path)
	if err != nil {
		return nil, err
	}
	cfg.Auth.AccessTokenKey = key

	log.Debug("Auth key loaded", "path", cfg.Data.Path)
	return AuthKey(key), nil
}

// ProvideTokenService provides the PASETO token service.
func ProvideTokenService(i do.Injector) (*auth.TokenService, error) {
	cfg := do.MustInvoke[*config.Config](i)
	key := do.MustInvoke[AuthKey](i)

	return auth.NewTokenService(
		hex.EncodeToString(key),
		cfg.Auth.AccessTokenDuration,
		cfg.Auth.RefreshTokenDuration,
	)
}
