// Package auth resolves the RSA public keys used to verify access tokens.
// Tokens are minted by an external identity provider; this service only
// fetches the provider's JWKS document and hands golang-jwt a Keyfunc.
package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
)

const fetchTimeout = 10 * time.Second

// KeyStore caches raw JWKS documents across replicas. Get returns an error
// when the document is absent or the cache is unreachable; both cases fall
// back to a direct fetch.
type KeyStore interface {
	Get(ctx context.Context, uri string) ([]byte, error)
	Set(ctx context.Context, uri string, doc []byte) error
}

// JWKSProvider fetches, caches and parses the identity provider's key set.
// Parsed keys are held in a process-wide read-mostly map; an unknown kid
// forces a reload, which is how key rotation is picked up.
type JWKSProvider struct {
	uri    string
	client *http.Client
	cache  KeyStore
	log    zerolog.Logger

	mu   sync.RWMutex
	keys map[string]*rsa.PublicKey
}

// NewJWKSProvider builds a provider for the given JWKS endpoint. cache may
// be nil, in which case every reload hits the endpoint directly.
func NewJWKSProvider(uri string, cache KeyStore, log zerolog.Logger) *JWKSProvider {
	return &JWKSProvider{
		uri:    uri,
		client: &http.Client{Timeout: fetchTimeout},
		cache:  cache,
		log:    log,
		keys:   make(map[string]*rsa.PublicKey),
	}
}

// Keyfunc returns a jwt.Keyfunc that resolves RS256 keys by kid. Any other
// signing algorithm is rejected.
func (p *JWKSProvider) Keyfunc(ctx context.Context) jwt.Keyfunc {
	return func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodRS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		kid, _ := token.Header["kid"].(string)
		if kid == "" {
			return nil, fmt.Errorf("token missing kid header")
		}
		return p.Key(ctx, kid)
	}
}

// Key returns the public key for kid, reloading the key set when the kid is
// not already known.
func (p *JWKSProvider) Key(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	p.mu.RLock()
	key, ok := p.keys[kid]
	p.mu.RUnlock()
	if ok {
		return key, nil
	}

	if err := p.reload(ctx); err != nil {
		return nil, err
	}

	p.mu.RLock()
	key, ok = p.keys[kid]
	p.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no key found for kid %q", kid)
	}
	return key, nil
}

func (p *JWKSProvider) reload(ctx context.Context) error {
	doc, fromCache := p.cachedDocument(ctx)
	if doc == nil {
		fetched, err := p.fetch(ctx)
		if err != nil {
			return err
		}
		doc = fetched
	}

	keys, err := parseJWKS(doc)
	if err != nil {
		// A stale or corrupt cache entry must not take auth down.
		if fromCache {
			p.log.Warn().Err(err).Msg("cached jwks document invalid, refetching")
			if doc, err = p.fetch(ctx); err != nil {
				return err
			}
			if keys, err = parseJWKS(doc); err != nil {
				return err
			}
		} else {
			return err
		}
	}

	p.mu.Lock()
	p.keys = keys
	p.mu.Unlock()
	return nil
}

func (p *JWKSProvider) cachedDocument(ctx context.Context) (doc []byte, fromCache bool) {
	if p.cache == nil {
		return nil, false
	}
	doc, err := p.cache.Get(ctx, p.uri)
	if err != nil {
		return nil, false
	}
	return doc, true
}

func (p *JWKSProvider) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.uri, nil)
	if err != nil {
		return nil, fmt.Errorf("jwks request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jwks fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jwks fetch: unexpected status %d", resp.StatusCode)
	}

	doc, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("jwks fetch: %w", err)
	}

	if p.cache != nil {
		if err := p.cache.Set(ctx, p.uri, doc); err != nil {
			p.log.Warn().Err(err).Msg("failed to cache jwks document")
		}
	}
	return doc, nil
}

type jwksDocument struct {
	Keys []jwk `json:"keys"`
}

type jwk struct {
	Kty string `json:"kty"`
	Kid string `json:"kid"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// parseJWKS decodes the RSA keys out of a JWKS document. Non-RSA entries are
// skipped; an empty result is an error.
func parseJWKS(doc []byte) (map[string]*rsa.PublicKey, error) {
	var parsed jwksDocument
	if err := json.Unmarshal(doc, &parsed); err != nil {
		return nil, fmt.Errorf("parse jwks: %w", err)
	}

	keys := make(map[string]*rsa.PublicKey, len(parsed.Keys))
	for _, k := range parsed.Keys {
		if k.Kty != "RSA" || k.Kid == "" {
			continue
		}
		pub, err := k.publicKey()
		if err != nil {
			return nil, fmt.Errorf("parse jwks key %q: %w", k.Kid, err)
		}
		keys[k.Kid] = pub
	}

	if len(keys) == 0 {
		return nil, fmt.Errorf("parse jwks: no usable RSA keys")
	}
	return keys, nil
}

func (k jwk) publicKey() (*rsa.PublicKey, error) {
	nb, err := base64.RawURLEncoding.DecodeString(k.N)
	if err != nil {
		return nil, fmt.Errorf("decode modulus: %w", err)
	}
	eb, err := base64.RawURLEncoding.DecodeString(k.E)
	if err != nil {
		return nil, fmt.Errorf("decode exponent: %w", err)
	}

	e := 0
	for _, b := range eb {
		e = e<<8 | int(b)
	}
	if e == 0 {
		return nil, fmt.Errorf("zero exponent")
	}

	return &rsa.PublicKey{
		N: new(big.Int).SetBytes(nb),
		E: e,
	}, nil
}
