package auth

import (
	"context"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrKeyNotFound = errors.New("jwks: key not found")
	ErrMissingKid  = errors.New("jwks: token has no kid header")
)

const defaultRefreshInterval = time.Minute

// jsonWebKeySet is the wire format served by the identity provider.
type jsonWebKeySet struct {
	Keys []jsonWebKey `json:"keys"`
}

type jsonWebKey struct {
	Kid string `json:"kid"`
	Kty string `json:"kty"`
	Use string `json:"use"`
	N   string `json:"n"`
	E   string `json:"e"`
}

// Provider verifies RS256 tokens against the signing keys published at a JWKS URL.
// Keys are decoded once per fetch and cached by kid.
type Provider struct {
	url             string
	client          *http.Client
	refreshInterval time.Duration

	mu        sync.RWMutex
	keys      map[string]*rsa.PublicKey
	fetchedAt time.Time
}

type Option func(*Provider)

// WithRefreshInterval bounds how often an unknown kid may trigger a refetch.
func WithRefreshInterval(d time.Duration) Option {
	return func(p *Provider) { p.refreshInterval = d }
}

func WithHTTPClient(c *http.Client) Option {
	return func(p *Provider) { p.client = c }
}

func NewProvider(jwksURL string, opts ...Option) *Provider {
	p := &Provider{
		url:             jwksURL,
		client:          &http.Client{Timeout: 5 * time.Second},
		refreshInterval: defaultRefreshInterval,
		keys:            map[string]*rsa.PublicKey{},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// KeyFunc plugs the provider into jwt.Parse.
func (p *Provider) KeyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("jwks: signing method %v is not RSA", token.Header["alg"])
	}
	kid, _ := token.Header["kid"].(string)
	if kid == "" {
		return nil, ErrMissingKid
	}
	return p.PublicKey(context.Background(), kid)
}

// PublicKey returns the verification key for kid, refetching the set when
// the kid is unknown and the cache is older than the refresh interval.
func (p *Provider) PublicKey(ctx context.Context, kid string) (*rsa.PublicKey, error) {
	if key, ok := p.cached(kid); ok {
		return key, nil
	}
	if err := p.refresh(ctx); err != nil {
		return nil, err
	}
	if key, ok := p.cached(kid); ok {
		return key, nil
	}
	return nil, ErrKeyNotFound
}

func (p *Provider) cached(kid string) (*rsa.PublicKey, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	key, ok := p.keys[kid]
	return key, ok
}

func (p *Provider) refresh(ctx context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if len(p.keys) > 0 && time.Since(p.fetchedAt) < p.refreshInterval {
		return nil
	}

	set, err := p.download(ctx)
	if err != nil {
		return err
	}

	keys := make(map[string]*rsa.PublicKey, len(set.Keys))
	for _, k := range set.Keys {
		if k.Kty != "RSA" || (k.Use != "" && k.Use != "sig") {
			continue
		}
		pub, err := decodeRSAKey(k.N, k.E)
		if err != nil {
			return fmt.Errorf("jwks: key %q: %w", k.Kid, err)
		}
		keys[k.Kid] = pub
	}
	p.keys = keys
	p.fetchedAt = time.Now()
	return nil
}

func (p *Provider) download(ctx context.Context) (*jsonWebKeySet, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("jwks: build request: %w", err)
	}
	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("jwks: fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("jwks: unexpected status %d", resp.StatusCode)
	}

	var set jsonWebKeySet
	if err := json.NewDecoder(resp.Body).Decode(&set); err != nil {
		return nil, fmt.Errorf("jwks: decode: %w", err)
	}
	return &set, nil
}

// decodeRSAKey builds a public key from base64url modulus and exponent.
func decodeRSAKey(n, e string) (*rsa.PublicKey, error) {
	nBytes, err := base64.RawURLEncoding.DecodeString(n)
	if err != nil {
		return nil, fmt.Errorf("modulus: %w", err)
	}
	eBytes, err := base64.RawURLEncoding.DecodeString(e)
	if err != nil {
		return nil, fmt.Errorf("exponent: %w", err)
	}
	if len(nBytes) == 0 || len(eBytes) == 0 || len(eBytes) > 4 {
		return nil, errors.New("malformed key parameters")
	}

	exp := new(big.Int).SetBytes(eBytes)
	if exp.Int64() < 3 {
		return nil, errors.New("exponent too small")
	}
	return &rsa.PublicKey{N: new(big.Int).SetBytes(nBytes), E: int(exp.Int64())}, nil
}
