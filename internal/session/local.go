package session

import (
	"context"
	"time"
)

// Key is a typed slot in a browser's local storage.
type Key[T any] struct {
	name string
	ttl  time.Duration
}

func (k Key[T]) Name() string { return k.name }

func NewKey[T any](name string, ttl time.Duration) Key[T] {
	return Key[T]{name: name, ttl: ttl}
}

// User is the persisted session user (the "vardhaman_user" slot).
type User struct {
	ID     string `json:"id"`
	CustID string `json:"custId"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Role   string `json:"role"`
}

const localTTL = 30 * 24 * time.Hour

var (
	TokenKey  = NewKey[string]("token", localTTL)
	CustIDKey = NewKey[string]("custId", localTTL)
	RoleKey   = NewKey[string]("role", localTTL)
	UserKey   = NewKey[User]("vardhaman_user", localTTL)
)

// CartKey and WishlistKey are per-customer cache mirrors.
func CartKey[T any](custID string) Key[T] {
	return NewKey[T]("cart_"+custID, localTTL)
}

func WishlistKey[T any](custID string) Key[T] {
	return NewKey[T]("wishlist_"+custID, localTTL)
}

// Local is one browser profile's storage.
type Local struct {
	store     Store
	browserID string
}

func NewLocal(store Store, browserID string) *Local {
	return &Local{store: store, browserID: browserID}
}

func (l *Local) BrowserID() string { return l.browserID }

func (l *Local) key(name string) string {
	return browserKey(l.browserID, name)
}

func browserKey(browserID, name string) string {
	return "b:" + browserID + ":" + name
}

func customerIndexKey(custID string) string {
	return "customer:" + custID + ":browsers"
}

func Load[T any](ctx context.Context, l *Local, k Key[T]) (T, bool, error) {
	var v T
	ok, err := l.store.Get(ctx, l.key(k.name), &v)
	return v, ok, err
}

func Save[T any](ctx context.Context, l *Local, k Key[T], v T) error {
	return l.store.Set(ctx, l.key(k.name), v, k.ttl)
}

func Remove[T any](ctx context.Context, l *Local, k Key[T]) error {
	return l.store.Delete(ctx, l.key(k.name))
}

// Credentials is what a logged-in browser holds.
type Credentials struct {
	Token  string
	CustID string
	Role   string
}

// Credentials returns ok=false unless both token and custId are present.
func (l *Local) Credentials(ctx context.Context) (Credentials, bool) {
	token, _, err := Load(ctx, l, TokenKey)
	if err != nil || token == "" {
		return Credentials{}, false
	}
	custID, _, err := Load(ctx, l, CustIDKey)
	if err != nil {
		return Credentials{}, false
	}
	role, _, _ := Load(ctx, l, RoleKey)
	return Credentials{Token: token, CustID: custID, Role: role}, custID != ""
}

// Token returns the stored bearer token, if any.
func (l *Local) Token(ctx context.Context) string {
	token, _, _ := Load(ctx, l, TokenKey)
	return token
}

// SaveSession persists a login.
func (l *Local) SaveSession(ctx context.Context, token string, user User) error {
	if err := Save(ctx, l, TokenKey, token); err != nil {
		return err
	}
	if err := Save(ctx, l, CustIDKey, user.CustID); err != nil {
		return err
	}
	if err := Save(ctx, l, RoleKey, user.Role); err != nil {
		return err
	}
	return Save(ctx, l, UserKey, user)
}

// ClearSession drops the login keys. Cart and wishlist mirrors stay, as they
// would in the browser.
func (l *Local) ClearSession(ctx context.Context) error {
	return l.store.Delete(ctx,
		l.key(TokenKey.name),
		l.key(CustIDKey.name),
		l.key(RoleKey.name),
		l.key(UserKey.name),
	)
}

// Track records that this browser holds caches for custID, so they can be
// purged from every device later.
func (l *Local) Track(ctx context.Context, custID string) error {
	return l.store.AddMember(ctx, customerIndexKey(custID), l.browserID)
}

// PurgeCart deletes cart_{custID} from every browser that cached it.
func PurgeCart(ctx context.Context, store Store, custID string) (int, error) {
	idx := customerIndexKey(custID)
	browsers, err := store.Members(ctx, idx)
	if err != nil {
		return 0, err
	}
	for _, b := range browsers {
		if err := store.Delete(ctx, browserKey(b, "cart_"+custID)); err != nil {
			return 0, err
		}
	}
	return len(browsers), nil
}

// PreferServer applies the mirror read policy: a non-empty server list always
// wins; otherwise the cached list is the last resort.
func PreferServer[E any](server []E, cached []E) (items []E, fromServer bool) {
	if len(server) > 0 {
		return server, true
	}
	if cached == nil {
		return []E{}, false
	}
	return cached, false
}

type ctxKey struct{}

func WithLocal(ctx context.Context, l *Local) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

func LocalFromContext(ctx context.Context) (*Local, bool) {
	l, ok := ctx.Value(ctxKey{}).(*Local)
	return l, ok && l != nil
}
