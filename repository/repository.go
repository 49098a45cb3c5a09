package repository

import (
	"context"
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Options tunes the business rules enforced by the Repository.
type Options struct {
	// BcryptCost is the adaptive cost used when hashing passwords.
	BcryptCost int
	// RequireCompletion gates certificate issuance on 100% course completion.
	RequireCompletion bool
	// EnforceTimeLimit rejects quiz submissions made after the quiz time limit.
	EnforceTimeLimit bool
}

// Repository is the sole write path to the persistent store.
type Repository struct {
	db   *gorm.DB
	opts Options

	// hash compared against for unknown usernames, at opts.BcryptCost
	dummyOnce sync.Once
	dummy     []byte
}

func New(db *gorm.DB, opts Options) *Repository {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &Repository{db: db, opts: opts}
}

func (r *Repository) conn(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx)
}

// now uses the store's clock so timestamps written by gorm and by the
// repository agree.
func (r *Repository) now() time.Time {
	return r.db.NowFunc()
}
