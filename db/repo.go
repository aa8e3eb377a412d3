package db

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"
	"time"

	"Gin_sqlite_redis_archive_tool/models"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned by update/delete/get on a missing row; callers
	// must not treat it as a silent no-op.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicateDisplayID signals that an explicit box label is already taken.
	ErrDuplicateDisplayID = errors.New("display id already in use")
)

// QRWriter renders (or reuses) the QR label PNG for a display id and returns
// its path. The db layer calls it on box creation so imports and form creates
// share the side effect.
type QRWriter interface {
	Ensure(displayID string) (string, error)
}

type Repo struct {
	DB *gorm.DB
	QR QRWriter

	// Serializes the read-max-then-insert span of display id allocation.
	allocMu sync.Mutex
}

func NewRepo(db *gorm.DB, qr QRWriter) *Repo { return &Repo{DB: db, QR: qr} }

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

// checked wraps an update/delete result so a zero-row match surfaces as
// ErrNotFound instead of silently succeeding.
func checked(res *gorm.DB) error {
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Users

func (r *Repo) CreateUser(ctx context.Context, u *models.User) error {
	return r.DB.WithContext(ctx).Create(u).Error
}

func (r *Repo) FindUserByID(ctx context.Context, id uint) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "id = ?", id).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *Repo) FindUserByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "username = ?", username).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *Repo) FindUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "email = ?", email).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

func (r *Repo) FindUserByResetToken(ctx context.Context, token string) (*models.User, error) {
	var u models.User
	if err := r.DB.WithContext(ctx).First(&u, "reset_token = ?", token).Error; err != nil {
		return nil, notFound(err)
	}
	return &u, nil
}

// UpdateUserPassword also clears any pending reset token.
func (r *Repo) UpdateUserPassword(ctx context.Context, userID uint, hash string) error {
	return checked(r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{
			"password_hash": hash,
			"reset_token":   nil,
			"token_expiry":  nil,
		}))
}

func (r *Repo) UpdateUserEmail(ctx context.Context, userID uint, email string) error {
	return checked(r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Update("email", email))
}

// GenerateResetToken stores a fresh random token valid for 24 hours.
func (r *Repo) GenerateResetToken(ctx context.Context, userID uint) (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	token := hex.EncodeToString(buf)
	expiry := time.Now().Add(24 * time.Hour)
	err := checked(r.DB.WithContext(ctx).Model(&models.User{}).
		Where("id = ?", userID).
		Updates(map[string]any{"reset_token": token, "token_expiry": expiry}))
	if err != nil {
		return "", err
	}
	return token, nil
}
