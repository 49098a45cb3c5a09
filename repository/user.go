package repository

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coursetrack/models"
)

// NewUser contains information needed to create a new User.
type NewUser struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

// UpdateUser defines what may be changed on an existing User. Nil fields are
// left untouched.
type UpdateUser struct {
	Email     *string
	FirstName *string
	LastName  *string
	Bio       *string
	AvatarURL *string
	Password  *string
}

// Signup checks username/email uniqueness, hashes the password and stores the
// user.
func (r *Repository) Signup(ctx context.Context, nu NewUser) (models.User, error) {
	db := r.conn(ctx)

	if taken, err := exists(db.Model(&models.User{}).Where("username = ?", nu.Username)); err != nil {
		return models.User{}, fmt.Errorf("repository.Signup: %w", err)
	} else if taken {
		return models.User{}, ErrUsernameTaken
	}

	var email *string
	if nu.Email != "" {
		if taken, err := exists(db.Model(&models.User{}).Where("email = ?", nu.Email)); err != nil {
			return models.User{}, fmt.Errorf("repository.Signup: %w", err)
		} else if taken {
			return models.User{}, ErrEmailTaken
		}
		email = &nu.Email
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(nu.Password), r.opts.BcryptCost)
	if err != nil {
		return models.User{}, fmt.Errorf("repository.Signup: hashing password: %w", err)
	}

	role := nu.Role
	if role == "" {
		role = models.RoleStudent
	}
	usr := models.User{
		Username:  nu.Username,
		Email:     email,
		Password:  string(hash),
		FirstName: nu.FirstName,
		LastName:  nu.LastName,
		Role:      role,
	}
	if err := db.Create(&usr).Error; err != nil {
		if isDuplicate(err) {
			// lost a race with a concurrent signup
			return models.User{}, r.signupConflict(db, nu)
		}
		return models.User{}, fmt.Errorf("repository.Signup: %w", err)
	}
	return usr, nil
}

// Authenticate returns the user matching username and password. Unknown
// usernames and wrong passwords fail identically.
func (r *Repository) Authenticate(ctx context.Context, username, password string) (models.User, error) {
	var usr models.User
	err := r.conn(ctx).Where("username = ?", username).First(&usr).Error
	if err != nil {
		if !isNotFound(err) {
			return models.User{}, fmt.Errorf("repository.Authenticate: %w", err)
		}
		// spend the same hashing work as a real comparison
		_ = bcrypt.CompareHashAndPassword(r.dummyHash(), []byte(password))
		return models.User{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usr.Password), []byte(password)); err != nil {
		return models.User{}, ErrInvalidCredentials
	}
	return usr, nil
}

// signupConflict names the unique column a failed insert collided with.
// The translated duplicate error does not carry it.
func (r *Repository) signupConflict(db *gorm.DB, nu NewUser) error {
	if nu.Email != "" {
		taken, err := exists(db.Model(&models.User{}).Where("email = ?", nu.Email))
		if err != nil {
			return fmt.Errorf("repository.Signup: %w", err)
		}
		if taken {
			return ErrEmailTaken
		}
	}
	return ErrUsernameTaken
}

func (r *Repository) dummyHash() []byte {
	r.dummyOnce.Do(func() {
		r.dummy, _ = bcrypt.GenerateFromPassword([]byte("coursetrack-dummy-password"), r.opts.BcryptCost)
	})
	return r.dummy
}

func (r *Repository) GetUser(ctx context.Context, id uint) (models.User, error) {
	var usr models.User
	if err := r.conn(ctx).First(&usr, id).Error; err != nil {
		if isNotFound(err) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("repository.GetUser: %w", err)
	}
	return usr, nil
}

func (r *Repository) GetUserByUsername(ctx context.Context, username string) (models.User, error) {
	var usr models.User
	if err := r.conn(ctx).Where("username = ?", username).First(&usr).Error; err != nil {
		if isNotFound(err) {
			return models.User{}, ErrUserNotFound
		}
		return models.User{}, fmt.Errorf("repository.GetUserByUsername: %w", err)
	}
	return usr, nil
}

// UpdateUser applies profile changes. Changing the email re-checks uniqueness;
// a new password is hashed before it is stored.
func (r *Repository) UpdateUser(ctx context.Context, id uint, uu UpdateUser) (models.User, error) {
	usr, err := r.GetUser(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	db := r.conn(ctx)

	updates := map[string]interface{}{}
	if uu.Email != nil {
		if *uu.Email == "" {
			updates["email"] = nil
		} else if usr.Email == nil || *usr.Email != *uu.Email {
			taken, err := exists(db.Model(&models.User{}).Where("email = ? AND id <> ?", *uu.Email, id))
			if err != nil {
				return models.User{}, fmt.Errorf("repository.UpdateUser: %w", err)
			}
			if taken {
				return models.User{}, ErrEmailTaken
			}
			updates["email"] = *uu.Email
		}
	}
	if uu.FirstName != nil {
		updates["first_name"] = *uu.FirstName
	}
	if uu.LastName != nil {
		updates["last_name"] = *uu.LastName
	}
	if uu.Bio != nil {
		updates["bio"] = *uu.Bio
	}
	if uu.AvatarURL != nil {
		updates["avatar_url"] = *uu.AvatarURL
	}
	if uu.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*uu.Password), r.opts.BcryptCost)
		if err != nil {
			return models.User{}, fmt.Errorf("repository.UpdateUser: hashing password: %w", err)
		}
		updates["password"] = string(hash)
	}
	if len(updates) == 0 {
		return usr, nil
	}

	if err := db.Model(&usr).Updates(updates).Error; err != nil {
		if isDuplicate(err) {
			return models.User{}, ErrEmailTaken
		}
		return models.User{}, fmt.Errorf("repository.UpdateUser: %w", err)
	}
	return r.GetUser(ctx, id)
}

func (r *Repository) CountUsers(ctx context.Context) (int64, error) {
	var n int64
	if err := r.conn(ctx).Model(&models.User{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("repository.CountUsers: %w", err)
	}
	return n, nil
}

func exists(q *gorm.DB) (bool, error) {
	var n int64
	if err := q.Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}
